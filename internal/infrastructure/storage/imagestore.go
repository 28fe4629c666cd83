package storage

import (
	"encoding/base64"
	"errors"
	"fmt"
	"image"
	"mime/multipart"
	"os"
	"path"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
	"time"

	// Register decoders for content sniffing. WebP has no stdlib decoder.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/webp"

	"github.com/google/uuid"
)

// Sentinel errors surfaced to clients with the messages the frontend expects.
var (
	ErrInvalidImagePath = errors.New("Invalid image path")
	ErrImageNotFound    = errors.New("Image not found")
	ErrNotAFile         = errors.New("Invalid file")
)

var allowedUploadTypes = map[string]bool{
	"image/jpeg": true,
	"image/jpg":  true,
	"image/png":  true,
	"image/gif":  true,
	"image/webp": true,
}

var stemSanitizer = regexp.MustCompile(`[^a-zA-Z0-9]`)

// DiskImageStore manages the per-item directories of uploaded images under a
// single upload root. Files for item X live in <uploadDir>/items/<X>/ and are
// served under <publicBasePath>/items/<X>/.
type DiskImageStore struct {
	uploadDir      string
	publicBasePath string
	maxUploadBytes int64
}

func NewDiskImageStore(uploadDir, publicBasePath string, maxUploadBytes int64) *DiskImageStore {
	return &DiskImageStore{
		uploadDir:      uploadDir,
		publicBasePath: strings.TrimSuffix(publicBasePath, "/"),
		maxUploadBytes: maxUploadBytes,
	}
}

// ImageInfo describes one stored image file, dimensions sniffed from content.
type ImageInfo struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	URL          string    `json:"url"`
	Path         string    `json:"path"`
	Size         int64     `json:"size"`
	Type         string    `json:"type"`
	Width        int       `json:"width"`
	Height       int       `json:"height"`
	LastModified time.Time `json:"lastModified"`
}

// UploadResult reports the outcome for a single uploaded file. Failed files
// carry only OriginalName and Error.
type UploadResult struct {
	OriginalName string `json:"originalName"`
	Success      bool   `json:"success"`
	Error        string `json:"error,omitempty"`
	URL          string `json:"url,omitempty"`
	Path         string `json:"path,omitempty"`
	Size         int64  `json:"size,omitempty"`
	Type         string `json:"type,omitempty"`
}

// ItemDir is the on-disk directory holding the item's images.
func (s *DiskImageStore) ItemDir(itemID string) string {
	return filepath.Join(s.uploadDir, "items", itemID)
}

func (s *DiskImageStore) itemPublicPath(itemID, filename string) string {
	return s.publicBasePath + "/items/" + itemID + "/" + filename
}

// EnsureItemDir creates the item's directory. An already existing directory
// is not an error: two near-simultaneous requests for the same item may
// interleave creation.
func (s *DiskImageStore) EnsureItemDir(itemID string) error {
	if err := os.MkdirAll(s.ItemDir(itemID), 0o755); err != nil {
		return fmt.Errorf("failed to create item directory: %w", err)
	}
	return nil
}

// SaveInlineImages processes the images array of a create/update request.
// Entries that are data-URIs get decoded and written into the item's
// directory; anything else (URLs, store paths) passes through unchanged.
// The returned slice matches the input order.
func (s *DiskImageStore) SaveInlineImages(itemID string, images []string, baseURL string) ([]string, error) {
	processed := make([]string, 0, len(images))

	for index, entry := range images {
		if !strings.HasPrefix(entry, "data:image") {
			processed = append(processed, entry)
			continue
		}

		data, ext, err := decodeDataURI(entry)
		if err != nil {
			return nil, fmt.Errorf("failed to save image %d: %w", index, err)
		}

		filename := fmt.Sprintf("%d_%d.%s", time.Now().Unix(), index, ext)
		target := filepath.Join(s.ItemDir(itemID), filename)

		if err := os.WriteFile(target, data, 0o644); err != nil {
			return nil, fmt.Errorf("failed to save image %d: %w", index, err)
		}

		processed = append(processed, baseURL+s.itemPublicPath(itemID, filename))
	}

	return processed, nil
}

// decodeDataURI splits a data:image/...;base64,... payload into raw bytes and
// a file extension derived from the declared subtype.
func decodeDataURI(entry string) ([]byte, string, error) {
	meta, payload, ok := strings.Cut(entry, ",")
	if !ok {
		return nil, "", errors.New("malformed data URI")
	}

	ext := "jpg"
	switch {
	case strings.Contains(meta, "png"):
		ext = "png"
	case strings.Contains(meta, "gif"):
		ext = "gif"
	case strings.Contains(meta, "webp"):
		ext = "webp"
	}

	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		// Some clients strip the padding.
		data, err = base64.RawStdEncoding.DecodeString(payload)
		if err != nil {
			return nil, "", fmt.Errorf("invalid base64 payload: %w", err)
		}
	}

	return data, ext, nil
}

// SaveUploadedFiles moves a batch of multipart uploads into the item's
// directory. Each file is validated independently; a failed file lands in the
// second slice and processing continues with the rest.
func (s *DiskImageStore) SaveUploadedFiles(itemID string, files []*multipart.FileHeader, baseURL string) (uploaded, failed []UploadResult) {
	for _, header := range files {
		result := UploadResult{OriginalName: header.Filename}

		fileType := strings.ToLower(strings.TrimSpace(header.Header.Get("Content-Type")))
		if !allowedUploadTypes[fileType] {
			result.Error = "Invalid file type"
			failed = append(failed, result)
			continue
		}

		if header.Size > s.maxUploadBytes {
			result.Error = "File too large (max 10MB)"
			failed = append(failed, result)
			continue
		}

		filename := s.generateFilename(header.Filename, fileType)
		target := filepath.Join(s.ItemDir(itemID), filename)

		if err := saveMultipartFile(header, target); err != nil {
			result.Error = "Failed to save file"
			failed = append(failed, result)
			continue
		}

		webPath := s.itemPublicPath(itemID, filename)
		result.Success = true
		result.URL = baseURL + webPath
		result.Path = webPath
		result.Size = header.Size
		result.Type = fileType
		uploaded = append(uploaded, result)
	}

	return uploaded, failed
}

// generateFilename builds a collision-resistant name:
// <unix time>_<random token>_<sanitized original stem>.<ext>.
func (s *DiskImageStore) generateFilename(original, fileType string) string {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(original)), ".")
	if ext == "" {
		ext = strings.TrimPrefix(fileType, "image/")
	}

	stem := strings.TrimSuffix(filepath.Base(original), filepath.Ext(original))
	stem = stemSanitizer.ReplaceAllString(stem, "")

	token := strings.ReplaceAll(uuid.NewString(), "-", "")[:13]

	return fmt.Sprintf("%d_%s_%s.%s", time.Now().Unix(), token, stem, ext)
}

func saveMultipartFile(header *multipart.FileHeader, target string) error {
	src, err := header.Open()
	if err != nil {
		return err
	}
	defer src.Close()

	dst, err := os.Create(target)
	if err != nil {
		return err
	}
	defer dst.Close()

	if _, err := dst.ReadFrom(src); err != nil {
		os.Remove(target)
		return err
	}
	return nil
}

// DeleteImage removes a single stored file identified by its site-relative
// path. The path must resolve under the item-image root after normalization;
// anything escaping that prefix is rejected.
func (s *DiskImageStore) DeleteImage(publicPath string) (string, error) {
	root := s.publicBasePath + "/items/"

	cleaned := path.Clean(publicPath)
	if !strings.HasPrefix(cleaned, root) {
		return "", ErrInvalidImagePath
	}

	rel := strings.TrimPrefix(cleaned, s.publicBasePath+"/")
	fullPath := filepath.Join(s.uploadDir, filepath.FromSlash(rel))

	info, err := os.Stat(fullPath)
	if err != nil {
		if os.IsNotExist(err) {
			return "", ErrImageNotFound
		}
		return "", fmt.Errorf("failed to stat image: %w", err)
	}
	if !info.Mode().IsRegular() {
		return "", ErrNotAFile
	}

	if err := os.Remove(fullPath); err != nil {
		return "", fmt.Errorf("failed to delete image: %w", err)
	}

	return cleaned, nil
}

// ListImages enumerates the item's directory, newest first. Entries that are
// not decodable images are skipped; dimensions and MIME type come from
// content sniffing, not the file extension.
func (s *DiskImageStore) ListImages(itemID, baseURL string) ([]ImageInfo, error) {
	dir := s.ItemDir(itemID)

	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return []ImageInfo{}, nil
		}
		return nil, fmt.Errorf("failed to read item directory: %w", err)
	}

	images := make([]ImageInfo, 0, len(entries))
	for _, entry := range entries {
		if !entry.Type().IsRegular() {
			continue
		}

		filePath := filepath.Join(dir, entry.Name())
		width, height, mimeType, err := sniffImage(filePath)
		if err != nil {
			continue
		}

		info, err := entry.Info()
		if err != nil {
			continue
		}

		webPath := s.itemPublicPath(itemID, entry.Name())
		images = append(images, ImageInfo{
			ID:           "item_" + itemID + "_" + entry.Name(),
			Name:         entry.Name(),
			URL:          baseURL + webPath,
			Path:         webPath,
			Size:         info.Size(),
			Type:         mimeType,
			Width:        width,
			Height:       height,
			LastModified: info.ModTime(),
		})
	}

	sort.Slice(images, func(i, j int) bool {
		return images[i].LastModified.After(images[j].LastModified)
	})

	return images, nil
}

func sniffImage(filePath string) (width, height int, mimeType string, err error) {
	f, err := os.Open(filePath)
	if err != nil {
		return 0, 0, "", err
	}
	defer f.Close()

	cfg, format, err := image.DecodeConfig(f)
	if err != nil {
		return 0, 0, "", err
	}

	return cfg.Width, cfg.Height, "image/" + format, nil
}

// DeleteItemTree removes the whole per-item directory. A missing directory
// counts as already deleted.
func (s *DiskImageStore) DeleteItemTree(itemID string) error {
	return os.RemoveAll(s.ItemDir(itemID))
}
