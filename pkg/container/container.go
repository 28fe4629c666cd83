package container

import (
	"fmt"
	"time"

	"antiques-backend/internal/config"
	authHandler "antiques-backend/internal/domains/auth/handler"
	itemHandler "antiques-backend/internal/domains/item/handler"
	itemRepo "antiques-backend/internal/domains/item/repository"
	itemService "antiques-backend/internal/domains/item/service"
	metaHandler "antiques-backend/internal/domains/metadata/handler"
	metaRepo "antiques-backend/internal/domains/metadata/repository"
	metaService "antiques-backend/internal/domains/metadata/service"
	"antiques-backend/internal/infrastructure/storage"
	"antiques-backend/pkg/jwt"
	"antiques-backend/pkg/logger"
)

// Container holds the whole dependency graph, built bottom-up:
// config → infrastructure → repositories → services → handlers.
type Container struct {
	Config     *config.Config
	ImageStore *storage.DiskImageStore
	JWTManager *jwt.Manager

	ItemRepo     itemRepo.ItemRepository
	MetadataRepo metaRepo.MetadataRepository

	ItemService     itemService.ItemService
	MetadataService metaService.MetadataService

	ItemHandler     *itemHandler.ItemHandler
	ImageHandler    *itemHandler.ImageHandler
	MetadataHandler *metaHandler.MetadataHandler
	AuthHandler     *authHandler.AuthHandler
}

// NewContainer initializes every dependency. Errors here abort startup.
func NewContainer() (*Container, error) {
	c := &Container{}

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	c.Config = cfg

	c.ImageStore = storage.NewDiskImageStore(
		cfg.Storage.UploadDir,
		cfg.Storage.PublicBasePath,
		cfg.Storage.MaxUploadBytes,
	)
	c.JWTManager = jwt.NewManager(
		cfg.Auth.JWTSecret,
		time.Duration(cfg.Auth.TokenExpiryHours)*time.Hour,
	)

	c.ItemRepo = itemRepo.NewJSONFileRepository(cfg.ItemsFile())
	c.MetadataRepo = metaRepo.NewJSONFileRepository(cfg.MetadataFile())

	c.ItemService = itemService.NewItemService(c.ItemRepo, c.ImageStore)
	c.MetadataService = metaService.NewMetadataService(c.MetadataRepo)

	c.ItemHandler = itemHandler.NewItemHandler(c.ItemService)
	c.ImageHandler = itemHandler.NewImageHandler(c.ImageStore)
	c.MetadataHandler = metaHandler.NewMetadataHandler(c.MetadataService)
	c.AuthHandler = authHandler.NewAuthHandler(cfg.Auth.AdminPassword, c.JWTManager)

	logger.Info("container initialized", map[string]interface{}{
		"data_dir":   cfg.Storage.DataDir,
		"upload_dir": cfg.Storage.UploadDir,
	})

	return c, nil
}

// Cleanup releases resources on shutdown. The file-backed stores hold no
// open handles between requests, so there is nothing to close today.
func (c *Container) Cleanup() {}
