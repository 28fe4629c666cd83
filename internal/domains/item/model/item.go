package model

import (
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Item is one catalog record. The JSON field names are the wire contract
// shared with the storefront and admin frontends; the same shape is persisted
// verbatim in the items file.
type Item struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Description   string    `json:"description"`
	Price         float64   `json:"price"`
	Category      string    `json:"category"`
	Period        string    `json:"period"`
	Condition     string    `json:"condition"`
	Dimensions    string    `json:"dimensions"`
	Images        []string  `json:"images"`
	Featured      bool      `json:"featured"`
	StoreLocation string    `json:"storeLocation"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// ItemPayload carries the client-supplied fields of a create/update request.
// Images entries are either data-URIs (decoded into the image store) or
// URL/path strings kept as-is.
type ItemPayload struct {
	Name          string   `json:"name"`
	Description   string   `json:"description"`
	Price         float64  `json:"price"`
	Category      string   `json:"category"`
	Period        string   `json:"period"`
	Condition     string   `json:"condition"`
	Dimensions    string   `json:"dimensions"`
	Images        []string `json:"images"`
	Featured      bool     `json:"featured"`
	StoreLocation string   `json:"storeLocation"`
}

// Validate checks the payload rules shared by create and update. Rules run
// in a fixed order and the first violation wins, so the reported message is
// deterministic. ValidateStruct is deliberately not used here: it collects
// all failures into a map and loses that ordering.
func (p ItemPayload) Validate() error {
	required := []struct {
		label string
		value string
	}{
		{"Name", p.Name},
		{"Description", p.Description},
		{"Category", p.Category},
		{"Period", p.Period},
		{"Condition", p.Condition},
		{"StoreLocation", p.StoreLocation},
	}

	for _, field := range required {
		err := validation.Validate(strings.TrimSpace(field.value),
			validation.Required.Error(field.label+" is required"))
		if err != nil {
			return err
		}
	}

	if err := validation.Validate(p.Images,
		validation.Required.Error("At least one image is required")); err != nil {
		return err
	}

	if err := validation.Validate(p.Price,
		validation.Required.Error("Price must be greater than 0"),
		validation.Min(0.0).Exclusive().Error("Price must be greater than 0")); err != nil {
		return err
	}

	return nil
}

// NewItem assembles a stored record from a validated payload. String fields
// are trimmed; images must already be processed by the image store.
func NewItem(id string, p ItemPayload, images []string, now time.Time) Item {
	return Item{
		ID:            id,
		Name:          strings.TrimSpace(p.Name),
		Description:   strings.TrimSpace(p.Description),
		Price:         p.Price,
		Category:      strings.TrimSpace(p.Category),
		Period:        strings.TrimSpace(p.Period),
		Condition:     strings.TrimSpace(p.Condition),
		Dimensions:    strings.TrimSpace(p.Dimensions),
		Images:        images,
		Featured:      p.Featured,
		StoreLocation: strings.TrimSpace(p.StoreLocation),
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}
