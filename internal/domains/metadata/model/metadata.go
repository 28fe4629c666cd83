package model

import "errors"

// Entry is a named tag value (a category, period, or condition). Items
// reference entries by free-text name, not by id, so renaming an entry does
// not propagate to items already using the old name.
type Entry struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Kind selects one of the three independent metadata lists.
type Kind string

const (
	KindCategories Kind = "categories"
	KindPeriods    Kind = "periods"
	KindConditions Kind = "conditions"
)

var (
	ErrInvalidKind   = errors.New("Invalid metadata kind")
	ErrEntryNotFound = errors.New("Metadata entry not found")
	ErrNameRequired  = errors.New("Name is required")
)

func ParseKind(s string) (Kind, error) {
	switch Kind(s) {
	case KindCategories, KindPeriods, KindConditions:
		return Kind(s), nil
	}
	return "", ErrInvalidKind
}

// Seed lists shipped with a fresh deployment.
var Defaults = map[Kind][]string{
	KindCategories: {"Case goods", "Tabletop", "Mirrors", "Art", "Lighting"},
	KindPeriods: {"Victorian", "Art Deco", "Edwardian", "Mid-Century Modern",
		"Georgian", "Art Nouveau", "Regency"},
	KindConditions: {"Excellent", "Very Good", "Good", "Fair", "Poor"},
}
