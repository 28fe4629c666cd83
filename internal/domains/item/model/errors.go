package model

import (
	"errors"
	"net/http"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Error strings double as client-facing messages, so they are capitalized
// the way the frontend displays them.
var (
	ErrItemNotFound   = errors.New("Item not found")
	ErrNoItems        = errors.New("No items found")
	ErrItemIDRequired = errors.New("Item ID is required")
)

// GetHTTPStatusCode maps domain errors onto one consistent status-code
// convention: 400 for client input problems, 404 for missing records, 500
// for everything else.
func GetHTTPStatusCode(err error) int {
	switch {
	case errors.Is(err, ErrItemNotFound), errors.Is(err, ErrNoItems):
		return http.StatusNotFound
	case errors.Is(err, ErrItemIDRequired):
		return http.StatusBadRequest
	}

	var vErr validation.Error
	if errors.As(err, &vErr) {
		return http.StatusBadRequest
	}

	return http.StatusInternalServerError
}
