package farmer

import (
	"context"
	"errors"

	"krishisaathi/internal/model"
)

// ErrNotFound is returned when no farmer exists for the given id.
var ErrNotFound = errors.New("farmer not found")

// Profile field names recognized by the slot extractor and the repository
// mutator. FieldOrder fixes the order fields are reported back to the user.
const (
	FieldState    = "state"
	FieldDistrict = "district"
	FieldVillage  = "village"
)

// FieldOrder lists profile fields in presentation order.
var FieldOrder = []string{FieldState, FieldDistrict, FieldVillage}

// ProfileUpdate maps profile field names to newly extracted values.
// Transient: produced per turn and applied immediately, never stored.
type ProfileUpdate map[string]string

// Repository is the farmer-profile collaborator surface. Durable storage is
// outside the advisory engine; implementations may be backed by anything.
type Repository interface {
	// GetByID returns the farmer record for id, or ErrNotFound.
	GetByID(ctx context.Context, id string) (model.Farmer, error)

	// UpdateLocation persists the given profile fields for the farmer.
	UpdateLocation(ctx context.Context, id string, update ProfileUpdate) error

	// List returns all farmer records, ordered by id.
	List(ctx context.Context) ([]model.Farmer, error)
}
