package store

import (
	"context"

	"CloseByRentals/models"
)

// Stores are append-only: records get an assigned identity on insert and are
// never updated or deleted.

type PropertyStore interface {
	GetAll(ctx context.Context) ([]models.Property, error)
	Insert(ctx context.Context, p models.Property) (models.Property, error)
}

type AmenityStore interface {
	GetAll(ctx context.Context) ([]models.Amenity, error)
	Insert(ctx context.Context, a models.Amenity) (models.Amenity, error)
}
