// Package repository contains data access layer abstractions.
// Implementations live in subpackages such as postgres.
package repository

import (
	"context"

	"github.com/google/uuid"

	"brewery/internal/model"
)

// BeerRepository defines data access for beers using SQL queries only.
// No business logic here, strictly persistence operations.
type BeerRepository interface {
	// Create inserts a new beer. The caller assigns the ID.
	// Returns the stored beer as read back from the database.
	Create(ctx context.Context, beer *model.Beer) (*model.Beer, error)

	// FindByID returns a beer by its ID, or sql.ErrNoRows.
	FindByID(ctx context.Context, id uuid.UUID) (*model.Beer, error)

	// Update overwrites name, style and UPC of an existing beer.
	// It returns sql.ErrNoRows when no row has the given ID.
	Update(ctx context.Context, id uuid.UUID, beer *model.Beer) error

	// Delete removes a beer by ID. It returns nil if the row was deleted or did not exist.
	Delete(ctx context.Context, id uuid.UUID) error
}
