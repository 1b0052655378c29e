package postgres

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"brewery/internal/model"
	"brewery/internal/repository"
)

// BeerPostgres is a PostgreSQL implementation of repository.BeerRepository.
// It uses database/sql with parameterized queries and contains no business logic.
type BeerPostgres struct {
	db *sql.DB
}

// NewBeerPostgres creates a new BeerPostgres repository.
func NewBeerPostgres(db *sql.DB) *BeerPostgres {
	return &BeerPostgres{db: db}
}

var _ repository.BeerRepository = (*BeerPostgres)(nil)

type rowScanner interface {
	Scan(dest ...any) error
}

func scanBeer(row rowScanner) (*model.Beer, error) {
	var (
		b  model.Beer
		id uuid.UUID
	)
	if err := row.Scan(&id, &b.BeerName, &b.BeerStyle, &b.UPC); err != nil {
		return nil, err
	}
	b.ID = &id
	return &b, nil
}

// Create inserts a new beer row and returns the stored record.
func (r *BeerPostgres) Create(ctx context.Context, beer *model.Beer) (*model.Beer, error) {
	const q = `
		INSERT INTO beers (id, beer_name, beer_style, upc)
		VALUES ($1, $2, $3, $4)
		RETURNING id, beer_name, beer_style, upc
	`
	var id uuid.UUID
	if beer.ID != nil {
		id = *beer.ID
	}
	row := r.db.QueryRowContext(ctx, q, id, beer.BeerName, string(beer.BeerStyle), beer.UPC)
	return scanBeer(row)
}

// FindByID fetches a single beer by its ID.
func (r *BeerPostgres) FindByID(ctx context.Context, id uuid.UUID) (*model.Beer, error) {
	const q = `
		SELECT id, beer_name, beer_style, upc
		FROM beers
		WHERE id = $1
	`
	return scanBeer(r.db.QueryRowContext(ctx, q, id))
}

// Update rewrites the mutable columns of a beer and bumps updated_at.
func (r *BeerPostgres) Update(ctx context.Context, id uuid.UUID, beer *model.Beer) error {
	const q = `
		UPDATE beers
		SET beer_name = $2, beer_style = $3, upc = $4, updated_at = now()
		WHERE id = $1
	`
	res, err := r.db.ExecContext(ctx, q, id, beer.BeerName, string(beer.BeerStyle), beer.UPC)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// Delete removes a beer by ID. It does not return an error if the row does not exist.
func (r *BeerPostgres) Delete(ctx context.Context, id uuid.UUID) error {
	const q = `DELETE FROM beers WHERE id = $1`
	_, err := r.db.ExecContext(ctx, q, id)
	return err
}
