package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"brewery/internal/model"
	"brewery/internal/repository"
)

var (
	ErrIDRequired = errors.New("id is required")
	ErrNotFound   = errors.New("beer not found")
)

const tracerName = "brewery/internal/service"

// BeerService defines the use cases the v2 beer controller delegates to.
type BeerService interface {
	// GetBeerByID returns the beer with the given ID or ErrNotFound.
	GetBeerByID(ctx context.Context, id uuid.UUID) (*model.Beer, error)

	// SaveNewBeer assigns a fresh ID to beer and persists it.
	SaveNewBeer(ctx context.Context, beer model.Beer) (*model.Beer, error)

	// UpdateBeer replaces the stored fields of the beer with the given ID.
	UpdateBeer(ctx context.Context, id uuid.UUID, beer model.Beer) error

	// DeleteByID removes the beer with the given ID. Missing beers are not an error.
	DeleteByID(ctx context.Context, id uuid.UUID) error
}

type beerService struct {
	repo   repository.BeerRepository
	tracer trace.Tracer
	newID  func() uuid.UUID
}

// NewBeerService constructs a BeerService backed by repo.
func NewBeerService(repo repository.BeerRepository) BeerService {
	return &beerService{
		repo:   repo,
		tracer: otel.Tracer(tracerName),
		newID:  uuid.New,
	}
}

func (s *beerService) GetBeerByID(ctx context.Context, id uuid.UUID) (*model.Beer, error) {
	ctx, span := s.start(ctx, "BeerService.GetBeerByID", id)
	defer span.End()

	if id == uuid.Nil {
		return nil, fail(span, ErrIDRequired)
	}
	beer, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fail(span, ErrNotFound)
		}
		return nil, fail(span, fmt.Errorf("find beer: %w", err))
	}
	return beer, nil
}

func (s *beerService) SaveNewBeer(ctx context.Context, beer model.Beer) (*model.Beer, error) {
	id := s.newID()
	ctx, span := s.start(ctx, "BeerService.SaveNewBeer", id)
	defer span.End()

	beer.ID = &id
	saved, err := s.repo.Create(ctx, &beer)
	if err != nil {
		return nil, fail(span, fmt.Errorf("save beer: %w", err))
	}
	return saved, nil
}

func (s *beerService) UpdateBeer(ctx context.Context, id uuid.UUID, beer model.Beer) error {
	ctx, span := s.start(ctx, "BeerService.UpdateBeer", id)
	defer span.End()

	if id == uuid.Nil {
		return fail(span, ErrIDRequired)
	}
	beer.ID = nil
	if err := s.repo.Update(ctx, id, &beer); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return fail(span, ErrNotFound)
		}
		return fail(span, fmt.Errorf("update beer: %w", err))
	}
	return nil
}

func (s *beerService) DeleteByID(ctx context.Context, id uuid.UUID) error {
	ctx, span := s.start(ctx, "BeerService.DeleteByID", id)
	defer span.End()

	if id == uuid.Nil {
		return fail(span, ErrIDRequired)
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return fail(span, fmt.Errorf("delete beer: %w", err))
	}
	return nil
}

func (s *beerService) start(ctx context.Context, name string, id uuid.UUID) (context.Context, trace.Span) {
	return s.tracer.Start(ctx, name, trace.WithAttributes(attribute.String("beer.id", id.String())))
}

func fail(span trace.Span, err error) error {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	return err
}
