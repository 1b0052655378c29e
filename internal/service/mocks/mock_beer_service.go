package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"brewery/internal/model"
)

type MockBeerService struct {
	mock.Mock
}

func (m *MockBeerService) GetBeerByID(ctx context.Context, id uuid.UUID) (*model.Beer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Beer), args.Error(1)
}

func (m *MockBeerService) SaveNewBeer(ctx context.Context, beer model.Beer) (*model.Beer, error) {
	args := m.Called(ctx, beer)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Beer), args.Error(1)
}

func (m *MockBeerService) UpdateBeer(ctx context.Context, id uuid.UUID, beer model.Beer) error {
	args := m.Called(ctx, id, beer)
	return args.Error(0)
}

func (m *MockBeerService) DeleteByID(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
