package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"brewery/internal/model"
)

type MockBeerRepository struct {
	mock.Mock
}

func (m *MockBeerRepository) Create(ctx context.Context, beer *model.Beer) (*model.Beer, error) {
	args := m.Called(ctx, beer)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Beer), args.Error(1)
}

func (m *MockBeerRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Beer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Beer), args.Error(1)
}

func (m *MockBeerRepository) Update(ctx context.Context, id uuid.UUID, beer *model.Beer) error {
	args := m.Called(ctx, id, beer)
	return args.Error(0)
}

func (m *MockBeerRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
