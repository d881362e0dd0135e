package mocks

import (
	"context"

	"github.com/ganot/ticklist/internal/domain/todo"
	"github.com/stretchr/testify/mock"
)

// SlotRepository is a mock for repository.SlotRepository.
type SlotRepository struct {
	mock.Mock
}

func (m *SlotRepository) Load(ctx context.Context) ([]todo.Item, error) {
	args := m.Called(ctx)
	if items, ok := args.Get(0).([]todo.Item); ok {
		return items, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *SlotRepository) Save(ctx context.Context, items []todo.Item) error {
	args := m.Called(ctx, items)
	return args.Error(0)
}

func (m *SlotRepository) Clear(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
