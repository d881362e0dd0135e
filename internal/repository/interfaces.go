package repository

import (
	"context"

	"github.com/ganot/ticklist/internal/domain/todo"
)

// SlotRepository persists the todo collection as a single string-keyed
// slot holding the JSON-serialized array of items, newest first.
type SlotRepository interface {
	Load(ctx context.Context) ([]todo.Item, error)
	Save(ctx context.Context, items []todo.Item) error
	Clear(ctx context.Context) error
}
