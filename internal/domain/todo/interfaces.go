package todo

import "context"

// SlotRepository persists the collection as a single slot.
type SlotRepository interface {
	Load(ctx context.Context) ([]Item, error)
	Save(ctx context.Context, items []Item) error
	Clear(ctx context.Context) error
}
