package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/ganot/ticklist/internal/domain/todo"
	"github.com/ganot/ticklist/internal/repository"
)

// todosKey is the fixed slot under which the collection is stored.
const todosKey = "todos"

// SlotRepository implements repository.SlotRepository over the slots table.
type SlotRepository struct {
	db *DB
}

// NewSlotRepository creates a new SlotRepository
func NewSlotRepository(db *DB) *SlotRepository {
	return &SlotRepository{db: db}
}

// Load reads and decodes the todos slot.
func (r *SlotRepository) Load(ctx context.Context) ([]todo.Item, error) {
	var value string
	err := r.db.QueryRowContext(ctx, `SELECT value FROM slots WHERE key = ?`, todosKey).Scan(&value)
	if err == sql.ErrNoRows {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read slot: %w", err)
	}

	var items []todo.Item
	if err := json.Unmarshal([]byte(value), &items); err != nil {
		return nil, fmt.Errorf("%w: %v", repository.ErrCorrupt, err)
	}
	return items, nil
}

// Save writes the full collection, replacing any previous value.
func (r *SlotRepository) Save(ctx context.Context, items []todo.Item) error {
	data, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("failed to encode todos: %w", err)
	}

	query := `
		INSERT INTO slots (key, value, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
	`
	if _, err := r.db.ExecContext(ctx, query, todosKey, string(data), time.Now()); err != nil {
		return fmt.Errorf("failed to write slot: %w", err)
	}
	return nil
}

// Clear deletes the slot entirely, which is distinct from saving an
// empty collection: a later Load reports ErrNotFound.
func (r *SlotRepository) Clear(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM slots WHERE key = ?`, todosKey); err != nil {
		return fmt.Errorf("failed to delete slot: %w", err)
	}
	return nil
}
