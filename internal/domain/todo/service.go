package todo

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/ganot/ticklist/internal/repository"
	"github.com/google/uuid"
)

// Store owns the authoritative todo collection and mirrors it to a
// persistent slot after every mutation. Mutations within a process are
// serialized by an internal mutex; across processes the slot is
// last-write-wins.
type Store struct {
	mu        sync.Mutex
	items     []Item
	repo      SlotRepository
	logger    *slog.Logger
	recovered bool
}

// NewStore creates a store over the given slot repository.
func NewStore(repo SlotRepository, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Store{repo: repo, logger: logger}
}

// Initialize loads the persisted collection. An absent slot yields the
// seed collection; an unreadable one does too, without surfacing an
// error (the recovery is logged and reported by Recovered). Seeding
// does not write the slot; the first mutation will.
func (s *Store) Initialize(ctx context.Context) ([]Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.recovered = false
	items, err := s.repo.Load(ctx)
	switch {
	case err == nil:
		s.items = items
	case errors.Is(err, repository.ErrNotFound):
		s.logger.Info("no persisted todos, seeding defaults")
		s.items = Seed()
	case errors.Is(err, repository.ErrCorrupt):
		s.logger.Warn("persisted todos are unreadable, falling back to defaults", "error", err)
		s.items = Seed()
		s.recovered = true
	default:
		return nil, fmt.Errorf("loading todos: %w", err)
	}
	return cloneItems(s.items), nil
}

// Recovered reports whether the last Initialize replaced corrupt
// persisted data with the seed collection.
func (s *Store) Recovered() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.recovered
}

// Todos returns a copy of the current collection, newest first.
func (s *Store) Todos() []Item {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneItems(s.items)
}

// Add prepends a new pending item and persists the collection.
func (s *Store) Add(ctx context.Context, text string) ([]Item, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, ErrEmptyText
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	item := Item{
		ID:        uuid.NewString(),
		Text:      text,
		CreatedAt: time.Now().UnixMilli(),
	}
	updated := make([]Item, 0, len(s.items)+1)
	updated = append(updated, item)
	updated = append(updated, s.items...)

	if err := s.repo.Save(ctx, updated); err != nil {
		return nil, fmt.Errorf("saving todos: %w", err)
	}
	s.items = updated
	return cloneItems(s.items), nil
}

// Toggle flips the done flag of the item with the given id and persists
// the collection. An unknown id is a no-op and skips the write.
func (s *Store) Toggle(ctx context.Context, id string) ([]Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := indexOf(s.items, id)
	if idx < 0 {
		return cloneItems(s.items), nil
	}

	updated := cloneItems(s.items)
	updated[idx].Done = !updated[idx].Done

	if err := s.repo.Save(ctx, updated); err != nil {
		return nil, fmt.Errorf("saving todos: %w", err)
	}
	s.items = updated
	return cloneItems(s.items), nil
}

// Remove deletes the item with the given id and persists the
// collection. An unknown id is a no-op and skips the write.
func (s *Store) Remove(ctx context.Context, id string) ([]Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := indexOf(s.items, id)
	if idx < 0 {
		return cloneItems(s.items), nil
	}

	updated := make([]Item, 0, len(s.items)-1)
	updated = append(updated, s.items[:idx]...)
	updated = append(updated, s.items[idx+1:]...)

	if err := s.repo.Save(ctx, updated); err != nil {
		return nil, fmt.Errorf("saving todos: %w", err)
	}
	s.items = updated
	return cloneItems(s.items), nil
}

// ClearAll empties the collection and deletes the persisted slot
// entirely, so a fresh Initialize yields the seed collection again.
func (s *Store) ClearAll(ctx context.Context) ([]Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.repo.Clear(ctx); err != nil {
		return nil, fmt.Errorf("clearing todos: %w", err)
	}
	s.items = nil
	return []Item{}, nil
}

func cloneItems(items []Item) []Item {
	out := make([]Item, len(items))
	copy(out, items)
	return out
}

func indexOf(items []Item, id string) int {
	for i, it := range items {
		if it.ID == id {
			return i
		}
	}
	return -1
}
