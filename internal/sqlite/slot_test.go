package sqlite

import (
	"context"
	"testing"

	"github.com/ganot/ticklist/internal/domain/todo"
	"github.com/ganot/ticklist/internal/repository"
	"github.com/stretchr/testify/require"
)

func TestSlotRepository_SaveLoadRoundTrip(t *testing.T) {
	db := NewTestDB(t)
	ctx := context.Background()
	repo := NewSlotRepository(db)

	items := []todo.Item{
		{ID: "a", Text: "First", Done: true, CreatedAt: 1700000000000},
		{ID: "b", Text: "Second"},
	}
	require.NoError(t, repo.Save(ctx, items))

	loaded, err := repo.Load(ctx)
	require.NoError(t, err)
	require.Equal(t, items, loaded)
}

func TestSlotRepository_LoadMissing(t *testing.T) {
	db := NewTestDB(t)
	ctx := context.Background()
	repo := NewSlotRepository(db)

	_, err := repo.Load(ctx)
	require.ErrorIs(t, err, repository.ErrNotFound)
}

func TestSlotRepository_LoadCorrupt(t *testing.T) {
	db := NewTestDB(t)
	ctx := context.Background()
	repo := NewSlotRepository(db)

	_, err := db.Exec(`INSERT INTO slots (key, value) VALUES ('todos', '{not json')`)
	require.NoError(t, err)

	_, err = repo.Load(ctx)
	require.ErrorIs(t, err, repository.ErrCorrupt)
}

func TestSlotRepository_SaveOverwrites(t *testing.T) {
	db := NewTestDB(t)
	ctx := context.Background()
	repo := NewSlotRepository(db)

	require.NoError(t, repo.Save(ctx, []todo.Item{{ID: "a", Text: "First"}}))
	require.NoError(t, repo.Save(ctx, []todo.Item{{ID: "b", Text: "Second"}}))

	loaded, err := repo.Load(ctx)
	require.NoError(t, err)
	require.Len(t, loaded, 1)
	require.Equal(t, "b", loaded[0].ID)
}

func TestSlotRepository_ClearDeletesSlot(t *testing.T) {
	db := NewTestDB(t)
	ctx := context.Background()
	repo := NewSlotRepository(db)

	require.NoError(t, repo.Save(ctx, []todo.Item{{ID: "a", Text: "First"}}))
	require.NoError(t, repo.Clear(ctx))

	_, err := repo.Load(ctx)
	require.ErrorIs(t, err, repository.ErrNotFound)

	// Clearing an absent slot is fine.
	require.NoError(t, repo.Clear(ctx))
}

// Simulates an application reload: a fresh store over the same database
// must see exactly what the previous one persisted, and the seed again
// after a clear.
func TestSlotRepository_StoreReload(t *testing.T) {
	db := NewTestDB(t)
	ctx := context.Background()
	repo := NewSlotRepository(db)

	store := todo.NewStore(repo, nil)
	_, err := store.Initialize(ctx)
	require.NoError(t, err)

	added, err := store.Add(ctx, "X")
	require.NoError(t, err)
	require.Len(t, added, 4)

	_, err = store.Toggle(ctx, "3")
	require.NoError(t, err)
	removed, err := store.Remove(ctx, "2")
	require.NoError(t, err)
	require.Len(t, removed, 3)

	reloaded := todo.NewStore(repo, nil)
	items, err := reloaded.Initialize(ctx)
	require.NoError(t, err)
	require.Equal(t, store.Todos(), items)

	_, err = reloaded.ClearAll(ctx)
	require.NoError(t, err)

	fresh := todo.NewStore(repo, nil)
	items, err = fresh.Initialize(ctx)
	require.NoError(t, err)
	require.Equal(t, todo.Seed(), items)
	require.False(t, fresh.Recovered())
}
