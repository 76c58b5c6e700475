package sessions

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iammorganparry/brainstorm/internal/models"
	"github.com/iammorganparry/brainstorm/internal/store"
)

func setupTestDB(t *testing.T) *store.DB {
	t.Helper()
	db, err := store.Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func newSession(id int, name string, ideas ...string) *models.Session {
	s := &models.Session{
		ID:          id,
		Name:        name,
		DateCreated: time.Date(2016, 7, 2, 0, 0, 0, 0, time.UTC),
		Ideas:       []models.Idea{},
	}
	for _, n := range ideas {
		s.AddIdea(models.Idea{Name: n, Description: n + " description"})
	}
	return s
}

// repoContract runs the same behavioural checks against every Repository.
func repoContract(t *testing.T, repo Repository) {
	ctx := context.Background()

	t.Run("GetByID absent returns nil", func(t *testing.T) {
		got, err := repo.GetByID(ctx, 500)
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("Add keeps explicit id and ideas", func(t *testing.T) {
		require.NoError(t, repo.Add(ctx, newSession(1, "Test One", "One")))

		got, err := repo.GetByID(ctx, 1)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, "Test One", got.Name)
		assert.Equal(t, time.Date(2016, 7, 2, 0, 0, 0, 0, time.UTC), got.DateCreated)
		require.Len(t, got.Ideas, 1)
		assert.Equal(t, "One", got.Ideas[0].Name)
	})

	t.Run("Add assigns id when zero", func(t *testing.T) {
		s := newSession(0, "Fresh")
		s.DateCreated = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
		require.NoError(t, repo.Add(ctx, s))
		assert.Greater(t, s.ID, 1)
	})

	t.Run("Update replaces ideas in order", func(t *testing.T) {
		got, err := repo.GetByID(ctx, 1)
		require.NoError(t, err)
		got.AddIdea(models.Idea{Name: "Two"})
		got.AddIdea(models.Idea{Name: "Three"})
		require.NoError(t, repo.Update(ctx, got))

		again, err := repo.GetByID(ctx, 1)
		require.NoError(t, err)
		names := []string{}
		for _, i := range again.Ideas {
			names = append(names, i.Name)
		}
		assert.Equal(t, []string{"One", "Two", "Three"}, names)
	})

	t.Run("Update of missing session fails", func(t *testing.T) {
		err := repo.Update(ctx, newSession(404, "ghost"))
		assert.True(t, errors.Is(err, ErrSessionNotFound))

		got, err := repo.GetByID(ctx, 404)
		require.NoError(t, err)
		assert.Nil(t, got, "update must not upsert")
	})

	t.Run("List is newest first", func(t *testing.T) {
		list, err := repo.List(ctx)
		require.NoError(t, err)
		require.Len(t, list, 2)
		assert.Equal(t, "Fresh", list[0].Name)
		assert.Equal(t, "Test One", list[1].Name)
		assert.Len(t, list[1].Ideas, 3)
	})
}

func TestSessionStore(t *testing.T) {
	db := setupTestDB(t)
	repoContract(t, NewSessionStore(db))

	count, err := db.SessionCount()
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestMemoryStore(t *testing.T) {
	m := NewMemoryStore()
	repoContract(t, m)
	assert.Equal(t, 2, m.Count())
}

func TestMemoryStore_ReturnsCopies(t *testing.T) {
	ctx := context.Background()
	m := NewMemoryStore(newSession(1, "Test One", "One"))

	got, err := m.GetByID(ctx, 1)
	require.NoError(t, err)
	got.AddIdea(models.Idea{Name: "unsaved"})

	again, err := m.GetByID(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, again.Ideas, 1)

	assert.Error(t, m.Add(ctx, newSession(1, "dup")))
}
