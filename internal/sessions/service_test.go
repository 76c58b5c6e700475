package sessions

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iammorganparry/brainstorm/internal/models"
)

func TestService(t *testing.T) {
	ctx := context.Background()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	now := time.Date(2024, 3, 1, 12, 30, 15, 999, time.FixedZone("CET", 3600))
	svc := NewService(NewMemoryStore(newSession(1, "Test One", "One")), logger, func() time.Time { return now })

	t.Run("Create requires a name", func(t *testing.T) {
		_, err := svc.Create(ctx, &models.NewSessionRequest{Name: " "})
		assert.Equal(t, models.KindValidation, models.KindOf(err))

		_, err = svc.Create(ctx, nil)
		assert.Equal(t, models.KindValidation, models.KindOf(err))
	})

	t.Run("Create stamps UTC date and assigns id", func(t *testing.T) {
		s, err := svc.Create(ctx, &models.NewSessionRequest{Name: "Roadmap"})
		require.NoError(t, err)
		assert.Equal(t, 2, s.ID)
		assert.True(t, s.DateCreated.Equal(time.Date(2024, 3, 1, 11, 30, 15, 0, time.UTC)), s.DateCreated)
		assert.Equal(t, time.UTC, s.DateCreated.Location())
		assert.NotNil(t, s.Ideas)
	})

	t.Run("Get", func(t *testing.T) {
		s, err := svc.Get(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, "Test One", s.Name)

		_, err = svc.Get(ctx, 99)
		assert.Equal(t, models.KindNotFound, models.KindOf(err))
	})

	t.Run("List", func(t *testing.T) {
		list, err := svc.List(ctx)
		require.NoError(t, err)
		require.Len(t, list, 2)
		assert.Equal(t, "Roadmap", list[0].Name)
	})
}
