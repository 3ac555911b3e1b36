package session

import (
	"context"
	"testing"
	"time"

	"photomarket/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStoreLifecycle(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	store := NewMemoryStore()
	store.now = func() time.Time { return now }

	rec := Record{UserID: uuid.New(), Email: "ana@example.com", Role: models.RoleClient}
	require.NoError(t, store.Save(ctx, "tok", rec, time.Hour))

	got, err := store.Get(ctx, "tok")
	require.NoError(t, err)
	assert.Equal(t, rec.UserID, got.UserID)

	now = now.Add(2 * time.Hour)
	_, err = store.Get(ctx, "tok")
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, store.Save(ctx, "tok2", rec, time.Hour))
	require.NoError(t, store.Delete(ctx, "tok2"))
	_, err = store.Get(ctx, "tok2")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRedisKey(t *testing.T) {
	assert.Equal(t, "photomarket:session:abc", redisKey("abc"))
}
