package session

import (
	"context"
	"testing"
	"time"

	"github.com/eventsphere/server/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStoreLifecycle(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore(time.Hour)

	sess, err := store.Create(ctx, 7)
	require.NoError(t, err)
	assert.NotEmpty(t, sess.ID)
	assert.Equal(t, int64(7), sess.UserID)

	found, err := store.Get(ctx, sess.ID)
	require.NoError(t, err)
	assert.Equal(t, sess.UserID, found.UserID)

	require.NoError(t, store.Delete(ctx, sess.ID))

	_, err = store.Get(ctx, sess.ID)
	assert.ErrorIs(t, err, entity.ErrSessionNotFound)

	err = store.Delete(ctx, sess.ID)
	assert.ErrorIs(t, err, entity.ErrSessionNotFound)
}

func TestMemoryStoreUniqueIDs(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore(time.Hour)

	first, err := store.Create(ctx, 1)
	require.NoError(t, err)
	second, err := store.Create(ctx, 1)
	require.NoError(t, err)

	assert.NotEqual(t, first.ID, second.ID)
}

func TestMemoryStoreExpiry(t *testing.T) {
	ctx := context.Background()

	// Нулевой TTL: сессия истекает сразу после создания
	store := NewMemoryStore(-time.Second)

	sess, err := store.Create(ctx, 7)
	require.NoError(t, err)

	_, err = store.Get(ctx, sess.ID)
	assert.ErrorIs(t, err, entity.ErrSessionNotFound)
}

func TestMemoryStoreDeleteExpired(t *testing.T) {
	ctx := context.Background()

	expired := NewMemoryStore(-time.Second)
	for i := 0; i < 3; i++ {
		_, err := expired.Create(ctx, int64(i))
		require.NoError(t, err)
	}

	removed, err := expired.DeleteExpired(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, removed)

	// Живые сессии очистка не трогает
	alive := NewMemoryStore(time.Hour)
	sess, err := alive.Create(ctx, 1)
	require.NoError(t, err)

	removed, err = alive.DeleteExpired(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, removed)

	_, err = alive.Get(ctx, sess.ID)
	assert.NoError(t, err)
}
