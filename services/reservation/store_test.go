package reservation

import (
	"context"
	"testing"

	"castlechat/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStoreRoundTrip(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	got, err := store.Get(ctx, "unknown")
	require.NoError(t, err)
	assert.Nil(t, got, "unknown sessions yield nil without an error")

	state := models.NewConversationState()
	state.Slots.Date = "2026-09-01"
	require.NoError(t, store.Set(ctx, "s1", state))

	got, err = store.Get(ctx, "s1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "2026-09-01", got.Slots.Date)

	require.NoError(t, store.Delete(ctx, "s1"))
	got, err = store.Get(ctx, "s1")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestMemoryStoreSessionsAreIndependent(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	a := models.NewConversationState()
	a.Slots.Date = "2026-09-01"
	b := models.NewConversationState()
	b.Slots.Date = "2026-09-02"

	require.NoError(t, store.Set(ctx, "a", a))
	require.NoError(t, store.Set(ctx, "b", b))

	gotA, err := store.Get(ctx, "a")
	require.NoError(t, err)
	gotB, err := store.Get(ctx, "b")
	require.NoError(t, err)
	assert.Equal(t, "2026-09-01", gotA.Slots.Date)
	assert.Equal(t, "2026-09-02", gotB.Slots.Date)
}
