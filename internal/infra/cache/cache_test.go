package cache

import (
	"context"
	"testing"
	"time"

	"vivaha/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

func newTestStore(ttl time.Duration) (*Store, *fakeClock) {
	clock := &fakeClock{now: time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)}
	store := NewWithClock(NewMemoryStore(), ttl, clock.Now)

	return store, clock
}

func TestStore_SetAndGet(t *testing.T) {
	store, _ := newTestStore(time.Hour)
	ns := entity.WorkspaceNamespace(uuid.New())

	guests := []string{"Asha", "Rohan"}
	require.NoError(t, store.Set(context.Background(), ns, "guests", guests))

	var got []string
	found, err := store.Get(context.Background(), ns, "guests", &got)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, guests, got)
}

func TestStore_GetMissingKey(t *testing.T) {
	store, _ := newTestStore(time.Hour)
	ns := entity.WorkspaceNamespace(uuid.New())

	var got []string
	found, err := store.Get(context.Background(), ns, "guests", &got)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestStore_ExpiredEntryIsRemoved(t *testing.T) {
	store, clock := newTestStore(time.Hour)
	ns := entity.WorkspaceNamespace(uuid.New())

	require.NoError(t, store.Set(context.Background(), ns, "todos", []string{"book venue"}))

	clock.Advance(time.Hour + time.Minute)

	var got []string
	found, err := store.Get(context.Background(), ns, "todos", &got)
	require.NoError(t, err)
	assert.False(t, found)

	// The expired entry must be gone even if time rolls back.
	clock.Advance(-2 * time.Hour)
	found, err = store.Get(context.Background(), ns, "todos", &got)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestStore_EntryLivesUpToTTL(t *testing.T) {
	store, clock := newTestStore(time.Hour)
	ns := entity.WorkspaceNamespace(uuid.New())

	require.NoError(t, store.Set(context.Background(), ns, "budget", map[string]int{"venue": 5000}))

	clock.Advance(59 * time.Minute)

	var got map[string]int
	found, err := store.Get(context.Background(), ns, "budget", &got)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, 5000, got["venue"])
}

func TestStore_ZeroTTLNeverExpires(t *testing.T) {
	store, clock := newTestStore(time.Hour)
	ns := entity.UserNamespace(uuid.New())

	require.NoError(t, store.SetWithTTL(context.Background(), ns, "onboarding", map[string]any{"done": true}, 0))

	clock.Advance(365 * 24 * time.Hour)

	found, err := store.Get(context.Background(), ns, "onboarding", nil)
	require.NoError(t, err)
	assert.True(t, found)
}

func TestStore_NamespaceIsolation(t *testing.T) {
	store, _ := newTestStore(time.Hour)
	nsA := entity.WorkspaceNamespace(uuid.New())
	nsB := entity.WorkspaceNamespace(uuid.New())

	require.NoError(t, store.Set(context.Background(), nsA, "guests", []string{"Asha"}))

	var got []string
	found, err := store.Get(context.Background(), nsB, "guests", &got)
	require.NoError(t, err)
	assert.False(t, found, "workspace B must not see workspace A's guests")
}

func TestStore_PurgeNamespace(t *testing.T) {
	store, _ := newTestStore(time.Hour)
	nsA := entity.WorkspaceNamespace(uuid.New())
	nsB := entity.WorkspaceNamespace(uuid.New())
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, nsA, "guests", []string{"Asha"}))
	require.NoError(t, store.Set(ctx, nsA, "todos", []string{"book venue"}))
	require.NoError(t, store.Set(ctx, nsB, "guests", []string{"Mira"}))

	require.NoError(t, store.PurgeNamespace(ctx, nsA))

	found, err := store.Get(ctx, nsA, "guests", nil)
	require.NoError(t, err)
	assert.False(t, found)

	found, err = store.Get(ctx, nsA, "todos", nil)
	require.NoError(t, err)
	assert.False(t, found)

	// Other namespaces are untouched.
	found, err = store.Get(ctx, nsB, "guests", nil)
	require.NoError(t, err)
	assert.True(t, found)
}

func TestStore_Remove(t *testing.T) {
	store, _ := newTestStore(time.Hour)
	ns := entity.WorkspaceNamespace(uuid.New())
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, ns, "vendors", []string{"florist"}))
	require.NoError(t, store.Remove(ctx, ns, "vendors"))

	found, err := store.Get(ctx, ns, "vendors", nil)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestStore_MigrateLegacy(t *testing.T) {
	kv := NewMemoryStore()
	clock := &fakeClock{now: time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)}
	store := NewWithClock(kv, time.Hour, clock.Now)
	ns := entity.UserNamespace(uuid.New())
	ctx := context.Background()

	// Seed a legacy, pre-namespacing entry under the bare collection key.
	legacy := envelopeJSON(t, clock.now, 0, []string{"Asha"})
	require.NoError(t, kv.Set(ctx, "guests", legacy))

	require.NoError(t, store.MigrateLegacy(ctx, ns))

	var got []string
	found, err := store.Get(ctx, ns, "guests", &got)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, []string{"Asha"}, got)

	// The bare key must be gone.
	_, err = kv.Get(ctx, "guests")
	assert.Error(t, err)
}

func TestStore_MigrateLegacyPrefersNamespacedEntry(t *testing.T) {
	kv := NewMemoryStore()
	clock := &fakeClock{now: time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)}
	store := NewWithClock(kv, time.Hour, clock.Now)
	ns := entity.UserNamespace(uuid.New())
	ctx := context.Background()

	require.NoError(t, kv.Set(ctx, "guests", envelopeJSON(t, clock.now, 0, []string{"stale"})))
	require.NoError(t, store.Set(ctx, ns, "guests", []string{"fresh"}))

	require.NoError(t, store.MigrateLegacy(ctx, ns))

	var got []string
	found, err := store.Get(ctx, ns, "guests", &got)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, []string{"fresh"}, got)
}

func TestStore_CorruptEntryTreatedAsMiss(t *testing.T) {
	kv := NewMemoryStore()
	clock := &fakeClock{now: time.Now()}
	store := NewWithClock(kv, time.Hour, clock.Now)
	ns := entity.WorkspaceNamespace(uuid.New())
	ctx := context.Background()

	require.NoError(t, kv.Set(ctx, cacheKey(ns, "guests"), "{not json"))

	found, err := store.Get(ctx, ns, "guests", nil)
	require.NoError(t, err)
	assert.False(t, found)

	// The corrupt entry is dropped so the next write starts clean.
	_, err = kv.Get(ctx, cacheKey(ns, "guests"))
	assert.Error(t, err)
}

func envelopeJSON(t *testing.T, createdAt time.Time, ttl time.Duration, value any) string {
	t.Helper()

	store := NewWithClock(NewMemoryStore(), time.Hour, func() time.Time { return createdAt })
	ns := entity.NamespaceKey("tmp")
	require.NoError(t, store.SetWithTTL(context.Background(), ns, "k", value, ttl))

	raw, err := store.kv.Get(context.Background(), cacheKey(ns, "k"))
	require.NoError(t, err)

	return raw
}
