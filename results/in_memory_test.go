package results

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vidyasetu/agentcore/core"
)

func envelope(taskID string, age time.Duration) core.TaskResult {
	return core.TaskResult{
		Success:   true,
		TaskID:    taskID,
		AgentName: "TestAgent",
		Result:    "ok",
		Timestamp: time.Now().Add(-age),
	}
}

func TestInMemoryStore_PutGet(t *testing.T) {
	store := NewInMemoryStore()

	want := envelope("task-1", 0)
	require.NoError(t, store.Put(want))

	got, err := store.Get("task-1")
	require.NoError(t, err)
	assert.Equal(t, want, got)
	assert.Equal(t, 1, store.Len())
}

func TestInMemoryStore_GetMissing(t *testing.T) {
	store := NewInMemoryStore()

	_, err := store.Get("nope")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestInMemoryStore_PutOverwrites(t *testing.T) {
	store := NewInMemoryStore()

	first := envelope("task-1", 0)
	second := first
	second.Result = "updated"

	require.NoError(t, store.Put(first))
	require.NoError(t, store.Put(second))

	got, err := store.Get("task-1")
	require.NoError(t, err)
	assert.Equal(t, "updated", got.Result)
	assert.Equal(t, 1, store.Len())
}

func TestInMemoryStore_SweepEvictsOldEntries(t *testing.T) {
	store := NewInMemoryStore()
	require.NoError(t, store.Put(envelope("old", 2*time.Hour)))
	require.NoError(t, store.Put(envelope("fresh", time.Minute)))

	evicted, err := store.Sweep(time.Hour)
	require.NoError(t, err)
	assert.Equal(t, 1, evicted)

	_, err = store.Get("old")
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = store.Get("fresh")
	assert.NoError(t, err)
}

func TestInMemoryStore_SweepZeroMaxAgeEvictsAll(t *testing.T) {
	store := NewInMemoryStore()
	require.NoError(t, store.Put(envelope("a", time.Second)))
	require.NoError(t, store.Put(envelope("b", 0)))

	evicted, err := store.Sweep(0)
	require.NoError(t, err)
	assert.Equal(t, 2, evicted)
	assert.Equal(t, 0, store.Len())
}

func TestInMemoryStore_SweepEmpty(t *testing.T) {
	store := NewInMemoryStore()

	evicted, err := store.Sweep(time.Hour)
	require.NoError(t, err)
	assert.Equal(t, 0, evicted)
}

func TestInMemoryStore_ConcurrentAccess(t *testing.T) {
	store := NewInMemoryStore()

	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < 100; i++ {
			_ = store.Put(envelope("shared", 0))
		}
	}()
	for i := 0; i < 100; i++ {
		_, _ = store.Get("shared")
		_ = store.Len()
	}
	<-done
}
