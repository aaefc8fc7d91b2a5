package orchestrator

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vidyasetu/agentcore/core"
	"github.com/vidyasetu/agentcore/results"
)

func TestBackground_DrainsQueue(t *testing.T) {
	o := New(func(opts *Options) {
		opts.PollInterval = time.Millisecond
	})
	defer o.Close()

	var processed atomic.Int32
	o.Register(newScriptedAgent("Counter", "counts invocations", core.CapabilityFocus,
		func(context.Context, core.Task) (any, error) {
			processed.Add(1)
			return nil, nil
		}))

	for i := 0; i < 5; i++ {
		o.Enqueue("Counter", core.Task{Type: "tick"})
	}
	assert.Equal(t, 5, o.QueueDepth())

	o.Start()

	require.Eventually(t, func() bool {
		return processed.Load() == 5 && o.QueueDepth() == 0
	}, 2*time.Second, 5*time.Millisecond)
}

func TestBackground_QueuedResultsAreCached(t *testing.T) {
	store := results.NewInMemoryStore()
	o := New(func(opts *Options) {
		opts.PollInterval = time.Millisecond
		opts.ResultStore = store
	})
	defer o.Close()

	o.Register(echoAgent("Echo"))
	o.Enqueue("Echo", core.Task{Type: "echo", Input: map[string]any{"n": 7}})
	o.Start()

	// The queued task's envelope lands in the store like any direct call.
	require.Eventually(t, func() bool {
		return o.QueueDepth() == 0 && store.Len() == 1
	}, 2*time.Second, 5*time.Millisecond)
}

func TestBackground_PanicDoesNotKillLoop(t *testing.T) {
	o := New(func(opts *Options) {
		opts.PollInterval = time.Millisecond
		opts.ErrorBackoff = time.Millisecond
	})
	defer o.Close()

	var processed atomic.Int32
	o.Register(newScriptedAgent("Panicky", "panics once", core.CapabilityFocus,
		func(context.Context, core.Task) (any, error) {
			if processed.Add(1) == 1 {
				panic("transient")
			}
			return nil, nil
		}))

	o.Enqueue("Panicky", core.Task{Type: "work"})
	o.Enqueue("Panicky", core.Task{Type: "work"})
	o.Start()

	require.Eventually(t, func() bool {
		return processed.Load() == 2
	}, 2*time.Second, 5*time.Millisecond)
}

func TestBackground_StartIsIdempotent(t *testing.T) {
	o := New(func(opts *Options) {
		opts.PollInterval = time.Millisecond
	})
	defer o.Close()

	o.Start()
	require.NotPanics(t, func() { o.Start() })
}

func TestBackground_StopWithoutStart(t *testing.T) {
	o := New()
	require.NotPanics(t, func() { o.Stop() })
	require.NotPanics(t, func() { o.Close() })
}

func TestBackground_CloseWaitsForLoopExit(t *testing.T) {
	o := New(func(opts *Options) {
		opts.PollInterval = time.Millisecond
	})
	o.Start()
	o.Close()

	// After Close returns the loop is gone: nothing drains new work.
	o.Register(echoAgent("Echo"))
	o.Enqueue("Echo", core.Task{Type: "echo"})
	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, 1, o.QueueDepth())
}
