package orchestrator

import (
	"context"
	"fmt"
	"time"

	"github.com/vidyasetu/agentcore/core"
)

// Enqueue appends a task request to the background queue. The queue is an
// unbounded FIFO consumed only by the background loop, at most one task per
// iteration; queued results are cached on success and otherwise discarded.
func (o *Orchestrator) Enqueue(agentName string, task core.Task) {
	o.queueMu.Lock()
	o.queue = append(o.queue, queuedTask{agentName: agentName, task: task})
	depth := len(o.queue)
	o.queueMu.Unlock()
	o.logger.Debug("task enqueued", "agent", agentName, "task_type", task.Type, "queue_depth", depth)
}

// QueueDepth reports the number of pending queued tasks.
func (o *Orchestrator) QueueDepth() int {
	o.queueMu.Lock()
	defer o.queueMu.Unlock()
	return len(o.queue)
}

func (o *Orchestrator) dequeue() (queuedTask, bool) {
	o.queueMu.Lock()
	defer o.queueMu.Unlock()
	if len(o.queue) == 0 {
		return queuedTask{}, false
	}
	qt := o.queue[0]
	o.queue = o.queue[1:]
	return qt, true
}

// Start launches the background loop: each iteration drains at most one
// queued task, sweeps the result store, then sleeps PollInterval. An error or
// panic inside an iteration is logged and followed by the longer ErrorBackoff
// sleep; the loop itself exits only through Stop or Close. Calling Start on a
// running orchestrator is a no-op.
func (o *Orchestrator) Start() {
	o.loopMu.Lock()
	defer o.loopMu.Unlock()
	if o.cancel != nil {
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	o.cancel = cancel
	o.done = make(chan struct{})
	go o.run(ctx, o.done)
	o.logger.Info("background processing started",
		"poll_interval", o.pollInterval, "result_max_age", o.resultMaxAge)
}

// Stop signals the background loop to exit and returns without waiting for
// the current iteration; callers must tolerate up to one more queue-drain and
// sweep completing after Stop returns. Stopping a stopped orchestrator is a
// no-op.
func (o *Orchestrator) Stop() {
	o.loopMu.Lock()
	defer o.loopMu.Unlock()
	if o.cancel == nil {
		return
	}
	o.cancel()
	o.cancel = nil
	o.logger.Info("background processing stopping")
}

// Close stops the background loop and blocks until it has fully exited.
func (o *Orchestrator) Close() {
	o.loopMu.Lock()
	done := o.done
	o.loopMu.Unlock()

	o.Stop()
	if done != nil {
		<-done
	}
}

func (o *Orchestrator) run(ctx context.Context, done chan struct{}) {
	defer close(done)
	for {
		delay := o.pollInterval
		if err := o.iterate(ctx); err != nil {
			o.logger.Error("background processing error", "error", err)
			delay = o.errorBackoff
		}

		select {
		case <-ctx.Done():
			return
		case <-time.After(delay):
		}
	}
}

// iterate runs one loop body with panic isolation, so a failing agent or
// store can never kill the loop.
func (o *Orchestrator) iterate(ctx context.Context) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("background iteration panic: %v", r)
		}
	}()

	if qt, ok := o.dequeue(); ok {
		// Envelope intentionally dropped: successes are already cached by
		// ExecuteTask and failures have nowhere to go from a queued task.
		o.ExecuteTask(ctx, qt.agentName, qt.task)
	}

	if _, sweepErr := o.store.Sweep(o.resultMaxAge); sweepErr != nil {
		return fmt.Errorf("result sweep: %w", sweepErr)
	}
	return nil
}
