// Package redis provides a Redis-backed core.ResultStore. Envelopes are
// stored as JSON values under a configurable key prefix with a server-side
// TTL, so expiry happens in Redis itself and the periodic Sweep becomes a
// no-op. Use this backend when task results must survive process restarts or
// be visible to multiple orchestrator instances.
package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/vidyasetu/agentcore/core"
	"github.com/vidyasetu/agentcore/results"
)

// Options configure the Redis result store.
type Options struct {
	// KeyPrefix namespaces the stored envelopes. Defaults to "agentcore:result:".
	KeyPrefix string

	// TTL is the server-side expiry applied on Put. Defaults to 24h, matching
	// the orchestrator's default result max age.
	TTL time.Duration

	// OpTimeout bounds each Redis round trip. Defaults to 5s.
	OpTimeout time.Duration
}

// Store implements core.ResultStore on top of a Redis client.
type Store struct {
	client *redis.Client
	opts   Options
}

var _ core.ResultStore = (*Store)(nil)

// New creates a Store from an existing Redis client.
func New(client *redis.Client, optFns ...func(o *Options)) *Store {
	opts := Options{
		KeyPrefix: "agentcore:result:",
		TTL:       24 * time.Hour,
		OpTimeout: 5 * time.Second,
	}
	for _, fn := range optFns {
		fn(&opts)
	}
	return &Store{client: client, opts: opts}
}

// NewFromAddr creates a Store with its own client connected to addr.
func NewFromAddr(addr string, optFns ...func(o *Options)) *Store {
	return New(redis.NewClient(&redis.Options{Addr: addr}), optFns...)
}

// Put marshals the envelope and writes it with the configured TTL.
func (s *Store) Put(result core.TaskResult) error {
	ctx, cancel := s.opCtx()
	defer cancel()

	data, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("marshal result %s: %w", result.TaskID, err)
	}
	if err := s.client.Set(ctx, s.key(result.TaskID), data, s.opts.TTL).Err(); err != nil {
		return fmt.Errorf("store result %s: %w", result.TaskID, err)
	}
	return nil
}

// Get returns the stored envelope. Missing keys and undecodable values both
// surface as results.ErrNotFound: a corrupt entry is indistinguishable from an
// absent one to callers and must not poison reads of other entries.
func (s *Store) Get(taskID string) (core.TaskResult, error) {
	ctx, cancel := s.opCtx()
	defer cancel()

	data, err := s.client.Get(ctx, s.key(taskID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return core.TaskResult{}, results.ErrNotFound
	}
	if err != nil {
		return core.TaskResult{}, fmt.Errorf("load result %s: %w", taskID, err)
	}

	var result core.TaskResult
	if err := json.Unmarshal(data, &result); err != nil {
		return core.TaskResult{}, results.ErrNotFound
	}
	return result, nil
}

// Len counts envelopes currently stored under the key prefix.
func (s *Store) Len() int {
	ctx, cancel := s.opCtx()
	defer cancel()

	keys, err := s.client.Keys(ctx, s.opts.KeyPrefix+"*").Result()
	if err != nil {
		return 0
	}
	return len(keys)
}

// Sweep is a no-op: expiry is enforced server-side by the TTL set on Put.
func (s *Store) Sweep(time.Duration) (int, error) {
	return 0, nil
}

func (s *Store) key(taskID string) string {
	return s.opts.KeyPrefix + taskID
}

func (s *Store) opCtx() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), s.opts.OpTimeout)
}
