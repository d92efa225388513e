// Package query is a keyed cache of server data with stale tracking, request
// deduplication and a fixed retry budget.
package query

import (
	"context"
	"fmt"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

type Status string

const (
	StatusIdle    Status = "idle"
	StatusLoading Status = "loading"
	StatusSuccess Status = "success"
	StatusError   Status = "error"
)

const (
	DefaultStaleTime = 30 * time.Second
	DefaultRetry     = 1
)

type Options struct {
	StaleTime time.Duration
	// Retry is the number of extra attempts after a failed fetch. Retries are
	// immediate.
	Retry int
	// RetryIf filters which errors are retried. Nil retries every error.
	RetryIf func(error) bool
	Now     func() time.Time
}

func DefaultOptions() Options {
	return Options{
		StaleTime: DefaultStaleTime,
		Retry:     DefaultRetry,
	}
}

type State struct {
	Status    Status
	Err       error
	UpdatedAt time.Time
	Stale     bool
}

type entry struct {
	key         Key
	data        interface{}
	hasData     bool
	err         error
	status      Status
	updatedAt   time.Time
	invalidated bool
	// gen advances whenever the entry is written or invalidated outside a load.
	gen uint64
}

type Client struct {
	opts Options

	mu      sync.Mutex
	entries map[string]*entry

	group singleflight.Group
}

func New(opts Options) *Client {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Retry < 0 {
		opts.Retry = 0
	}

	return &Client{
		opts:    opts,
		entries: make(map[string]*entry),
	}
}

// Fetch returns fresh cached data for key or loads it with fetcher. Concurrent
// calls for the same key share one load, which runs detached from any single
// caller's ctx. A load started before the entry was invalidated, replaced or
// removed never writes the cache.
func Fetch[T any](ctx context.Context, c *Client, key Key, fetcher func(ctx context.Context) (T, error)) (T, error) {
	var zero T

	if data, ok := c.fresh(key); ok {
		if typed, ok := data.(T); ok {
			return typed, nil
		}
	}

	id := key.String()
	flightCtx := context.WithoutCancel(ctx)
	ch := c.group.DoChan(id, func() (interface{}, error) {
		e, gen := c.markLoading(key)

		value, err := c.withRetry(flightCtx, func(ctx context.Context) (interface{}, error) {
			return fetcher(ctx)
		})
		c.store(e, gen, value, err)
		return value, err
	})

	var res singleflight.Result
	select {
	case <-ctx.Done():
		return zero, ctx.Err()
	case res = <-ch:
	}
	if res.Err != nil {
		return zero, res.Err
	}

	typed, ok := res.Val.(T)
	if !ok {
		return zero, fmt.Errorf("cached value for %s has type %T", id, res.Val)
	}
	return typed, nil
}

func GetData[T any](c *Client, key Key) (T, bool) {
	var zero T

	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key.String()]
	if !ok || !e.hasData {
		return zero, false
	}

	typed, ok := e.data.(T)
	return typed, ok
}

// SetData replaces cached data through update, which receives the current
// value and whether one exists.
func SetData[T any](c *Client, key Key, update func(current T, ok bool) T) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e := c.entry(key)

	var current T
	ok := false
	if e.hasData {
		current, ok = e.data.(T)
	}

	e.data = update(current, ok)
	e.hasData = true
	e.err = nil
	e.status = StatusSuccess
	e.updatedAt = c.opts.Now()
	e.invalidated = false
	e.gen++
	c.group.Forget(key.String())
}

// Invalidate marks every entry under prefix stale so the next Fetch reloads it.
func (c *Client) Invalidate(prefix Key) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for id, e := range c.entries {
		if !e.key.HasPrefix(prefix) {
			continue
		}
		e.invalidated = true
		e.gen++
		if e.status == StatusLoading {
			e.status = c.settledStatus(e)
		}
		c.group.Forget(id)
	}
}

// Remove drops every entry under prefix.
func (c *Client) Remove(prefix Key) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for id, e := range c.entries {
		if e.key.HasPrefix(prefix) {
			delete(c.entries, id)
			c.group.Forget(id)
		}
	}
}

func (c *Client) State(key Key) State {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key.String()]
	if !ok {
		return State{Status: StatusIdle, Stale: true}
	}

	return State{
		Status:    e.status,
		Err:       e.err,
		UpdatedAt: e.updatedAt,
		Stale:     c.isStale(e),
	}
}

func (c *Client) fresh(key Key) (interface{}, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key.String()]
	if !ok || !e.hasData || c.isStale(e) {
		return nil, false
	}
	return e.data, true
}

func (c *Client) markLoading(key Key) (*entry, uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e := c.entry(key)
	e.status = StatusLoading
	return e, e.gen
}

func (c *Client) store(e *entry, gen uint64, value interface{}, err error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	// superseded by Invalidate, SetData or Remove
	if c.entries[e.key.String()] != e || e.gen != gen {
		return
	}

	if err != nil {
		e.err = err
		e.status = StatusError
		return
	}

	e.data = value
	e.hasData = true
	e.err = nil
	e.status = StatusSuccess
	e.updatedAt = c.opts.Now()
	e.invalidated = false
}

func (c *Client) withRetry(ctx context.Context, fn func(ctx context.Context) (interface{}, error)) (interface{}, error) {
	var (
		value interface{}
		err   error
	)

	for attempt := 0; attempt <= c.opts.Retry; attempt++ {
		value, err = fn(ctx)
		if err == nil {
			return value, nil
		}
		if ctx.Err() != nil {
			return nil, err
		}
		if c.opts.RetryIf != nil && !c.opts.RetryIf(err) {
			return nil, err
		}
	}

	return nil, err
}

// entry must be called with mu held.
func (c *Client) entry(key Key) *entry {
	id := key.String()
	e, ok := c.entries[id]
	if !ok {
		e = &entry{key: key, status: StatusIdle}
		c.entries[id] = e
	}
	return e
}

// settledStatus must be called with mu held.
func (c *Client) settledStatus(e *entry) Status {
	switch {
	case e.err != nil:
		return StatusError
	case e.hasData:
		return StatusSuccess
	default:
		return StatusIdle
	}
}

func (c *Client) isStale(e *entry) bool {
	if e.invalidated || !e.hasData {
		return true
	}
	return c.opts.Now().Sub(e.updatedAt) >= c.opts.StaleTime
}
