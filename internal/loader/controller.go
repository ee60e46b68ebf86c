// Package loader drives the one-shot catalog fetch through the
// Idle -> Loading -> {Ready | Failed} state machine.
package loader

import (
	"context"
	"log"
	"sync"

	"github.com/ytget/storefront/internal/catalog"
	"github.com/ytget/storefront/internal/model"
)

// AlertTitle prefixes every user-visible fetch failure
const AlertTitle = "Something went wrong!"

// Snapshot is an immutable view of the controller state
type Snapshot struct {
	State model.LoadState
	Items []model.Item
	Err   error
}

// Message returns the user-visible failure text, or "" when not failed
func (s Snapshot) Message() string {
	if s.State != model.LoadStateFailed || s.Err == nil {
		return ""
	}
	return AlertTitle + "\n\n" + s.Err.Error()
}

// Controller handles the catalog fetch lifecycle for one mount
type Controller struct {
	fetcher catalog.Fetcher

	mu     sync.Mutex
	state  model.LoadState
	items  []model.Item
	err    error
	closed bool
	cancel context.CancelFunc
	done   chan struct{}

	onUpdate func(Snapshot) // callback for UI updates
}

// NewController creates a new controller reading from fetcher
func NewController(fetcher catalog.Fetcher) *Controller {
	return &Controller{
		fetcher: fetcher,
		state:   model.LoadStateIdle,
		done:    make(chan struct{}),
	}
}

// SetUpdateCallback sets the callback invoked after every state transition
func (c *Controller) SetUpdateCallback(callback func(Snapshot)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.onUpdate = callback
}

// Snapshot returns the current state
func (c *Controller) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshotLocked()
}

// Start moves Idle -> Loading and fetches in the background.
// It returns false when the controller was already started or closed.
func (c *Controller) Start(ctx context.Context) bool {
	fetchCtx, ok := c.begin(ctx)
	if !ok {
		return false
	}

	go c.fetch(fetchCtx)
	return true
}

// Run is the synchronous form of Start: it fetches on the calling goroutine
// and returns the resulting snapshot
func (c *Controller) Run(ctx context.Context) Snapshot {
	fetchCtx, ok := c.begin(ctx)
	if !ok {
		return c.Snapshot()
	}

	c.fetch(fetchCtx)
	return c.Snapshot()
}

// Done is closed once the fetch resolved or the controller was closed
func (c *Controller) Done() <-chan struct{} {
	return c.done
}

// Close cancels an in-flight fetch; any late result is dropped.
// Safe to call more than once and before Start.
func (c *Controller) Close() {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	c.closed = true
	cancel := c.cancel
	c.cancel = nil
	if !c.state.IsLoading() {
		c.closeDoneLocked()
	}
	c.mu.Unlock()

	if cancel != nil {
		log.Printf("Cancelling in-flight catalog fetch")
		cancel()
	}
}

// begin performs the Idle -> Loading transition
func (c *Controller) begin(ctx context.Context) (context.Context, bool) {
	c.mu.Lock()
	if c.closed || !c.state.CanTransition(model.LoadStateLoading) {
		c.mu.Unlock()
		return nil, false
	}

	fetchCtx, cancel := context.WithCancel(ctx)
	c.cancel = cancel
	c.state = model.LoadStateLoading
	snap := c.snapshotLocked()
	callback := c.onUpdate
	c.mu.Unlock()

	notify(callback, snap)
	return fetchCtx, true
}

func (c *Controller) fetch(ctx context.Context) {
	items, err := c.fetcher.FetchItems(ctx)
	c.resolve(items, err)
}

// resolve performs the single Loading -> {Ready | Failed} transition
func (c *Controller) resolve(items []model.Item, err error) {
	c.mu.Lock()
	if c.cancel != nil {
		c.cancel()
		c.cancel = nil
	}
	if !c.state.IsLoading() {
		c.mu.Unlock()
		return
	}
	if c.closed {
		// torn down mid-fetch: leave state untouched, nobody is listening
		log.Printf("Dropping catalog result after close: items=%d err=%v", len(items), err)
		c.closeDoneLocked()
		c.mu.Unlock()
		return
	}

	if err != nil {
		c.state = model.LoadStateFailed
		c.err = err
		log.Printf("Catalog load failed: kind=%s err=%v", catalog.KindOf(err), err)
	} else {
		c.state = model.LoadStateReady
		c.items = items
		log.Printf("Catalog load ready: items=%d", len(items))
	}
	c.closeDoneLocked()
	snap := c.snapshotLocked()
	callback := c.onUpdate
	c.mu.Unlock()

	notify(callback, snap)
}

func (c *Controller) closeDoneLocked() {
	select {
	case <-c.done:
	default:
		close(c.done)
	}
}

func (c *Controller) snapshotLocked() Snapshot {
	items := make([]model.Item, len(c.items))
	copy(items, c.items)
	return Snapshot{State: c.state, Items: items, Err: c.err}
}

func notify(callback func(Snapshot), snap Snapshot) {
	if callback != nil {
		callback(snap)
	}
}
