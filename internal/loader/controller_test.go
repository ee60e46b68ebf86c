package loader

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/ytget/storefront/internal/model"
)

// fakeFetcher blocks until release is closed, then returns items/err
type fakeFetcher struct {
	items   []model.Item
	err     error
	release chan struct{}

	mu    sync.Mutex
	calls int
	ctxs  []context.Context
}

func newFakeFetcher(items []model.Item, err error) *fakeFetcher {
	return &fakeFetcher{items: items, err: err, release: make(chan struct{})}
}

func (f *fakeFetcher) FetchItems(ctx context.Context) ([]model.Item, error) {
	f.mu.Lock()
	f.calls++
	f.ctxs = append(f.ctxs, ctx)
	f.mu.Unlock()

	<-f.release
	return f.items, f.err
}

func (f *fakeFetcher) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

// recorder collects every state reported to the update callback
type recorder struct {
	mu     sync.Mutex
	states []model.LoadState
}

func (r *recorder) record(s Snapshot) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.states = append(r.states, s.State)
}

func (r *recorder) get() []model.LoadState {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]model.LoadState(nil), r.states...)
}

func waitDone(t *testing.T, c *Controller) {
	t.Helper()
	select {
	case <-c.Done():
	case <-time.After(2 * time.Second):
		t.Fatal("controller did not finish")
	}
}

func TestNewController(t *testing.T) {
	c := NewController(newFakeFetcher(nil, nil))

	snap := c.Snapshot()
	require.Equal(t, model.LoadStateIdle, snap.State)
	require.Empty(t, snap.Items)
	require.Empty(t, snap.Message())
}

func TestStart_Success(t *testing.T) {
	items := []model.Item{{ID: "a1", Name: "Watch", PriceUSD: 49}, {ID: "b2", Name: "Ring", PriceUSD: 10}}
	f := newFakeFetcher(items, nil)
	c := NewController(f)
	rec := &recorder{}
	c.SetUpdateCallback(rec.record)

	require.True(t, c.Start(context.Background()))
	require.Equal(t, model.LoadStateLoading, c.Snapshot().State)

	close(f.release)
	waitDone(t, c)

	snap := c.Snapshot()
	require.Equal(t, model.LoadStateReady, snap.State)
	require.Len(t, snap.Items, 2)
	require.NoError(t, snap.Err)
	require.Equal(t, []model.LoadState{model.LoadStateLoading, model.LoadStateReady}, rec.get())
	require.Equal(t, 1, f.callCount())
}

func TestStart_Failure(t *testing.T) {
	f := newFakeFetcher(nil, errors.New("connection refused"))
	c := NewController(f)
	rec := &recorder{}
	c.SetUpdateCallback(rec.record)

	require.True(t, c.Start(context.Background()))
	close(f.release)
	waitDone(t, c)

	snap := c.Snapshot()
	require.Equal(t, model.LoadStateFailed, snap.State)
	require.Empty(t, snap.Items)
	require.Equal(t, AlertTitle+"\n\nconnection refused", snap.Message())
	require.Equal(t, []model.LoadState{model.LoadStateLoading, model.LoadStateFailed}, rec.get())
}

func TestStart_OnlyOnce(t *testing.T) {
	f := newFakeFetcher(nil, nil)
	close(f.release)
	c := NewController(f)

	require.True(t, c.Start(context.Background()))
	require.False(t, c.Start(context.Background()))
	waitDone(t, c)
	require.False(t, c.Start(context.Background()))

	require.Equal(t, 1, f.callCount())
	require.Equal(t, model.LoadStateReady, c.Snapshot().State)
}

func TestRun_Synchronous(t *testing.T) {
	f := newFakeFetcher([]model.Item{{ID: "a1"}}, nil)
	close(f.release)
	c := NewController(f)

	snap := c.Run(context.Background())
	require.Equal(t, model.LoadStateReady, snap.State)
	require.Len(t, snap.Items, 1)

	again := c.Run(context.Background())
	require.Equal(t, model.LoadStateReady, again.State)
	require.Equal(t, 1, f.callCount())
}

func TestClose_DuringFetchDropsResult(t *testing.T) {
	f := newFakeFetcher([]model.Item{{ID: "a1"}}, nil)
	c := NewController(f)
	rec := &recorder{}
	c.SetUpdateCallback(rec.record)

	require.True(t, c.Start(context.Background()))
	require.Eventually(t, func() bool { return f.callCount() == 1 }, time.Second, 5*time.Millisecond)

	c.Close()

	f.mu.Lock()
	ctx := f.ctxs[0]
	f.mu.Unlock()
	require.ErrorIs(t, ctx.Err(), context.Canceled)

	close(f.release)
	waitDone(t, c)

	require.Equal(t, model.LoadStateLoading, c.Snapshot().State)
	require.Equal(t, []model.LoadState{model.LoadStateLoading}, rec.get())
}

func TestClose_BeforeStart(t *testing.T) {
	f := newFakeFetcher(nil, nil)
	c := NewController(f)

	c.Close()
	c.Close()

	require.False(t, c.Start(context.Background()))
	waitDone(t, c)
	require.Equal(t, 0, f.callCount())
	require.Equal(t, model.LoadStateIdle, c.Snapshot().State)
}

func TestClose_AfterReadyKeepsState(t *testing.T) {
	f := newFakeFetcher([]model.Item{{ID: "a1"}}, nil)
	close(f.release)
	c := NewController(f)

	c.Run(context.Background())
	c.Close()

	require.Equal(t, model.LoadStateReady, c.Snapshot().State)
}

func TestSnapshot_ItemsAreCopied(t *testing.T) {
	f := newFakeFetcher([]model.Item{{ID: "a1", Name: "Watch"}}, nil)
	close(f.release)
	c := NewController(f)

	snap := c.Run(context.Background())
	snap.Items[0].Name = "mutated"

	require.Equal(t, "Watch", c.Snapshot().Items[0].Name)
}

func TestSnapshot_Message(t *testing.T) {
	tests := []struct {
		snap     Snapshot
		expected string
	}{
		{Snapshot{State: model.LoadStateLoading}, ""},
		{Snapshot{State: model.LoadStateReady}, ""},
		{Snapshot{State: model.LoadStateFailed}, ""},
		{Snapshot{State: model.LoadStateFailed, Err: errors.New("boom")}, AlertTitle + "\n\nboom"},
	}

	for _, test := range tests {
		if got := test.snap.Message(); got != test.expected {
			t.Errorf("Message() for %s = %q, expected %q", test.snap.State, got, test.expected)
		}
	}
}
