// Package screen composes the layout calculator, the load controller, the
// interaction store and the skeleton animator into a single storefront
// screen with an explicit mount/unmount lifecycle.
package screen

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/ytget/storefront/internal/animator"
	"github.com/ytget/storefront/internal/catalog"
	"github.com/ytget/storefront/internal/layout"
	"github.com/ytget/storefront/internal/lifecycle"
	"github.com/ytget/storefront/internal/loader"
	"github.com/ytget/storefront/internal/model"
	"github.com/ytget/storefront/internal/state"
)

// Viewport delivers resize notifications for the display the screen lives on
type Viewport interface {
	SubscribeResize(func(width float32)) (unsubscribe func())
}

// Options configures a Screen
type Options struct {
	CardWidth        float32
	ImageBaseURL     string
	FallbackImageURL string
	PulsePeriod      time.Duration
}

func (o Options) withDefaults() Options {
	if o.CardWidth <= 0 {
		o.CardWidth = layout.DefaultCardWidth
	}
	if o.ImageBaseURL == "" {
		o.ImageBaseURL = model.DefaultImageBaseURL
	}
	if o.FallbackImageURL == "" {
		o.FallbackImageURL = model.DefaultFallbackImageURL
	}
	if o.PulsePeriod <= 0 {
		o.PulsePeriod = animator.DefaultPeriod
	}
	return o
}

// Screen is one mount of the storefront
type Screen struct {
	opts Options

	layout *layout.Calculator
	loader *loader.Controller
	store  *state.Store
	pulse  *animator.Pulse
	scope  *lifecycle.Scope

	mu        sync.Mutex
	sessionID string
	mounted   bool
	unmounted bool
	onChange  func()
}

// New creates an unmounted screen reading from fetcher
func New(fetcher catalog.Fetcher, opts Options) *Screen {
	opts = opts.withDefaults()
	s := &Screen{
		opts:   opts,
		layout: layout.NewCalculator(opts.CardWidth),
		loader: loader.NewController(fetcher),
		store:  state.NewStore(),
		pulse:  animator.NewPulse(opts.PulsePeriod),
		scope:  lifecycle.NewScope(),
	}
	s.store.SetChangeCallback(func(string) { s.notify() })
	return s
}

// SetChangeCallback sets the callback invoked whenever the view may have
// changed. It can be called from any goroutine; render layers marshal it
// onto their UI thread.
func (s *Screen) SetChangeCallback(callback func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onChange = callback
}

// SessionID returns the id of the current mount, "" before Mount
func (s *Screen) SessionID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sessionID
}

// Mount computes the initial layout, subscribes to viewport resizes, starts
// the skeleton timer and issues the catalog fetch. A screen mounts once.
func (s *Screen) Mount(ctx context.Context, width float32, viewport Viewport) {
	s.mu.Lock()
	if s.mounted {
		s.mu.Unlock()
		return
	}
	s.mounted = true
	s.sessionID = newSessionID()
	session := s.sessionID
	s.mu.Unlock()

	log.Printf("Mounting storefront screen: session=%s width=%.0f", session, width)

	s.layout.Update(width)
	if viewport != nil {
		s.scope.Acquire("resize subscription", viewport.SubscribeResize(s.Resize))
	}

	s.pulse.SetTickCallback(func(bool) {
		if s.loader.Snapshot().State.IsLoading() {
			s.notify()
		}
	})
	s.pulse.Start()
	s.scope.Acquire("skeleton timer", s.pulse.Stop)

	s.loader.SetUpdateCallback(func(snap loader.Snapshot) {
		log.Printf("Storefront load state changed: session=%s state=%s", session, snap.State)
		s.notify()
	})
	s.scope.Acquire("catalog fetch", s.loader.Close)
	s.loader.Start(ctx)
}

// Unmount releases the timer, the resize subscription and the in-flight
// fetch. No change callback fires afterwards.
func (s *Screen) Unmount() {
	s.mu.Lock()
	if s.unmounted {
		s.mu.Unlock()
		return
	}
	s.unmounted = true
	session := s.sessionID
	s.mu.Unlock()

	log.Printf("Unmounting storefront screen: session=%s", session)
	s.scope.Close()
}

// Mounted reports whether the screen is mounted and not yet torn down
func (s *Screen) Mounted() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.mounted && !s.unmounted
}

// Resize recomputes the column count for a new viewport width
func (s *Screen) Resize(width float32) {
	if columns, changed := s.layout.Update(width); changed {
		log.Printf("Grid columns changed: columns=%d width=%.0f", columns, width)
		s.notify()
	}
}

// IncrementQuantity adds one to the quantity of id
func (s *Screen) IncrementQuantity(id string) {
	s.store.IncrementQuantity(id)
}

// DecrementQuantity subtracts one from the quantity of id, never below zero
func (s *Screen) DecrementQuantity(id string) {
	s.store.DecrementQuantity(id)
}

// ToggleFavorite flips the favorite membership of id
func (s *Screen) ToggleFavorite(id string) {
	s.store.ToggleFavorite(id)
}

// Store exposes the interaction store
func (s *Screen) Store() *state.Store {
	return s.store
}

// Loader exposes the load controller
func (s *Screen) Loader() *loader.Controller {
	return s.loader
}

// Pulse exposes the skeleton animator
func (s *Screen) Pulse() *animator.Pulse {
	return s.pulse
}

// Columns returns the current column count
func (s *Screen) Columns() int {
	return s.layout.Columns()
}

// View builds the render-ready state of the screen
func (s *Screen) View() ViewState {
	snap := s.loader.Snapshot()
	dim := s.pulse.Dim()

	view := ViewState{
		LoadState: snap.State,
		Columns:   s.layout.Columns(),
		Dim:       dim,
		Opacity:   animator.Opacity(dim),
	}

	switch snap.State {
	case model.LoadStateIdle, model.LoadStateLoading:
		view.Mode = ModeSkeleton
		view.SkeletonCount = layout.SkeletonCount(view.Columns)
	case model.LoadStateReady:
		if len(snap.Items) == 0 {
			view.Mode = ModeEmpty
			break
		}
		view.Mode = ModeGrid
		view.Cards = s.cards(snap.Items)
	case model.LoadStateFailed:
		view.Mode = ModeEmpty
		view.Alert = snap.Message()
	}
	return view
}

func (s *Screen) cards(items []model.Item) []Card {
	cards := make([]Card, 0, len(items))
	for _, item := range items {
		cards = append(cards, Card{
			ID:       item.ID,
			Name:     item.GetDisplayName(),
			ImageURL: item.ImageURL(s.opts.ImageBaseURL, s.opts.FallbackImageURL),
			Price:    item.PriceLabel(),
			Quantity: s.store.Quantity(item.ID),
			Favorite: s.store.IsFavorite(item.ID),
		})
	}
	return cards
}

func (s *Screen) notify() {
	s.mu.Lock()
	callback := s.onChange
	live := s.mounted && !s.unmounted
	s.mu.Unlock()

	if live && callback != nil {
		callback()
	}
}

// newSessionID generates the id tagging one mount in the logs
func newSessionID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return fmt.Sprintf("session-%d", time.Now().UnixNano())
	}
	return id.String()
}
