package ui

import (
	"sync"

	"fyne.io/fyne/v2"
)

// ViewportWatcher is a stacking layout that reports width changes of the
// area it lays out. Fyne has no window resize event, so the grid's parent
// container doubles as the resize source.
type ViewportWatcher struct {
	mu        sync.Mutex
	width     float32
	nextID    int
	listeners map[int]func(width float32)
}

// NewViewportWatcher creates a watcher with no listeners
func NewViewportWatcher() *ViewportWatcher {
	return &ViewportWatcher{listeners: make(map[int]func(float32))}
}

// Width returns the last laid out width
func (v *ViewportWatcher) Width() float32 {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.width
}

// SubscribeResize registers fn for width changes and returns its unsubscribe func
func (v *ViewportWatcher) SubscribeResize(fn func(width float32)) func() {
	v.mu.Lock()
	defer v.mu.Unlock()

	id := v.nextID
	v.nextID++
	v.listeners[id] = fn

	return func() {
		v.mu.Lock()
		defer v.mu.Unlock()
		delete(v.listeners, id)
	}
}

// Layout stacks objects over the full size and reports width changes
func (v *ViewportWatcher) Layout(objects []fyne.CanvasObject, size fyne.Size) {
	for _, obj := range objects {
		obj.Move(fyne.NewPos(0, 0))
		obj.Resize(size)
	}
	v.report(size.Width)
}

// MinSize returns the largest minimum size of the objects
func (v *ViewportWatcher) MinSize(objects []fyne.CanvasObject) fyne.Size {
	minSize := fyne.NewSize(0, 0)
	for _, obj := range objects {
		if !obj.Visible() {
			continue
		}
		minSize = minSize.Max(obj.MinSize())
	}
	return minSize
}

func (v *ViewportWatcher) report(width float32) {
	v.mu.Lock()
	if width == v.width {
		v.mu.Unlock()
		return
	}
	v.width = width
	listeners := make([]func(float32), 0, len(v.listeners))
	for _, fn := range v.listeners {
		listeners = append(listeners, fn)
	}
	v.mu.Unlock()

	for _, fn := range listeners {
		fn(width)
	}
}
