// Package animator drives the pulsing placeholder blocks of the skeleton grid.
package animator

import (
	"sync"
	"time"
)

// Pulse timing and opacity constants
const (
	DefaultPeriod = time.Second

	DimOpacity    float32 = 0.6
	OpaqueOpacity float32 = 1.0
)

// Opacity maps the pulse flag to the alpha applied to placeholder blocks
func Opacity(dim bool) float32 {
	if dim {
		return DimOpacity
	}
	return OpaqueOpacity
}

// Pulse flips a boolean on a fixed period while running
type Pulse struct {
	period time.Duration

	mu      sync.Mutex
	dim     bool
	running bool
	stop    chan struct{}
	exited  chan struct{}
	onTick  func(dim bool)
}

// NewPulse creates a stopped pulse; period <= 0 uses DefaultPeriod
func NewPulse(period time.Duration) *Pulse {
	if period <= 0 {
		period = DefaultPeriod
	}
	return &Pulse{period: period, dim: true}
}

// Period returns the flip period
func (p *Pulse) Period() time.Duration {
	return p.period
}

// SetTickCallback sets the callback invoked after every flip
func (p *Pulse) SetTickCallback(callback func(dim bool)) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.onTick = callback
}

// Dim returns the current flag
func (p *Pulse) Dim() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.dim
}

// Opacity returns the alpha for the current flag
func (p *Pulse) Opacity() float32 {
	return Opacity(p.Dim())
}

// Running reports whether the timer goroutine is active
func (p *Pulse) Running() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.running
}

// Flip toggles the flag and returns the new value
func (p *Pulse) Flip() bool {
	p.mu.Lock()
	p.dim = !p.dim
	dim := p.dim
	callback := p.onTick
	p.mu.Unlock()

	if callback != nil {
		callback(dim)
	}
	return dim
}

// Start launches the recurring timer. Starting a running pulse is a no-op.
func (p *Pulse) Start() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.running {
		return
	}

	p.running = true
	p.stop = make(chan struct{})
	p.exited = make(chan struct{})
	go p.loop(p.stop, p.exited)
}

// Stop cancels the timer and waits for its goroutine to exit.
// Stopping a stopped pulse is a no-op.
func (p *Pulse) Stop() {
	p.mu.Lock()
	if !p.running {
		p.mu.Unlock()
		return
	}
	p.running = false
	stop, exited := p.stop, p.exited
	p.stop, p.exited = nil, nil
	p.mu.Unlock()

	close(stop)
	<-exited
}

func (p *Pulse) loop(stop <-chan struct{}, exited chan<- struct{}) {
	defer close(exited)

	ticker := time.NewTicker(p.period)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			select {
			case <-stop:
				return
			default:
			}
			p.Flip()
		}
	}
}
