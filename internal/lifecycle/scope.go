// Package lifecycle ties resources acquired on mount to a single release
// point on teardown.
package lifecycle

import (
	"log"
	"sync"
)

type resource struct {
	name    string
	release func()
}

// Scope releases every acquired resource exactly once, in reverse order
type Scope struct {
	mu        sync.Mutex
	resources []resource
	closed    bool
}

// NewScope creates an open scope
func NewScope() *Scope {
	return &Scope{}
}

// Acquire registers release under name. On a closed scope the release runs
// immediately so late acquisitions never leak.
func (s *Scope) Acquire(name string, release func()) {
	if release == nil {
		return
	}

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		log.Printf("Scope already closed, releasing %s immediately", name)
		release()
		return
	}
	s.resources = append(s.resources, resource{name: name, release: release})
	s.mu.Unlock()
}

// Close releases all resources in reverse acquisition order.
// A panicking release does not prevent the others from running.
func (s *Scope) Close() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.closed = true
	resources := s.resources
	s.resources = nil
	s.mu.Unlock()

	for i := len(resources) - 1; i >= 0; i-- {
		runRelease(resources[i])
	}
}

// Closed reports whether Close was called
func (s *Scope) Closed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.closed
}

// Len returns the number of resources still held
func (s *Scope) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.resources)
}

func runRelease(r resource) {
	defer func() {
		if rec := recover(); rec != nil {
			log.Printf("Release of %s panicked: %v", r.name, rec)
		}
	}()
	r.release()
	log.Printf("Released %s", r.name)
}
