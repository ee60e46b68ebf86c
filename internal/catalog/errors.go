package catalog

import (
	"errors"
	"fmt"
)

// ErrorKind classifies a failed fetch
type ErrorKind string

const (
	// KindNetwork covers transport failures and non-2xx responses
	KindNetwork ErrorKind = "network"

	// KindParse covers non-JSON bodies and missing or malformed fields
	KindParse ErrorKind = "parse"
)

var (
	// ErrNoEndpoint is returned when no endpoint URL was configured
	ErrNoEndpoint = errors.New("catalog endpoint URL is not configured")

	// ErrMissingItems is returned when the body has no "items" field
	ErrMissingItems = errors.New(`response has no "items" field`)
)

// FetchError wraps the underlying cause of a failed fetch
type FetchError struct {
	Kind       ErrorKind
	StatusCode int // set for non-2xx responses
	Err        error
}

// Error implements error
func (e *FetchError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s error: unexpected status %d: %v", e.Kind, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("%s error: %v", e.Kind, e.Err)
}

// Unwrap returns the underlying cause
func (e *FetchError) Unwrap() error {
	return e.Err
}

func networkError(err error) error {
	return &FetchError{Kind: KindNetwork, Err: err}
}

func statusError(code int, status string) error {
	return &FetchError{Kind: KindNetwork, StatusCode: code, Err: errors.New(status)}
}

func parseError(err error) error {
	return &FetchError{Kind: KindParse, Err: err}
}

// KindOf returns the kind of a fetch error, or "" when err is not one
func KindOf(err error) ErrorKind {
	var fe *FetchError
	if errors.As(err, &fe) {
		return fe.Kind
	}
	return ""
}

// IsNetwork reports whether err is a network-kind fetch error
func IsNetwork(err error) bool {
	return KindOf(err) == KindNetwork
}

// IsParse reports whether err is a parse-kind fetch error
func IsParse(err error) bool {
	return KindOf(err) == KindParse
}
