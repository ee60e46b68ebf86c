package model

// LoadState represents the lifecycle of the one-shot catalog fetch
type LoadState string

const (
	// LoadStateIdle means the screen is not mounted yet
	LoadStateIdle LoadState = "Idle"

	// LoadStateLoading means the fetch is in flight
	LoadStateLoading LoadState = "Loading"

	// LoadStateReady means the items were fetched successfully
	LoadStateReady LoadState = "Ready"

	// LoadStateFailed means the fetch failed; terminal for the mount
	LoadStateFailed LoadState = "Failed"
)

// String returns the string representation of LoadState
func (ls LoadState) String() string {
	return string(ls)
}

// IsLoading returns true while the skeleton grid should be shown
func (ls LoadState) IsLoading() bool {
	return ls == LoadStateLoading
}

// IsFinished returns true if the state is terminal (ready or failed)
func (ls LoadState) IsFinished() bool {
	return ls == LoadStateReady || ls == LoadStateFailed
}

// CanTransition reports whether moving from ls to next is a legal step.
// Idle -> Loading -> {Ready | Failed}; terminal states never move again.
func (ls LoadState) CanTransition(next LoadState) bool {
	switch ls {
	case LoadStateIdle:
		return next == LoadStateLoading
	case LoadStateLoading:
		return next == LoadStateReady || next == LoadStateFailed
	default:
		return false
	}
}
