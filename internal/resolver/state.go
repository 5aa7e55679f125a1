package resolver

import "sync"

// ViewState serializes mode transitions against the asynchronous fetches they
// trigger. Entering PublicProfile or Editor starts exactly one fetch per
// transition; a recomputation that lands on the same target starts none; and
// a fetch result that arrives after the mode moved on is discarded instead of
// overwriting the newer mode's state.
type ViewState struct {
	mu   sync.Mutex
	mode Mode
	// fetched marks whether the current mode's one-shot fetch already ran
	// (or is in flight).
	fetched bool
	view    *PublicView
}

// NewViewState starts on the landing mode with nothing fetched.
func NewViewState() *ViewState {
	return &ViewState{mode: Mode{Kind: KindLanding}}
}

// Mode returns the currently resolved mode.
func (s *ViewState) Mode() Mode {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.mode
}

// Transition installs the newly resolved mode and reports whether the caller
// must issue the mode's fetch. Re-deriving an unchanged mode (history
// back/forward landing on the same target) never re-fetches.
func (s *ViewState) Transition(next Mode) (fetchNeeded bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if next == s.mode {
		if s.fetched {
			return false
		}
		s.fetched = modeFetches(next)
		return s.fetched
	}

	s.mode = next
	s.view = nil
	s.fetched = modeFetches(next)
	return s.fetched
}

// ApplyPublicView commits a finished public-profile fetch, but only when the
// mode still targets the username the fetch was issued for. Stale results are
// dropped, never displayed.
func (s *ViewState) ApplyPublicView(username string, view PublicView) (applied bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.mode.Kind != KindPublicProfile || s.mode.Username != username {
		return false
	}
	v := view
	s.view = &v
	return true
}

// PublicView returns the committed lookup result for the current mode, if any.
func (s *ViewState) PublicView() *PublicView {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.view == nil {
		return nil
	}
	v := *s.view
	return &v
}

func modeFetches(m Mode) bool {
	return m.Kind == KindPublicProfile || m.Kind == KindEditor
}
