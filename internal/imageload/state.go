// Package imageload implements the retry-once image policy used by question
// cards and the asset loader behind it.
package imageload

import "strings"

// CacheBustMarker is appended to an image source before its single retry.
const CacheBustMarker = "cb=1"

// State tracks one card's image. The zero value means "no image".
type State struct {
	Src    string
	Loaded bool
	Failed bool
}

// NewState starts a pending load of src.
func NewState(src string) State {
	return State{Src: src}
}

// Pending reports whether a load result is still expected.
func (s State) Pending() bool {
	return !s.Loaded && !s.Failed
}

// Succeed records a successful load.
func (s *State) Succeed() {
	s.Loaded = true
	s.Failed = false
}

// Fail records a failed load and reports whether a retry should be issued
// with the updated Src. The first failure of a non-empty source appends the
// cache-busting marker; any other failure is permanent.
func (s *State) Fail() (retry bool) {
	if s.Failed {
		return false
	}
	if s.Src == "" || strings.Contains(s.Src, "cb=") {
		s.Failed = true
		return false
	}

	sep := "?"
	if strings.Contains(s.Src, "?") {
		sep = "&"
	}
	s.Src += sep + CacheBustMarker
	return true
}
