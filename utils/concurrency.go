package utils

import (
	"sort"
	"sync"
)

// FingerprintSet is a thread-safe, grow-only set of listing fingerprints.
// The polling loop is the only writer, but the set is shared with storage
// snapshots, so access stays guarded.
type FingerprintSet struct {
	mu   sync.RWMutex
	seen map[string]struct{}
}

// NewFingerprintSet creates a set pre-populated with the given fingerprints.
func NewFingerprintSet(initial []string) *FingerprintSet {
	seen := make(map[string]struct{}, len(initial))
	for _, fp := range initial {
		seen[fp] = struct{}{}
	}
	return &FingerprintSet{seen: seen}
}

// Add returns true if the fingerprint was newly added, false if already present.
func (s *FingerprintSet) Add(fp string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.seen[fp]; exists {
		return false
	}
	s.seen[fp] = struct{}{}
	return true
}

// Contains returns true if the fingerprint has already been alerted on.
func (s *FingerprintSet) Contains(fp string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, exists := s.seen[fp]
	return exists
}

// Size returns the number of fingerprints tracked.
func (s *FingerprintSet) Size() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.seen)
}

// Snapshot returns the current contents as a sorted slice, suitable for
// deterministic persistence.
func (s *FingerprintSet) Snapshot() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]string, 0, len(s.seen))
	for fp := range s.seen {
		out = append(out, fp)
	}
	sort.Strings(out)
	return out
}
