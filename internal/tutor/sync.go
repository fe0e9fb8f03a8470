package tutor

// Synchronizer rate-limits context pushes to the live tutor session. A push
// happens when the playhead crosses a 10-second bucket boundary or the
// underlying data changes, and only while the tutor panel is open, the
// session is connected, and the session is in text mode. Voice mode pulls
// context on demand through tool calls instead, so spoken conversation is
// never interrupted by pushes. Identical consecutive payloads are deduped
// by content hash; the hash buckets the playhead to 10s, so both triggers
// collapse into one comparison.
type Synchronizer struct {
	lastHash string
}

// NewSynchronizer creates a synchronizer with empty push history.
func NewSynchronizer() *Synchronizer {
	return &Synchronizer{}
}

// ShouldPush decides whether this snapshot goes to the session now. When it
// returns true the synchronizer records the payload as pushed.
func (s *Synchronizer) ShouldPush(snap *Snapshot, panelOpen, connected, textMode bool) bool {
	if !panelOpen || !connected || !textMode {
		return false
	}

	hash := snap.Hash()
	if hash == s.lastHash {
		return false
	}
	s.lastHash = hash
	return true
}

// Reset clears push history, e.g. after a reconnect.
func (s *Synchronizer) Reset() {
	s.lastHash = ""
}
