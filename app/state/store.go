package state

// maxSeenPerFeed caps how many identities are remembered per feed.
// Trim keeps the newest entries in insertion order, so eviction is
// oldest-first and deterministic across runs.
const maxSeenPerFeed = 400

// Store is the in-memory seen-entry history for a single run. It is
// built from a loaded snapshot, mutated while feeds are processed, and
// exported once at the end of the run for persistence.
type Store struct {
	seen    map[string][]string
	index   map[string]map[string]struct{}
	changed bool
}

// NewStore creates a store from a loaded snapshot. Identities are kept
// in snapshot order; duplicates within a feed are dropped.
func NewStore(snapshot Snapshot) *Store {
	s := &Store{
		seen:  make(map[string][]string, len(snapshot.Seen)),
		index: make(map[string]map[string]struct{}, len(snapshot.Seen)),
	}

	for feedURL, identities := range snapshot.Seen {
		ids := make(map[string]struct{}, len(identities))
		ordered := make([]string, 0, len(identities))
		for _, identity := range identities {
			if _, ok := ids[identity]; ok {
				continue
			}
			ids[identity] = struct{}{}
			ordered = append(ordered, identity)
		}
		s.seen[feedURL] = ordered
		s.index[feedURL] = ids
	}

	return s
}

// Contains reports whether the identity has been observed for the feed,
// including identities added earlier in the same run.
func (s *Store) Contains(feedURL, identity string) bool {
	ids, ok := s.index[feedURL]
	if !ok {
		return false
	}
	_, ok = ids[identity]
	return ok
}

// Add records an identity for the feed in memory. Persistence is the
// caller's responsibility.
func (s *Store) Add(feedURL, identity string) {
	if s.Contains(feedURL, identity) {
		return
	}

	ids, ok := s.index[feedURL]
	if !ok {
		ids = make(map[string]struct{})
		s.index[feedURL] = ids
	}
	ids[identity] = struct{}{}
	s.seen[feedURL] = append(s.seen[feedURL], identity)
	s.changed = true
}

// HasChanges reports whether any Add call occurred since the store was built.
func (s *Store) HasChanges() bool {
	return s.changed
}

// Trim caps the feed's history at maxSeenPerFeed, evicting the oldest
// identities first.
func (s *Store) Trim(feedURL string) {
	ordered := s.seen[feedURL]
	if len(ordered) <= maxSeenPerFeed {
		return
	}

	evicted := ordered[:len(ordered)-maxSeenPerFeed]
	kept := ordered[len(ordered)-maxSeenPerFeed:]

	ids := s.index[feedURL]
	for _, identity := range evicted {
		delete(ids, identity)
	}
	s.seen[feedURL] = kept
}

// Export returns the current history as a snapshot, per-feed slices in
// insertion order. The returned snapshot shares no memory with the store.
func (s *Store) Export() Snapshot {
	snapshot := NewSnapshot()
	for feedURL, ordered := range s.seen {
		identities := make([]string, len(ordered))
		copy(identities, ordered)
		snapshot.Seen[feedURL] = identities
	}
	return snapshot
}
