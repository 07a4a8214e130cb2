package state

// Snapshot is the persisted form of the seen-entry history: feed URL
// mapped to the identities observed for that feed, oldest first.
type Snapshot struct {
	Seen map[string][]string `json:"seen"`
}

// NewSnapshot creates an empty snapshot
func NewSnapshot() Snapshot {
	return Snapshot{Seen: make(map[string][]string)}
}

// StateStore loads and persists seen-entry snapshots. Save is invoked at
// most once per run, and only when the in-memory store reports changes.
type StateStore interface {
	Load() (Snapshot, error)
	Save(snapshot Snapshot) error
}
