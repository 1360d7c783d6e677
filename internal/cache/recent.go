package cache

import (
	"sync"

	"github.com/asheshgoplani/launchdeck/internal/search"
)

// DefaultRecentCapacity bounds the recent-action list.
const DefaultRecentCapacity = 12

// RecentEntry pairs an executed result with the action it triggered.
type RecentEntry struct {
	Result search.Result
	Action search.Action
}

// RecentList keeps the last executed results in MRU order, deduplicated by
// result identity. Shown verbatim when the query is empty.
type RecentList struct {
	mu       sync.Mutex
	capacity int
	entries  []RecentEntry
}

// NewRecentList creates a recent list. capacity <= 0 uses the default.
func NewRecentList(capacity int) *RecentList {
	if capacity <= 0 {
		capacity = DefaultRecentCapacity
	}
	return &RecentList{capacity: capacity}
}

// Insert removes any earlier entry with the same result identity, pushes the
// entry to the front, and evicts from the back past capacity.
func (r *RecentList) Insert(e RecentEntry) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, existing := range r.entries {
		if existing.Result.ID == e.Result.ID {
			r.entries = append(r.entries[:i], r.entries[i+1:]...)
			break
		}
	}

	r.entries = append([]RecentEntry{e}, r.entries...)
	if len(r.entries) > r.capacity {
		r.entries = r.entries[:r.capacity]
	}
}

// Items returns the entries most recent first.
func (r *RecentList) Items() []RecentEntry {
	r.mu.Lock()
	defer r.mu.Unlock()

	items := make([]RecentEntry, len(r.entries))
	copy(items, r.entries)
	return items
}

// Retain keeps only entries the predicate accepts. Used when an entry is
// blacklisted after execution.
func (r *RecentList) Retain(keep func(RecentEntry) bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	kept := r.entries[:0]
	for _, e := range r.entries {
		if keep(e) {
			kept = append(kept, e)
		}
	}
	r.entries = kept
}

// Len returns the number of entries.
func (r *RecentList) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.entries)
}
