// Package cache holds the two bounded stores on the interactive path: the
// LRU query-result cache and the MRU recent-action list.
package cache

import (
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/asheshgoplani/launchdeck/internal/search"
)

// DefaultResultCapacity bounds the query-result cache.
const DefaultResultCapacity = 8

// Key identifies one cached search. Any config change that affects ranking
// changes the key, so stale entries are bypassed rather than invalidated.
// Index rebuilds still require an explicit Purge.
type Key struct {
	Query      string
	Apps       bool
	Bookmarks  bool
	MaxResults int
}

// CachedSearch is one previously ranked result set plus its action bindings.
type CachedSearch struct {
	Results []search.Result
	Actions map[string]search.Action
}

// Clone copies the result slice and action map so callers can mutate their
// view without poisoning the cached entry.
func (c CachedSearch) Clone() CachedSearch {
	results := make([]search.Result, len(c.Results))
	copy(results, c.Results)
	actions := make(map[string]search.Action, len(c.Actions))
	for id, action := range c.Actions {
		actions[id] = action
	}
	return CachedSearch{Results: results, Actions: actions}
}

// Results is a bounded LRU cache of ranked searches.
type Results struct {
	lru *lru.Cache[Key, CachedSearch]
}

// NewResults creates a result cache. capacity <= 0 uses the default.
func NewResults(capacity int) *Results {
	if capacity <= 0 {
		capacity = DefaultResultCapacity
	}
	// Only errors on non-positive size, which is excluded above.
	c, err := lru.New[Key, CachedSearch](capacity)
	if err != nil {
		panic(err)
	}
	return &Results{lru: c}
}

// Get returns the cached search for key and promotes it to most recently
// used.
func (r *Results) Get(key Key) (CachedSearch, bool) {
	return r.lru.Get(key)
}

// Add stores value under key, refreshing and promoting an existing entry,
// and evicts the least recently used entry past capacity.
func (r *Results) Add(key Key, value CachedSearch) {
	r.lru.Add(key, value)
}

// Purge drops every cached search. Called when the index changes, since the
// key space does not encode index content.
func (r *Results) Purge() {
	r.lru.Purge()
}

// Len returns the number of cached searches.
func (r *Results) Len() int {
	return r.lru.Len()
}
