package cache

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/asheshgoplani/launchdeck/internal/search"
)

func key(query string) Key {
	return Key{Query: query, Apps: true, Bookmarks: true, MaxResults: 10}
}

func cached(title string) CachedSearch {
	return CachedSearch{
		Results: []search.Result{{ID: "r1", Title: title, Score: 1}},
		Actions: map[string]search.Action{"r1": search.OpenURL{URL: "https://example.com"}},
	}
}

func TestResultsGetMiss(t *testing.T) {
	c := NewResults(0)
	_, ok := c.Get(key("nothing"))
	assert.False(t, ok)
}

func TestResultsAddGet(t *testing.T) {
	c := NewResults(0)
	c.Add(key("fire"), cached("Firefox"))

	got, ok := c.Get(key("fire"))
	require.True(t, ok)
	assert.Equal(t, "Firefox", got.Results[0].Title)
}

func TestResultsConfigChangesKey(t *testing.T) {
	c := NewResults(0)
	c.Add(key("fire"), cached("Firefox"))

	other := key("fire")
	other.MaxResults = 20
	_, ok := c.Get(other)
	assert.False(t, ok, "different config must be a different key")
}

func TestResultsLRUEviction(t *testing.T) {
	c := NewResults(3)
	for i := 0; i < 4; i++ {
		c.Add(key(fmt.Sprintf("q%d", i)), cached(fmt.Sprintf("t%d", i)))
	}

	_, ok := c.Get(key("q0"))
	assert.False(t, ok, "oldest key must be evicted")
	for i := 1; i < 4; i++ {
		_, ok := c.Get(key(fmt.Sprintf("q%d", i)))
		assert.True(t, ok, "q%d must survive", i)
	}
}

func TestResultsGetPromotes(t *testing.T) {
	c := NewResults(3)
	c.Add(key("a"), cached("a"))
	c.Add(key("b"), cached("b"))
	c.Add(key("c"), cached("c"))

	// Touch the oldest, then insert two new keys: the touched key must
	// outlive the untouched ones.
	_, ok := c.Get(key("a"))
	require.True(t, ok)

	c.Add(key("d"), cached("d"))
	c.Add(key("e"), cached("e"))

	_, ok = c.Get(key("a"))
	assert.True(t, ok, "recently gotten key must not be evicted ahead of older ones")
	_, ok = c.Get(key("b"))
	assert.False(t, ok)
	_, ok = c.Get(key("c"))
	assert.False(t, ok)
}

func TestResultsAddExistingRefreshes(t *testing.T) {
	c := NewResults(3)
	c.Add(key("a"), cached("old"))
	c.Add(key("a"), cached("new"))
	assert.Equal(t, 1, c.Len())

	got, ok := c.Get(key("a"))
	require.True(t, ok)
	assert.Equal(t, "new", got.Results[0].Title)
}

func TestCachedSearchCloneIsIndependent(t *testing.T) {
	original := cached("Firefox")
	clone := original.Clone()

	clone.Results[0].Title = "Tampered"
	delete(clone.Actions, "r1")

	assert.Equal(t, "Firefox", original.Results[0].Title)
	assert.Contains(t, original.Actions, "r1")
}

func TestResultsPurge(t *testing.T) {
	c := NewResults(0)
	c.Add(key("a"), cached("a"))
	c.Add(key("b"), cached("b"))
	c.Purge()

	assert.Equal(t, 0, c.Len())
	_, ok := c.Get(key("a"))
	assert.False(t, ok)
}
