package source

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/asheshgoplani/launchdeck/internal/entry"
)

const bookmarksFixture = `{
  "roots": {
    "bookmark_bar": {
      "type": "folder",
      "name": "Bookmarks bar",
      "children": [
        {
          "type": "url",
          "name": "Example News",
          "url": "https://news.example.com",
          "guid": "guid-news"
        },
        {
          "type": "folder",
          "name": "Work",
          "children": [
            {
              "type": "url",
              "name": "Tracker",
              "url": "https://tracker.example.com",
              "id": "42"
            },
            {
              "type": "url",
              "name": "Local file",
              "url": "file:///etc/hosts",
              "guid": "guid-file"
            }
          ]
        }
      ]
    },
    "other": {
      "type": "folder",
      "name": "Other bookmarks",
      "children": [
        {
          "type": "url",
          "name": "  ",
          "url": "https://blank-title.example.com",
          "guid": "guid-blank"
        }
      ]
    }
  }
}`

func TestParseBookmarks(t *testing.T) {
	entries, err := ParseBookmarks([]byte(bookmarksFixture), "Chrome Default")
	require.NoError(t, err)
	require.Len(t, entries, 2, "unsupported schemes and blank titles are dropped")

	news := entries[0]
	assert.Equal(t, "Example News", news.Title)
	assert.Equal(t, "https://news.example.com", news.URL)
	assert.Equal(t, "Chrome Default:guid-news", news.ID)
	assert.Equal(t, "Chrome Default / Bookmarks bar", news.FolderPath)
	assert.Contains(t, news.Keywords, "Example News")
	assert.Contains(t, news.Keywords, "Chrome Default")

	tracker := entries[1]
	assert.Equal(t, "Tracker", tracker.Title)
	assert.Equal(t, "Chrome Default / Bookmarks bar / Work", tracker.FolderPath)
	// Node id stands in when the guid is missing.
	assert.Equal(t, "Chrome Default:42", tracker.ID)
	assert.Contains(t, tracker.Keywords, "Work")
}

func TestParseBookmarksDeterministic(t *testing.T) {
	first, err := ParseBookmarks([]byte(bookmarksFixture), "Chrome Default")
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		again, err := ParseBookmarks([]byte(bookmarksFixture), "Chrome Default")
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestParseBookmarksMalformed(t *testing.T) {
	_, err := ParseBookmarks([]byte("{not json"), "Chrome Default")
	assert.Error(t, err)
}

func TestParseBookmarksHashedIdentity(t *testing.T) {
	data := `{"roots":{"other":{"type":"folder","children":[
		{"type":"url","name":"NoGuid","url":"https://example.com"}]}}}`
	entries, err := ParseBookmarks([]byte(data), "Edge Default")
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, entries[0].ID, entry.BookmarkID("Edge Default", "", "https://example.com"))
}

func TestDiscoverProfiles(t *testing.T) {
	root := t.TempDir()
	for _, profile := range []string{"Default", "Profile 1"} {
		dir := filepath.Join(root, profile)
		require.NoError(t, os.MkdirAll(dir, 0o755))
		require.NoError(t, os.WriteFile(filepath.Join(dir, "Bookmarks"), []byte("{}"), 0o644))
	}
	// Directory without a Bookmarks file is not a profile.
	require.NoError(t, os.MkdirAll(filepath.Join(root, "GrShaderCache"), 0o755))

	profiles := DiscoverProfiles([]BrowserRoot{{Label: "Chrome", Dir: root}})
	require.Len(t, profiles, 2)
	assert.Equal(t, "Chrome Default", profiles[0].Label)
	assert.Equal(t, "Chrome Profile 1", profiles[1].Label)
}

func TestChromiumBookmarksSkipsUnreadableProfiles(t *testing.T) {
	root := t.TempDir()
	good := filepath.Join(root, "Default")
	bad := filepath.Join(root, "Profile 1")
	require.NoError(t, os.MkdirAll(good, 0o755))
	require.NoError(t, os.MkdirAll(bad, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(good, "Bookmarks"), []byte(bookmarksFixture), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(bad, "Bookmarks"), []byte("{corrupt"), 0o644))

	src := &ChromiumBookmarks{Roots: []BrowserRoot{{Label: "Chrome", Dir: root}}}
	entries, err := src.Bookmarks(context.Background())
	require.NoError(t, err)
	assert.Len(t, entries, 2, "corrupt profile must not abort the good one")
}

func TestCollectAppsAbsorbsFailures(t *testing.T) {
	ok := &StaticApps{Entries: []entry.Application{{ID: "app:1", Name: "Editor", Path: "/opt/editor", Kind: entry.KindNative}}}
	failing := &StaticApps{Err: errors.New("enumeration failed")}

	batches := CollectApps(context.Background(), []AppSource{failing, ok})
	require.Len(t, batches, 2)
	assert.Empty(t, batches[0])
	assert.Len(t, batches[1], 1)
}
