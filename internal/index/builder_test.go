package index

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/asheshgoplani/launchdeck/internal/entry"
)

func app(id, name, path string) entry.Application {
	return entry.Application{ID: id, Name: name, Path: path, Kind: entry.KindNative}
}

func TestBuildDedupesKeepingFirstBatch(t *testing.T) {
	first := []entry.Application{app("a1", "Editor", "/opt/editor")}
	second := []entry.Application{
		{ID: "a1", Name: "Editor (stale)", Path: "/opt/editor-old", Kind: entry.KindNative},
		app("a2", "Terminal", "/opt/terminal"),
	}

	got := Build([][]entry.Application{first, second}, nil)
	require.Len(t, got, 2)
	// First batch's metadata wins for the shared identity.
	assert.Equal(t, "Editor", got[0].Name)
	assert.Equal(t, "/opt/editor", got[0].Path)
	assert.Equal(t, "Terminal", got[1].Name)
}

func TestBuildSortsCaseInsensitively(t *testing.T) {
	batch := []entry.Application{
		app("a1", "zed", "/opt/zed"),
		app("a2", "Alacritty", "/opt/alacritty"),
		app("a3", "firefox", "/opt/firefox"),
		app("a4", "Chromium", "/opt/chromium"),
	}

	got := Build([][]entry.Application{batch}, nil)
	names := make([]string, len(got))
	for i, a := range got {
		names[i] = a.Name
	}
	assert.Equal(t, []string{"Alacritty", "Chromium", "firefox", "zed"}, names)
}

func TestBuildAppliesExclusions(t *testing.T) {
	batch := []entry.Application{
		app("a1", "Editor", "/opt/editor"),
		app("a2", "Updater", "/opt/vendor/updater"),
		{ID: "a3", Name: "Helper", Path: "/shortcut/helper", SourcePath: "/OPT/Vendor/helper", Kind: entry.KindNative},
	}

	got := Build([][]entry.Application{batch}, []string{"/opt/vendor"})
	require.Len(t, got, 1)
	assert.Equal(t, "Editor", got[0].Name)
}

func TestBuildPackagePatternMatchesAnywhere(t *testing.T) {
	batch := []entry.Application{
		app("a1", "Widgets", `shell:appsfolder\{ABC-123}\widgets!app`),
		app("a2", "Editor", "/opt/editor"),
	}

	got := Build([][]entry.Application{batch}, []string{"{abc-123}"})
	require.Len(t, got, 1)
	assert.Equal(t, "Editor", got[0].Name)
}

func TestBuildIgnoresEmptyExclusions(t *testing.T) {
	batch := []entry.Application{app("a1", "Editor", "/opt/editor")}

	got := Build([][]entry.Application{batch}, []string{"", "   "})
	assert.Len(t, got, 1)
}

func TestBuildEmptyBatchesContributeNothing(t *testing.T) {
	got := Build([][]entry.Application{nil, {}, {app("a1", "Editor", "/opt/editor")}}, nil)
	assert.Len(t, got, 1)
}

func TestBuildBookmarks(t *testing.T) {
	batch := []entry.Bookmark{
		{ID: "b1", Title: "News", URL: "https://news.example.com"},
		{ID: "b2", Title: "blog", URL: "https://blog.example.com"},
		{ID: "b1", Title: "News dup", URL: "https://news.example.com"},
	}

	got := Build([][]entry.Bookmark{batch}, nil)
	require.Len(t, got, 2)
	assert.Equal(t, "blog", got[0].Title)
	assert.Equal(t, "News", got[1].Title)
}
