package store

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/asheshgoplani/launchdeck/internal/entry"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "index.db"))
	require.NoError(t, err)
	require.NoError(t, s.Migrate())
	t.Cleanup(func() { s.Close() })
	return s
}

func testIndex() []entry.Application {
	return []entry.Application{
		{ID: "app:1", Name: "Editor", Path: "/opt/editor", Kind: entry.KindNative, Keywords: []string{"text"}},
		{ID: "app:2", Name: "微信", Path: "/opt/wechat", Kind: entry.KindPackaged, PhoneticIndex: "weixin|wx"},
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.SaveApps(testIndex()))

	got, err := s.LoadApps()
	require.NoError(t, err)
	assert.Equal(t, testIndex(), got)
}

func TestSaveReplacesPreviousIndex(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.SaveApps(testIndex()))

	replacement := []entry.Application{
		{ID: "app:3", Name: "Terminal", Path: "/opt/term", Kind: entry.KindNative},
	}
	require.NoError(t, s.SaveApps(replacement))

	got, err := s.LoadApps()
	require.NoError(t, err)
	assert.Equal(t, replacement, got)

	count, err := s.Count()
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestLoadEmpty(t *testing.T) {
	s := newTestStore(t)
	got, err := s.LoadApps()
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestReopenKeepsIndex(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "index.db")

	s1, err := Open(dbPath)
	require.NoError(t, err)
	require.NoError(t, s1.Migrate())
	require.NoError(t, s1.SaveApps(testIndex()))
	require.NoError(t, s1.Close())

	s2, err := Open(dbPath)
	require.NoError(t, err)
	defer s2.Close()
	require.NoError(t, s2.Migrate())

	got, err := s2.LoadApps()
	require.NoError(t, err)
	assert.Equal(t, testIndex(), got)
}
