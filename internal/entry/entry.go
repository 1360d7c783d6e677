// Package entry defines the candidate entries the launcher indexes:
// installed applications and browser bookmarks. Both carry a stable
// identity derived from their source attributes so an entry keeps its
// identity across index rebuilds unless the underlying target changed.
package entry

import (
	"fmt"
	"strings"

	"github.com/cespare/xxhash/v2"
)

// AppKind distinguishes native binaries from packaged (store) apps.
type AppKind string

const (
	KindNative   AppKind = "native"
	KindPackaged AppKind = "packaged"
)

// Application is one installed application candidate.
type Application struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Path        string   `json:"path"`
	SourcePath  string   `json:"source_path,omitempty"`
	Kind        AppKind  `json:"kind"`
	Description string   `json:"description,omitempty"`
	Keywords    []string `json:"keywords,omitempty"`
	WorkingDir  string   `json:"working_directory,omitempty"`
	Arguments   string   `json:"arguments,omitempty"`

	// PhoneticIndex is the packed "syllables|initials" sidecar built by
	// the phonetic package, space-joined per source fragment.
	PhoneticIndex string `json:"phonetic_index,omitempty"`
}

// Bookmark is one browser bookmark candidate.
type Bookmark struct {
	ID         string   `json:"id"`
	Title      string   `json:"title"`
	URL        string   `json:"url"`
	FolderPath string   `json:"folder_path,omitempty"`
	Keywords   []string `json:"keywords,omitempty"`

	PhoneticIndex string `json:"phonetic_index,omitempty"`
}

// Entry is the shape the canonical index builder operates on.
type Entry interface {
	// Identity is the stable deduplication key, unique per index generation.
	Identity() string
	// DisplayName is the user-visible name the index is sorted by.
	DisplayName() string
	// EffectivePath is the path exclusion rules are matched against.
	EffectivePath() string
}

func (a Application) Identity() string    { return a.ID }
func (a Application) DisplayName() string { return a.Name }

// EffectivePath prefers the fallback/source path when present.
func (a Application) EffectivePath() string {
	if a.SourcePath != "" {
		return a.SourcePath
	}
	return a.Path
}

func (b Bookmark) Identity() string      { return b.ID }
func (b Bookmark) DisplayName() string   { return b.Title }
func (b Bookmark) EffectivePath() string { return b.URL }

// AppID derives a stable application identity from the launch target.
// Case differences in paths do not produce distinct identities.
func AppID(target string) string {
	return fmt.Sprintf("app:%016x", xxhash.Sum64String(strings.ToLower(target)))
}

// BookmarkID derives a stable bookmark identity. Chromium GUIDs are used
// verbatim when available; otherwise the identity hashes profile+URL.
func BookmarkID(profile, guid, url string) string {
	if guid != "" {
		return fmt.Sprintf("%s:%s", profile, guid)
	}
	return fmt.Sprintf("%s:%016x", profile, xxhash.Sum64String(profile+"\x00"+url))
}
