package source

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/asheshgoplani/launchdeck/internal/entry"
	"github.com/asheshgoplani/launchdeck/internal/phonetic"
)

// BrowserRoot is one browser's user-data directory, e.g. Chrome's
// "User Data" folder, labeled for display ("Chrome", "Edge").
type BrowserRoot struct {
	Label string
	Dir   string
}

// Profile is one discovered browser profile containing a Bookmarks file.
type Profile struct {
	Label string // e.g. "Chrome Default"
	Path  string // path to the Bookmarks file
}

// ChromiumBookmarks reads bookmark entries from Chromium-family browser
// profiles. Which directories to scan is the caller's concern; parsing the
// bookmark tree is ours.
type ChromiumBookmarks struct {
	Roots []BrowserRoot
}

func (c *ChromiumBookmarks) Name() string { return "chromium-bookmarks" }

// Bookmarks loads every discovered profile's bookmark file. Unreadable or
// malformed profiles are logged and skipped.
func (c *ChromiumBookmarks) Bookmarks(ctx context.Context) ([]entry.Bookmark, error) {
	var all []entry.Bookmark
	for _, profile := range DiscoverProfiles(c.Roots) {
		if err := ctx.Err(); err != nil {
			return all, err
		}

		data, err := os.ReadFile(profile.Path)
		if err != nil {
			sourceLog.Warn("bookmarks_read_failed", "path", profile.Path, "error", err.Error())
			continue
		}

		entries, err := ParseBookmarks(data, profile.Label)
		if err != nil {
			sourceLog.Warn("bookmarks_parse_failed", "path", profile.Path, "error", err.Error())
			continue
		}
		all = append(all, entries...)
	}

	sourceLog.Debug("bookmarks_loaded", "count", len(all))
	return all, nil
}

// DiscoverProfiles finds profile directories under the browser roots that
// contain a Bookmarks file, in deterministic order.
func DiscoverProfiles(roots []BrowserRoot) []Profile {
	var profiles []Profile
	for _, root := range roots {
		entries, err := os.ReadDir(root.Dir)
		if err != nil {
			continue
		}
		for _, dir := range entries {
			if !dir.IsDir() {
				continue
			}
			bookmarksPath := filepath.Join(root.Dir, dir.Name(), "Bookmarks")
			if info, err := os.Stat(bookmarksPath); err != nil || info.IsDir() {
				continue
			}
			profiles = append(profiles, Profile{
				Label: root.Label + " " + dir.Name(),
				Path:  bookmarksPath,
			})
		}
	}

	sort.Slice(profiles, func(i, j int) bool {
		if profiles[i].Label != profiles[j].Label {
			return profiles[i].Label < profiles[j].Label
		}
		return profiles[i].Path < profiles[j].Path
	})
	return profiles
}

// bookmarkNode is one node of the Chromium bookmark tree.
type bookmarkNode struct {
	Type     string         `json:"type"`
	Name     string         `json:"name"`
	URL      string         `json:"url"`
	GUID     string         `json:"guid"`
	ID       string         `json:"id"`
	Children []bookmarkNode `json:"children"`
}

type bookmarkFile struct {
	Roots map[string]bookmarkNode `json:"roots"`
}

// ParseBookmarks extracts bookmark entries from a Chromium Bookmarks file.
// The profile label becomes part of each entry's folder breadcrumb and
// identity.
func ParseBookmarks(data []byte, profileLabel string) ([]entry.Bookmark, error) {
	var file bookmarkFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("source: parse bookmarks: %w", err)
	}

	// Deterministic root order regardless of map iteration.
	keys := make([]string, 0, len(file.Roots))
	for key := range file.Roots {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var acc []entry.Bookmark
	for _, key := range keys {
		node := file.Roots[key]
		pathStack := []string{profileLabel}
		if label := rootDisplayLabel(key); label != "" {
			pathStack = append(pathStack, label)
		}
		if len(node.Children) > 0 {
			for _, child := range node.Children {
				collectNode(child, profileLabel, pathStack, &acc)
			}
		} else {
			collectNode(node, profileLabel, pathStack, &acc)
		}
	}
	return acc, nil
}

func collectNode(node bookmarkNode, profileLabel string, pathStack []string, acc *[]entry.Bookmark) {
	switch node.Type {
	case "folder":
		stack := pathStack
		if name := strings.TrimSpace(node.Name); name != "" {
			stack = append(append([]string{}, pathStack...), name)
		}
		for _, child := range node.Children {
			collectNode(child, profileLabel, stack, acc)
		}

	case "url":
		title := strings.TrimSpace(node.Name)
		url := strings.TrimSpace(node.URL)
		if title == "" || url == "" || !isSupportedURL(url) {
			return
		}

		folderPath := ""
		if len(pathStack) > 0 {
			folderPath = strings.Join(pathStack, " / ")
		}

		keywords := []string{title, url}
		if folderPath != "" {
			keywords = append(keywords, folderPath)
			for _, segment := range strings.Split(folderPath, "/") {
				keywords = append(keywords, strings.TrimSpace(segment))
			}
		}
		keywords = append(keywords, profileLabel)
		keywords = cleanKeywords(keywords)

		guid := node.GUID
		if guid == "" {
			guid = node.ID
		}

		*acc = append(*acc, entry.Bookmark{
			ID:            entry.BookmarkID(profileLabel, guid, url),
			Title:         title,
			URL:           url,
			FolderPath:    folderPath,
			Keywords:      keywords,
			PhoneticIndex: phonetic.BuildIndex(title, folderPath, profileLabel),
		})
	}
}

func rootDisplayLabel(key string) string {
	switch key {
	case "bookmark_bar":
		return "Bookmarks bar"
	case "other":
		return "Other bookmarks"
	case "synced":
		return "Synced"
	default:
		return ""
	}
}

func isSupportedURL(url string) bool {
	return strings.HasPrefix(url, "http://") || strings.HasPrefix(url, "https://")
}

// cleanKeywords drops blanks and duplicates, preserving sorted order.
func cleanKeywords(keywords []string) []string {
	cleaned := keywords[:0]
	for _, kw := range keywords {
		if strings.TrimSpace(kw) != "" {
			cleaned = append(cleaned, kw)
		}
	}
	sort.Strings(cleaned)
	out := cleaned[:0]
	var prev string
	for i, kw := range cleaned {
		if i == 0 || kw != prev {
			out = append(out, kw)
		}
		prev = kw
	}
	return out
}
