package search

import "strings"

// Mode restricts which candidate classes participate in a search.
type Mode int

const (
	ModeAll Mode = iota
	ModeBookmark
	ModeApplication
	ModeWeb
)

// ParseMode maps a user-supplied mode string to a Mode. Unrecognized or
// empty values fall back to ModeAll.
func ParseMode(raw string) Mode {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "bookmark", "bookmarks", "b":
		return ModeBookmark
	case "app", "apps", "application", "r":
		return ModeApplication
	case "search", "s":
		return ModeWeb
	default:
		return ModeAll
	}
}

func (m Mode) AllowsApplications() bool {
	return m == ModeAll || m == ModeApplication
}

func (m Mode) AllowsBookmarks() bool {
	return m == ModeAll || m == ModeBookmark
}

func (m Mode) AllowsWebSearch() bool {
	return m == ModeAll || m == ModeWeb
}

func (m Mode) String() string {
	switch m {
	case ModeBookmark:
		return "bookmark"
	case ModeApplication:
		return "app"
	case ModeWeb:
		return "search"
	default:
		return "all"
	}
}
