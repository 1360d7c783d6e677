package search

import "github.com/asheshgoplani/launchdeck/internal/entry"

// Action is the side effect a result triggers when selected. It is a closed
// set: executors switch over the concrete types exhaustively.
type Action interface {
	isAction()
}

// LaunchApp launches an installed application.
type LaunchApp struct {
	App entry.Application
}

// OpenBookmark opens a bookmark's URL.
type OpenBookmark struct {
	Bookmark entry.Bookmark
}

// OpenURL opens a raw URL typed by the user.
type OpenURL struct {
	URL string
}

// WebSearch opens a search-engine results page for the query.
type WebSearch struct {
	URL string
}

func (LaunchApp) isAction()    {}
func (OpenBookmark) isAction() {}
func (OpenURL) isAction()      {}
func (WebSearch) isAction()    {}

// Result is one ranked search hit. Transient: built per query, never stored
// beyond the result cache and the recent-action list.
type Result struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
	Score    int    `json:"score"`
	Kind     string `json:"kind"`
}

// Result kind tags.
const (
	KindApp      = "app"
	KindPackaged = "packaged"
	KindBookmark = "bookmark"
	KindURL      = "url"
	KindSearch   = "search"
)
