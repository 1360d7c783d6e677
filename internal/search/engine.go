// Package search ranks indexed candidates against a typed query. Scoring is
// a pure function of (query, mode, index, config): every token of the query
// must find a fuzzy anchor in some field of a candidate, each token takes
// its best-scoring field, and a whole-query bonus rewards exact and prefix
// matches on the primary name field.
package search

import (
	"fmt"
	"math"
	"net/url"
	"sort"
	"strings"

	"github.com/sahilm/fuzzy"

	"github.com/asheshgoplani/launchdeck/internal/config"
	"github.com/asheshgoplani/launchdeck/internal/entry"
	"github.com/asheshgoplani/launchdeck/internal/phonetic"
)

// Field base weights, descending by how deliberate a match on that field is.
const (
	weightName      = 100
	weightInitials  = 80
	weightSyllables = 70
	weightKeyword   = 50
	weightPath      = 40
)

// Per-token bonus tiers for equal / prefix / substring field matches.
const (
	bonusTokenEqual    = 30
	bonusTokenPrefix   = 20
	bonusTokenContains = 10
)

// Whole-query bonus tiers applied to primary fields on top of their weight.
const (
	bonusQueryExact     = 50
	bonusQueryPrefix    = 30
	bonusQuerySubstring = 15
)

// urlShortcutScore is the display score of the "open URL directly" result.
// The row is pinned to the front of the list regardless of fuzzy scores.
const urlShortcutScore = 200

// fuzzyScoreCap bounds the raw subsequence score per field. Uncapped scores
// grow super-linearly with consecutive-run length and would drown the fixed
// field weights and bonus tiers.
const fuzzyScoreCap = 100

// webSearchScore sorts the synthesized web-search fallback last.
const webSearchScore = math.MinInt32

const searchEngineURL = "https://www.google.com/search?q="

// Search ranks the given indexes against the query and returns results
// ordered by descending score together with the action each would trigger.
// A URL-like query additionally yields a pinned "open directly" first row.
func Search(query string, mode Mode, apps []entry.Application, bookmarks []entry.Bookmark, cfg config.Config) ([]Result, map[string]Action) {
	trimmed := strings.TrimSpace(query)
	if trimmed == "" {
		return nil, map[string]Action{}
	}

	tokens := strings.Fields(trimmed)
	if len(tokens) == 0 {
		return nil, map[string]Action{}
	}

	ranked := make([]Result, 0, 32)
	actions := make(map[string]Action)
	counter := 0

	var urlRow *Result
	if isURLLike(trimmed) {
		id := fmt.Sprintf("url-%d", counter)
		actions[id] = OpenURL{URL: trimmed}
		urlRow = &Result{
			ID:       id,
			Title:    "Open URL: " + trimmed,
			Subtitle: trimmed,
			Score:    urlShortcutScore,
			Kind:     KindURL,
		}
		counter++
	}

	queryLower := strings.ToLower(trimmed)

	if mode.AllowsApplications() && cfg.EnableAppResults {
		for _, app := range apps {
			score, ok := scoreCandidate(tokens, queryLower, appFields(app))
			if !ok {
				continue
			}
			counter++
			actions[app.ID] = LaunchApp{App: app}
			ranked = append(ranked, Result{
				ID:       app.ID,
				Title:    app.Name,
				Subtitle: appSubtitle(app),
				Score:    score,
				Kind:     appKindTag(app.Kind),
			})
		}
	}

	if mode.AllowsBookmarks() && cfg.EnableBookmarkResults {
		for _, bm := range bookmarks {
			score, ok := scoreCandidate(tokens, queryLower, bookmarkFields(bm))
			if !ok {
				continue
			}
			counter++
			actions[bm.ID] = OpenBookmark{Bookmark: bm}
			ranked = append(ranked, Result{
				ID:       bm.ID,
				Title:    bm.Title,
				Subtitle: bookmarkSubtitle(bm),
				Score:    score,
				Kind:     KindBookmark,
			})
		}
	}

	// Stable sort of the fuzzy-ranked tail keeps ties deterministic by
	// index order. The URL shortcut sits in front of it unconditionally.
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})

	results := make([]Result, 0, len(ranked)+2)
	if urlRow != nil {
		results = append(results, *urlRow)
	}
	results = append(results, ranked...)

	limit := cfg.ResultLimit()
	allowWeb := mode.AllowsWebSearch()
	if allowWeb && limit > 1 && len(results) >= limit {
		// Reserve the trailing slot for the web-search fallback.
		results = results[:limit-1]
	} else if len(results) > limit {
		results = results[:limit]
	}

	if allowWeb {
		id := fmt.Sprintf("search-%d", counter)
		searchURL := searchEngineURL + url.QueryEscape(trimmed)
		actions[id] = WebSearch{URL: searchURL}
		results = append(results, Result{
			ID:       id,
			Title:    "Search the web: " + trimmed,
			Subtitle: "Web search",
			Score:    webSearchScore,
			Kind:     KindSearch,
		})
	}

	return results, actions
}

// isURLLike reports whether the query should get the direct-open shortcut:
// an explicit scheme, or a dotted single word.
func isURLLike(input string) bool {
	if strings.HasPrefix(input, "http://") || strings.HasPrefix(input, "https://") {
		return true
	}
	return strings.Contains(input, ".") && len(strings.Fields(input)) == 1
}

// field is one weighted text surface of a candidate.
type field struct {
	text    string
	weight  int
	primary bool
}

func appFields(app entry.Application) []field {
	fields := make([]field, 0, 4+len(app.Keywords))
	fields = append(fields, field{text: app.Name, weight: weightName, primary: true})
	fields = appendPhoneticFields(fields, app.PhoneticIndex)
	for _, kw := range app.Keywords {
		fields = append(fields, field{text: kw, weight: weightKeyword})
	}
	fields = append(fields, field{text: app.EffectivePath(), weight: weightPath})
	return fields
}

func bookmarkFields(bm entry.Bookmark) []field {
	fields := make([]field, 0, 5+len(bm.Keywords))
	fields = append(fields, field{text: bm.Title, weight: weightName, primary: true})
	fields = appendPhoneticFields(fields, bm.PhoneticIndex)
	for _, kw := range bm.Keywords {
		fields = append(fields, field{text: kw, weight: weightKeyword})
	}
	fields = append(fields, field{text: bm.FolderPath, weight: weightPath})
	fields = append(fields, field{text: bm.URL, weight: weightPath})
	return fields
}

func appendPhoneticFields(fields []field, packed string) []field {
	for _, part := range strings.Fields(packed) {
		syllables, initials := phonetic.SplitEntry(part)
		if syllables != "" {
			fields = append(fields, field{text: syllables, weight: weightSyllables})
		}
		if initials != "" {
			fields = append(fields, field{text: initials, weight: weightInitials})
		}
	}
	return fields
}

// scoreCandidate sums each token's best field score and adds the whole-query
// bonus. ok is false when any token matches no field at all (AND semantics
// across tokens).
func scoreCandidate(tokens []string, queryLower string, fields []field) (int, bool) {
	total := 0
	for _, token := range tokens {
		best, ok := scoreToken(token, fields)
		if !ok {
			return 0, false
		}
		total += best
	}
	total += wholeQueryBonus(queryLower, fields)
	return total, true
}

// scoreToken returns the best score for a token across all fields.
func scoreToken(token string, fields []field) (int, bool) {
	tokenLower := strings.ToLower(token)
	best := 0
	matched := false

	for _, f := range fields {
		if f.text == "" {
			continue
		}
		matches := fuzzy.Find(token, []string{f.text})
		if len(matches) == 0 {
			continue
		}

		raw := matches[0].Score
		if raw > fuzzyScoreCap {
			raw = fuzzyScoreCap
		}
		score := raw + f.weight
		textLower := strings.ToLower(f.text)
		switch {
		case textLower == tokenLower:
			score += bonusTokenEqual
		case strings.HasPrefix(textLower, tokenLower):
			score += bonusTokenPrefix
		case strings.Contains(textLower, tokenLower):
			score += bonusTokenContains
		}
		// A long non-matching tail means a less exact field.
		if tail := len(textLower) - len(tokenLower); tail > 0 {
			score -= tail / 4
		}

		if !matched || score > best {
			best = score
			matched = true
		}
	}

	return best, matched
}

// wholeQueryBonus compares the full trimmed query against primary fields and
// returns the best exact/prefix/substring bonus on top of the field weight.
func wholeQueryBonus(queryLower string, fields []field) int {
	best := 0
	for _, f := range fields {
		if !f.primary || f.text == "" {
			continue
		}
		textLower := strings.ToLower(f.text)
		bonus := 0
		switch {
		case textLower == queryLower:
			bonus = f.weight + bonusQueryExact
		case strings.HasPrefix(textLower, queryLower):
			bonus = f.weight + bonusQueryPrefix
		case strings.Contains(textLower, queryLower):
			bonus = f.weight + bonusQuerySubstring
		}
		if bonus > best {
			best = bonus
		}
	}
	return best
}

func appSubtitle(app entry.Application) string {
	if app.Description != "" {
		return app.Description
	}
	if app.SourcePath != "" {
		return app.SourcePath
	}
	return app.Path
}

func bookmarkSubtitle(bm entry.Bookmark) string {
	if bm.FolderPath != "" {
		return "Bookmarks · " + bm.FolderPath + " · " + bm.URL
	}
	return "Bookmarks · " + bm.URL
}

func appKindTag(kind entry.AppKind) string {
	if kind == entry.KindPackaged {
		return KindPackaged
	}
	return KindApp
}
