// Package index turns raw, possibly duplicated candidate batches into the
// canonical sorted entry list the ranking engine scans per query.
package index

import (
	"log/slog"
	"sort"
	"strings"

	"github.com/asheshgoplani/launchdeck/internal/entry"
	"github.com/asheshgoplani/launchdeck/internal/logging"
)

var indexLog = logging.ForComponent(logging.CompIndex)

// Build concatenates batches in precedence order (earlier batches win on
// identity collisions), deduplicates by identity, sorts case-insensitively
// by display name, and drops entries matching an exclusion pattern.
func Build[E entry.Entry](batches [][]E, exclusions []string) []E {
	var total int
	for _, batch := range batches {
		total += len(batch)
	}

	seen := make(map[string]struct{}, total)
	result := make([]E, 0, total)
	for _, batch := range batches {
		for _, e := range batch {
			id := e.Identity()
			if _, dup := seen[id]; dup {
				continue
			}
			seen[id] = struct{}{}
			result = append(result, e)
		}
	}

	sort.SliceStable(result, func(i, j int) bool {
		return strings.ToLower(result[i].DisplayName()) < strings.ToLower(result[j].DisplayName())
	})

	if len(exclusions) > 0 {
		kept := result[:0]
		for _, e := range result {
			if Excluded(e, exclusions) {
				indexLog.Debug("entry_excluded",
					slog.String("id", e.Identity()),
					slog.String("path", e.EffectivePath()))
				continue
			}
			kept = append(kept, e)
		}
		result = kept
	}

	return result
}

// Excluded reports whether the entry's effective path matches any exclusion
// pattern: a case-insensitive prefix match, or a contains match for patterns
// that look like a package/class id (leading '{'). Empty patterns are ignored.
func Excluded(e entry.Entry, exclusions []string) bool {
	path := strings.ToLower(e.EffectivePath())
	if path == "" {
		return false
	}

	for _, pattern := range exclusions {
		p := strings.ToLower(strings.TrimSpace(pattern))
		if p == "" {
			continue
		}
		if strings.HasPrefix(path, p) {
			return true
		}
		if strings.HasPrefix(p, "{") && strings.Contains(path, p) {
			return true
		}
	}
	return false
}
