// Package source defines the candidate-source boundary: collaborators that
// yield raw entry batches for the index builder. Source failures are logged
// and surface as empty batches, never as errors on the search path.
package source

import (
	"context"

	"github.com/asheshgoplani/launchdeck/internal/entry"
	"github.com/asheshgoplani/launchdeck/internal/logging"
)

var sourceLog = logging.ForComponent(logging.CompSource)

// AppSource enumerates installed applications.
type AppSource interface {
	// Name identifies the source in logs.
	Name() string
	// Apps returns one raw application batch.
	Apps(ctx context.Context) ([]entry.Application, error)
}

// BookmarkSource enumerates browser bookmarks.
type BookmarkSource interface {
	Name() string
	Bookmarks(ctx context.Context) ([]entry.Bookmark, error)
}

// CollectApps runs each source in order and returns one batch per source.
// A failed source contributes an empty batch.
func CollectApps(ctx context.Context, sources []AppSource) [][]entry.Application {
	batches := make([][]entry.Application, len(sources))
	for i, src := range sources {
		apps, err := src.Apps(ctx)
		if err != nil {
			sourceLog.Warn("app_source_failed", "source", src.Name(), "error", err.Error())
			continue
		}
		batches[i] = apps
	}
	return batches
}

// CollectBookmarks runs each source in order and returns one batch per
// source. A failed source contributes an empty batch.
func CollectBookmarks(ctx context.Context, sources []BookmarkSource) [][]entry.Bookmark {
	batches := make([][]entry.Bookmark, len(sources))
	for i, src := range sources {
		bookmarks, err := src.Bookmarks(ctx)
		if err != nil {
			sourceLog.Warn("bookmark_source_failed", "source", src.Name(), "error", err.Error())
			continue
		}
		batches[i] = bookmarks
	}
	return batches
}
