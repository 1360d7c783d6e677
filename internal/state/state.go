// Package state owns the process-wide search state: the current index
// snapshots, the active configuration, and both caches. Each lives in its
// own locked cell so the interactive query path never waits on a background
// rebuild, and ranking never runs under a lock.
package state

import (
	"context"
	"log/slog"
	"reflect"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/asheshgoplani/launchdeck/internal/cache"
	"github.com/asheshgoplani/launchdeck/internal/config"
	"github.com/asheshgoplani/launchdeck/internal/entry"
	"github.com/asheshgoplani/launchdeck/internal/index"
	"github.com/asheshgoplani/launchdeck/internal/logging"
	"github.com/asheshgoplani/launchdeck/internal/search"
	"github.com/asheshgoplani/launchdeck/internal/source"
	"github.com/asheshgoplani/launchdeck/internal/store"
)

var stateLog = logging.ForComponent(logging.CompState)

// Options configures a State.
type Options struct {
	Config          config.Config
	AppSources      []source.AppSource
	BookmarkSources []source.BookmarkSource

	// Store persists the app index across runs. Optional.
	Store *store.Store

	// ResultCacheSize and RecentSize override the cache bounds; zero keeps
	// the defaults.
	ResultCacheSize int
	RecentSize      int
}

// State is the shared container behind the interactive search path and the
// background refresh tasks.
type State struct {
	appsMu sync.RWMutex
	apps   []entry.Application

	bookmarksMu sync.RWMutex
	bookmarks   []entry.Bookmark

	configMu sync.RWMutex
	cfg      config.Config

	results *cache.Results
	recent  *cache.RecentList

	appSources      []source.AppSource
	bookmarkSources []source.BookmarkSource
	store           *store.Store
}

// New creates a State with empty indexes.
func New(opts Options) *State {
	return &State{
		cfg:             opts.Config,
		results:         cache.NewResults(opts.ResultCacheSize),
		recent:          cache.NewRecentList(opts.RecentSize),
		appSources:      opts.AppSources,
		bookmarkSources: opts.BookmarkSources,
		store:           opts.Store,
	}
}

// Config returns the active configuration.
func (s *State) Config() config.Config {
	s.configMu.RLock()
	defer s.configMu.RUnlock()
	return s.cfg
}

// SetConfig replaces the active configuration. Ranking-relevant options are
// part of the result-cache key, so no cache clear is needed here.
func (s *State) SetConfig(cfg config.Config) {
	s.configMu.Lock()
	s.cfg = cfg
	s.configMu.Unlock()
}

// Apps returns the current application index snapshot. The returned slice
// is replaced wholesale on rebuild, never mutated, so it is safe to scan
// without holding any lock.
func (s *State) Apps() []entry.Application {
	s.appsMu.RLock()
	defer s.appsMu.RUnlock()
	return s.apps
}

// Bookmarks returns the current bookmark index snapshot.
func (s *State) Bookmarks() []entry.Bookmark {
	s.bookmarksMu.RLock()
	defer s.bookmarksMu.RUnlock()
	return s.bookmarks
}

// Recent returns the recent-action entries, most recent first.
func (s *State) Recent() []cache.RecentEntry {
	return s.recent.Items()
}

// Query runs one interactive search. An empty or all-whitespace query
// yields the recent-action list. Results for non-empty queries are served
// from the result cache when possible.
func (s *State) Query(query, mode string) ([]search.Result, map[string]search.Action) {
	trimmed := strings.TrimSpace(query)
	if trimmed == "" {
		items := s.recent.Items()
		results := make([]search.Result, 0, len(items))
		actions := make(map[string]search.Action, len(items))
		for _, item := range items {
			results = append(results, item.Result)
			actions[item.Result.ID] = item.Action
		}
		return results, actions
	}

	cfg := s.Config()
	queryMode := search.ParseMode(mode)

	key := cache.Key{
		Query:      trimmed,
		Apps:       cfg.EnableAppResults,
		Bookmarks:  cfg.EnableBookmarkResults,
		MaxResults: cfg.MaxResults,
	}
	// Mode-restricted searches come from scripted callers; only the
	// default interactive mode is worth caching.
	cacheable := queryMode == search.ModeAll

	if cacheable {
		if hit, ok := s.results.Get(key); ok {
			// Hand out copies; callers may truncate or annotate them.
			cloned := hit.Clone()
			return cloned.Results, cloned.Actions
		}
	}

	results, actions := search.Search(trimmed, queryMode, s.Apps(), s.Bookmarks(), cfg)

	if cacheable {
		s.results.Add(key, cache.CachedSearch{Results: results, Actions: actions}.Clone())
	}
	return results, actions
}

// RecordExecution moves an executed result to the front of the recent list.
func (s *State) RecordExecution(result search.Result, action search.Action) {
	s.recent.Insert(cache.RecentEntry{Result: result, Action: action})
}

// Warm pre-loads the application index from the persisted store so queries
// work before the first live rebuild completes.
func (s *State) Warm() {
	if s.store == nil {
		return
	}
	apps, err := s.store.LoadApps()
	if err != nil {
		stateLog.Warn("warm_load_failed", slog.String("error", err.Error()))
		return
	}
	if len(apps) == 0 {
		return
	}

	s.appsMu.Lock()
	s.apps = apps
	s.appsMu.Unlock()
	stateLog.Info("warm_loaded", slog.Int("apps", len(apps)))
}

// RefreshApps rebuilds the application index off the interactive path. The
// new index replaces the old one, is persisted, and clears the result cache
// only when it actually differs.
func (s *State) RefreshApps(ctx context.Context) {
	batches := source.CollectApps(ctx, s.appSources)
	rebuilt := index.Build(batches, s.Config().SystemToolExclusions)
	if len(rebuilt) == 0 {
		// An all-sources failure must not wipe a working index.
		return
	}

	s.appsMu.Lock()
	changed := !reflect.DeepEqual(s.apps, rebuilt)
	if changed {
		s.apps = rebuilt
	}
	s.appsMu.Unlock()

	if !changed {
		return
	}

	stateLog.Info("app_index_replaced", slog.Int("apps", len(rebuilt)))
	if s.store != nil {
		if err := s.store.SaveApps(rebuilt); err != nil {
			stateLog.Warn("index_persist_failed", slog.String("error", err.Error()))
		}
	}
	// Cached results rank against the old index; drop them all.
	s.results.Purge()
}

// RefreshBookmarks rebuilds the bookmark index.
func (s *State) RefreshBookmarks(ctx context.Context) {
	batches := source.CollectBookmarks(ctx, s.bookmarkSources)
	rebuilt := index.Build(batches, nil)

	s.bookmarksMu.Lock()
	changed := !reflect.DeepEqual(s.bookmarks, rebuilt)
	if changed {
		s.bookmarks = rebuilt
	}
	s.bookmarksMu.Unlock()

	if changed {
		stateLog.Info("bookmark_index_replaced", slog.Int("bookmarks", len(rebuilt)))
		s.results.Purge()
	}
}

// RefreshAll rebuilds both indexes concurrently.
func (s *State) RefreshAll(ctx context.Context) {
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		s.RefreshApps(ctx)
		return nil
	})
	g.Go(func() error {
		s.RefreshBookmarks(ctx)
		return nil
	})
	_ = g.Wait()
}

// AddExclusion appends a system-tool exclusion, drops matching apps from
// the index immediately, prunes them from the recent list, and clears the
// result cache. The caller persists the config and triggers a re-index.
func (s *State) AddExclusion(pattern string) config.Config {
	pattern = strings.TrimSpace(pattern)

	s.configMu.Lock()
	cfg := s.cfg
	exists := false
	for _, existing := range cfg.SystemToolExclusions {
		if strings.EqualFold(existing, pattern) {
			exists = true
			break
		}
	}
	if !exists && pattern != "" {
		exclusions := make([]string, 0, len(cfg.SystemToolExclusions)+1)
		exclusions = append(exclusions, cfg.SystemToolExclusions...)
		cfg.SystemToolExclusions = append(exclusions, pattern)
		s.cfg = cfg
	}
	s.configMu.Unlock()

	if exists || pattern == "" {
		return cfg
	}

	s.appsMu.Lock()
	kept := make([]entry.Application, 0, len(s.apps))
	excluded := make(map[string]struct{})
	for _, app := range s.apps {
		if index.Excluded(app, []string{pattern}) {
			excluded[app.ID] = struct{}{}
			continue
		}
		kept = append(kept, app)
	}
	s.apps = kept
	s.appsMu.Unlock()

	s.recent.Retain(func(e cache.RecentEntry) bool {
		_, dropped := excluded[e.Result.ID]
		return !dropped
	})
	s.results.Purge()

	return cfg
}
