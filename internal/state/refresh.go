package state

import (
	"context"
	"log/slog"
	"time"

	"github.com/fsnotify/fsnotify"
	"golang.org/x/time/rate"
)

// Refresher drives background index rebuilds: an initial rebuild shortly
// after startup, a periodic rescan, and opportunistic rebuilds when a
// watched path (a browser profile's Bookmarks file) changes.
type Refresher struct {
	State *State

	// Interval between periodic rescans (default: 10m).
	Interval time.Duration

	// InitialDelay before the first rebuild (default: 2s), letting the
	// warm-started index serve the first queries.
	InitialDelay time.Duration

	// WatchPaths are files or directories whose changes trigger a rebuild.
	WatchPaths []string

	// MinGap rate-limits event-driven rebuilds (default: 30s).
	MinGap time.Duration
}

// Run blocks until ctx is cancelled. Rebuild failures are absorbed: a later
// tick always retries.
func (r *Refresher) Run(ctx context.Context) {
	interval := r.Interval
	if interval <= 0 {
		interval = 10 * time.Minute
	}
	initialDelay := r.InitialDelay
	if initialDelay <= 0 {
		initialDelay = 2 * time.Second
	}
	minGap := r.MinGap
	if minGap <= 0 {
		minGap = 30 * time.Second
	}

	limiter := rate.NewLimiter(rate.Every(minGap), 1)

	var watchEvents chan fsnotify.Event
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		stateLog.Warn("watcher_create_failed", slog.String("error", err.Error()))
	} else {
		defer watcher.Close()
		for _, path := range r.WatchPaths {
			if err := watcher.Add(path); err != nil {
				stateLog.Debug("watch_add_failed",
					slog.String("path", path), slog.String("error", err.Error()))
			}
		}
		watchEvents = make(chan fsnotify.Event, 16)
		go forwardEvents(ctx, watcher, watchEvents)
	}

	select {
	case <-time.After(initialDelay):
	case <-ctx.Done():
		return
	}
	r.State.RefreshAll(ctx)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			r.State.RefreshAll(ctx)
		case event := <-watchEvents:
			if !limiter.Allow() {
				continue
			}
			stateLog.Debug("watch_triggered_refresh", slog.String("path", event.Name))
			r.State.RefreshAll(ctx)
		}
	}
}

// forwardEvents relays relevant watcher events, dropping chmod noise.
func forwardEvents(ctx context.Context, watcher *fsnotify.Watcher, out chan<- fsnotify.Event) {
	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if event.Op == fsnotify.Chmod {
				continue
			}
			select {
			case out <- event:
			default:
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			stateLog.Debug("watch_error", slog.String("error", err.Error()))
		}
	}
}
