package main

import (
	"os"
	"path/filepath"

	"github.com/asheshgoplani/launchdeck/internal/platform"
	"github.com/asheshgoplani/launchdeck/internal/source"
)

// browserRoots returns the Chromium-family profile directories for the host
// platform. Roots that do not exist are harmless; discovery skips them.
func browserRoots() []source.BrowserRoot {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil
	}

	switch platform.Detect() {
	case platform.PlatformMacOS:
		support := filepath.Join(home, "Library", "Application Support")
		return []source.BrowserRoot{
			{Label: "Chrome", Dir: filepath.Join(support, "Google", "Chrome")},
			{Label: "Edge", Dir: filepath.Join(support, "Microsoft Edge")},
			{Label: "Brave", Dir: filepath.Join(support, "BraveSoftware", "Brave-Browser")},
		}
	case platform.PlatformWindows:
		local := os.Getenv("LOCALAPPDATA")
		if local == "" {
			local = filepath.Join(home, "AppData", "Local")
		}
		return []source.BrowserRoot{
			{Label: "Chrome", Dir: filepath.Join(local, "Google", "Chrome", "User Data")},
			{Label: "Edge", Dir: filepath.Join(local, "Microsoft", "Edge", "User Data")},
			{Label: "Brave", Dir: filepath.Join(local, "BraveSoftware", "Brave-Browser", "User Data")},
		}
	default:
		cfg := filepath.Join(home, ".config")
		return []source.BrowserRoot{
			{Label: "Chrome", Dir: filepath.Join(cfg, "google-chrome")},
			{Label: "Chromium", Dir: filepath.Join(cfg, "chromium")},
			{Label: "Edge", Dir: filepath.Join(cfg, "microsoft-edge")},
			{Label: "Brave", Dir: filepath.Join(cfg, "BraveSoftware", "Brave-Browser")},
		}
	}
}

// bookmarkWatchPaths lists the Bookmarks files of every discovered profile so
// the daemon can rebuild when a browser writes new bookmarks.
func bookmarkWatchPaths() []string {
	var paths []string
	for _, profile := range source.DiscoverProfiles(browserRoots()) {
		paths = append(paths, profile.Path)
	}
	return paths
}
