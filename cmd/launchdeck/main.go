package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/asheshgoplani/launchdeck/internal/config"
	"github.com/asheshgoplani/launchdeck/internal/execute"
	"github.com/asheshgoplani/launchdeck/internal/hotkey"
	"github.com/asheshgoplani/launchdeck/internal/logging"
	"github.com/asheshgoplani/launchdeck/internal/source"
	"github.com/asheshgoplani/launchdeck/internal/state"
	"github.com/asheshgoplani/launchdeck/internal/store"
)

const Version = "0.3.1"

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(2)
	}

	var exitCode int
	switch os.Args[1] {
	case "search":
		exitCode = runSearch(os.Args[2:])
	case "index":
		exitCode = runIndex(os.Args[2:])
	case "daemon":
		exitCode = runDaemon(os.Args[2:])
	case "exclude":
		exitCode = runExclude(os.Args[2:])
	case "hotkey":
		exitCode = runHotkey(os.Args[2:])
	case "version":
		fmt.Printf("launchdeck v%s\n", Version)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "unknown command: %s\n", os.Args[1])
		printUsage()
		exitCode = 2
	}
	logging.Shutdown()
	os.Exit(exitCode)
}

func printUsage() {
	fmt.Fprintln(os.Stderr, `launchdeck - application and bookmark quick-launcher

Usage:
  launchdeck search <query> [-mode all|app|bookmark|search] [-exec] [-elevated] [-json]
  launchdeck index                rebuild the index and persist it
  launchdeck daemon               run the background index refresher
  launchdeck exclude <pattern>    blacklist a path prefix or {package-id}
  launchdeck hotkey [binding]     validate and print the summon binding
  launchdeck version`)
}

func initLogging(cfg config.Config) {
	dir, err := config.Dir()
	if err != nil {
		dir = ""
	}
	logging.Init(logging.Config{
		LogDir:   dir,
		Level:    os.Getenv("LAUNCHDECK_LOG_LEVEL"),
		Debug:    os.Getenv("LAUNCHDECK_DEBUG") != "",
		Compress: true,
	})
}

// buildState wires sources, the persisted index store, and the shared state.
func buildState(cfg config.Config) (*state.State, *store.Store) {
	var st *store.Store
	if dir, err := config.Dir(); err == nil {
		if opened, err := store.Open(filepath.Join(dir, "index.db")); err == nil {
			if err := opened.Migrate(); err == nil {
				st = opened
			} else {
				opened.Close()
			}
		}
	}

	appSources := []source.AppSource{}
	if dir, err := config.Dir(); err == nil {
		appSources = append(appSources, &source.FileApps{
			Path:  filepath.Join(dir, "apps.json"),
			Label: "app-file",
		})
	}

	s := state.New(state.Options{
		Config:          cfg,
		AppSources:      appSources,
		BookmarkSources: []source.BookmarkSource{&source.ChromiumBookmarks{Roots: browserRoots()}},
		Store:           st,
	})
	s.Warm()
	return s, st
}

func runSearch(args []string) int {
	fs := flag.NewFlagSet("search", flag.ExitOnError)
	mode := fs.String("mode", "", "restrict results: all, app, bookmark, search")
	execFirst := fs.Bool("exec", false, "execute the top result")
	elevated := fs.Bool("elevated", false, "run the action elevated")
	asJSON := fs.Bool("json", false, "print results as JSON")
	_ = fs.Parse(args)

	if fs.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "search: missing query")
		return 2
	}
	query := fs.Arg(0)

	cfg := config.Load()
	initLogging(cfg)
	s, st := buildState(cfg)
	if st != nil {
		defer st.Close()
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if len(s.Apps()) == 0 && len(s.Bookmarks()) == 0 {
		s.RefreshAll(ctx)
	} else {
		s.RefreshBookmarks(ctx)
	}

	results, actions := s.Query(query, *mode)
	if *asJSON {
		payload, err := json.MarshalIndent(results, "", "  ")
		if err != nil {
			fmt.Fprintf(os.Stderr, "search: %v\n", err)
			return 1
		}
		fmt.Println(string(payload))
	} else {
		for _, r := range results {
			fmt.Printf("%-10s %-40s %s\n", r.Kind, r.Title, r.Subtitle)
		}
	}

	if *execFirst && len(results) > 0 {
		top := results[0]
		action, ok := actions[top.ID]
		if !ok {
			fmt.Fprintln(os.Stderr, "search: top result has no action")
			return 1
		}
		s.RecordExecution(top, action)
		if err := (execute.ShellExecutor{}).Execute(action, *elevated); err != nil {
			fmt.Fprintf(os.Stderr, "search: %v\n", err)
			return 1
		}
	}
	return 0
}

func runIndex(args []string) int {
	cfg := config.Load()
	initLogging(cfg)
	s, st := buildState(cfg)
	if st != nil {
		defer st.Close()
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()
	s.RefreshAll(ctx)

	fmt.Printf("indexed %d apps, %d bookmarks\n", len(s.Apps()), len(s.Bookmarks()))
	return 0
}

func runDaemon(args []string) int {
	fs := flag.NewFlagSet("daemon", flag.ExitOnError)
	interval := fs.Duration("interval", 10*time.Minute, "rescan interval")
	_ = fs.Parse(args)

	cfg := config.Load()
	initLogging(cfg)
	s, st := buildState(cfg)
	if st != nil {
		defer st.Close()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	refresher := &state.Refresher{
		State:      s,
		Interval:   *interval,
		WatchPaths: bookmarkWatchPaths(),
	}
	refresher.Run(ctx)
	return 0
}

func runExclude(args []string) int {
	if len(args) == 0 {
		fmt.Fprintln(os.Stderr, "exclude: missing pattern")
		return 2
	}
	pattern := args[0]

	cfg := config.Load()
	initLogging(cfg)
	s, st := buildState(cfg)
	if st != nil {
		defer st.Close()
	}

	updated := s.AddExclusion(pattern)
	if err := config.Save(updated); err != nil {
		fmt.Fprintf(os.Stderr, "exclude: %v\n", err)
		return 1
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()
	s.RefreshApps(ctx)

	fmt.Printf("excluded %q, %d apps remain\n", pattern, len(s.Apps()))
	return 0
}

func runHotkey(args []string) int {
	cfg := config.Load()
	binding := cfg.GlobalHotkey
	if len(args) > 0 {
		binding = args[0]
	}

	spec, err := hotkey.Parse(binding)
	if err != nil {
		fmt.Fprintf(os.Stderr, "hotkey: %v\n", err)
		fmt.Printf("falling back to %s\n", hotkey.ParseOrDefault(binding))
		return 1
	}
	fmt.Println(spec)
	return 0
}
