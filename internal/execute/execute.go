// Package execute resolves a pending action into its side effect. Retry and
// fallback-path handling lives here, not in the search core: the worst a
// failed launch does is return a descriptive error to the caller.
package execute

import (
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"strings"

	"github.com/asheshgoplani/launchdeck/internal/entry"
	"github.com/asheshgoplani/launchdeck/internal/logging"
	"github.com/asheshgoplani/launchdeck/internal/platform"
	"github.com/asheshgoplani/launchdeck/internal/search"
)

var execLog = logging.ForComponent(logging.CompExec)

// Executor consumes one pending action.
type Executor interface {
	Execute(action search.Action, elevated bool) error
}

// ShellExecutor hands actions to the OS default handler.
type ShellExecutor struct{}

// Execute dispatches over the closed action set.
func (ShellExecutor) Execute(action search.Action, elevated bool) error {
	switch a := action.(type) {
	case search.LaunchApp:
		return launchApp(a.App, elevated)
	case search.OpenBookmark:
		return openTarget(a.Bookmark.URL)
	case search.OpenURL:
		return openTarget(normalizeURL(a.URL))
	case search.WebSearch:
		return openTarget(a.URL)
	default:
		return fmt.Errorf("execute: unknown action %T", action)
	}
}

// launchApp starts the primary launch target, falling back to the source
// path with its arguments and working directory.
func launchApp(app entry.Application, elevated bool) error {
	primaryErr := startDetached(app.Path, "", "", elevated)
	if primaryErr == nil {
		return nil
	}
	execLog.Warn("primary_launch_failed",
		slog.String("app", app.Name), slog.String("error", primaryErr.Error()))

	if app.SourcePath == "" {
		return fmt.Errorf("could not launch %s: %w", app.Name, primaryErr)
	}

	source := strings.Trim(strings.TrimSpace(app.SourcePath), `"'`)
	if source == "" {
		return fmt.Errorf("could not launch %s: %w", app.Name, primaryErr)
	}
	if err := startDetached(source, app.Arguments, app.WorkingDir, elevated); err != nil {
		// Report the primary failure; the fallback is best effort.
		return fmt.Errorf("could not launch %s: %w", app.Name, primaryErr)
	}
	return nil
}

func startDetached(target, arguments, workingDir string, elevated bool) error {
	if target == "" {
		return fmt.Errorf("empty launch target")
	}
	if strings.Contains(target, "://") {
		// Scheme targets (packaged app URIs) go through the OS handler.
		return openTarget(target)
	}
	if _, err := os.Stat(target); err != nil {
		return fmt.Errorf("target does not exist: %s", target)
	}

	argv := make([]string, 0, 4)
	if elevated && canElevate() {
		argv = append(argv, "pkexec")
	}
	argv = append(argv, target)
	if arguments != "" {
		argv = append(argv, strings.Fields(arguments)...)
	}

	cmd := exec.Command(argv[0], argv[1:]...)
	if workingDir != "" {
		cmd.Dir = workingDir
	}
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("start %s: %w", target, err)
	}
	// The launched process outlives us; don't wait on it.
	go func() { _ = cmd.Wait() }()
	return nil
}

func canElevate() bool {
	p := platform.Detect()
	return p == platform.PlatformLinux || p == platform.PlatformWSL
}

// openTarget hands a URL or path to the OS default handler.
func openTarget(target string) error {
	opener := platform.OpenCommand()
	args := append(opener[1:], target)
	cmd := exec.Command(opener[0], args...)
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("could not open %s: %w", target, err)
	}
	go func() { _ = cmd.Wait() }()
	return nil
}

// normalizeURL defaults bare dotted queries to https.
func normalizeURL(raw string) string {
	if strings.HasPrefix(raw, "http://") || strings.HasPrefix(raw, "https://") {
		return raw
	}
	return "https://" + raw
}
