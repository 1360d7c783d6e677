package source

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/asheshgoplani/launchdeck/internal/entry"
	"github.com/asheshgoplani/launchdeck/internal/phonetic"
)

// FileApps reads an application list from a JSON file: a portable source
// for user-maintained entries and for platform enumerators that hand off
// through a file. Missing identities and phonetic sidecars are filled in.
type FileApps struct {
	Path  string
	Label string
}

func (f *FileApps) Name() string {
	if f.Label != "" {
		return f.Label
	}
	return "app-file"
}

// Apps parses the file into raw application entries. A missing file is not
// an error; it yields an empty batch.
func (f *FileApps) Apps(ctx context.Context) ([]entry.Application, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(f.Path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("source: read app list: %w", err)
	}

	var apps []entry.Application
	if err := json.Unmarshal(data, &apps); err != nil {
		return nil, fmt.Errorf("source: parse app list: %w", err)
	}

	kept := apps[:0]
	for _, app := range apps {
		if app.Name == "" || app.Path == "" {
			// Malformed entries are skipped, not fatal.
			sourceLog.Warn("app_entry_skipped", "path", app.Path, "name", app.Name)
			continue
		}
		if app.Kind == "" {
			app.Kind = entry.KindNative
		}
		if app.ID == "" {
			app.ID = entry.AppID(app.EffectivePath())
		}
		if app.PhoneticIndex == "" {
			app.PhoneticIndex = phonetic.BuildIndex(app.Name)
		}
		kept = append(kept, app)
	}
	return kept, nil
}

// StaticApps is an in-memory application source, mainly for tests and for
// callers that already hold enumerated entries.
type StaticApps struct {
	Label   string
	Entries []entry.Application
	Err     error
}

func (s *StaticApps) Name() string {
	if s.Label != "" {
		return s.Label
	}
	return "static"
}

func (s *StaticApps) Apps(ctx context.Context) ([]entry.Application, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	return s.Entries, nil
}
