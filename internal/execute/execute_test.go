package execute

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/asheshgoplani/launchdeck/internal/entry"
	"github.com/asheshgoplani/launchdeck/internal/search"
)

func TestNormalizeURL(t *testing.T) {
	assert.Equal(t, "https://example.com", normalizeURL("example.com"))
	assert.Equal(t, "http://example.com", normalizeURL("http://example.com"))
	assert.Equal(t, "https://example.com/a", normalizeURL("https://example.com/a"))
}

func TestLaunchAppMissingTarget(t *testing.T) {
	err := ShellExecutor{}.Execute(search.LaunchApp{App: entry.Application{
		Name: "Ghost",
		Path: "/nonexistent/binary",
		Kind: entry.KindNative,
	}}, false)
	assert.ErrorContains(t, err, "Ghost")
}

func TestLaunchAppFallbackAlsoMissing(t *testing.T) {
	err := ShellExecutor{}.Execute(search.LaunchApp{App: entry.Application{
		Name:       "Ghost",
		Path:       "/nonexistent/binary",
		SourcePath: `"/also/nonexistent"`,
		Kind:       entry.KindNative,
	}}, false)
	// The primary failure is what the caller sees.
	assert.ErrorContains(t, err, "/nonexistent/binary")
}

func TestStartDetachedEmptyTarget(t *testing.T) {
	err := startDetached("", "", "", false)
	assert.Error(t, err)
}
