// Package platform detects the host platform and picks the command used to
// open URLs and launch targets through the OS shell.
package platform

import (
	"os"
	"runtime"
	"strings"
)

// Platform represents the detected platform
type Platform string

const (
	PlatformMacOS   Platform = "macos"
	PlatformLinux   Platform = "linux"
	PlatformWSL     Platform = "wsl"
	PlatformWindows Platform = "windows"
	PlatformUnknown Platform = "unknown"
)

// cached detection result
var detectedPlatform Platform
var detectionDone bool

// Detect returns the current platform, caching the result
func Detect() Platform {
	if detectionDone {
		return detectedPlatform
	}

	detectedPlatform = detectPlatform()
	detectionDone = true
	return detectedPlatform
}

func detectPlatform() Platform {
	switch runtime.GOOS {
	case "darwin":
		return PlatformMacOS
	case "windows":
		return PlatformWindows
	case "linux":
		if isWSL() {
			return PlatformWSL
		}
		return PlatformLinux
	default:
		return PlatformUnknown
	}
}

// isWSL distinguishes WSL from native Linux.
func isWSL() bool {
	if os.Getenv("WSL_DISTRO_NAME") != "" {
		return true
	}
	procVersion, err := os.ReadFile("/proc/version")
	if err != nil {
		return false
	}
	return strings.Contains(strings.ToLower(string(procVersion)), "microsoft")
}

// OpenCommand returns the command and leading arguments that hand a target
// (URL or path) to the OS default handler.
func OpenCommand() []string {
	switch Detect() {
	case PlatformMacOS:
		return []string{"open"}
	case PlatformWindows:
		return []string{"cmd", "/c", "start", ""}
	case PlatformWSL:
		return []string{"wslview"}
	default:
		return []string{"xdg-open"}
	}
}
