// Package hints provides actionable error hints for common failure
// scenarios. Hints are formatted as "\n  hint: <text>" for appending
// to error messages.
package hints

import (
	"os"
	"strings"

	"github.com/capsulecorplab/go-seps/internal/fileutil"
)

// IsInContainer detects if running inside a Docker container or
// similar. Checks for /.dockerenv which Docker creates automatically.
var IsInContainer = func() bool {
	return fileutil.FileExists("/.dockerenv")
}

// ForBrowserConnect returns hints for browser connection errors during
// PDF rendering. Detects CI/Docker and suggests the relevant
// environment variables.
func ForBrowserConnect() string {
	var out []string

	inCI := os.Getenv("CI") != "" ||
		os.Getenv("GITHUB_ACTIONS") != "" ||
		os.Getenv("GITLAB_CI") != "" ||
		os.Getenv("JENKINS_URL") != ""

	if (inCI || IsInContainer()) && os.Getenv("ROD_NO_SANDBOX") != "1" {
		out = append(out, "set ROD_NO_SANDBOX=1 for Docker/CI")
	}
	if os.Getenv("ROD_BROWSER_BIN") == "" {
		out = append(out, "set ROD_BROWSER_BIN to use custom Chrome")
	}

	return formatHints(out)
}

// ForConfigNotFound returns the hint for an explicitly named config
// file that does not exist.
func ForConfigNotFound() string {
	return format("pass --config /path/to/seps.yaml or create ./seps.yaml")
}

// ForDeployTarget returns the hint for an install without a configured
// destination.
func ForDeployTarget() string {
	return format("set deploy.host and deploy.dir in the config file, or use --local")
}

// ForBadSEPArg returns the hint for a positional argument that is
// neither a SEP number nor an existing file.
func ForBadSEPArg() string {
	return format("pass a SEP number like 8, or a sep-NNNN.txt/.md path")
}

// format creates a single hint string with consistent formatting.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}

// formatHints joins multiple hints with consistent formatting.
func formatHints(hints []string) string {
	if len(hints) == 0 {
		return ""
	}
	return format(strings.Join(hints, "; "))
}
