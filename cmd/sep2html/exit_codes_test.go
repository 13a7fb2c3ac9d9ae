package main

import (
	"fmt"
	"os"
	"testing"

	seps "github.com/capsulecorplab/go-seps"
	"github.com/capsulecorplab/go-seps/internal/config"
)

// ---- TestExitCodeFor - Error to exit code mapping ----

func TestExitCodeFor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "nil error", err: nil, want: ExitSuccess},
		{name: "generic error", err: fmt.Errorf("boom"), want: ExitGeneral},
		{name: "missing file", err: fmt.Errorf("reading: %w", os.ErrNotExist), want: ExitIO},
		{name: "permission denied", err: os.ErrPermission, want: ExitIO},
		{name: "no sep files", err: ErrNoSEPFiles, want: ExitIO},
		{name: "config not found", err: config.ErrConfigNotFound, want: ExitUsage},
		{name: "config parse", err: fmt.Errorf("%w: bad yaml", config.ErrConfigParse), want: ExitUsage},
		{name: "bad argument", err: fmt.Errorf("%w: %q", ErrBadSEPArg, "x"), want: ExitUsage},
		{name: "no deploy target", err: ErrNoDeployTarget, want: ExitUsage},
		{name: "invalid reference", err: seps.ErrInvalidRef, want: ExitUsage},
		{name: "missing header", err: fmt.Errorf("converting: %w", seps.ErrMissingHeader), want: ExitUsage},
		{name: "missing title", err: seps.ErrMissingTitle, want: ExitUsage},
		{name: "browser connect", err: seps.ErrBrowserConnect, want: ExitBrowser},
		{name: "pdf render", err: fmt.Errorf("page: %w", seps.ErrPDFRender), want: ExitBrowser},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := exitCodeFor(tt.err); got != tt.want {
				t.Errorf("exitCodeFor(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}
