package main

import (
	"errors"
	"os"

	seps "github.com/capsulecorplab/go-seps"
	"github.com/capsulecorplab/go-seps/internal/config"
)

// Exit codes for sep2html.
// Follows Unix conventions: 0=success, 1=general, 2=usage.
const (
	ExitSuccess = 0 // successful conversion
	ExitGeneral = 1 // general/unexpected error
	ExitUsage   = 2 // invalid flags, config, or arguments
	ExitIO      = 3 // file not found, permission denied
	ExitBrowser = 4 // browser/Chrome errors (--pdf)
)

// exitCodeFor returns the appropriate exit code for an error. It uses
// errors.Is, so callers must wrap with %w.
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	if errors.Is(err, seps.ErrBrowserConnect) ||
		errors.Is(err, seps.ErrPageCreate) ||
		errors.Is(err, seps.ErrPageLoad) ||
		errors.Is(err, seps.ErrPDFRender) {
		return ExitBrowser
	}

	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, ErrNoSEPFiles) {
		return ExitIO
	}

	if errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, seps.ErrInvalidRef) ||
		errors.Is(err, seps.ErrMissingHeader) ||
		errors.Is(err, seps.ErrMissingTitle) ||
		errors.Is(err, ErrBadSEPArg) ||
		errors.Is(err, ErrNoDeployTarget) {
		return ExitUsage
	}

	return ExitGeneral
}
