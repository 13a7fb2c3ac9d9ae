package main

import (
	"errors"
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"go.uber.org/automaxprocs/maxprocs"

	seps "github.com/capsulecorplab/go-seps"
	"github.com/capsulecorplab/go-seps/internal/config"
	"github.com/capsulecorplab/go-seps/internal/hints"
)

// Version is set at build time via ldflags.
var Version = "dev"

func main() {
	flags, args, err := parseFlags(os.Args[1:])
	if err != nil {
		os.Exit(ExitUsage)
	}

	log.SetFormatter(&log.TextFormatter{DisableTimestamp: true})
	if flags.quiet {
		log.SetLevel(log.ErrorLevel)
	}

	// Error ignored: maxprocs.Set only fails if GOMAXPROCS env is
	// invalid, in which case runtime defaults apply.
	_, _ = maxprocs.Set(maxprocs.Logger(log.Debugf))

	cfg, err := config.Load(flags.config)
	if err != nil {
		fail(err)
	}

	if err := run(flags, args, cfg); err != nil {
		fail(err)
	}
}

// fail prints the error with an actionable hint where one exists and
// exits with the mapped code.
func fail(err error) {
	fmt.Fprintf(os.Stderr, "%v%s\n", err, hintFor(err))
	os.Exit(exitCodeFor(err))
}

func hintFor(err error) string {
	switch {
	case errors.Is(err, seps.ErrBrowserConnect):
		return hints.ForBrowserConnect()
	case errors.Is(err, config.ErrConfigNotFound):
		return hints.ForConfigNotFound()
	case errors.Is(err, ErrNoDeployTarget):
		return hints.ForDeployTarget()
	case errors.Is(err, ErrBadSEPArg):
		return hints.ForBadSEPArg()
	}
	return ""
}
