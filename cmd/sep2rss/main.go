// Command sep2rss builds the syndication feed for the newest SEPs.
// It is meant to run from a post-commit hook:
//
//	sep2rss <output-dir>
//
// The feed is written to <output-dir>/seps.rss from the SEP sources in
// the current directory (or --dir).
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	log "github.com/sirupsen/logrus"
	flag "github.com/spf13/pflag"
	"go.uber.org/automaxprocs/maxprocs"

	seps "github.com/capsulecorplab/go-seps"
	"github.com/capsulecorplab/go-seps/internal/config"
)

// feedFilename is the output name inside the target directory.
const feedFilename = "seps.rss"

func main() {
	fs := flag.NewFlagSet("sep2rss", flag.ContinueOnError)
	srcDir := fs.StringP("dir", "d", ".", "directory holding the SEP sources")
	configPath := fs.StringP("config", "c", "", "config file path")
	quiet := fs.BoolP("quiet", "q", false, "turn off verbose messages")
	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: sep2rss [options] <output-dir>")
		fmt.Fprint(os.Stderr, fs.FlagUsages())
	}

	if err := fs.Parse(os.Args[1:]); err != nil {
		os.Exit(2)
	}
	if fs.NArg() != 1 {
		fs.Usage()
		os.Exit(2)
	}

	log.SetFormatter(&log.TextFormatter{DisableTimestamp: true})
	if *quiet {
		log.SetLevel(log.ErrorLevel)
	}
	_, _ = maxprocs.Set(maxprocs.Logger(log.Debugf))

	if err := run(fs.Arg(0), *srcDir, *configPath); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(outDir, srcDir, configPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	env := seps.FeedEnvelope{
		Title:       cfg.Feed.Title,
		Link:        cfg.Feed.Link,
		Description: cfg.Feed.Description,
		Size:        cfg.Feed.Size,
	}

	rss, err := seps.BuildFeed(srcDir, env, time.Now())
	if err != nil {
		return err
	}

	outPath := filepath.Join(outDir, feedFilename)
	if err := os.WriteFile(outPath, []byte(rss), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", outPath, err)
	}
	log.Infof("wrote %s", outPath)
	return nil
}
