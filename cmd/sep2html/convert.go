package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"

	log "github.com/sirupsen/logrus"

	seps "github.com/capsulecorplab/go-seps"
	"github.com/capsulecorplab/go-seps/internal/config"
	"github.com/capsulecorplab/go-seps/internal/fileutil"
)

// Sentinel errors for CLI operations.
var (
	ErrNoSEPFiles = errors.New("no SEP files found")
	ErrBadSEPArg  = errors.New("argument is neither a SEP number nor an existing file")
)

// run converts the requested SEPs and performs the requested follow-up
// actions (install, browse, PDF).
func run(flags *cliFlags, args []string, cfg *config.Config) error {
	svc := seps.New(seps.WithURLs(seps.URLConfig{
		RFC:    cfg.Site.RFCURL,
		SEP:    cfg.Site.SEPURL,
		Source: cfg.Site.SourceURL,
		Dir:    cfg.Site.DirURL,
	}))

	sources, err := resolveInputs(args)
	if err != nil {
		return err
	}

	var pdfRenderer seps.PDFRenderer
	if flags.pdf {
		pdfRenderer = seps.NewPDFRenderer(0)
		defer pdfRenderer.Close()
	}

	var generated []string
	for _, inpath := range sources {
		outpath, err := svc.ConvertFile(inpath)
		if err != nil {
			return err
		}
		if outpath == "" {
			continue // reported and skipped
		}
		log.Infof("%s -> %s", inpath, outpath)
		generated = append(generated, outpath)

		if flags.pdf {
			if err := renderPDF(pdfRenderer, outpath); err != nil {
				return err
			}
		}
	}

	if flags.browse && !flags.install {
		for _, page := range browseTargets(len(args) > 0, generated) {
			if err := browseLocal(page); err != nil {
				log.Warnf("opening browser: %v", err)
			}
		}
	}
	if flags.install {
		if err := push(generated, sources, flags, cfg.Deploy); err != nil {
			return err
		}
		if flags.browse {
			return browseRemote(browseTargets(len(args) > 0, generated), cfg.Site.DirURL)
		}
	}
	return nil
}

// browseTargets returns the pages to open in the browser: the
// converted pages when SEPs were named explicitly, only the index for
// a whole-directory run.
func browseTargets(hadArgs bool, generated []string) []string {
	if hadArgs {
		return generated
	}
	src, err := findSEP("0")
	if err != nil {
		return nil
	}
	return []string{fileutil.HTMLPath(src)}
}

// resolveInputs maps positional arguments to source files. With no
// arguments, every SEP file in the current directory is processed.
func resolveInputs(args []string) ([]string, error) {
	if len(args) == 0 {
		sources, err := discoverSEPFiles(".")
		if err != nil {
			return nil, err
		}
		if len(sources) == 0 {
			return nil, ErrNoSEPFiles
		}
		return sources, nil
	}
	sources := make([]string, 0, len(args))
	for _, arg := range args {
		path, err := findSEP(arg)
		if err != nil {
			return nil, err
		}
		sources = append(sources, path)
	}
	return sources, nil
}

// findSEP resolves a command-line argument to a source file: an
// existing path is taken as-is, otherwise the argument must be a SEP
// number naming sep-NNNN.md or sep-NNNN.txt.
func findSEP(arg string) (string, error) {
	if fileutil.FileExists(arg) {
		return arg, nil
	}
	num, err := strconv.Atoi(arg)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrBadSEPArg, arg)
	}
	mdPath := fmt.Sprintf("sep-%04d.md", num)
	if fileutil.FileExists(mdPath) {
		return mdPath, nil
	}
	return fmt.Sprintf("sep-%04d.txt", num), nil
}

// discoverSEPFiles lists SEP source files in dir, sorted by name.
func discoverSEPFiles(dir string) ([]string, error) {
	var paths []string
	for _, pattern := range []string{"sep-*.txt", "sep-*.md"} {
		matches, err := filepath.Glob(filepath.Join(dir, pattern))
		if err != nil {
			return nil, fmt.Errorf("scanning %s: %w", dir, err)
		}
		paths = append(paths, matches...)
	}
	sort.Strings(paths)
	return paths, nil
}

// renderPDF renders the generated HTML page to a sibling PDF file.
func renderPDF(renderer seps.PDFRenderer, htmlPath string) error {
	pdf, err := renderer.RenderFile(context.Background(), htmlPath)
	if err != nil {
		return err
	}
	pdfPath := htmlPath[:len(htmlPath)-len(".html")] + ".pdf"
	if err := os.WriteFile(pdfPath, pdf, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", pdfPath, err)
	}
	log.Infof("%s -> %s", htmlPath, pdfPath)
	return nil
}
