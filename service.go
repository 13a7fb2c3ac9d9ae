package seps

import (
	"bytes"
	"fmt"
	"io"
	"math/rand"
	"os"
	"regexp"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/capsulecorplab/go-seps/internal/fileutil"
)

// renderer turns one SEP document into a complete HTML page.
type renderer interface {
	Render(inpath string, lines []string, w io.Writer) error
}

// Compile-time interface checks.
var (
	_ renderer = (*plaintextRenderer)(nil)
	_ renderer = (*markupRenderer)(nil)
)

// Service converts SEP source documents to HTML pages. It dispatches
// on the document's Content-Type: plaintext documents go through the
// line renderer, Markdown documents through the goldmark pipeline.
type Service struct {
	urls     URLConfig
	rng      *rand.Rand
	dispatch map[string]renderer
}

// Option customizes a Service.
type Option func(*serviceConfig)

type serviceConfig struct {
	urls URLConfig
	src  rand.Source
}

// WithURLs overrides the link templates used in generated pages.
func WithURLs(urls URLConfig) Option {
	return func(c *serviceConfig) { c.urls = urls }
}

// WithRandSource fixes the randomness behind the rotating banner
// image. Tests use it to get byte-identical output.
func WithRandSource(src rand.Source) Option {
	return func(c *serviceConfig) { c.src = src }
}

// New creates a Service with default configuration.
func New(opts ...Option) *Service {
	cfg := serviceConfig{urls: DefaultURLs()}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.src == nil {
		cfg.src = rand.NewSource(time.Now().UnixNano())
	}
	urls := cfg.urls.withDefaults()
	rng := rand.New(cfg.src)
	return &Service{
		urls: urls,
		rng:  rng,
		dispatch: map[string]renderer{
			TypePlaintext: &plaintextRenderer{urls: urls, rng: rng},
			TypeMarkdown:  newMarkupRenderer(urls, rng),
		},
	}
}

// ConvertFile converts the SEP at inpath and writes the HTML page next
// to it. It returns the output path. A missing input file or an
// unrecognized document is reported and skipped (empty path, nil
// error); rendering failures are returned.
func (s *Service) ConvertFile(inpath string) (string, error) {
	lines, err := readLines(inpath)
	if err != nil {
		if os.IsNotExist(err) {
			log.Errorf("skipping missing SEP file: %s", inpath)
			return "", nil
		}
		return "", err
	}

	sepType := DetectType(lines)
	if sepType == "" {
		log.Errorf("input file %s is not a SEP", inpath)
		return "", nil
	}
	r, ok := s.dispatch[sepType]
	if !ok {
		log.Errorf("unknown SEP type for input file %s: %s", inpath, sepType)
		return "", nil
	}

	outpath := fileutil.HTMLPath(inpath)
	var buf bytes.Buffer
	if err := r.Render(inpath, lines, &buf); err != nil {
		return "", fmt.Errorf("converting %s: %w", inpath, err)
	}
	if err := fileutil.WriteFileReadable(outpath, buf.Bytes(), outputPermissions); err != nil {
		return "", fmt.Errorf("writing %s: %w", outpath, err)
	}
	return outpath, nil
}

// Render converts the document at inpath to w without touching the
// filesystem for output. Unlike ConvertFile, unrecognized documents
// are errors here: the caller asked for this document specifically.
func (s *Service) Render(inpath string, lines []string, w io.Writer) error {
	sepType := DetectType(lines)
	if sepType == "" {
		return fmt.Errorf("%w: %s", ErrNotSEP, inpath)
	}
	r, ok := s.dispatch[sepType]
	if !ok {
		return fmt.Errorf("%w: %s (%s)", ErrUnknownSEPType, sepType, inpath)
	}
	return r.Render(inpath, lines, w)
}

var crlfOrCR = regexp.MustCompile(`\r\n?`)

// readLines reads inpath and returns its lines without trailing
// newlines, with Windows and old Mac line endings normalized.
func readLines(inpath string) ([]string, error) {
	data, err := os.ReadFile(inpath)
	if err != nil {
		return nil, err
	}
	content := crlfOrCR.ReplaceAllString(string(data), "\n")
	lines := strings.Split(content, "\n")
	if n := len(lines); n > 0 && lines[n-1] == "" {
		lines = lines[:n-1]
	}
	return lines, nil
}
