// Package seps converts SEP source documents to styled HTML pages and
// builds the syndication feed for the newest proposals.
//
// # Quick Start
//
// Create a service and convert a document:
//
//	svc := seps.New()
//	outpath, err := svc.ConvertFile("sep-0042.txt")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// ConvertFile writes sep-0042.html next to the source, group/world
// readable, and returns its path. Missing or non-SEP inputs are
// reported and skipped (empty path, nil error) so batch runs keep
// going.
//
// # Document Formats
//
// A SEP starts with an RFC-2822-style header (Sep, Title, Author, and
// friends, with continuation lines) followed by the body. Two body
// formats are supported, selected by the Content-Type header:
//
//   - text/plain: the body renders line by line into <pre> blocks,
//     with column-1 lines becoming section headings and URLs, SEP and
//     RFC mentions hyperlinked.
//   - text/markdown: the body goes through goldmark (GFM, footnotes,
//     syntax highlighting) with a transformer plugged into the parser
//     that links SEP and RFC mentions in the document tree.
//
// Header fields render per field-specific rules: author addresses are
// obfuscated unless allow-listed, Replaces/Superseded-By/Requires
// become links to the referenced SEPs, and version-control keyword
// wrappers are stripped from Version and Last-Modified.
//
// # Feed
//
// BuildFeed scans a directory of SEP sources and returns RSS for the
// newest ten, ordered by their Created header:
//
//	rss, err := seps.BuildFeed(".", seps.DefaultEnvelope(), time.Now())
//
// # PDF Output
//
// NewPDFRenderer renders a generated HTML page to PDF via headless
// Chrome (go-rod); the sep2html --pdf flag uses it. Chromium is
// downloaded automatically on first run. Set ROD_BROWSER_BIN to use a
// pre-installed browser in containers.
package seps
