package seps

import "errors"

// Sentinel errors for library operations.
var (
	ErrNotSEP          = errors.New("input is not a SEP")
	ErrUnknownSEPType  = errors.New("unknown SEP type")
	ErrInvalidSEPNum   = errors.New("invalid SEP number")
	ErrInvalidRef      = errors.New("invalid SEP reference")
	ErrMissingHeader   = errors.New("document does not begin with an RFC-2822 header")
	ErrMissingTitle    = errors.New("document has no title")
	ErrMarkdownConvert = errors.New("markdown conversion failed")

	// PDF rendering errors.
	ErrBrowserConnect = errors.New("failed to connect to browser")
	ErrPageCreate     = errors.New("failed to create browser page")
	ErrPageLoad       = errors.New("failed to load page")
	ErrPDFRender      = errors.New("PDF rendering failed")
)
