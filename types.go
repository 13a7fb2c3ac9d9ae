package seps

// Document content types recognized by the converter.
const (
	TypePlaintext = "text/plain"
	TypeMarkdown  = "text/markdown"
)

// URL templates for generated cross references. The formats take the
// referenced document number except Dir, which is the published root.
const (
	DefaultRFCURL    = "http://www.faqs.org/rfcs/rfc%d.html"
	DefaultSEPURL    = "sep-%04d.html"
	DefaultSourceURL = "https://hg.python.org/seps/file/tip/sep-%04d.txt"
	DefaultDirURL    = "http://www.python.org/seps/"
)

// URLConfig groups the link templates used when rendering cross
// references and source links. Zero-value fields fall back to the
// defaults above.
type URLConfig struct {
	RFC    string // per-RFC reference page, takes the RFC number
	SEP    string // per-SEP page, takes the SEP number
	Source string // source-browse page, takes the SEP number
	Dir    string // published SEP directory
}

// DefaultURLs returns the stock URL templates.
func DefaultURLs() URLConfig {
	return URLConfig{
		RFC:    DefaultRFCURL,
		SEP:    DefaultSEPURL,
		Source: DefaultSourceURL,
		Dir:    DefaultDirURL,
	}
}

func (u URLConfig) withDefaults() URLConfig {
	d := DefaultURLs()
	if u.RFC == "" {
		u.RFC = d.RFC
	}
	if u.SEP == "" {
		u.SEP = d.SEP
	}
	if u.Source == "" {
		u.Source = d.Source
	}
	if u.Dir == "" {
		u.Dir = d.Dir
	}
	return u
}

// indexBasename is the distinguished index document; it gets summary-line
// hyperlinking and plain-text treatment for some header fields.
const indexBasename = "sep-0000.txt"

// localVarsMarker ends body processing; everything after it is editor
// metadata, not document content.
const localVarsMarker = "Local Variables:"

// bannerVariants is the number of PyBanner image files to choose from.
const bannerVariants = 64

// outputPermissions makes generated pages group/world readable so the
// web server can serve them regardless of the committer's umask.
const outputPermissions = 0o664
