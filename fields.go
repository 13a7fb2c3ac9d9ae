package seps

import (
	"fmt"
	"html"
	"regexp"
	"strconv"
	"strings"

	"github.com/capsulecorplab/go-seps/internal/dateutil"
)

// fieldContext carries the per-document state the transforms need.
type fieldContext struct {
	urls    URLConfig
	inpath  string
	isIndex bool
	sep     string // raw Sep header value
}

// fieldTransform rewrites one header field value into HTML.
type fieldTransform func(ctx *fieldContext, value string) (string, error)

// fieldTransforms dispatches recognized field names (lowercase) to
// their transform. Unlisted fields are HTML-escaped as plain text.
var fieldTransforms = map[string]fieldTransform{
	"author":         transformAddresses,
	"bdfl-delegate":  transformAddresses,
	"discussions-to": transformDiscussionsTo,
	"replaces":       transformSEPRefs,
	"superseded-by":  transformSEPRefs,
	"requires":       transformSEPRefs,
	"last-modified":  transformLastModified,
	"content-type":   transformContentType,
	"version":        transformVersion,
}

// transformField applies the transform registered for name, falling
// back to plain escaping.
func transformField(ctx *fieldContext, name, value string) (string, error) {
	if transform, ok := fieldTransforms[strings.ToLower(name)]; ok {
		return transform(ctx, value)
	}
	return html.EscapeString(value), nil
}

var commaSplit = regexp.MustCompile(`,\s*`)

func transformAddresses(ctx *fieldContext, value string) (string, error) {
	return joinAddressEntries(ctx, value, false), nil
}

// transformDiscussionsTo always links the address: mailing lists are
// public anyway, so masking them would only hurt usability.
func transformDiscussionsTo(ctx *fieldContext, value string) (string, error) {
	return joinAddressEntries(ctx, value, true), nil
}

func joinAddressEntries(ctx *fieldContext, value string, alwaysLink bool) string {
	parts := commaSplit.Split(value, -1)
	rendered := make([]string, 0, len(parts))
	for _, part := range parts {
		rendered = append(rendered, renderAddressEntry(part, ctx.sep, alwaysLink))
	}
	return strings.Join(rendered, ", ")
}

var refSplit = regexp.MustCompile(`,?\s+`)

// transformSEPRefs links every listed SEP number. A non-numeric token
// is a hard error: a silently broken link would be worse than an
// aborted conversion.
func transformSEPRefs(ctx *fieldContext, value string) (string, error) {
	var out strings.Builder
	for _, ref := range refSplit.Split(value, -1) {
		num, err := strconv.Atoi(ref)
		if err != nil {
			return "", fmt.Errorf("%w: %q", ErrInvalidRef, ref)
		}
		fmt.Fprintf(&out, `<a href="%s">%d</a> `, fmt.Sprintf(ctx.urls.SEP, num), num)
	}
	return out.String(), nil
}

func transformLastModified(ctx *fieldContext, value string) (string, error) {
	date := value
	if date == "" {
		date = dateutil.ModTime(ctx.inpath)
	}
	date = stripRCSKeyword(date, "$"+"Date: ")
	if ctx.isIndex {
		return date, nil
	}
	num, err := strconv.Atoi(ctx.sep)
	if err != nil {
		return date, nil
	}
	url := fmt.Sprintf(ctx.urls.Source, num)
	return fmt.Sprintf(`<a href="%s">%s</a> `, url, html.EscapeString(date)), nil
}

// contentTypeRefSEP is the SEP documenting the available document
// formats; Content-Type values link to it.
const contentTypeRefSEP = 9

func transformContentType(ctx *fieldContext, value string) (string, error) {
	sepType := value
	if sepType == "" {
		sepType = TypePlaintext
	}
	url := fmt.Sprintf(ctx.urls.SEP, contentTypeRefSEP)
	return fmt.Sprintf(`<a href="%s">%s</a> `, url, html.EscapeString(sepType)), nil
}

// transformVersion strips the RCS revision keyword wrapper. A value
// without the wrapper passes through unescaped, matching the long
// standing behavior of the original converter (flagged in tests).
func transformVersion(ctx *fieldContext, value string) (string, error) {
	if stripped := stripRCSKeyword(value, "$"+"Revision: "); stripped != value {
		return html.EscapeString(stripped), nil
	}
	return value, nil
}

// stripRCSKeyword removes a version-control keyword wrapper such as
// "$Date: ... $". The prefix is split in the callers so the sources
// themselves survive keyword expansion.
func stripRCSKeyword(value, prefix string) string {
	if strings.HasPrefix(value, prefix) && strings.HasSuffix(value, " $") {
		return strings.TrimSpace(value[len(prefix) : len(value)-2])
	}
	return value
}
