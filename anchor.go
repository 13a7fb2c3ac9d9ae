package seps

import (
	"fmt"
	"html"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
)

// Body-line annotation. The original combined everything into a single
// alternation pattern; this is an explicit lexer producing tagged
// tokens so the priority order is spelled out instead of hidden in
// alternation semantics. Candidates are tried at every position in
// this order: URL, SEP filename, RFC reference, SEP reference. The
// first match wins and the scan resumes after it, so matches never
// overlap and a URL containing "sep-0001.txt" stays a single URL.

type tokenKind int

const (
	tokenPlain tokenKind = iota
	tokenURL
	tokenSelfRef  // sep-NNNN filename naming the current document
	tokenSEPFile  // sep-NNNN filename naming another document
	tokenRFCRef   // "RFC n"
	tokenSEPRef   // "SEP n"
)

type token struct {
	kind tokenKind
	text string
	num  int // parsed number for RFC/SEP references
}

// Anchored candidate patterns, one per token kind. The URL character
// class and the trailing-punctuation strip below match the original
// faqwiz-derived behavior.
var (
	urlPattern     = regexp.MustCompile(`^(https?|ftp):[-_a-zA-Z0-9/.+~:?#$=&,]+`)
	sepFilePattern = regexp.MustCompile(`^sep-\d+(\.txt|\.md)?`)
	rfcRefPattern  = regexp.MustCompile(`^RFC[- ]?(\d+)`)
	sepRefPattern  = regexp.MustCompile(`^SEP\s+(\d+)`)
)

// trailingPunctuation is stripped from matched URLs so "see
// http://x.org/page." links to the page, not the period.
const trailingPunctuation = `();:,.?'"<>`

// lexLine splits line into annotation tokens. current is the basename
// of the document being rendered; filename tokens equal to it become
// self references. Runs of unmatched characters collapse into single
// plain tokens.
func lexLine(current, line string) []token {
	var tokens []token
	var plain strings.Builder

	flush := func() {
		if plain.Len() > 0 {
			tokens = append(tokens, token{kind: tokenPlain, text: plain.String()})
			plain.Reset()
		}
	}

	for i := 0; i < len(line); {
		rest := line[i:]
		if m := urlPattern.FindString(rest); m != "" {
			flush()
			tokens = append(tokens, token{kind: tokenURL, text: m})
			i += len(m)
			continue
		}
		if m := sepFilePattern.FindString(rest); m != "" {
			flush()
			kind := tokenSEPFile
			if m == current {
				kind = tokenSelfRef
			}
			tokens = append(tokens, token{kind: kind, text: m})
			i += len(m)
			continue
		}
		if m := rfcRefPattern.FindStringSubmatch(rest); m != nil {
			num, _ := strconv.Atoi(m[1])
			flush()
			tokens = append(tokens, token{kind: tokenRFCRef, text: m[0], num: num})
			i += len(m[0])
			continue
		}
		if m := sepRefPattern.FindStringSubmatch(rest); m != nil {
			num, _ := strconv.Atoi(m[1])
			flush()
			tokens = append(tokens, token{kind: tokenSEPRef, text: m[0], num: num})
			i += len(m[0])
			continue
		}
		plain.WriteByte(line[i])
		i++
	}
	flush()
	return tokens
}

// annotateLine renders line with URLs and cross references hyperlinked
// and everything else HTML-escaped. current is the basename of the
// document being rendered, used to suppress self links.
func annotateLine(urls URLConfig, inpath, line string) string {
	current := filepath.Base(inpath)
	var out strings.Builder
	for _, tok := range lexLine(current, line) {
		switch tok.kind {
		case tokenURL:
			// The href drops trailing punctuation; the visible text
			// keeps it so the sentence still reads correctly.
			writeAnchor(&out, strings.TrimRight(tok.text, trailingPunctuation), tok.text)
		case tokenSEPFile:
			link := strings.TrimSuffix(strings.TrimSuffix(tok.text, ".txt"), ".md") + ".html"
			writeAnchor(&out, link, tok.text)
		case tokenRFCRef:
			writeAnchor(&out, fmt.Sprintf(urls.RFC, tok.num), tok.text)
		case tokenSEPRef:
			writeAnchor(&out, fmt.Sprintf(urls.SEP, tok.num), tok.text)
		default:
			out.WriteString(html.EscapeString(tok.text))
		}
	}
	return out.String()
}

func writeAnchor(out *strings.Builder, link, text string) {
	fmt.Fprintf(out, `<a href="%s">%s</a>`, html.EscapeString(link), html.EscapeString(text))
}
