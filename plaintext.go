package seps

import (
	"fmt"
	"html"
	"io"
	"math/rand"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	log "github.com/sirupsen/logrus"
)

// The generated HTML doesn't validate -- you cannot use <hr> and <h3>
// inside <pre> tags. But if that changes, the result doesn't look very
// nice...
const dtd = `<!DOCTYPE html PUBLIC "-//W3C//DTD HTML 4.0 Transitional//EN"
                      "http://www.w3.org/TR/REC-html40/loose.dtd">`

const generatedComment = `<!--
This HTML is auto-generated.  DO NOT EDIT THIS FILE!  If you are writing a new
SEP, see http://www.python.org/seps/sep-0001.html for instructions and links
to templates.  DO NOT USE THIS HTML FILE AS YOUR TEMPLATE!
-->`

// plaintextRenderer converts a plaintext SEP (RFC-2822 header plus
// free-form body) into the fixed HTML shell.
type plaintextRenderer struct {
	urls URLConfig
	rng  *rand.Rand
}

// indexSummaryNum matches the SEP-number column of index summary lines.
var indexSummaryNum = regexp.MustCompile(`^\d{1,4}$`)

// Render writes the complete HTML document for the plaintext SEP at
// inpath to w. lines are the document's lines without trailing
// newlines.
func (r *plaintextRenderer) Render(inpath string, lines []string, w io.Writer) error {
	basename := filepath.Base(inpath)
	isIndex := basename == indexBasename

	header, body := ParseHeader(lines)
	sep := header.SEP()
	ctx := &fieldContext{urls: r.urls, inpath: inpath, isIndex: isIndex, sep: sep}

	fmt.Fprintln(w, dtd)
	fmt.Fprintln(w, "<html>")
	fmt.Fprintln(w, generatedComment)
	fmt.Fprintln(w, "<head>")
	if title := header.DocumentTitle(); title != "" {
		fmt.Fprintf(w, "  <title>%s</title>\n", html.EscapeString(title))
	}
	r.writeNavigation(w, basename, sep)

	fmt.Fprintln(w, `<div class="header">`+"\n"+`<table border="0">`)
	for _, f := range header {
		value, err := transformField(ctx, f.Name, f.Value)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "  <tr><th>%s:&nbsp;</th><td>%s</td></tr>\n",
			html.EscapeString(f.Name), value)
	}
	fmt.Fprintln(w, "</table>")
	fmt.Fprintln(w, "</div>")
	fmt.Fprintln(w, "<hr />")
	fmt.Fprintln(w, `<div class="content">`)

	r.writeBody(w, inpath, isIndex, sep, body)

	fmt.Fprintln(w, "</div>")
	fmt.Fprintln(w, "</body>")
	fmt.Fprintln(w, "</html>")
	return nil
}

// writeNavigation emits the stylesheet link and the navigation banner
// with one of the rotating banner images.
func (r *plaintextRenderer) writeNavigation(w io.Writer, basename, sep string) {
	banner := r.rng.Intn(bannerVariants)
	fmt.Fprintf(w, `  <link rel="STYLESHEET" href="style.css" type="text/css" />
</head>
<body bgcolor="white">
<table class="navigation" cellpadding="0" cellspacing="0"
       width="100%%" border="0">
<tr><td class="navicon" width="150" height="35">
<a href="../" title="Python Home Page">
<img src="../pics/PyBanner%03d.gif" alt="[Python]"
 border="0" width="150" height="35" /></a></td>
<td class="textlinks" align="left">
[<b><a href="../">Python Home</a></b>]
`, banner)
	if basename != indexBasename {
		fmt.Fprintln(w, `[<b><a href=".">SEP Index</a></b>]`)
	}
	if sep != "" {
		if num, err := strconv.Atoi(sep); err == nil {
			fmt.Fprintf(w, "[<b><a href=\"sep-%04d.txt\">SEP Source</a></b>]\n", num)
		} else {
			log.Warnf("invalid SEP number %q: %v", sep, err)
		}
	}
	fmt.Fprintln(w, "</td></tr></table>")
}

// writeBody renders the free-form body. Column-1 lines become section
// headings; everything else lives in <pre> blocks with cross
// references and URLs hyperlinked. Index documents additionally get
// their summary-line numbers and contact addresses linked.
func (r *plaintextRenderer) writeBody(w io.Writer, inpath string, isIndex bool, sep string, body []string) {
	needPre := true
	openPre := func() {
		if needPre {
			fmt.Fprintln(w, "<pre>")
			needPre = false
		}
	}

	for _, line := range body {
		if strings.HasPrefix(line, "\f") {
			continue
		}
		if strings.TrimSpace(line) == localVarsMarker {
			break
		}
		if isHeading(line) {
			if !needPre {
				fmt.Fprintln(w, "</pre>")
			}
			fmt.Fprintf(w, "<h3>%s</h3>\n", strings.TrimSpace(line))
			needPre = true
			continue
		}
		if strings.TrimSpace(line) == "" && needPre {
			continue
		}
		if isIndex {
			if rewritten, ok := r.rewriteIndexLine(line, sep); ok {
				openPre()
				fmt.Fprintln(w, rewritten)
				continue
			}
		}
		openPre()
		fmt.Fprintln(w, annotateLine(r.urls, inpath, line))
	}
	if !needPre {
		fmt.Fprintln(w, "</pre>")
	}
}

// isHeading reports whether line starts in column 1 with a non-blank
// character.
func isHeading(line string) bool {
	return line != "" && line[0] != ' ' && line[0] != '\t'
}

// rewriteIndexLine handles the two special line shapes of the index
// document: summary lines, whose second token is a SEP number to
// hyperlink, and contact lines, whose last token is an address to
// mask. Only the first occurrence of the token is replaced.
func (r *plaintextRenderer) rewriteIndexLine(line, sep string) (string, bool) {
	parts := strings.Fields(line)
	if len(parts) > 1 && indexSummaryNum.MatchString(parts[1]) {
		num, _ := strconv.Atoi(parts[1])
		url := fmt.Sprintf(r.urls.SEP, num)
		link := fmt.Sprintf(`<a href="%s">%s</a>`, url, parts[1])
		return strings.Replace(line, parts[1], link, 1), true
	}
	if len(parts) > 0 && strings.Contains(parts[len(parts)-1], "@") {
		last := parts[len(parts)-1]
		return strings.Replace(line, last, MaskEmail(last, sep), 1), true
	}
	return "", false
}
