package seps

import (
	"bytes"
	"fmt"
	"html"
	"io"
	"math/rand"
	"path/filepath"
	"regexp"
	"strconv"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	htmlrenderer "github.com/yuin/goldmark/renderer/html"
	"github.com/yuin/goldmark/text"
	"github.com/yuin/goldmark/util"
)

// markupRenderer converts a Markdown SEP through the goldmark
// pipeline. The header block is parsed and rendered exactly like the
// plaintext path; the body goes through goldmark with a reference
// transformer plugged into the parser so "SEP n" and "RFC n" mentions
// in the document tree become links.
type markupRenderer struct {
	urls URLConfig
	rng  *rand.Rand
	md   goldmark.Markdown
}

func newMarkupRenderer(urls URLConfig, rng *rand.Rand) *markupRenderer {
	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
			extension.Footnote,
			highlighting.NewHighlighting(
				highlighting.WithFormatOptions(
					chromahtml.WithClasses(true),
				),
			),
		),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(),
			parser.WithASTTransformers(
				util.Prioritized(&refTransformer{urls: urls}, 500),
			),
		),
		goldmark.WithRendererOptions(
			htmlrenderer.WithXHTML(),
		),
	)
	return &markupRenderer{urls: urls, rng: rng, md: md}
}

// Render writes the complete HTML document for the Markdown SEP at
// inpath to w. The document must begin with an RFC-2822 header whose
// second field is the title; anything else is a data error that aborts
// the conversion.
func (r *markupRenderer) Render(inpath string, lines []string, w io.Writer) error {
	header, body := ParseHeader(lines)
	if len(header) == 0 {
		return fmt.Errorf("%w: %s", ErrMissingHeader, inpath)
	}
	if header.Title() == "" {
		return fmt.Errorf("%w: %s", ErrMissingTitle, inpath)
	}
	sep := header.SEP()
	ctx := &fieldContext{urls: r.urls, inpath: inpath, sep: sep}

	var buf bytes.Buffer
	source := []byte(joinLines(body))
	if err := r.md.Convert(source, &buf); err != nil {
		return fmt.Errorf("%w: %v", ErrMarkdownConvert, err)
	}

	basename := filepath.Base(inpath)
	fmt.Fprintln(w, dtd)
	fmt.Fprintln(w, "<html>")
	fmt.Fprintln(w, generatedComment)
	fmt.Fprintln(w, "<head>")
	if title := header.DocumentTitle(); title != "" {
		fmt.Fprintf(w, "  <title>%s</title>\n", html.EscapeString(title))
	}
	pt := plaintextRenderer{urls: r.urls, rng: r.rng}
	pt.writeNavigation(w, basename, sep)

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
	w.Write(buf.Bytes())
	fmt.Fprintln(w, "</div>")
	fmt.Fprintln(w, "</body>")
	fmt.Fprintln(w, "</html>")
	return nil
}

func joinLines(lines []string) string {
	var buf bytes.Buffer
	for _, line := range lines {
		buf.WriteString(line)
		buf.WriteByte('\n')
	}
	return buf.String()
}

// refTransformer walks the parsed document tree and turns "SEP n" and
// "RFC n" text runs into links. This is the tree-level counterpart of
// the line lexer used by the plaintext path.
type refTransformer struct {
	urls URLConfig
}

var inlineRefPattern = regexp.MustCompile(`(SEP\s+(\d+))|(RFC[- ]?(\d+))`)

// Transform implements parser.ASTTransformer. Candidate text nodes are
// collected first and rewritten afterwards; mutating the tree while
// walking it would cut the traversal short.
func (t *refTransformer) Transform(doc *ast.Document, reader text.Reader, pc parser.Context) {
	source := reader.Source()
	var candidates []*ast.Text
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		textNode, ok := n.(*ast.Text)
		if !ok {
			return ast.WalkContinue, nil
		}
		// Text already inside a link or a code span stays as written.
		// Code spans in particular must keep plain Text children; the
		// HTML renderer asserts on their type.
		for p := n.Parent(); p != nil; p = p.Parent() {
			switch p.(type) {
			case *ast.Link, *ast.CodeSpan:
				return ast.WalkContinue, nil
			}
		}
		candidates = append(candidates, textNode)
		return ast.WalkContinue, nil
	})
	for _, node := range candidates {
		t.splitRefs(node, source)
	}
}

// splitRefs replaces a text node containing references with a sequence
// of text and link nodes.
func (t *refTransformer) splitRefs(node *ast.Text, source []byte) {
	segment := node.Segment
	value := segment.Value(source)
	matches := inlineRefPattern.FindAllSubmatchIndex(value, -1)
	if matches == nil {
		return
	}

	parent := node.Parent()
	pos := 0
	var replacement []ast.Node
	for _, m := range matches {
		if m[0] > pos {
			replacement = append(replacement, textSlice(node, pos, m[0]))
		}
		var url string
		if m[2] >= 0 { // SEP reference
			num, _ := strconv.Atoi(string(value[m[4]:m[5]]))
			url = fmt.Sprintf(t.urls.SEP, num)
		} else { // RFC reference
			num, _ := strconv.Atoi(string(value[m[8]:m[9]]))
			url = fmt.Sprintf(t.urls.RFC, num)
		}
		link := ast.NewLink()
		link.Destination = []byte(url)
		link.AppendChild(link, textSlice(node, m[0], m[1]))
		replacement = append(replacement, link)
		pos = m[1]
	}
	if pos < len(value) {
		replacement = append(replacement, textSlice(node, pos, len(value)))
	}

	for _, repl := range replacement {
		parent.InsertBefore(parent, node, repl)
	}
	parent.RemoveChild(parent, node)
}

// textSlice builds a text node covering [start, stop) of the original
// node's segment.
func textSlice(node *ast.Text, start, stop int) *ast.Text {
	seg := text.NewSegment(node.Segment.Start+start, node.Segment.Start+stop)
	return ast.NewTextSegment(seg)
}
