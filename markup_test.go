package seps

import (
	"errors"
	"math/rand"
	"strings"
	"testing"
)

func newTestMarkupRenderer() *markupRenderer {
	return newMarkupRenderer(DefaultURLs(), rand.New(rand.NewSource(1)))
}

func renderMarkup(t *testing.T, lines []string) string {
	t.Helper()
	var sb strings.Builder
	if err := newTestMarkupRenderer().Render("sep-0042.md", lines, &sb); err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	return sb.String()
}

// ---- TestMarkupRenderShell - Complete document structure ----

func TestMarkupRenderShell(t *testing.T) {
	t.Parallel()

	lines := []string{
		"Sep: 42",
		"Title: Example Proposal",
		"Author: somebody@example.org",
		"",
		"# Motivation",
		"",
		"Some **bold** text.",
	}
	out := renderMarkup(t, lines)

	for _, want := range []string{
		dtd,
		"<title>SEP 42 -- Example Proposal</title>",
		`<link rel="STYLESHEET" href="style.css" type="text/css" />`,
		`[<b><a href=".">SEP Index</a></b>]`,
		`[<b><a href="sep-0042.txt">SEP Source</a></b>]`,
		"  <tr><th>Sep:&nbsp;</th><td>42</td></tr>\n",
		"somebody&#32;&#97;t&#32;example.org",
		`<h1 id="motivation">Motivation</h1>`,
		"<strong>bold</strong>",
		`<div class="content">`,
		"</html>\n",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("Render() output missing %q\noutput:\n%s", want, out)
		}
	}
}

// ---- TestMarkupRenderRefs - SEP and RFC mentions become links ----

func TestMarkupRenderRefs(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		body string
		want string
	}{
		{
			name: "sep reference",
			body: "This supersedes SEP 7 entirely.",
			want: `<a href="sep-0007.html">SEP 7</a>`,
		},
		{
			name: "rfc reference",
			body: "Headers follow RFC 2822 conventions.",
			want: `<a href="http://www.faqs.org/rfcs/rfc2822.html">RFC 2822</a>`,
		},
		{
			name: "rfc with hyphen",
			body: "See RFC-822 for details.",
			want: `<a href="http://www.faqs.org/rfcs/rfc822.html">RFC-822</a>`,
		},
		{
			name: "reference after emphasis",
			body: "Both *this* and SEP 12 apply.",
			want: `<a href="sep-0012.html">SEP 12</a>`,
		},
		{
			name: "multiple references",
			body: "SEP 1 and RFC 2119 together.",
			want: `<a href="sep-0001.html">SEP 1</a> and <a href="http://www.faqs.org/rfcs/rfc2119.html">RFC 2119</a>`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			lines := []string{"Sep: 42", "Title: T", "", tt.body}
			out := renderMarkup(t, lines)
			if !strings.Contains(out, tt.want) {
				t.Errorf("Render() output missing %q\noutput:\n%s", tt.want, out)
			}
		})
	}
}

// ---- TestMarkupRenderRefInsideLink - Explicit links are untouched ----

func TestMarkupRenderRefInsideLink(t *testing.T) {
	t.Parallel()

	lines := []string{"Sep: 42", "Title: T", "", "See [SEP 9](http://example.org/nine)."}
	out := renderMarkup(t, lines)

	if !strings.Contains(out, `<a href="http://example.org/nine">SEP 9</a>`) {
		t.Errorf("Render() rewrote an explicit link:\n%s", out)
	}
	if strings.Contains(out, "sep-0009.html") {
		t.Errorf("Render() added a generated link inside an explicit one:\n%s", out)
	}
}

// ---- TestMarkupRenderRefInCode - Code keeps references verbatim ----

func TestMarkupRenderRefInCode(t *testing.T) {
	t.Parallel()

	t.Run("inline code", func(t *testing.T) {
		t.Parallel()
		lines := []string{"Sep: 42", "Title: T", "", "Use `SEP 7` verbatim."}
		out := renderMarkup(t, lines)

		if !strings.Contains(out, "<code>SEP 7</code>") {
			t.Errorf("Render() lost the code span:\n%s", out)
		}
		if strings.Contains(out, "sep-0007.html") {
			t.Errorf("Render() linked a reference inside inline code:\n%s", out)
		}
	})

	t.Run("fenced code block", func(t *testing.T) {
		t.Parallel()
		lines := []string{"Sep: 42", "Title: T", "", "```", "See SEP 7 and RFC 2822.", "```"}
		out := renderMarkup(t, lines)

		if !strings.Contains(out, "SEP 7") {
			t.Errorf("Render() lost the code block content:\n%s", out)
		}
		if strings.Contains(out, "sep-0007.html") || strings.Contains(out, "rfc2822.html") {
			t.Errorf("Render() linked a reference inside a code block:\n%s", out)
		}
	})
}

// ---- TestMarkupRenderErrors - Header validation ----

func TestMarkupRenderErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		lines   []string
		wantErr error
	}{
		{
			name:    "no header",
			lines:   []string{"# Just a Heading", "", "Body."},
			wantErr: ErrMissingHeader,
		},
		{
			name:    "no title",
			lines:   []string{"Sep: 9", "", "Body."},
			wantErr: ErrMissingTitle,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			var sb strings.Builder
			err := newTestMarkupRenderer().Render("sep-0042.md", tt.lines, &sb)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Render() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

// ---- TestMarkupRenderInvalidRef - Header ref errors propagate ----

func TestMarkupRenderInvalidRef(t *testing.T) {
	t.Parallel()

	lines := []string{"Sep: 42", "Title: T", "Replaces: oops", "", "Body."}
	var sb strings.Builder
	err := newTestMarkupRenderer().Render("sep-0042.md", lines, &sb)
	if !errors.Is(err, ErrInvalidRef) {
		t.Errorf("Render() error = %v, want %v", err, ErrInvalidRef)
	}
}
