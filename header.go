package seps

import (
	"strings"
)

// Field is a single header entry. Name keeps the casing from the
// source document; lookups are case-insensitive.
type Field struct {
	Name  string
	Value string
}

// Header is the ordered RFC-2822-style field block from the top of a
// SEP document. Order matters for rendering, so it is a slice rather
// than a map.
type Header []Field

// Get returns the value of the first field matching name
// (case-insensitive) and whether it was present.
func (h Header) Get(name string) (string, bool) {
	for _, f := range h {
		if strings.EqualFold(f.Name, name) {
			return f.Value, true
		}
	}
	return "", false
}

// SEP returns the raw value of the "Sep" field, empty if absent.
func (h Header) SEP() string {
	v, _ := h.Get("sep")
	return v
}

// Title returns the value of the "Title" field, empty if absent.
func (h Header) Title() string {
	v, _ := h.Get("title")
	return v
}

// DocumentTitle builds the page title: "SEP <n> -- <title>" when a SEP
// number is present, the bare title otherwise.
func (h Header) DocumentTitle() string {
	title := h.Title()
	if sep := h.SEP(); sep != "" {
		title = "SEP " + sep + " -- " + title
	}
	return title
}

// ParseHeader consumes the header block from lines and returns it
// together with the remaining body lines. The header ends at the first
// blank line or at a column-1 line without a colon; the terminating
// line itself is consumed. Lines starting with whitespace continue the
// previous field's value.
func ParseHeader(lines []string) (Header, []string) {
	var header Header
	for i, line := range lines {
		if strings.TrimSpace(line) == "" {
			return header, lines[i+1:]
		}
		if !isContinuation(line) {
			name, value, ok := strings.Cut(line, ":")
			if !ok {
				return header, lines[i+1:]
			}
			header = append(header, Field{Name: name, Value: strings.TrimSpace(value)})
		} else if len(header) > 0 {
			last := &header[len(header)-1]
			last.Value += "\n" + strings.TrimRight(line, " \t")
		}
	}
	return header, nil
}

func isContinuation(line string) bool {
	return line != "" && (line[0] == ' ' || line[0] == '\t')
}

// DetectType returns the Content-Type of the input. "text/plain" is
// the default for documents with a Sep header but no explicit
// Content-Type. The empty string means the input is not a SEP at all.
func DetectType(lines []string) string {
	sepType := ""
	for _, line := range lines {
		line = strings.ToLower(strings.TrimRight(line, " \t\r"))
		if line == "" {
			// End of the RFC-2822 header.
			break
		}
		if rest, ok := strings.CutPrefix(line, "content-type: "); ok {
			if fields := strings.Fields(rest); len(fields) > 0 {
				return fields[0]
			}
			return TypePlaintext
		}
		if strings.HasPrefix(line, "sep: ") {
			sepType = TypePlaintext
		}
	}
	return sepType
}
