// Package dateutil handles the date conventions of SEP headers.
package dateutil

import (
	"errors"
	"fmt"
	"os"
	"regexp"
	"time"
)

// ErrInvalidDate indicates a Created value whose date substring fits
// neither accepted layout.
var ErrInvalidDate = errors.New("invalid date")

// SEP headers write dates as 02-Jan-2006, with the occasional spelled
// out month name.
const (
	layoutShortMonth = "2-Jan-2006"
	layoutLongMonth  = "2-January-2006"
)

// createdDate extracts the date substring from a Created value. Some
// SEPs editorialize on the Created line, so the whole value cannot be
// parsed directly.
var createdDate = regexp.MustCompile(`(\d+-\w+-\d{4})`)

// ParseCreated parses the date out of a Created header value. A value
// without a recognizable date substring yields the Unix epoch, which
// sorts such documents last; old SEPs with an empty Created line are
// not worth caring about. A substring that matches the shape but not
// either month layout is an error.
func ParseCreated(value string) (time.Time, error) {
	m := createdDate.FindString(value)
	if m == "" {
		return time.Unix(0, 0).UTC(), nil
	}
	if t, err := time.Parse(layoutShortMonth, m); err == nil {
		return t, nil
	}
	t, err := time.Parse(layoutLongMonth, m)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, m)
	}
	return t, nil
}

// ModTime returns the file's modification time formatted the way SEP
// headers write dates, or empty if the file cannot be stat'ed.
func ModTime(path string) string {
	info, err := os.Stat(path)
	if err != nil {
		return ""
	}
	return info.ModTime().Format("02-Jan-2006")
}
