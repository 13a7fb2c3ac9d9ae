// Package assets carries the default stylesheets for generated SEP
// pages. An install needs style.css and sep.css next to the HTML
// files; when the working directory has no local copies, the embedded
// defaults are written out so the pages never ship unstyled.
package assets

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"
)

//go:embed styles/*.css
var styles embed.FS

// Stylesheets are the sheet names every install ships.
var Stylesheets = []string{"style.css", "sep.css"}

// Materialize writes any missing stylesheet into dir. Existing files
// win: a locally customized sheet is never overwritten.
func Materialize(dir string) error {
	for _, name := range Stylesheets {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err == nil {
			continue
		}
		data, err := styles.ReadFile("styles/" + name)
		if err != nil {
			return fmt.Errorf("embedded stylesheet %s: %w", name, err)
		}
		if err := os.WriteFile(path, data, 0o664); err != nil {
			return fmt.Errorf("writing %s: %w", path, err)
		}
	}
	return nil
}
