package main

import (
	"fmt"
	"path/filepath"
	"strings"
)

// browseLocal opens the generated HTML file in the user's browser.
func browseLocal(htmlPath string) error {
	abs, err := filepath.Abs(htmlPath)
	if err != nil {
		return err
	}
	return openInBrowser("file://" + abs)
}

// browseRemote opens the published pages on the SEP host.
func browseRemote(htmlFiles []string, dirURL string) error {
	if len(htmlFiles) == 0 {
		return nil
	}
	if !strings.HasSuffix(dirURL, "/") {
		dirURL += "/"
	}
	var firstErr error
	for _, path := range htmlFiles {
		url := dirURL + filepath.Base(path)
		if err := openInBrowser(url); err != nil && firstErr == nil {
			firstErr = fmt.Errorf("opening %s: %w", url, err)
		}
	}
	return firstErr
}
