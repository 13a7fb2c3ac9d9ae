//go:build !windows

package main

import (
	"os/exec"
	"runtime"
)

// openInBrowser opens url with the platform's default handler.
func openInBrowser(url string) error {
	if runtime.GOOS == "darwin" {
		return exec.Command("open", url).Start()
	}
	return exec.Command("xdg-open", url).Start()
}
