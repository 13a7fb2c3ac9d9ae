//go:build windows

package main

import "os/exec"

// openInBrowser opens url with the platform's default handler.
func openInBrowser(url string) error {
	return exec.Command("rundll32", "url.dll,FileProtocolHandler", url).Start()
}
