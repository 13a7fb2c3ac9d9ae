package seps

import (
	"fmt"
	"strings"
)

// nonMaskedEmails are well-known list addresses that gain nothing from
// obfuscation; they render as clickable mailto links instead.
var nonMaskedEmails = []string{
	"seps@python.org",
	"python-list@python.org",
	"python-dev@python.org",
}

// MaskEmail obfuscates address as HTML character references to hinder
// naive scrapers, unless it is on the allow-list, in which case it
// becomes a mailto link with the SEP number in the subject.
func MaskEmail(address, sep string) string {
	for _, known := range nonMaskedEmails {
		if strings.EqualFold(address, known) {
			return LinkEmail(address, sep)
		}
	}
	user, host, _ := strings.Cut(address, "@")
	return fmt.Sprintf("%s&#32;&#97;t&#32;%s", user, host)
}

// LinkEmail renders address as a mailto link with a subject naming the
// SEP. The visible text is still obfuscated.
func LinkEmail(address, sep string) string {
	user, host, _ := strings.Cut(address, "@")
	return fmt.Sprintf(
		`<a href="mailto:%s&#64;%s?subject=SEP%%20%s">%s&#32;&#97;t&#32;%s</a>`,
		user, host, sep, user, host)
}

// splitAddress breaks an RFC 5322 address like `Jane Doe <jd@x.org>`
// into display name and address. A bare address yields an empty name.
func splitAddress(entry string) (name, address string) {
	entry = strings.TrimSpace(entry)
	open := strings.LastIndex(entry, "<")
	close_ := strings.LastIndex(entry, ">")
	if open >= 0 && close_ > open {
		return strings.TrimSpace(entry[:open]), strings.TrimSpace(entry[open+1 : close_])
	}
	return "", entry
}

// renderAddressEntry renders one comma-separated author/contact entry.
// Addresses get masked or linked, http entries become links, anything
// else passes through untouched.
func renderAddressEntry(entry, sep string, alwaysLink bool) string {
	if strings.Contains(entry, "@") {
		name, addr := splitAddress(entry)
		var m string
		if alwaysLink {
			m = LinkEmail(addr, sep)
		} else {
			m = MaskEmail(addr, sep)
		}
		return fmt.Sprintf("%s &lt;%s&gt;", name, m)
	}
	if strings.HasPrefix(entry, "http:") {
		return fmt.Sprintf(`<a href="%s">%s</a>`, entry, entry)
	}
	return entry
}
