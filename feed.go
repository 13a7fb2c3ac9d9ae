package seps

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/gorilla/feeds"
	log "github.com/sirupsen/logrus"

	"github.com/capsulecorplab/go-seps/internal/dateutil"
	"github.com/capsulecorplab/go-seps/internal/fileutil"
)

// FeedEnvelope describes the fixed parts of the generated feed.
type FeedEnvelope struct {
	Title       string
	Link        string
	Description string
	Size        int // number of newest SEPs to include
}

// DefaultEnvelope returns the stock feed envelope.
func DefaultEnvelope() FeedEnvelope {
	return FeedEnvelope{
		Title: "Newest Python SEPs",
		Link:  "http://www.python.org/dev/seps",
		Description: "Newest Python Enhancement Proposals (SEPs) - " +
			"Information on new language features, and some " +
			"meta-information like release procedure and schedules",
		Size: 10,
	}
}

// feedEntry is one scanned document with its creation date.
type feedEntry struct {
	path    string
	created time.Time
}

// permalinkTemplate builds the per-item link from the SEP number.
const permalinkTemplate = "http://www.python.org/dev/seps/sep-%04d"

// BuildFeed scans dir for SEP source files and returns the RSS XML for
// the newest ones, per the envelope. Unreadable files are reported and
// skipped; a malformed Created date aborts the build. now becomes the
// feed's build timestamp.
func BuildFeed(dir string, env FeedEnvelope, now time.Time) (string, error) {
	paths, err := discoverSEPs(dir)
	if err != nil {
		return "", err
	}

	var entries []feedEntry
	for _, path := range paths {
		created, err := creationDate(path)
		if err != nil {
			if os.IsNotExist(err) {
				log.Warnf("skipping missing SEP file: %s", path)
				continue
			}
			return "", err
		}
		entries = append(entries, feedEntry{path: path, created: created})
	}

	// Newest first; path as tie breaker for deterministic output.
	sort.Slice(entries, func(i, j int) bool {
		if !entries[i].created.Equal(entries[j].created) {
			return entries[i].created.After(entries[j].created)
		}
		return entries[i].path > entries[j].path
	})
	if len(entries) > env.Size {
		entries = entries[:env.Size]
	}

	feed := &feeds.Feed{
		Title:       env.Title,
		Link:        &feeds.Link{Href: env.Link},
		Description: env.Description,
		Created:     now,
	}
	for _, entry := range entries {
		item, err := feedItem(entry)
		if err != nil {
			log.Warnf("skipping %s: %v", entry.path, err)
			continue
		}
		feed.Items = append(feed.Items, item)
	}

	rss, err := feed.ToRss()
	if err != nil {
		return "", fmt.Errorf("serializing feed: %w", err)
	}
	return rss, nil
}

// discoverSEPs lists the SEP source files in dir, sorted by name.
func discoverSEPs(dir string) ([]string, error) {
	var paths []string
	for _, pattern := range []string{"sep-*.txt", "sep-*.md"} {
		matches, err := filepath.Glob(filepath.Join(dir, pattern))
		if err != nil {
			return nil, fmt.Errorf("scanning %s: %w", dir, err)
		}
		paths = append(paths, matches...)
	}
	sort.Strings(paths)
	return paths, nil
}

// feedItem builds one feed item from a scanned document.
func feedItem(entry feedEntry) (*feeds.Item, error) {
	num, err := fileutil.SEPNumber(entry.path)
	if err != nil {
		return nil, err
	}
	title, err := firstLineStartingWith(entry.path, "Title:")
	if err != nil {
		return nil, err
	}
	author, err := firstLineStartingWith(entry.path, "Author:")
	if err != nil {
		return nil, err
	}
	url := fmt.Sprintf(permalinkTemplate, num)
	return &feeds.Item{
		Title:       fmt.Sprintf("SEP %d: %s", num, title),
		Link:        &feeds.Link{Href: url},
		Description: "Author: " + author,
		Id:          url,
		Created:     entry.created,
	}, nil
}

// creationDate extracts and parses the Created header of the document.
func creationDate(path string) (time.Time, error) {
	created, err := firstLineStartingWith(path, "Created:")
	if err != nil {
		return time.Time{}, err
	}
	return dateutil.ParseCreated(created)
}

// firstLineStartingWith returns the trimmed remainder of the first
// line of path starting with prefix, or empty if no line matches.
func firstLineStartingWith(path, prefix string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		if rest, ok := strings.CutPrefix(scanner.Text(), prefix); ok {
			return strings.TrimSpace(rest), nil
		}
	}
	return "", scanner.Err()
}
