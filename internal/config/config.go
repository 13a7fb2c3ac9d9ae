// Package config loads the toolchain configuration: link templates for
// generated pages, the deploy target, and the feed envelope.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/capsulecorplab/go-seps/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound = errors.New("config file not found")
	ErrConfigParse    = errors.New("failed to parse config")
)

// DefaultConfigFile is searched in the working directory when no
// explicit config path is given.
const DefaultConfigFile = "seps.yaml"

// Config holds all configuration for SEP publishing.
type Config struct {
	Site   SiteConfig   `yaml:"site"`
	Deploy DeployConfig `yaml:"deploy"`
	Feed   FeedConfig   `yaml:"feed"`
}

// SiteConfig defines the link templates baked into generated pages.
// The templates take the referenced document number.
type SiteConfig struct {
	RFCURL    string `yaml:"rfcUrl"`    // per-RFC reference page
	SEPURL    string `yaml:"sepUrl"`    // per-SEP page
	SourceURL string `yaml:"sourceUrl"` // source-browse page
	DirURL    string `yaml:"dirUrl"`    // published SEP directory
}

// DeployConfig defines where --install pushes the generated files.
type DeployConfig struct {
	Host string `yaml:"host"` // ssh host for remote deploy
	Dir  string `yaml:"dir"`  // target directory, local or remote
	User string `yaml:"user"` // default ssh user, overridable with -u
}

// FeedConfig defines the syndication feed envelope.
type FeedConfig struct {
	Title       string `yaml:"title"`
	Link        string `yaml:"link"`
	Description string `yaml:"description"`
	Size        int    `yaml:"size"` // number of newest SEPs to include
}

// DefaultConfig mirrors the constants the converter shipped with
// before it grew a config file.
func DefaultConfig() *Config {
	return &Config{
		Site: SiteConfig{
			RFCURL:    "http://www.faqs.org/rfcs/rfc%d.html",
			SEPURL:    "sep-%04d.html",
			SourceURL: "https://hg.python.org/seps/file/tip/sep-%04d.txt",
			DirURL:    "http://www.python.org/seps/",
		},
		Deploy: DeployConfig{
			Host: "dinsdale.python.org",
			Dir:  "/data/ftp.python.org/pub/www.python.org/seps",
		},
		Feed: FeedConfig{
			Title: "Newest Python SEPs",
			Link:  "http://www.python.org/dev/seps",
			Description: "Newest Python Enhancement Proposals (SEPs) - " +
				"Information on new language features, and some " +
				"meta-information like release procedure and schedules",
			Size: 10,
		},
	}
}

// Load reads configuration from path, or from ./seps.yaml when path is
// empty. A missing default file is not an error; defaults apply. An
// explicitly named file must exist.
func Load(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		path = DefaultConfigFile
	}

	data, err := os.ReadFile(path) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			if !explicit {
				return DefaultConfig(), nil
			}
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, path)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yamlutil.UnmarshalStrict(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects template strings that would panic or mangle links
// at render time.
func (c *Config) Validate() error {
	for name, tmpl := range map[string]string{
		"site.rfcUrl":    c.Site.RFCURL,
		"site.sepUrl":    c.Site.SEPURL,
		"site.sourceUrl": c.Site.SourceURL,
	} {
		if strings.Count(tmpl, "%") != 1 {
			return fmt.Errorf("%w: %s must contain exactly one number verb", ErrConfigParse, name)
		}
	}
	if c.Feed.Size < 1 {
		return fmt.Errorf("%w: feed.size must be positive, got %d", ErrConfigParse, c.Feed.Size)
	}
	return nil
}
