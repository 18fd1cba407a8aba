// Package config contains the gateprobe configuration.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"github.com/gateprobe/gateprobe/internal/fetcher"
	"github.com/gateprobe/gateprobe/internal/persister"
	"github.com/gateprobe/gateprobe/internal/prober"
	"github.com/gateprobe/gateprobe/internal/version"
	homedir "github.com/mitchellh/go-homedir"
	"github.com/pkg/errors"
	"github.com/tailscale/hujson"
)

// DefaultListURL is the URL of the VPN Gate server list.
const DefaultListURL = "https://www.vpngate.net/api/iphone/"

// DefaultStartDelay is the default number of seconds we wait before probing.
const DefaultStartDelay = 10

// Config for gateprobe.
//
// Durations are expressed in seconds. Zero values are replaced with
// their defaults when the config is parsed.
type Config struct {
	// Comment is ignored and allows documenting the file.
	Comment string `json:"_"`

	ListURL      string `json:"list_url"`
	UserAgent    string `json:"user_agent"`
	FetchTimeout int64  `json:"fetch_timeout"`
	ProbeTimeout int64  `json:"probe_timeout"`
	Parallelism  int    `json:"parallelism"`
	OutputDir    string `json:"output_dir"`
	Extension    string `json:"extension"`

	// StartDelay is the number of seconds to wait before probing. A
	// negative value disables waiting.
	StartDelay int64 `json:"start_delay"`

	path string
}

// New returns a config containing the default settings.
func New() *Config {
	c := &Config{}
	c.Default()
	return c
}

// Default fills unset fields with their default values.
func (c *Config) Default() {
	if c.ListURL == "" {
		c.ListURL = DefaultListURL
	}
	if c.UserAgent == "" {
		c.UserAgent = "gateprobe/" + version.Version
	}
	if c.FetchTimeout == 0 {
		c.FetchTimeout = int64(fetcher.DefaultTimeout / time.Second)
	}
	if c.ProbeTimeout == 0 {
		c.ProbeTimeout = int64(prober.DefaultTimeout / time.Second)
	}
	if c.Parallelism == 0 {
		c.Parallelism = prober.DefaultParallelism()
	}
	if c.OutputDir == "" {
		c.OutputDir = persister.DefaultDir
	}
	if c.Extension == "" {
		c.Extension = persister.DefaultExtension
	}
	if c.StartDelay == 0 {
		c.StartDelay = DefaultStartDelay
	}
}

var (
	// ErrInvalidTimeout indicates that a timeout is negative.
	ErrInvalidTimeout = errors.New("config: timeouts must be positive")

	// ErrInvalidParallelism indicates that parallelism is negative.
	ErrInvalidParallelism = errors.New("config: parallelism must be positive")
)

// Validate the config.
func (c *Config) Validate() error {
	if c.FetchTimeout < 0 || c.ProbeTimeout < 0 {
		return ErrInvalidTimeout
	}
	if c.Parallelism < 0 {
		return ErrInvalidParallelism
	}
	return nil
}

// Path returns the path from which we read the config or
// the empty string if we are using the default settings.
func (c *Config) Path() string {
	return c.path
}

// FetchTimeoutDuration returns FetchTimeout as a [time.Duration].
func (c *Config) FetchTimeoutDuration() time.Duration {
	return time.Duration(c.FetchTimeout) * time.Second
}

// ProbeTimeoutDuration returns ProbeTimeout as a [time.Duration].
func (c *Config) ProbeTimeoutDuration() time.Duration {
	return time.Duration(c.ProbeTimeout) * time.Second
}

// ParseConfig returns config from JSON bytes. The JSON may contain
// comments and trailing commas.
func ParseConfig(b []byte) (*Config, error) {
	b, err := hujson.Standardize(b)
	if err != nil {
		return nil, errors.Wrap(err, "standardizing json")
	}

	c := &Config{}
	if err := json.Unmarshal(b, c); err != nil {
		return nil, errors.Wrap(err, "parsing json")
	}

	c.Default()

	if err := c.Validate(); err != nil {
		return nil, errors.Wrap(err, "validating")
	}

	return c, nil
}

// ReadConfig reads the configuration from the path
func ReadConfig(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "reading file")
	}

	c, err := ParseConfig(b)
	if err != nil {
		return nil, errors.Wrap(err, "parsing config")
	}
	c.path = path
	return c, nil
}

// DefaultPath returns the path of the default config file.
func DefaultPath() (string, error) {
	home, err := homedir.Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".gateprobe", "config.json"), nil
}

// ReadDefaultConfigPaths reads the default config file, if
// it exists, and otherwise returns the default settings.
func ReadDefaultConfigPaths() (*Config, error) {
	path, err := DefaultPath()
	if err != nil {
		return nil, errors.Wrap(err, "reading default config paths")
	}
	if _, err := os.Stat(path); err != nil {
		return New(), nil
	}
	return ReadConfig(path)
}
