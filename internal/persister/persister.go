// Package persister saves the profiles of reachable candidates.
package persister

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	"github.com/apex/log"
	"github.com/gateprobe/gateprobe/internal/model"
	"github.com/pkg/errors"
)

const (
	// DefaultDir is the default output directory.
	DefaultDir = "vpngate_configs"

	// DefaultExtension is the default extension of saved profiles.
	DefaultExtension = "ovpn"
)

// unsafeChars matches characters we cannot use in file names
// on at least one of the operating systems we support.
var unsafeChars = regexp.MustCompile(`[\\/*?:"<>|]`)

// SanitizeHost replaces the characters of host that are unsafe
// to use in a file name with underscores.
func SanitizeHost(host string) string {
	return unsafeChars.ReplaceAllString(host, "_")
}

// Persister saves profiles to disk.
//
// Profiles are named after the candidate's country and host. Two
// candidates with the same country and host (e.g., different ports)
// map to the same file and the last one wins.
type Persister struct {
	// Dir is the MANDATORY output directory.
	Dir string

	// Extension is the MANDATORY file extension without the leading dot.
	Extension string

	// Logger is the MANDATORY logger.
	Logger log.Interface
}

// New creates a new [*Persister] using the default settings.
func New(logger log.Interface) *Persister {
	return &Persister{
		Dir:       DefaultDir,
		Extension: DefaultExtension,
		Logger:    logger,
	}
}

// FileName returns the name of the file in which we save c's profile.
func (p *Persister) FileName(c model.Candidate) string {
	return fmt.Sprintf("%s_%s.%s", c.Country, SanitizeHost(c.Host), p.Extension)
}

// Outcome is the outcome of saving a single profile.
type Outcome struct {
	// Path is the path of the file.
	Path string

	// Err is the error that occurred or nil.
	Err error
}

// Save writes the profile of each result to the output directory,
// overwriting existing files. A failure to write a file is logged and
// does not prevent us from writing the remaining files. The returned
// slice contains one outcome per result in the same order.
func (p *Persister) Save(results []model.ProbeResult) []Outcome {
	outcomes := make([]Outcome, 0, len(results))
	if err := os.MkdirAll(p.Dir, 0755); err != nil {
		err = errors.Wrapf(err, "cannot create %s", p.Dir)
		p.Logger.WithError(err).Error("Failed to create the output directory")
		for _, r := range results {
			outcomes = append(outcomes, Outcome{Path: p.path(r.Candidate), Err: err})
		}
		return outcomes
	}
	for _, r := range results {
		outcomes = append(outcomes, p.saveOne(r.Candidate))
	}
	return outcomes
}

func (p *Persister) path(c model.Candidate) string {
	return filepath.Join(p.Dir, p.FileName(c))
}

func (p *Persister) saveOne(c model.Candidate) Outcome {
	path := p.path(c)
	if err := os.WriteFile(path, []byte(c.Payload), 0644); err != nil {
		err = errors.Wrapf(err, "cannot save %s", path)
		p.Logger.WithError(err).Errorf("Failed to save: %s", path)
		return Outcome{Path: path, Err: err}
	}
	p.Logger.Infof("Saved: %s ✅", path)
	return Outcome{Path: path}
}
