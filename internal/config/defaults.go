package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Defaults holds optional command-line preferences from a TOML file, for
// people who always want the same profile or layout. Flags still win.
type Defaults struct {
	Profile       string `toml:"profile"`
	Length        int    `toml:"length"`
	Segments      int    `toml:"segments"`
	SegmentLength int    `toml:"segment_length"`
	Copy          *bool  `toml:"copy"`
}

// LoadDefaults reads path when given. With no path it probes the standard
// locations and treats a missing file as empty defaults, not an error.
func LoadDefaults(path string) (Defaults, error) {
	if path == "" {
		for _, p := range defaultPaths() {
			if _, err := os.Stat(p); err == nil {
				path = p
				break
			}
		}
		if path == "" {
			return Defaults{}, nil
		}
	} else if _, err := os.Stat(path); os.IsNotExist(err) {
		return Defaults{}, fmt.Errorf("defaults file not found: %s", path)
	}

	var d Defaults
	if _, err := toml.DecodeFile(path, &d); err != nil {
		return Defaults{}, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return d, nil
}

func defaultPaths() []string {
	paths := []string{"./genpassword.toml"}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", "genpassword", "config.toml"))
	}
	return paths
}

// CopyEnabled reports whether clipboard copy is on. Unset means yes.
func (d Defaults) CopyEnabled() bool {
	return d.Copy == nil || *d.Copy
}
