// Package config holds the run configuration taken from the command line.
// There is no config file and no environment lookup.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/afero"
)

// Config is one organizer run.
type Config struct {
	InputDir  string // Flat directory to read photos from; must exist.
	OutputDir string // Root of the dated tree; created on demand.
}

// Validate checks the paths against fs before any work starts. It never
// touches the output directory.
func (c *Config) Validate(fs afero.Fs) error {
	if c.InputDir == "" {
		return errors.New("--input-dir must not be empty")
	}
	if c.OutputDir == "" {
		return errors.New("--output-dir must not be empty")
	}

	fi, err := fs.Stat(c.InputDir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("invalid value for --input-dir: path %q does not exist", c.InputDir)
		}
		return fmt.Errorf("invalid value for --input-dir: %w", err)
	}
	if !fi.IsDir() {
		return fmt.Errorf("invalid value for --input-dir: %q is not a directory", c.InputDir)
	}
	return nil
}
