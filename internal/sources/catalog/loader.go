// Package catalog loads the career catalog from its YAML file. The
// career list changes a few times a year and ships with the binary,
// so a file beats a database table here.
package catalog

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Loader handles loading and parsing of careers.yaml.
type Loader struct {
	filePath string
}

// NewLoader creates a new career catalog loader.
func NewLoader(filePath string) *Loader {
	return &Loader{filePath: filePath}
}

// Load reads and parses the careers file.
func (l *Loader) Load() (File, error) {
	data, err := os.ReadFile(l.filePath)
	if err != nil {
		return File{}, fmt.Errorf("failed to read careers file: %w", err)
	}

	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return File{}, fmt.Errorf("failed to parse careers yaml: %w", err)
	}
	if len(f.Careers) == 0 {
		return File{}, fmt.Errorf("careers file %s contains no careers", l.filePath)
	}
	return f, nil
}
