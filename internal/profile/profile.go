// Package profile loads named encode presets for the cmd/zint demo CLI
// from a YAML file, the way the teacher's src/deviceid.go loads
// tocalls.yaml at startup: search a short list of candidate locations,
// read whichever is found first, and unmarshal with gopkg.in/yaml.v3.
// This is unrelated to the GS1 Application Identifier table
// (internal/gs1), which is a compiled-in Go literal, not a runtime file.
package profile

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Profile is one named preset: the symbology to drive and its options.
type Profile struct {
	Name       string `yaml:"name"`
	Symbol     string `yaml:"symbol"` // "hanxin" | "gs1" | "code49"
	ECC        int    `yaml:"ecc,omitempty"`
	Version    int    `yaml:"version,omitempty"`
	GS1Parens  bool   `yaml:"gs1_parens,omitempty"`
	GS1NoCheck bool   `yaml:"gs1_nocheck,omitempty"`
}

// File is the top-level shape of a profiles.yaml document.
type File struct {
	Profiles []Profile `yaml:"profiles"`
}

// searchLocations mirrors src/deviceid.go's search_locations: current
// directory first, then a couple of install-tree fallbacks.
var searchLocations = []string{
	"zint-profiles.yaml",
	"data/zint-profiles.yaml",
	"../data/zint-profiles.yaml",
	"/usr/local/share/zint/zint-profiles.yaml",
	"/usr/share/zint/zint-profiles.yaml",
}

// Load searches searchLocations for the first readable profiles file
// and parses it. A missing file is not an error: it returns an empty
// File, matching the teacher's tolerant "file optional" stance in
// deviceid_init.
func Load() (File, error) {
	var r io.Reader
	var name string
	for _, loc := range searchLocations {
		f, err := os.Open(loc)
		if err == nil {
			defer f.Close()
			r = f
			name = loc
			break
		}
	}
	if r == nil {
		return File{}, nil
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return File{}, fmt.Errorf("profile: reading %s: %w", name, err)
	}

	var file File
	if err := yaml.Unmarshal(data, &file); err != nil {
		return File{}, fmt.Errorf("profile: parsing %s: %w", name, err)
	}
	return file, nil
}

// Find returns the named profile, or ok=false if no profile in file
// matches.
func (f File) Find(name string) (Profile, bool) {
	for _, p := range f.Profiles {
		if p.Name == name {
			return p, true
		}
	}
	return Profile{}, false
}
