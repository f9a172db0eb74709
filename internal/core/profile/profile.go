// Package profile ships named normalization presets from the embedded
// profiles.yaml. A profile is a jptext.Options value under a stable name,
// so callers select "search" or "mail" instead of hand-building flags
package profile

import (
	_ "embed"
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"zenhan/internal/core/jptext"
)

//go:embed profiles.yaml
var embedded []byte

type rawProfile struct {
	Flags       string `yaml:"flags"`
	EncodingIn  string `yaml:"encoding_in"`
	EncodingOut string `yaml:"encoding_out"`
	SpaceWidth  int    `yaml:"space_width"`
}

type rawSet struct {
	Version  int                   `yaml:"version"`
	Profiles map[string]rawProfile `yaml:"profiles"`
}

// Set is a compiled, read-only profile collection
type Set struct {
	byName map[string]jptext.Options
	names  []string
}

// Load compiles the embedded profiles.yaml
func Load() (*Set, error) {
	return parse(embedded)
}

// LoadFile compiles profiles from path, for deployment overrides
func LoadFile(path string) (*Set, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("profile: read %s: %w", path, err)
	}
	return parse(b)
}

func parse(b []byte) (*Set, error) {
	var rs rawSet
	if err := yaml.Unmarshal(b, &rs); err != nil {
		return nil, fmt.Errorf("profile: parse profiles: %w", err)
	}
	if rs.Version != 1 {
		return nil, fmt.Errorf("profile: unsupported profiles version %d (want 1)", rs.Version)
	}
	if len(rs.Profiles) == 0 {
		return nil, fmt.Errorf("profile: no profiles defined")
	}

	s := &Set{byName: make(map[string]jptext.Options, len(rs.Profiles))}
	for name, rp := range rs.Profiles {
		opts := jptext.Options{
			Flags:       rp.Flags,
			EncodingIn:  jptext.Encoding(rp.EncodingIn),
			EncodingOut: jptext.Encoding(rp.EncodingOut),
			SpaceWidth:  rp.SpaceWidth,
		}
		// No partially valid sets: one bad profile fails the whole load
		if err := opts.Validate(); err != nil {
			return nil, fmt.Errorf("profile: %s: %w", name, err)
		}
		s.byName[name] = opts
		s.names = append(s.names, name)
	}
	sort.Strings(s.names)
	return s, nil
}

// Get returns the options registered under name
func (s *Set) Get(name string) (jptext.Options, bool) {
	o, ok := s.byName[name]
	return o, ok
}

// Names lists the profile names, sorted
func (s *Set) Names() []string {
	out := make([]string, len(s.names))
	copy(out, s.names)
	return out
}
