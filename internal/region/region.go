// Package region holds the registry of event-listing regions.
//
// A Region names one geographic listing page on 19hz.info. The registry is
// built once at startup, either from the compiled-in defaults or from a
// YAML file, and is passed explicitly to the components that need it; it is
// never mutated afterwards, so it is safe to share across requests.
package region

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// BaseURL is the fixed origin all listing pages and relative hrefs resolve
// against.
const BaseURL = "https://19hz.info"

// Region is one geographic source of an event-listing page.
type Region struct {
	Key      string `yaml:"key" json:"key"`
	Name     string `yaml:"name" json:"name"`
	Filename string `yaml:"filename" json:"filename"`
}

// URL returns the full URL of the region's listing page.
func (r *Region) URL() string {
	return BaseURL + "/" + r.Filename
}

// UnknownKeyError reports a lookup for a key the registry does not hold.
type UnknownKeyError struct {
	Key   string
	Valid []string
}

func (e *UnknownKeyError) Error() string {
	return fmt.Sprintf("invalid region %q. Available regions: %s", e.Key, strings.Join(e.Valid, ", "))
}

// Registry is the read-only set of known regions, in load order.
type Registry struct {
	regions []*Region
	byKey   map[string]*Region
}

// NewRegistry builds a registry from the given regions. Keys are matched
// case-insensitively; a repeated key replaces the earlier entry in place.
func NewRegistry(regions []Region) (*Registry, error) {
	if len(regions) == 0 {
		return nil, fmt.Errorf("no regions configured")
	}

	g := &Registry{byKey: make(map[string]*Region, len(regions))}
	for i := range regions {
		r := regions[i]
		if r.Key == "" || r.Name == "" || r.Filename == "" {
			return nil, fmt.Errorf("region %d: key, name and filename are all required", i)
		}
		key := strings.ToLower(r.Key)
		if existing, ok := g.byKey[key]; ok {
			*existing = r
			continue
		}
		g.regions = append(g.regions, &r)
		g.byKey[key] = &r
	}
	return g, nil
}

// Lookup returns the region for key, matched case-insensitively. A miss
// returns an *UnknownKeyError naming every valid key.
func (g *Registry) Lookup(key string) (*Region, error) {
	r, ok := g.byKey[strings.ToLower(strings.TrimSpace(key))]
	if !ok {
		return nil, &UnknownKeyError{Key: key, Valid: g.Keys()}
	}
	return r, nil
}

// All returns every region in load order. The slice is shared; callers
// must not modify it.
func (g *Registry) All() []*Region {
	return g.regions
}

// Keys returns every region key in load order.
func (g *Registry) Keys() []string {
	keys := make([]string, len(g.regions))
	for i, r := range g.regions {
		keys[i] = r.Key
	}
	return keys
}

// Filenames returns the set of listing-page filenames the registry knows.
func (g *Registry) Filenames() map[string]bool {
	set := make(map[string]bool, len(g.regions))
	for _, r := range g.regions {
		set[r.Filename] = true
	}
	return set
}

// Len returns the number of regions.
func (g *Registry) Len() int {
	return len(g.regions)
}

// file is the YAML schema for a registry file.
type file struct {
	Regions []Region `yaml:"regions"`
}

// LoadFile reads a registry from a YAML file with a top-level "regions"
// list of {key, name, filename} entries.
func LoadFile(path string) (*Registry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading regions file: %w", err)
	}

	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing regions file: %w", err)
	}

	g, err := NewRegistry(f.Regions)
	if err != nil {
		return nil, fmt.Errorf("regions file %s: %w", path, err)
	}
	return g, nil
}
