// internal/config/config.go
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"regexp"
	"strings"
)

// DefaultStringVersion is used when the config file omits string_version.
const DefaultStringVersion = "12.0"

// Group is one species or ortholog mapping. Direct groups set Prefix+TaxID;
// ortholog groups set SourcePrefix+TargetPrefix+TargetTaxID. FilePattern is
// a regular expression matched against the start of input filenames.
type Group struct {
	Name        string `json:"name"`
	FilePattern string `json:"file_pattern"`

	// Direct mode
	Prefix string `json:"prefix,omitempty"`
	TaxID  string `json:"taxid,omitempty"`

	// Ortholog mode
	SourcePrefix string `json:"source_prefix,omitempty"`
	TargetPrefix string `json:"target_prefix,omitempty"`
	TargetTaxID  string `json:"target_taxid,omitempty"`

	pattern *regexp.Regexp
}

// Ortholog reports whether the group maps through inferred orthologs.
func (g *Group) Ortholog() bool { return g.SourcePrefix != "" }

// Match reports whether filename belongs to this group.
func (g *Group) Match(filename string) bool { return g.pattern.MatchString(filename) }

// TableTaxID is the taxon whose alias file backs this group's table.
func (g *Group) TableTaxID() string {
	if g.Ortholog() {
		return g.TargetTaxID
	}
	return g.TaxID
}

// Config is the static table of mapping groups, built once at startup and
// passed by value from there on.
type Config struct {
	StringVersion string  `json:"string_version"`
	Groups        []Group `json:"groups"`
}

// AliasFile returns the STRING alias filename for a taxon.
func (c Config) AliasFile(taxid string) string {
	return fmt.Sprintf("%s.protein.aliases.v%s.txt", taxid, c.StringVersion)
}

// Load reads and validates a JSON config file.
func Load(path string) (Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: %v", err)
	}
	return Parse(raw)
}

// Parse decodes and validates a JSON config document.
func Parse(raw []byte) (Config, error) {
	var c Config
	if err := json.Unmarshal(raw, &c); err != nil {
		return Config{}, fmt.Errorf("config: %v", err)
	}
	if err := c.validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

func (c *Config) validate() error {
	if c.StringVersion == "" {
		c.StringVersion = DefaultStringVersion
	}
	if len(c.Groups) == 0 {
		return fmt.Errorf("config: no mapping groups defined")
	}
	seen := map[string]bool{}
	for i := range c.Groups {
		g := &c.Groups[i]
		if g.Name == "" {
			return fmt.Errorf("config: group %d has no name", i)
		}
		if seen[g.Name] {
			return fmt.Errorf("config: duplicate group %q", g.Name)
		}
		seen[g.Name] = true
		if g.FilePattern == "" {
			return fmt.Errorf("config: group %q has no file_pattern", g.Name)
		}
		pat := g.FilePattern
		if !strings.HasPrefix(pat, "^") {
			pat = "^" + pat
		}
		re, err := regexp.Compile(pat)
		if err != nil {
			return fmt.Errorf("config: group %q: bad file_pattern: %v", g.Name, err)
		}
		g.pattern = re

		direct := g.Prefix != "" && g.TaxID != ""
		ortho := g.SourcePrefix != "" && g.TargetPrefix != "" && g.TargetTaxID != ""
		switch {
		case direct && ortho, g.Prefix != "" && g.SourcePrefix != "":
			return fmt.Errorf("config: group %q mixes direct and ortholog fields", g.Name)
		case !direct && !ortho:
			return fmt.Errorf("config: group %q needs prefix+taxid or source_prefix+target_prefix+target_taxid", g.Name)
		}
	}
	return nil
}
