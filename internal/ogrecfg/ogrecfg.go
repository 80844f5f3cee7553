// Package ogrecfg reads the legacy Ogre terrain scene manager .cfg files
// that pre-0.4 terrains reference. The format is flat key=value with # and
// ; comments and no sections.
package ogrecfg

import (
	"fmt"
	"strings"

	"gopkg.in/ini.v1"
)

// Keys the converter reads from a legacy geometry config.
const (
	KeyHeightmapSize  = "Heightmap.raw.size"
	KeyHeightmapBpp   = "Heightmap.raw.bpp"
	KeyHeightmapFlip  = "Heightmap.flip"
	KeyHeightmapImage = "Heightmap.image"
	KeyPageWorldX     = "PageWorldX"
	KeyPageWorldZ     = "PageWorldZ"
	KeyMaxHeight      = "MaxHeight"
	KeyWorldTexture   = "WorldTexture"
	KeyDetailTexture  = "DetailTexture"
)

// requiredKeys must all be present before a geometry config can be
// converted to the new format.
var requiredKeys = []string{
	KeyHeightmapSize,
	KeyHeightmapBpp,
	KeyPageWorldX,
	KeyPageWorldZ,
	KeyMaxHeight,
}

// loadOptions tolerates the pre-0.4 files found in the wild: stray
// non key=value lines are skipped instead of failing the whole parse, and
// only "=" separates keys from values.
var loadOptions = ini.LoadOptions{
	SkipUnrecognizableLines: true,
	KeyValueDelimiters:      "=",
}

// Config is a parsed legacy geometry config.
type Config struct {
	section *ini.Section
}

// Load reads and parses the geometry config at path.
func Load(path string) (*Config, error) {
	f, err := ini.LoadSources(loadOptions, path)
	if err != nil {
		return nil, fmt.Errorf("reading geometry config %s: %w", path, err)
	}
	return &Config{section: f.Section("")}, nil
}

// Parse parses geometry config content from memory.
func Parse(data []byte) (*Config, error) {
	f, err := ini.LoadSources(loadOptions, data)
	if err != nil {
		return nil, fmt.Errorf("parsing geometry config: %w", err)
	}
	return &Config{section: f.Section("")}, nil
}

// Get returns the trimmed value for key, or "" when the key is absent.
func (c *Config) Get(key string) string {
	return strings.TrimSpace(c.section.Key(key).String())
}

// Has reports whether key is present with a non-empty value.
func (c *Config) Has(key string) bool {
	return c.Get(key) != ""
}

// Flip reports whether the heightmap is marked for X-axis flipping.
func (c *Config) Flip() bool {
	return strings.EqualFold(c.Get(KeyHeightmapFlip), "true")
}

// Validate checks that every key the new geometry format needs is present.
// The error names all missing keys at once.
func (c *Config) Validate() error {
	var missing []string
	for _, k := range requiredKeys {
		if !c.Has(k) {
			missing = append(missing, k)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing required values: %s", strings.Join(missing, ", "))
	}
	return nil
}
