// Copyright CuriousMike56, 2026. All rights reserved.

package types

// Author credits one contributor parsed from the legacy author comments
// ("//author <role> <id> <name>").
type Author struct {
	// Role is the contribution kind: terrain, texture, objects, ...
	Role string `json:"role" yaml:"role"`

	// Name is the contributor name or contact. May be empty when the
	// legacy comment carried an id but no name.
	Name string `json:"name" yaml:"name"`
}

// Terrain is the in-memory form of a parsed legacy .terrn file. Scalar
// fields hold the raw text from the source file so values carry over to
// the new format without reformatting.
type Terrain struct {
	// Name is the display name from the first header line.
	Name string `json:"name" yaml:"name"`

	// GeometryCfg is the Ogre terrain .cfg filename from the second
	// header line.
	GeometryCfg string `json:"geometry_cfg" yaml:"geometry_cfg"`

	// WaterHeight is the value of the optional "w" header line. Empty
	// means the terrain has no water.
	WaterHeight string `json:"water_height,omitempty" yaml:"water_height,omitempty"`

	// AmbientColor is the "r,g,b" ambient light line.
	AmbientColor string `json:"ambient_color" yaml:"ambient_color"`

	// StartPosition holds the first three comma-separated fields of the
	// spawn line. Legacy files sometimes carry nine fields; the trailing
	// camera coordinates are dropped.
	StartPosition []string `json:"start_position" yaml:"start_position"`

	// Gravity is the gravity directive value, or "-9.81" when the file
	// has none.
	Gravity string `json:"gravity" yaml:"gravity"`

	// LanduseCfg is the landuse-config directive value (ground traction
	// map), if present.
	LanduseCfg string `json:"landuse_cfg,omitempty" yaml:"landuse_cfg,omitempty"`

	// CaelumCfg is the caelumconfig directive value (sky definition), if
	// present.
	CaelumCfg string `json:"caelum_cfg,omitempty" yaml:"caelum_cfg,omitempty"`

	// Authors lists contributors in order of first appearance. A repeated
	// role keeps its position but takes the last name seen.
	Authors []Author `json:"authors,omitempty" yaml:"authors,omitempty"`

	// ObjectLines holds the raw object-section lines in file order,
	// comments included. The .tobj writer applies its own filtering.
	ObjectLines []string `json:"object_lines,omitempty" yaml:"object_lines,omitempty"`
}

// HasWater reports whether the terrain defines a water plane.
func (t *Terrain) HasWater() bool {
	return t.WaterHeight != ""
}
