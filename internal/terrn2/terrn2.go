// Copyright CuriousMike56, 2026. All rights reserved.

// Package terrn2 renders the current terrain file family: the .terrn2
// descriptor, the .otc geometry config, its page file, and the .tobj
// object list. Rendering is pure; writes go through WriteFile so outputs
// land atomically.
package terrn2

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/creachadair/atomicfile"

	"github.com/CuriousMike56/terrn-converter/pkg/types"
)

// attribution is the [Authors] entry recording which tool produced the
// file.
const attribution = "terrn-converter"

// Params carries the conversion-time values a .terrn2 needs beyond what
// the legacy file itself holds.
type Params struct {
	// GUID uniquely identifies the terrain in the mod repository.
	GUID string

	// CategoryID is the mod repository category.
	CategoryID int

	// SandStormCubeMap is the sky cube map used when no Caelum config
	// applies.
	SandStormCubeMap string

	// GeometryConfig is the .otc filename referenced from [General].
	GeometryConfig string

	// TobjName is the object list filename referenced from [Objects].
	TobjName string
}

// Names holds the sibling output paths for one conversion.
type Names struct {
	Terrn2  string
	Tobj    string
	Otc     string
	Page    string
	Report  string
	CfgPath string // the legacy geometry config next to the source
}

// OutputNames derives the output paths for a legacy terrain at terrnPath
// that references geometryCfg. Geometry-derived files take the config's
// stem; the descriptor and report take the terrain file's stem.
func OutputNames(terrnPath, geometryCfg string) Names {
	dir := filepath.Dir(terrnPath)
	terrnStem := strings.TrimSuffix(filepath.Base(terrnPath), filepath.Ext(terrnPath))
	cfgStem := strings.TrimSuffix(geometryCfg, filepath.Ext(geometryCfg))

	return Names{
		Terrn2:  filepath.Join(dir, terrnStem+".terrn2"),
		Tobj:    filepath.Join(dir, cfgStem+".tobj"),
		Otc:     filepath.Join(dir, cfgStem+".otc"),
		Page:    filepath.Join(dir, cfgStem+"-page-0-0.otc"),
		Report:  filepath.Join(dir, terrnStem+".conversion.yaml"),
		CfgPath: filepath.Join(dir, geometryCfg),
	}
}

// RenderTerrain renders the .terrn2 descriptor for t.
func RenderTerrain(t *types.Terrain, p Params) []byte {
	var b strings.Builder

	b.WriteString("[General]\n")
	fmt.Fprintf(&b, "Name = %s\n", t.Name)
	fmt.Fprintf(&b, "GeometryConfig = %s\n", p.GeometryConfig)
	if t.HasWater() {
		b.WriteString("Water=1\n")
		fmt.Fprintf(&b, "WaterLine = %s\n", t.WaterHeight)
	} else {
		b.WriteString("Water=0\n")
	}
	fmt.Fprintf(&b, "AmbientColor = %s\n", t.AmbientColor)
	fmt.Fprintf(&b, "StartPosition = %s\n", strings.Join(t.StartPosition, ", "))
	if t.CaelumCfg != "" {
		fmt.Fprintf(&b, "CaelumConfigFile = %s\n", t.CaelumCfg)
	} else {
		b.WriteString("#CaelumConfigFile =\n")
	}
	fmt.Fprintf(&b, "SandStormCubeMap = %s\n", p.SandStormCubeMap)
	fmt.Fprintf(&b, "Gravity = %s\n", t.Gravity)
	fmt.Fprintf(&b, "CategoryID = %d\n", p.CategoryID)
	b.WriteString("Version = 1\n")
	fmt.Fprintf(&b, "GUID = %s\n", p.GUID)
	if t.LanduseCfg != "" {
		fmt.Fprintf(&b, "TractionMap = %s\n", t.LanduseCfg)
	}

	b.WriteString("\n[Authors]\n")
	if len(t.Authors) == 0 {
		b.WriteString("terrain = unknown\n")
	}
	for _, a := range t.Authors {
		fmt.Fprintf(&b, "%s = %s\n", a.Role, a.Name)
	}
	fmt.Fprintf(&b, "terrn2 = %s\n", attribution)

	b.WriteString("\n[Objects]\n")
	fmt.Fprintf(&b, "%s=\n", p.TobjName)

	b.WriteString("\n[Scripts]\n")

	return []byte(b.String())
}

// WriteFile writes data to path through a same-directory temp file, so a
// crash mid-write never leaves a truncated output behind.
func WriteFile(path string, data []byte) error {
	if err := atomicfile.WriteData(path, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
