// Copyright CuriousMike56, 2026. All rights reserved.

package terrn2

import (
	"fmt"
	"strings"

	"github.com/CuriousMike56/terrn-converter/internal/ogrecfg"
)

// RenderGeometry renders the .otc geometry config from a validated legacy
// config. The heightmap keeps its raw size and depth; world extents map
// onto the new per-axis keys. Callers must run cfg.Validate first.
func RenderGeometry(cfg *ogrecfg.Config, stem string) []byte {
	flip := 0
	if cfg.Flip() {
		flip = 1
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Heightmap.0.0.raw.size=%s\n", cfg.Get(ogrecfg.KeyHeightmapSize))
	fmt.Fprintf(&b, "Heightmap.0.0.raw.bpp=%s\n", cfg.Get(ogrecfg.KeyHeightmapBpp))
	fmt.Fprintf(&b, "Heightmap.0.0.flipX=%d\n", flip)
	b.WriteString("\n")
	fmt.Fprintf(&b, "WorldSizeX=%s\n", cfg.Get(ogrecfg.KeyPageWorldX))
	fmt.Fprintf(&b, "WorldSizeZ=%s\n", cfg.Get(ogrecfg.KeyPageWorldZ))
	fmt.Fprintf(&b, "WorldSizeY=%s\n", cfg.Get(ogrecfg.KeyMaxHeight))
	b.WriteString("\n")
	b.WriteString("disableCaching=1\n")
	b.WriteString("\n")
	fmt.Fprintf(&b, "PageFileFormat=%s-page-0-0.otc\n", stem)
	b.WriteString("\n")
	b.WriteString("MaxPixelError=0\n")
	b.WriteString("LightmapEnabled=0\n")
	b.WriteString("SpecularMappingEnabled=1\n")
	b.WriteString("NormalMappingEnabled=1\n")

	return []byte(b.String())
}

// PageLayer is one texture layer line of a page file. The first three
// fields are mandatory; blend fields apply to detail layers only.
type PageLayer struct {
	WorldSize       string
	DiffuseSpecular string
	NormalHeight    string
	BlendMap        string
	BlendMode       string // blend channel: R, G, B or A
	Alpha           string
}

// PageSpec describes one page of the geometry config: the heightmap it
// loads and the texture layers painted onto it.
type PageSpec struct {
	Heightmap string
	Layers    []PageLayer
}

// RenderPage renders a -page-0-0.otc file: the heightmap filename, the
// layer count, then one line per layer.
func RenderPage(spec PageSpec) []byte {
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n", spec.Heightmap)
	fmt.Fprintf(&b, "%d\n", len(spec.Layers))
	for _, l := range spec.Layers {
		fmt.Fprintf(&b, "%s, %s, %s", l.WorldSize, l.DiffuseSpecular, l.NormalHeight)
		if l.BlendMap != "" {
			fmt.Fprintf(&b, ", %s, %s, %s", l.BlendMap, l.BlendMode, l.Alpha)
		}
		b.WriteString("\n")
	}
	return []byte(b.String())
}
