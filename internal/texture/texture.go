// Copyright CuriousMike56, 2026. All rights reserved.

// Package texture composites the page textures the new terrain format
// references: a diffuse+specular map with specular intensity in the alpha
// channel, a flat normal+height map, and a blend map for the detail layer.
package texture

import (
	"fmt"
	"path/filepath"
	"strconv"

	"github.com/CuriousMike56/terrn-converter/internal/magick"
	"github.com/CuriousMike56/terrn-converter/internal/ogrecfg"
	"github.com/CuriousMike56/terrn-converter/pkg/types"
)

const (
	// flatNormalColor encodes an upward-facing tangent-space normal at
	// medium height.
	flatNormalColor = "#8080ff"

	// blendMapSize is the resolution of the generated detail blend map.
	blendMapSize = 256

	// detailBlendAlpha is the blend opacity written for the detail layer.
	detailBlendAlpha = "0.9"
)

// Layer is one texture layer of the page: where its source image lives
// and which composited files it produces.
type Layer struct {
	// Source is the legacy texture to composite from. Empty when the
	// config names no texture; the outputs are then left for the user.
	Source string

	// WorldSize is the layer repeat size written to the page file.
	WorldSize string

	DiffuseSpecular string
	NormalHeight    string

	// BlendMap and its mode and alpha apply to detail layers only.
	BlendMap  string
	BlendMode string
	Alpha     string
}

// Plan lists the texture outputs for one terrain page.
type Plan struct {
	Layers        []Layer
	SpecularLevel int
}

// NewPlan derives the texture work for a page from the legacy geometry
// config. ext selects the composite format: ".dds" when ImageMagick does
// the work, ".png" for the built-in compositor. The base layer covers the
// whole terrain; a detail layer is added when the config names a
// DetailTexture. The specular level is clamped to the 0-255 range the
// alpha channel can hold.
func NewPlan(dir, stem string, cfg *ogrecfg.Config, tcfg types.TextureConfig, ext string) *Plan {
	level := tcfg.SpecularLevel
	if level < 0 {
		level = 0
	}
	if level > 255 {
		level = 255
	}
	p := &Plan{SpecularLevel: level}

	base := Layer{
		WorldSize:       cfg.Get(ogrecfg.KeyPageWorldX),
		DiffuseSpecular: filepath.Join(dir, stem+"-ds"+ext),
		NormalHeight:    filepath.Join(dir, stem+"-nh"+ext),
	}
	if wt := cfg.Get(ogrecfg.KeyWorldTexture); wt != "" {
		base.Source = filepath.Join(dir, wt)
	}
	p.Layers = append(p.Layers, base)

	if dt := cfg.Get(ogrecfg.KeyDetailTexture); dt != "" {
		p.Layers = append(p.Layers, Layer{
			Source:          filepath.Join(dir, dt),
			WorldSize:       strconv.Itoa(tcfg.DetailWorldSize),
			DiffuseSpecular: filepath.Join(dir, stem+"-detail-ds"+ext),
			NormalHeight:    filepath.Join(dir, stem+"-detail-nh"+ext),
			BlendMap:        filepath.Join(dir, stem+"-blendmap.png"),
			BlendMode:       "R",
			Alpha:           detailBlendAlpha,
		})
	}
	return p
}

// Compositor produces the texture files a Plan describes. Layers without
// a source image are skipped.
type Compositor interface {
	// Name identifies the compositor in status output.
	Name() string

	// Ext is the file extension of composited textures, dot included.
	Ext() string

	// Composite builds the output files for every layer in the plan.
	Composite(p *Plan) error
}

// magickCompositor shells out to ImageMagick and writes DDS outputs.
type magickCompositor struct {
	tool magick.Tool
}

// NewMagickCompositor returns a Compositor backed by the given
// ImageMagick installation.
func NewMagickCompositor(t magick.Tool) Compositor {
	return &magickCompositor{tool: t}
}

func (m *magickCompositor) Name() string { return m.tool.Name() }

func (m *magickCompositor) Ext() string { return ".dds" }

func (m *magickCompositor) Composite(p *Plan) error {
	level := fmt.Sprintf("%d%%", p.SpecularLevel*100/255)

	for _, l := range p.Layers {
		if l.Source == "" {
			continue
		}
		if err := m.tool.Identify(l.Source); err != nil {
			return err
		}

		// diffuse+specular: the source image with a uniform alpha
		err := m.tool.Convert(l.Source,
			"-alpha", "set", "-channel", "A", "-evaluate", "set", level, "+channel",
			"-define", "dds:compression=dxt5", l.DiffuseSpecular)
		if err != nil {
			return fmt.Errorf("compositing %s: %w", filepath.Base(l.DiffuseSpecular), err)
		}

		// normal+height: a flat normal at the source dimensions
		err = m.tool.Convert(l.Source,
			"-fill", flatNormalColor, "-colorize", "100",
			"-alpha", "set", "-channel", "A", "-evaluate", "set", "100%", "+channel",
			"-define", "dds:compression=dxt5", l.NormalHeight)
		if err != nil {
			return fmt.Errorf("compositing %s: %w", filepath.Base(l.NormalHeight), err)
		}

		if l.BlendMap != "" {
			size := fmt.Sprintf("%dx%d", blendMapSize, blendMapSize)
			if err := m.tool.Convert("-size", size, "xc:gray50", l.BlendMap); err != nil {
				return fmt.Errorf("compositing %s: %w", filepath.Base(l.BlendMap), err)
			}
		}
	}
	return nil
}
