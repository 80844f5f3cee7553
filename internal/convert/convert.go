// Copyright CuriousMike56, 2026. All rights reserved.

// Package convert orchestrates a legacy terrain conversion: parse the
// .terrn, write the .tobj object list, convert the geometry config and
// its page file, composite the page textures, write the .terrn2
// descriptor, and record a conversion report.
package convert

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/CuriousMike56/terrn-converter/internal/ogrecfg"
	"github.com/CuriousMike56/terrn-converter/internal/terrn"
	"github.com/CuriousMike56/terrn-converter/internal/terrn2"
	"github.com/CuriousMike56/terrn-converter/internal/texture"
	"github.com/CuriousMike56/terrn-converter/pkg/types"
)

// Options configures a single conversion run.
type Options struct {
	// Source is the path of the legacy .terrn file.
	Source string

	// Config carries the run settings.
	Config types.ConvertConfig

	// ToolVersion is recorded in the conversion report.
	ToolVersion string
}

// Result summarizes a completed conversion.
type Result struct {
	// Terrn2 is the path of the written descriptor.
	Terrn2 string

	// Outputs lists the written filenames in write order.
	Outputs []string

	// Warnings carries the non-fatal problems hit along the way.
	Warnings []string
}

// HasWarnings reports whether the conversion needed manual follow-up.
func (r *Result) HasWarnings() bool {
	return len(r.Warnings) > 0
}

// run carries the state shared across pipeline steps.
type run struct {
	cfg  types.ConvertConfig
	comp texture.Compositor
	w    io.Writer
	res  *Result
}

func (r *run) warnf(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	r.res.Warnings = append(r.res.Warnings, msg)
	fmt.Fprintf(r.w, "warning: %s\n", msg)
}

func (r *run) created(path string) {
	r.res.Outputs = append(r.res.Outputs, filepath.Base(path))
	fmt.Fprintf(r.w, "created: %s\n", filepath.Base(path))
}

// Convert runs the conversion pipeline for opts.Source, writing per-step
// status lines to w. comp composites the page textures; a nil comp skips
// texture output while still writing the page file. Outputs land next to
// the source file.
func Convert(opts Options, comp texture.Compositor, w io.Writer) (*Result, error) {
	format, err := terrn.DetectFormat(opts.Source)
	if err != nil {
		return nil, err
	}
	switch format {
	case terrn.FormatTerrn2:
		return nil, fmt.Errorf("%s is already in terrn2 format", opts.Source)
	case terrn.FormatUnknown:
		return nil, fmt.Errorf("%s does not look like a legacy terrain file", opts.Source)
	}

	fmt.Fprintf(w, "parsing: %s\n", filepath.Base(opts.Source))
	t, err := terrn.ParseFile(opts.Source)
	if err != nil {
		return nil, err
	}
	if opts.Config.NameOverride != "" {
		t.Name = opts.Config.NameOverride
	}

	names := terrn2.OutputNames(opts.Source, t.GeometryCfg)
	if !opts.Config.Force {
		if _, err := os.Stat(names.Terrn2); err == nil {
			return nil, fmt.Errorf("%s already exists (use --force to overwrite)", names.Terrn2)
		}
	}

	guid := opts.Config.GUID
	if guid == "" {
		guid = uuid.NewString()
	} else if _, err := uuid.Parse(guid); err != nil {
		return nil, fmt.Errorf("invalid GUID %q: %w", guid, err)
	}

	r := &run{
		cfg:  opts.Config,
		comp: comp,
		w:    w,
		res:  &Result{Terrn2: names.Terrn2},
	}

	if err := terrn2.WriteFile(names.Tobj, terrn2.RenderObjects(t.ObjectLines)); err != nil {
		return nil, err
	}
	r.created(names.Tobj)

	if err := r.convertGeometry(t, names); err != nil {
		return nil, err
	}

	params := terrn2.Params{
		GUID:             guid,
		CategoryID:       opts.Config.CategoryID,
		SandStormCubeMap: opts.Config.SandStormCubeMap,
		GeometryConfig:   filepath.Base(names.Otc),
		TobjName:         filepath.Base(names.Tobj),
	}
	if err := terrn2.WriteFile(names.Terrn2, terrn2.RenderTerrain(t, params)); err != nil {
		return nil, err
	}
	r.created(names.Terrn2)

	if err := terrn2.CheckValid(names.Terrn2); err != nil {
		return nil, err
	}

	if opts.Config.Report {
		report := buildReport(opts, t, guid, r.res)
		if err := writeReport(names.Report, report); err != nil {
			return nil, err
		}
		r.res.Outputs = append(r.res.Outputs, filepath.Base(names.Report))
		fmt.Fprintf(w, "report: %s\n", filepath.Base(names.Report))
	}

	fmt.Fprintf(w, "\nConverted %s -> %s (%d files, %d warnings)\n",
		filepath.Base(opts.Source), filepath.Base(names.Terrn2),
		len(r.res.Outputs), len(r.res.Warnings))
	return r.res, nil
}

// convertGeometry handles the geometry config leg: the .otc, the page
// file, and the composited textures. Problems here degrade to warnings so
// a terrain with a broken or missing config still gets its descriptor and
// object list.
func (r *run) convertGeometry(t *types.Terrain, names terrn2.Names) error {
	if _, err := os.Stat(names.CfgPath); err != nil {
		r.warnf("geometry config %s not found; skipping .otc and page output", t.GeometryCfg)
		return nil
	}
	oc, err := ogrecfg.Load(names.CfgPath)
	if err != nil {
		r.warnf("%v; skipping .otc and page output", err)
		return nil
	}
	if err := oc.Validate(); err != nil {
		r.warnf("cannot convert %s: %v", t.GeometryCfg, err)
		return nil
	}

	stem := strings.TrimSuffix(filepath.Base(names.Otc), filepath.Ext(names.Otc))
	if err := terrn2.WriteFile(names.Otc, terrn2.RenderGeometry(oc, stem)); err != nil {
		return err
	}
	r.created(names.Otc)

	ext := ".dds"
	if r.comp != nil {
		ext = r.comp.Ext()
	}
	dir := filepath.Dir(names.Otc)
	plan := texture.NewPlan(dir, stem, oc, r.cfg.Texture, ext)

	heightmap := oc.Get(ogrecfg.KeyHeightmapImage)
	if heightmap == "" {
		heightmap = stem + ".raw"
		r.warnf("no %s in %s; page file assumes %s", ogrecfg.KeyHeightmapImage, t.GeometryCfg, heightmap)
	}

	spec := terrn2.PageSpec{Heightmap: heightmap}
	for _, l := range plan.Layers {
		layer := terrn2.PageLayer{
			WorldSize:       l.WorldSize,
			DiffuseSpecular: filepath.Base(l.DiffuseSpecular),
			NormalHeight:    filepath.Base(l.NormalHeight),
		}
		if l.BlendMap != "" {
			layer.BlendMap = filepath.Base(l.BlendMap)
			layer.BlendMode = l.BlendMode
			layer.Alpha = l.Alpha
		}
		spec.Layers = append(spec.Layers, layer)
	}
	if err := terrn2.WriteFile(names.Page, terrn2.RenderPage(spec)); err != nil {
		return err
	}
	r.created(names.Page)

	if r.comp == nil {
		r.warnf("texture compositing skipped; the page file references textures that do not exist yet")
		return nil
	}
	if plan.Layers[0].Source == "" {
		r.warnf("no %s in %s; base page textures must be created by hand", ogrecfg.KeyWorldTexture, t.GeometryCfg)
	}
	if err := r.comp.Composite(plan); err != nil {
		r.warnf("texture compositing failed: %v", err)
		return nil
	}
	for _, l := range plan.Layers {
		if l.Source == "" {
			continue
		}
		for _, out := range []string{l.DiffuseSpecular, l.NormalHeight, l.BlendMap} {
			if out == "" {
				continue
			}
			r.res.Outputs = append(r.res.Outputs, filepath.Base(out))
			fmt.Fprintf(r.w, "composited: %s (via %s)\n", filepath.Base(out), r.comp.Name())
		}
	}
	return nil
}
