// Copyright CuriousMike56, 2026. All rights reserved.

package terrn2

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/CuriousMike56/terrn-converter/pkg/types"
)

func writeTerrn2(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "out.terrn2")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestCheckValid_RenderedOutput(t *testing.T) {
	tr := &types.Terrain{
		Name:          "Aspen Peaks",
		GeometryCfg:   "aspen.cfg",
		WaterHeight:   "51.5",
		AmbientColor:  "0.93, 0.86, 0.76",
		StartPosition: []string{"790.5", "0.2", "713.1"},
		Gravity:       "-9.81",
		Authors:       []types.Author{{Role: "terrain", Name: "CuriousMike"}},
	}

	path := writeTerrn2(t, string(RenderTerrain(tr, testParams())))
	if err := CheckValid(path); err != nil {
		t.Errorf("rendered output failed validation: %v", err)
	}
}

func TestCheckValid_Failures(t *testing.T) {
	tests := []struct {
		name    string
		content string
		errMsg  string
	}{
		{
			name:    "no general section",
			content: "[Authors]\nterrain = x\n",
			errMsg:  "no [General] section",
		},
		{
			name: "missing keys are named",
			content: "[General]\nName = X\nGeometryConfig = x.otc\n" +
				"[Authors]\n[Objects]\n[Scripts]\n",
			errMsg: "GUID",
		},
		{
			name: "missing scripts section",
			content: "[General]\nName = X\nGeometryConfig = x.otc\nWater=0\n" +
				"AmbientColor = 1, 1, 1\nStartPosition = 0, 0, 0\nGravity = -9.81\n" +
				"CategoryID = 129\nVersion = 1\nGUID = " + testGUID + "\n" +
				"[Authors]\n[Objects]\n",
			errMsg: "no [Scripts] section",
		},
		{
			name:    "unparseable line",
			content: "[General]\nName = X\nthis line is not ini at all\n",
			errMsg:  "does not parse",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeTerrn2(t, tt.content)
			err := CheckValid(path)
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !strings.Contains(err.Error(), tt.errMsg) {
				t.Errorf("error %q does not contain %q", err, tt.errMsg)
			}
		})
	}

	if err := CheckValid(filepath.Join(t.TempDir(), "missing.terrn2")); err == nil {
		t.Error("expected error for missing file, got nil")
	}
}

func TestReadSummary(t *testing.T) {
	tr := &types.Terrain{
		Name:          "Aspen Peaks",
		GeometryCfg:   "aspen.cfg",
		WaterHeight:   "51.5",
		AmbientColor:  "0.93, 0.86, 0.76",
		StartPosition: []string{"790.5", "0.2", "713.1"},
		Gravity:       "-9.81",
	}
	path := writeTerrn2(t, string(RenderTerrain(tr, testParams())))

	s, err := ReadSummary(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Name != "Aspen Peaks" {
		t.Errorf("Name = %q", s.Name)
	}
	if s.GeometryConfig != "aspen.otc" {
		t.Errorf("GeometryConfig = %q", s.GeometryConfig)
	}
	if !s.Water || s.WaterLine != "51.5" {
		t.Errorf("Water = %v, WaterLine = %q", s.Water, s.WaterLine)
	}
	if s.GUID != testGUID {
		t.Errorf("GUID = %q", s.GUID)
	}
	if len(s.Objects) != 1 || s.Objects[0] != "aspen.tobj" {
		t.Errorf("Objects = %v", s.Objects)
	}
}

func TestReadSummary_ToleratesHandEdits(t *testing.T) {
	path := writeTerrn2(t, `[General]
Name = Edited By Hand
GeometryConfig = edited.otc
Water=0
a stray line someone left behind
[Objects]
edited.tobj=
`)

	s, err := ReadSummary(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Name != "Edited By Hand" {
		t.Errorf("Name = %q", s.Name)
	}
	if s.Water {
		t.Error("Water = true, want false")
	}
}
