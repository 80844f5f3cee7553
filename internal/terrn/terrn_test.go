// Copyright CuriousMike56, 2026. All rights reserved.

package terrn

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/CuriousMike56/terrn-converter/pkg/types"
)

const sampleTerrn = `Aspen Peaks
aspen.cfg
w 51.5
0.93, 0.86, 0.76
790.5, 0.2, 713.1, 0, 0, 0, 0, 0, 0
//author terrain 345 CuriousMike
//author objects 118 boxfan
gravity -9.81
landuse-config aspen-landuse.cfg
caelumconfig aspen-sky.os
//fileinfo 900123, 129, 3
93.5, 0.1, 43.2, 0, 0, 0, truck2.odef
790, 1, 713, 0, 170, 0, pineTree
end
`

func TestParse_FullHeader(t *testing.T) {
	got, err := Parse(strings.NewReader(sampleTerrn))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got.Name != "Aspen Peaks" {
		t.Errorf("Name = %q, want %q", got.Name, "Aspen Peaks")
	}
	if got.GeometryCfg != "aspen.cfg" {
		t.Errorf("GeometryCfg = %q, want %q", got.GeometryCfg, "aspen.cfg")
	}
	if got.WaterHeight != "51.5" {
		t.Errorf("WaterHeight = %q, want %q", got.WaterHeight, "51.5")
	}
	if !got.HasWater() {
		t.Error("HasWater() = false, want true")
	}
	if got.AmbientColor != "0.93, 0.86, 0.76" {
		t.Errorf("AmbientColor = %q", got.AmbientColor)
	}
	if want := []string{"790.5", "0.2", "713.1"}; !reflect.DeepEqual(got.StartPosition, want) {
		t.Errorf("StartPosition = %v, want %v", got.StartPosition, want)
	}
	if got.Gravity != "-9.81" {
		t.Errorf("Gravity = %q, want %q", got.Gravity, "-9.81")
	}
	if got.LanduseCfg != "aspen-landuse.cfg" {
		t.Errorf("LanduseCfg = %q", got.LanduseCfg)
	}
	if got.CaelumCfg != "aspen-sky.os" {
		t.Errorf("CaelumCfg = %q", got.CaelumCfg)
	}

	wantAuthors := []types.Author{
		{Role: "terrain", Name: "CuriousMike"},
		{Role: "objects", Name: "boxfan"},
	}
	if !reflect.DeepEqual(got.Authors, wantAuthors) {
		t.Errorf("Authors = %v, want %v", got.Authors, wantAuthors)
	}

	wantObjects := []string{
		"//fileinfo 900123, 129, 3",
		"93.5, 0.1, 43.2, 0, 0, 0, truck2.odef",
		"790, 1, 713, 0, 170, 0, pineTree",
		"end",
	}
	if !reflect.DeepEqual(got.ObjectLines, wantObjects) {
		t.Errorf("ObjectLines = %v, want %v", got.ObjectLines, wantObjects)
	}
}

func TestParse_HeaderVariants(t *testing.T) {
	tests := []struct {
		name  string
		input string
		check func(t *testing.T, tr *types.Terrain)
	}{
		{
			name:  "no water line",
			input: "Dry Lake\ndry.cfg\n0.9, 0.9, 0.9\n10, 0, 10\n",
			check: func(t *testing.T, tr *types.Terrain) {
				if tr.HasWater() {
					t.Errorf("HasWater() = true, want false (WaterHeight %q)", tr.WaterHeight)
				}
			},
		},
		{
			name:  "three-field start position",
			input: "Flats\nflats.cfg\n1, 1, 1\n10, 20, 30\n",
			check: func(t *testing.T, tr *types.Terrain) {
				want := []string{"10", "20", "30"}
				if !reflect.DeepEqual(tr.StartPosition, want) {
					t.Errorf("StartPosition = %v, want %v", tr.StartPosition, want)
				}
			},
		},
		{
			name:  "gravity default without directive",
			input: "Flats\nflats.cfg\n1, 1, 1\n10, 20, 30\n",
			check: func(t *testing.T, tr *types.Terrain) {
				if tr.Gravity != DefaultGravity {
					t.Errorf("Gravity = %q, want %q", tr.Gravity, DefaultGravity)
				}
			},
		},
		{
			name:  "gravity directive before header completes",
			input: "Moon\nmoon.cfg\ngravity -1.62\n1, 1, 1\n10, 20, 30\n",
			check: func(t *testing.T, tr *types.Terrain) {
				if tr.Gravity != "-1.62" {
					t.Errorf("Gravity = %q, want %q", tr.Gravity, "-1.62")
				}
				if tr.AmbientColor != "1, 1, 1" {
					t.Errorf("gravity line consumed a header slot: AmbientColor = %q", tr.AmbientColor)
				}
			},
		},
		{
			name:  "header comments are not header values",
			input: "// made with terrain editor\nHills\n; another note\nhills.cfg\n1, 1, 1\n10, 20, 30\n",
			check: func(t *testing.T, tr *types.Terrain) {
				if tr.Name != "Hills" {
					t.Errorf("Name = %q, want %q", tr.Name, "Hills")
				}
				if tr.GeometryCfg != "hills.cfg" {
					t.Errorf("GeometryCfg = %q, want %q", tr.GeometryCfg, "hills.cfg")
				}
			},
		},
		{
			name:  "end-marker comment is dropped everywhere",
			input: "Hills\nhills.cfg\n1, 1, 1\n10, 20, 30\n//end\n5, 0, 5, 0, 0, 0, rock\n",
			check: func(t *testing.T, tr *types.Terrain) {
				want := []string{"5, 0, 5, 0, 0, 0, rock"}
				if !reflect.DeepEqual(tr.ObjectLines, want) {
					t.Errorf("ObjectLines = %v, want %v", tr.ObjectLines, want)
				}
			},
		},
		{
			name:  "crlf line endings",
			input: "Hills\r\nhills.cfg\r\n1, 1, 1\r\n10, 20, 30\r\n",
			check: func(t *testing.T, tr *types.Terrain) {
				if tr.GeometryCfg != "hills.cfg" {
					t.Errorf("GeometryCfg = %q, want %q", tr.GeometryCfg, "hills.cfg")
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr, err := Parse(strings.NewReader(tt.input))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			tt.check(t, tr)
		})
	}
}

func TestParse_Authors(t *testing.T) {
	tests := []struct {
		name  string
		lines string
		want  []types.Author
	}{
		{
			name:  "semicolon comment style",
			lines: ";author terrain 345 Joe Bloggs\n",
			want:  []types.Author{{Role: "terrain", Name: "Joe Bloggs"}},
		},
		{
			name:  "email with trailing text keeps the address",
			lines: "//author objects 12 someone@example.com please credit me\n",
			want:  []types.Author{{Role: "objects", Name: "someone@example.com"}},
		},
		{
			name:  "bare email stays",
			lines: "//author terrain 9 someone@example.com\n",
			want:  []types.Author{{Role: "terrain", Name: "someone@example.com"}},
		},
		{
			name:  "duplicate role keeps position, takes last name",
			lines: "//author terrain 1 First\n//author objects 2 Middle\n//author terrain 3 Second\n",
			want: []types.Author{
				{Role: "terrain", Name: "Second"},
				{Role: "objects", Name: "Middle"},
			},
		},
		{
			name:  "id without name",
			lines: "//author terrain 345\n",
			want:  []types.Author{{Role: "terrain", Name: ""}},
		},
		{
			name:  "mixed case marker",
			lines: "//Author terrain 345 Joe\n",
			want:  []types.Author{{Role: "terrain", Name: "Joe"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := "T\nt.cfg\n1, 1, 1\n0, 0, 0\n" + tt.lines
			tr, err := Parse(strings.NewReader(input))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !reflect.DeepEqual(tr.Authors, tt.want) {
				t.Errorf("Authors = %v, want %v", tr.Authors, tt.want)
			}
		})
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		errMsg string
	}{
		{
			name:   "empty file",
			input:  "",
			errMsg: "empty terrain file",
		},
		{
			name:   "comments only",
			input:  "// nothing here\n\n",
			errMsg: "empty terrain file",
		},
		{
			name:   "name without geometry config",
			input:  "Lonely Name\n",
			errMsg: "no geometry config",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(tt.input))
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !strings.Contains(err.Error(), tt.errMsg) {
				t.Errorf("error %q does not contain %q", err, tt.errMsg)
			}
		})
	}
}

func TestParseFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "aspen.terrn")
	if err := os.WriteFile(path, []byte(sampleTerrn), 0o644); err != nil {
		t.Fatal(err)
	}

	tr, err := ParseFile(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tr.Name != "Aspen Peaks" {
		t.Errorf("Name = %q, want %q", tr.Name, "Aspen Peaks")
	}

	if _, err := ParseFile(filepath.Join(dir, "missing.terrn")); err == nil {
		t.Error("expected error for missing file, got nil")
	}
}
