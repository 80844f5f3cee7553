// Copyright CuriousMike56, 2026. All rights reserved.

package convert

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"go.yaml.in/yaml/v3"

	"github.com/CuriousMike56/terrn-converter/internal/terrn2"
	"github.com/CuriousMike56/terrn-converter/pkg/types"
)

func buildReport(opts Options, t *types.Terrain, guid string, res *Result) *types.Report {
	return &types.Report{
		Source:      filepath.Base(opts.Source),
		ConvertedAt: time.Now().UTC(),
		ToolVersion: opts.ToolVersion,
		Terrain: types.ReportTerrain{
			Name:    t.Name,
			GUID:    guid,
			Water:   t.HasWater(),
			Gravity: t.Gravity,
			Authors: t.Authors,
			Objects: countObjects(t.ObjectLines),
		},
		Outputs:  res.Outputs,
		Warnings: res.Warnings,
	}
}

func writeReport(path string, report *types.Report) error {
	data, err := yaml.Marshal(report)
	if err != nil {
		return fmt.Errorf("marshaling report: %w", err)
	}
	return terrn2.WriteFile(path, data)
}

// countObjects counts the object-section lines that are neither comments
// nor the trailing end marker.
func countObjects(lines []string) int {
	n := 0
	for _, l := range lines {
		s := strings.TrimSpace(l)
		if s == "" || strings.HasPrefix(s, "//") || strings.HasPrefix(s, ";") || strings.EqualFold(s, "end") {
			continue
		}
		n++
	}
	return n
}
