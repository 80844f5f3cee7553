// Copyright CuriousMike56, 2026. All rights reserved.

package types

import "time"

// ReportTerrain summarizes the converted terrain inside a Report.
type ReportTerrain struct {
	Name    string   `json:"name" yaml:"name"`
	GUID    string   `json:"guid" yaml:"guid"`
	Water   bool     `json:"water" yaml:"water"`
	Gravity string   `json:"gravity" yaml:"gravity"`
	Authors []Author `json:"authors,omitempty" yaml:"authors,omitempty"`
	Objects int      `json:"objects" yaml:"objects"`
}

// Report is the conversion record written next to the output files. It
// documents where each output came from and any values the converter had
// to guess or skip.
type Report struct {
	// Source is the legacy .terrn file the conversion read.
	Source string `json:"source" yaml:"source"`

	// ConvertedAt is the UTC completion time.
	ConvertedAt time.Time `json:"converted_at" yaml:"converted_at"`

	// ToolVersion records the converter build that produced the outputs.
	ToolVersion string `json:"tool_version" yaml:"tool_version"`

	Terrain ReportTerrain `json:"terrain" yaml:"terrain"`

	// Outputs lists every file written, relative to the source directory.
	Outputs []string `json:"outputs" yaml:"outputs"`

	// Warnings carries non-fatal problems encountered during conversion.
	Warnings []string `json:"warnings,omitempty" yaml:"warnings,omitempty"`
}
