// Copyright CuriousMike56, 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/CuriousMike56/terrn-converter/internal/terrn"
	"github.com/CuriousMike56/terrn-converter/internal/terrn2"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect [terrain file]",
	Short: "Show what a terrain file contains without converting it",
	Long: `Inspect detects the format of a terrain file and prints its identifying
fields. Legacy .terrn files are parsed in full; .terrn2 files are read back
from their INI form. Useful for checking a terrain before conversion and
for verifying one afterwards.`,
	Args: cobra.ExactArgs(1),
	RunE: runInspect,
}

// inspectInfo is the JSON shape of the inspect output.
type inspectInfo struct {
	File     string   `json:"file"`
	Format   string   `json:"format"`
	Name     string   `json:"name"`
	Geometry string   `json:"geometry"`
	Water    bool     `json:"water"`
	Gravity  string   `json:"gravity,omitempty"`
	GUID     string   `json:"guid,omitempty"`
	Authors  []string `json:"authors,omitempty"`
	Objects  int      `json:"objects"`
}

func runInspect(cmd *cobra.Command, args []string) error {
	path := args[0]

	format, err := terrn.DetectFormat(path)
	if err != nil {
		return err
	}

	var info inspectInfo
	switch format {
	case terrn.FormatLegacy:
		info, err = inspectLegacy(path)
	case terrn.FormatTerrn2:
		info, err = inspectTerrn2(path)
	default:
		return fmt.Errorf("%s is not a recognized terrain file", path)
	}
	if err != nil {
		return err
	}
	info.File = filepath.Base(path)
	info.Format = format.String()

	jsonOutput, _ := cmd.Flags().GetBool("json")
	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(info)
	}

	printInfo(info)
	return nil
}

func inspectLegacy(path string) (inspectInfo, error) {
	t, err := terrn.ParseFile(path)
	if err != nil {
		return inspectInfo{}, err
	}

	info := inspectInfo{
		Name:     t.Name,
		Geometry: t.GeometryCfg,
		Water:    t.HasWater(),
		Gravity:  t.Gravity,
	}
	for _, a := range t.Authors {
		info.Authors = append(info.Authors, fmt.Sprintf("%s = %s", a.Role, a.Name))
	}
	for _, l := range t.ObjectLines {
		s := strings.TrimSpace(l)
		if s == "" || strings.HasPrefix(s, "//") || strings.HasPrefix(s, ";") || strings.EqualFold(s, "end") {
			continue
		}
		info.Objects++
	}
	return info, nil
}

func inspectTerrn2(path string) (inspectInfo, error) {
	s, err := terrn2.ReadSummary(path)
	if err != nil {
		return inspectInfo{}, err
	}
	return inspectInfo{
		Name:     s.Name,
		Geometry: s.GeometryConfig,
		Water:    s.Water,
		Gravity:  s.Gravity,
		GUID:     s.GUID,
		Objects:  len(s.Objects),
	}, nil
}

func printInfo(info inspectInfo) {
	fmt.Printf("file:     %s\n", info.File)
	fmt.Printf("format:   %s\n", info.Format)
	fmt.Printf("name:     %s\n", info.Name)
	fmt.Printf("geometry: %s\n", info.Geometry)
	fmt.Printf("water:    %v\n", info.Water)
	if info.Gravity != "" {
		fmt.Printf("gravity:  %s\n", info.Gravity)
	}
	if info.GUID != "" {
		fmt.Printf("guid:     %s\n", info.GUID)
	}
	for _, a := range info.Authors {
		fmt.Printf("author:   %s\n", a)
	}
	fmt.Printf("objects:  %d\n", info.Objects)
}

func init() {
	inspectCmd.Flags().Bool("json", false, "output as JSON")

	rootCmd.AddCommand(inspectCmd)
}
