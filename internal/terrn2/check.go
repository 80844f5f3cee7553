// Copyright CuriousMike56, 2026. All rights reserved.

package terrn2

import (
	"fmt"
	"strings"

	"gopkg.in/ini.v1"
)

// requiredGeneralKeys must all carry values in a valid [General] section.
var requiredGeneralKeys = []string{
	"Name",
	"GeometryConfig",
	"Water",
	"AmbientColor",
	"StartPosition",
	"Gravity",
	"CategoryID",
	"Version",
	"GUID",
}

// CheckValid re-parses a produced .terrn2 with a strict INI reader and
// confirms the sections and keys the game requires are present. It guards
// against writer regressions, not against hand-edited files.
func CheckValid(path string) error {
	f, err := ini.Load(path)
	if err != nil {
		return fmt.Errorf("produced file does not parse: %w", err)
	}

	general, err := f.GetSection("General")
	if err != nil {
		return fmt.Errorf("produced file has no [General] section")
	}

	var missing []string
	for _, k := range requiredGeneralKeys {
		if !general.HasKey(k) || strings.TrimSpace(general.Key(k).String()) == "" {
			missing = append(missing, k)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("produced file is missing [General] keys: %s", strings.Join(missing, ", "))
	}

	for _, section := range []string{"Authors", "Objects", "Scripts"} {
		if _, err := f.GetSection(section); err != nil {
			return fmt.Errorf("produced file has no [%s] section", section)
		}
	}
	return nil
}

// Summary holds the identifying fields read back from a .terrn2 file.
type Summary struct {
	Name           string
	GeometryConfig string
	Water          bool
	WaterLine      string
	Gravity        string
	CategoryID     string
	GUID           string
	Objects        []string
}

// summaryLoadOptions tolerates hand-edited files from the wild: inspect
// should describe them, not reject them.
var summaryLoadOptions = ini.LoadOptions{
	SkipUnrecognizableLines: true,
	AllowBooleanKeys:        true,
}

// ReadSummary reads the identifying fields of the .terrn2 file at path.
func ReadSummary(path string) (*Summary, error) {
	f, err := ini.LoadSources(summaryLoadOptions, path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	general := f.Section("General")
	s := &Summary{
		Name:           general.Key("Name").String(),
		GeometryConfig: general.Key("GeometryConfig").String(),
		Water:          general.Key("Water").String() == "1",
		WaterLine:      general.Key("WaterLine").String(),
		Gravity:        general.Key("Gravity").String(),
		CategoryID:     general.Key("CategoryID").String(),
		GUID:           general.Key("GUID").String(),
	}
	if objects, err := f.GetSection("Objects"); err == nil {
		s.Objects = objects.KeyStrings()
	}
	return s, nil
}
