// Copyright CuriousMike56, 2026. All rights reserved.

package terrn

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Format classifies a terrain file flavor.
type Format int

const (
	FormatUnknown Format = iota
	FormatLegacy         // pre-0.4 line-oriented .terrn
	FormatTerrn2         // current INI-style .terrn2
)

func (f Format) String() string {
	switch f {
	case FormatLegacy:
		return "legacy terrn"
	case FormatTerrn2:
		return "terrn2"
	default:
		return "unknown"
	}
}

// sniffLimit caps how many lines DetectFormat inspects before deciding on
// the extension alone.
const sniffLimit = 40

// DetectFormat sniffs the terrain format of the file at path. Content wins
// over extension: a [General] section marks the file as terrn2 no matter
// what it is called. Files that show neither the section nor a .terrn
// extension are reported unknown rather than guessed.
func DetectFormat(path string) (Format, error) {
	f, err := os.Open(path)
	if err != nil {
		return FormatUnknown, fmt.Errorf("opening terrain: %w", err)
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for n := 0; sc.Scan() && n < sniffLimit; n++ {
		line := strings.TrimSpace(sc.Text())
		if strings.EqualFold(line, "[General]") {
			return FormatTerrn2, nil
		}
	}
	if err := sc.Err(); err != nil {
		return FormatUnknown, fmt.Errorf("reading terrain: %w", err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".terrn":
		return FormatLegacy, nil
	case ".terrn2":
		return FormatTerrn2, nil
	default:
		return FormatUnknown, nil
	}
}
