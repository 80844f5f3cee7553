// Copyright CuriousMike56, 2026. All rights reserved.

// Package terrn parses the legacy pre-0.4 .terrn terrain format.
//
// A legacy file is a fixed header followed by a free-form object section:
//
//	Terrain Display Name
//	terrain-geometry.cfg
//	w 51.5                     (optional water height)
//	0.93, 0.86, 0.76           (ambient color)
//	790, 0.2, 713, ...         (start position, extra fields ignored)
//	<object lines until end of file>
//
// Directive lines (gravity, landuse-config, caelumconfig) and author
// comments (//author, ;author) may appear anywhere and never count as
// header values or objects.
package terrn

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/CuriousMike56/terrn-converter/pkg/types"
)

// DefaultGravity is used when the file carries no gravity directive.
const DefaultGravity = "-9.81"

// ParseFile reads and parses the legacy terrain file at path.
func ParseFile(path string) (*types.Terrain, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening terrain: %w", err)
	}
	defer f.Close()

	t, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return t, nil
}

// Parse reads the legacy terrain format from r. Header lines are consumed
// in order; everything after the start position is kept verbatim as the
// object section.
func Parse(r io.Reader) (*types.Terrain, error) {
	t := &types.Terrain{Gravity: DefaultGravity}
	headerDone := false

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		raw := strings.TrimRight(sc.Text(), "\r")
		line := strings.TrimSpace(raw)

		if line == "" || strings.HasPrefix(line, "//end") {
			continue
		}
		if isAuthorComment(line) {
			if a, ok := parseAuthor(line); ok {
				addAuthor(t, a)
			}
			continue
		}
		if !isComment(line) && parseDirective(t, line) {
			continue
		}
		if isComment(line) && !headerDone {
			// header comments carry no values; object-section comments
			// are kept for the .tobj writer
			continue
		}

		switch {
		case t.Name == "":
			t.Name = line
		case t.GeometryCfg == "":
			t.GeometryCfg = line
		case t.AmbientColor == "" && strings.HasPrefix(line, "w "):
			t.WaterHeight = strings.Fields(line)[1]
		case t.AmbientColor == "":
			t.AmbientColor = line
		case !headerDone:
			t.StartPosition = splitStartPosition(line)
			headerDone = true
		default:
			t.ObjectLines = append(t.ObjectLines, raw)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading terrain: %w", err)
	}

	if t.Name == "" {
		return nil, fmt.Errorf("empty terrain file: no header lines found")
	}
	if t.GeometryCfg == "" {
		return nil, fmt.Errorf("incomplete header: no geometry config filename after terrain name %q", t.Name)
	}
	return t, nil
}

func isComment(line string) bool {
	return strings.HasPrefix(line, "//") || strings.HasPrefix(line, ";")
}

func isAuthorComment(line string) bool {
	lower := strings.ToLower(line)
	return strings.HasPrefix(lower, "//author") || strings.HasPrefix(lower, ";author")
}

// parseDirective consumes gravity, landuse-config and caelumconfig lines.
// It reports whether the line was a directive.
func parseDirective(t *types.Terrain, line string) bool {
	fields := strings.Fields(line)
	if len(fields) < 2 {
		return false
	}
	switch strings.ToLower(fields[0]) {
	case "gravity":
		t.Gravity = fields[1]
	case "landuse-config":
		t.LanduseCfg = fields[1]
	case "caelumconfig":
		t.CaelumCfg = fields[1]
	default:
		return false
	}
	return true
}

// parseAuthor splits "//author <role> <id> <name...>" into an Author. The
// id field is discarded. When the name looks like an email address with
// trailing text, only the address is kept.
func parseAuthor(line string) (types.Author, bool) {
	body := strings.TrimPrefix(line, "//")
	if body == line {
		body = strings.TrimPrefix(line, ";")
	}

	parts := strings.Split(body, " ")
	if len(parts) < 3 {
		return types.Author{}, false
	}

	name := strings.TrimSpace(strings.Join(parts[3:], " "))
	if strings.Contains(name, "@") {
		if f := strings.Fields(name); len(f) > 0 {
			name = f[0]
		}
	}
	return types.Author{Role: parts[1], Name: name}, true
}

// addAuthor appends a, unless the role was already seen, in which case the
// earlier entry keeps its position and takes the new name.
func addAuthor(t *types.Terrain, a types.Author) {
	for i := range t.Authors {
		if t.Authors[i].Role == a.Role {
			t.Authors[i].Name = a.Name
			return
		}
	}
	t.Authors = append(t.Authors, a)
}

// splitStartPosition takes the first three comma-separated fields of the
// spawn line. Nine-field lines carry camera coordinates that the new
// format does not use.
func splitStartPosition(line string) []string {
	parts := strings.Split(line, ",")
	if len(parts) > 3 {
		parts = parts[:3]
	}
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		out = append(out, strings.TrimSpace(p))
	}
	return out
}
