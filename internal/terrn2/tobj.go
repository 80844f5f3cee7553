// Copyright CuriousMike56, 2026. All rights reserved.

package terrn2

import (
	"strings"
)

// RenderObjects renders the .tobj object list from the raw object-section
// lines of a legacy terrain. Object and comment lines pass through
// verbatim. Legacy metadata that the new format carries elsewhere is
// dropped: fileinfo and author comments, numbered metadata comments,
// leading nine-field spawn lines, and the caelumconfig and landuse-config
// directives. A bare "end" marker becomes a blank line.
func RenderObjects(lines []string) []byte {
	var b strings.Builder
	foundObject := false

	for _, raw := range lines {
		line := strings.TrimSpace(raw)
		lower := strings.ToLower(line)

		if line == "" ||
			strings.Contains(line, "//fileinfo") || strings.Contains(line, ";fileinfo") ||
			strings.Contains(lower, "//author") || strings.Contains(lower, ";author") ||
			isMetadataComment(line) {
			continue
		}

		if !foundObject && strings.Contains(line, ",") {
			if len(strings.Split(line, ",")) == 9 {
				continue
			}
			foundObject = true
		}

		if strings.HasPrefix(lower, "caelumconfig") || strings.HasPrefix(lower, "landuse-config") {
			continue
		}

		if lower == "end" {
			b.WriteString("\n")
			continue
		}
		b.WriteString(raw)
		b.WriteString("\n")
	}
	return []byte(b.String())
}

// isMetadataComment matches editor bookkeeping comments of the form
// "//123 = ...": a comment with a digit somewhere before an equals sign.
func isMetadataComment(line string) bool {
	if !strings.HasPrefix(line, "//") && !strings.HasPrefix(line, ";") {
		return false
	}
	before, _, found := strings.Cut(line, "=")
	if !found {
		return false
	}
	return strings.ContainsAny(before, "0123456789")
}
