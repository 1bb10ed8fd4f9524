package pipeline

import (
	"path/filepath"
	"regexp"
)

var orgFilePattern = regexp.MustCompile(`^(.+?)-(\d{4}-\d{2}-\d{2})--(\d+)\.xlsx$`)

// ParseOrganizationName extracts <name> from "<name>-YYYY-MM-DD--<digits>.xlsx".
// Internal hyphens in the name are kept; only the base name of filename is matched.
func ParseOrganizationName(filename string) (string, bool) {
	m := orgFilePattern.FindStringSubmatch(filepath.Base(filename))
	if m == nil {
		return "", false
	}
	return m[1], true
}
