package python

import (
	"strings"
)

// DefaultVersion is the fallback used when the interpreter version cannot
// be detected or parsed.
const DefaultVersion = "3.11"

// MajorMinor extracts "MAJOR.MINOR" from a `python --version` output line
// such as "Python 3.11.9". The second return value reports whether the line
// was parsable.
func MajorMinor(raw string) (string, bool) {
	line := strings.TrimSpace(raw)
	if line == "" || !strings.Contains(line, "Python") {
		return "", false
	}

	fields := strings.Fields(line)
	full := fields[len(fields)-1]

	parts := strings.Split(full, ".")
	if len(parts) < 2 {
		return "", false
	}

	return parts[0] + "." + parts[1], true
}
