package platform

import (
	"regexp"
	"strings"
)

var (
	// illegalFilenameChars maps characters invalid on common file systems
	illegalFilenameChars = strings.NewReplacer(
		"/", "_",
		"\\", "_",
		":", "_",
		"*", "_",
		"?", "_",
		"\"", "_",
		"<", "_",
		">", "_",
		"|", "_",
	)

	// unsafeFilenameChars matches everything outside letters, digits,
	// underscores, periods, whitespace and hyphens. Unicode classes keep
	// non-ASCII titles readable.
	unsafeFilenameChars = regexp.MustCompile(`[^\p{L}\p{N}_.\s-]`)
)

// MakeSafeFilename replaces characters illegal in file systems with
// underscores, then replaces any remaining character outside
// {letters, digits, underscore, period, whitespace, hyphen} with an
// underscore. The result is stable under repeated application.
func MakeSafeFilename(s string) string {
	s = illegalFilenameChars.Replace(s)
	return unsafeFilenameChars.ReplaceAllString(s, "_")
}
