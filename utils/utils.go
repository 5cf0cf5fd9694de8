package utils

import "strings"

// SanitizeFilename strips characters that break Content-Disposition
// filenames on common platforms.
func SanitizeFilename(name string) string {
	name = strings.TrimSpace(name)
	name = strings.ReplaceAll(name, " ", "_")
	for _, ch := range []string{"/", "\\", ":", "*", "?", "\"", "<", ">", "|"} {
		name = strings.ReplaceAll(name, ch, "-")
	}
	if name == "" {
		name = "schedule"
	}
	return name
}
