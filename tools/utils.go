package tools

import (
	"fmt"
	"regexp"
	"strings"
)

// FormatGUID converts a raw objectGUID []byte into a standard Microsoft GUID string
func FormatGUID(b []byte) string {
	if len(b) != 16 {
		return ""
	}
	return fmt.Sprintf("%02x%02x%02x%02x-%02x%02x-%02x%02x-%02x%02x-%02x%02x%02x%02x%02x%02x",
		b[3], b[2], b[1], b[0],
		b[5], b[4],
		b[7], b[6],
		b[8], b[9],
		b[10], b[11], b[12], b[13], b[14], b[15],
	)
}

// Slugify converts names like "Devices - Human Resources" to "devices-human-resources"
func Slugify(input string) string {
	input = strings.ToLower(strings.TrimSpace(input))

	// Replace spaces and underscores with dashes
	input = strings.ReplaceAll(input, " ", "-")
	input = strings.ReplaceAll(input, "_", "-")

	// Remove all non-alphanumeric or dash characters
	re := regexp.MustCompile(`[^a-z0-9\-]`)
	input = re.ReplaceAllString(input, "")

	// Collapse multiple dashes
	reDash := regexp.MustCompile(`-+`)
	input = reDash.ReplaceAllString(input, "-")

	// Trim leading/trailing dashes
	input = strings.Trim(input, "-")

	return input
}
