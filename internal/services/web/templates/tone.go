package templates

import "strings"

const defaultTone = "slate"

// toneClass maps an opaque catalog color token to a CSS class. Tokens outside
// [a-z0-9-] render with the neutral tone.
func toneClass(color string) string {
	color = strings.ToLower(strings.TrimSpace(color))
	if color == "" {
		color = defaultTone
	}
	for _, r := range color {
		if (r < 'a' || r > 'z') && (r < '0' || r > '9') && r != '-' {
			color = defaultTone
			break
		}
	}
	return "tone-" + color
}
