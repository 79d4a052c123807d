// Package renderer turns accounting results into markdown documents ready
// for a terminal markdown viewer.
package renderer

import "strings"

// gauge renders a fixed-width text meter, filled left to right.
func gauge(percent float64, width int) string {
	if percent < 0 {
		percent = 0
	}
	if percent > 100 {
		percent = 100
	}
	filled := int(percent/100*float64(width) + 0.5)
	return "[" + strings.Repeat("#", filled) + strings.Repeat("-", width-filled) + "]"
}
