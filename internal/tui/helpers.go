package tui

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// truncate shortens s to maxWidth display cells, ending with an ellipsis
func truncate(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	if runewidth.StringWidth(s) <= maxWidth {
		return s
	}

	const suffix = "…"
	target := maxWidth - runewidth.StringWidth(suffix)
	if target <= 0 {
		return runewidth.Truncate(suffix, maxWidth, "")
	}
	return runewidth.Truncate(s, target, "") + suffix
}

// padRight pads s with spaces to width display cells
func padRight(s string, width int) string {
	w := runewidth.StringWidth(s)
	if w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}

// clamp bounds i to [0, n-1], or 0 when n is 0
func clamp(i, n int) int {
	if n <= 0 || i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}
