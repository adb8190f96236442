package output

import "strings"

// Section renders a styled section header.
func Section(title string) string {
	return StyleHeader.Render("▸ " + title)
}

// Sparkline renders a binary day series as a compact strip: filled
// blocks for completed days, dots for missed ones. Values other than
// 0 and 1 render as filled.
func Sparkline(values []int) string {
	var sb strings.Builder
	for _, v := range values {
		if v == 0 {
			sb.WriteString(StyleMuted.Render("·"))
		} else {
			sb.WriteString(StyleSuccess.Render("█"))
		}
	}
	return sb.String()
}

// Bar renders a horizontal bar scaled to width for a value in [0, max].
func Bar(value, max float64, width int) string {
	if max <= 0 || width <= 0 {
		return ""
	}
	filled := int(value / max * float64(width))
	if filled > width {
		filled = width
	}
	if filled < 0 {
		filled = 0
	}
	return StyleSuccess.Render(strings.Repeat("█", filled)) +
		StyleMuted.Render(strings.Repeat("░", width-filled))
}
