package ui

import (
	"fmt"
	"math"
	"strings"
)

// BarWidth is the width of the longest bar drawn by RenderBar
const BarWidth = 30

// RenderBar draws one row of a horizontal bar chart, scaled against max
func RenderBar(label string, value, max int, width int) string {
	if width <= 0 {
		width = BarWidth
	}
	length := 0
	if max > 0 && value > 0 {
		length = int(math.Ceil(float64(value) / float64(max) * float64(width)))
	}

	bar := StyleAccent.Render(strings.Repeat("█", length)) + strings.Repeat(" ", width-length)
	count := StyleMuted.Render(fmt.Sprintf("%d", value))
	if label == "" {
		return bar + " " + count
	}
	return fmt.Sprintf("%s %s %s", bar, pad(label, 12, AlignLeft), count)
}

// Sparkline renders counts as a single line of block characters
func Sparkline(values []int) string {
	levels := []rune("▁▂▃▄▅▆▇█")

	max := 0
	for _, v := range values {
		if v > max {
			max = v
		}
	}

	var b strings.Builder
	for _, v := range values {
		if max == 0 || v == 0 {
			b.WriteRune(' ')
			continue
		}
		idx := int(math.Ceil(float64(v)/float64(max)*float64(len(levels)))) - 1
		b.WriteRune(levels[idx])
	}
	return b.String()
}

// FormatBytes renders a byte count in binary units, e.g. 1.5 KiB
func FormatBytes(n int64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}
	div, exp := int64(unit), 0
	for m := n / unit; m >= unit; m /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(n)/float64(div), "KMGTPE"[exp])
}

// FormatPercent renders a proportion in [0,1] as a percentage
func FormatPercent(share float64) string {
	return fmt.Sprintf("%.1f%%", share*100)
}
