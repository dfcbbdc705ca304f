package widgets

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// SplitWidths divides total cells into n columns by ratio. Missing or
// mismatched ratios split evenly; leftover cells go to the first columns.
func SplitWidths(total, n int, ratios []float64) []int {
	if n <= 0 {
		return nil
	}
	if len(ratios) != n {
		width := total / n
		out := make([]int, n)
		for i := range out {
			out[i] = width
		}
		for i := 0; i < total%n; i++ {
			out[i]++
		}
		return out
	}
	sum := 0.0
	for _, r := range ratios {
		if r <= 0 {
			r = 1
		}
		sum += r
	}
	out := make([]int, n)
	used := 0
	for i := range out {
		w := int(math.Floor((ratios[i] / sum) * float64(total)))
		out[i] = w
		used += w
	}
	for i := 0; used < total; i = (i + 1) % n {
		out[i]++
		used++
	}
	return out
}

// JoinColumns places pre-rendered blocks side by side, each padded to its
// width, separated by gap spaces.
func JoinColumns(blocks []string, widths []int, gap int) string {
	if len(blocks) == 0 {
		return ""
	}
	split := make([][]string, len(blocks))
	rows := 0
	for i, b := range blocks {
		split[i] = strings.Split(b, "\n")
		rows = max(rows, len(split[i]))
	}
	out := make([]string, 0, rows)
	for r := 0; r < rows; r++ {
		cols := make([]string, len(blocks))
		for i := range split {
			line := ""
			if r < len(split[i]) {
				line = split[i][r]
			}
			cols[i] = PadRight(line, widths[i])
		}
		out = append(out, strings.Join(cols, strings.Repeat(" ", gap)))
	}
	return strings.Join(out, "\n")
}

// ClipHeight keeps at most height lines.
func ClipHeight(s string, height int) string {
	if height <= 0 {
		return ""
	}
	lines := strings.Split(s, "\n")
	if len(lines) > height {
		lines = lines[:height]
	}
	return strings.Join(lines, "\n")
}

// RenderPopup centres a bordered card over base.
func RenderPopup(base, popup string, width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	canvas := splitToLines(base, height)
	for i := range canvas {
		canvas[i] = PadRight(canvas[i], width)
	}
	card := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Padding(1, 2).
		Render(popup)
	cardLines := strings.Split(card, "\n")
	cardWidth := 0
	for _, l := range cardLines {
		cardWidth = max(cardWidth, ansi.StringWidth(l))
	}
	x := max(0, (width-cardWidth)/2)
	y := max(0, (height-len(cardLines))/2)
	for i, line := range cardLines {
		row := y + i
		if row >= len(canvas) {
			break
		}
		target := canvas[row]
		left := PadRight(ansi.Truncate(target, x, ""), x)
		mid := PadRight(line, cardWidth)
		right := dropColumns(target, x+cardWidth)
		canvas[row] = PadRight(left+mid+right, width)
	}
	return strings.Join(canvas, "\n")
}

func splitToLines(s string, height int) []string {
	lines := strings.Split(s, "\n")
	if height > 0 && len(lines) > height {
		lines = lines[:height]
	}
	for height > 0 && len(lines) < height {
		lines = append(lines, "")
	}
	return lines
}

func dropColumns(s string, cols int) string {
	if cols <= 0 {
		return s
	}
	return strings.TrimPrefix(s, ansi.Truncate(s, cols, ""))
}
