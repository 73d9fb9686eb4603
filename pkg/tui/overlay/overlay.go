// Package overlay draws a modal view on top of a rendered screen.
package overlay

import (
	"strings"

	"github.com/charmbracelet/lipgloss/v2"
	"github.com/muesli/reflow/ansi"
	"github.com/muesli/reflow/truncate"
)

// Compose centers foreground over background, a width x height canvas.
// Background cells right of the modal are kept as plain text.
func Compose(background string, width, height int, foreground string) string {
	bg := normalize(background, width, height)
	if foreground == "" || width <= 0 || height <= 0 {
		return strings.Join(bg, "\n")
	}

	fg := strings.Split(foreground, "\n")
	fgWidth := 0
	for _, line := range fg {
		if w := lipgloss.Width(line); w > fgWidth {
			fgWidth = w
		}
	}
	if fgWidth > width {
		fgWidth = width
	}
	if len(fg) > height {
		fg = fg[:height]
	}

	offsetX := (width - fgWidth) / 2
	offsetY := (height - len(fg)) / 2

	for row, line := range fg {
		y := offsetY + row
		base := bg[y]
		prefix := pad(truncate.String(base, uint(offsetX)), offsetX)
		suffix := plainSlice(base, offsetX+fgWidth, width)
		bg[y] = prefix + pad(truncate.String(line, uint(fgWidth)), fgWidth) + suffix
	}
	return strings.Join(bg, "\n")
}

func normalize(view string, width, height int) []string {
	lines := strings.Split(view, "\n")
	if len(lines) > height {
		lines = lines[:height]
	}
	for len(lines) < height {
		lines = append(lines, "")
	}
	for i := range lines {
		lines[i] = pad(truncate.String(lines[i], uint(max(width, 0))), width)
	}
	return lines
}

func pad(s string, width int) string {
	if w := lipgloss.Width(s); w < width {
		return s + strings.Repeat(" ", width-w)
	}
	return s
}

// Plain drops the ANSI escape sequences from s.
func Plain(s string) string {
	var b strings.Builder
	inSeq := false
	for _, r := range s {
		if r == ansi.Marker {
			inSeq = true
			continue
		}
		if inSeq {
			if ansi.IsTerminator(r) {
				inSeq = false
			}
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// plainSlice returns the printable cells [start, end) of s without styling.
func plainSlice(s string, start, end int) string {
	if start >= end {
		return ""
	}
	var b strings.Builder
	seen := 0
	for _, r := range Plain(s) {
		w := lipgloss.Width(string(r))
		if seen >= start && seen+w <= end {
			b.WriteRune(r)
		}
		seen += w
		if seen >= end {
			break
		}
	}
	return b.String()
}
