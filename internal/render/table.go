// Package render turns summary results into terminal-friendly text.
package render

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/jkdabbert/app-data-dictionary/internal/summary"
)

// histogramBarWidth is the widest bar drawn for the largest bin.
const histogramBarWidth = 40

// Table renders a summary result as an aligned text table, with the caption
// and a histogram sketch when present.
func Table(res *summary.Result) string {
	var b strings.Builder
	widths := make([]int, len(res.Align))
	for _, row := range res.Data {
		for i, d := range row {
			if w := utf8.RuneCountInString(d.V); w > widths[i] {
				widths[i] = w
			}
		}
	}
	for _, row := range res.Data {
		for i, d := range row {
			if i > 0 {
				b.WriteString("  ")
			}
			if res.Align[i] == summary.AlignRight {
				b.WriteString(pad(d.V, widths[i]))
				b.WriteString(d.V)
			} else {
				b.WriteString(d.V)
				b.WriteString(pad(d.V, widths[i]))
			}
		}
		b.WriteString("\n")
	}
	if res.Aux != "" {
		b.WriteString(res.Aux)
		b.WriteString("\n")
	}
	if res.Histogram != nil {
		b.WriteString("\n")
		b.WriteString(HistogramSketch(res.Histogram))
	}
	return b.String()
}

// HistogramSketch draws one line per bin: the bin's range, a bar scaled to
// the largest bin, and the count.
func HistogramSketch(h *summary.Histogram) string {
	var maxCount float64
	for _, bin := range h.Bins {
		if bin.Count > maxCount {
			maxCount = bin.Count
		}
	}
	labels := make([]string, len(h.Bins))
	var labelWidth int
	for i, bin := range h.Bins {
		labels[i] = fmt.Sprintf("[%g, %g)", bin.Min, bin.Max)
		if w := utf8.RuneCountInString(labels[i]); w > labelWidth {
			labelWidth = w
		}
	}
	var b strings.Builder
	for i, bin := range h.Bins {
		b.WriteString(labels[i])
		b.WriteString(pad(labels[i], labelWidth))
		b.WriteString("  ")
		if maxCount > 0 {
			n := int(bin.Count / maxCount * histogramBarWidth)
			b.WriteString(strings.Repeat("█", n))
		}
		b.WriteString(fmt.Sprintf(" %g\n", bin.Count))
	}
	return b.String()
}

func pad(s string, width int) string {
	n := width - utf8.RuneCountInString(s)
	if n <= 0 {
		return ""
	}
	return strings.Repeat(" ", n)
}
