package export

import (
	"errors"
	"fmt"
	"html"
	"math"
	"strings"

	"github.com/san-kum/beerslab/internal/sim"
	"github.com/san-kum/beerslab/internal/solute"
	"github.com/san-kum/beerslab/internal/viz"
)

const (
	DefaultWidth  = 640
	DefaultHeight = 360

	margin     = 48
	background = "#0a0a0a"
	axisColor  = "#666688"
	textColor  = "#cccccc"
)

// palette cycles for series without a color of their own.
var palette = []string{"#00ccff", "#ff00ff", "#00ff88", "#ffaa00", "#ff4444", "#aaaaff"}

var ErrNoData = errors.New("export: nothing to plot")

type Series struct {
	Name  string
	X, Y  []float64
	Color string
}

// Chart is a line chart with shared axes.
type Chart struct {
	Title         string
	XLabel        string
	YLabel        string
	Width, Height int
	Series        []Series
}

type bounds struct{ minX, maxX, minY, maxY float64 }

func (c Chart) bounds() bounds {
	b := bounds{math.Inf(1), math.Inf(-1), math.Inf(1), math.Inf(-1)}
	for _, s := range c.Series {
		for i := range s.X {
			b.minX, b.maxX = math.Min(b.minX, s.X[i]), math.Max(b.maxX, s.X[i])
			b.minY, b.maxY = math.Min(b.minY, s.Y[i]), math.Max(b.maxY, s.Y[i])
		}
	}
	if b.maxX == b.minX {
		b.maxX = b.minX + 1
	}
	// pad flat and tight series so lines do not sit on the frame
	span := b.maxY - b.minY
	if span == 0 {
		span = math.Max(math.Abs(b.maxY), 1)
	}
	b.minY -= span * 0.05
	b.maxY += span * 0.05
	return b
}

// SVG renders the chart. Series shorter than two points are skipped.
func (c Chart) SVG() (string, error) {
	points := 0
	for _, s := range c.Series {
		if len(s.X) != len(s.Y) {
			return "", fmt.Errorf("export: series %q has %d x values and %d y values", s.Name, len(s.X), len(s.Y))
		}
		if len(s.X) >= 2 {
			points += len(s.X)
		}
	}
	if points == 0 {
		return "", ErrNoData
	}

	w, h := c.Width, c.Height
	if w <= 0 {
		w = DefaultWidth
	}
	if h <= 0 {
		h = DefaultHeight
	}
	b := c.bounds()
	plotW, plotH := float64(w-2*margin), float64(h-2*margin)
	px := func(x float64) float64 { return margin + (x-b.minX)/(b.maxX-b.minX)*plotW }
	py := func(y float64) float64 { return margin + plotH - (y-b.minY)/(b.maxY-b.minY)*plotH }

	var sb strings.Builder
	fmt.Fprintf(&sb, `<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="%s"/>
`, w, h, w, h, background)

	fmt.Fprintf(&sb, `<path fill="none" stroke="%s" d="M%d,%d L%d,%d L%d,%d"/>
`, axisColor, margin, margin, margin, h-margin, w-margin, h-margin)
	fmt.Fprintf(&sb, `<g fill="%s" font-family="monospace" font-size="11">
`, textColor)
	fmt.Fprintf(&sb, `<text x="%d" y="%d" text-anchor="middle" font-size="14">%s</text>
`, w/2, margin/2, html.EscapeString(c.Title))
	fmt.Fprintf(&sb, `<text x="%d" y="%d" text-anchor="middle">%s</text>
`, w/2, h-8, html.EscapeString(c.XLabel))
	fmt.Fprintf(&sb, `<text x="12" y="%d" transform="rotate(-90 12 %d)" text-anchor="middle">%s</text>
`, h/2, h/2, html.EscapeString(c.YLabel))
	fmt.Fprintf(&sb, `<text x="%d" y="%d" text-anchor="end">%s</text>
`, margin-4, h-margin, formatTick(b.minY))
	fmt.Fprintf(&sb, `<text x="%d" y="%d" text-anchor="end">%s</text>
`, margin-4, margin+4, formatTick(b.maxY))
	fmt.Fprintf(&sb, `<text x="%d" y="%d">%s</text>
`, margin, h-margin+14, formatTick(b.minX))
	fmt.Fprintf(&sb, `<text x="%d" y="%d" text-anchor="end">%s</text>
`, w-margin, h-margin+14, formatTick(b.maxX))
	sb.WriteString("</g>\n")

	for i, s := range c.Series {
		if len(s.X) < 2 {
			continue
		}
		color := s.Color
		if color == "" {
			color = palette[i%len(palette)]
		}
		fmt.Fprintf(&sb, `<path fill="none" stroke="%s" stroke-width="1.5" d="M`, color)
		for j := range s.X {
			if j > 0 {
				sb.WriteString(" L")
			}
			fmt.Fprintf(&sb, "%.1f,%.1f", px(s.X[j]), py(s.Y[j]))
		}
		sb.WriteString("\"/>\n")
		fmt.Fprintf(&sb, `<text x="%d" y="%d" fill="%s" font-family="monospace" font-size="11" text-anchor="end">%s</text>
`, w-margin, margin+14*(i+1), color, html.EscapeString(s.Name))
	}

	sb.WriteString("</svg>\n")
	return sb.String(), nil
}

func formatTick(v float64) string { return fmt.Sprintf("%.4g", v) }

// RunChart plots the named channels of a recorded run against time. With no
// labels it plots concentration.
func RunChart(result *sim.Result, labels ...string) (Chart, error) {
	if len(labels) == 0 {
		labels = []string{"concentration"}
	}
	chart := Chart{Title: strings.Join(labels, ", "), XLabel: "time (s)", YLabel: "value"}
	for _, label := range labels {
		y, ok := result.Channel(label)
		if !ok {
			return Chart{}, fmt.Errorf("export: unknown channel %q", label)
		}
		chart.Series = append(chart.Series, Series{Name: label, X: result.Times, Y: y})
	}
	return chart, nil
}

// SpectrumChart plots molar absorptivity against wavelength. Solutes without
// a spectrum are skipped.
func SpectrumChart(solutes ...*solute.Solute) Chart {
	chart := Chart{Title: "molar absorptivity", XLabel: "wavelength (nm)", YLabel: "ε (1/(M·cm))"}
	for _, s := range solutes {
		if s.Absorptivity == nil {
			continue
		}
		values := s.Absorptivity.Values()
		x := make([]float64, len(values))
		for i := range x {
			x[i] = float64(solute.MinWavelength + i)
		}
		chart.Series = append(chart.Series, Series{Name: s.Name, X: x, Y: values, Color: s.Colors.MaxColor.Hex()})
	}
	return chart
}

// CanvasToSVG draws the lit dots of a braille canvas as circles of the
// given color.
func CanvasToSVG(canvas *viz.Canvas, scale float64, color string) string {
	if canvas == nil {
		return ""
	}
	width := float64(canvas.Width) * scale * 2
	height := float64(canvas.Height) * scale * 4

	var sb strings.Builder
	fmt.Fprintf(&sb, `<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">
<rect width="100%%" height="100%%" fill="%s"/>
<g fill="%s">
`, width, height, width, height, background, color)

	r := scale * 0.4
	canvas.Dots(func(x, y int) {
		fmt.Fprintf(&sb, `<circle cx="%.1f" cy="%.1f" r="%.1f"/>
`, float64(x)*scale+scale/2, float64(y)*scale+scale/2, r)
	})
	sb.WriteString("</g>\n</svg>\n")
	return sb.String()
}
