// Package plotter renders measurement-outcome distributions as SVG bar
// charts, the image artifacts the runners emit into a plots directory.
package plotter

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/qdiff-xyz/go-qdiff/counts"
)

// maxLabeledBars is the bar count above which per-bar outcome labels are
// suppressed to keep the axis readable.
const maxLabeledBars = 32

// Histogram renders one frequency map as a probability bar chart.
type Histogram struct {
	Width    float64
	Height   float64
	Margin   map[string]float64
	Title    string
	XLabel   string
	YLabel   string
	BarColor string
}

// NewHistogram creates a histogram plotter with default dimensions.
func NewHistogram() *Histogram {
	return &Histogram{
		Width:    900,
		Height:   500,
		Margin:   map[string]float64{"top": 40, "right": 30, "bottom": 60, "left": 60},
		XLabel:   "Outcome",
		YLabel:   "Probability",
		BarColor: "#377eb8",
	}
}

// SetTitle sets the plot title.
func (h *Histogram) SetTitle(t string) *Histogram {
	h.Title = t
	return h
}

// Render generates the SVG document for the frequency map.
func (h *Histogram) Render(m counts.FrequencyMap) string {
	keys := m.Keys()
	total := m.Total()

	plotW := h.Width - h.Margin["left"] - h.Margin["right"]
	plotH := h.Height - h.Margin["top"] - h.Margin["bottom"]

	ymax := 0.0
	for _, k := range keys {
		if p := prob(m[k], total); p > ymax {
			ymax = p
		}
	}
	ymax = niceCeil(ymax)

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" width="%g" height="%g" viewBox="0 0 %g %g">`,
		h.Width, h.Height, h.Width, h.Height))
	sb.WriteString(`<rect width="100%" height="100%" fill="white"/>`)

	if h.Title != "" {
		sb.WriteString(fmt.Sprintf(`<text x="%g" y="%g" text-anchor="middle" font-size="16" font-family="sans-serif">%s</text>`,
			h.Width/2, h.Margin["top"]/2+6, escape(h.Title)))
	}

	// Axes
	x0 := h.Margin["left"]
	y0 := h.Margin["top"] + plotH
	sb.WriteString(fmt.Sprintf(`<line x1="%g" y1="%g" x2="%g" y2="%g" stroke="black"/>`, x0, y0, x0+plotW, y0))
	sb.WriteString(fmt.Sprintf(`<line x1="%g" y1="%g" x2="%g" y2="%g" stroke="black"/>`, x0, h.Margin["top"], x0, y0))

	// Y ticks
	for i := 0; i <= 4; i++ {
		v := ymax * float64(i) / 4
		y := y0 - plotH*float64(i)/4
		sb.WriteString(fmt.Sprintf(`<line x1="%g" y1="%g" x2="%g" y2="%g" stroke="black"/>`, x0-4, y, x0, y))
		sb.WriteString(fmt.Sprintf(`<text x="%g" y="%g" text-anchor="end" font-size="11" font-family="sans-serif">%.3f</text>`,
			x0-8, y+4, v))
	}

	// Bars
	n := len(keys)
	if n > 0 {
		slot := plotW / float64(n)
		barW := slot * 0.7
		for i, k := range keys {
			p := prob(m[k], total)
			barH := 0.0
			if ymax > 0 {
				barH = plotH * p / ymax
			}
			x := x0 + slot*float64(i) + (slot-barW)/2
			y := y0 - barH
			sb.WriteString(fmt.Sprintf(`<rect x="%g" y="%g" width="%g" height="%g" fill="%s"/>`,
				x, y, barW, barH, h.BarColor))
			if n <= maxLabeledBars {
				sb.WriteString(fmt.Sprintf(`<text x="%g" y="%g" text-anchor="middle" font-size="11" font-family="sans-serif">%s</text>`,
					x+barW/2, y0+16, escape(k.Dec())))
				sb.WriteString(fmt.Sprintf(`<text x="%g" y="%g" text-anchor="middle" font-size="10" font-family="sans-serif">%.3f</text>`,
					x+barW/2, y-4, p))
			}
		}
	}

	// Axis labels
	sb.WriteString(fmt.Sprintf(`<text x="%g" y="%g" text-anchor="middle" font-size="13" font-family="sans-serif">%s</text>`,
		x0+plotW/2, h.Height-12, escape(h.XLabel)))
	sb.WriteString(fmt.Sprintf(`<text x="%g" y="%g" text-anchor="middle" font-size="13" font-family="sans-serif" transform="rotate(-90 %g %g)">%s</text>`,
		16.0, h.Margin["top"]+plotH/2, 16.0, h.Margin["top"]+plotH/2, escape(h.YLabel)))

	sb.WriteString(`</svg>`)
	return sb.String()
}

// WriteFile renders the frequency map and writes the SVG to a file.
func (h *Histogram) WriteFile(m counts.FrequencyMap, filename string) error {
	if err := os.WriteFile(filename, []byte(h.Render(m)), 0644); err != nil {
		return fmt.Errorf("write plot: %w", err)
	}
	return nil
}

func prob(count, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(count) / float64(total)
}

// niceCeil rounds a probability up to a tidy axis maximum.
func niceCeil(v float64) float64 {
	if v <= 0 {
		return 1
	}
	step := 0.05
	return math.Min(1, math.Ceil(v/step)*step)
}

func escape(s string) string {
	s = strings.ReplaceAll(s, "&", "&amp;")
	s = strings.ReplaceAll(s, "<", "&lt;")
	s = strings.ReplaceAll(s, ">", "&gt;")
	return s
}

// Dist writes one SVG per distribution into a plots directory, named
// "circuit<ID><variant>.svg". It satisfies the runners' Plotter interface.
type Dist struct {
	Dir  string
	Hist *Histogram
}

// NewDist creates a distribution plotter rooted at dir.
func NewDist(dir string) *Dist {
	return &Dist{Dir: dir, Hist: NewHistogram()}
}

// PlotDistribution renders the frequency map into the plots directory,
// creating it if needed.
func (d *Dist) PlotDistribution(m counts.FrequencyMap, circuitID, variant string) error {
	if err := os.MkdirAll(d.Dir, 0755); err != nil {
		return fmt.Errorf("create plots dir: %w", err)
	}
	d.Hist.SetTitle("circuit " + circuitID + variant)
	filename := filepath.Join(d.Dir, "circuit"+circuitID+variant+".svg")
	return d.Hist.WriteFile(m, filename)
}
