package heatmap

import (
	"bufio"
	"io"
	"math"
	"strconv"

	"github.com/midbel/svg"
)

const legendPadding = 10

// Legend draws the color buckets of a scale as a row of swatches with the
// limits written under the boundaries between two swatches.
type Legend struct {
	Width  float64
	Height float64
	Scale  Thresholds
}

func (c Canvas) LegendSurface() Legend {
	return Legend{
		Width:  c.Legend.Width,
		Height: c.Legend.Height,
		Scale:  Temperatures,
	}
}

// Swatch gives the position and the size of the swatch of bucket i.
func (g Legend) Swatch(i int) (svg.Pos, svg.Dim) {
	var (
		width  = (g.Width - 2*legendPadding) / float64(len(g.Scale))
		height = g.Height / 2
	)
	return svg.NewPos(legendPadding+float64(i)*width, 0), svg.NewDim(width, height)
}

// Labels returns the limits of the buckets that are drawn below the
// swatches. The limit of the last bucket being infinite, it is skipped.
func (g Legend) Labels() []string {
	var all []string
	for _, b := range g.Scale {
		if math.IsInf(b.Limit, 0) {
			continue
		}
		all = append(all, strconv.FormatFloat(b.Limit, 'f', -1, 64))
	}
	return all
}

func (g Legend) Render(w io.Writer) error {
	return g.render(w, false)
}

func (g Legend) Embed(w io.Writer) error {
	return g.render(w, true)
}

func (g Legend) render(w io.Writer, inline bool) error {
	el := svg.NewSVG()
	el.Id = "legend"
	el.Dim = svg.NewDim(g.Width, g.Height)
	el.OmitProlog = inline

	var (
		labels = g.Labels()
		font   = svg.NewFont(FontSize * 0.8)
	)
	for i, b := range g.Scale {
		pos, dim := g.Swatch(i)

		var rec svg.Rect
		rec.Class = append(rec.Class, "swatch")
		rec.Pos = pos
		rec.Dim = dim
		rec.Fill = svg.NewFill(b.Color.String())
		rec.Stroke = svg.NewStroke("black", 0.5)
		el.Append(rec.AsElement())

		if i >= len(labels) {
			continue
		}
		txt := svg.NewText(labels[i])
		txt.Pos = svg.NewPos(pos.X+dim.W, dim.H+legendPadding/2)
		txt.Font = font
		txt.Anchor = "middle"
		txt.Baseline = "hanging"
		el.Append(txt.AsElement())
	}

	bw := bufio.NewWriter(w)
	el.Render(bw)
	return bw.Flush()
}
