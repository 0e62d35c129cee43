package heatmap

import (
	"bufio"
	"fmt"
	"io"

	"github.com/midbel/svg"
)

const (
	DefaultWidth   = 1315
	DefaultHeight  = 496
	DefaultPadding = 80

	DefaultLegendWidth  = 400
	DefaultLegendHeight = 50
)

// Canvas gives the dimensions of the drawing surface and of the legend
// surface.
type Canvas struct {
	Width   float64
	Height  float64
	Padding float64

	Legend struct {
		Width  float64
		Height float64
	}
}

func DefaultCanvas() Canvas {
	c := Canvas{
		Width:   DefaultWidth,
		Height:  DefaultHeight,
		Padding: DefaultPadding,
	}
	c.Legend.Width = DefaultLegendWidth
	c.Legend.Height = DefaultLegendHeight
	return c
}

func (c Canvas) DrawingWidth() float64 {
	return c.Width - 2*c.Padding
}

func (c Canvas) DrawingHeight() float64 {
	return c.Height - 2*c.Padding
}

func (c Canvas) Validate() error {
	if c.Padding < 0 {
		return fmt.Errorf("padding can not be negative (%.0f)", c.Padding)
	}
	if c.DrawingWidth() <= 0 || c.DrawingHeight() <= 0 {
		return fmt.Errorf("canvas %.0fx%.0f too small for padding %.0f", c.Width, c.Height, c.Padding)
	}
	if c.Legend.Width <= 0 || c.Legend.Height <= 0 {
		return fmt.Errorf("legend %.0fx%.0f: invalid dimension", c.Legend.Width, c.Legend.Height)
	}
	return nil
}

// Chart is a fully computed heatmap ready to be written on any surface.
type Chart struct {
	Canvas
	Geometry

	Title string
	Base  float64
	Cells []Cell

	Left   TimeAxis
	Bottom NumberAxis
}

// Render writes the chart as a standalone SVG document.
func (c Chart) Render(w io.Writer) error {
	return c.render(w, false)
}

// Embed writes the chart without the XML prolog so that it can be inlined
// in an HTML document.
func (c Chart) Embed(w io.Writer) error {
	return c.render(w, true)
}

func (c Chart) render(w io.Writer, inline bool) error {
	el := svg.NewSVG()
	el.Id = "heatmap"
	el.Dim = svg.NewDim(c.Width, c.Height)
	el.OmitProlog = inline

	if c.Title != "" {
		el.Title = c.Title
	}
	el.Append(hoverStyle())
	el.Append(c.drawAxis())

	rdr := CellRenderer{
		Base:   c.Base,
		Scales: c.Scales,
	}
	el.Append(rdr.Render(c.Cells))
	el.Append(tooltipElement())
	el.Append(hoverScript())

	bw := bufio.NewWriter(w)
	el.Render(bw)
	return bw.Flush()
}

func (c Chart) drawAxis() svg.Element {
	var g svg.Group
	g.Id = "axis"
	appendAxis(&g, c.Bottom, 0, c.Height-c.Padding)
	appendAxis(&g, c.Left, c.Padding, 0)
	return g.AsElement()
}

func appendAxis(g *svg.Group, a Axis, left, top float64) {
	g.Append(a.Render(left, top))
}
