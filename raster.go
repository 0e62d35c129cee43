package heatmap

import (
	"image"
	"io"
	"math"

	"github.com/fogleman/gg"
)

const tickSize = FontSize * 0.5

// Raster draws the chart on an image. The cells and the ticks are the same
// as the ones of the SVG document, the hover behaviour is dropped.
func (c Chart) Raster() image.Image {
	return c.raster().Image()
}

// EncodePNG writes the raster of the chart as a PNG image.
func (c Chart) EncodePNG(w io.Writer) error {
	return c.raster().EncodePNG(w)
}

func (c Chart) raster() *gg.Context {
	dc := gg.NewContext(int(math.Ceil(c.Width)), int(math.Ceil(c.Height)))
	dc.SetRGB(1, 1, 1)
	dc.Clear()

	for _, cell := range c.Cells {
		dc.DrawRectangle(cell.X, cell.Y, cell.W, cell.H)
		dc.SetColor(cell.Fill.RGBA())
		dc.Fill()
	}

	dc.SetRGB(0, 0, 0)
	dc.SetLineWidth(1)
	c.rasterBottom(dc)
	c.rasterLeft(dc)

	if c.Title != "" {
		dc.DrawStringAnchored(c.Title, c.Width/2, c.Padding/2, 0.5, 0.5)
	}
	return dc
}

func (c Chart) rasterBottom(dc *gg.Context) {
	var (
		top    = c.Height - c.Padding
		format = c.Bottom.Format
	)
	dc.DrawLine(c.Bottom.Scaler.Min(), top, c.Bottom.Scaler.Max(), top)
	dc.Stroke()
	for _, v := range c.Bottom.Domain {
		x := c.Bottom.Scaler.Scale(v)
		dc.DrawLine(x, top, x, top+tickSize)
		dc.Stroke()
		if format != nil {
			dc.DrawStringAnchored(format(v), x, top+tickSize+FontSize*0.5, 0.5, 1)
		}
	}
}

func (c Chart) rasterLeft(dc *gg.Context) {
	var (
		left   = c.Padding
		format = c.Left.Format
	)
	dc.DrawLine(left, c.Left.Scaler.Min(), left, c.Left.Scaler.Max())
	dc.Stroke()
	for _, v := range c.Left.Domain {
		y := c.Left.Scaler.Scale(v)
		dc.DrawLine(left-tickSize, y, left, y)
		dc.Stroke()
		if format != nil {
			dc.DrawStringAnchored(format(v), left-tickSize-FontSize*0.25, y, 1, 0.5)
		}
	}
}
