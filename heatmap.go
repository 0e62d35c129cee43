package heatmap

import (
	"context"
	"fmt"
	"io"
)

const (
	DefaultTitle = "Monthly Global Land-Surface Temperature"
	yearTicks    = 10
	monthFormat  = "%B"
)

// Source gives the dataset to draw.
type Source interface {
	Fetch(context.Context) (Dataset, error)
}

// SourceFunc adapts an ordinary function to a Source.
type SourceFunc func(context.Context) (Dataset, error)

func (f SourceFunc) Fetch(ctx context.Context) (Dataset, error) {
	return f(ctx)
}

// Pipeline fetches a dataset from its source and draws it on its canvas.
type Pipeline struct {
	Source Source
	Canvas Canvas
	Title  string
}

// Run executes one pass of the pipeline and writes the resulting SVG to w.
// Nothing is written when the dataset can not be fetched.
func (p Pipeline) Run(ctx context.Context, w io.Writer) (Chart, error) {
	ch, err := p.Build(ctx)
	if err != nil {
		return ch, err
	}
	return ch, ch.Render(w)
}

// Build fetches the dataset and computes the chart without writing it.
func (p Pipeline) Build(ctx context.Context) (Chart, error) {
	var ch Chart
	if p.Source == nil {
		return ch, fmt.Errorf("render heatmap: no source configured")
	}
	ds, err := p.Source.Fetch(ctx)
	if err != nil {
		return ch, fmt.Errorf("render heatmap: %w", err)
	}
	ch, err = Draw(ds, p.Canvas)
	if err != nil {
		return ch, fmt.Errorf("render heatmap: %w", err)
	}
	if p.Title != "" {
		ch.Title = p.Title
	}
	return ch, nil
}

// Draw computes the scales, the cells and the axis of ds on canvas c.
func Draw(ds Dataset, c Canvas) (Chart, error) {
	ch := Chart{
		Canvas: c,
		Title:  DefaultTitle,
		Base:   ds.BaseTemperature,
	}
	if err := c.Validate(); err != nil {
		return ch, err
	}
	scales, years, err := BuildScales(ds.Readings, c.Padding, c.Height, c.Width)
	if err != nil {
		return ch, err
	}
	ch.Geometry = Geometry{
		Scales:     scales,
		Years:      years,
		DrawWidth:  c.DrawingWidth(),
		DrawHeight: c.DrawingHeight(),
	}
	ch.Cells = ch.Layout(ds)

	format, err := TimeFormat(monthFormat)
	if err != nil {
		return ch, err
	}
	ch.Bottom = NumberAxis{
		Id:             "x-axis",
		Orientation:    OrientBottom,
		Scaler:         scales.X,
		Domain:         scales.X.Values(yearTicks),
		Format:         YearFormat,
		WithInnerTicks: true,
		WithLabelTicks: true,
	}
	ch.Left = TimeAxis{
		Id:             "y-axis",
		Orientation:    OrientLeft,
		Scaler:         scales.Y,
		Domain:         monthTicks(),
		Format:         format,
		WithInnerTicks: true,
		WithLabelTicks: true,
	}
	return ch, nil
}
