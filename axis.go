package heatmap

import (
	"strconv"
	"time"

	"github.com/midbel/svg"
)

const FontSize = 12.0

type Orientation int

const (
	OrientBottom Orientation = iota
	OrientLeft
)

func (o Orientation) Vertical() bool {
	return o == OrientLeft
}

// Axis draws itself in a group translated at left/top. The positions given
// by its scaler are used as is.
type Axis interface {
	Render(left, top float64) svg.Element
}

type TimeAxis struct {
	Id string
	Orientation
	Scaler         Scaler[time.Time]
	Domain         []time.Time
	Format         func(time.Time) string
	WithInnerTicks bool
	WithLabelTicks bool
}

func (a TimeAxis) Render(left, top float64) svg.Element {
	format := a.Format
	if format == nil {
		format = func(t time.Time) string {
			return t.Format("2006-01-02")
		}
	}
	ticks := make([]tick, 0, len(a.Domain))
	for _, t := range a.Domain {
		ticks = append(ticks, tick{
			Pos:   a.Scaler.Scale(t),
			Label: format(t),
		})
	}
	return a.settings().render(ticks, a.Scaler.Min(), a.Scaler.Max(), left, top)
}

func (a TimeAxis) settings() axisSettings {
	return axisSettings{
		Id:             a.Id,
		Orientation:    a.Orientation,
		WithInnerTicks: a.WithInnerTicks,
		WithLabelTicks: a.WithLabelTicks,
	}
}

type NumberAxis struct {
	Id string
	Orientation
	Scaler         Scaler[float64]
	Domain         []float64
	Format         func(float64) string
	WithInnerTicks bool
	WithLabelTicks bool
}

func (a NumberAxis) Render(left, top float64) svg.Element {
	format := a.Format
	if format == nil {
		format = func(f float64) string {
			return strconv.FormatFloat(f, 'f', 2, 64)
		}
	}
	ticks := make([]tick, 0, len(a.Domain))
	for _, f := range a.Domain {
		ticks = append(ticks, tick{
			Pos:   a.Scaler.Scale(f),
			Label: format(f),
		})
	}
	return a.settings().render(ticks, a.Scaler.Min(), a.Scaler.Max(), left, top)
}

func (a NumberAxis) settings() axisSettings {
	return axisSettings{
		Id:             a.Id,
		Orientation:    a.Orientation,
		WithInnerTicks: a.WithInnerTicks,
		WithLabelTicks: a.WithLabelTicks,
	}
}

type tick struct {
	Pos   float64
	Label string
}

type axisSettings struct {
	Id string
	Orientation
	WithInnerTicks bool
	WithLabelTicks bool
}

func (a axisSettings) render(ticks []tick, from, to, left, top float64) svg.Element {
	var g svg.Group
	g.Id = a.Id
	g.Class = append(g.Class, "axis")
	g.Transform = svg.Translate(left, top)

	d := domainLine(a.Orientation, from, to)
	g.Append(d.AsElement())

	font := svg.NewFont(FontSize)
	for _, t := range ticks {
		var grp svg.Group
		grp.Class = append(grp.Class, "tick")
		grp.Transform = svg.Translate(t.Pos, 0)
		if a.Vertical() {
			grp.Transform = svg.Translate(0, t.Pos)
		}
		if a.WithInnerTicks {
			mark := lineTick(a.Orientation, FontSize*0.5, d.Stroke)
			grp.Append(mark.AsElement())
		}
		if a.WithLabelTicks {
			text := tickText(a.Orientation, t.Label, font)
			grp.Append(text.AsElement())
		}
		g.Append(grp.AsElement())
	}
	return g.AsElement()
}

func domainLine(orient Orientation, from, to float64) svg.Line {
	var (
		starts = svg.NewPos(from, 0)
		ends   = svg.NewPos(to, 0)
	)
	if orient.Vertical() {
		starts.X, starts.Y = starts.Y, starts.X
		ends.X, ends.Y = ends.Y, ends.X
	}
	d := svg.NewLine(starts, ends)
	d.Class = append(d.Class, "domain")
	d.Stroke = svg.NewStroke("black", 1)
	return d
}

// lineTick draws a mark of the given size going out of the drawing area:
// down for the bottom axis, left for the left axis.
func lineTick(orient Orientation, size float64, stroke svg.Stroke) svg.Line {
	var (
		pos1 = svg.NewPos(0, 0)
		pos2 = svg.NewPos(0, size)
	)
	if orient.Vertical() {
		pos2 = svg.NewPos(-size, 0)
	}
	mark := svg.NewLine(pos1, pos2)
	mark.Stroke = stroke
	return mark
}

func tickText(orient Orientation, str string, font svg.Font) svg.Text {
	var (
		base   = "hanging"
		anchor = "middle"
		x, y   = 0.0, FontSize * 0.9
	)
	if orient.Vertical() {
		base = "middle"
		anchor = "end"
		x, y = -y, 0
	}
	text := svg.NewText(str)
	text.Pos = svg.NewPos(x, y)
	text.Font = font
	text.Anchor = anchor
	text.Baseline = base
	return text
}
