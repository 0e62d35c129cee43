package heatmap

import (
	"strconv"
	"strings"

	"github.com/midbel/svg"
)

const (
	tooltipShiftX = 80
	tooltipShiftY = 85
)

// Cell is the computed geometry and color of one reading.
type Cell struct {
	MonthlyReading

	Temp    float64
	Rounded float64
	Fill    RGB

	svg.Pos
	svg.Dim
}

type Tooltip struct {
	Text string
	svg.Pos
}

// Lines splits the text of the tooltip in the lines to be displayed.
func (t Tooltip) Lines() []string {
	return strings.Split(t.Text, "\n")
}

// Geometry holds what is needed to place the cells of a dataset.
type Geometry struct {
	Scales ScalePair
	Years  YearRange

	DrawWidth  float64
	DrawHeight float64
}

func (g Geometry) CellWidth() float64 {
	return g.DrawWidth / float64(g.Years.Count())
}

func (g Geometry) CellHeight() float64 {
	return g.DrawHeight / MonthsPerYear
}

// Place computes the cell of r.
func (g Geometry) Place(r MonthlyReading, base float64) Cell {
	temp := r.Temp(base)
	return Cell{
		MonthlyReading: r,
		Temp:           temp,
		Rounded:        RoundUp(temp),
		Fill:           ColorFor(temp),
		Pos:            svg.NewPos(g.Scales.YearToX(r.Year), g.Scales.MonthToY(r.Month-1)),
		Dim:            svg.NewDim(g.CellWidth(), g.CellHeight()),
	}
}

// Layout places every reading of ds, in the order of the dataset.
func (g Geometry) Layout(ds Dataset) []Cell {
	cells := make([]Cell, 0, len(ds.Readings))
	for _, r := range ds.Readings {
		cells = append(cells, g.Place(r, ds.BaseTemperature))
	}
	return cells
}

// TooltipFor gives the text and the position of the tooltip shown when the
// pointer enters the cell of r.
func TooltipFor(r MonthlyReading, base float64, scales ScalePair) Tooltip {
	pos := svg.NewPos(
		scales.YearToX(r.Year)-tooltipShiftX,
		scales.MonthToY(r.Month-1)-tooltipShiftY,
	)
	return Tooltip{
		Text: TooltipText(r, base),
		Pos:  pos,
	}
}

// TooltipText formats a reading as
//
//	2000 - January
//	8.4°C
//	+ 0.4°C
func TooltipText(r MonthlyReading, base float64) string {
	var (
		temp = RoundUp(r.Temp(base))
		diff = RoundUp(r.Variance)
		str  strings.Builder
	)
	str.WriteString(strconv.Itoa(r.Year))
	str.WriteString(" - ")
	str.WriteString(MonthName(r.Month))
	str.WriteString("\n")
	str.WriteString(FormatTemp(temp))
	str.WriteString("\n")
	if diff > 0 {
		str.WriteString("+ ")
	}
	str.WriteString(FormatTemp(diff))
	return str.String()
}

// FormatTemp writes t with the fewest digits needed, followed by the unit.
func FormatTemp(t float64) string {
	if t == 0 {
		// drop the sign of -0
		t = 0
	}
	return strconv.FormatFloat(t, 'f', -1, 64) + "°C"
}
