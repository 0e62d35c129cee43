package heatmap

import (
	"math"
	"time"
)

type ScalerConstraint interface {
	~float64 | time.Time
}

type Domain[T ScalerConstraint] interface {
	Diff(T) float64
	Extend() float64
	Values(int) []T
}

type numberDomain struct {
	fst float64
	lst float64
}

func NumberDomain(f, t float64) Domain[float64] {
	return numberDomain{
		fst: f,
		lst: t,
	}
}

func (n numberDomain) Diff(v float64) float64 {
	return v - n.fst
}

func (n numberDomain) Extend() float64 {
	return n.lst - n.fst
}

// Values returns round values (multiples of 1, 2 or 5 times a power of ten)
// lying inside the domain. c is a hint for the number of values wanted.
func (n numberDomain) Values(c int) []float64 {
	lo, hi := n.fst, n.lst
	if lo > hi {
		lo, hi = hi, lo
	}
	if c <= 0 || lo == hi {
		return []float64{lo}
	}
	var (
		step = tickStep(lo, hi, c)
		all  []float64
	)
	if step >= 1 {
		fst, lst := math.Ceil(lo/step), math.Floor(hi/step)
		for i := fst; i <= lst; i++ {
			all = append(all, i*step)
		}
		return all
	}
	inv := math.Round(1 / step)
	fst, lst := math.Ceil(lo*inv), math.Floor(hi*inv)
	for i := fst; i <= lst; i++ {
		all = append(all, i/inv)
	}
	return all
}

var (
	e10 = math.Sqrt(50)
	e5  = math.Sqrt(10)
	e2  = math.Sqrt(2)
)

func tickStep(lo, hi float64, count int) float64 {
	var (
		raw  = (hi - lo) / float64(count)
		step = math.Pow(10, math.Floor(math.Log10(raw)))
		err  = raw / step
	)
	switch {
	case err >= e10:
		step *= 10
	case err >= e5:
		step *= 5
	case err >= e2:
		step *= 2
	default:
	}
	return step
}

type timeDomain struct {
	fst time.Time
	lst time.Time
}

func TimeDomain(f, t time.Time) Domain[time.Time] {
	return timeDomain{
		fst: f,
		lst: t,
	}
}

func (t timeDomain) Diff(v time.Time) float64 {
	diff := v.Sub(t.fst)
	return float64(diff)
}

func (t timeDomain) Extend() float64 {
	diff := t.lst.Sub(t.fst)
	return float64(diff)
}

func (t timeDomain) Values(c int) []time.Time {
	if c <= 0 {
		return []time.Time{t.fst}
	}
	var (
		all  = make([]time.Time, c)
		step = t.Extend() / float64(c)
	)
	for i := 0; i < c; i++ {
		all[i] = t.fst.Add(time.Duration(float64(i) * step))
	}
	all = append(all, t.lst)
	return all
}

type Range struct {
	F float64
	T float64
}

func NewRange(f, t float64) Range {
	return Range{
		F: f,
		T: t,
	}
}

func (r Range) Len() float64 {
	return r.T - r.F
}

func (r Range) Max() float64 {
	return r.T
}

func (r Range) Min() float64 {
	return r.F
}

// Scaler maps a value of its domain to a pixel position inside its range.
type Scaler[T ScalerConstraint] interface {
	Scale(T) float64
	Space() float64
	Values(int) []T
	Max() float64
	Min() float64
}

type numberScaler struct {
	Range
	Domain[float64]
}

func NumberScaler(dom Domain[float64], rg Range) Scaler[float64] {
	return numberScaler{
		Range:  rg,
		Domain: dom,
	}
}

func (n numberScaler) Scale(v float64) float64 {
	return n.F + n.Diff(v)*n.Space()
}

func (n numberScaler) Space() float64 {
	return n.Len() / n.Extend()
}

type timeScaler struct {
	Range
	Domain[time.Time]
}

func TimeScaler(dom Domain[time.Time], rg Range) Scaler[time.Time] {
	return timeScaler{
		Range:  rg,
		Domain: dom,
	}
}

func (s timeScaler) Scale(v time.Time) float64 {
	return s.F + s.Diff(v)*s.Space()
}

func (s timeScaler) Space() float64 {
	return s.Len() / s.Extend()
}

// ScalePair holds the two scales shared by the cells and the axis of a
// heatmap. It is never modified once built.
type ScalePair struct {
	X Scaler[float64]
	Y Scaler[time.Time]
}

// YearToX gives the left edge of the column of the given year.
func (p ScalePair) YearToX(year int) float64 {
	return p.X.Scale(float64(year))
}

// MonthToY gives the top edge of the row of the given month index (0 for
// January). Rows start on the last day of the previous month of the
// synthetic year.
func (p ScalePair) MonthToY(month int) float64 {
	return p.Y.Scale(monthDate(month))
}

func monthDate(month int) time.Time {
	return time.Date(syntheticYear, time.Month(month+1), 0, 0, 0, 0, 0, time.UTC)
}

const syntheticYear = 1900

var (
	yearStarts = monthDate(0)
	yearEnds   = monthDate(MonthsPerYear)
)

// BuildScales computes the scales of a heatmap drawn on a surface of
// width×height pixels with the given padding on every side.
//
// The horizontal domain goes from the first year to the year after the
// last one so that the last column keeps room for its cells.
func BuildScales(readings []MonthlyReading, padding, height, width float64) (ScalePair, YearRange, error) {
	var pair ScalePair
	yr, err := Years(readings)
	if err != nil {
		return pair, yr, err
	}
	pair.X = NumberScaler(NumberDomain(float64(yr.Min), float64(yr.Max+1)), NewRange(padding, width-padding))
	pair.Y = TimeScaler(TimeDomain(yearStarts, yearEnds), NewRange(padding, height-padding))
	return pair, yr, nil
}

// monthTicks returns the first day of every month of the synthetic year.
func monthTicks() []time.Time {
	all := make([]time.Time, 0, MonthsPerYear)
	for m := time.January; m <= time.December; m++ {
		all = append(all, time.Date(syntheticYear, m, 1, 0, 0, 0, 0, time.UTC))
	}
	return all
}
