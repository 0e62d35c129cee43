package heatmap

import (
	"errors"

	"github.com/midbel/slices"
)

const MonthsPerYear = 12

var ErrEmptyDataset = errors.New("dataset has no readings")

var monthNames = []string{
	"January",
	"February",
	"March",
	"April",
	"May",
	"June",
	"July",
	"August",
	"September",
	"October",
	"November",
	"December",
}

// MonthName returns the english name of month (1 for January). An empty
// string is returned for values outside of 1-12.
func MonthName(month int) string {
	if month < 1 || month > MonthsPerYear {
		return ""
	}
	return monthNames[month-1]
}

// MonthlyReading is the temperature deviation measured for one month.
type MonthlyReading struct {
	Year     int     `json:"year"`
	Month    int     `json:"month"`
	Variance float64 `json:"variance"`
}

// Temp gives the absolute temperature of the reading.
func (r MonthlyReading) Temp(base float64) float64 {
	return base + r.Variance
}

type Dataset struct {
	BaseTemperature float64          `json:"baseTemperature"`
	Readings        []MonthlyReading `json:"monthlyVariance"`
}

type YearRange struct {
	Min int
	Max int
}

// Count gives the number of years used to size the columns: the distance
// between the first and the last year, never less than 1.
func (y YearRange) Count() int {
	if n := y.Max - y.Min; n > 0 {
		return n
	}
	return 1
}

func (y YearRange) Contains(year int) bool {
	return year >= y.Min && year <= y.Max
}

// Years scans readings for the first and last year.
func Years(readings []MonthlyReading) (YearRange, error) {
	var yr YearRange
	if len(readings) == 0 {
		return yr, ErrEmptyDataset
	}
	fst := slices.Fst(readings)
	yr.Min, yr.Max = fst.Year, fst.Year
	for _, r := range slices.Rest(readings) {
		if r.Year < yr.Min {
			yr.Min = r.Year
		}
		if r.Year > yr.Max {
			yr.Max = r.Year
		}
	}
	return yr, nil
}
