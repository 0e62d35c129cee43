package heatmap

import (
	"fmt"
	"image/color"
	"math"
	"strconv"
)

type RGB struct {
	R uint8
	G uint8
	B uint8
}

func (c RGB) String() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", c.R, c.G, c.B)
}

func (c RGB) RGBA() color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xff}
}

// Bucket associates a color to the temperatures strictly lower than Limit.
// The last bucket of a scale has an infinite limit.
type Bucket struct {
	Limit float64
	Color RGB
}

type Thresholds []Bucket

var Temperatures Thresholds

func init() {
	var (
		limits = []float64{3.9, 5, 6.1, 7.2, 8.3, 9.5, 10.6, 11.7, math.Inf(1)}
		colors = splitColorString("0b1aee456aee849df9b5c3f6e8f09af2f210ff9e28ff7328ec0423")
	)
	for i := range limits {
		Temperatures = append(Temperatures, Bucket{
			Limit: limits[i],
			Color: colors[i],
		})
	}
}

// Color selects the bucket of temp once rounded up to one decimal.
func (t Thresholds) Color(temp float64) RGB {
	temp = RoundUp(temp)
	for _, b := range t {
		if temp < b.Limit {
			return b.Color
		}
	}
	var zero RGB
	if n := len(t); n > 0 {
		return t[n-1].Color
	}
	return zero
}

// ColorFor gives the fill of a cell whose absolute temperature is temp.
func ColorFor(temp float64) RGB {
	return Temperatures.Color(temp)
}

// RoundUp rounds v up to one decimal.
func RoundUp(v float64) float64 {
	v = math.Ceil(v*10) / 10
	if v == 0 {
		return 0
	}
	return v
}

func splitColorString(str string) []RGB {
	var arr []RGB
	for i := 0; i+6 <= len(str); i += 6 {
		n, err := strconv.ParseUint(str[i:i+6], 16, 32)
		if err != nil {
			panic(fmt.Sprintf("%s: invalid color", str[i:i+6]))
		}
		arr = append(arr, RGB{
			R: uint8(n >> 16),
			G: uint8(n >> 8),
			B: uint8(n),
		})
	}
	return arr
}
