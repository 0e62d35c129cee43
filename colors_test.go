package heatmap

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestTemperatures(t *testing.T) {
	want := []string{
		"rgb(11, 26, 238)",
		"rgb(69, 106, 238)",
		"rgb(132, 157, 249)",
		"rgb(181, 195, 246)",
		"rgb(232, 240, 154)",
		"rgb(242, 242, 16)",
		"rgb(255, 158, 40)",
		"rgb(255, 115, 40)",
		"rgb(236, 4, 35)",
	}
	var got []string
	for _, b := range Temperatures {
		got = append(got, b.Color.String())
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("colors mismatch (-want +got):\n%s", diff)
	}
	if lst := Temperatures[len(Temperatures)-1]; !math.IsInf(lst.Limit, 1) {
		t.Errorf("last limit = %f; want +Inf", lst.Limit)
	}
}

func TestColorFor(t *testing.T) {
	tests := []struct {
		Temp float64
		Want string
	}{
		{Temp: 8.0 - 4.5, Want: "rgb(11, 26, 238)"},
		{Temp: 8.0 + 2.5, Want: "rgb(255, 158, 40)"},
		{Temp: -10, Want: "rgb(11, 26, 238)"},
		{Temp: 3.8, Want: "rgb(11, 26, 238)"},
		{Temp: 3.81, Want: "rgb(69, 106, 238)"},
		{Temp: 3.9, Want: "rgb(69, 106, 238)"},
		{Temp: 8.2, Want: "rgb(232, 240, 154)"},
		{Temp: 8.29, Want: "rgb(242, 242, 16)"},
		{Temp: 11.7, Want: "rgb(236, 4, 35)"},
		{Temp: 25, Want: "rgb(236, 4, 35)"},
	}
	for _, tt := range tests {
		if got := ColorFor(tt.Temp).String(); got != tt.Want {
			t.Errorf("color(%f) = %s; want %s", tt.Temp, got, tt.Want)
		}
	}
}

func TestThresholds_Empty(t *testing.T) {
	var (
		scale Thresholds
		zero  RGB
	)
	if got := scale.Color(10); got != zero {
		t.Errorf("empty scale gives %s; want %s", got, zero)
	}
}

func TestRoundUp(t *testing.T) {
	tests := []struct {
		Value float64
		Want  float64
	}{
		{Value: 0.34, Want: 0.4},
		{Value: 0.3, Want: 0.3},
		{Value: -1.55, Want: -1.5},
		{Value: -0.04, Want: 0},
		{Value: 7, Want: 7},
	}
	for _, tt := range tests {
		got := RoundUp(tt.Value)
		if got != tt.Want {
			t.Errorf("round(%f) = %f; want %f", tt.Value, got, tt.Want)
		}
		if got == 0 && math.Signbit(got) {
			t.Errorf("round(%f) gives negative zero", tt.Value)
		}
	}
}
