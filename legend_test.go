package heatmap

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestLegend_Labels(t *testing.T) {
	lg := DefaultCanvas().LegendSurface()
	want := []string{"3.9", "5", "6.1", "7.2", "8.3", "9.5", "10.6", "11.7"}
	if diff := cmp.Diff(want, lg.Labels()); diff != "" {
		t.Errorf("labels mismatch (-want +got):\n%s", diff)
	}
}

func TestLegend_Swatch(t *testing.T) {
	var (
		lg    = DefaultCanvas().LegendSurface()
		width = (DefaultLegendWidth - 2*legendPadding) / float64(len(Temperatures))
	)
	for i := range lg.Scale {
		pos, dim := lg.Swatch(i)
		if want := legendPadding + float64(i)*width; !almostEqual(pos.X, want) {
			t.Errorf("swatch %d: x = %f; want %f", i, pos.X, want)
		}
		if !almostEqual(dim.W, width) {
			t.Errorf("swatch %d: width = %f; want %f", i, dim.W, width)
		}
		if dim.H != DefaultLegendHeight/2 {
			t.Errorf("swatch %d: height = %f; want %d", i, dim.H, DefaultLegendHeight/2)
		}
	}
}

func TestLegend_Render(t *testing.T) {
	var (
		lg  = DefaultCanvas().LegendSurface()
		buf bytes.Buffer
	)
	if err := lg.Render(&buf); err != nil {
		t.Fatalf("render: %v", err)
	}
	out := buf.String()
	if got := strings.Count(out, `class="swatch"`); got != len(Temperatures) {
		t.Errorf("%d swatches rendered; want %d", got, len(Temperatures))
	}
	for _, b := range Temperatures {
		if str := `fill="` + b.Color.String() + `"`; !strings.Contains(out, str) {
			t.Errorf("%s not found in legend", str)
		}
	}
	if !strings.Contains(out, `>11.7</text>`) {
		t.Errorf("last limit not written in legend")
	}
}
