package heatmap

import (
	"bytes"
	"strings"
	"testing"

	"github.com/midbel/svg"
)

func renderAxis(a Axis, left, top float64) string {
	var (
		buf bytes.Buffer
		el  = a.Render(left, top)
	)
	el.Render(&buf)
	return buf.String()
}

func TestNumberAxis_Render(t *testing.T) {
	ch, err := Draw(sampleDataset(), DefaultCanvas())
	if err != nil {
		t.Fatalf("Draw() = %v; want nil", err)
	}
	out := renderAxis(ch.Bottom, 0, ch.Height-ch.Padding)
	if got, want := strings.Count(out, `class="tick"`), len(ch.Bottom.Domain); got != want {
		t.Errorf("%d ticks rendered; want %d", got, want)
	}
	if !strings.Contains(out, `class="domain"`) {
		t.Errorf("domain line not rendered")
	}
	if !strings.Contains(out, `text-anchor="middle"`) {
		t.Errorf("year labels should be centered on their tick")
	}
}

func TestTimeAxis_Render(t *testing.T) {
	ch, err := Draw(sampleDataset(), DefaultCanvas())
	if err != nil {
		t.Fatalf("Draw() = %v; want nil", err)
	}
	out := renderAxis(ch.Left, ch.Padding, 0)
	if got := strings.Count(out, `class="tick"`); got != MonthsPerYear {
		t.Errorf("%d ticks rendered; want %d", got, MonthsPerYear)
	}
	if !strings.Contains(out, `text-anchor="end"`) {
		t.Errorf("month labels should end at their tick")
	}
}

func TestAxis_NoDomain(t *testing.T) {
	ch, err := Draw(sampleDataset(), DefaultCanvas())
	if err != nil {
		t.Fatalf("Draw() = %v; want nil", err)
	}
	axis := ch.Bottom
	axis.Domain = nil
	out := renderAxis(axis, 0, 0)
	if strings.Contains(out, `class="tick"`) {
		t.Errorf("ticks rendered without domain")
	}
}

func TestLineTick(t *testing.T) {
	stroke := svg.NewStroke("black", 1)
	bottom := lineTick(OrientBottom, 6, stroke)
	if bottom.Ends.X != 0 || bottom.Ends.Y != 6 {
		t.Errorf("bottom tick ends at %+v; want {X:0 Y:6}", bottom.Ends)
	}
	left := lineTick(OrientLeft, 6, stroke)
	if left.Ends.X != -6 || left.Ends.Y != 0 {
		t.Errorf("left tick ends at %+v; want {X:-6 Y:0}", left.Ends)
	}
}
