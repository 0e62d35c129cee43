package heatmap

import (
	"strconv"

	"github.com/midbel/svg"
)

// CellRenderer turns computed cells into SVG rectangles. Every rectangle
// carries the data needed by the hover script: the tooltip text and its
// offset are computed here, the script only shows them.
type CellRenderer struct {
	Base   float64
	Scales ScalePair
}

func (r CellRenderer) Render(cells []Cell) svg.Element {
	grp := getBaseGroup("cells")
	for _, c := range cells {
		var (
			tip = TooltipFor(c.MonthlyReading, r.Base, r.Scales)
			el  svg.Rect
		)
		el.Class = append(el.Class, "cell")
		el.Title = tip.Text
		el.Pos = c.Pos
		el.Dim = c.Dim
		el.Fill = svg.NewFill(c.Fill.String())
		el.Data = []svg.Datum{
			{Name: "year", Value: c.Year},
			{Name: "month", Value: c.Month - 1},
			{Name: "temp", Value: strconv.FormatFloat(c.Temp, 'f', -1, 64)},
			{Name: "tooltip", Value: tip.Text},
			{Name: "tx", Value: tip.X},
			{Name: "ty", Value: tip.Y},
		}
		grp.Append(el.AsElement())
	}
	return grp.AsElement()
}

func getBaseGroup(id string, class ...string) svg.Group {
	var g svg.Group
	g.Id = id
	g.Class = class
	return g
}

func tooltipElement() svg.Element {
	txt := svg.NewText("")
	txt.Id = "tooltip"
	txt.Font = svg.NewFont(FontSize)
	txt.Baseline = "hanging"
	return txt.AsElement()
}

const hoverCSS = `.cell:hover {
  outline: 2px solid black;
}
#tooltip {
  visibility: hidden;
  pointer-events: none;
}`

func hoverStyle() svg.Element {
	var s svg.Style
	s.Content = hoverCSS
	return s.AsElement()
}

const hoverJS = `(function() {
  var ns = "http://www.w3.org/2000/svg";
  var tip = document.getElementById("tooltip");
  if (!tip) {
    return;
  }
  document.querySelectorAll(".cell").forEach(function(cell) {
    cell.addEventListener("mouseover", function() {
      while (tip.firstChild) {
        tip.removeChild(tip.firstChild);
      }
      cell.getAttribute("data-tooltip").split("\\n").forEach(function(line, i) {
        var span = document.createElementNS(ns, "tspan");
        span.setAttribute("x", 0);
        span.setAttribute("dy", i === 0 ? "0" : "1.2em");
        span.textContent = line;
        tip.appendChild(span);
      });
      var tx = cell.getAttribute("data-tx");
      var ty = cell.getAttribute("data-ty");
      tip.setAttribute("transform", "translate(" + tx + "," + ty + ")");
      tip.setAttribute("data-year", cell.getAttribute("data-year"));
      tip.style.visibility = "visible";
    });
    cell.addEventListener("mouseout", function() {
      tip.style.visibility = "hidden";
    });
  });
})();`

func hoverScript() svg.Element {
	var s svg.Script
	s.Content = hoverJS
	return s.AsElement()
}
