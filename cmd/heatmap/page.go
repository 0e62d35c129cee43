package main

import (
	"bytes"
	"html/template"
	"io"

	"github.com/midbel/heatmap"
)

const pageTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>
body { font-family: sans-serif; margin: 2em; }
#description { color: #444; }
</style>
</head>
<body>
<h1 id="title">{{.Title}}</h1>
<h3 id="description">{{.Description}}</h3>
{{.Chart}}
{{.Legend}}
</body>
</html>
`

var page = template.Must(template.New("page").Parse(pageTemplate))

type pageData struct {
	Title       string
	Description string
	Chart       template.HTML
	Legend      template.HTML
}

func writePage(w io.Writer, ch heatmap.Chart, legend heatmap.Legend) error {
	var chart, lg bytes.Buffer
	if err := ch.Embed(&chart); err != nil {
		return err
	}
	if err := legend.Embed(&lg); err != nil {
		return err
	}
	data := pageData{
		Title:       ch.Title,
		Description: describe(ch),
		Chart:       template.HTML(chart.String()),
		Legend:      template.HTML(lg.String()),
	}
	return page.Execute(w, data)
}

func describe(ch heatmap.Chart) string {
	var buf bytes.Buffer
	buf.WriteString(heatmap.YearFormat(float64(ch.Years.Min)))
	buf.WriteString(" - ")
	buf.WriteString(heatmap.YearFormat(float64(ch.Years.Max)))
	buf.WriteString(": base temperature ")
	buf.WriteString(heatmap.FormatTemp(ch.Base))
	return buf.String()
}
