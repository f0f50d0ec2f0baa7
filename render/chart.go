// Package render draws labeled time series as 2D line charts.
//
// The workflows build a Chart; a Renderer turns it into an artifact. Image
// output goes through gonum/plot, interactive output through go-echarts.
package render

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/rustyeddy/klineviz/config"
)

// Point is one sample of a line.
type Point struct {
	Time  time.Time
	Value float64
}

// Line is one labeled series on the chart. Width is in points; zero means
// the renderer default. Lines with the same Group are drawn in one color.
type Line struct {
	Label  string
	Group  int
	Points []Point
	Width  float64
	Dashed bool
}

// Bar is one labeled category of a bar chart.
type Bar struct {
	Label string
	Group int
	Value float64
}

// Chart is everything a renderer needs to draw a figure. A chart with Bars
// is drawn as a bar chart and its Lines are ignored.
type Chart struct {
	Title    string
	Subtitle string
	XLabel   string
	YLabel   string
	Lines    []Line
	Bars     []Bar
}

// IsBar reports whether c is drawn as a bar chart.
func (c Chart) IsBar() bool {
	return len(c.Bars) > 0
}

// Bounds returns the earliest and latest time across all lines.
func (c Chart) Bounds() (start, end time.Time, ok bool) {
	for _, l := range c.Lines {
		for _, p := range l.Points {
			if !ok || p.Time.Before(start) {
				start = p.Time
			}
			if !ok || p.Time.After(end) {
				end = p.Time
			}
			ok = true
		}
	}
	return start, end, ok
}

type Renderer interface {
	Render(Chart) error
}

// Artifact is implemented by renderers that write a file.
type Artifact interface {
	Written() string
}

// New picks a renderer for the output config. "html" output, and "show"
// mode, produce an interactive page; everything else is an image file.
func New(out config.OutputConfig) (Renderer, error) {
	format := strings.ToLower(out.Format)
	if out.Mode == config.ModeShow || format == "html" {
		path := out.Path
		if path != "" && filepath.Ext(path) == "" {
			path += ".html"
		}
		return &HTMLRenderer{
			Path:   path,
			Width:  out.Width,
			Height: out.Height,
			Open:   out.Mode == config.ModeShow,
		}, nil
	}
	if out.Path == "" {
		return nil, fmt.Errorf("image output needs a path")
	}
	return &ImageRenderer{
		Path:   out.Path,
		Format: format,
		DPI:    out.DPI,
		Width:  out.Width,
		Height: out.Height,
	}, nil
}
