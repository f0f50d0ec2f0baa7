package render

import (
	"fmt"
	"io"
	"math"
	"os"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/rustyeddy/klineviz/internal/browser"
)

const pixelsPerInch = 96

// HTMLRenderer writes an interactive line chart page with a scrollable time
// axis. With Open set the page is launched in the browser after writing.
type HTMLRenderer struct {
	Path   string // empty writes a temp file
	Width  float64
	Height float64
	Open   bool

	// Opener replaces browser.Open; tests use it to capture the path.
	Opener func(string) error

	written string
}

// Written is the path of the last page rendered.
func (r *HTMLRenderer) Written() string {
	return r.written
}

func (r *HTMLRenderer) Render(c Chart) error {
	if !c.IsBar() && len(c.Lines) == 0 {
		return fmt.Errorf("chart %q has no lines", c.Title)
	}

	var (
		f   *os.File
		err error
	)
	if r.Path == "" {
		f, err = os.CreateTemp("", "klineviz-*.html")
	} else {
		f, err = os.Create(r.Path)
	}
	if err != nil {
		return fmt.Errorf("create chart page: %w", err)
	}
	if err := r.write(c, f); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", f.Name(), err)
	}
	if err := f.Close(); err != nil {
		return err
	}
	r.written = f.Name()

	if !r.Open {
		return nil
	}
	open := r.Opener
	if open == nil {
		open = browser.Open
	}
	if err := open(r.written); err != nil {
		return fmt.Errorf("open %s: %w", r.written, err)
	}
	return nil
}

func (r *HTMLRenderer) write(c Chart, w io.Writer) error {
	width, height := r.Width, r.Height
	if width <= 0 {
		width = 12
	}
	if height <= 0 {
		height = 6
	}
	global := []charts.GlobalOpts{
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: c.Title,
			Width:     fmt.Sprintf("%dpx", int(width*pixelsPerInch)),
			Height:    fmt.Sprintf("%dpx", int(height*pixelsPerInch)),
		}),
		charts.WithTitleOpts(opts.Title{Title: c.Title, Subtitle: c.Subtitle}),
		charts.WithYAxisOpts(opts.YAxis{Name: c.YLabel, Type: "value"}),
	}

	if c.IsBar() {
		return barChart(c, global).Render(w)
	}
	return lineChart(c, global).Render(w)
}

func lineChart(c Chart, global []charts.GlobalOpts) *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(global...)
	line.SetGlobalOptions(
		charts.WithXAxisOpts(opts.XAxis{Name: c.XLabel, Type: "time"}),
		charts.WithTooltipOpts(opts.Tooltip{Trigger: "axis"}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true), Top: "bottom"}),
		charts.WithDataZoomOpts(
			opts.DataZoom{Type: "inside"},
			opts.DataZoom{Type: "slider"},
		),
	)

	for _, l := range c.Lines {
		data := make([]opts.LineData, len(l.Points))
		for i, p := range l.Points {
			data[i] = opts.LineData{Value: []interface{}{p.Time.UnixMilli(), p.Value}}
		}

		lw := l.Width
		if lw <= 0 {
			lw = defaultLineWidth
		}
		style := opts.LineStyle{Color: hexFor(l.Group), Width: float32(lw)}
		if l.Dashed {
			style.Type = "dashed"
		}
		line.AddSeries(l.Label, data,
			charts.WithLineStyleOpts(style),
			charts.WithItemStyleOpts(opts.ItemStyle{Color: hexFor(l.Group)}),
			charts.WithLineChartOpts(opts.LineChart{ShowSymbol: opts.Bool(false)}),
		)
	}
	return line
}

// barChart draws one category per bar, labeled with its value in percent.
func barChart(c Chart, global []charts.GlobalOpts) *charts.Bar {
	bar := charts.NewBar()
	bar.SetGlobalOptions(global...)
	bar.SetGlobalOptions(
		charts.WithXAxisOpts(opts.XAxis{Name: c.XLabel, Type: "category"}),
		charts.WithTooltipOpts(opts.Tooltip{Trigger: "item"}),
	)

	labels := make([]string, len(c.Bars))
	data := make([]opts.BarData, len(c.Bars))
	for i, b := range c.Bars {
		labels[i] = b.Label
		data[i] = opts.BarData{
			Name:      b.Label,
			Value:     math.Round(b.Value*100) / 100,
			ItemStyle: &opts.ItemStyle{Color: hexFor(b.Group)},
		}
	}
	bar.SetXAxis(labels).AddSeries(c.YLabel, data,
		charts.WithLabelOpts(opts.Label{Show: opts.Bool(true), Position: "top", Formatter: "{c}%"}),
	)
	return bar
}
