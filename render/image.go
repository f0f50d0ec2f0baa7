package render

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

const defaultLineWidth = 1.0

// ImageRenderer writes a static chart file. Raster formats honor DPI;
// vector formats ignore it.
type ImageRenderer struct {
	Path   string
	Format string  // png, jpg, tif, svg, pdf or eps; empty uses the path extension
	DPI    int
	Width  float64 // inches
	Height float64 // inches
}

func (r *ImageRenderer) Render(c Chart) error {
	p, err := buildPlot(c)
	if err != nil {
		return err
	}

	f, err := os.Create(r.Path)
	if err != nil {
		return fmt.Errorf("create chart file: %w", err)
	}
	if err := r.write(p, f); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", r.Path, err)
	}
	return f.Close()
}

// Written is the path the chart is written to.
func (r *ImageRenderer) Written() string {
	return r.Path
}

func (r *ImageRenderer) format() string {
	format := strings.ToLower(r.Format)
	if format == "" {
		format = strings.TrimPrefix(strings.ToLower(filepath.Ext(r.Path)), ".")
	}
	switch format {
	case "jpeg":
		return "jpg"
	case "tiff":
		return "tif"
	}
	return format
}

func (r *ImageRenderer) write(p *plot.Plot, w io.Writer) error {
	width := vg.Length(r.Width) * vg.Inch
	height := vg.Length(r.Height) * vg.Inch

	var wt io.WriterTo
	switch format := r.format(); format {
	case "png", "jpg", "tif":
		dpi := r.DPI
		if dpi <= 0 {
			dpi = vgimg.DefaultDPI
		}
		canvas := vgimg.NewWith(vgimg.UseWH(width, height), vgimg.UseDPI(dpi))
		p.Draw(draw.New(canvas))
		switch format {
		case "png":
			wt = vgimg.PngCanvas{Canvas: canvas}
		case "jpg":
			wt = vgimg.JpegCanvas{Canvas: canvas}
		default:
			wt = vgimg.TiffCanvas{Canvas: canvas}
		}
	case "svg", "pdf", "eps":
		var err error
		wt, err = p.WriterTo(width, height, format)
		if err != nil {
			return err
		}
	default:
		return fmt.Errorf("unsupported image format %q", format)
	}

	_, err := wt.WriteTo(w)
	return err
}

func buildPlot(c Chart) (*plot.Plot, error) {
	if !c.IsBar() && len(c.Lines) == 0 {
		return nil, fmt.Errorf("chart %q has no lines", c.Title)
	}

	p := plot.New()
	p.Title.Text = c.Title
	if c.Subtitle != "" {
		p.Title.Text += "\n" + c.Subtitle
	}
	p.X.Label.Text = c.XLabel
	p.Y.Label.Text = c.YLabel
	p.Legend.Top = true
	p.Legend.Left = true
	p.Add(plotter.NewGrid())

	if c.IsBar() {
		return p, addBars(p, c.Bars)
	}

	p.X.Tick.Marker = plot.TimeTicks{Format: "2006-01-02"}
	if start, end, ok := c.Bounds(); ok && end.After(start) {
		p.X.Min = float64(start.Unix())
		p.X.Max = float64(end.Unix())
	}

	for _, l := range c.Lines {
		if len(l.Points) == 0 {
			continue
		}
		xys := make(plotter.XYs, len(l.Points))
		for i, pt := range l.Points {
			xys[i].X = float64(pt.Time.Unix())
			xys[i].Y = pt.Value
		}
		line, err := plotter.NewLine(xys)
		if err != nil {
			return nil, fmt.Errorf("line %s: %w", l.Label, err)
		}
		line.Color = colorFor(l.Group)
		width := l.Width
		if width <= 0 {
			width = defaultLineWidth
		}
		line.Width = vg.Points(width)
		if l.Dashed {
			line.Dashes = []vg.Length{vg.Points(6), vg.Points(3)}
		}
		p.Add(line)
		p.Legend.Add(l.Label, line)
	}
	return p, nil
}

func addBars(p *plot.Plot, bars []Bar) error {
	labels := make([]string, len(bars))
	for i, b := range bars {
		bc, err := plotter.NewBarChart(plotter.Values{b.Value}, vg.Points(24))
		if err != nil {
			return fmt.Errorf("bar %s: %w", b.Label, err)
		}
		bc.XMin = float64(i)
		bc.Color = colorFor(b.Group)
		bc.LineStyle.Width = 0
		p.Add(bc)
		labels[i] = b.Label
	}
	p.NominalX(labels...)
	return nil
}
