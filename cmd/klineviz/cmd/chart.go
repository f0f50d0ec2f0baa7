package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/rustyeddy/klineviz/config"
	"github.com/rustyeddy/klineviz/internal/app"
)

type outputFlags struct {
	out    string
	format string
	dpi    int
	show   bool
}

func (o *outputFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&o.out, "out", "o", "", "save the chart to this path instead of showing it")
	cmd.Flags().StringVar(&o.format, "format", "", "output format: png, jpg, tif, svg, pdf, eps or html")
	cmd.Flags().IntVar(&o.dpi, "dpi", 0, "resolution of raster output")
	cmd.Flags().BoolVar(&o.show, "show", false, "open the chart in the browser")
}

// apply overrides cfg.Output with the flags the user set. Without --format
// the format follows the extension of --out.
func (o *outputFlags) apply(cmd *cobra.Command, c *config.Config) error {
	f := cmd.Flags()
	if f.Changed("out") {
		c.Output.Path = o.out
		c.Output.Mode = config.ModeSave
		if ext := strings.TrimPrefix(filepath.Ext(o.out), "."); ext != "" {
			c.Output.Format = strings.ToLower(ext)
		}
	}
	if f.Changed("format") {
		c.Output.Format = o.format
	}
	if f.Changed("dpi") {
		c.Output.DPI = o.dpi
	}
	if f.Changed("show") && o.show {
		c.Output.Mode = config.ModeShow
	}
	return c.Validate()
}

func runWorkflow(name string) error {
	r, err := app.New(cfg, log, os.Stdout)
	if err != nil {
		return err
	}
	defer func() {
		if err := r.Close(); err != nil {
			log.Warn("close journal", zap.Error(err))
		}
	}()

	o, err := r.Run(name)
	if err != nil {
		return err
	}
	if o.Artifact != "" {
		fmt.Printf("✓ Chart written: %s\n", o.Artifact)
	}
	for _, p := range o.Exports {
		fmt.Printf("✓ Points exported: %s\n", p)
	}
	return nil
}
