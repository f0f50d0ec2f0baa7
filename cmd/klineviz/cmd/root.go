package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/rustyeddy/klineviz/config"
	"github.com/rustyeddy/klineviz/logger"
)

var (
	cfgFile string

	cfg *config.Config
	log = zap.NewNop()
)

var rootCmd = &cobra.Command{
	Use:   "klineviz",
	Short: "Chart and compare cryptocurrency kline series",
	Long: `klineviz loads daily kline CSV files for a set of symbols and charts them.

It provides:
  - movement: close prices drawn with line weight equal to each series'
    mean proportional daily move
  - trends:   min-max normalized closes with a trailing moving average
  - change:   first-to-last close change per symbol over a date range,
    drawn as bars

Charts open in the browser or are saved as PNG, JPEG, TIFF, SVG, PDF, EPS
or HTML. Runs can be journaled to CSV or SQLite and derived points exported
as CSV, JSON or Parquet.`,
	SilenceUsage:       true,
	SilenceErrors:      true,
	PersistentPreRunE:  setup,
	PersistentPostRunE: teardown,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		log.Error("command failed", zap.Error(err))
		fmt.Fprintln(os.Stderr, "Error:", err)
	}
	return err
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&cfgFile, "config", "c", "", "config file (default is ./configs/klineviz.yaml, $HOME/.configs/klineviz.yaml or ./klineviz.yaml)")
	pf.String("log-level", "", "log level: debug, info, warn or error")
	pf.String("log-file", "", "also write JSON logs to this rotated file")
}

// setup loads the configuration and builds the logger. Commands that only
// deal with config files skip it.
func setup(cmd *cobra.Command, args []string) error {
	if cmd.Annotations["config"] == "none" {
		return nil
	}

	v, err := config.NewViper(cfgFile)
	if err != nil {
		return err
	}
	pf := rootCmd.PersistentFlags()
	if err := v.BindPFlag("log.level", pf.Lookup("log-level")); err != nil {
		return err
	}
	if err := v.BindPFlag("log.output_file", pf.Lookup("log-file")); err != nil {
		return err
	}

	cfg, err = config.FromViper(v, cfgFile != "")
	if err != nil {
		return err
	}
	l, err := logger.New(cfg.Log)
	if err != nil {
		return err
	}
	log = l
	if used := v.ConfigFileUsed(); used != "" {
		log.Debug("config loaded", zap.String("path", used))
	}
	return nil
}

func teardown(cmd *cobra.Command, args []string) error {
	_ = log.Sync()
	return nil
}
