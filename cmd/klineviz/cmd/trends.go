package cmd

import (
	"github.com/spf13/cobra"

	"github.com/rustyeddy/klineviz/workflow"
)

var trendsCmd = &cobra.Command{
	Use:   "trends",
	Short: "Chart normalized closes with moving averages",
	Long: `Rescale every configured symbol's close prices into [0, 1] and plot them
with a dashed trailing moving average, so trends of very differently
priced assets can be compared on one axis.

Examples:
  klineviz trends
  klineviz trends --window 14 --out trends.svg`,
	Args: cobra.NoArgs,
	RunE: runTrends,
}

var (
	trendsOutput outputFlags
	trendsWindow int
)

func init() {
	rootCmd.AddCommand(trendsCmd)
	trendsOutput.register(trendsCmd)
	trendsCmd.Flags().IntVarP(&trendsWindow, "window", "w", 0, "moving average window in records (default from config)")
}

func runTrends(cmd *cobra.Command, args []string) error {
	if cmd.Flags().Changed("window") {
		cfg.Trends.Window = trendsWindow
	}
	if err := trendsOutput.apply(cmd, cfg); err != nil {
		return err
	}
	return runWorkflow(workflow.NameTrends)
}
