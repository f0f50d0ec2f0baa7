package cmd

import (
	"github.com/spf13/cobra"

	"github.com/rustyeddy/klineviz/workflow"
)

var changeCmd = &cobra.Command{
	Use:   "change",
	Short: "Chart each symbol's close change over a date range",
	Long: `Compare the first and last close of every configured symbol inside a
date range and draw the percent change as one bar per symbol. Bounds are
inclusive; a bare date for --to covers that whole day. Omitting a bound
leaves that side of the range open.

Examples:
  klineviz change
  klineviz change --from 2024-01-01 --to 2024-03-31 --out q1.html`,
	Args: cobra.NoArgs,
	RunE: runChange,
}

var (
	changeOutput outputFlags
	changeFrom   string
	changeTo     string
)

func init() {
	rootCmd.AddCommand(changeCmd)
	changeOutput.register(changeCmd)
	changeCmd.Flags().StringVar(&changeFrom, "from", "", "first day of the range, YYYY-MM-DD or RFC 3339 (default from config)")
	changeCmd.Flags().StringVar(&changeTo, "to", "", "last day of the range, YYYY-MM-DD or RFC 3339 (default from config)")
}

func runChange(cmd *cobra.Command, args []string) error {
	if cmd.Flags().Changed("from") {
		cfg.Change.From = changeFrom
	}
	if cmd.Flags().Changed("to") {
		cfg.Change.To = changeTo
	}
	if err := changeOutput.apply(cmd, cfg); err != nil {
		return err
	}
	return runWorkflow(workflow.NameChange)
}
