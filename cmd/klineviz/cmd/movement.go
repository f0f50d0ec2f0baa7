package cmd

import (
	"github.com/spf13/cobra"

	"github.com/rustyeddy/klineviz/workflow"
)

var movementCmd = &cobra.Command{
	Use:   "movement",
	Short: "Chart close prices weighted by proportional movement",
	Long: `Plot the close price of every configured symbol over time. Each line is
drawn as thick as the mean of |close - open| / open across the series,
expressed in percent, so volatile assets stand out.

Examples:
  klineviz movement
  klineviz movement --out movement.png --dpi 300`,
	Args: cobra.NoArgs,
	RunE: runMovement,
}

var movementOutput outputFlags

func init() {
	rootCmd.AddCommand(movementCmd)
	movementOutput.register(movementCmd)
}

func runMovement(cmd *cobra.Command, args []string) error {
	if err := movementOutput.apply(cmd, cfg); err != nil {
		return err
	}
	return runWorkflow(workflow.NameMovement)
}
