package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

const version = "1.0.0"

var versionCmd = &cobra.Command{
	Use:         "version",
	Short:       "Print the version number",
	Long:        `Display the current version of the klineviz CLI.`,
	Annotations: map[string]string{"config": "none"},
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("klineviz version %s\n", version)
		fmt.Println("Kline charting for cryptocurrency series")
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
