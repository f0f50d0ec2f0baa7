package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/klineviz/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Generate or validate configuration files",
	Long: `Manage klineviz configuration files.

Subcommands:
  init     - Generate a default configuration file
  validate - Validate an existing configuration file

Examples:
  klineviz config init --output klineviz.yaml
  klineviz config validate --file klineviz.yaml`,
}

var configInitCmd = &cobra.Command{
	Use:         "init",
	Short:       "Generate a default configuration file",
	Args:        cobra.NoArgs,
	Annotations: map[string]string{"config": "none"},
	RunE:        runConfigInit,
}

var configValidateCmd = &cobra.Command{
	Use:         "validate",
	Short:       "Validate a configuration file",
	Args:        cobra.NoArgs,
	Annotations: map[string]string{"config": "none"},
	RunE:        runConfigValidate,
}

var (
	configInitOutput   string
	configValidatePath string
)

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configValidateCmd)

	configInitCmd.Flags().StringVarP(&configInitOutput, "output", "o", "klineviz.yaml", "output config file path")
	configValidateCmd.Flags().StringVarP(&configValidatePath, "file", "f", "", "path to config file (required)")
	configValidateCmd.MarkFlagRequired("file")
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	cfg := config.Default()
	if err := cfg.SaveToFile(configInitOutput); err != nil {
		return fmt.Errorf("save config: %w", err)
	}

	fmt.Printf("✓ Created default configuration: %s\n", configInitOutput)
	fmt.Println("\nEdit the symbol paths and run with:")
	fmt.Printf("  klineviz trends --config %s\n", configInitOutput)
	return nil
}

// runConfigValidate checks the file the way a run would see it, with
// KLINEVIZ_* environment overrides applied.
func runConfigValidate(cmd *cobra.Command, args []string) error {
	v, err := config.NewViper(configValidatePath)
	if err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}
	cfg, err := config.FromViper(v, true)
	if err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	fmt.Printf("✓ Configuration valid: %s\n", configValidatePath)
	for _, s := range cfg.Symbols {
		fmt.Printf("  %-6s %s\n", s.Symbol, s.Path)
	}
	fmt.Printf("  Output: %s (%s, %d dpi)\n", cfg.Output.Mode, cfg.Output.Format, cfg.Output.DPI)
	fmt.Printf("  Trend window: %d\n", cfg.Trends.Window)
	if cfg.Change.From != "" || cfg.Change.To != "" {
		fmt.Printf("  Change range: %s to %s\n", cfg.Change.From, cfg.Change.To)
	}
	fmt.Printf("  Journal: %s\n", cfg.Journal.Type)
	return nil
}
