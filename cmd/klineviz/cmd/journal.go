package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/klineviz/journal"
	"github.com/rustyeddy/klineviz/pkg/id"
	"github.com/rustyeddy/klineviz/report"
)

var journalCmd = &cobra.Command{
	Use:   "journal",
	Short: "Query the run journal",
	Long: `Query series summaries recorded in the SQLite run journal.

Subcommands:
  run     - List the series of one run
  latest  - List the series of the most recent run
  symbol  - List the recorded history of one symbol

Examples:
  klineviz journal latest
  klineviz journal run 01HMZ3Q6W3T8M4Y0X9B2C7D5EF
  klineviz journal symbol BTC --limit 10 --db runs.sqlite`,
}

var journalRunCmd = &cobra.Command{
	Use:   "run <run-id>",
	Short: "List the series of one run",
	Args:  cobra.ExactArgs(1),
	RunE:  runJournalRun,
}

var journalLatestCmd = &cobra.Command{
	Use:   "latest",
	Short: "List the series of the most recent run",
	Args:  cobra.NoArgs,
	RunE:  runJournalLatest,
}

var journalSymbolCmd = &cobra.Command{
	Use:   "symbol <symbol>",
	Short: "List the recorded history of one symbol",
	Args:  cobra.ExactArgs(1),
	RunE:  runJournalSymbol,
}

var (
	journalDBPath string
	journalLimit  int
)

func init() {
	rootCmd.AddCommand(journalCmd)
	journalCmd.AddCommand(journalRunCmd)
	journalCmd.AddCommand(journalLatestCmd)
	journalCmd.AddCommand(journalSymbolCmd)

	journalCmd.PersistentFlags().StringVarP(&journalDBPath, "db", "d", "", "path to SQLite journal DB (default journal.path from config)")
	journalSymbolCmd.Flags().IntVarP(&journalLimit, "limit", "n", 20, "maximum rows, 0 for all")
}

func openJournal() (*journal.SQLite, error) {
	path := journalDBPath
	if path == "" {
		if cfg.Journal.Type != "sqlite" {
			return nil, fmt.Errorf("no SQLite journal configured; pass --db")
		}
		path = cfg.Journal.Path
	}
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	j, err := journal.NewSQLite(path)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	return j, nil
}

func runJournalRun(cmd *cobra.Command, args []string) error {
	started, err := id.Time(args[0])
	if err != nil {
		return err
	}

	j, err := openJournal()
	if err != nil {
		return err
	}
	defer j.Close()

	recs, err := j.ListRun(args[0])
	if err != nil {
		return fmt.Errorf("query run: %w", err)
	}
	if len(recs) == 0 {
		return fmt.Errorf("run %s not found", args[0])
	}
	fmt.Printf("Run %s started %s\n", args[0], started.Format(time.RFC3339))
	report.Records(os.Stdout, recs)
	return nil
}

func runJournalLatest(cmd *cobra.Command, args []string) error {
	j, err := openJournal()
	if err != nil {
		return err
	}
	defer j.Close()

	runID, err := j.LatestRunID()
	if err != nil {
		return err
	}
	recs, err := j.ListRun(runID)
	if err != nil {
		return fmt.Errorf("query run: %w", err)
	}
	report.Records(os.Stdout, recs)
	return nil
}

func runJournalSymbol(cmd *cobra.Command, args []string) error {
	j, err := openJournal()
	if err != nil {
		return err
	}
	defer j.Close()

	recs, err := j.ListSymbol(args[0], journalLimit)
	if err != nil {
		return fmt.Errorf("query symbol: %w", err)
	}
	report.Records(os.Stdout, recs)
	return nil
}
