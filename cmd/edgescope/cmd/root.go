package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/edgescope/edgescope/config"
	"github.com/edgescope/edgescope/journal"
)

var rootCmd = &cobra.Command{
	Use:   "edgescope",
	Short: "A personal trading journal with a similarity-based judgment engine",
	Long: `EdgeScope is a personal trading journal for Nikkei 225 futures.

It records planned entries together with a categorical market fingerprint,
records actual outcomes, and judges new setups by summarizing how similar
historical setups played out.

Subcommands:
  entry    - Record or edit a planned entry (judged on save)
  judge    - Judge a setup without saving anything
  exit     - Record the outcome of a trade
  journal  - List, show, delete journal records
  stats    - Aggregate performance statistics
  export   - Export the journal to JSON or CSV
  import   - Import and merge a JSON or CSV export

Judgments summarize your own history. They are not financial advice.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

var (
	cfgPath string
	dbPath  string
)

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "", "path to config file (YAML or JSON)")
	rootCmd.PersistentFlags().StringVarP(&dbPath, "db", "d", "", "path to SQLite journal DB (overrides config)")
}

// loadConfig returns the active configuration: the file named by --config,
// or the built-in defaults when no file is given.
func loadConfig() (*config.Config, error) {
	if cfgPath == "" {
		return config.Default(), nil
	}
	cfg, err := config.LoadFromFile(cfgPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}

// openJournal opens the SQLite journal at the configured path. --db wins
// over the config file. Caller closes.
func openJournal() (*journal.SQLite, *config.Config, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, nil, err
	}

	path := cfg.Journal.DBPath
	if dbPath != "" {
		path = dbPath
	}

	j, err := journal.NewSQLite(path)
	if err != nil {
		return nil, nil, fmt.Errorf("open db: %w", err)
	}
	return j, cfg, nil
}
