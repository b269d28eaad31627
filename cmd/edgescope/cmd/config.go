package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/edgescope/edgescope/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration files",
	Long: `Manage edgescope configuration files.

Subcommands:
  init      - Generate a config file with default settings
  show      - Print the active configuration
  validate  - Validate a config file

Examples:
  edgescope config init edgescope.yaml
  edgescope --config edgescope.yaml config show
  edgescope config validate edgescope.yaml`,
}

var configInitCmd = &cobra.Command{
	Use:   "init <path>",
	Short: "Generate a config file with default settings",
	Args:  cobra.ExactArgs(1),
	RunE:  runConfigInit,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the active configuration",
	Args:  cobra.NoArgs,
	RunE:  runConfigShow,
}

var configValidateCmd = &cobra.Command{
	Use:   "validate <path>",
	Short: "Validate a config file",
	Args:  cobra.ExactArgs(1),
	RunE:  runConfigValidate,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configValidateCmd)
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	cfg := config.Default()
	if err := cfg.SaveToFile(args[0]); err != nil {
		return fmt.Errorf("save config: %w", err)
	}
	fmt.Printf("✓ Wrote default config to %s\n", args[0])
	return nil
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	fmt.Print(string(data))
	return nil
}

func runConfigValidate(cmd *cobra.Command, args []string) error {
	if _, err := config.LoadFromFile(args[0]); err != nil {
		return err
	}
	fmt.Printf("✓ %s is valid\n", args[0])
	return nil
}
