package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"
)

// NewConfigCommand creates the config command group.
func NewConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage CLI configuration",
		Long:  "Manage the trackctl configuration stored in ~/.trackctl/config.yml",
	}

	cmd.AddCommand(newConfigSetKeyCommand())
	cmd.AddCommand(newConfigSetAPICommand())
	cmd.AddCommand(newConfigShowCommand())

	return cmd
}

func newConfigSetKeyCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "set-key",
		Short: "Store the API key",
		Long:  "Prompt for the API key without echoing it and store it in the config file",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Print("API key: ")

			keyBytes, err := term.ReadPassword(int(syscall.Stdin))
			if err != nil {
				return fmt.Errorf("failed to read API key: %w", err)
			}

			fmt.Println()

			apiKey := strings.TrimSpace(string(keyBytes))
			if apiKey == "" {
				return ErrEmptyAPIKey
			}

			viper.Set("api-key", apiKey)

			if err := saveConfig(); err != nil {
				return err
			}

			fmt.Println("API key saved")

			return nil
		},
	}
}

func newConfigSetAPICommand() *cobra.Command {
	return &cobra.Command{
		Use:   "set-api URL",
		Short: "Store the API endpoint",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			viper.Set("api", args[0])

			if err := saveConfig(); err != nil {
				return err
			}

			fmt.Println("API endpoint saved")

			return nil
		},
	}
}

func newConfigShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the resolved configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			apiKey := NotAvailable
			if viper.GetString("api-key") != "" {
				apiKey = "***"
			}

			endpoint := viper.GetString("api")
			if endpoint == "" {
				endpoint = NotAvailable + " (production default)"
			}

			table := tablewriter.NewWriter(os.Stdout)
			table.Header("Setting", "Value")
			_ = table.Append("api", endpoint)
			_ = table.Append("api-key", apiKey)
			_ = table.Append("output", viper.GetString("output"))

			if err := table.Render(); err != nil {
				return fmt.Errorf("failed to render table: %w", err)
			}

			return nil
		},
	}
}

// saveConfig writes the current settings to the active config file, creating
// ~/.trackctl/config.yml when none is in use yet.
func saveConfig() error {
	if file := viper.ConfigFileUsed(); file != "" {
		if err := viper.WriteConfig(); err != nil {
			return fmt.Errorf("failed to write config: %w", err)
		}

		return nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("failed to find home directory: %w", err)
	}

	configDir := filepath.Join(home, ".trackctl")
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if err := viper.WriteConfigAs(filepath.Join(configDir, "config.yml")); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}
