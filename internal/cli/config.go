package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/projkit-labs/projkit/internal/branding"
	"github.com/projkit-labs/projkit/internal/config"
)

func init() {
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configGetCmd)
	configCmd.AddCommand(configValidateCmd)
	rootCmd.AddCommand(configCmd)
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage user settings",
	Long: fmt.Sprintf(`Read and write %s configuration stored at ~/%s/config.yaml.

Keys: %s`, branding.DisplayName(), branding.HomeDir(), strings.Join(config.Keys(), ", ")),
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration value",
	Long:  `Set a configuration value. Lists such as "unwanted" take comma-separated values.`,
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := config.Load(); err != nil {
			return err
		}
		key, value := args[0], args[1]
		if err := config.Set(key, value); err != nil {
			return fmt.Errorf("setting config key %q: %w", key, err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Set %s = %s\n", key, value)
		return nil
	},
}

var configGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Get a configuration value",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := config.Load(); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), config.Get(args[0]))
		return nil
	},
}

var configValidateCmd = &cobra.Command{
	Use:   "validate [path]",
	Short: "Validate a configuration file against the schema",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := config.FilePath()
		if len(args) == 1 {
			path = args[0]
		}
		result, err := config.ValidateFile(path)
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		if result.Valid {
			fmt.Fprintf(out, "[ OK ] %s is valid\n", path)
			return nil
		}
		fmt.Fprintf(out, "[FAIL] %d validation issue(s):\n", len(result.Issues))
		for _, issue := range result.Issues {
			if issue.Path != "" {
				fmt.Fprintf(out, "  - %s: %s\n", issue.Path, issue.Message)
			} else {
				fmt.Fprintf(out, "  - %s\n", issue.Message)
			}
		}
		return fmt.Errorf("config %s has %d validation issue(s)", path, len(result.Issues))
	},
}
