// Package actionlens implements the actionlens command tree.
package actionlens

import (
	"github.com/spf13/cobra"

	"github.com/actionlens/actionlens/pkg/config"
	"github.com/actionlens/actionlens/pkg/log"
)

var (
	clientConfig *config.ClientConfig
	configPath   string
	jsonOutput   bool
	logLevel     string
)

var rootCmd = &cobra.Command{
	Use:   "actionlens",
	Short: "Visualize GitHub Actions workflows",
	Long: `actionlens parses GitHub Actions workflow files and derives three views:
a Mermaid dependency graph of the jobs, a flattened step table, and a
normalized trigger table.

Workflows can come from a local file, stdin, or straight from a GitHub
repository:
  actionlens graph -f .github/workflows/ci.yml
  actionlens show --repo acme/pipelines --workflow ci.yml
  actionlens remote list --repo acme/pipelines`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		clientConfig, err = config.LoadClientConfig(configPath)
		if err != nil {
			return err
		}

		if logLevel == "" {
			logLevel = clientConfig.LogLevel
		}
		log.Setup(logLevel)

		return nil
	},
}

// Execute runs the actionlens root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "",
		"Path to configuration file (searches common locations if not specified)")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false,
		"Output results in JSON format")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "",
		"Diagnostic log level (debug, info, warn, error)")

	rootCmd.AddCommand(newGraphCmd())
	rootCmd.AddCommand(newStepsCmd())
	rootCmd.AddCommand(newTriggersCmd())
	rootCmd.AddCommand(newShowCmd())
	rootCmd.AddCommand(newRemoteCmd())
	rootCmd.AddCommand(newVersionCmd())
}
