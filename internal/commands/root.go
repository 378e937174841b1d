package commands

import (
	"github.com/spf13/cobra"

	"github.com/cleared-dev/sietosru/internal/buildinfo"
	"github.com/cleared-dev/sietosru/internal/config"
)

// globalOptions are the persistent flags shared by all subcommands.
type globalOptions struct {
	configPath string
	verbose    bool
}

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	var global globalOptions

	rootCmd := &cobra.Command{
		Use:     "sietosru",
		Short:   "Convert SIE bookkeeping exports to SRU tax-form files (INK2)",
		Version: buildinfo.Summary(),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVar(&global.configPath, "config", config.FileName, "config file")
	rootCmd.PersistentFlags().BoolVarP(&global.verbose, "verbose", "v", false, "debug logging")

	rootCmd.AddCommand(newConvertCommand(&global))
	rootCmd.AddCommand(newAccountsCommand(&global))
	rootCmd.AddCommand(newInitCommand())

	return rootCmd
}

// loadConfig reads the config file. A missing default file is fine; a
// missing file named explicitly with --config is an error.
func loadConfig(cmd *cobra.Command, global *globalOptions) (*config.Config, error) {
	if cmd.Flags().Changed("config") {
		return config.Load(global.configPath)
	}
	return config.LoadOptional(global.configPath)
}
