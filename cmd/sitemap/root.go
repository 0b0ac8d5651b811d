package cmd

import (
	"log/slog"
	"os"

	"github.com/labible/sitemap/pkg/config"
	"github.com/labible/sitemap/pkg/logging"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "labible-sitemap",
	Short: "Generate the sitemap of labible.app",
	Long: `Reads the verse collection and writes sitemap.xml: the home page, the fixed
pages, then one URL per book chapter.

Running without a subcommand is the same as 'labible-sitemap generate'.`,
	SilenceUsage: true,
	Run: func(cmd *cobra.Command, args []string) {
		runGenerate(cmd)
	},
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "Config file (default ./labible-sitemap.{yaml,json,toml} if present)")
	rootCmd.PersistentFlags().String("log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().String("log-format", "text", "Log format: text or json")
	addGenerateFlags(rootCmd)

	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(booksCmd)
	rootCmd.AddCommand(slugCmd)
}

// loadConfig resolves the configuration for cmd and installs the logger.
func loadConfig(cmd *cobra.Command) (*config.Config, *slog.Logger) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path, cmd.Flags())
	cobra.CheckErr(err)

	logger, err := logging.Init(os.Stderr, cfg.Log.Level, cfg.Log.Format)
	cobra.CheckErr(err)
	return cfg, logger
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
