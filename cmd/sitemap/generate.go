package cmd

import (
	"fmt"
	"os"

	"github.com/labible/sitemap/pkg/app/styles"
	"github.com/labible/sitemap/pkg/services"
	"github.com/spf13/cobra"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Write sitemap.xml from the verse collection",
	Long: `Regenerates the whole sitemap on every run and overwrites the output file.

Examples:
  labible-sitemap generate
  labible-sitemap generate --data data/segond_1910.json --out public/sitemap.xml
  labible-sitemap generate --engine duckdb --db .cache/index.duckdb
  labible-sitemap generate --dry-run > /tmp/sitemap.xml`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		runGenerate(cmd)
	},
}

func addGenerateFlags(cmd *cobra.Command) {
	cmd.Flags().String("site", "https://labible.app", "Site base URL")
	cmd.Flags().String("data", "data/segond_1910.json", "Verse collection (JSON)")
	cmd.Flags().StringP("out", "o", "sitemap.xml", "Output file")
	cmd.Flags().String("engine", "memory", "Index engine: memory or duckdb")
	cmd.Flags().String("db", "", "DuckDB file for --engine duckdb (default in-memory)")
	cmd.Flags().Bool("dry-run", false, "Print the sitemap to stdout instead of writing it")
}

func init() {
	addGenerateFlags(generateCmd)
}

func runGenerate(cmd *cobra.Command) {
	cfg, logger := loadConfig(cmd)
	dryRun, _ := cmd.Flags().GetBool("dry-run")

	generator, err := services.NewGenerator(cfg, services.ControllerConfig{Logger: logger})
	cobra.CheckErr(err)
	defer generator.Close()

	if dryRun {
		res, err := generator.Render(os.Stdout)
		if err != nil {
			generator.Close()
			cobra.CheckErr(err)
		}
		logger.Info("dry run", "urls", res.URLCount, "books", res.Books)
		return
	}

	res, err := generator.Run()
	if err != nil {
		generator.Close()
		cobra.CheckErr(err)
	}

	fmt.Printf("%s %s (%d URLs)\n", styles.SuccessStyle.Render("✅ OK:"), res.OutPath, res.URLCount)
}
