package cmd

import (
	"fmt"

	"github.com/labible/sitemap/pkg/app/components"
	"github.com/labible/sitemap/pkg/app/styles"
	"github.com/labible/sitemap/pkg/services"
	"github.com/spf13/cobra"
)

var booksCmd = &cobra.Command{
	Use:   "books",
	Short: "List the books found in the verse collection",
	Long:  "Display every book with its slug and chapter count, in the order used by the sitemap",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, logger := loadConfig(cmd)

		generator, err := services.NewGenerator(cfg, services.ControllerConfig{Logger: logger})
		cobra.CheckErr(err)
		defer generator.Close()

		plan, err := generator.Build()
		if err != nil {
			generator.Close()
			cobra.CheckErr(err)
		}

		if len(plan.Books) == 0 {
			fmt.Println("📚 No books in " + cfg.DataPath)
			return
		}

		chapters := 0
		for _, b := range plan.Books {
			chapters += len(b.Chapters)
		}

		fmt.Println(styles.TitleStyle.Render(fmt.Sprintf("\n📚 %d books, %d chapters", len(plan.Books), chapters)))
		fmt.Println()
		fmt.Println(components.BookTable(plan.Books))
	},
}

func init() {
	booksCmd.Flags().String("data", "data/segond_1910.json", "Verse collection (JSON)")
	booksCmd.Flags().String("engine", "memory", "Index engine: memory or duckdb")
	booksCmd.Flags().String("db", "", "DuckDB file for --engine duckdb (default in-memory)")
}
