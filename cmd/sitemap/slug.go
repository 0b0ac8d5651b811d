package cmd

import (
	"fmt"

	"github.com/labible/sitemap/pkg/app/styles"
	"github.com/labible/sitemap/pkg/utils"
	"github.com/spf13/cobra"
)

var slugCmd = &cobra.Command{
	Use:   "slug [book-name...]",
	Short: "Print the URL slug of book names",
	Long: `Print the path segment used for each book name.

Examples:
  labible-sitemap slug "Genèse" "Cantique des Cantiques"`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		for _, name := range args {
			slug := utils.Slugify(name)
			if slug == "" {
				fmt.Printf("%s\t%s\n", name, styles.MutedStyle.Render("(empty)"))
				continue
			}
			fmt.Printf("%s\t%s\n", name, styles.SlugStyle.Render(slug))
		}
	},
}
