package components

import (
	"strconv"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
	"github.com/labible/sitemap/pkg/app/styles"
	"github.com/labible/sitemap/pkg/data"
)

var bookColumns = []table.Column{
	{Title: "#", Width: 4},
	{Title: "Name", Width: 28},
	{Title: "Slug", Width: 28},
	{Title: "Chapters", Width: 8},
}

// BookRows turns the catalog into table rows.
func BookRows(books []data.Book) []table.Row {
	rows := make([]table.Row, 0, len(books))
	for _, b := range books {
		rows = append(rows, table.Row{
			strconv.Itoa(b.Number),
			truncateString(b.Name, 27),
			truncateString(b.Slug, 27),
			strconv.Itoa(len(b.Chapters)),
		})
	}
	return rows
}

// BookTable renders the catalog as a static (unfocused) table.
func BookTable(books []data.Book) string {
	s := table.DefaultStyles()
	s.Header = styles.TableHeaderStyle.Padding(0, 1)
	// nothing is selectable
	s.Selected = lipgloss.NewStyle()

	// the height counts the two header lines
	t := table.New(
		table.WithColumns(bookColumns),
		table.WithRows(BookRows(books)),
		table.WithFocused(false),
		table.WithStyles(s),
		table.WithHeight(len(books)+2),
	)
	return t.View()
}

func truncateString(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max-1]) + "…"
}
