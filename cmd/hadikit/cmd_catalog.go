package main

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/ilkoid/hadikit/internal/views"
	"github.com/ilkoid/hadikit/pkg/catalog"
	"github.com/spf13/cobra"
)

// newCatalogCmd печатает каталог с теми же фильтрами, что и витрина.
func newCatalogCmd(c *cli) *cobra.Command {
	var category, search string

	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Print the product catalog",
		Long: `Prints products matching the category and search filters.

Example:
  hadikit catalog --category Football --search barcelona`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !catalog.ValidCategory(category) {
				return fmt.Errorf("unknown category %q, expected one of %v", category, catalog.Categories())
			}
			products := c.components.State.Store().Filter(category, search)
			return printCatalog(cmd.OutOrStdout(), products)
		},
	}

	cmd.Flags().StringVar(&category, "category", catalog.AllCategories, "category filter")
	cmd.Flags().StringVarP(&search, "search", "s", "", "case-insensitive name filter")
	return cmd
}

func printCatalog(w io.Writer, products []catalog.Product) error {
	if len(products) == 0 {
		_, err := fmt.Fprintln(w, views.EmptyTitle)
		return err
	}

	rows := make([][]string, 0, len(products))
	for _, p := range products {
		rows = append(rows, []string{p.ID, string(p.Category), p.Name, views.FormatPrice(p.Price), badge(p)})
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("ID", "CATEGORY", "NAME", "PRICE", "").
		Rows(rows...)

	_, err := fmt.Fprintf(w, "%s\n%d kits\n", t.String(), len(products))
	return err
}

func badge(p catalog.Product) string {
	switch {
	case p.IsNew:
		return "NEW"
	case p.IsPopular:
		return "HOT"
	}
	return ""
}
