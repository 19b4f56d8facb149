package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/murkotick/storefront/internal/app/catalog/domain"
)

// catalogCmd groups the read-only catalog commands
var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Browse the product catalog",
}

var catalogListCmd = &cobra.Command{
	Use:   "list",
	Short: "List products matching the filter criteria",
	Long: `Lists products after applying, in order: category, price range,
stock and search filters, then the selected sort.

Sort options: default, price-low-high, price-high-low, rating, name-a-z, name-z-a

Example:
  storefront catalog list --category clothing --max 100 --sort price-low-high`,
	Args: cobra.NoArgs,
	RunE: runCatalogList,
}

var catalogCategoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "List categories with product counts",
	Args:  cobra.NoArgs,
	RunE:  runCatalogCategories,
}

var catalogFacetsCmd = &cobra.Command{
	Use:   "facets",
	Short: "Show stock counts and the price range of the catalog",
	Args:  cobra.NoArgs,
	RunE:  runCatalogFacets,
}

func init() {
	defaults := domain.DefaultCriteria()
	f := catalogListCmd.Flags()
	f.String("category", defaults.Category, "category id, or \"all\"")
	f.Float64("min", defaults.MinPrice, "minimum price (inclusive)")
	f.Float64("max", defaults.MaxPrice, "maximum price (inclusive)")
	f.String("sort", string(defaults.Sort), "sort option")
	f.StringP("query", "q", "", "case-insensitive search in name, description and category")
	f.Bool("in-stock", false, "only show products in stock")

	catalogCmd.AddCommand(catalogListCmd, catalogCategoriesCmd, catalogFacetsCmd)
}

func criteriaFromFlags(cmd *cobra.Command) (domain.FilterCriteria, error) {
	f := cmd.Flags()
	c := domain.DefaultCriteria()

	var err error
	if c.Category, err = f.GetString("category"); err != nil {
		return c, err
	}
	if c.MinPrice, err = f.GetFloat64("min"); err != nil {
		return c, err
	}
	if c.MaxPrice, err = f.GetFloat64("max"); err != nil {
		return c, err
	}
	sort, err := f.GetString("sort")
	if err != nil {
		return c, err
	}
	c.Sort = domain.ParseSortOption(sort)
	if c.Query, err = f.GetString("query"); err != nil {
		return c, err
	}
	if c.InStockOnly, err = f.GetBool("in-stock"); err != nil {
		return c, err
	}
	return c, nil
}

func runCatalogList(cmd *cobra.Command, args []string) error {
	criteria, err := criteriaFromFlags(cmd)
	if err != nil {
		return err
	}

	res, err := application.Catalog.Filter.Execute(cmd.Context(), criteria)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if res.Empty() {
		fmt.Fprintln(out, "No products found. Try adjusting your search or filter criteria.")
		return nil
	}

	fmt.Fprintf(out, "Showing %d products\n\n", res.Total)
	return printProducts(out, res.Products)
}

func printProducts(out io.Writer, ps []domain.Product) error {
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tCATEGORY\tPRICE\tRATING\tSTOCK\tOPTIONS")
	for _, p := range ps {
		stock := "in stock"
		if !p.InStock {
			stock = "out of stock"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t$%.2f\t%.1f (%d)\t%s\t%s\n",
			p.ID, p.Name, p.Category, p.Price, p.Rating, p.Reviews, stock, options(p))
	}
	return tw.Flush()
}

func options(p domain.Product) string {
	var parts []string
	if len(p.Colors) > 0 {
		parts = append(parts, "colors: "+strings.Join(p.Colors, "/"))
	}
	if len(p.Sizes) > 0 {
		parts = append(parts, "sizes: "+strings.Join(p.Sizes, "/"))
	}
	if len(parts) == 0 {
		return "-"
	}
	return strings.Join(parts, "; ")
}

func runCatalogCategories(cmd *cobra.Command, args []string) error {
	facets, err := application.Catalog.Facets.Execute(cmd.Context())
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tPRODUCTS")
	for _, c := range facets.Categories {
		fmt.Fprintf(tw, "%s\t%s\t%d\n", c.ID, c.Name, c.Count)
	}
	return tw.Flush()
}

func runCatalogFacets(cmd *cobra.Command, args []string) error {
	facets, err := application.Catalog.Facets.Execute(cmd.Context())
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "In stock:     %d\n", facets.InStock)
	fmt.Fprintf(out, "Out of stock: %d\n", facets.OutOfStock)
	fmt.Fprintf(out, "Price range:  $%.2f - $%.2f\n", facets.Price.Min, facets.Price.Max)
	return nil
}
