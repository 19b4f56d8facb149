package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	cartdomain "github.com/murkotick/storefront/internal/app/cart/domain"
	"github.com/murkotick/storefront/internal/app/catalog/domain"
)

// cartCmd groups the cart commands
var cartCmd = &cobra.Command{
	Use:   "cart",
	Short: "Manage the shopping cart",
}

var cartShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show cart contents and totals",
	Args:  cobra.NoArgs,
	RunE:  runCartShow,
}

var cartAddCmd = &cobra.Command{
	Use:   "add [product-id]",
	Short: "Add one unit of a product to the cart",
	Long: `Adds one unit of the product. Adding a product that is already in the
cart increments its quantity and keeps the color and size chosen first.
Color and size default to the product's first option.`,
	Args: cobra.ExactArgs(1),
	RunE: runCartAdd,
}

var cartRemoveCmd = &cobra.Command{
	Use:   "remove [product-id]",
	Short: "Remove a product from the cart",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return application.Cart.RemoveItem(cmd.Context(), args[0])
	},
}

var cartSetCmd = &cobra.Command{
	Use:   "set [product-id] [quantity]",
	Short: "Set the quantity of a cart line (0 or less removes it)",
	Args:  cobra.ExactArgs(2),
	RunE:  runCartSet,
}

var cartIncCmd = &cobra.Command{
	Use:   "inc [product-id]",
	Short: "Increase a cart line by one",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return application.Cart.Increment(cmd.Context(), args[0])
	},
}

var cartDecCmd = &cobra.Command{
	Use:   "dec [product-id]",
	Short: "Decrease a cart line by one, removing it at zero",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return application.Cart.Decrement(cmd.Context(), args[0])
	},
}

var cartClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Empty the cart",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return application.Cart.Clear(cmd.Context())
	},
}

func init() {
	cartAddCmd.Flags().String("color", "", "color option")
	cartAddCmd.Flags().String("size", "", "size option")

	cartCmd.AddCommand(cartShowCmd, cartAddCmd, cartRemoveCmd, cartSetCmd, cartIncCmd, cartDecCmd, cartClearCmd)
}

func runCartShow(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	items := application.Cart.Items()
	if len(items) == 0 {
		fmt.Fprintln(out, "Your cart is empty.")
		return nil
	}

	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tOPTIONS\tPRICE\tQTY\tSUBTOTAL")
	for _, li := range items {
		fmt.Fprintf(tw, "%s\t%s\t%s\t$%.2f\t%d\t$%s\n",
			li.ID, li.Name, selection(li), li.Price, li.Quantity, li.Subtotal())
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	fmt.Fprintf(out, "\nItems: %d\nTotal: $%s\n", application.Cart.TotalItems(), application.Cart.TotalPrice())
	return nil
}

func selection(li cartdomain.LineItem) string {
	switch {
	case li.SelectedColor != "" && li.SelectedSize != "":
		return li.SelectedColor + ", " + li.SelectedSize
	case li.SelectedColor != "":
		return li.SelectedColor
	case li.SelectedSize != "":
		return li.SelectedSize
	default:
		return "-"
	}
}

func runCartAdd(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	p, err := application.Catalog.Get.Execute(ctx, args[0])
	if err != nil {
		return err
	}
	if !p.Purchasable() {
		return fmt.Errorf("product %q is out of stock", p.ID)
	}

	color, size, err := pickOptions(cmd, p)
	if err != nil {
		return err
	}

	if err := application.Cart.AddItem(ctx, p, color, size); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Added %s. Cart now holds %d items.\n", p.Name, application.Cart.TotalItems())
	return nil
}

func pickOptions(cmd *cobra.Command, p domain.Product) (color, size string, err error) {
	color, _ = cmd.Flags().GetString("color")
	size, _ = cmd.Flags().GetString("size")

	if color == "" {
		color = p.DefaultColor()
	} else if !p.HasColor(color) {
		return "", "", fmt.Errorf("product %q has no color %q", p.ID, color)
	}

	if size == "" {
		size = p.DefaultSize()
	} else if !p.HasSize(size) {
		return "", "", fmt.Errorf("product %q has no size %q", p.ID, size)
	}
	return color, size, nil
}

func runCartSet(cmd *cobra.Command, args []string) error {
	quantity, ok := cartdomain.ParseQuantityInput(args[1])
	if !ok {
		log.Warn("ignoring non-numeric quantity", zap.String("product_id", args[0]), zap.String("input", args[1]))
		return nil
	}
	return application.Cart.UpdateQuantity(cmd.Context(), args[0], quantity)
}
