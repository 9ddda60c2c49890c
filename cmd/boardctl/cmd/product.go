package cmd

import (
	"errors"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/stackboard/stackboard/internal/client"
	"github.com/stackboard/stackboard/internal/viewmodel"
)

var productCmd = &cobra.Command{
	Use:   "product",
	Short: "Manage products",
}

var productFlags struct {
	name     string
	price    float64
	quantity int
	category string

	filterSearch   string
	filterCategory string
	filterSort     string
}

var productListCmd = &cobra.Command{
	Use:   "list",
	Short: "List products and the total stock value",
	RunE: func(cmd *cobra.Command, _ []string) error {
		vm := viewmodel.NewProductVM(api)
		vm.Filter = client.ProductQuery{
			Search:   productFlags.filterSearch,
			Category: productFlags.filterCategory,
			Sort:     productFlags.filterSort,
		}
		if err := vm.Load(cmd.Context()); err != nil {
			return err
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tNAME\tPRICE\tQUANTITY\tCATEGORY")
		for _, p := range vm.List {
			fmt.Fprintf(w, "%s\t%s\t%.2f\t%d\t%s\n", p.ID, p.ProductName, p.Price, p.Quantity, p.Category)
		}
		if err := w.Flush(); err != nil {
			return err
		}
		dimColor.Printf("total stock value: %.2f\n", vm.StockValue)
		return nil
	},
}

var productAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Create a product",
	RunE: func(cmd *cobra.Command, _ []string) error {
		vm := viewmodel.NewProductVM(api)
		vm.Form = viewmodel.ProductForm{
			ProductName: productFlags.name,
			Price:       productFlags.price,
			Quantity:    productFlags.quantity,
			Category:    productFlags.category,
		}
		if err := vm.Submit(cmd.Context()); err != nil {
			if errors.Is(err, viewmodel.ErrInvalidForm) {
				printFieldErrors(vm.Errors)
			}
			return err
		}
		okColor.Println("Product created.")
		return nil
	},
}

var productUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update a product",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		vm := viewmodel.NewProductVM(api)
		if err := vm.Load(cmd.Context()); err != nil {
			return err
		}
		vm.Edit(args[0])
		if vm.EditID == "" {
			return fmt.Errorf("no product with id %q", args[0])
		}

		if cmd.Flags().Changed("name") {
			vm.Form.ProductName = productFlags.name
		}
		if cmd.Flags().Changed("price") {
			vm.Form.Price = productFlags.price
		}
		if cmd.Flags().Changed("quantity") {
			vm.Form.Quantity = productFlags.quantity
		}
		if cmd.Flags().Changed("category") {
			vm.Form.Category = productFlags.category
		}

		if err := vm.Submit(cmd.Context()); err != nil {
			if errors.Is(err, viewmodel.ErrInvalidForm) {
				printFieldErrors(vm.Errors)
			}
			return err
		}
		okColor.Println("Product updated.")
		return nil
	},
}

var productDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a product",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		vm := viewmodel.NewProductVM(api)
		if err := vm.Delete(cmd.Context(), args[0]); err != nil {
			return err
		}
		okColor.Println("Product deleted.")
		return nil
	},
}

func init() {
	productListCmd.Flags().StringVar(&productFlags.filterSearch, "search", "", "name substring, case-insensitive")
	productListCmd.Flags().StringVar(&productFlags.filterCategory, "category", "", "filter by exact category")
	productListCmd.Flags().StringVar(&productFlags.filterSort, "sort", "", "price or quantity (ascending)")

	for _, c := range []*cobra.Command{productAddCmd, productUpdateCmd} {
		c.Flags().StringVar(&productFlags.name, "name", "", "product name")
		c.Flags().Float64Var(&productFlags.price, "price", 0, "unit price")
		c.Flags().IntVar(&productFlags.quantity, "quantity", 0, "stock quantity")
		c.Flags().StringVar(&productFlags.category, "category", "", "category")
	}

	productCmd.AddCommand(productListCmd, productAddCmd, productUpdateCmd, productDeleteCmd)
}
