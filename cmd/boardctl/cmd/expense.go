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

var expenseCmd = &cobra.Command{
	Use:   "expense",
	Short: "Manage expenses",
}

var expenseFlags struct {
	title    string
	amount   float64
	category string
	date     string

	filterCategory string
	filterFrom     string
	filterTo       string
}

var expenseListCmd = &cobra.Command{
	Use:   "list",
	Short: "List expenses and the running total",
	RunE: func(cmd *cobra.Command, _ []string) error {
		vm := viewmodel.NewExpenseVM(api)
		vm.Filter = client.ExpenseQuery{
			Category: expenseFlags.filterCategory,
			From:     expenseFlags.filterFrom,
			To:       expenseFlags.filterTo,
		}
		if err := vm.Load(cmd.Context()); err != nil {
			return err
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tTITLE\tAMOUNT\tCATEGORY\tDATE")
		for _, e := range vm.List {
			fmt.Fprintf(w, "%s\t%s\t%.2f\t%s\t%s\n", e.ID, e.Title, e.Amount, e.Category, e.Date)
		}
		if err := w.Flush(); err != nil {
			return err
		}
		dimColor.Printf("total (all expenses): %.2f\n", vm.Total)
		return nil
	},
}

var expenseAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Create an expense",
	RunE: func(cmd *cobra.Command, _ []string) error {
		vm := viewmodel.NewExpenseVM(api)
		vm.Form = viewmodel.ExpenseForm{
			Title:    expenseFlags.title,
			Amount:   expenseFlags.amount,
			Category: expenseFlags.category,
			Date:     expenseFlags.date,
		}
		if err := vm.Submit(cmd.Context()); err != nil {
			if errors.Is(err, viewmodel.ErrInvalidForm) {
				printFieldErrors(vm.Errors)
			}
			return err
		}
		okColor.Println("Expense created.")
		return nil
	},
}

var expenseUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update an expense",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		vm := viewmodel.NewExpenseVM(api)
		if err := vm.Load(cmd.Context()); err != nil {
			return err
		}
		vm.Edit(args[0])
		if vm.EditID == "" {
			return fmt.Errorf("no expense with id %q", args[0])
		}

		if cmd.Flags().Changed("title") {
			vm.Form.Title = expenseFlags.title
		}
		if cmd.Flags().Changed("amount") {
			vm.Form.Amount = expenseFlags.amount
		}
		if cmd.Flags().Changed("category") {
			vm.Form.Category = expenseFlags.category
		}
		if cmd.Flags().Changed("date") {
			vm.Form.Date = expenseFlags.date
		}

		if err := vm.Submit(cmd.Context()); err != nil {
			if errors.Is(err, viewmodel.ErrInvalidForm) {
				printFieldErrors(vm.Errors)
			}
			return err
		}
		okColor.Println("Expense updated.")
		return nil
	},
}

var expenseDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete an expense",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		vm := viewmodel.NewExpenseVM(api)
		if err := vm.Delete(cmd.Context(), args[0]); err != nil {
			return err
		}
		okColor.Println("Expense deleted.")
		return nil
	},
}

func init() {
	expenseListCmd.Flags().StringVar(&expenseFlags.filterCategory, "category", "", "filter by exact category")
	expenseListCmd.Flags().StringVar(&expenseFlags.filterFrom, "from", "", "range start (YYYY-MM-DD, requires --to)")
	expenseListCmd.Flags().StringVar(&expenseFlags.filterTo, "to", "", "range end (YYYY-MM-DD, requires --from)")

	for _, c := range []*cobra.Command{expenseAddCmd, expenseUpdateCmd} {
		c.Flags().StringVar(&expenseFlags.title, "title", "", "title")
		c.Flags().Float64Var(&expenseFlags.amount, "amount", 0, "amount")
		c.Flags().StringVar(&expenseFlags.category, "category", "", "category")
		c.Flags().StringVar(&expenseFlags.date, "date", "", "date (YYYY-MM-DD)")
	}

	expenseCmd.AddCommand(expenseListCmd, expenseAddCmd, expenseUpdateCmd, expenseDeleteCmd)
}
