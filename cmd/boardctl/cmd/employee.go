package cmd

import (
	"errors"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/stackboard/stackboard/internal/viewmodel"
)

var employeeCmd = &cobra.Command{
	Use:   "employee",
	Short: "Manage employee records",
}

var employeeFlags struct {
	name       string
	email      string
	position   string
	department string
	salary     float64
	filter     string
}

var employeeListCmd = &cobra.Command{
	Use:   "list",
	Short: "List employees",
	RunE: func(cmd *cobra.Command, _ []string) error {
		vm := viewmodel.NewEmployeeVM(api)
		if err := vm.Load(cmd.Context()); err != nil {
			return err
		}
		vm.NameFilter = employeeFlags.filter

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tNAME\tEMAIL\tPOSITION\tDEPARTMENT\tSALARY")
		for _, e := range vm.Visible() {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%.2f\n", e.ID, e.Name, e.Email, e.Position, e.Department, e.Salary)
		}
		return w.Flush()
	},
}

var employeeAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Create an employee",
	RunE: func(cmd *cobra.Command, _ []string) error {
		vm := viewmodel.NewEmployeeVM(api)
		vm.Form = viewmodel.EmployeeForm{
			Name:       employeeFlags.name,
			Email:      employeeFlags.email,
			Position:   employeeFlags.position,
			Department: employeeFlags.department,
			Salary:     employeeFlags.salary,
		}
		if err := vm.Submit(cmd.Context()); err != nil {
			if errors.Is(err, viewmodel.ErrInvalidForm) {
				printFieldErrors(vm.Errors)
			}
			return err
		}
		okColor.Println("Employee created.")
		return nil
	},
}

var employeeUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update an employee",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		vm := viewmodel.NewEmployeeVM(api)
		if err := vm.Load(cmd.Context()); err != nil {
			return err
		}
		vm.Edit(args[0])
		if vm.EditID == "" {
			return fmt.Errorf("no employee with id %q", args[0])
		}

		if cmd.Flags().Changed("name") {
			vm.Form.Name = employeeFlags.name
		}
		if cmd.Flags().Changed("email") {
			vm.Form.Email = employeeFlags.email
		}
		if cmd.Flags().Changed("position") {
			vm.Form.Position = employeeFlags.position
		}
		if cmd.Flags().Changed("department") {
			vm.Form.Department = employeeFlags.department
		}
		if cmd.Flags().Changed("salary") {
			vm.Form.Salary = employeeFlags.salary
		}

		if err := vm.Submit(cmd.Context()); err != nil {
			if errors.Is(err, viewmodel.ErrInvalidForm) {
				printFieldErrors(vm.Errors)
			}
			return err
		}
		okColor.Println("Employee updated.")
		return nil
	},
}

var employeeDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete an employee",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		vm := viewmodel.NewEmployeeVM(api)
		if err := vm.Delete(cmd.Context(), args[0]); err != nil {
			return err
		}
		okColor.Println("Employee deleted.")
		return nil
	},
}

func init() {
	employeeListCmd.Flags().StringVar(&employeeFlags.filter, "name", "", "filter by name (substring, local)")

	for _, c := range []*cobra.Command{employeeAddCmd, employeeUpdateCmd} {
		c.Flags().StringVar(&employeeFlags.name, "name", "", "name")
		c.Flags().StringVar(&employeeFlags.email, "email", "", "email")
		c.Flags().StringVar(&employeeFlags.position, "position", "", "position")
		c.Flags().StringVar(&employeeFlags.department, "department", "", "department")
		c.Flags().Float64Var(&employeeFlags.salary, "salary", 0, "salary")
	}

	employeeCmd.AddCommand(employeeListCmd, employeeAddCmd, employeeUpdateCmd, employeeDeleteCmd)
}
