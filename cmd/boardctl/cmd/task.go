package cmd

import (
	"errors"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/stackboard/stackboard/internal/viewmodel"
)

var taskCmd = &cobra.Command{
	Use:   "task",
	Short: "Manage tasks",
}

var taskFlags struct {
	title       string
	description string
	priority    string
	status      string
}

var taskListCmd = &cobra.Command{
	Use:   "list",
	Short: "List tasks",
	RunE: func(cmd *cobra.Command, _ []string) error {
		vm := viewmodel.NewTaskVM(api)
		if err := vm.Load(cmd.Context()); err != nil {
			return err
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tTITLE\tPRIORITY\tSTATUS")
		for _, t := range vm.List {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", t.ID, t.Title, t.Priority, t.Status)
		}
		return w.Flush()
	},
}

var taskAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Create a task",
	RunE: func(cmd *cobra.Command, _ []string) error {
		vm := viewmodel.NewTaskVM(api)
		vm.Form = viewmodel.TaskForm{
			Title:       taskFlags.title,
			Description: taskFlags.description,
			Priority:    taskFlags.priority,
			Status:      taskFlags.status,
		}
		if err := vm.Submit(cmd.Context()); err != nil {
			if errors.Is(err, viewmodel.ErrInvalidForm) {
				printFieldErrors(vm.Errors)
			}
			return err
		}
		okColor.Println("Task created.")
		return nil
	},
}

var taskUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update a task",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		vm := viewmodel.NewTaskVM(api)
		if err := vm.Load(cmd.Context()); err != nil {
			return err
		}
		vm.Edit(args[0])
		if vm.EditID == "" {
			return fmt.Errorf("no task with id %q", args[0])
		}

		if cmd.Flags().Changed("title") {
			vm.Form.Title = taskFlags.title
		}
		if cmd.Flags().Changed("description") {
			vm.Form.Description = taskFlags.description
		}
		if cmd.Flags().Changed("priority") {
			vm.Form.Priority = taskFlags.priority
		}
		if cmd.Flags().Changed("status") {
			vm.Form.Status = taskFlags.status
		}

		if err := vm.Submit(cmd.Context()); err != nil {
			if errors.Is(err, viewmodel.ErrInvalidForm) {
				printFieldErrors(vm.Errors)
			}
			return err
		}
		okColor.Println("Task updated.")
		return nil
	},
}

var taskDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a task",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		vm := viewmodel.NewTaskVM(api)
		if err := vm.Delete(cmd.Context(), args[0]); err != nil {
			return err
		}
		okColor.Println("Task deleted.")
		return nil
	},
}

func init() {
	for _, c := range []*cobra.Command{taskAddCmd, taskUpdateCmd} {
		c.Flags().StringVar(&taskFlags.title, "title", "", "title")
		c.Flags().StringVar(&taskFlags.description, "description", "", "description")
		c.Flags().StringVar(&taskFlags.priority, "priority", "", "Low, Medium or High")
		c.Flags().StringVar(&taskFlags.status, "status", "", "Pending, \"In Progress\" or Done")
	}

	taskCmd.AddCommand(taskListCmd, taskAddCmd, taskUpdateCmd, taskDeleteCmd)
}
