package cmd

import (
	"errors"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/stackboard/stackboard/internal/viewmodel"
)

var studentCmd = &cobra.Command{
	Use:   "student",
	Short: "Manage student records",
}

var studentFlags struct {
	name   string
	email  string
	course string
	batch  string
	grade  string
	filter string
}

var studentListCmd = &cobra.Command{
	Use:   "list",
	Short: "List students",
	RunE: func(cmd *cobra.Command, _ []string) error {
		vm := viewmodel.NewStudentVM(api)
		if err := vm.Load(cmd.Context()); err != nil {
			return err
		}
		vm.NameFilter = studentFlags.filter

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tNAME\tEMAIL\tCOURSE\tBATCH\tGRADE")
		for _, s := range vm.Visible() {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n", s.ID, s.Name, s.Email, s.Course, s.Batch, s.Grade)
		}
		return w.Flush()
	},
}

var studentAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Create a student",
	RunE: func(cmd *cobra.Command, _ []string) error {
		vm := viewmodel.NewStudentVM(api)
		vm.Form = viewmodel.StudentForm{
			Name:   studentFlags.name,
			Email:  studentFlags.email,
			Course: studentFlags.course,
			Batch:  studentFlags.batch,
			Grade:  studentFlags.grade,
		}
		if err := vm.Submit(cmd.Context()); err != nil {
			if errors.Is(err, viewmodel.ErrInvalidForm) {
				printFieldErrors(vm.Errors)
			}
			return err
		}
		okColor.Println("Student created.")
		return nil
	},
}

var studentUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update a student",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		vm := viewmodel.NewStudentVM(api)
		if err := vm.Load(cmd.Context()); err != nil {
			return err
		}
		vm.Edit(args[0])
		if vm.EditID == "" {
			return fmt.Errorf("no student with id %q", args[0])
		}

		if cmd.Flags().Changed("name") {
			vm.Form.Name = studentFlags.name
		}
		if cmd.Flags().Changed("email") {
			vm.Form.Email = studentFlags.email
		}
		if cmd.Flags().Changed("course") {
			vm.Form.Course = studentFlags.course
		}
		if cmd.Flags().Changed("batch") {
			vm.Form.Batch = studentFlags.batch
		}
		if cmd.Flags().Changed("grade") {
			vm.Form.Grade = studentFlags.grade
		}

		if err := vm.Submit(cmd.Context()); err != nil {
			if errors.Is(err, viewmodel.ErrInvalidForm) {
				printFieldErrors(vm.Errors)
			}
			return err
		}
		okColor.Println("Student updated.")
		return nil
	},
}

var studentDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a student",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		vm := viewmodel.NewStudentVM(api)
		if err := vm.Delete(cmd.Context(), args[0]); err != nil {
			return err
		}
		okColor.Println("Student deleted.")
		return nil
	},
}

func init() {
	studentListCmd.Flags().StringVar(&studentFlags.filter, "name", "", "filter by name (substring, local)")

	for _, c := range []*cobra.Command{studentAddCmd, studentUpdateCmd} {
		c.Flags().StringVar(&studentFlags.name, "name", "", "name")
		c.Flags().StringVar(&studentFlags.email, "email", "", "email")
		c.Flags().StringVar(&studentFlags.course, "course", "", "course")
		c.Flags().StringVar(&studentFlags.batch, "batch", "", "batch")
		c.Flags().StringVar(&studentFlags.grade, "grade", "", "grade")
	}

	studentCmd.AddCommand(studentListCmd, studentAddCmd, studentUpdateCmd, studentDeleteCmd)
}
