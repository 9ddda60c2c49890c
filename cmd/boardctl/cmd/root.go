// Package cmd is the boardctl command tree: a terminal front end over the
// stackboard API, driven through the view-models in internal/viewmodel.
package cmd

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/stackboard/stackboard/internal/client"
)

var (
	serverURL string
	api       *client.Client

	okColor   = color.New(color.FgGreen)
	failColor = color.New(color.FgRed)
	dimColor  = color.New(color.Faint)
)

var rootCmd = &cobra.Command{
	Use:   "boardctl",
	Short: "boardctl administers students, employees, tasks, expenses and products",
	Long: `boardctl is the command-line client for the stackboard API.

Credentials are obtained with "boardctl login"; the token is stored under
~/.stackboard/token and attached to requests automatically.`,
	PersistentPreRunE: setup,
	SilenceUsage:      true,
	SilenceErrors:     true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		failColor.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func setup(_ *cobra.Command, _ []string) error {
	tokens, err := client.NewFileTokenStore("")
	if err != nil {
		return fmt.Errorf("token store: %w", err)
	}
	api = client.New(serverURL, tokens)
	return nil
}

func init() {
	rootCmd.PersistentFlags().StringVar(&serverURL, "server", "http://localhost:5000", "stackboard API base URL")

	rootCmd.AddCommand(registerCmd, loginCmd, logoutCmd, profileCmd)
	rootCmd.AddCommand(studentCmd, employeeCmd, taskCmd, expenseCmd, productCmd)
}

// printFieldErrors renders a view-model's per-field validation map.
func printFieldErrors(errs map[string]string) {
	for field, msg := range errs {
		failColor.Fprintf(os.Stderr, "  %s: %s\n", field, msg)
	}
}
