package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/stackboard/stackboard/internal/client"
)

var (
	registerName  string
	registerEmail string
	loginEmail    string
)

func readPassword(prompt string) (string, error) {
	fmt.Print(prompt)
	pw, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Println()
	if err != nil {
		return "", fmt.Errorf("read password: %w", err)
	}
	return string(pw), nil
}

var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Create an account",
	RunE: func(cmd *cobra.Command, _ []string) error {
		password, err := readPassword("Password: ")
		if err != nil {
			return err
		}

		err = api.Register(cmd.Context(), client.RegisterRequest{
			Name:     registerName,
			Email:    registerEmail,
			Password: password,
		})
		if err != nil {
			return err
		}

		okColor.Println("Registered. Run \"boardctl login\" to sign in.")
		return nil
	},
}

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Sign in and store the token",
	RunE: func(cmd *cobra.Command, _ []string) error {
		password, err := readPassword("Password: ")
		if err != nil {
			return err
		}

		if err := api.Login(cmd.Context(), loginEmail, password); err != nil {
			return err
		}

		okColor.Println("Logged in.")
		return nil
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Forget the stored token",
	RunE: func(_ *cobra.Command, _ []string) error {
		if err := api.Logout(); err != nil {
			return err
		}
		okColor.Println("Logged out.")
		return nil
	},
}

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Show the signed-in user",
	RunE: func(cmd *cobra.Command, _ []string) error {
		u, err := api.Profile(cmd.Context())
		if err != nil {
			return err
		}
		fmt.Printf("%s <%s>\n", u.Name, u.Email)
		dimColor.Printf("id: %s\n", u.ID)
		return nil
	},
}

func init() {
	registerCmd.Flags().StringVar(&registerName, "name", "", "full name")
	registerCmd.Flags().StringVar(&registerEmail, "email", "", "email address")
	_ = registerCmd.MarkFlagRequired("name")
	_ = registerCmd.MarkFlagRequired("email")

	loginCmd.Flags().StringVar(&loginEmail, "email", "", "email address")
	_ = loginCmd.MarkFlagRequired("email")
}
