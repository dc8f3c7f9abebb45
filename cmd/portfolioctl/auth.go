package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Authenticate against the admin API",
	RunE: func(cmd *cobra.Command, args []string) error {
		password, _ := cmd.Flags().GetString("password")
		if password == "" {
			fmt.Print("Password: ")
			reader := bufio.NewReader(os.Stdin)
			line, err := reader.ReadString('\n')
			if err != nil {
				return fmt.Errorf("cannot read password: %w", err)
			}
			password = strings.TrimSpace(line)
		}
		if password == "" {
			return fmt.Errorf("password is required")
		}

		st, err := buildStore(cmd.Context())
		if err != nil {
			return err
		}
		if !st.Login(cmd.Context(), password) {
			return fmt.Errorf("login failed")
		}
		fmt.Println("✓ Logged in")
		return nil
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Drop the stored admin session",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := buildStore(cmd.Context())
		if err != nil {
			return err
		}
		st.Logout()
		fmt.Println("✓ Logged out")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(logoutCmd)

	loginCmd.Flags().String("password", "", "Admin password (prompted when omitted)")
}
