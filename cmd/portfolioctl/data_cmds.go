package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Autum7899/My-Portfolio/internal/store"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show content and session state",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := buildStore(cmd.Context())
		if err != nil {
			return err
		}

		snap := st.Snapshot()
		state := "loading"
		if st.State() == store.StateReady {
			state = "ready"
		}
		skillCount := 0
		for _, group := range snap.Skills {
			skillCount += len(group)
		}

		fmt.Printf("State:          %s\n", state)
		fmt.Printf("Profile:        %s\n", snap.Profile.Name)
		fmt.Printf("Career entries: %d\n", len(snap.Career))
		fmt.Printf("Projects:       %d\n", len(snap.Projects))
		fmt.Printf("Skills:         %d\n", skillCount)
		if st.IsAuthenticated() {
			fmt.Println("Session:        logged in")
		} else {
			fmt.Println("Session:        not logged in")
		}
		return nil
	},
}

var refreshCmd = &cobra.Command{
	Use:   "refresh",
	Short: "Re-fetch content from the backend",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := buildStore(cmd.Context())
		if err != nil {
			return err
		}
		if !st.Refresh(cmd.Context()) {
			fmt.Println("! backend unreachable, keeping current content")
			return nil
		}
		fmt.Println("✓ Content refreshed")
		return nil
	},
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export all content as JSON",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := buildStore(cmd.Context())
		if err != nil {
			return err
		}
		data, err := st.Export()
		if err != nil {
			return err
		}

		out, _ := cmd.Flags().GetString("out")
		if out == "" {
			fmt.Println(string(data))
			return nil
		}
		if err := os.WriteFile(out, data, 0o644); err != nil {
			return fmt.Errorf("cannot write %s: %w", out, err)
		}
		fmt.Printf("✓ Exported to %s\n", out)
		return nil
	},
}

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Replace all content from a JSON export",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("cannot read %s: %w", args[0], err)
		}

		st, err := buildStore(cmd.Context())
		if err != nil {
			return err
		}
		if err := st.Import(cmd.Context(), data); err != nil {
			return err
		}
		fmt.Println("✓ Content imported")
		return nil
	},
}

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Reset local content to built-in defaults and re-sync",
	RunE: func(cmd *cobra.Command, args []string) error {
		confirmed, _ := cmd.Flags().GetBool("yes")
		if !confirmed {
			return fmt.Errorf("reset discards local content; re-run with --yes to confirm")
		}

		st, err := buildStore(cmd.Context())
		if err != nil {
			return err
		}
		st.ResetToDefault(cmd.Context())
		fmt.Println("✓ Content reset")
		return nil
	},
}

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Show or update the profile",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := buildStore(cmd.Context())
		if err != nil {
			return err
		}
		p := st.Profile()

		if !anyProfileFlagChanged(cmd) {
			fmt.Printf("Name:     %s\n", p.Name)
			fmt.Printf("Title:    %s\n", p.Title)
			fmt.Printf("Location: %s\n", p.Location)
			fmt.Printf("Email:    %s\n", p.Email)
			if p.Socials.GitHub != "" {
				fmt.Printf("GitHub:   %s\n", p.Socials.GitHub)
			}
			if p.Socials.LinkedIn != "" {
				fmt.Printf("LinkedIn: %s\n", p.Socials.LinkedIn)
			}
			return nil
		}

		applyStringFlag(cmd, "name", &p.Name)
		applyStringFlag(cmd, "title", &p.Title)
		applyStringFlag(cmd, "location", &p.Location)
		applyStringFlag(cmd, "bio", &p.Bio)
		applyStringFlag(cmd, "email", &p.Email)
		applyStringFlag(cmd, "image", &p.ProfileImage)
		applyStringFlag(cmd, "github", &p.Socials.GitHub)
		applyStringFlag(cmd, "linkedin", &p.Socials.LinkedIn)
		applyStringFlag(cmd, "twitter", &p.Socials.Twitter)
		applyStringFlag(cmd, "facebook", &p.Socials.Facebook)

		remoteOK := st.UpdateProfile(cmd.Context(), p)
		fmt.Println("✓ Profile updated")
		warnOffline(st, remoteOK)
		return nil
	},
}

func anyProfileFlagChanged(cmd *cobra.Command) bool {
	for _, name := range []string{"name", "title", "location", "bio", "email", "image", "github", "linkedin", "twitter", "facebook"} {
		if cmd.Flags().Changed(name) {
			return true
		}
	}
	return false
}

func init() {
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(refreshCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(profileCmd)

	exportCmd.Flags().String("out", "", "Write to a file instead of stdout")
	resetCmd.Flags().Bool("yes", false, "Confirm the reset")

	profileCmd.Flags().String("name", "", "Display name")
	profileCmd.Flags().String("title", "", "Headline title")
	profileCmd.Flags().String("location", "", "Location")
	profileCmd.Flags().String("bio", "", "Short bio")
	profileCmd.Flags().String("email", "", "Contact email")
	profileCmd.Flags().String("image", "", "Profile image URL")
	profileCmd.Flags().String("github", "", "GitHub URL")
	profileCmd.Flags().String("linkedin", "", "LinkedIn URL")
	profileCmd.Flags().String("twitter", "", "Twitter URL")
	profileCmd.Flags().String("facebook", "", "Facebook URL")
}
