package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/Autum7899/My-Portfolio/internal/domain/content"
)

func parseID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid id %q: must be a number", arg)
	}
	return id, nil
}

// --- career ---

var careerCmd = &cobra.Command{
	Use:   "career",
	Short: "Manage career entries",
}

var careerListCmd = &cobra.Command{
	Use:   "list",
	Short: "List career entries",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := buildStore(cmd.Context())
		if err != nil {
			return err
		}
		entries := st.Career()
		if len(entries) == 0 {
			fmt.Println("No career entries.")
			return nil
		}
		for _, e := range entries {
			fmt.Printf("  [%d] %s", e.ID, e.Institution)
			if e.Degree != "" {
				fmt.Printf(" — %s", e.Degree)
			}
			if e.Date != "" {
				fmt.Printf(" (%s)", e.Date)
			}
			fmt.Println()
		}
		return nil
	},
}

var careerAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a career entry",
	Example: `  portfolioctl career add --institution "University of Transport and Communications" \
    --degree Engineer --major "Information Technology" --date "2021 - 2025"`,
	RunE: func(cmd *cobra.Command, args []string) error {
		entry := content.CareerEntry{}
		entry.Institution, _ = cmd.Flags().GetString("institution")
		entry.Degree, _ = cmd.Flags().GetString("degree")
		entry.Major, _ = cmd.Flags().GetString("major")
		entry.Date, _ = cmd.Flags().GetString("date")
		entry.Description, _ = cmd.Flags().GetString("description")
		if entry.Institution == "" {
			return fmt.Errorf("--institution is required")
		}

		st, err := buildStore(cmd.Context())
		if err != nil {
			return err
		}
		id, remoteOK := st.AddCareer(cmd.Context(), entry)
		fmt.Printf("✓ Career entry added (id %d)\n", id)
		warnOffline(st, remoteOK)
		return nil
	},
}

var careerUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update a career entry",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}

		st, err := buildStore(cmd.Context())
		if err != nil {
			return err
		}

		var current *content.CareerEntry
		for _, e := range st.Career() {
			if e.ID == id {
				entry := e
				current = &entry
				break
			}
		}
		if current == nil {
			return fmt.Errorf("no career entry with id %d", id)
		}

		applyStringFlag(cmd, "institution", &current.Institution)
		applyStringFlag(cmd, "degree", &current.Degree)
		applyStringFlag(cmd, "major", &current.Major)
		applyStringFlag(cmd, "date", &current.Date)
		applyStringFlag(cmd, "description", &current.Description)

		remoteOK := st.UpdateCareer(cmd.Context(), *current)
		fmt.Printf("✓ Career entry %d updated\n", id)
		warnOffline(st, remoteOK)
		return nil
	},
}

var careerDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a career entry",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		st, err := buildStore(cmd.Context())
		if err != nil {
			return err
		}
		remoteOK := st.DeleteCareer(cmd.Context(), id)
		fmt.Printf("✓ Career entry %d deleted\n", id)
		warnOffline(st, remoteOK)
		return nil
	},
}

// --- project ---

var projectCmd = &cobra.Command{
	Use:   "project",
	Short: "Manage projects",
}

var projectListCmd = &cobra.Command{
	Use:   "list",
	Short: "List projects",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := buildStore(cmd.Context())
		if err != nil {
			return err
		}
		projects := st.Projects()
		if len(projects) == 0 {
			fmt.Println("No projects.")
			return nil
		}
		for _, p := range projects {
			fmt.Printf("  [%d] %s", p.ID, p.Title)
			if len(p.Tags) > 0 {
				fmt.Printf("  %v", p.Tags)
			}
			fmt.Println()
		}
		return nil
	},
}

var projectAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a project",
	RunE: func(cmd *cobra.Command, args []string) error {
		p := content.Project{}
		p.Title, _ = cmd.Flags().GetString("title")
		p.Description, _ = cmd.Flags().GetString("description")
		p.Image, _ = cmd.Flags().GetString("image")
		p.Tags, _ = cmd.Flags().GetStringSlice("tags")
		p.Demo, _ = cmd.Flags().GetString("demo")
		p.Repo, _ = cmd.Flags().GetString("repo")
		if p.Title == "" {
			return fmt.Errorf("--title is required")
		}

		st, err := buildStore(cmd.Context())
		if err != nil {
			return err
		}
		id, remoteOK := st.AddProject(cmd.Context(), p)
		fmt.Printf("✓ Project added (id %d)\n", id)
		warnOffline(st, remoteOK)
		return nil
	},
}

var projectUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update a project",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}

		st, err := buildStore(cmd.Context())
		if err != nil {
			return err
		}

		var current *content.Project
		for _, p := range st.Projects() {
			if p.ID == id {
				proj := p
				current = &proj
				break
			}
		}
		if current == nil {
			return fmt.Errorf("no project with id %d", id)
		}

		applyStringFlag(cmd, "title", &current.Title)
		applyStringFlag(cmd, "description", &current.Description)
		applyStringFlag(cmd, "image", &current.Image)
		applyStringFlag(cmd, "demo", &current.Demo)
		applyStringFlag(cmd, "repo", &current.Repo)
		if cmd.Flags().Changed("tags") {
			current.Tags, _ = cmd.Flags().GetStringSlice("tags")
		}

		remoteOK := st.UpdateProject(cmd.Context(), *current)
		fmt.Printf("✓ Project %d updated\n", id)
		warnOffline(st, remoteOK)
		return nil
	},
}

var projectDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a project",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		st, err := buildStore(cmd.Context())
		if err != nil {
			return err
		}
		remoteOK := st.DeleteProject(cmd.Context(), id)
		fmt.Printf("✓ Project %d deleted\n", id)
		warnOffline(st, remoteOK)
		return nil
	},
}

// --- skill ---

var skillCmd = &cobra.Command{
	Use:   "skill",
	Short: "Manage skills",
}

var skillListCmd = &cobra.Command{
	Use:   "list",
	Short: "List skills by category",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := buildStore(cmd.Context())
		if err != nil {
			return err
		}
		skills := st.Skills()
		for _, category := range content.CategoryKeys() {
			group := skills[category]
			if len(group) == 0 {
				continue
			}
			fmt.Printf("%s:\n", category)
			for _, sk := range group {
				fmt.Printf("  [%d] %s", sk.ID, sk.Name)
				if sk.Level != "" {
					fmt.Printf(" (%s)", sk.Level)
				}
				fmt.Println()
			}
		}
		return nil
	},
}

var skillAddCmd = &cobra.Command{
	Use:     "add",
	Short:   "Add a skill",
	Example: `  portfolioctl skill add --category frontend --name React --level Advanced`,
	RunE: func(cmd *cobra.Command, args []string) error {
		categoryFlag, _ := cmd.Flags().GetString("category")
		category := content.CategoryKey(categoryFlag)
		if !content.IsValidCategory(category) {
			return fmt.Errorf("unknown category %q, valid: %v", categoryFlag, content.CategoryKeys())
		}

		skill := content.Skill{}
		skill.Name, _ = cmd.Flags().GetString("name")
		skill.Logo, _ = cmd.Flags().GetString("logo")
		skill.Level, _ = cmd.Flags().GetString("level")
		skill.Invert, _ = cmd.Flags().GetBool("invert")
		if skill.Name == "" {
			return fmt.Errorf("--name is required")
		}

		st, err := buildStore(cmd.Context())
		if err != nil {
			return err
		}
		id, remoteOK := st.AddSkill(cmd.Context(), category, skill)
		fmt.Printf("✓ Skill added to %s (id %d)\n", category, id)
		warnOffline(st, remoteOK)
		return nil
	},
}

var skillUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update a skill",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}

		st, err := buildStore(cmd.Context())
		if err != nil {
			return err
		}

		var current *content.Skill
		var category content.CategoryKey
		for cat, group := range st.Skills() {
			for _, sk := range group {
				if sk.ID == id {
					skill := sk
					current = &skill
					category = cat
				}
			}
		}
		if current == nil {
			return fmt.Errorf("no skill with id %d", id)
		}

		applyStringFlag(cmd, "name", &current.Name)
		applyStringFlag(cmd, "logo", &current.Logo)
		applyStringFlag(cmd, "level", &current.Level)
		if cmd.Flags().Changed("invert") {
			current.Invert, _ = cmd.Flags().GetBool("invert")
		}

		remoteOK := st.UpdateSkill(cmd.Context(), category, *current)
		fmt.Printf("✓ Skill %d updated\n", id)
		warnOffline(st, remoteOK)
		return nil
	},
}

var skillDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a skill",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}

		st, err := buildStore(cmd.Context())
		if err != nil {
			return err
		}

		var category content.CategoryKey
		found := false
		for cat, group := range st.Skills() {
			for _, sk := range group {
				if sk.ID == id {
					category = cat
					found = true
				}
			}
		}
		if !found {
			return fmt.Errorf("no skill with id %d", id)
		}

		remoteOK := st.DeleteSkill(cmd.Context(), category, id)
		fmt.Printf("✓ Skill %d deleted\n", id)
		warnOffline(st, remoteOK)
		return nil
	},
}

func applyStringFlag(cmd *cobra.Command, name string, dst *string) {
	if cmd.Flags().Changed(name) {
		*dst, _ = cmd.Flags().GetString(name)
	}
}

func init() {
	rootCmd.AddCommand(careerCmd)
	careerCmd.AddCommand(careerListCmd)
	careerCmd.AddCommand(careerAddCmd)
	careerCmd.AddCommand(careerUpdateCmd)
	careerCmd.AddCommand(careerDeleteCmd)

	for _, c := range []*cobra.Command{careerAddCmd, careerUpdateCmd} {
		c.Flags().String("institution", "", "Institution or company name")
		c.Flags().String("degree", "", "Degree or role")
		c.Flags().String("major", "", "Major or focus area")
		c.Flags().String("date", "", "Date range, e.g. \"2021 - 2025\"")
		c.Flags().String("description", "", "Free-form description")
	}

	rootCmd.AddCommand(projectCmd)
	projectCmd.AddCommand(projectListCmd)
	projectCmd.AddCommand(projectAddCmd)
	projectCmd.AddCommand(projectUpdateCmd)
	projectCmd.AddCommand(projectDeleteCmd)

	for _, c := range []*cobra.Command{projectAddCmd, projectUpdateCmd} {
		c.Flags().String("title", "", "Project title")
		c.Flags().String("description", "", "Project description")
		c.Flags().String("image", "", "Image URL")
		c.Flags().StringSlice("tags", nil, "Comma-separated tags")
		c.Flags().String("demo", "", "Live demo URL")
		c.Flags().String("repo", "", "Repository URL")
	}

	rootCmd.AddCommand(skillCmd)
	skillCmd.AddCommand(skillListCmd)
	skillCmd.AddCommand(skillAddCmd)
	skillCmd.AddCommand(skillUpdateCmd)
	skillCmd.AddCommand(skillDeleteCmd)

	for _, c := range []*cobra.Command{skillAddCmd, skillUpdateCmd} {
		c.Flags().String("name", "", "Skill name")
		c.Flags().String("logo", "", "Logo URL")
		c.Flags().String("level", "", "Proficiency level")
		c.Flags().Bool("invert", false, "Invert logo colors in dark mode")
	}
	skillAddCmd.Flags().String("category", "", "Skill category")
}
