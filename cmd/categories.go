package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abaqira/guidebook/internal/selector"
)

var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "List question bank categories",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		bank, err := loadBank(cfg)
		if err != nil {
			return err
		}

		rules := selector.DefaultRules()
		out := cmd.OutOrStdout()

		fmt.Fprintf(out, "%-20s  %9s  %s\n", "ID", "Questions", "Title")
		fmt.Fprintln(out, strings.Repeat("─", 72))

		for _, c := range bank.Categories() {
			fmt.Fprintf(out, "%-20s  %9d  %s\n", c.ID, len(c.Questions), c.Title)
			if priority, ok := rules[c.ID]; ok {
				topics := selector.OrderSubtopics(c.Questions, priority)
				fmt.Fprintf(out, "%-20s  %9s  %s\n", "", "", strings.Join(topics, " | "))
			}
		}

		fmt.Fprintf(out, "\n%d categories, %d questions\n", bank.Count(), bank.QuestionCount())
		return nil
	},
}
