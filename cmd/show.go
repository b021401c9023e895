package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abaqira/guidebook/internal/questions"
	"github.com/abaqira/guidebook/internal/selector"
)

var showCmd = &cobra.Command{
	Use:   "show <category>",
	Short: "Print the questions of a category",
	Long: `Print the questions visible for a category and subtopic.

Categories with subtopics show the first subtopic unless --subtopic names
another one.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		bank, err := loadBank(cfg)
		if err != nil {
			return err
		}

		// The selector falls back to the first category; the CLI is strict.
		if _, err := bank.Get(args[0]); err != nil {
			return err
		}

		sel := selector.New(bank, selector.DefaultRules())
		sel.SelectCategory(args[0])

		if topic, _ := cmd.Flags().GetString("subtopic"); topic != "" {
			sel.SelectSubtopic(topic)
			if sel.Subtopic() != topic {
				return fmt.Errorf("unknown subtopic %q (available: %s)",
					topic, strings.Join(sel.Subtopics(), ", "))
			}
		}

		return printQuestions(cmd, sel)
	},
}

func printQuestions(cmd *cobra.Command, sel *selector.Selector) error {
	cat, ok := sel.Selected()
	if !ok {
		return errors.New("no categories loaded")
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, cat.Title)
	if sel.Subtopic() != "" {
		fmt.Fprintf(out, "[%s]\n", sel.Subtopic())
	}
	fmt.Fprintln(out, strings.Repeat("─", 60))

	visible := sel.Visible()
	for i, q := range visible {
		fmt.Fprintf(out, "س%d. %s\n", i+1, q.Question)
		if q.HasImage() {
			fmt.Fprintf(out, "    [%s] %s\n", imageLabel(q), q.Image)
		}
		fmt.Fprintf(out, "    ← %s\n", q.Answer)
		if q.Difficulty != "" {
			fmt.Fprintf(out, "    (%s)\n", q.Difficulty)
		}
	}

	fmt.Fprintf(out, "\n%d questions\n", len(visible))
	return nil
}

func imageLabel(q questions.QuestionItem) string {
	if q.ImageAlt != "" {
		return q.ImageAlt
	}
	return "صورة"
}

func init() {
	showCmd.Flags().String("subtopic", "", "Subtopic to show for categories that have them")
}
