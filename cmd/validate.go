package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abaqira/guidebook/internal/guide"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate the guidebook and the question datasets",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		if _, err := guide.Load(); err != nil {
			return fmt.Errorf("guide: %w", err)
		}

		bank, err := loadBank(cfg)
		if err != nil {
			return err
		}

		source := "bundled datasets"
		if cfg.DataDir != "" {
			source = cfg.DataDir
		}
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%s: ok\n", source)
		for _, c := range bank.Categories() {
			fmt.Fprintf(out, "  %-20s  %4d\n", c.ID, len(c.Questions))
		}
		fmt.Fprintf(out, "%d categories, %d questions\n", bank.Count(), bank.QuestionCount())
		return nil
	},
}
