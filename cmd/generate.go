package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abaqira/guidebook/internal/obsgen"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate question datasets",
}

var generateObservationCmd = &cobra.Command{
	Use:   "observation",
	Short: "Generate the observation-power counting questions and their SVG images",
	Long: `Generate the observation-power category.

Writes observation-power.json under --out and observation-images/observation-NNN.svg
under --assets (default: --out). The same seed always produces the same set.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		out, _ := cmd.Flags().GetString("out")
		seed, _ := cmd.Flags().GetUint64("seed")
		count, _ := cmd.Flags().GetInt("count")
		assets, _ := cmd.Flags().GetString("assets")
		if assets == "" {
			assets = out
		}

		res, err := obsgen.Generate(obsgen.Options{Seed: seed, Count: count})
		if err != nil {
			return fmt.Errorf("generate: %w", err)
		}
		if err := res.Write(out, assets); err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "wrote %d questions to %s and %d images to %s\n",
			len(res.Category.Questions), out, len(res.Images), assets)
		return nil
	},
}

func init() {
	generateObservationCmd.Flags().String("out", ".", "Output directory for observation-power.json")
	generateObservationCmd.Flags().String("assets", "", "Root directory for observation-images (default: --out)")
	generateObservationCmd.Flags().Uint64("seed", obsgen.DefaultSeed, "Random seed")
	generateObservationCmd.Flags().Int("count", obsgen.DefaultSize, "Number of questions")

	generateCmd.AddCommand(generateObservationCmd)
}
