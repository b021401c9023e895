package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/abaqira/guidebook/internal/config"
	"github.com/abaqira/guidebook/internal/questions"
)

var rootCmd = &cobra.Command{
	Use:   "abaqira",
	Short: "Abaqira competition guidebook",
	Long:  "Abaqira: terminal guidebook and question bank for the Abaqira season 5 (2026) competition.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "Path to config file (default ./abaqira.yaml or $XDG_CONFIG_HOME/abaqira/abaqira.yaml)")
	rootCmd.PersistentFlags().String("data-dir", "", "Directory with category JSON files (overrides ABAQIRA_DATA_DIR; default: bundled datasets)")
	rootCmd.PersistentFlags().String("assets-dir", "", "Directory holding cover and question images (default \"public\")")
	rootCmd.PersistentFlags().String("log-file", "", "Log file path (overrides ABAQIRA_LOG_FILE)")

	rootCmd.AddCommand(categoriesCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(versionCmd)
}

// loadConfig resolves settings with the command's flags bound on top.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(config.Options{
		ConfigFile: path,
		Flags:      cmd.Flags(),
	})
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}

// loadBank reads the datasets from cfg.DataDir, or the bundled copies when
// no directory is configured.
func loadBank(cfg *config.Config) (*questions.Bank, error) {
	if cfg.DataDir == "" {
		return questions.LoadEmbedded()
	}
	b, err := questions.LoadFS(os.DirFS(cfg.DataDir))
	if err != nil {
		return nil, fmt.Errorf("load datasets from %s: %w", cfg.DataDir, err)
	}
	return b, nil
}
