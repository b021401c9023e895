package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abaqira/guidebook/internal/app"
	"github.com/abaqira/guidebook/internal/guide"
	"github.com/abaqira/guidebook/internal/imageload"
	"github.com/abaqira/guidebook/internal/logging"
)

// runApp loads config, content and datasets, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	logger, err := logging.New(cfg)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	g, err := guide.Load()
	if err != nil {
		return fmt.Errorf("load guide: %w", err)
	}

	bank, err := loadBank(cfg)
	if err != nil {
		return err
	}
	logger.Info("datasets loaded",
		zap.String("data_dir", cfg.DataDir),
		zap.Int("categories", bank.Count()),
		zap.Int("questions", bank.QuestionCount()))

	return app.Run(app.Options{
		Guide:  g,
		Bank:   bank,
		Loader: imageload.NewFSLoader(os.DirFS(cfg.AssetsDir)),
		Logger: logger,
	})
}
