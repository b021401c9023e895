package obsgen

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/abaqira/guidebook/internal/questions"
)

// Write stores the category as dataDir/observation-power.json and the images
// under assetsDir/observation-images, where the image paths in the category
// resolve. Stale observation images are removed.
func (r *Result) Write(dataDir, assetsDir string) error {
	imgDir := filepath.Join(assetsDir, ImageDir)
	if err := os.MkdirAll(imgDir, 0o755); err != nil {
		return fmt.Errorf("create image dir: %w", err)
	}

	stale, err := filepath.Glob(filepath.Join(imgDir, "observation-*.svg"))
	if err != nil {
		return fmt.Errorf("list old images: %w", err)
	}
	for _, p := range stale {
		if err := os.Remove(p); err != nil {
			return fmt.Errorf("remove %s: %w", p, err)
		}
	}

	names := make([]string, 0, len(r.Images))
	for name := range r.Images {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		if err := os.WriteFile(filepath.Join(imgDir, name), []byte(r.Images[name]), 0o644); err != nil {
			return fmt.Errorf("write %s: %w", name, err)
		}
	}

	raw, err := json.MarshalIndent(r.Category, "", "  ")
	if err != nil {
		return fmt.Errorf("encode category: %w", err)
	}
	// Keep the output loadable by the dataset loader.
	if err := questions.Validate(raw); err != nil {
		return fmt.Errorf("generated category: %w", err)
	}

	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}
	out := filepath.Join(dataDir, CategoryID+".json")
	if err := os.WriteFile(out, append(raw, '\n'), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", out, err)
	}
	return nil
}
