package questions

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
)

//go:generate go run ../.. generate observation --out data --assets ../../public

//go:embed data/*.json
var bundled embed.FS

// ErrDuplicateCategory is returned when two datasets share a category id.
var ErrDuplicateCategory = errors.New("duplicate category id")

// DatasetFiles lists the dataset files in display order.
var DatasetFiles = []string{
	"bible.json",
	"rite-doctrine.json",
	"church-history.json",
	"science.json",
	"scouting-materials.json",
	"arts.json",
	"technology.json",
	"mental-abilities.json",
	"observation-power.json",
	"sports.json",
	"public-health.json",
	"general-knowledge.json",
}

// BundledFS returns the datasets compiled into the binary.
func BundledFS() fs.FS {
	sub, err := fs.Sub(bundled, "data")
	if err != nil {
		// fs.Sub only fails on an invalid path literal.
		panic(err)
	}
	return sub
}

// LoadEmbedded loads the bundled datasets.
func LoadEmbedded() (*Bank, error) {
	return LoadFS(BundledFS())
}

// LoadFS reads every file in DatasetFiles from fsys, validates it against the
// dataset schema and builds a Bank in DatasetFiles order.
func LoadFS(fsys fs.FS) (*Bank, error) {
	categories := make([]Category, 0, len(DatasetFiles))
	for _, name := range DatasetFiles {
		cat, err := loadFile(fsys, name)
		if err != nil {
			return nil, err
		}
		categories = append(categories, cat)
	}
	return NewBank(categories)
}

func loadFile(fsys fs.FS, name string) (Category, error) {
	raw, err := fs.ReadFile(fsys, name)
	if err != nil {
		return Category{}, fmt.Errorf("read %s: %w", name, err)
	}
	if err := Validate(raw); err != nil {
		return Category{}, fmt.Errorf("validate %s: %w", name, err)
	}

	var cat Category
	if err := json.Unmarshal(raw, &cat); err != nil {
		return Category{}, fmt.Errorf("decode %s: %w", name, err)
	}
	return cat, nil
}
