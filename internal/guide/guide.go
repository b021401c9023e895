// Package guide loads the bundled guidebook text shown on the content pages.
package guide

import (
	_ "embed"
	"errors"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// PageCount is the number of guidebook pages.
const PageCount = 6

// ErrInvalidGuide is returned when the guidebook content is incomplete.
var ErrInvalidGuide = errors.New("invalid guidebook")

//go:embed guidebook.yaml
var bundled []byte

// Hero is the welcome page block.
type Hero struct {
	Kicker   string `yaml:"kicker"`
	Title    string `yaml:"title"`
	Year     string `yaml:"year"`
	Start    string `yaml:"start"`
	Cover    string `yaml:"cover"`
	CoverAlt string `yaml:"cover_alt"`
}

// TOCItem is one table-of-contents line.
type TOCItem struct {
	Topic string `yaml:"topic"`
	Page  int    `yaml:"page"`
}

// Round lists the categories played in one round.
type Round struct {
	Title string   `yaml:"title"`
	Items []string `yaml:"items"`
}

// Section is a titled list of points.
type Section struct {
	Title  string   `yaml:"title"`
	Points []string `yaml:"points"`
}

// Guidebook is the full text content of the guide.
type Guidebook struct {
	Brand        string    `yaml:"brand"`
	Pages        []string  `yaml:"pages"`
	Hero         Hero      `yaml:"hero"`
	Intro        []string  `yaml:"intro"`
	TOC          []TOCItem `yaml:"toc"`
	Rules        []string  `yaml:"rules"`
	Rounds       []Round   `yaml:"rounds"`
	Explanations []Section `yaml:"explanations"`
	Penalties    []Section `yaml:"penalties"`
	BankNote     string    `yaml:"bank_note"`
}

// Load decodes the bundled guidebook.
func Load() (*Guidebook, error) {
	return Parse(bundled)
}

// Parse decodes and checks guidebook YAML.
func Parse(data []byte) (*Guidebook, error) {
	var g Guidebook
	if err := yaml.Unmarshal(data, &g); err != nil {
		return nil, fmt.Errorf("decode guidebook: %w", err)
	}
	if err := g.validate(); err != nil {
		return nil, err
	}
	return &g, nil
}

func (g *Guidebook) validate() error {
	var problems []string

	if len(g.Pages) != PageCount {
		problems = append(problems, fmt.Sprintf("expected %d pages, got %d", PageCount, len(g.Pages)))
	}
	if g.Hero.Title == "" {
		problems = append(problems, "hero title is empty")
	}
	if len(g.Intro) == 0 {
		problems = append(problems, "intro is empty")
	}
	if len(g.Rules) == 0 {
		problems = append(problems, "rules are empty")
	}
	if len(g.Rounds) == 0 {
		problems = append(problems, "rounds are empty")
	}
	if len(g.Penalties) == 0 {
		problems = append(problems, "penalty rules are empty")
	}

	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidGuide, strings.Join(problems, "; "))
	}
	return nil
}
