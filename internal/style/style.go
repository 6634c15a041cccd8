// Package style holds the caller-owned cartoon appearance: cross-section
// sizes and colors per secondary structure.
package style

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/gogpu/ribbon"
)

//go:embed default.yaml
var defaultYAML []byte

// RGB is a color with components in [0, 1].
type RGB [3]float64

// Part describes the cross-section of one structure class.
type Part struct {
	Width     float64 `yaml:"width"`
	Thickness float64 `yaml:"thickness"`
	Color     RGB     `yaml:"color"`
	// Arrow scales the width at the base of a strand arrowhead.
	// Only used for sheets.
	Arrow float64 `yaml:"arrow,omitempty"`
}

// Style is the full cartoon appearance.
type Style struct {
	Background RGB `yaml:"background"`
	// Outline is the stroke width, in pixels, drawn around ribbon faces.
	Outline float64 `yaml:"outline"`
	Helix   Part    `yaml:"helix"`
	Sheet   Part    `yaml:"sheet"`
	Turn    Part    `yaml:"turn"`
}

// Default returns the built-in style.
func Default() Style {
	s, err := Parse(defaultYAML)
	if err != nil {
		panic(fmt.Sprintf("style: invalid built-in style: %v", err))
	}
	return s
}

// Load reads a style file. Keys missing from the file keep their default
// values.
func Load(path string) (Style, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Style{}, fmt.Errorf("style: %w", err)
	}
	s, err := overlay(data)
	if err != nil {
		return Style{}, fmt.Errorf("style: %s: %w", path, err)
	}
	return s, nil
}

// Parse decodes a complete style document.
func Parse(data []byte) (Style, error) {
	var s Style
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Style{}, err
	}
	return s, s.Validate()
}

func overlay(data []byte) (Style, error) {
	s := Default()
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Style{}, err
	}
	return s, s.Validate()
}

// For returns the part used for a secondary structure.
func (s *Style) For(ss ribbon.SecondaryStructure) Part {
	switch ss {
	case ribbon.Helix:
		return s.Helix
	case ribbon.Sheet:
		return s.Sheet
	default:
		return s.Turn
	}
}

// Validate checks that all sizes are positive and colors in range.
func (s *Style) Validate() error {
	var errs []error
	if !s.Background.valid() {
		errs = append(errs, fmt.Errorf("background color %v out of range", s.Background))
	}
	if s.Outline < 0 {
		errs = append(errs, fmt.Errorf("outline %v is negative", s.Outline))
	}
	for _, p := range []struct {
		name string
		part Part
	}{{"helix", s.Helix}, {"sheet", s.Sheet}, {"turn", s.Turn}} {
		if p.part.Width <= 0 || p.part.Thickness <= 0 {
			errs = append(errs, fmt.Errorf("%s: width and thickness must be positive", p.name))
		}
		if !p.part.Color.valid() {
			errs = append(errs, fmt.Errorf("%s: color %v out of range", p.name, p.part.Color))
		}
	}
	if s.Sheet.Arrow < 1 {
		errs = append(errs, fmt.Errorf("sheet: arrow factor %v must be at least 1", s.Sheet.Arrow))
	}
	return errors.Join(errs...)
}

func (c RGB) valid() bool {
	for _, v := range c {
		if v < 0 || v > 1 {
			return false
		}
	}
	return true
}
