// Package config loads the underline parameters and render options of the
// command line tool from YAML or TOML files.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/gogpu/underline"
	"github.com/gogpu/underline/decoration"
	"github.com/gogpu/underline/text"
)

var (
	// ErrUnsupportedFormat is returned for files that are neither YAML nor TOML.
	ErrUnsupportedFormat = errors.New("config: unsupported file format")

	// ErrInvalid is returned when a value is out of range.
	ErrInvalid = errors.New("config: invalid value")
)

// Format is a configuration file syntax.
type Format int

const (
	// FormatYAML is YAML, read with gopkg.in/yaml.v3.
	FormatYAML Format = iota
	// FormatTOML is TOML, read with go-toml.
	FormatTOML
)

// String returns the format name.
func (f Format) String() string {
	switch f {
	case FormatYAML:
		return "yaml"
	case FormatTOML:
		return "toml"
	default:
		return "unknown"
	}
}

// FormatFromPath picks the format from the file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnsupportedFormat, path)
	}
}

// File is the content of a configuration file. Keys missing from the file
// keep their Default values.
type File struct {
	UnderlineOffsetRatio float64 `yaml:"underline_offset_ratio" toml:"underline_offset_ratio"`
	UnderlineStrokeRatio float64 `yaml:"underline_stroke_ratio" toml:"underline_stroke_ratio"`
	ClearanceRatio       float64 `yaml:"clearance_ratio" toml:"clearance_ratio"`
	Alpha                uint8   `yaml:"alpha" toml:"alpha"`
	MinTextSize          float64 `yaml:"min_text_size" toml:"min_text_size"`

	// Width is the paragraph width in pixels.
	Width int `yaml:"width" toml:"width"`
	// TextSize is the base text size in pixels.
	TextSize float64 `yaml:"text_size" toml:"text_size"`
	// Align is left, center or right.
	Align string `yaml:"align" toml:"align"`
	// Padding surrounds the paragraph in the rendered image.
	Padding int `yaml:"padding" toml:"padding"`
	// Font is a font family name known to the markup package.
	Font string `yaml:"font" toml:"font"`
	// DemoState is the decoration drawn for links: none, simple, wide,
	// intersections or elegant.
	DemoState string `yaml:"demo_state" toml:"demo_state"`
}

// Default returns the default configuration.
func Default() *File {
	p := underline.DefaultParams()
	return &File{
		UnderlineOffsetRatio: p.UnderlineOffsetRatio,
		UnderlineStrokeRatio: p.UnderlineStrokeRatio,
		ClearanceRatio:       p.ClearanceRatio,
		Alpha:                p.Alpha,
		MinTextSize:          p.MinTextSize,
		Width:                600,
		TextSize:             36,
		Align:                text.AlignLeft.String(),
		Padding:              16,
		Font:                 "go",
		DemoState:            "elegant",
	}
}

// Load reads and validates the configuration file at path.
func Load(path string) (*File, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	// #nosec G304 -- config path is provided by the user
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	f, err := Parse(data, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return f, nil
}

// Parse decodes data over the defaults and validates the result.
// Unknown keys are rejected.
func Parse(data []byte, format Format) (*File, error) {
	f := Default()
	switch format {
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(f); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("config: decode yaml: %w", err)
		}
	case FormatTOML:
		dec := toml.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(f); err != nil {
			return nil, fmt.Errorf("config: decode toml: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedFormat, format)
	}
	if err := f.Validate(); err != nil {
		return nil, err
	}
	return f, nil
}

// Marshal encodes f in the given format.
func (f *File) Marshal(format Format) ([]byte, error) {
	switch format {
	case FormatYAML:
		return yaml.Marshal(f)
	case FormatTOML:
		return toml.Marshal(f)
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedFormat, format)
	}
}

// Params returns the underline parameters of f.
func (f *File) Params() underline.Params {
	return underline.Params{
		UnderlineOffsetRatio: f.UnderlineOffsetRatio,
		UnderlineStrokeRatio: f.UnderlineStrokeRatio,
		ClearanceRatio:       f.ClearanceRatio,
		Alpha:                f.Alpha,
		MinTextSize:          f.MinTextSize,
	}
}

// TextAlign parses Align.
func (f *File) TextAlign() (text.Align, error) {
	for _, a := range []text.Align{text.AlignLeft, text.AlignCenter, text.AlignRight} {
		if strings.EqualFold(f.Align, a.String()) {
			return a, nil
		}
	}
	return text.AlignLeft, fmt.Errorf("%w: align must be left, center or right, got %q", ErrInvalid, f.Align)
}

// State parses DemoState.
func (f *File) State() (decoration.DemoState, error) {
	s, ok := decoration.ParseDemoState(f.DemoState)
	if !ok {
		return s, fmt.Errorf("%w: unknown demo_state %q", ErrInvalid, f.DemoState)
	}
	return s, nil
}

// Validate reports the first invalid value of f.
func (f *File) Validate() error {
	if err := f.Params().Validate(); err != nil {
		return err
	}
	if f.Width <= 0 {
		return fmt.Errorf("%w: width must be positive, got %d", ErrInvalid, f.Width)
	}
	if !(f.TextSize > 0) {
		return fmt.Errorf("%w: text_size must be positive, got %v", ErrInvalid, f.TextSize)
	}
	if f.Padding < 0 {
		return fmt.Errorf("%w: padding must not be negative, got %d", ErrInvalid, f.Padding)
	}
	if _, err := f.TextAlign(); err != nil {
		return err
	}
	if _, err := f.State(); err != nil {
		return err
	}
	return nil
}
