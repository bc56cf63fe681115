// Package config loads export settings and sheet manifests from YAML.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"github.com/ukaji3/tcosheet-go/pkg/tcosheet"
	"github.com/ukaji3/tcosheet-go/pkg/tcosheet/models"
	"github.com/ukaji3/tcosheet-go/pkg/tcosheet/writer"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

var hexColor = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

// Config is a parsed configuration file.
type Config struct {
	Palette PaletteConfig `yaml:"palette"`
	Export  ExportConfig  `yaml:"export"`
	Sheets  []SheetConfig `yaml:"sheets"`

	// dir resolves relative source files.
	dir string
}

// PaletteConfig overrides palette entries. A missing entry keeps the default.
type PaletteConfig struct {
	RankFirst  *writer.Highlight `yaml:"rank_first"`
	RankSecond *writer.Highlight `yaml:"rank_second"`
	Subtotal   *writer.Highlight `yaml:"subtotal"`
	GrandTotal *writer.Highlight `yaml:"grand_total"`
	BoldTotal  *writer.Highlight `yaml:"bold_total"`
}

type ExportConfig struct {
	OnMissingRole string   `yaml:"on_missing_role"`
	RankTotalRows bool     `yaml:"rank_total_rows"`
	ColumnPadding *float64 `yaml:"column_padding"`
	Filename      string   `yaml:"filename"`
}

// SheetConfig declares one sheet, either inline or read from a workbook.
type SheetConfig struct {
	Name        string          `yaml:"name"`
	Kind        string          `yaml:"kind"`
	Competitors []string        `yaml:"competitors"`
	Columns     []string        `yaml:"columns"`
	Rows        [][]interface{} `yaml:"rows"`
	Source      *SourceConfig   `yaml:"source"`
}

type SourceConfig struct {
	File  string `yaml:"file"`
	Sheet string `yaml:"sheet"`
}

// Load reads and validates the configuration file at path. Source files
// are resolved relative to its directory.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	cfg.dir = filepath.Dir(path)
	return cfg, nil
}

// Parse decodes and validates a configuration document. Unknown keys are
// rejected; an empty document is the default configuration.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Export.OnMissingRole == "" {
		c.Export.OnMissingRole = string(tcosheet.RolePolicySkip)
	}
	if c.Export.Filename == "" {
		c.Export.Filename = tcosheet.DefaultFilename
	}
	for i := range c.Sheets {
		s := &c.Sheets[i]
		if s.Kind == "" {
			s.Kind = string(models.KindGeneric)
		}
		if s.Source != nil && s.Source.Sheet == "" {
			s.Source.Sheet = s.Name
		}
	}
}

// Validate reports the first problem in c.
func (c *Config) Validate() error {
	if _, err := tcosheet.ParseRolePolicy(c.Export.OnMissingRole); err != nil {
		return fmt.Errorf("%w: export: %v", ErrInvalid, err)
	}
	if c.Export.ColumnPadding != nil && *c.Export.ColumnPadding < 0 {
		return fmt.Errorf("%w: export: negative column_padding", ErrInvalid)
	}
	for name, h := range map[string]*writer.Highlight{
		"rank_first":  c.Palette.RankFirst,
		"rank_second": c.Palette.RankSecond,
		"subtotal":    c.Palette.Subtotal,
		"grand_total": c.Palette.GrandTotal,
		"bold_total":  c.Palette.BoldTotal,
	} {
		if h == nil {
			continue
		}
		for _, color := range []string{h.Fill, h.Font} {
			if color != "" && !hexColor.MatchString(color) {
				return fmt.Errorf("%w: palette.%s: color %q is not #RRGGBB", ErrInvalid, name, color)
			}
		}
	}

	seen := make(map[string]bool, len(c.Sheets))
	for i, s := range c.Sheets {
		invalid := func(format string, args ...interface{}) error {
			return fmt.Errorf("%w: sheets[%d] %q: %s", ErrInvalid, i, s.Name, fmt.Sprintf(format, args...))
		}
		if strings.TrimSpace(s.Name) == "" {
			return invalid("missing name")
		}
		key := strings.ToLower(s.Name)
		if seen[key] {
			return invalid("duplicate name")
		}
		seen[key] = true
		if _, err := models.ParseSheetKind(s.Kind); err != nil {
			return invalid("%v", err)
		}

		inline := len(s.Columns) > 0 || len(s.Rows) > 0
		switch {
		case inline && s.Source != nil:
			return invalid("both inline data and source")
		case s.Source != nil && s.Source.File == "":
			return invalid("source without file")
		case !inline && s.Source == nil:
			return invalid("no data")
		}
	}
	return nil
}

// HighlightPalette returns the default palette with the configured overrides.
func (c *Config) HighlightPalette() writer.Palette {
	p := writer.DefaultPalette()
	for _, o := range []struct {
		src *writer.Highlight
		dst *writer.Highlight
	}{
		{c.Palette.RankFirst, &p.RankFirst},
		{c.Palette.RankSecond, &p.RankSecond},
		{c.Palette.Subtotal, &p.Subtotal},
		{c.Palette.GrandTotal, &p.GrandTotal},
		{c.Palette.BoldTotal, &p.BoldTotal},
	} {
		if o.src != nil {
			*o.dst = *o.src
		}
	}
	return p
}

// Options converts the export section into exporter options.
func (c *Config) Options(logger *zerolog.Logger) tcosheet.Options {
	palette := c.HighlightPalette()
	return tcosheet.Options{
		OnMissingRole: tcosheet.RolePolicy(c.Export.OnMissingRole),
		RankTotalRows: c.Export.RankTotalRows,
		Padding:       c.Export.ColumnPadding,
		Palette:       &palette,
		Logger:        logger,
	}
}

// Registry builds the declared sheets in file order, loading source
// workbooks as needed.
func (c *Config) Registry() (*tcosheet.Registry, error) {
	reg := tcosheet.NewRegistry()
	for _, s := range c.Sheets {
		sheet, err := c.sheet(s)
		if err != nil {
			return nil, err
		}
		if err := reg.Register(s.Name, sheet); err != nil {
			return nil, err
		}
	}
	return reg, nil
}

func (c *Config) sheet(s SheetConfig) (tcosheet.Sheet, error) {
	kind, err := models.ParseSheetKind(s.Kind)
	if err != nil {
		return tcosheet.Sheet{}, err
	}
	sheet := tcosheet.Sheet{Kind: kind, Competitors: s.Competitors}
	if s.Source == nil {
		sheet.Dataset = models.Dataset{Columns: s.Columns, Rows: s.Rows}
		return sheet, nil
	}

	path := s.Source.File
	if !filepath.IsAbs(path) && c.dir != "" {
		path = filepath.Join(c.dir, path)
	}
	sheet.Dataset, err = tcosheet.LoadSheet(path, s.Source.Sheet)
	if err != nil {
		return tcosheet.Sheet{}, fmt.Errorf("sheet %q: %w", s.Name, err)
	}
	return sheet, nil
}
