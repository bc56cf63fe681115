package writer

import (
	"github.com/xuri/excelize/v2"

	"github.com/ukaji3/tcosheet-go/pkg/tcosheet/models"
)

// Highlight is the visual treatment of one cell style.
type Highlight struct {
	Bold bool   `yaml:"bold" json:"bold"`
	Fill string `yaml:"fill" json:"fill"`
	Font string `yaml:"font" json:"font"`
}

// Palette maps every highlighting cell style to its treatment.
type Palette struct {
	RankFirst  Highlight `yaml:"rank_first" json:"rank_first"`
	RankSecond Highlight `yaml:"rank_second" json:"rank_second"`
	Subtotal   Highlight `yaml:"subtotal" json:"subtotal"`
	GrandTotal Highlight `yaml:"grand_total" json:"grand_total"`
	BoldTotal  Highlight `yaml:"bold_total" json:"bold_total"`
}

// DefaultPalette returns the canonical colours.
func DefaultPalette() Palette {
	return Palette{
		RankFirst:  Highlight{Fill: "#C6EFCE"},
		RankSecond: Highlight{Fill: "#FFEB9C"},
		Subtotal:   Highlight{Bold: true, Fill: "#FFEB9C", Font: "#1A1A1A"},
		GrandTotal: Highlight{Bold: true, Fill: "#C6EFCE", Font: "#1A5E20"},
		BoldTotal:  Highlight{Bold: true, Fill: "#D9EAD3", Font: "#1A5E20"},
	}
}

// For returns the treatment of style. StyleNone has none.
func (p Palette) For(style models.CellStyle) (Highlight, bool) {
	switch style {
	case models.StyleRankFirst:
		return p.RankFirst, true
	case models.StyleRankSecond:
		return p.RankSecond, true
	case models.StyleSubtotal:
		return p.Subtotal, true
	case models.StyleGrandTotal:
		return p.GrandTotal, true
	case models.StyleBoldTotal:
		return p.BoldTotal, true
	}
	return Highlight{}, false
}

type styleKey struct {
	style  models.CellStyle
	numFmt string
}

// StyleCache registers each (cell style, number format) pair once per workbook.
type StyleCache struct {
	file    *excelize.File
	palette Palette
	ids     map[styleKey]int
}

// NewStyleCache creates a cache bound to f.
func NewStyleCache(f *excelize.File, palette Palette) *StyleCache {
	return &StyleCache{
		file:    f,
		palette: palette,
		ids:     make(map[styleKey]int),
	}
}

// ID returns the workbook style index for style with the number format
// code numFmt. Zero means the default style.
func (c *StyleCache) ID(style models.CellStyle, numFmt string) (int, error) {
	h, highlighted := c.palette.For(style)
	if !highlighted && numFmt == "" {
		return 0, nil
	}
	key := styleKey{style: style, numFmt: numFmt}
	if id, ok := c.ids[key]; ok {
		return id, nil
	}

	s := &excelize.Style{}
	if numFmt != "" {
		code := numFmt
		s.CustomNumFmt = &code
	}
	if h.Bold || h.Font != "" {
		s.Font = &excelize.Font{Bold: h.Bold, Color: h.Font}
	}
	if h.Fill != "" {
		s.Fill = excelize.Fill{Type: "pattern", Color: []string{h.Fill}, Pattern: 1}
	}

	id, err := c.file.NewStyle(s)
	if err != nil {
		return 0, err
	}
	c.ids[key] = id
	return id, nil
}
