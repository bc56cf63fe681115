package tcosheet

import (
	"strings"

	"github.com/ukaji3/tcosheet-go/pkg/tcosheet/models"
)

// Sheet is a dataset tagged with the rules it is exported under.
type Sheet struct {
	Dataset models.Dataset
	Kind    models.SheetKind
	// Competitors optionally names the ranked columns of tco-summary and
	// bid-analysis sheets. Empty means every numeric price column.
	Competitors []string
}

// Registry holds the exportable sheets in registration order.
type Registry struct {
	names  []string
	sheets map[string]Sheet
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{sheets: make(map[string]Sheet)}
}

// Register adds sheet under name. Names are unique case-insensitively.
func (r *Registry) Register(name string, sheet Sheet) error {
	for _, n := range r.names {
		if strings.EqualFold(n, name) {
			return &DuplicateSheetError{Name: name}
		}
	}
	r.names = append(r.names, name)
	r.sheets[name] = sheet
	return nil
}

// Names returns the registered names in registration order. This is the
// default export selection.
func (r *Registry) Names() []string {
	return append([]string(nil), r.names...)
}

// Lookup returns the sheet registered under the exact name.
func (r *Registry) Lookup(name string) (Sheet, bool) {
	s, ok := r.sheets[name]
	return s, ok
}

// Len returns the number of registered sheets.
func (r *Registry) Len() int {
	return len(r.names)
}
