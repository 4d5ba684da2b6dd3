package dataset

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/kode4food/tabula/internal/view"
	"github.com/kode4food/tabula/table"
	"github.com/kode4food/tabula/table/config"
)

type (
	// Record is a single row of a loaded dataset, keyed by field name
	Record map[string]any

	// Document is the YAML form of a dataset along with the configuration
	// of the Table that displays it
	Document struct {
		Columns  []Column `yaml:"columns"`
		Actions  []Action `yaml:"actions,omitempty"`
		Filter   *Filter  `yaml:"filter,omitempty"`
		Search   *Search  `yaml:"search,omitempty"`
		Sort     *Sort    `yaml:"sort,omitempty"`
		PageSize int      `yaml:"pageSize,omitempty"`
		Serial   bool     `yaml:"serial,omitempty"`
		CheckBox bool     `yaml:"checkBox,omitempty"`
		Records  []Record `yaml:"records"`
	}

	// Column describes a displayed field. Format is an optional fmt verb
	// string used to render the field's value
	Column struct {
		Field  string `yaml:"field"`
		Label  string `yaml:"label,omitempty"`
		Format string `yaml:"format,omitempty"`
		Hidden bool   `yaml:"hidden,omitempty"`
	}

	// Action describes a custom column that displays fixed text for every
	// record, such as an "Edit" link
	Action struct {
		Name  string `yaml:"name"`
		Label string `yaml:"label,omitempty"`
		Text  string `yaml:"text"`
	}

	// Filter configures the primary filter
	Filter struct {
		By      string `yaml:"by"`
		Label   string `yaml:"label,omitempty"`
		Default string `yaml:"default,omitempty"`
	}

	// Search configures the keyword search box. Behavior is either
	// "button" or "type"
	Search struct {
		Behavior    string `yaml:"behavior,omitempty"`
		Placeholder string `yaml:"placeholder,omitempty"`
	}

	// Sort configures the sort order of the derived view
	Sort struct {
		By         string `yaml:"by"`
		Descending bool   `yaml:"descending,omitempty"`
		Disabled   bool   `yaml:"disabled,omitempty"`
	}

	// Hooks receive the notifications a Table forwards to its owner
	Hooks struct {
		OnKeywordChange func([]string)
		OnFilterChange  func(string)
		OnObjectChecked func(Record, bool)
	}
)

// Error messages
var (
	ErrNoColumns      = errors.New("dataset declares no columns")
	ErrUnknownColumn  = errors.New("dataset references an undeclared column")
	ErrUnknownSearch  = errors.New("unknown search behavior")
	ErrColumnRequired = errors.New("column requires a field name")
)

// Load reads a Document from a YAML file
func Load(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()
	return Decode(f)
}

// Decode reads a Document from YAML and validates it
func Decode(r io.Reader) (*Document, error) {
	var doc Document
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("decoding dataset: %w", err)
	}
	if err := doc.validate(); err != nil {
		return nil, err
	}
	return &doc, nil
}

func (d *Document) validate() error {
	if len(d.Columns) == 0 {
		return ErrNoColumns
	}
	for _, c := range d.Columns {
		if c.Field == "" {
			return fmt.Errorf("%w: %q", ErrColumnRequired, c.Label)
		}
	}
	if d.Filter != nil && !d.hasColumn(d.Filter.By) {
		return fmt.Errorf("%w: %s", ErrUnknownColumn, d.Filter.By)
	}
	if d.Sort != nil && !d.hasColumn(d.Sort.By) {
		return fmt.Errorf("%w: %s", ErrUnknownColumn, d.Sort.By)
	}
	if d.Search != nil {
		if _, err := searchBehavior(d.Search.Behavior); err != nil {
			return err
		}
	}
	return nil
}

func (d *Document) hasColumn(name string) bool {
	_, ok := d.column(name)
	return ok
}

func (d *Document) column(name string) (Column, bool) {
	for _, c := range d.Columns {
		if c.Field == name {
			return c, true
		}
	}
	return Column{}, false
}

// Options converts the Document's configuration into Table Options. The
// Hooks are attached to the search box, the primary filter, and row
// selection
func (d *Document) Options(h Hooks) []config.Option[Record] {
	var res []config.Option[Record]
	headers := make([]table.Header[Record], len(d.Columns))
	for i, c := range d.Columns {
		headers[i] = c.header()
	}
	res = append(res, config.Headers(headers...))
	for _, a := range d.Actions {
		res = append(res, config.CustomHeaders(a.header()))
	}

	if d.PageSize > 0 {
		res = append(res, config.PageSize[Record](d.PageSize))
	}
	if d.Serial {
		res = append(res, config.AutoSerial[Record])
	}
	if d.CheckBox {
		res = append(res, config.AutoCheckBox[Record])
	}
	if f := d.Filter; f != nil {
		col, _ := d.column(f.By)
		label := f.Label
		if label == "" {
			label = col.label()
		}
		render := col.renderer()
		res = append(res, config.PrimaryFilter(table.FilterOptions[Record]{
			By:    FieldOf(f.By),
			Label: label,
			ValueExtractor: func(v any) string {
				return FilterValue(view.Label(v, render))
			},
			OnFilterChange: h.OnFilterChange,
			DefaultValue:   f.defaultValue(),
		}))
	}
	if s := d.Search; s != nil {
		b, _ := searchBehavior(s.Behavior)
		res = append(res, config.Search[Record](table.SearchOptions{
			Placeholder:     s.Placeholder,
			Behavior:        b,
			OnKeywordChange: h.OnKeywordChange,
		}))
	}
	if s := d.Sort; s != nil {
		res = append(res, config.SortOptions(table.SortOptions[Record]{
			Enabled: !s.Disabled,
			Sorter:  By(s.By, s.Descending),
		}))
	}
	if h.OnObjectChecked != nil {
		res = append(res, config.OnObjectChecked(h.OnObjectChecked))
	}
	return res
}

func (f *Filter) defaultValue() string {
	if f.Default == "" {
		return ""
	}
	return FilterValue(f.Default)
}

func searchBehavior(s string) (table.SearchBehavior, error) {
	switch s {
	case "", "button":
		return table.SearchOnButton, nil
	case "type":
		return table.SearchOnType, nil
	default:
		return 0, fmt.Errorf("%w: %s", ErrUnknownSearch, s)
	}
}

func (c Column) header() table.Header[Record] {
	return table.Header[Record]{
		Field:    FieldOf(c.Field),
		Label:    c.label(),
		Renderer: c.renderer(),
		Hidden:   c.Hidden,
	}
}

func (a Action) header() table.CustomHeader[Record] {
	text := a.Text
	return table.CustomHeader[Record]{
		Name:  table.FieldName(a.Name),
		Label: a.Label,
		Renderer: func(Record) string {
			return text
		},
	}
}

func (c Column) label() string {
	if c.Label != "" {
		return c.Label
	}
	return c.Field
}

func (c Column) renderer() table.Renderer {
	if c.Format == "" {
		return nil
	}
	format := c.Format
	return func(v any) string {
		return fmt.Sprintf(format, v)
	}
}

// FieldOf returns a Field that selects the named entry of a Record
func FieldOf(name string) table.Field[Record] {
	return table.MakeField(table.FieldName(name), func(r Record) any {
		return r[name]
	})
}
