package config

import (
	"fmt"
	"log/slog"

	"github.com/kode4food/tabula/table"
)

type (
	// Config conveys the properties of a Table that one can configure using
	// Options
	Config[T any] struct {
		Headers            []table.Header[T]
		CustomHeaders      []table.CustomHeader[T]
		AutoSerial         bool
		AutoCheckBox       bool
		Loading            bool
		LoadingText        string
		PrimaryFilter      *table.FilterOptions[T]
		Search             *table.SearchOptions
		Sorting            *table.SortOptions[T]
		CustomFilters      []table.Predicate[T]
		Paginator          *table.Paginator
		PageSize           int
		PageSizes          []int
		OnObjectChecked    func(T, bool)
		OnAllCheckedChange func(checked bool, start, offset int)
		RowTitle           table.RecordRenderer[T]
		OnRowClick         table.RecordConsumer[T]
		Logger             *slog.Logger
	}

	// Option applies an option to a table configuration instance
	Option[T any] func(*Config[T]) error
)

// Defaults
const (
	DefaultPageSize = 10
)

// DefaultPageSizes are the page size choices offered ahead of "All"
var DefaultPageSizes = []int{10, 20, 30, 50, 100}

// Make applies the Defaults followed by the provided Options and validates
// the result
func Make[T any](o ...Option[T]) (*Config[T], error) {
	cfg := &Config[T]{}
	if err := Defaults(cfg); err != nil {
		return nil, err
	}
	for _, opt := range o {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Defaults applies the default configuration values
func Defaults[T any](c *Config[T]) error {
	c.PageSize = DefaultPageSize
	c.PageSizes = DefaultPageSizes
	c.LoadingText = table.DefaultLoadingText
	c.Logger = slog.Default()
	return nil
}

func (c *Config[_]) validate() error {
	names := map[table.FieldName]bool{}
	checkName := func(n table.FieldName) error {
		if names[n] {
			return fmt.Errorf("%w: %s", table.ErrDuplicateFieldName, n)
		}
		names[n] = true
		return nil
	}
	for _, h := range c.Headers {
		if h.Field == nil {
			return fmt.Errorf("%w: header %q", table.ErrFieldRequired, h.Label)
		}
		if err := checkName(h.Field.Name()); err != nil {
			return err
		}
	}
	for _, h := range c.CustomHeaders {
		if h.Name == "" {
			return fmt.Errorf("%w: %q", table.ErrCustomNameRequired, h.Label)
		}
		if h.Renderer == nil {
			return fmt.Errorf("%w: %s", table.ErrRendererRequired, h.Name)
		}
		if err := checkName(h.Name); err != nil {
			return err
		}
	}
	if f := c.PrimaryFilter; f != nil {
		if f.By == nil {
			return fmt.Errorf("%w: primary filter", table.ErrFieldRequired)
		}
		if f.Label == "" {
			return table.ErrFilterLabelRequired
		}
	}
	if s := c.Sorting; s != nil && s.Enabled && s.Sorter == nil {
		return table.ErrSorterRequired
	}
	if c.Paginator != nil && c.Paginator.Offset < 1 {
		return fmt.Errorf("%w: %d", table.ErrInvalidPageSize, c.Paginator.Offset)
	}
	return nil
}
