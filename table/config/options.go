package config

import (
	"fmt"
	"log/slog"

	"github.com/kode4food/tabula/table"
)

// Headers appends field columns in the order provided. Field names must be
// unique across all headers
func Headers[T any](h ...table.Header[T]) Option[T] {
	return func(c *Config[T]) error {
		c.Headers = append(c.Headers, h...)
		return nil
	}
}

// CustomHeaders appends synthetic columns rendered from whole records
func CustomHeaders[T any](h ...table.CustomHeader[T]) Option[T] {
	return func(c *Config[T]) error {
		c.CustomHeaders = append(c.CustomHeaders, h...)
		return nil
	}
}

// AutoSerial adds a 1-based row number column, offset by the page start
func AutoSerial[T any](c *Config[T]) error {
	c.AutoSerial = true
	return nil
}

// AutoCheckBox adds a selection column along with a "select all" control
func AutoCheckBox[T any](c *Config[T]) error {
	c.AutoCheckBox = true
	return nil
}

// Loading starts the Table in its loading state
func Loading[T any](c *Config[T]) error {
	c.Loading = true
	return nil
}

// LoadingText replaces the text of the loading placeholder
func LoadingText[T any](text string) Option[T] {
	return func(c *Config[T]) error {
		c.LoadingText = text
		return nil
	}
}

// PrimaryFilter configures the single-field filter
func PrimaryFilter[T any](f table.FilterOptions[T]) Option[T] {
	return func(c *Config[T]) error {
		c.PrimaryFilter = &f
		return nil
	}
}

// Search configures the keyword search box
func Search[T any](s table.SearchOptions) Option[T] {
	return func(c *Config[T]) error {
		if s.Placeholder == "" {
			s.Placeholder = table.DefaultSearchPlaceholder
		}
		c.Search = &s
		return nil
	}
}

// Sorting enables sorting of the derived view using the provided Comparator
func Sorting[T any](fn table.Comparator[T]) Option[T] {
	return func(c *Config[T]) error {
		c.Sorting = &table.SortOptions[T]{
			Enabled: true,
			Sorter:  fn,
		}
		return nil
	}
}

// SortOptions installs sorting options as provided, enabled or not
func SortOptions[T any](s table.SortOptions[T]) Option[T] {
	return func(c *Config[T]) error {
		c.Sorting = &s
		return nil
	}
}

// CustomFilters appends predicates that every displayed record must satisfy
func CustomFilters[T any](p ...table.Predicate[T]) Option[T] {
	return func(c *Config[T]) error {
		c.CustomFilters = append(c.CustomFilters, p...)
		return nil
	}
}

// CustomPaginator supplies the initial page window along with transition
// callbacks
func CustomPaginator[T any](p table.Paginator) Option[T] {
	return func(c *Config[T]) error {
		c.Paginator = &p
		return nil
	}
}

// PageSize sets the initial page size
func PageSize[T any](size int) Option[T] {
	return func(c *Config[T]) error {
		if size < 1 {
			return fmt.Errorf("%w: %d", table.ErrInvalidPageSize, size)
		}
		c.PageSize = size
		return nil
	}
}

// PageSizes replaces the page size choices offered ahead of "All"
func PageSizes[T any](sizes ...int) Option[T] {
	return func(c *Config[T]) error {
		for _, s := range sizes {
			if s < 1 {
				return fmt.Errorf("%w: %d", table.ErrInvalidPageSize, s)
			}
		}
		c.PageSizes = sizes
		return nil
	}
}

// OnObjectChecked registers a callback for single row selection changes
func OnObjectChecked[T any](fn func(T, bool)) Option[T] {
	return func(c *Config[T]) error {
		c.OnObjectChecked = fn
		return nil
	}
}

// OnAllCheckedChange registers a callback for "select all" changes,
// including the implicit clearing that follows every page change
func OnAllCheckedChange[T any](fn func(bool, int, int)) Option[T] {
	return func(c *Config[T]) error {
		c.OnAllCheckedChange = fn
		return nil
	}
}

// RowTitle computes a title for each displayed row
func RowTitle[T any](fn table.RecordRenderer[T]) Option[T] {
	return func(c *Config[T]) error {
		c.RowTitle = fn
		return nil
	}
}

// OnRowClick registers a callback for row clicks
func OnRowClick[T any](fn table.RecordConsumer[T]) Option[T] {
	return func(c *Config[T]) error {
		c.OnRowClick = fn
		return nil
	}
}

// Logger replaces the default slog Logger
func Logger[T any](l *slog.Logger) Option[T] {
	return func(c *Config[T]) error {
		if l != nil {
			c.Logger = l
		}
		return nil
	}
}
