package table

import "errors"

type (
	// Table binds a caller-owned dataset to the interactive state of a data
	// table: the page window, row selection, the search keyword and the
	// primary filter's option set. It never mutates the dataset
	Table[T any] interface {
		// SetData replaces the dataset. The page window returns to the
		// first page and the selection is cleared
		SetData([]T)

		// Data returns the dataset as last supplied
		Data() []T

		// SetLoading toggles the loading placeholder
		SetLoading(bool)

		// Page returns a snapshot of the current page for rendering
		Page() *Page[T]

		// Bounds returns the display bounds of the current page window
		Bounds() Bounds

		// State returns the current page window position
		State() PageState

		// Next advances the page window if a next page exists
		Next() bool

		// Prev moves the page window back if a previous page exists
		Prev() bool

		// Resize changes the page size and returns to the first page
		Resize(int) error

		// ToggleRow flips the selection state of a single row
		ToggleRow(RowID) error

		// ToggleAll selects or clears every record of the dataset, not
		// only those within the page window
		ToggleAll(bool)

		// IsChecked reports whether a row displays as selected
		IsChecked(RowID) bool

		// Checked returns the selected records in dataset order
		Checked() []T

		// TypeKeyword replaces the search text
		TypeKeyword(string)

		// SubmitSearch emits the current keywords when searching on button
		SubmitSearch()

		// ClearSearch resets the search text without emitting keywords
		ClearSearch()

		// Keyword returns the current search text
		Keyword() string

		// FilterOptions returns the derived primary filter option set
		FilterOptions() []FilterOption

		// SelectFilter chooses a primary filter option by value
		SelectFilter(string)

		// ClickHeader triggers the click handler of a column heading
		ClickHeader(FieldName) error

		// ClickCell triggers the cell click handler of a field column
		ClickCell(RowID, FieldName) error

		// ClickRow triggers the row click handler
		ClickRow(RowID) error
	}

	// FieldName is exactly what you think it is
	FieldName string
)

// Error messages
var (
	ErrFieldRequired       = errors.New("field selector is required")
	ErrDuplicateFieldName  = errors.New("field name duplicated in table")
	ErrFieldNotFound       = errors.New("field not found in table")
	ErrRowNotFound         = errors.New("row not found in table")
	ErrInvalidPageSize     = errors.New("page size must be positive")
	ErrSorterRequired      = errors.New("enabled sorting requires a sorter")
	ErrRendererRequired    = errors.New("custom header requires a renderer")
	ErrCustomNameRequired  = errors.New("custom header requires a name")
	ErrFilterLabelRequired = errors.New("primary filter requires a label")
)
