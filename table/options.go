package table

//go:generate stringer -type=SearchBehavior,Status -output=enum_string.go

type (
	// Header describes how a record field is presented as a column. Hidden
	// headers are excluded from both the header row and the data rows
	Header[T any] struct {
		Field       Field[T]
		Label       string
		Renderer    Renderer
		OnClick     func(FieldName)
		OnCellClick RecordConsumer[T]
		Hidden      bool
	}

	// CustomHeader describes a synthetic column that is rendered from the
	// whole record rather than from a single field. Its Name keys the column
	// and must not collide with any field Header
	CustomHeader[T any] struct {
		Name     FieldName
		Label    string
		Renderer RecordRenderer[T]
		OnClick  func(FieldName)
		Hidden   bool
	}

	// FilterOptions configures the primary filter. The Table derives the
	// set of distinct values of the By field and forwards the selected
	// option's value to OnFilterChange. It never filters records itself
	FilterOptions[T any] struct {
		By             Field[T]
		Label          string
		ValueExtractor ValueExtractor
		OnFilterChange func(string)
		DefaultValue   string
	}

	// SearchOptions configures the keyword search box. Keywords are
	// forwarded to OnKeywordChange and are never applied by the Table
	SearchOptions struct {
		Placeholder     string
		Behavior        SearchBehavior
		OnKeywordChange func([]string)
	}

	// SearchBehavior determines when keywords are emitted
	SearchBehavior int

	// SortOptions enables sorting of the derived view. When enabled it
	// takes precedence over any custom filters
	SortOptions[T any] struct {
		Enabled bool
		Sorter  Comparator[T]
	}

	// PageState is the position of the page window over the derived view
	PageState struct {
		TotalLength int
		Start       int
		Offset      int
	}

	// Paginator is a caller-supplied PageState along with callbacks that
	// receive each transition's new state. The callbacks are notified after
	// the Table has applied the transition and have no way to veto it
	Paginator struct {
		PageState
		OnNext         func(PageState)
		OnPrev         func(PageState)
		OnOffsetChange func(PageState)
	}
)

// SearchBehavior values
const (
	// SearchOnButton emits keywords only when explicitly submitted
	SearchOnButton SearchBehavior = iota

	// SearchOnType emits keywords on every change to the search text
	SearchOnType
)

// Default presentation strings
const (
	DefaultSearchPlaceholder = "Enter keywords to search in table " +
		"(use comma to separate multiple terms if required)"
	DefaultLoadingText = "Loading..."
	NoRecordsText      = "No records found"
	SerialLabel        = "S. No."
	AllPageSizeLabel   = "All"
	FilterNoneValue    = "-1"
)
