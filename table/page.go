package table

import "github.com/google/uuid"

type (
	// RowID identifies a row within a single generation of a dataset.
	// Every call to SetData assigns fresh identities, so duplicate records
	// remain independently selectable
	RowID uuid.UUID

	// Page is a presentation-neutral snapshot of a Table, ready to be drawn
	// by a rendering collaborator
	Page[T any] struct {
		Status      Status
		Placeholder string
		CheckBox    bool
		AllChecked  bool
		Serial      bool
		Headers     []HeaderCell
		Rows        []Row[T]
		State       PageState
		Bounds      Bounds
		CanPrev     bool
		CanNext     bool
		PageSizes   []PageSize
		Search      *SearchView
		Filter      *FilterView
	}

	// Status describes what the body of a Page contains
	Status int

	// HeaderCell is a visible column heading. Field columns come first in
	// configured order, followed by custom columns
	HeaderCell struct {
		Name      FieldName
		Label     string
		Clickable bool
		Custom    bool
	}

	// Row is a single record within the page window. Cells align with the
	// Page's Headers
	Row[T any] struct {
		ID      RowID
		Record  T
		Serial  int
		Checked bool
		Title   string
		Cells   []string
	}

	// Bounds are the 1-based display bounds of the page window
	Bounds struct {
		From  int
		To    int
		Total int
	}

	// PageSize is one of the page size choices offered to the user
	PageSize struct {
		Label    string
		Size     int
		Selected bool
	}

	// SearchView is the current state of the keyword search box
	SearchView struct {
		Keyword     string
		Placeholder string
		ShowButton  bool
	}

	// FilterView is the current state of the primary filter. The first
	// option is always the filter's label carrying FilterNoneValue
	FilterView struct {
		Options  []FilterOption
		Selected string
	}

	// FilterOption is a distinct value of the primary filter's field. Raw
	// is the first record's underlying field value for this Label
	FilterOption struct {
		Label string
		Value string
		Raw   any
	}
)

// Status values
const (
	StatusRows Status = iota
	StatusLoading
	StatusEmpty
)

// NewRowID returns a fresh random RowID
func NewRowID() RowID {
	return RowID(uuid.New())
}

func (r RowID) String() string {
	return uuid.UUID(r).String()
}
