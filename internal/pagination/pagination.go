package pagination

import (
	"strconv"

	"github.com/kode4food/tabula/table"
)

// The transitions below never clamp. Whether a transition is offered is
// decided by CanNext and CanPrev, and Window tolerates any Start

// Next advances the window by one page
func Next(s table.PageState) table.PageState {
	s.Start += s.Offset
	return s
}

// Prev moves the window back by one page
func Prev(s table.PageState) table.PageState {
	s.Start -= s.Offset
	return s
}

// Resize changes the page size and returns to the first page
func Resize(s table.PageState, offset int) table.PageState {
	s.Start = 0
	s.Offset = offset
	return s
}

// Reset returns to the first page
func Reset(s table.PageState) table.PageState {
	s.Start = 0
	return s
}

// CanNext reports whether a page follows the window, given the total
// number of entries being displayed
func CanNext(s table.PageState, total int) bool {
	return s.Start+s.Offset < total
}

// CanPrev reports whether a page precedes the window
func CanPrev(s table.PageState) bool {
	return s.Start > 0
}

// Bounds computes the display bounds of the window. From and To are
// computed against the derived view's length, while Total is whatever the
// caller considers the total number of entries
func Bounds(s table.PageState, derived, total int) table.Bounds {
	var from int
	if derived > 0 {
		from = s.Start + 1
	}
	return table.Bounds{
		From:  from,
		To:    min(s.Start+s.Offset, derived),
		Total: total,
	}
}

// Window slices the page window out of items. Start is clamped into the
// range of items, so an out-of-range window yields no rows rather than
// failing. The clamped start is returned along with the window
func Window[E any](items []E, s table.PageState) (int, []E) {
	start := max(0, min(s.Start, len(items)))
	end := max(start, min(start+max(0, s.Offset), len(items)))
	return start, items[start:end]
}

// Sizes returns the page size choices, with a final "All" choice sized to
// the total length. The choice matching the current offset is selected
func Sizes(s table.PageState, choices []int) []table.PageSize {
	res := make([]table.PageSize, 0, len(choices)+1)
	for _, c := range choices {
		res = append(res, table.PageSize{
			Label:    strconv.Itoa(c),
			Size:     c,
			Selected: c == s.Offset,
		})
	}
	all := max(1, s.TotalLength)
	res = append(res, table.PageSize{
		Label:    table.AllPageSizeLabel,
		Size:     all,
		Selected: !contains(choices, s.Offset) && all == s.Offset,
	})
	return res
}

func contains(choices []int, v int) bool {
	for _, c := range choices {
		if c == v {
			return true
		}
	}
	return false
}
