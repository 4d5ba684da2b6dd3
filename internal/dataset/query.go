package dataset

import (
	"cmp"
	"strings"

	"github.com/kode4food/tabula/internal/view"
	"github.com/kode4food/tabula/table"
)

// By returns a Comparator that orders Records by the named field
func By(name string, descending bool) table.Comparator[Record] {
	return func(a, b Record) int {
		c := Compare(a[name], b[name])
		if descending {
			return -c
		}
		return c
	}
}

// Compare orders two field values. Missing values sort first, numbers
// compare numerically, and anything else falls back to comparing display
// strings
func Compare(a, b any) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return -1
	case b == nil:
		return 1
	}
	if fa, ok := number(a); ok {
		if fb, ok := number(b); ok {
			return cmp.Compare(fa, fb)
		}
	}
	if ba, ok := a.(bool); ok {
		if bb, ok := b.(bool); ok {
			switch {
			case ba == bb:
				return 0
			case !ba:
				return -1
			default:
				return 1
			}
		}
	}
	return cmp.Compare(view.Label(a, nil), view.Label(b, nil))
}

func number(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint64:
		return float64(n), true
	case float64:
		return n, true
	default:
		return 0, false
	}
}

// MatchKeywords returns the Records in which any displayed column contains
// any of the keywords, ignoring case. No keywords matches everything
func (d *Document) MatchKeywords(data []Record, keywords []string) []Record {
	if len(keywords) == 0 {
		return data
	}
	lower := make([]string, len(keywords))
	for i, k := range keywords {
		lower[i] = strings.ToLower(k)
	}
	return view.Filter(data, func(r Record) bool {
		for _, c := range d.Columns {
			if c.Hidden {
				continue
			}
			v := strings.ToLower(view.Label(r[c.Field], c.renderer()))
			for _, k := range lower {
				if strings.Contains(v, k) {
					return true
				}
			}
		}
		return false
	})
}

// filterPrefix marks every primary filter value, so that no value can
// collide with the filter's "none" value, and blank labels still produce a
// non-empty value
const filterPrefix = "="

// FilterValue returns the primary filter value that selects the Records
// whose filter field displays as label
func FilterValue(label string) string {
	return filterPrefix + label
}

// MatchFilter returns the Records selected by a primary filter value. The
// filter's "none" value matches everything, and a value that FilterValue
// did not produce matches nothing
func (d *Document) MatchFilter(data []Record, value string) []Record {
	f := d.Filter
	if f == nil || value == "" || value == table.FilterNoneValue {
		return data
	}
	label, ok := strings.CutPrefix(value, filterPrefix)
	if !ok {
		return []Record{}
	}
	col, _ := d.column(f.By)
	render := col.renderer()
	return view.Filter(data, func(r Record) bool {
		return view.Label(r[f.By], render) == label
	})
}
