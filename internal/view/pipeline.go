package view

import (
	"slices"

	"github.com/kode4food/tabula/table"
)

// Derive produces the ordered records to paginate over. An enabled sort
// takes precedence and suppresses the custom filters entirely. Otherwise
// the custom filters are applied left to right as a conjunction. The
// provided data is never reordered or modified
func Derive[T any](
	data []T, sort *table.SortOptions[T], filters []table.Predicate[T],
) []T {
	if Sorting(sort) {
		res := slices.Clone(data)
		slices.SortStableFunc(res, sort.Sorter)
		return res
	}
	res := data
	for _, keep := range filters {
		res = Filter(res, keep)
	}
	return res
}

// Active reports whether Derive will do anything other than return the
// data unchanged
func Active[T any](
	sort *table.SortOptions[T], filters []table.Predicate[T],
) bool {
	return Sorting(sort) || len(filters) > 0
}

// Sorting reports whether the provided sort options are enabled
func Sorting[T any](sort *table.SortOptions[T]) bool {
	return sort != nil && sort.Enabled && sort.Sorter != nil
}

// Filter returns the records for which keep returns true, in their
// original relative order
func Filter[T any](data []T, keep table.Predicate[T]) []T {
	res := make([]T, 0, len(data))
	for _, r := range data {
		if keep(r) {
			res = append(res, r)
		}
	}
	return res
}
