package view

import (
	"fmt"
	"strconv"

	"github.com/kode4food/tabula/table"
)

// Options derives the primary filter's option set. Each record's field
// value is labelled using render and options are deduplicated by label,
// keeping the raw value of the first record that produced each label. An
// option's value is the extractor's result or, when that is absent or
// empty, the option's index
func Options[T any](
	data []T, by table.Field[T], render table.Renderer,
	extract table.ValueExtractor,
) []table.FilterOption {
	seen := map[string]bool{}
	var res []table.FilterOption
	for _, r := range data {
		raw := by.Select(r)
		label := Label(raw, render)
		if seen[label] {
			continue
		}
		seen[label] = true
		var value string
		if extract != nil {
			value = extract(raw)
		}
		if value == "" {
			value = strconv.Itoa(len(res))
		}
		res = append(res, table.FilterOption{
			Label: label,
			Value: value,
			Raw:   raw,
		})
	}
	return res
}

// Label formats a raw value for display, using render if provided
func Label(raw any, render table.Renderer) string {
	if render != nil {
		return render(raw)
	}
	if raw == nil {
		return ""
	}
	if s, ok := raw.(string); ok {
		return s
	}
	return fmt.Sprint(raw)
}
