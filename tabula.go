package tabula

import (
	"github.com/kode4food/tabula/table"
	"github.com/kode4food/tabula/table/config"

	internal "github.com/kode4food/tabula/internal/table"
)

// NewTable instantiates a new Table over the provided data, given a set of
// configuration Options
func NewTable[T any](data []T, o ...config.Option[T]) (table.Table[T], error) {
	t, err := internal.Make(data, o...)
	if err != nil {
		return nil, err
	}
	return t, nil
}
