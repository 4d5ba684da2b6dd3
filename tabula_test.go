package tabula_test

import (
	"cmp"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kode4food/tabula"
	"github.com/kode4food/tabula/table"
	"github.com/kode4food/tabula/table/config"
)

type order struct {
	ID     string
	Amount int
}

var (
	idField = table.MakeField("id", func(o order) any {
		return o.ID
	})

	amountField = table.MakeField("amount", func(o order) any {
		return o.Amount
	})
)

func TestNewTable(t *testing.T) {
	as := assert.New(t)

	tbl, err := tabula.NewTable([]order{{"a", 3}, {"b", 1}},
		config.Headers(
			table.Header[order]{Field: idField, Label: "ID"},
			table.Header[order]{Field: amountField, Label: "Amount"},
		),
	)
	as.NoError(err)
	as.NotNil(tbl)
	as.Len(tbl.Data(), 2)
	as.Equal(table.Bounds{From: 1, To: 2, Total: 2}, tbl.Bounds())
}

func TestNewTableError(t *testing.T) {
	as := assert.New(t)

	tbl, err := tabula.NewTable([]order{},
		config.Headers(
			table.Header[order]{Field: idField},
			table.Header[order]{Field: idField},
		),
	)
	as.Nil(tbl)
	as.ErrorIs(err, table.ErrDuplicateFieldName)
}

func TestNewTableSorted(t *testing.T) {
	as := assert.New(t)

	tbl, err := tabula.NewTable([]order{{"a", 3}, {"b", 1}, {"c", 2}},
		config.Headers(table.Header[order]{Field: idField, Label: "ID"}),
		config.Sorting(func(l, r order) int {
			return cmp.Compare(l.Amount, r.Amount)
		}),
		config.PageSize[order](2),
	)
	as.NoError(err)

	p := tbl.Page()
	as.Equal([]string{"b"}, p.Rows[0].Cells)
	as.Equal([]string{"c"}, p.Rows[1].Cells)
	as.True(tbl.Next())
	as.Equal([]string{"a"}, tbl.Page().Rows[0].Cells)
}
