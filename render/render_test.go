package render_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kode4food/tabula/render"
	"github.com/kode4food/tabula/table"
)

func rowsPage() *table.Page[string] {
	return &table.Page[string]{
		Status:   table.StatusRows,
		CheckBox: true,
		Serial:   true,
		Headers: []table.HeaderCell{
			{Name: "name", Label: "Name"},
			{Name: "edit", Label: "Action", Custom: true},
		},
		Rows: []table.Row[string]{
			{Record: "alice", Serial: 11, Checked: true,
				Cells: []string{"alice", "Edit"}},
			{Record: "bob", Serial: 12, Cells: []string{"bob", "Edit"}},
		},
		State:   table.PageState{TotalLength: 25, Start: 10, Offset: 10},
		Bounds:  table.Bounds{From: 11, To: 12, Total: 25},
		CanPrev: true,
		CanNext: true,
		PageSizes: []table.PageSize{
			{Label: "10", Size: 10, Selected: true},
			{Label: table.AllPageSizeLabel, Size: 25},
		},
	}
}

func TestBody(t *testing.T) {
	as := assert.New(t)
	res := render.Text(rowsPage())
	as.Contains(res, table.SerialLabel)
	as.Contains(res, "Name")
	as.Contains(res, "Action")
	as.Contains(res, "alice")
	as.Contains(res, "11")
	as.Contains(res, render.Checked)
	as.Contains(res, render.Unchecked)
}

func TestFooter(t *testing.T) {
	as := assert.New(t)
	p := rowsPage()
	as.Equal(
		"Showing 11 to 12 of 25 Entries | 10 per page | < Prev | Next > | 2/3",
		render.Footer(p),
	)

	p.CanPrev = false
	p.CanNext = false
	p.PageSizes[0].Selected = false
	p.PageSizes[1].Selected = true
	p.State = table.PageState{TotalLength: 25, Offset: 25}
	p.Bounds = table.Bounds{From: 1, To: 25, Total: 25}
	as.Equal(
		"Showing 1 to 25 of 25 Entries | All per page | Prev | Next | 1/1",
		render.Footer(p),
	)
}

func TestPlaceholder(t *testing.T) {
	as := assert.New(t)
	p := &table.Page[string]{
		Status:      table.StatusEmpty,
		Placeholder: table.NoRecordsText,
		Headers:     []table.HeaderCell{{Name: "name", Label: "Name"}},
		State:       table.PageState{Offset: 10},
	}
	res := render.Text(p)
	as.Contains(res, table.NoRecordsText)
	as.Contains(res, "Showing 0 to 0 of 0 Entries")
	as.Contains(res, "1/1")
}

func TestControls(t *testing.T) {
	as := assert.New(t)
	p := &table.Page[string]{
		Search: &table.SearchView{
			Placeholder: "Search...",
			ShowButton:  true,
		},
		Filter: &table.FilterView{
			Options: []table.FilterOption{
				{Label: "Name", Value: table.FilterNoneValue},
				{Label: "alice", Value: "alice"},
			},
			Selected: "alice",
		},
	}
	as.Equal([]string{
		"Filter: Name | *alice",
		"Search: (Search...) [Search]",
	}, render.Controls(p))

	p.Search.Keyword = "al, bo"
	p.Search.ShowButton = false
	p.Filter = nil
	as.Equal([]string{`Search: "al, bo"`}, render.Controls(p))
	as.Empty(render.Controls(&table.Page[string]{}))
}

func TestTruncate(t *testing.T) {
	as := assert.New(t)
	p := rowsPage()
	p.Rows[0].Cells[0] = strings.Repeat("x", 40)
	res := render.Text(p, render.MaxCellWidth(8))
	as.Contains(res, "xxxxxxx"+render.Ellipsis)
	as.NotContains(res, strings.Repeat("x", 9))

	res = render.Text(p, render.MaxCellWidth(0))
	as.Contains(res, strings.Repeat("x", 40))
}
