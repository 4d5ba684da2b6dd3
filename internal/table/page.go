package table

import (
	"slices"

	"github.com/kode4food/tabula/internal/pagination"
	"github.com/kode4food/tabula/internal/view"
	"github.com/kode4food/tabula/table"
)

// Page builds a snapshot of the Table. Cells and titles are rendered after
// the lock is released, so renderers may call back into the Table
func (t *Table[T]) Page() *table.Page[T] {
	res := t.snapshot()
	for i := range res.Rows {
		t.renderRow(&res.Rows[i])
	}
	return res
}

func (t *Table[T]) snapshot() *table.Page[T] {
	t.mu.Lock()
	defer t.mu.Unlock()

	derived, total := t.displayed()

	res := &table.Page[T]{
		CheckBox:   t.cfg.AutoCheckBox,
		AllChecked: t.selected.All(),
		Serial:     t.cfg.AutoSerial,
		Headers:    t.headerCells(),
		State:      t.state,
		Bounds:     pagination.Bounds(t.state, len(derived), total),
		CanPrev:    pagination.CanPrev(t.state),
		CanNext:    pagination.CanNext(t.state, total),
		PageSizes:  pagination.Sizes(t.state, t.cfg.PageSizes),
		Search:     t.searchView(),
		Filter:     t.filterView(),
	}

	switch {
	case t.loading:
		res.Status = table.StatusLoading
		res.Placeholder = t.cfg.LoadingText
	case len(t.data) == 0:
		res.Status = table.StatusEmpty
		res.Placeholder = table.NoRecordsText
	default:
		res.Status = table.StatusRows
		start, window := pagination.Window(derived, t.state)
		res.Rows = make([]table.Row[T], len(window))
		for i, r := range window {
			res.Rows[i] = t.makeRow(r, start+i+1)
		}
	}
	return res
}

func (t *Table[T]) headerCells() []table.HeaderCell {
	var res []table.HeaderCell
	for _, h := range t.cfg.Headers {
		if h.Hidden {
			continue
		}
		res = append(res, table.HeaderCell{
			Name:      h.Field.Name(),
			Label:     h.Label,
			Clickable: h.OnClick != nil,
		})
	}
	for _, h := range t.cfg.CustomHeaders {
		if h.Hidden {
			continue
		}
		res = append(res, table.HeaderCell{
			Name:      h.Name,
			Label:     h.Label,
			Clickable: h.OnClick != nil,
			Custom:    true,
		})
	}
	return res
}

func (t *Table[T]) makeRow(r row[T], serial int) table.Row[T] {
	res := table.Row[T]{
		ID:      r.id,
		Record:  r.rec,
		Checked: t.selected.IsChecked(r.id),
	}
	if t.cfg.AutoSerial {
		res.Serial = serial
	}
	return res
}

// renderRow fills in the caller-rendered parts of a Row. It only reads
// the configuration, which never changes after construction
func (t *Table[T]) renderRow(r *table.Row[T]) {
	if t.cfg.RowTitle != nil {
		r.Title = t.cfg.RowTitle(r.Record)
	}
	for _, h := range t.cfg.Headers {
		if h.Hidden {
			continue
		}
		v := h.Field.Select(r.Record)
		r.Cells = append(r.Cells, view.Label(v, h.Renderer))
	}
	for _, h := range t.cfg.CustomHeaders {
		if h.Hidden {
			continue
		}
		r.Cells = append(r.Cells, h.Renderer(r.Record))
	}
}

func (t *Table[_]) searchView() *table.SearchView {
	s := t.cfg.Search
	if s == nil {
		return nil
	}
	return &table.SearchView{
		Keyword:     t.search.Keyword(),
		Placeholder: s.Placeholder,
		ShowButton:  s.Behavior != table.SearchOnType,
	}
}

func (t *Table[_]) filterView() *table.FilterView {
	f := t.cfg.PrimaryFilter
	if f == nil {
		return nil
	}
	opts := append([]table.FilterOption{{
		Label: f.Label,
		Value: table.FilterNoneValue,
	}}, t.options...)
	return &table.FilterView{
		Options:  slices.Clip(opts),
		Selected: t.filter,
	}
}
