package table

import (
	"fmt"
	"log/slog"
	"slices"
	"sync"

	"github.com/kode4food/tabula/internal/pagination"
	"github.com/kode4food/tabula/internal/selection"
	"github.com/kode4food/tabula/internal/view"
	"github.com/kode4food/tabula/table"
	"github.com/kode4food/tabula/table/config"
)

type (
	// Table is the internal implementation of a table.Table
	Table[T any] struct {
		cfg      *config.Config[T]
		log      *slog.Logger
		data     []T
		rows     []row[T]
		indexes  map[table.RowID]int
		headers  map[table.FieldName]int
		state    table.PageState
		selected *selection.Tracker[table.RowID]
		search   *view.Search
		options  []table.FilterOption
		filter   string
		loading  bool
		mu       sync.Mutex
	}

	row[T any] struct {
		id  table.RowID
		rec T
	}

	// pending holds notifications that are delivered once the Table's lock
	// has been released, so that callbacks are free to call back into the
	// Table
	pending []func()
)

// Make instantiates a new Table over the provided data
func Make[T any](data []T, o ...config.Option[T]) (*Table[T], error) {
	cfg, err := config.Make(o...)
	if err != nil {
		return nil, err
	}

	t := &Table[T]{
		cfg:      cfg,
		log:      cfg.Logger,
		headers:  map[table.FieldName]int{},
		selected: selection.Make[table.RowID](),
		loading:  cfg.Loading,
	}
	for i, h := range cfg.Headers {
		t.headers[h.Field.Name()] = i
	}
	if p := cfg.Paginator; p != nil {
		t.state = p.PageState
	} else {
		t.state = table.PageState{
			TotalLength: len(data),
			Offset:      cfg.PageSize,
		}
	}
	if s := cfg.Search; s != nil {
		t.search = view.MakeSearch(s.Behavior)
	}
	if f := cfg.PrimaryFilter; f != nil {
		t.filter = f.DefaultValue
		if t.filter == "" {
			t.filter = table.FilterNoneValue
		}
	}

	var p pending
	defer p.run()
	t.mu.Lock()
	defer t.mu.Unlock()
	t.replaceData(data, &p)
	return t, nil
}

func (t *Table[T]) SetData(data []T) {
	var p pending
	defer p.run()
	t.mu.Lock()
	defer t.mu.Unlock()

	t.replaceData(data, &p)
}

func (t *Table[T]) Data() []T {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.data
}

func (t *Table[T]) replaceData(data []T, p *pending) {
	t.data = data
	t.rows = make([]row[T], len(data))
	t.indexes = make(map[table.RowID]int, len(data))
	for i, r := range data {
		id := table.NewRowID()
		t.rows[i] = row[T]{id: id, rec: r}
		t.indexes[id] = i
	}
	t.log.Debug("table data replaced", "rows", len(data))

	if t.cfg.Paginator == nil {
		t.state.TotalLength = len(data)
	}
	t.move(pagination.Reset(t.state), p)
	t.deriveOptions()
}

// deriveOptions computes the primary filter's option set, only if it has
// not yet been computed
func (t *Table[T]) deriveOptions() {
	f := t.cfg.PrimaryFilter
	if f == nil || len(t.options) != 0 {
		return
	}
	t.options = view.Options(
		t.data, f.By, t.labelRenderer(f.By.Name()), f.ValueExtractor,
	)
	t.log.Debug("filter options derived",
		"field", f.By.Name(), "options", len(t.options),
	)
}

func (t *Table[T]) labelRenderer(n table.FieldName) table.Renderer {
	if i, ok := t.headers[n]; ok {
		return t.cfg.Headers[i].Renderer
	}
	return nil
}

func (t *Table[_]) SetLoading(loading bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.loading = loading
}

func (t *Table[_]) State() table.PageState {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.state
}

func (t *Table[_]) Bounds() table.Bounds {
	t.mu.Lock()
	defer t.mu.Unlock()
	derived, total := t.displayed()
	return pagination.Bounds(t.state, len(derived), total)
}

func (t *Table[T]) derive() []row[T] {
	var sort *table.SortOptions[row[T]]
	if s := t.cfg.Sorting; s != nil {
		sort = &table.SortOptions[row[T]]{Enabled: s.Enabled}
		if s.Sorter != nil {
			sort.Sorter = func(a, b row[T]) int {
				return s.Sorter(a.rec, b.rec)
			}
		}
	}
	filters := make([]table.Predicate[row[T]], len(t.cfg.CustomFilters))
	for i, f := range t.cfg.CustomFilters {
		filters[i] = func(r row[T]) bool {
			return f(r.rec)
		}
	}
	return view.Derive(t.rows, sort, filters)
}

// displayed returns the derived view along with the number of entries
// shown as the total. The total is the length of the derived view when
// sorting or custom filters are in effect, and otherwise falls back to the
// declared total length
func (t *Table[T]) displayed() ([]row[T], int) {
	derived := t.derive()
	if view.Active(t.cfg.Sorting, t.cfg.CustomFilters) {
		return derived, len(derived)
	}
	return derived, t.state.TotalLength
}

func (t *Table[_]) Next() bool {
	var p pending
	defer p.run()
	t.mu.Lock()
	defer t.mu.Unlock()

	_, total := t.displayed()
	if !pagination.CanNext(t.state, total) {
		return false
	}
	next := pagination.Next(t.state)
	if c := t.cfg.Paginator; c != nil && c.OnNext != nil {
		p.add(func() { c.OnNext(next) })
	}
	t.move(next, &p)
	return true
}

func (t *Table[_]) Prev() bool {
	var p pending
	defer p.run()
	t.mu.Lock()
	defer t.mu.Unlock()

	if !pagination.CanPrev(t.state) {
		return false
	}
	prev := pagination.Prev(t.state)
	if c := t.cfg.Paginator; c != nil && c.OnPrev != nil {
		p.add(func() { c.OnPrev(prev) })
	}
	t.move(prev, &p)
	return true
}

func (t *Table[_]) Resize(offset int) error {
	if offset < 1 {
		return fmt.Errorf("%w: %d", table.ErrInvalidPageSize, offset)
	}

	var p pending
	defer p.run()
	t.mu.Lock()
	defer t.mu.Unlock()

	next := pagination.Resize(t.state, offset)
	if c := t.cfg.Paginator; c != nil && c.OnOffsetChange != nil {
		p.add(func() { c.OnOffsetChange(next) })
	}
	t.move(next, &p)
	return nil
}

// move applies a page window transition. Selection never survives a
// transition, and its clearing is always announced
func (t *Table[_]) move(s table.PageState, p *pending) {
	t.state = s
	t.selected.Reset()
	t.log.Debug("page window moved", "start", s.Start, "offset", s.Offset)
	if fn := t.cfg.OnAllCheckedChange; fn != nil {
		p.add(func() { fn(false, s.Start, s.Offset) })
	}
}

func (t *Table[_]) ToggleRow(id table.RowID) error {
	var p pending
	defer p.run()
	t.mu.Lock()
	defer t.mu.Unlock()

	r, err := t.row(id)
	if err != nil {
		return err
	}
	checked := t.selected.Toggle(id)
	if fn := t.cfg.OnObjectChecked; fn != nil {
		p.add(func() { fn(r.rec, checked) })
	}
	return nil
}

func (t *Table[_]) ToggleAll(checked bool) {
	var p pending
	defer p.run()
	t.mu.Lock()
	defer t.mu.Unlock()

	ids := make([]table.RowID, len(t.rows))
	for i, r := range t.rows {
		ids[i] = r.id
	}
	t.selected.SetAll(checked, ids)
	t.log.Debug("all rows toggled", "checked", checked, "rows", len(ids))
	if fn := t.cfg.OnAllCheckedChange; fn != nil {
		s := t.state
		p.add(func() { fn(checked, s.Start, s.Offset) })
	}
}

func (t *Table[_]) IsChecked(id table.RowID) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.selected.IsChecked(id)
}

func (t *Table[T]) Checked() []T {
	t.mu.Lock()
	defer t.mu.Unlock()

	var res []T
	for _, r := range t.rows {
		if t.selected.IsChecked(r.id) {
			res = append(res, r.rec)
		}
	}
	return res
}

func (t *Table[T]) row(id table.RowID) (row[T], error) {
	if i, ok := t.indexes[id]; ok {
		return t.rows[i], nil
	}
	return row[T]{}, fmt.Errorf("%w: %s", table.ErrRowNotFound, id)
}

func (t *Table[_]) TypeKeyword(raw string) {
	var p pending
	defer p.run()
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.search == nil {
		return
	}
	if k, ok := t.search.Type(raw); ok {
		t.emitKeywords(k, &p)
	}
}

func (t *Table[_]) SubmitSearch() {
	var p pending
	defer p.run()
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.search == nil {
		return
	}
	if k, ok := t.search.Submit(); ok {
		t.emitKeywords(k, &p)
	}
}

func (t *Table[_]) emitKeywords(k []string, p *pending) {
	t.log.Debug("search keywords emitted", "keywords", k)
	if fn := t.cfg.Search.OnKeywordChange; fn != nil {
		p.add(func() { fn(k) })
	}
}

func (t *Table[_]) ClearSearch() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.search != nil {
		t.search.Clear()
	}
}

func (t *Table[_]) Keyword() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.search == nil {
		return ""
	}
	return t.search.Keyword()
}

func (t *Table[_]) FilterOptions() []table.FilterOption {
	t.mu.Lock()
	defer t.mu.Unlock()
	return slices.Clone(t.options)
}

func (t *Table[_]) SelectFilter(value string) {
	var p pending
	defer p.run()
	t.mu.Lock()
	defer t.mu.Unlock()

	f := t.cfg.PrimaryFilter
	if f == nil {
		return
	}
	t.filter = value
	t.log.Debug("filter selected", "field", f.By.Name(), "value", value)
	if fn := f.OnFilterChange; fn != nil {
		p.add(func() { fn(value) })
	}
}

func (t *Table[_]) ClickHeader(n table.FieldName) error {
	var p pending
	defer p.run()
	t.mu.Lock()
	defer t.mu.Unlock()

	onClick, err := t.headerClick(n)
	if err != nil {
		return err
	}
	if onClick != nil {
		p.add(func() { onClick(n) })
	}
	return nil
}

func (t *Table[_]) headerClick(n table.FieldName) (func(table.FieldName), error) {
	if i, ok := t.headers[n]; ok {
		return t.cfg.Headers[i].OnClick, nil
	}
	for _, h := range t.cfg.CustomHeaders {
		if h.Name == n {
			return h.OnClick, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", table.ErrFieldNotFound, n)
}

func (t *Table[_]) ClickCell(id table.RowID, n table.FieldName) error {
	var p pending
	defer p.run()
	t.mu.Lock()
	defer t.mu.Unlock()

	r, err := t.row(id)
	if err != nil {
		return err
	}
	i, ok := t.headers[n]
	if !ok {
		return fmt.Errorf("%w: %s", table.ErrFieldNotFound, n)
	}
	if fn := t.cfg.Headers[i].OnCellClick; fn != nil {
		p.add(func() { fn(r.rec) })
	}
	return nil
}

func (t *Table[_]) ClickRow(id table.RowID) error {
	var p pending
	defer p.run()
	t.mu.Lock()
	defer t.mu.Unlock()

	r, err := t.row(id)
	if err != nil {
		return err
	}
	if fn := t.cfg.OnRowClick; fn != nil {
		p.add(func() { fn(r.rec) })
	}
	return nil
}

func (p *pending) add(fn func()) {
	*p = append(*p, fn)
}

func (p *pending) run() {
	for _, fn := range *p {
		fn()
	}
}
