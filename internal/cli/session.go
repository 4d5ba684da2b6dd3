package cli

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/kode4food/tabula"
	"github.com/kode4food/tabula/internal/dataset"
	"github.com/kode4food/tabula/render"
	"github.com/kode4food/tabula/table"
	"github.com/kode4food/tabula/table/config"
)

// session owns a dataset and the Table that displays it. The Table only
// forwards keywords and filter selections, so the session applies them and
// hands the narrowed records back to the Table
type session struct {
	doc      *dataset.Document
	table    table.Table[dataset.Record]
	log      *slog.Logger
	keywords []string
	filter   string
	render   []render.Option
}

func newSession(
	doc *dataset.Document, log *slog.Logger, r ...render.Option,
) (*session, error) {
	s := &session{
		doc:    doc,
		log:    log,
		render: r,
	}
	if f := doc.Filter; f != nil && f.Default != "" {
		s.filter = dataset.FilterValue(f.Default)
	}

	opts := doc.Options(dataset.Hooks{
		OnKeywordChange: s.keywordsChanged,
		OnFilterChange:  s.filterChanged,
		OnObjectChecked: func(r dataset.Record, checked bool) {
			s.log.Info("record checked", "record", r, "checked", checked)
		},
	})
	opts = append(opts, config.Logger[dataset.Record](log))

	t, err := tabula.NewTable(s.visible(), opts...)
	if err != nil {
		return nil, err
	}
	s.table = t
	return s, nil
}

func (s *session) visible() []dataset.Record {
	res := s.doc.MatchFilter(s.doc.Records, s.filter)
	return s.doc.MatchKeywords(res, s.keywords)
}

func (s *session) keywordsChanged(k []string) {
	s.keywords = k
	s.refresh()
}

func (s *session) filterChanged(v string) {
	s.filter = v
	s.refresh()
}

func (s *session) refresh() {
	data := s.visible()
	s.log.Debug("dataset narrowed",
		"keywords", s.keywords, "filter", s.filter, "records", len(data),
	)
	s.table.SetData(data)
}

// checkRow toggles the nth (1-based) row of the current page
func (s *session) checkRow(n int) error {
	rows := s.table.Page().Rows
	if n < 1 || n > len(rows) {
		return fmt.Errorf("%w: %d", errNoSuchRow, n)
	}
	return s.table.ToggleRow(rows[n-1].ID)
}

// selectFilter selects the primary filter option displayed as label
func (s *session) selectFilter(label string) {
	s.table.SelectFilter(dataset.FilterValue(label))
}

// clearFilter selects the primary filter's "none" option
func (s *session) clearFilter() {
	s.table.SelectFilter(table.FilterNoneValue)
}

// goToPage advances from the first page to the nth (1-based) page
func (s *session) goToPage(n int) error {
	for i := 1; i < n; i++ {
		if !s.table.Next() {
			return fmt.Errorf("%w: %d", errNoSuchPage, n)
		}
	}
	return nil
}

func (s *session) print(w io.Writer) error {
	_, err := io.WriteString(w, render.Text(s.table.Page(), s.render...))
	return err
}
