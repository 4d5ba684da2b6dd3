// Package render draws a table.Page as plain text. It is one possible
// rendering collaborator for a Table, suitable for terminals and logs
package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/paginator"
	"github.com/charmbracelet/lipgloss"
	ltable "github.com/charmbracelet/lipgloss/table"
	"github.com/mattn/go-runewidth"

	"github.com/kode4food/tabula/table"
)

type (
	// Options control how a Page is drawn
	Options struct {
		Width        int
		MaxCellWidth int
	}

	// Option applies an option to a set of render Options
	Option func(*Options)
)

// Defaults
const (
	DefaultMaxCellWidth = 32
	Ellipsis            = "…"
	Checked             = "[x]"
	Unchecked           = "[ ]"
)

// Width bounds the total width of the drawn table. Zero means unbounded
func Width(w int) Option {
	return func(o *Options) {
		o.Width = w
	}
}

// MaxCellWidth truncates cell content that is wider than w. Zero disables
// truncation
func MaxCellWidth(w int) Option {
	return func(o *Options) {
		o.MaxCellWidth = w
	}
}

// Text draws the controls, the body, and the pagination footer of a Page
func Text[T any](p *table.Page[T], o ...Option) string {
	opts := Options{MaxCellWidth: DefaultMaxCellWidth}
	for _, fn := range o {
		fn(&opts)
	}

	var b strings.Builder
	for _, line := range Controls(p) {
		b.WriteString(line)
		b.WriteByte('\n')
	}
	b.WriteString(Body(p, opts))
	b.WriteByte('\n')
	b.WriteString(Footer(p))
	b.WriteByte('\n')
	return b.String()
}

// Controls returns one line for each of the filter and search controls that
// the Page carries
func Controls[T any](p *table.Page[T]) []string {
	var res []string
	if f := p.Filter; f != nil {
		opts := make([]string, len(f.Options))
		for i, o := range f.Options {
			opts[i] = o.Label
			if o.Value == f.Selected {
				opts[i] = "*" + o.Label
			}
		}
		res = append(res, "Filter: "+strings.Join(opts, " | "))
	}
	if s := p.Search; s != nil {
		line := "Search: "
		if s.Keyword == "" {
			line += "(" + s.Placeholder + ")"
		} else {
			line += fmt.Sprintf("%q", s.Keyword)
		}
		if s.ShowButton {
			line += " [Search]"
		}
		res = append(res, line)
	}
	return res
}

// Body draws the header row and either the page rows or the placeholder
func Body[T any](p *table.Page[T], o Options) string {
	headers := headerRow(p)
	var rows [][]string
	if p.Status == table.StatusRows {
		for _, r := range p.Rows {
			rows = append(rows, dataRow(p, r, o))
		}
	} else {
		ph := make([]string, max(1, len(headers)))
		ph[0] = p.Placeholder
		rows = append(rows, ph)
	}

	t := ltable.New().
		Border(lipgloss.ASCIIBorder()).
		Headers(headers...).
		Rows(rows...)
	if o.Width > 0 {
		t = t.Width(o.Width)
	}
	return t.String()
}

func headerRow[T any](p *table.Page[T]) []string {
	var res []string
	if p.CheckBox {
		res = append(res, checkBox(p.AllChecked))
	}
	if p.Serial {
		res = append(res, table.SerialLabel)
	}
	for _, h := range p.Headers {
		res = append(res, h.Label)
	}
	return res
}

func dataRow[T any](p *table.Page[T], r table.Row[T], o Options) []string {
	var res []string
	if p.CheckBox {
		res = append(res, checkBox(r.Checked))
	}
	if p.Serial {
		res = append(res, fmt.Sprint(r.Serial))
	}
	for _, c := range r.Cells {
		res = append(res, truncate(c, o.MaxCellWidth))
	}
	return res
}

func checkBox(checked bool) string {
	if checked {
		return Checked
	}
	return Unchecked
}

func truncate(s string, w int) string {
	if w <= 0 {
		return s
	}
	return runewidth.Truncate(s, w, Ellipsis)
}

// Footer describes the page window, the page size, and which of the
// navigation controls are available
func Footer[T any](p *table.Page[T]) string {
	size := fmt.Sprint(p.State.Offset)
	for _, s := range p.PageSizes {
		if s.Selected {
			size = s.Label
		}
	}
	prev, next := "Prev", "Next"
	if p.CanPrev {
		prev = "< Prev"
	}
	if p.CanNext {
		next = "Next >"
	}
	return fmt.Sprintf(
		"Showing %d to %d of %d Entries | %s per page | %s | %s | %s",
		p.Bounds.From, p.Bounds.To, p.Bounds.Total, size, prev, next,
		pageIndicator(p),
	)
}

func pageIndicator[T any](p *table.Page[T]) string {
	pg := paginator.New()
	pg.Type = paginator.Arabic
	pg.PerPage = max(1, p.State.Offset)
	pg.SetTotalPages(max(1, p.Bounds.Total))
	pg.Page = max(0, min(p.State.Start/pg.PerPage, pg.TotalPages-1))
	return pg.View()
}
