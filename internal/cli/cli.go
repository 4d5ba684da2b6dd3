// Package cli implements the command-line interface of tabula
package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/lmittmann/tint"
	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/kode4food/tabula/internal/dataset"
	"github.com/kode4food/tabula/render"
)

type globalFlags struct {
	logLevel string
	noColor  bool
	width    int
}

var (
	errNoSuchRow     = errors.New("no such row on this page")
	errNoSuchPage    = errors.New("no such page")
	errUnknownLevel  = errors.New("unknown log level")
	errUnknownAction = errors.New("unknown command")
)

// Execute runs the tabula command line and returns its error, if any
func Execute(args []string) error {
	cmd := NewCommand(os.Stdin, os.Stdout, os.Stderr)
	cmd.SetArgs(args)
	return cmd.Execute()
}

// NewCommand builds the root command, reading from in and writing tables
// to out. Logs go to errOut
func NewCommand(in io.Reader, out, errOut io.Writer) *cobra.Command {
	g := &globalFlags{}
	root := &cobra.Command{
		Use:           "tabula",
		Short:         "Page, filter, and select records from a dataset",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetIn(in)
	root.SetOut(out)
	root.SetErr(errOut)
	root.PersistentFlags().StringVar(
		&g.logLevel, "log-level", "warn",
		"log level (debug, info, warn, error)",
	)
	root.PersistentFlags().BoolVar(
		&g.noColor, "no-color", false, "disable colored logs",
	)
	root.PersistentFlags().IntVar(
		&g.width, "width", 0,
		"table width (0 uses the terminal width, when there is one)",
	)

	root.AddCommand(showCommand(g), browseCommand(g))
	return root
}

func showCommand(g *globalFlags) *cobra.Command {
	var page, pageSize int
	var search, filter string
	var all bool

	cmd := &cobra.Command{
		Use:   "show [file]",
		Short: "Print a single page of a dataset",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := g.session(cmd, args)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("filter") {
				s.selectFilter(filter)
			}
			if search != "" {
				s.table.TypeKeyword(search)
				s.table.SubmitSearch()
			}
			if pageSize > 0 {
				if err := s.table.Resize(pageSize); err != nil {
					return err
				}
			}
			if err := s.goToPage(page); err != nil {
				return err
			}
			if all {
				s.table.ToggleAll(true)
			}
			return s.print(cmd.OutOrStdout())
		},
	}
	cmd.Flags().IntVar(&page, "page", 1, "page number to print")
	cmd.Flags().IntVar(&pageSize, "page-size", 0, "records per page")
	cmd.Flags().StringVar(
		&search, "search", "", "comma-separated keywords to search for",
	)
	cmd.Flags().StringVar(
		&filter, "filter", "",
		"primary filter label (an empty label selects blank values)",
	)
	cmd.Flags().BoolVar(&all, "all", false, "select every record")
	return cmd
}

func browseCommand(g *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "browse [file]",
		Short: "Interactively page through a dataset",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := g.session(cmd, args)
			if err != nil {
				return err
			}
			return browse(s, cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}
}

func (g *globalFlags) session(cmd *cobra.Command, args []string) (*session, error) {
	logger, err := g.logger(cmd.ErrOrStderr())
	if err != nil {
		return nil, err
	}
	doc, err := loadDocument(args)
	if err != nil {
		return nil, err
	}
	var opts []render.Option
	if w := g.tableWidth(cmd.OutOrStdout()); w > 0 {
		opts = append(opts, render.Width(w))
	}
	return newSession(doc, logger, opts...)
}

func loadDocument(args []string) (*dataset.Document, error) {
	if len(args) == 0 {
		return dataset.Sample()
	}
	doc, err := dataset.Load(args[0])
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", args[0], err)
	}
	return doc, nil
}

func (g *globalFlags) tableWidth(out io.Writer) int {
	if g.width > 0 {
		return g.width
	}
	f, ok := out.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return 0
	}
	if w, _, err := term.GetSize(int(f.Fd())); err == nil {
		return w
	}
	return 0
}

func (g *globalFlags) logger(w io.Writer) (*slog.Logger, error) {
	level, err := parseLevel(g.logLevel)
	if err != nil {
		return nil, err
	}
	noColor := g.noColor
	if f, ok := w.(*os.File); ok {
		noColor = noColor || !isatty.IsTerminal(f.Fd())
		w = colorable.NewColorable(f)
	} else {
		noColor = true
	}
	return slog.New(tint.NewHandler(w, &tint.Options{
		Level:      level,
		TimeFormat: "15:04:05.000",
		NoColor:    noColor,
	})), nil
}

func parseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("%w: %s", errUnknownLevel, s)
	}
}
