package cli

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

const browseHelp = `commands:
  n, next          next page
  p, prev          previous page
  size N           records per page
  check N          toggle the Nth row of the page
  all | none       select or clear every record
  search TEXT      set the search text (comma-separated keywords)
  submit           submit the search text
  clear            clear the search text
  filter LABEL     show records whose filter field reads LABEL
  unfilter         show records regardless of the filter field
  checked          list the selected records
  help             show this help
  q, quit          exit
`

// browse runs a line-oriented session, printing the page after every
// command that changes it
func browse(s *session, in io.Reader, out io.Writer) error {
	if err := s.print(out); err != nil {
		return err
	}
	scan := bufio.NewScanner(in)
	for {
		if _, err := io.WriteString(out, "> "); err != nil {
			return err
		}
		if !scan.Scan() {
			return scan.Err()
		}
		cmd, arg, _ := strings.Cut(strings.TrimSpace(scan.Text()), " ")
		if cmd == "q" || cmd == "quit" {
			return nil
		}
		if err := s.dispatch(out, cmd, strings.TrimSpace(arg)); err != nil {
			if _, err := fmt.Fprintf(out, "error: %v\n", err); err != nil {
				return err
			}
		}
	}
}

func (s *session) dispatch(out io.Writer, cmd, arg string) error {
	switch cmd {
	case "":
		return nil
	case "help":
		_, err := io.WriteString(out, browseHelp)
		return err
	case "checked":
		for _, r := range s.table.Checked() {
			if _, err := fmt.Fprintln(out, r); err != nil {
				return err
			}
		}
		return nil
	case "n", "next":
		s.table.Next()
	case "p", "prev":
		s.table.Prev()
	case "size":
		n, err := strconv.Atoi(arg)
		if err != nil {
			return err
		}
		if err := s.table.Resize(n); err != nil {
			return err
		}
	case "check":
		n, err := strconv.Atoi(arg)
		if err != nil {
			return err
		}
		if err := s.checkRow(n); err != nil {
			return err
		}
	case "all":
		s.table.ToggleAll(true)
	case "none":
		s.table.ToggleAll(false)
	case "search":
		s.table.TypeKeyword(arg)
	case "submit":
		s.table.SubmitSearch()
	case "clear":
		s.table.ClearSearch()
	case "filter":
		s.selectFilter(arg)
	case "unfilter":
		s.clearFilter()
	default:
		return fmt.Errorf("%w: %s", errUnknownAction, cmd)
	}
	return s.print(out)
}
