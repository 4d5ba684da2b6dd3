package cli_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kode4food/tabula/internal/cli"
	"github.com/kode4food/tabula/table"
)

func run(t *testing.T, in string, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := cli.NewCommand(strings.NewReader(in), &out, &errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestShow(t *testing.T) {
	as := assert.New(t)
	out, err := run(t, "", "show")
	as.NoError(err)
	as.Contains(out, "Showing 1 to 10 of 13 Entries")
	as.Contains(out, "First Name")
	as.NotContains(out, "Email")
	as.Contains(out, "Search: ("+table.DefaultSearchPlaceholder+") [Search]")
	as.Contains(out, "Filter: *First Name")

	out, err = run(t, "", "show", "--page", "2")
	as.NoError(err)
	as.Contains(out, "Showing 11 to 13 of 13 Entries")
	as.Contains(out, "2/2")
}

func TestShowOptions(t *testing.T) {
	as := assert.New(t)
	out, err := run(t, "", "show", "--page-size", "5", "--page", "3")
	as.NoError(err)
	as.Contains(out, "Showing 11 to 13 of 13 Entries | 5 per page")

	out, err = run(t, "", "show", "--search", "jane, olivia")
	as.NoError(err)
	as.Contains(out, "Showing 1 to 2 of 2 Entries")
	as.Contains(out, "Jane")
	as.Contains(out, "Olivia")

	out, err = run(t, "", "show", "--filter", "David", "--all")
	as.NoError(err)
	as.Contains(out, "Showing 1 to 5 of 5 Entries")
	as.Contains(out, "*David")
	as.NotContains(out, "[ ]")

	_, err = run(t, "", "show", "--page", "9")
	as.ErrorContains(err, "no such page")

	_, err = run(t, "", "show", "--page-size", "-2")
	as.Error(err)
}

func TestShowFile(t *testing.T) {
	as := assert.New(t)
	path := filepath.Join(t.TempDir(), "colors.yaml")
	as.NoError(os.WriteFile(path, []byte(`
columns:
  - field: color
    label: Color
records:
  - {color: red}
  - {color: green}
`), 0o600))

	out, err := run(t, "", "show", path)
	as.NoError(err)
	as.Contains(out, "Color")
	as.Contains(out, "green")
	as.Contains(out, "Showing 1 to 2 of 2 Entries")

	_, err = run(t, "", "show", filepath.Join(t.TempDir(), "none.yaml"))
	as.ErrorContains(err, "loading")
}

func TestShowBlankFilter(t *testing.T) {
	as := assert.New(t)
	path := filepath.Join(t.TempDir(), "colors.yaml")
	as.NoError(os.WriteFile(path, []byte(`
columns:
  - field: color
  - field: size
filter:
  by: color
records:
  - {color: red, size: sz-a}
  - {size: sz-b}
  - {color: "1", size: sz-c}
`), 0o600))

	out, err := run(t, "", "show", path, "--filter", "1")
	as.NoError(err)
	as.Contains(out, "Filter: color | red |  | *1")
	as.Contains(out, "Showing 1 to 1 of 1 Entries")
	as.Contains(out, "sz-c")
	as.NotContains(out, "sz-b")

	out, err = run(t, "", "show", path, "--filter", "")
	as.NoError(err)
	as.Contains(out, "Filter: color | red | * | 1")
	as.Contains(out, "Showing 1 to 1 of 1 Entries")
	as.Contains(out, "sz-b")
	as.NotContains(out, "sz-c")
}

func TestLogLevel(t *testing.T) {
	as := assert.New(t)
	_, err := run(t, "", "--log-level", "loud", "show")
	as.ErrorContains(err, "unknown log level")

	var out, errOut bytes.Buffer
	cmd := cli.NewCommand(strings.NewReader(""), &out, &errOut)
	cmd.SetArgs([]string{"--log-level", "debug", "show"})
	as.NoError(cmd.Execute())
	as.Contains(errOut.String(), "table data replaced")
}

func TestBrowse(t *testing.T) {
	as := assert.New(t)
	script := strings.Join([]string{
		"n",
		"size 5",
		"check 1",
		"checked",
		"check 9",
		"bogus",
		"search jane",
		"submit",
		"clear",
		"submit",
		"filter David",
		"unfilter",
		"q",
	}, "\n")
	out, err := run(t, script, "browse")
	as.NoError(err)
	as.Contains(out, "Showing 11 to 13 of 13 Entries")
	as.Contains(out, "Showing 1 to 5 of 13 Entries | 5 per page")
	as.Contains(out, "firstName:John")
	as.Contains(out, "error: no such row on this page: 9")
	as.Contains(out, "error: unknown command: bogus")
	as.Contains(out, "Search: \"jane\" [Search]")
	as.Contains(out, "Showing 1 to 1 of 1 Entries")
	as.Contains(out, "Showing 1 to 5 of 5 Entries")

	tail := out[strings.LastIndex(out, "Showing 1 to 5 of 5 Entries"):]
	as.Contains(tail, "Filter: *First Name")
	as.Contains(tail, "Showing 1 to 5 of 13 Entries")
}

func TestBrowseHelp(t *testing.T) {
	as := assert.New(t)
	out, err := run(t, "help\n", "browse")
	as.NoError(err)
	as.Contains(out, "commands:")
	as.Contains(out, "q, quit")
}
