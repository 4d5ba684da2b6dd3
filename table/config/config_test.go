package config_test

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kode4food/tabula/table"
	"github.com/kode4food/tabula/table/config"
)

type item struct {
	name string
}

var nameField = table.MakeField("name", func(i item) any { return i.name })

func TestDefaults(t *testing.T) {
	as := assert.New(t)
	cfg, err := config.Make[item]()
	as.NoError(err)
	as.Equal(config.DefaultPageSize, cfg.PageSize)
	as.Equal(config.DefaultPageSizes, cfg.PageSizes)
	as.Equal(table.DefaultLoadingText, cfg.LoadingText)
	as.NotNil(cfg.Logger)
	as.False(cfg.AutoSerial)
	as.False(cfg.AutoCheckBox)
	as.Nil(cfg.Search)
	as.Nil(cfg.Sorting)
}

func TestFlagOptions(t *testing.T) {
	as := assert.New(t)
	l := slog.New(slog.DiscardHandler)
	cfg, err := config.Make(
		config.AutoSerial[item],
		config.AutoCheckBox[item],
		config.Loading[item],
		config.LoadingText[item]("wait"),
		config.PageSize[item](25),
		config.PageSizes[item](5, 25),
		config.Logger[item](l),
	)
	as.NoError(err)
	as.True(cfg.AutoSerial)
	as.True(cfg.AutoCheckBox)
	as.True(cfg.Loading)
	as.Equal("wait", cfg.LoadingText)
	as.Equal(25, cfg.PageSize)
	as.Equal([]int{5, 25}, cfg.PageSizes)
	as.Same(l, cfg.Logger)
}

func TestSearchPlaceholder(t *testing.T) {
	as := assert.New(t)
	cfg, err := config.Make(config.Search[item](table.SearchOptions{}))
	as.NoError(err)
	as.Equal(table.DefaultSearchPlaceholder, cfg.Search.Placeholder)
	as.Equal(table.SearchOnButton, cfg.Search.Behavior)
}

func TestSorting(t *testing.T) {
	as := assert.New(t)
	cfg, err := config.Make(config.Sorting(func(a, b item) int { return 0 }))
	as.NoError(err)
	as.True(cfg.Sorting.Enabled)

	_, err = config.Make(config.SortOptions(table.SortOptions[item]{
		Enabled: true,
	}))
	as.ErrorIs(err, table.ErrSorterRequired)

	cfg, err = config.Make(config.SortOptions(table.SortOptions[item]{}))
	as.NoError(err)
	as.False(cfg.Sorting.Enabled)
}

func TestInvalidPageSize(t *testing.T) {
	as := assert.New(t)
	_, err := config.Make(config.PageSize[item](0))
	as.ErrorIs(err, table.ErrInvalidPageSize)

	_, err = config.Make(config.PageSizes[item](10, -1))
	as.ErrorIs(err, table.ErrInvalidPageSize)

	_, err = config.Make(config.CustomPaginator[item](table.Paginator{}))
	as.ErrorIs(err, table.ErrInvalidPageSize)
}

func TestHeaderValidation(t *testing.T) {
	as := assert.New(t)
	_, err := config.Make(config.Headers(table.Header[item]{Label: "x"}))
	as.ErrorIs(err, table.ErrFieldRequired)

	_, err = config.Make(config.Headers(
		table.Header[item]{Field: nameField},
		table.Header[item]{Field: nameField},
	))
	as.ErrorIs(err, table.ErrDuplicateFieldName)
	as.ErrorContains(err, "name")

	_, err = config.Make(
		config.Headers(table.Header[item]{Field: nameField}),
		config.CustomHeaders(table.CustomHeader[item]{
			Name:     "name",
			Renderer: func(item) string { return "" },
		}),
	)
	as.ErrorIs(err, table.ErrDuplicateFieldName)

	_, err = config.Make(config.CustomHeaders(table.CustomHeader[item]{
		Renderer: func(item) string { return "" },
	}))
	as.ErrorIs(err, table.ErrCustomNameRequired)

	_, err = config.Make(config.CustomHeaders(table.CustomHeader[item]{
		Name: "edit",
	}))
	as.ErrorIs(err, table.ErrRendererRequired)
}

func TestFilterValidation(t *testing.T) {
	as := assert.New(t)
	_, err := config.Make(config.PrimaryFilter(table.FilterOptions[item]{
		Label: "Name",
	}))
	as.ErrorIs(err, table.ErrFieldRequired)

	_, err = config.Make(config.PrimaryFilter(table.FilterOptions[item]{
		By: nameField,
	}))
	as.ErrorIs(err, table.ErrFilterLabelRequired)

	cfg, err := config.Make(config.PrimaryFilter(table.FilterOptions[item]{
		By:    nameField,
		Label: "Name",
	}))
	as.NoError(err)
	as.Equal("Name", cfg.PrimaryFilter.Label)
}

func TestCallbackOptions(t *testing.T) {
	as := assert.New(t)
	cfg, err := config.Make(
		config.CustomFilters(func(item) bool { return true }),
		config.OnObjectChecked(func(item, bool) {}),
		config.OnAllCheckedChange[item](func(bool, int, int) {}),
		config.RowTitle(func(i item) string { return i.name }),
		config.OnRowClick(func(item) {}),
	)
	as.NoError(err)
	as.Len(cfg.CustomFilters, 1)
	as.NotNil(cfg.OnObjectChecked)
	as.NotNil(cfg.OnAllCheckedChange)
	as.Equal("x", cfg.RowTitle(item{name: "x"}))
	as.NotNil(cfg.OnRowClick)
}
