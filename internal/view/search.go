package view

import (
	"strings"

	"github.com/kode4food/tabula/table"
)

// Search tracks the text of a keyword search box and decides when its
// keywords are to be emitted
type Search struct {
	keyword  string
	behavior table.SearchBehavior
}

// MakeSearch returns a new Search for the provided behavior
func MakeSearch(b table.SearchBehavior) *Search {
	return &Search{behavior: b}
}

// Keywords splits raw search text on commas, trimming each term and
// discarding the empty ones
func Keywords(raw string) []string {
	res := []string{}
	for _, k := range strings.Split(raw, ",") {
		if k = strings.TrimSpace(k); k != "" {
			res = append(res, k)
		}
	}
	return res
}

// Keyword returns the current search text
func (s *Search) Keyword() string {
	return s.keyword
}

// Type replaces the search text. Keywords are returned for emission only
// when searching as the user types
func (s *Search) Type(raw string) ([]string, bool) {
	s.keyword = raw
	if s.behavior != table.SearchOnType {
		return nil, false
	}
	return Keywords(raw), true
}

// Submit returns the keywords for emission when searching on an explicit
// trigger, such as a button or the Enter key
func (s *Search) Submit() ([]string, bool) {
	if s.behavior == table.SearchOnType {
		return nil, false
	}
	return Keywords(s.keyword), true
}

// Clear resets the search text without emitting anything
func (s *Search) Clear() {
	s.keyword = ""
}
