package pager

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/tartampluch/priroda-razuma/internal/config"
)

// Errors of the "go to page" input.
var (
	ErrPageEmpty     = errors.New(config.ErrPageEmpty)
	ErrPageNotNumber = errors.New(config.ErrPageNumber)
)

// PageRangeError reports a page number outside 1..Count.
type PageRangeError struct {
	Page  int
	Count int
}

func (e *PageRangeError) Error() string {
	return fmt.Sprintf("%s: %d not in 1..%d", config.ErrPageRange, e.Page, e.Count)
}

func (e *PageRangeError) TranslationKey() string { return config.TKeyErrPageRange }

// ParsePageInput validates a page number typed by the user against count pages.
func ParsePageInput(input string, count int) (int, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return 0, ErrPageEmpty
	}
	n, err := strconv.Atoi(input)
	if err != nil {
		return 0, ErrPageNotNumber
	}
	if n < 1 || n > count {
		return 0, &PageRangeError{Page: n, Count: count}
	}
	return n, nil
}

// State is the mutable view state of one list screen. Changing the search
// term or a filter resets the page to 1.
type State struct {
	Page    int
	Search  string
	Filters map[string]string
}

// NewState returns a state on page 1 with no filters.
func NewState() *State {
	return &State{Page: 1, Filters: make(map[string]string)}
}

// SetSearch updates the search term.
func (s *State) SetSearch(term string) {
	if term == s.Search {
		return
	}
	s.Search = term
	s.Page = 1
}

// SetFilter sets a dropdown filter; config.FilterAll clears it.
func (s *State) SetFilter(key, value string) {
	if s.Filters == nil {
		s.Filters = make(map[string]string)
	}
	if value == "" {
		value = config.FilterAll
	}
	if s.Filter(key) == value {
		return
	}
	if value == config.FilterAll {
		delete(s.Filters, key)
	} else {
		s.Filters[key] = value
	}
	s.Page = 1
}

// Filter returns the value of a dropdown filter, config.FilterAll when unset.
func (s *State) Filter(key string) string {
	if v, ok := s.Filters[key]; ok {
		return v
	}
	return config.FilterAll
}

// CanPrev reports whether the "previous" button is enabled.
func (s *State) CanPrev() bool { return s.Page > 1 }

// CanNext reports whether the "next" button is enabled for count pages.
func (s *State) CanNext(count int) bool { return s.Page < count }

// Prev moves one page back, stopping at 1.
func (s *State) Prev() {
	if s.CanPrev() {
		s.Page--
	}
}

// Next moves one page forward, stopping at count.
func (s *State) Next(count int) {
	if s.CanNext(count) {
		s.Page++
	}
}

// GoTo jumps to a page typed by the user.
func (s *State) GoTo(input string, count int) error {
	n, err := ParsePageInput(input, count)
	if err != nil {
		return err
	}
	s.Page = n
	return nil
}

// Clamp pulls the page back into 1..count, e.g. after deleting the last row
// of the last page.
func (s *State) Clamp(count int) {
	s.Page = min(max(s.Page, 1), max(count, 1))
}
