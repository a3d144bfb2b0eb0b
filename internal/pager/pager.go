// Package pager filters and paginates in-memory record lists.
//
// Every function here is pure: it never mutates its input and keeps no state
// between calls. The view state that does change (current page, search term,
// dropdown filters) lives in State, owned by the caller.
package pager

import "github.com/tartampluch/priroda-razuma/internal/config"

// DefaultPageSize is the row count of every list screen.
const DefaultPageSize = config.DefaultPageSize

// Predicate selects items of a list.
type Predicate[T any] func(T) bool

// Page is one screen of a filtered list.
type Page[T any] struct {
	Items  []T `json:"items"`
	Number int `json:"page"`       // 1-based
	Count  int `json:"page_count"` // >= 1
	Size   int `json:"page_size"`
	Total  int `json:"total_items"` // filtered item count
}

// HasPrev reports whether a previous page exists.
func (p Page[T]) HasPrev() bool { return p.Number > 1 }

// HasNext reports whether a next page exists.
func (p Page[T]) HasNext() bool { return p.Number < p.Count }

// Filter returns the items accepted by every predicate, in input order.
// Nil predicates are skipped, so optional filters can be passed unconditionally.
func Filter[T any](items []T, preds ...Predicate[T]) []T {
	active := make([]Predicate[T], 0, len(preds))
	for _, p := range preds {
		if p != nil {
			active = append(active, p)
		}
	}

	out := make([]T, 0, len(items))
	for _, it := range items {
		if matchAll(it, active) {
			out = append(out, it)
		}
	}
	return out
}

func matchAll[T any](it T, preds []Predicate[T]) bool {
	for _, p := range preds {
		if !p(it) {
			return false
		}
	}
	return true
}

// PageCount returns ceil(filteredCount/pageSize), never less than 1, so an
// empty list still reads "page 1 of 1". A non-positive pageSize counts as DefaultPageSize.
func PageCount(filteredCount, pageSize int) int {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	if filteredCount <= 0 {
		return 1
	}
	return (filteredCount-1)/pageSize + 1
}

// Slice returns items [(pageNumber-1)*pageSize, pageNumber*pageSize) clipped
// to the list bounds. The result shares the backing array of items.
func Slice[T any](items []T, pageNumber, pageSize int) []T {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	if pageNumber < 1 {
		pageNumber = 1
	}

	// Compare page indexes so huge page numbers cannot overflow the offset.
	if len(items) == 0 || pageNumber-1 > (len(items)-1)/pageSize {
		return items[len(items):]
	}
	start := (pageNumber - 1) * pageSize
	end := start + min(pageSize, len(items)-start)
	return items[start:end:end]
}

// Paginate filters items and cuts the requested page out of the result.
func Paginate[T any](items []T, pageNumber, pageSize int, preds ...Predicate[T]) Page[T] {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	filtered := Filter(items, preds...)
	return Page[T]{
		Items:  Slice(filtered, pageNumber, pageSize),
		Number: max(pageNumber, 1),
		Count:  PageCount(len(filtered), pageSize),
		Size:   pageSize,
		Total:  len(filtered),
	}
}
