package pager

import (
	"strings"

	"github.com/tartampluch/priroda-razuma/internal/config"
	"golang.org/x/text/cases"
)

// Contains matches items whose field contains term, ignoring case.
// Case folding is Unicode-aware, so "ЁЛКИН" finds "Ёлкин". An empty term
// returns nil, which Filter treats as "match everything".
//
// The returned predicate is not safe for concurrent use.
func Contains[T any](field func(T) string, term string) Predicate[T] {
	term = strings.TrimSpace(term)
	if term == "" {
		return nil
	}

	folder := cases.Fold()
	needle := folder.String(term)
	return func(it T) bool {
		return strings.Contains(folder.String(field(it)), needle)
	}
}

// Equals matches items whose field equals value. The dropdown value "all"
// and the empty string disable the filter.
func Equals[T any](field func(T) string, value string) Predicate[T] {
	if value == "" || value == config.FilterAll {
		return nil
	}
	return func(it T) bool {
		return field(it) == value
	}
}

// Not negates a predicate. Not(nil) stays nil.
func Not[T any](p Predicate[T]) Predicate[T] {
	if p == nil {
		return nil
	}
	return func(it T) bool { return !p(it) }
}
