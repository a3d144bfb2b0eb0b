package pager_test

import (
	"math"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tartampluch/priroda-razuma/internal/pager"
)

type item struct {
	ID     int
	Name   string
	Status string
}

func itemsOfSize(n int) []item {
	out := make([]item, n)
	for i := range out {
		out[i] = item{ID: i, Name: "item " + strconv.Itoa(i)}
	}
	return out
}

func TestPageCount(t *testing.T) {
	tests := []struct {
		count, size, want int
	}{
		{0, 10, 1},
		{1, 10, 1},
		{10, 10, 1},
		{11, 10, 2},
		{25, 10, 3},
		{30, 10, 3},
		{5, 0, 1},
		{11, -3, 2},
	}

	for _, tt := range tests {
		assert.Equalf(t, tt.want, pager.PageCount(tt.count, tt.size), "PageCount(%d, %d)", tt.count, tt.size)
	}
}

func TestSlice(t *testing.T) {
	items := itemsOfSize(25)

	page3 := pager.Slice(items, 3, 10)
	require.Len(t, page3, 5)
	for i, it := range page3 {
		assert.Equal(t, 20+i, it.ID)
	}

	assert.Len(t, pager.Slice(items, 1, 10), 10)
	assert.Equal(t, 10, pager.Slice(items, 2, 10)[0].ID)
	assert.Empty(t, pager.Slice(items, 4, 10), "Past the end is empty, not a panic")
	assert.Empty(t, pager.Slice([]item{}, 1, 10))
	assert.Equal(t, 0, pager.Slice(items, 0, 10)[0].ID, "Page 0 reads as page 1")
}

func TestSlice_HugeValues(t *testing.T) {
	items := itemsOfSize(25)
	assert.NotPanics(t, func() {
		assert.Empty(t, pager.Slice(items, math.MaxInt/10+2, 10))
		assert.Empty(t, pager.Slice(items, math.MaxInt, 10))
		assert.Len(t, pager.Slice(items, 1, math.MaxInt), 25)
	})
	assert.Equal(t, 1, pager.PageCount(25, math.MaxInt))
	assert.Equal(t, math.MaxInt, pager.PageCount(math.MaxInt, 1))
}

func TestSlice_DoesNotLeakCapacity(t *testing.T) {
	items := itemsOfSize(25)
	page := pager.Slice(items, 1, 10)
	page = append(page, item{ID: 999})
	assert.Equal(t, 10, items[10].ID, "Appending to a page must not overwrite the source")
	assert.Len(t, page, 11)
}

func TestFilter(t *testing.T) {
	items := []item{
		{1, "Иванов", "active"},
		{2, "Петров", "inactive"},
		{3, "Иванова", "inactive"},
		{4, "Сидоров", "active"},
	}

	byName := pager.Contains(func(i item) string { return i.Name }, "иванов")
	byStatus := pager.Equals(func(i item) string { return i.Status }, "inactive")

	ab := pager.Filter(items, byName, byStatus)
	ba := pager.Filter(items, byStatus, byName)

	require.Len(t, ab, 1)
	assert.Equal(t, 3, ab[0].ID)
	assert.Equal(t, ab, ba, "Predicate order must not change the result")

	assert.Equal(t, items, pager.Filter(items), "No predicates keeps everything")
	assert.Equal(t, items, pager.Filter(items, nil, nil), "Nil predicates are ignored")
	assert.Equal(t, 1, items[0].ID, "Source slice is untouched")
}

func TestFilter_PreservesOrder(t *testing.T) {
	items := itemsOfSize(20)
	even := func(i item) bool { return i.ID%2 == 0 }

	got := pager.Filter(items, even)
	require.Len(t, got, 10)
	for i := 1; i < len(got); i++ {
		assert.Less(t, got[i-1].ID, got[i].ID)
	}
}

func TestContains(t *testing.T) {
	name := func(i item) string { return i.Name }

	assert.Nil(t, pager.Contains(name, ""), "Empty search disables the filter")
	assert.Nil(t, pager.Contains(name, "   "))

	p := pager.Contains(name, "ЁЛКИН")
	assert.True(t, p(item{Name: "Ёлкина Анна"}))
	assert.False(t, p(item{Name: "Елкина Анна"}), "Ё and Е are different letters")

	p = pager.Contains(name, "ann")
	assert.True(t, p(item{Name: "Anna Smith"}))
}

func TestEquals(t *testing.T) {
	status := func(i item) string { return i.Status }

	assert.Nil(t, pager.Equals(status, "all"))
	assert.Nil(t, pager.Equals(status, ""))

	p := pager.Equals(status, "active")
	assert.True(t, p(item{Status: "active"}))
	assert.False(t, p(item{Status: "inactive"}))

	notActive := pager.Not(p)
	assert.True(t, notActive(item{Status: "inactive"}))
	assert.Nil(t, pager.Not[item](nil))
}

func TestPaginate(t *testing.T) {
	items := itemsOfSize(25)
	odd := func(i item) bool { return i.ID%2 == 1 }

	p := pager.Paginate(items, 2, 10, odd)
	assert.Equal(t, 12, p.Total)
	assert.Equal(t, 2, p.Count)
	assert.Equal(t, 2, p.Number)
	assert.Equal(t, 10, p.Size)
	require.Len(t, p.Items, 2)
	assert.Equal(t, 21, p.Items[0].ID)
	assert.True(t, p.HasPrev())
	assert.False(t, p.HasNext())

	empty := pager.Paginate(items, 1, 10, func(item) bool { return false })
	assert.Equal(t, 1, empty.Count, "Empty list still has one page")
	assert.Equal(t, 0, empty.Total)
	assert.NotNil(t, empty.Items)
	assert.Empty(t, empty.Items)
	assert.False(t, empty.HasNext())

	defaults := pager.Paginate(items, 1, 0)
	assert.Equal(t, pager.DefaultPageSize, defaults.Size)
	assert.Len(t, defaults.Items, 10)
}
