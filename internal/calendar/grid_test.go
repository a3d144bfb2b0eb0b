package calendar_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tartampluch/priroda-razuma/internal/calendar"
)

func TestMonthGrid_MondayStart(t *testing.T) {
	g := calendar.MonthGrid(2024, 1, date(2024, 6, 15))

	assert.Equal(t, 0, g.Lead)
	assert.Equal(t, 31, g.Days)
	require.Len(t, g.Rows, 5)
	assert.Equal(t, 1, g.Rows[0][0].Day, "Day 1 sits in the Monday column")
	assert.Equal(t, 31, g.Rows[4][2].Day)
	assert.False(t, g.Rows[4][3].InMonth(), "Trailing cells are blank")
}

func TestMonthGrid_SundayStart(t *testing.T) {
	g := calendar.MonthGrid(2024, 9, date(2024, 12, 1))

	assert.Equal(t, 6, g.Lead)
	require.Len(t, g.Rows, 6, "30 days after 6 blanks need six weeks")
	for j := 0; j < 6; j++ {
		assert.False(t, g.Rows[0][j].InMonth())
	}
	assert.Equal(t, 1, g.Rows[0][6].Day)
	assert.Equal(t, 30, g.Rows[5][0].Day)
}

func TestMonthGrid_FebruaryFourRows(t *testing.T) {
	// 2021-02-01 is a Monday and February 2021 has 28 days.
	g := calendar.MonthGrid(2021, 2, date(2024, 1, 1))
	assert.Equal(t, 0, g.Lead)
	assert.Len(t, g.Rows, 4)
}

func TestMonthGrid_FutureDaysNotSelectable(t *testing.T) {
	today := date(2024, 6, 15)
	g := calendar.MonthGrid(2024, 6, today)

	seen := 0
	for _, row := range g.Rows {
		for _, c := range row {
			if !c.InMonth() {
				continue
			}
			seen++
			assert.Equalf(t, c.Day <= 15, c.Selectable, "day %d", c.Day)
			assert.Equalf(t, c.Day == 15, c.Today, "day %d", c.Day)
		}
	}
	assert.Equal(t, 30, seen, "Every day appears exactly once")
}

func TestShiftMonth(t *testing.T) {
	tests := []struct {
		y, m, delta int
		wantY       int
		wantM       int
	}{
		{2024, 1, -1, 2023, 12},
		{2024, 12, 1, 2025, 1},
		{2024, 6, 0, 2024, 6},
		{2024, 6, 18, 2025, 12},
		{2024, 6, -18, 2022, 12},
	}

	for _, tt := range tests {
		y, m := calendar.ShiftMonth(tt.y, tt.m, tt.delta)
		assert.Equal(t, tt.wantY, y)
		assert.Equal(t, tt.wantM, m)
	}
}

func TestYearRange(t *testing.T) {
	years := calendar.YearRange(date(2024, 6, 15), 3)
	assert.Equal(t, []int{2024, 2023, 2022, 2021}, years)
	assert.Equal(t, []int{2024}, calendar.YearRange(date(2024, 6, 15), -5))
}

func TestClampDay(t *testing.T) {
	assert.Equal(t, 29, calendar.ClampDay(2024, 2, 31))
	assert.Equal(t, 28, calendar.ClampDay(2023, 2, 30))
	assert.Equal(t, 15, calendar.ClampDay(2023, 2, 15))
	assert.Equal(t, 1, calendar.ClampDay(2023, 2, 0))
}
