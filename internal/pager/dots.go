package pager

import "github.com/tartampluch/priroda-razuma/internal/config"

// Window describes the page dots under a list: pages Start..End are drawn,
// page 1 and the last page are pinned outside the window, and gaps between
// them render as "...".
type Window struct {
	Start, End  int
	ShowFirst   bool
	LeadingGap  bool
	ShowLast    bool
	TrailingGap bool
}

// Visible reports whether dots are drawn at all; short lists only get arrows.
func Visible(count int) bool {
	return count > config.PageDotsMinPages
}

// DotWindow centres a window of visible dots on current.
func DotWindow(current, count, visible int) Window {
	if visible <= 0 {
		visible = config.PageDotsVisible
	}
	count = max(count, 1)

	start := max(1, min(current-visible/2, count-visible+1))
	end := min(start+visible-1, count)

	return Window{
		Start:       start,
		End:         end,
		ShowFirst:   start > 1,
		LeadingGap:  start > 2,
		ShowLast:    end < count,
		TrailingGap: end < count-1,
	}
}

// Pages lists every page label in render order, with 0 standing for a gap.
func (w Window) Pages(count int) []int {
	var out []int
	if w.ShowFirst {
		out = append(out, 1)
		if w.LeadingGap {
			out = append(out, 0)
		}
	}
	for p := w.Start; p <= w.End; p++ {
		out = append(out, p)
	}
	if w.ShowLast {
		if w.TrailingGap {
			out = append(out, 0)
		}
		out = append(out, count)
	}
	return out
}
