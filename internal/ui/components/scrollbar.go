package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Akashdeep-Patra/gridview/internal/ui"
)

// RenderScrollbar returns a vertical scrollbar track of the given height.
// It shows a thumb (filled block) proportional to the visible portion,
// positioned according to the scroll position.
//
// totalRows comes from the extent sentinel, so the track keeps growing as
// the user scrolls deeper — there is always a little runway below the thumb.
//
// Returns an empty string if all content fits (no scrolling needed).
func RenderScrollbar(styles ui.Styles, height, totalRows, visibleRows, scrollRow int) string {
	if totalRows <= visibleRows || height < 1 {
		return ""
	}

	t := styles.Theme

	// Thumb size: proportional to visible/total, min 1 row.
	thumbSize := height * visibleRows / totalRows
	if thumbSize < 1 {
		thumbSize = 1
	}
	if thumbSize > height {
		thumbSize = height
	}

	// Thumb position from the scroll fraction.
	maxOffset := height - thumbSize
	maxScroll := totalRows - visibleRows
	thumbStart := 0
	if maxScroll > 0 {
		thumbStart = scrollRow * maxOffset / maxScroll
	}
	if thumbStart < 0 {
		thumbStart = 0
	}
	if thumbStart > maxOffset {
		thumbStart = maxOffset
	}

	thumbStyle := lipgloss.NewStyle().Foreground(t.Primary)
	trackStyle := lipgloss.NewStyle().Foreground(t.Border)

	thumbChar := "█"
	trackChar := "░"

	var b strings.Builder
	b.Grow(height * 4)
	for i := 0; i < height; i++ {
		if i > 0 {
			b.WriteByte('\n')
		}
		if i >= thumbStart && i < thumbStart+thumbSize {
			b.WriteString(thumbStyle.Render(thumbChar))
		} else {
			b.WriteString(trackStyle.Render(trackChar))
		}
	}
	return b.String()
}
