package tui

import (
	"fmt"
	"strings"
)

// CalcChoice is one calculator row on the home screen.
type CalcChoice struct {
	Name  string
	Title string
	Blurb string
}

// HomeView renders the landing page list of calculators.
type HomeView struct {
	Choices []CalcChoice
	Cursor  int
	Width   int
}

// View renders the home list. Each row shows an indicator, the calculator
// title, and its one-line blurb.
func (hv HomeView) View() string {
	if len(hv.Choices) == 0 {
		return "  " + styleDim.Render("no calculators registered") + "\n"
	}

	var b strings.Builder
	for i, c := range hv.Choices {
		b.WriteString(hv.renderRow(i, c))
		b.WriteString("\n")
	}
	return b.String()
}

// renderRow renders a single calculator row with selection indicator, title,
// and blurb.
func (hv HomeView) renderRow(i int, c CalcChoice) string {
	selected := i == hv.Cursor

	indicator := "  "
	if selected {
		indicator = styleSelectionIndicator.Render(selectionIndicator) + " "
	}

	titleWidth := 30
	if hv.Width > 0 && hv.Width < CompactWidth {
		titleWidth = hv.Width / 2
		if titleWidth < 12 {
			titleWidth = 12
		}
	}
	title := fmt.Sprintf("%-*s", titleWidth, TruncateWithEllipsis(c.Title, titleWidth))

	styledTitle := styleRowNormal.Render(title)
	if selected {
		styledTitle = styleRowSelected.Render(title)
	}

	blurb := c.Blurb
	if hv.Width > 0 {
		maxBlurb := hv.Width - titleWidth - 6
		if maxBlurb < 10 {
			maxBlurb = 10
		}
		blurb = TruncateWithEllipsis(blurb, maxBlurb)
	}

	return indicator + styledTitle + "  " + styleDim.Render(blurb)
}

// Selected returns the choice at the cursor, or nil if the list is empty.
func (hv HomeView) Selected() *CalcChoice {
	if hv.Cursor < 0 || hv.Cursor >= len(hv.Choices) {
		return nil
	}
	return &hv.Choices[hv.Cursor]
}

// MoveUp moves the cursor up by one position.
func (hv *HomeView) MoveUp() {
	if hv.Cursor > 0 {
		hv.Cursor--
	}
}

// MoveDown moves the cursor down by one position.
func (hv *HomeView) MoveDown() {
	max := len(hv.Choices) - 1
	if max < 0 {
		max = 0
	}
	if hv.Cursor < max {
		hv.Cursor++
	}
}
