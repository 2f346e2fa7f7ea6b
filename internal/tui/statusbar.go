package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jveigel/brachistochrone-calculators/internal/catalog"
)

// StatusBar renders the persistent top bar: app name, the active calculator,
// catalog entity counts, and a transient flash note for reload events.
type StatusBar struct {
	Width    int
	Name     string // active calculator title; empty on the home list
	Planets  int
	Stars    int
	Ships    int
	Flash    string
	FlashErr bool
}

// SetCatalog refreshes the entity counts shown on the right side.
func (s *StatusBar) SetCatalog(cat *catalog.Catalog) {
	if cat == nil {
		s.Planets, s.Stars, s.Ships = 0, 0, 0
		return
	}
	s.Planets = len(cat.Planets)
	s.Stars = len(cat.Stars)
	s.Ships = len(cat.Ships)
}

// View renders the status bar as a single line. The name truncates and the
// counts drop when the terminal is too narrow to fit both sides.
func (s StatusBar) View() string {
	compact := s.Width < CompactWidth

	// The outer styleStatusBar applies Padding(0,1), consuming 2 columns.
	const barPadding = 2
	innerWidth := s.Width - barPadding
	if innerWidth < 0 {
		innerWidth = 0
	}

	barBg := lipgloss.NewStyle().Background(colorSurface)

	right := s.renderRight(compact)
	if lipgloss.Width(right) > innerWidth/2 {
		right = s.renderRight(true)
		if lipgloss.Width(right) > innerWidth {
			right = ""
		}
	}
	rightWidth := lipgloss.Width(right)

	left := styleStatusLogo.Render("brachi") + barBg.Render("  ")
	name := s.Name
	if name == "" {
		name = "calculators"
	}
	available := innerWidth - lipgloss.Width(left) - rightWidth - 1
	if available < 0 {
		available = 0
	}
	left += styleStatusName.Render(TruncateWithEllipsis(name, available))

	gap := innerWidth - lipgloss.Width(left) - rightWidth
	if gap < 1 {
		gap = 1
	}
	line := left + barBg.Render(strings.Repeat(" ", gap)) + right

	return styleStatusBar.Width(s.Width).Render(line)
}

// renderRight assembles the flash note and catalog counts. Counts are
// dropped in compact mode; the flash survives since it is actionable.
func (s StatusBar) renderRight(compact bool) string {
	barBg := lipgloss.NewStyle().Background(colorSurface)

	var parts []string
	if s.Flash != "" {
		style := styleStatusFlash
		if s.FlashErr {
			style = styleStatusFlashErr
		}
		parts = append(parts, style.Render(s.Flash))
	}
	if !compact {
		counts := fmt.Sprintf("%d planets · %d stars · %d ships", s.Planets, s.Stars, s.Ships)
		parts = append(parts, styleStatusCounts.Render(counts))
	}
	return strings.Join(parts, barBg.Render("  "))
}
