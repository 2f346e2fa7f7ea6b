// Package tui implements the interactive terminal interface: a home list
// of calculators and a per-calculator form with unit cycling and live
// catalog reloads.
package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jveigel/brachistochrone-calculators/internal/calc"
	"github.com/jveigel/brachistochrone-calculators/internal/catalog"
	"github.com/jveigel/brachistochrone-calculators/internal/solver"
)

// Program is the running BubbleTea program.
type Program = tea.Program

// NewProgram creates a full-screen program over the model.
func NewProgram(m AppModel, opts ...tea.ProgramOption) *Program {
	opts = append([]tea.ProgramOption{tea.WithAltScreen()}, opts...)
	return tea.NewProgram(m, opts...)
}

// Run launches the TUI over the given calculators and blocks until exit.
// When catalogPath names a readable catalog file its directory is watched
// and edits refresh the status bar counts; watch failures are not fatal.
func Run(calcs []*calc.Calculator, cat *catalog.Catalog, catalogPath string, opts solver.Options) error {
	m := NewAppModel(calcs, cat, opts)

	if catalogPath != "" {
		if w, err := catalog.NewWatcher(catalogPath); err == nil {
			if err := w.Start(); err == nil {
				defer w.Stop()
				m.Reloads = w.Reloads
			}
		}
	}

	if _, err := NewProgram(m).Run(); err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}
