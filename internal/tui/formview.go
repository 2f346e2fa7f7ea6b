package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jveigel/brachistochrone-calculators/internal/calc"
	"github.com/jveigel/brachistochrone-calculators/internal/solver"
)

// fieldLabelWidth is the padded width of the field name column.
const fieldLabelWidth = 20

// FormField pairs one registry field with its text input and unit state.
// The input holds what the user typed; resolved values render in a separate
// column so a calculate pass never promotes derived output to user input.
type FormField struct {
	Name        string
	Label       string
	Units       []solver.Unit
	Unit        int    // index into Units of the active display unit
	DefaultUnit int    // index restored on reset
	Preset      string // raw preset text restored on reset; empty when none
	Input       textinput.Model
}

// unitName returns the active display unit name, empty for unitless fields.
func (f *FormField) unitName() string {
	if len(f.Units) == 0 {
		return ""
	}
	return f.Units[f.Unit].Name
}

// FormView renders one calculator's form: a text input per field, the
// resolved value column, and the error/warning lines from the last pass.
type FormView struct {
	Calc    *calc.Calculator
	Session *solver.Session
	Fields  []FormField
	Focus   int
	Result  solver.Result
	Solved  bool
	Err     error // sweep-cap failure from Solve; Result.Err carries field errors
	Width   int
}

// NewFormView builds a form over the calculator's registry. Preset fields
// start with their raw text in the input; everything else starts empty.
func NewFormView(c *calc.Calculator, opts solver.Options) FormView {
	presets := make(map[string]string, len(c.Presets))
	for _, p := range c.Presets {
		presets[p.Field] = p.Raw
	}

	fv := FormView{
		Calc:    c,
		Session: c.Session(opts),
	}
	for _, name := range c.Registry.Names() {
		def, _ := c.Registry.Def(name)
		f := FormField{
			Name:   name,
			Label:  strings.ReplaceAll(name, "_", " "),
			Units:  def.Units,
			Preset: presets[name],
		}
		for i, u := range def.Units {
			if u.Name == def.DefaultUnit {
				f.Unit = i
				break
			}
		}
		f.DefaultUnit = f.Unit
		f.Input = newFieldInput(def, f)
		fv.Fields = append(fv.Fields, f)
	}
	if len(fv.Fields) > 0 {
		fv.Fields[0].Input.Focus()
	}
	return fv
}

// newFieldInput builds the text input for a field. Fields with a declared
// default show it as the placeholder, converted to the display unit.
func newFieldInput(def solver.Definition, f FormField) textinput.Model {
	ti := textinput.New()
	ti.Prompt = "▸ "
	ti.CharLimit = 24
	ti.Width = 14
	if def.Default != nil {
		factor := 1.0
		if len(f.Units) > 0 {
			factor = f.Units[f.DefaultUnit].Factor
		}
		ti.Placeholder = strconv.FormatFloat(*def.Default/factor, 'g', -1, 64)
	}
	if f.Preset != "" {
		ti.SetValue(f.Preset)
	}
	return ti
}

// Calculate runs one pass: the session is reset and every field's text and
// unit are re-applied before solving, so values derived on earlier passes
// never masquerade as input on this one.
func (fv *FormView) Calculate() {
	if fv.Session == nil {
		return
	}
	fv.Session.Reset()
	for i := range fv.Fields {
		f := &fv.Fields[i]
		// Names and units come from the registry, so this cannot fail.
		_ = fv.Session.SetInput(f.Name, f.Input.Value(), f.unitName())
	}
	res, err := fv.Session.Solve()
	fv.Result = res
	fv.Err = err
	fv.Solved = true
}

// Reset restores the form to its starting state: preset text back in the
// inputs, other inputs cleared, display units back to their defaults, and
// the last result discarded.
func (fv *FormView) Reset() {
	if fv.Session != nil {
		fv.Session.Reset()
	}
	for i := range fv.Fields {
		f := &fv.Fields[i]
		f.Input.SetValue(f.Preset)
		f.Unit = f.DefaultUnit
	}
	fv.Result = solver.Result{}
	fv.Solved = false
	fv.Err = nil
}

// CycleUnit rotates the focused field's display unit. Typed text keeps its
// magnitude and is reinterpreted in the new unit; a solved form recalculates
// so the value column tracks the change.
func (fv *FormView) CycleUnit() {
	if fv.Focus < 0 || fv.Focus >= len(fv.Fields) {
		return
	}
	f := &fv.Fields[fv.Focus]
	if len(f.Units) < 2 {
		return
	}
	f.Unit = (f.Unit + 1) % len(f.Units)
	if fv.Solved {
		fv.Calculate()
	}
}

// FocusNext moves focus to the next field.
func (fv *FormView) FocusNext() {
	if fv.Focus >= len(fv.Fields)-1 {
		return
	}
	fv.Fields[fv.Focus].Input.Blur()
	fv.Focus++
	fv.Fields[fv.Focus].Input.Focus()
}

// FocusPrev moves focus to the previous field.
func (fv *FormView) FocusPrev() {
	if fv.Focus <= 0 {
		return
	}
	fv.Fields[fv.Focus].Input.Blur()
	fv.Focus--
	fv.Fields[fv.Focus].Input.Focus()
}

// UpdateFocused routes a message to the focused text input.
func (fv *FormView) UpdateFocused(msg tea.Msg) tea.Cmd {
	if fv.Focus < 0 || fv.Focus >= len(fv.Fields) {
		return nil
	}
	var cmd tea.Cmd
	fv.Fields[fv.Focus].Input, cmd = fv.Fields[fv.Focus].Input.Update(msg)
	return cmd
}

// View renders the form: title, blurb, one row per field, and the status
// lines from the last calculate pass.
func (fv FormView) View() string {
	if fv.Calc == nil {
		return ""
	}

	var b strings.Builder
	b.WriteString("  " + styleFormTitle.Render(fv.Calc.Title) + "\n")
	if fv.Calc.Blurb != "" {
		b.WriteString("  " + styleDim.Render(fv.Calc.Blurb) + "\n")
	}
	b.WriteString("\n")

	for i := range fv.Fields {
		b.WriteString(fv.renderFieldRow(i))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	fv.renderStatus(&b)
	return b.String()
}

// renderFieldRow renders one field: indicator, label, input, unit tag, and
// the resolved value from the last pass.
func (fv FormView) renderFieldRow(i int) string {
	f := fv.Fields[i]
	selected := i == fv.Focus

	indicator := "  "
	if selected {
		indicator = styleSelectionIndicator.Render(selectionIndicator) + " "
	}

	label := fmt.Sprintf("%-*s", fieldLabelWidth, TruncateWithEllipsis(f.Label, fieldLabelWidth))
	styledLabel := styleRowNormal.Render(label)
	if selected {
		styledLabel = styleRowSelected.Render(label)
	}

	unitTag := strings.Repeat(" ", 6)
	if len(f.Units) > 0 {
		unitTag = fmt.Sprintf("%-6s", "["+f.Units[f.Unit].Name+"]")
	}

	var value string
	if fv.Solved {
		if v := fv.Result.Value(f.Name); v.Set {
			value = styleFieldValue.Render(v.Display)
		} else {
			value = styleDim.Render("-")
		}
	}

	return indicator + styledLabel + " " + f.Input.View() + " " + styleFieldUnit.Render(unitTag) + "  " + value
}

// renderStatus appends the error, warning, and sweep lines for the last pass.
func (fv FormView) renderStatus(b *strings.Builder) {
	if !fv.Solved {
		return
	}
	clean := true
	if fv.Err != nil {
		clean = false
		b.WriteString("  " + styleFormError.Render("✗ "+fv.Err.Error()) + "\n")
	}
	if fv.Result.Err != nil {
		clean = false
		b.WriteString("  " + styleFormError.Render("✗ "+fv.Result.Err.Error()) + "\n")
	}
	for _, w := range fv.Result.Warnings {
		b.WriteString("  " + styleFormWarn.Render("⚠ "+w.Error()) + "\n")
	}
	if clean {
		b.WriteString("  " + styleDim.Render(fmt.Sprintf("solved in %d sweep(s)", fv.Result.Sweeps)) + "\n")
	}
}
