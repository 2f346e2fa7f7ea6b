package tui

import "github.com/charmbracelet/lipgloss"

// Semantic color palette.
var (
	colorPrimary     = lipgloss.Color("#00BFFF") // Cyan — primary accent
	colorAccent      = lipgloss.Color("#FFD700") // Gold — warnings
	colorSuccess     = lipgloss.Color("#00E676") // Green — resolved values
	colorDanger      = lipgloss.Color("#FF5252") // Red — errors
	colorMuted       = lipgloss.Color("#636363") // Gray — de-emphasized
	colorMutedLight  = lipgloss.Color("#8C8C8C") // Lighter gray — normal text
	colorWhite       = lipgloss.Color("#EEEEEE") // Off-white — primary text
	colorBrightWhite = lipgloss.Color("#FFFFFF") // Pure white — emphatic text
	colorSurface     = lipgloss.Color("#1E1E2E") // Dark surface — status bar bg
	colorSurfaceDim  = lipgloss.Color("#181825") // Darkest surface — footer bg
)

// Selection indicator prepended to the active row.
const selectionIndicator = "▎"

// Status bar styles — visually dominant with solid background.
var (
	styleStatusBar = lipgloss.NewStyle().
			Background(colorSurface).
			Foreground(colorWhite).
			Bold(true).
			Padding(0, 1)

	styleStatusLogo = lipgloss.NewStyle().
			Background(colorSurface).
			Foreground(colorPrimary).
			Bold(true)

	styleStatusName = lipgloss.NewStyle().
			Background(colorSurface).
			Foreground(colorWhite)

	styleStatusCounts = lipgloss.NewStyle().
				Background(colorSurface).
				Foreground(colorMutedLight)

	styleStatusFlash = lipgloss.NewStyle().
				Background(colorSurface).
				Foreground(colorSuccess)

	styleStatusFlashErr = lipgloss.NewStyle().
				Background(colorSurface).
				Foreground(colorDanger)
)

// Row styles shared by the home list and the form.
var (
	styleRowSelected = lipgloss.NewStyle().
				Foreground(colorBrightWhite).
				Bold(true)

	styleRowNormal = lipgloss.NewStyle().
			Foreground(colorMutedLight)

	styleDim = lipgloss.NewStyle().
			Foreground(colorMuted)

	// styleSelectionIndicator styles the left-edge indicator for the selected row.
	styleSelectionIndicator = lipgloss.NewStyle().
				Foreground(colorPrimary).
				Bold(true)
)

// Form styles.
var (
	styleFormTitle = lipgloss.NewStyle().
			Foreground(colorPrimary).
			Bold(true)

	styleFieldUnit = lipgloss.NewStyle().
			Foreground(colorMutedLight)

	styleFieldValue = lipgloss.NewStyle().
			Foreground(colorSuccess)

	styleFormError = lipgloss.NewStyle().
			Foreground(colorDanger)

	styleFormWarn = lipgloss.NewStyle().
			Foreground(colorAccent)
)

// Footer styles — top border, clear key/desc contrast.
var (
	styleFooter = lipgloss.NewStyle().
			Foreground(colorMuted).
			Background(colorSurfaceDim).
			Border(lipgloss.NormalBorder(), true, false, false, false).
			BorderForeground(colorMuted)

	styleFooterKey = lipgloss.NewStyle().
			Foreground(colorPrimary).
			Bold(true)

	styleFooterSep = lipgloss.NewStyle().
			Foreground(colorMuted)

	styleFooterDesc = lipgloss.NewStyle().
			Foreground(colorMutedLight)
)
