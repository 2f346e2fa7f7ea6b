package tui

import "github.com/jveigel/brachistochrone-calculators/internal/catalog"

// MsgCatalogReloaded announces that the watched catalog file changed and
// carries the freshly loaded result. Err is set when the file failed to
// parse; Catalog is nil in that case.
type MsgCatalogReloaded struct {
	Catalog *catalog.Catalog
	Path    string
	Err     error
}

// MsgFlashExpired clears the status bar flash note of the matching
// generation. A newer flash bumps the generation and survives stale timers.
type MsgFlashExpired struct {
	Gen int
}
