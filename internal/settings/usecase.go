package settings

import "context"

// Settings is the typed snapshot of one terminal's preferences, loaded once
// and handed by value to the components that need it.
type Settings struct {
	TaxRate       float64 `json:"tax_rate"`
	PrintReceipts bool    `json:"print_receipts"`
	TerminalName  string  `json:"terminal_name"`
	LocationID    string  `json:"location_id"`
}

type UseCase interface {
	// Get returns the terminal's snapshot, loading it from the store on
	// first use and serving it from memory afterwards.
	Get(ctx context.Context, terminal string) (Settings, error)
	Save(ctx context.Context, terminal string, s Settings) error
	// Reload discards the cached snapshot so the next Get re-reads the
	// store. This is the explicit reload trigger; there is no broadcast.
	Reload(terminal string)
}
