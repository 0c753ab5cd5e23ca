package model

import "time"

// Setting keys persisted per terminal.
const (
	SettingTaxRate       = "tax_rate"
	SettingPrintReceipts = "print_receipts"
	SettingTerminalName  = "terminal_name"
	SettingLocationID    = "location_id"
)

type TerminalSetting struct {
	Terminal  string    `db:"terminal" json:"terminal"`
	Key       string    `db:"key" json:"key"`
	Value     string    `db:"value" json:"value"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}
