package domain

// MenuItem is one parsed row from the menu spreadsheet. Items are transient:
// rebuilt on every PDF request and never persisted.
type MenuItem struct {
	Category    string
	Item        string
	Description string
	Price       string
}
