package domain

import "strings"

// Item is the domain model for a menu entry. The catalog is read-only
// in this client; menu administration is a separate capability.
type Item struct {
	Name        string
	Ingredients string
	Type        string
	Price       float64
	Description string
}

// NormalizeItemType folds an item type label the way the catalog
// compares it: trimmed and lowercased.
func NormalizeItemType(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}
