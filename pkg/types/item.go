package types

import (
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
)

// Field limits for item text. Longer input is truncated.
const (
	MaxNameLen     = 29
	MaxCategoryLen = 19
)

// Suggested categories shown at the prompt. Category stays free-form.
const (
	CategoryWeapon = "arma"
	CategoryAmmo   = "municao"
	CategoryHeal   = "cura"
)

// Item represents an object the player picked up.
type Item struct {
	ItemID   string // UUID v7, generated on creation.
	Name     string // Lookup key (required, non-empty). Uniqueness is not enforced.
	Category string // Free-form label.
	Quantity int    // Always positive.
}

// NewItem builds an Item from operator input.
// Returns ErrInvalidName if the name is empty after trimming.
// Non-positive quantities are coerced to 1.
func NewItem(name, category string, quantity int) (Item, error) {
	name = NormalizeName(name)
	if name == "" {
		return Item{}, ErrInvalidName
	}
	if quantity <= 0 {
		quantity = 1
	}
	return Item{
		ItemID:   newItemID(),
		Name:     name,
		Category: truncate(strings.TrimSpace(category), MaxCategoryLen),
		Quantity: quantity,
	}, nil
}

// NormalizeName trims surrounding whitespace and cuts name to MaxNameLen.
// Names used for lookups must go through it too, or a stored name that was
// cut can never be matched again.
func NormalizeName(name string) string {
	return truncate(strings.TrimSpace(name), MaxNameLen)
}

// newItemID generates a UUID v7 for an item.
func newItemID() string {
	id, err := uuid.NewV7()
	if err != nil {
		// Fallback to UUID v4 if v7 generation fails
		return uuid.New().String()
	}
	return id.String()
}

// truncate cuts s to at most n bytes without splitting a rune.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n]
}
