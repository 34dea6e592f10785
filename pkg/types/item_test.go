package types

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewItem(t *testing.T) {
	tests := []struct {
		name         string
		itemName     string
		category     string
		quantity     int
		wantErr      error
		wantName     string
		wantCategory string
		wantQuantity int
	}{
		{
			name:         "valid item",
			itemName:     "Rifle",
			category:     CategoryWeapon,
			quantity:     2,
			wantName:     "Rifle",
			wantCategory: CategoryWeapon,
			wantQuantity: 2,
		},
		{
			name:         "surrounding whitespace trimmed",
			itemName:     "  Bandagem \t",
			category:     " cura ",
			quantity:     5,
			wantName:     "Bandagem",
			wantCategory: "cura",
			wantQuantity: 5,
		},
		{
			name:         "zero quantity coerced to one",
			itemName:     "Kit",
			quantity:     0,
			wantName:     "Kit",
			wantQuantity: 1,
		},
		{
			name:         "negative quantity coerced to one",
			itemName:     "Kit",
			quantity:     -7,
			wantName:     "Kit",
			wantQuantity: 1,
		},
		{
			name:     "empty name rejected",
			itemName: "",
			quantity: 1,
			wantErr:  ErrInvalidName,
		},
		{
			name:     "whitespace name rejected",
			itemName: "   ",
			quantity: 1,
			wantErr:  ErrInvalidName,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			item, err := NewItem(tt.itemName, tt.category, tt.quantity)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Equal(t, Item{}, item)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantName, item.Name)
			assert.Equal(t, tt.wantCategory, item.Category)
			assert.Equal(t, tt.wantQuantity, item.Quantity)
		})
	}
}

func TestNewItemAssignsUUIDv7(t *testing.T) {
	a, err := NewItem("Rifle", CategoryWeapon, 1)
	require.NoError(t, err)
	b, err := NewItem("Rifle", CategoryWeapon, 1)
	require.NoError(t, err)

	id, err := uuid.Parse(a.ItemID)
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(7), id.Version())
	assert.NotEqual(t, a.ItemID, b.ItemID, "each item gets its own ID")
}

func TestNewItemTruncatesLongFields(t *testing.T) {
	item, err := NewItem(strings.Repeat("n", 40), strings.Repeat("c", 40), 1)
	require.NoError(t, err)
	assert.Len(t, item.Name, MaxNameLen)
	assert.Len(t, item.Category, MaxCategoryLen)
}

func TestNormalizeName(t *testing.T) {
	long := strings.Repeat("L", 35)
	tests := map[string]string{
		"Rifle":       "Rifle",
		"  Rifle \t":  "Rifle",
		"":            "",
		"   ":         "",
		long:          long[:MaxNameLen],
		"  " + long:   long[:MaxNameLen],
	}
	for in, want := range tests {
		assert.Equal(t, want, NormalizeName(in), "input %q", in)
	}
}

func TestNewItemNameMatchesNormalizedLookup(t *testing.T) {
	long := strings.Repeat("L", 35)
	item, err := NewItem(long, "", 1)
	require.NoError(t, err)
	assert.Equal(t, NormalizeName(long), item.Name)
}

func TestTruncateKeepsRunesWhole(t *testing.T) {
	// 28 ASCII bytes followed by a two-byte rune straddles the limit.
	in := strings.Repeat("a", MaxNameLen-1) + "çx"
	out := truncate(in, MaxNameLen)
	assert.Equal(t, strings.Repeat("a", MaxNameLen-1), out)
	assert.Equal(t, "short", truncate("short", MaxNameLen))
}
