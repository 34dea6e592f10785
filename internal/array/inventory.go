// Package array implements the backpack as a fixed-capacity sequence.
// Items live in a backing slice allocated once; removal shifts the tail left
// so storage order is insertion order until Sort reorders it.
package array

import (
	"iter"
	"strings"

	"github.com/mesh-intelligence/backpack/pkg/types"
)

// Inventory is a bounded, ordered backpack. It is not safe for concurrent use.
type Inventory struct {
	items []types.Item // Backing storage; len(items) is the capacity.
	count int          // Slots in use, 0 <= count <= len(items).

	linearComparisons int
	binaryComparisons int
}

// New creates an empty inventory that holds at most capacity items.
// A non-positive capacity falls back to types.DefaultCapacity; anything
// above types.MaxCapacity is cut to it.
func New(capacity int) *Inventory {
	if capacity <= 0 {
		capacity = types.DefaultCapacity
	}
	if capacity > types.MaxCapacity {
		capacity = types.MaxCapacity
	}
	return &Inventory{items: make([]types.Item, capacity)}
}

// Insert appends item after the last occupied slot.
// Returns ErrCapacityExceeded if the inventory is full.
func (inv *Inventory) Insert(item types.Item) error {
	if inv.count >= len(inv.items) {
		return types.ErrCapacityExceeded
	}
	inv.items[inv.count] = item
	inv.count++
	return nil
}

// Remove deletes the first item named name and shifts the remaining items
// left, preserving their order. The sequential search it runs updates the
// linear comparison counter.
func (inv *Inventory) Remove(name string) (types.Item, error) {
	i := inv.linearSearch(name)
	if i < 0 {
		return types.Item{}, &types.SearchError{Name: name, Comparisons: inv.linearComparisons}
	}
	removed := inv.items[i]
	copy(inv.items[i:inv.count-1], inv.items[i+1:inv.count])
	inv.count--
	inv.items[inv.count] = types.Item{}
	return removed, nil
}

// Search scans the occupied slots in order and returns the first exact match.
func (inv *Inventory) Search(name string) (types.Match, error) {
	i := inv.linearSearch(name)
	if i < 0 {
		return types.Match{}, &types.SearchError{Name: name, Comparisons: inv.linearComparisons}
	}
	return types.Match{Position: i + 1, Item: inv.items[i], Comparisons: inv.linearComparisons}, nil
}

// linearSearch returns the index of the first item named name, or -1.
func (inv *Inventory) linearSearch(name string) int {
	inv.linearComparisons = 0
	for i := 0; i < inv.count; i++ {
		inv.linearComparisons++
		if inv.items[i].Name == name {
			return i
		}
	}
	return -1
}

// Sort orders the items by name using selection sort. It reports false
// when there is nothing to sort (fewer than two items).
func (inv *Inventory) Sort() bool {
	if inv.count < 2 {
		return false
	}
	for i := 0; i < inv.count-1; i++ {
		minIdx := i
		for j := i + 1; j < inv.count; j++ {
			if strings.Compare(inv.items[j].Name, inv.items[minIdx].Name) < 0 {
				minIdx = j
			}
		}
		if minIdx != i {
			inv.items[i], inv.items[minIdx] = inv.items[minIdx], inv.items[i]
		}
	}
	return true
}

// BinarySearch looks name up by repeated halving.
//
// The inventory must already be sorted by name (see Sort). On an unsorted
// inventory the result is unspecified: it may miss an item that is present.
// With duplicate names the match is whichever one the halving reaches first.
func (inv *Inventory) BinarySearch(name string) (types.Match, error) {
	inv.binaryComparisons = 0
	lo, hi := 0, inv.count-1
	for lo <= hi {
		mid := lo + (hi-lo)/2
		inv.binaryComparisons++
		switch cmp := strings.Compare(inv.items[mid].Name, name); {
		case cmp == 0:
			return types.Match{Position: mid + 1, Item: inv.items[mid], Comparisons: inv.binaryComparisons}, nil
		case cmp < 0:
			lo = mid + 1
		default:
			hi = mid - 1
		}
	}
	return types.Match{}, &types.SearchError{Name: name, Comparisons: inv.binaryComparisons}
}

// All yields (position, item) pairs in storage order.
func (inv *Inventory) All() iter.Seq2[int, types.Item] {
	return func(yield func(int, types.Item) bool) {
		for i := 0; i < inv.count; i++ {
			if !yield(i+1, inv.items[i]) {
				return
			}
		}
	}
}

// Len returns the number of items stored.
func (inv *Inventory) Len() int { return inv.count }

// Cap returns the maximum number of items.
func (inv *Inventory) Cap() int { return len(inv.items) }

// Full reports whether Insert would fail.
func (inv *Inventory) Full() bool { return inv.count >= len(inv.items) }

// LinearComparisons returns the comparisons made by the last sequential
// search or removal.
func (inv *Inventory) LinearComparisons() int { return inv.linearComparisons }

// BinaryComparisons returns the comparisons made by the last binary search.
func (inv *Inventory) BinaryComparisons() int { return inv.binaryComparisons }

var _ types.Collection = (*Inventory)(nil)
