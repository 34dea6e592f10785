package types

import "iter"

// Collection is the contract shared by the array and linked backpacks.
// Positions are 1-based throughout.
type Collection interface {
	// Insert adds an item. The array variant appends, the linked variant
	// prepends.
	Insert(item Item) error

	// Remove deletes the first item whose name equals name exactly and
	// returns it. Returns a *SearchError wrapping ErrNotFound otherwise.
	Remove(name string) (Item, error)

	// Search performs a sequential scan for name and returns the match.
	// Returns a *SearchError wrapping ErrNotFound if no item matches.
	Search(name string) (Match, error)

	// All yields (position, item) pairs in storage order.
	All() iter.Seq2[int, Item]

	// Len returns the number of stored items.
	Len() int
}

// Match is the result of a successful search.
type Match struct {
	Position    int  // 1-based position of the match.
	Item        Item // The matching item.
	Comparisons int  // Name comparisons made to find it.
}
