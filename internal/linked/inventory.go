// Package linked implements the backpack as a singly linked chain of nodes.
// New items are prepended, so iteration runs from the most recent item to the
// oldest. The chain keeps no length field; Len walks it.
package linked

import (
	"iter"

	"github.com/mesh-intelligence/backpack/pkg/types"
)

// node holds one item and owns the rest of the chain.
type node struct {
	item types.Item
	next *node
}

// Allocator creates a node for an item. It returns ErrAllocationFailure
// when no node can be provided. Allocators come only from this package;
// use LimitNodes to get one.
type Allocator func(item types.Item) (*node, error)

// Option configures an Inventory.
type Option func(*Inventory)

// WithAllocator replaces the node allocator.
func WithAllocator(alloc Allocator) Option {
	return func(inv *Inventory) {
		inv.alloc = alloc
	}
}

// LimitNodes returns an allocator that fails once n nodes have been handed
// out over the inventory's lifetime.
func LimitNodes(n int) Allocator {
	handed := 0
	return func(item types.Item) (*node, error) {
		if handed >= n {
			return nil, types.ErrAllocationFailure
		}
		handed++
		return &node{item: item}, nil
	}
}

func newNode(item types.Item) (*node, error) {
	return &node{item: item}, nil
}

// Inventory is an unbounded, unordered backpack. It is not safe for
// concurrent use.
type Inventory struct {
	head  *node // nil iff the chain is empty.
	alloc Allocator

	comparisons int
}

// New creates an empty inventory.
func New(opts ...Option) *Inventory {
	inv := &Inventory{alloc: newNode}
	for _, opt := range opts {
		opt(inv)
	}
	return inv
}

// Insert makes item the new head of the chain.
// Returns ErrAllocationFailure if no node could be allocated; the chain is
// left unchanged.
func (inv *Inventory) Insert(item types.Item) error {
	n, err := inv.alloc(item)
	if err != nil {
		return err
	}
	n.next = inv.head
	inv.head = n
	return nil
}

// Remove unlinks the first node named name and returns its item.
func (inv *Inventory) Remove(name string) (types.Item, error) {
	inv.comparisons = 0
	var prev *node
	cur := inv.head
	for cur != nil {
		inv.comparisons++
		if cur.item.Name == name {
			break
		}
		prev, cur = cur, cur.next
	}
	if cur == nil {
		return types.Item{}, &types.SearchError{Name: name, Comparisons: inv.comparisons}
	}
	if prev == nil {
		inv.head = cur.next
	} else {
		prev.next = cur.next
	}
	cur.next = nil
	return cur.item, nil
}

// Search walks the chain from the head and returns the first exact match.
func (inv *Inventory) Search(name string) (types.Match, error) {
	inv.comparisons = 0
	for cur := inv.head; cur != nil; cur = cur.next {
		inv.comparisons++
		if cur.item.Name == name {
			return types.Match{Position: inv.comparisons, Item: cur.item, Comparisons: inv.comparisons}, nil
		}
	}
	return types.Match{}, &types.SearchError{Name: name, Comparisons: inv.comparisons}
}

// All yields (ordinal, item) pairs from head to tail.
func (inv *Inventory) All() iter.Seq2[int, types.Item] {
	return func(yield func(int, types.Item) bool) {
		pos := 1
		for cur := inv.head; cur != nil; cur = cur.next {
			if !yield(pos, cur.item) {
				return
			}
			pos++
		}
	}
}

// Len walks the chain and returns its length.
func (inv *Inventory) Len() int {
	n := 0
	for cur := inv.head; cur != nil; cur = cur.next {
		n++
	}
	return n
}

// Empty reports whether the chain has no nodes.
func (inv *Inventory) Empty() bool { return inv.head == nil }

// Clear unlinks every node and returns how many were released.
func (inv *Inventory) Clear() int {
	released := 0
	cur := inv.head
	inv.head = nil
	for cur != nil {
		next := cur.next
		cur.next = nil
		cur = next
		released++
	}
	return released
}

// Comparisons returns the comparisons made by the last search or removal.
func (inv *Inventory) Comparisons() int { return inv.comparisons }

var _ types.Collection = (*Inventory)(nil)
