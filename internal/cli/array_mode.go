package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/mesh-intelligence/backpack/internal/session"
	"github.com/mesh-intelligence/backpack/pkg/types"
)

// arrayMode runs the array submenu until the operator goes back.
func (m *menu) arrayMode(ctx context.Context) error {
	arr, err := m.sess.Array()
	if err != nil {
		return err
	}
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		fmt.Fprintln(m.out, "\n-- ARRAY mode --")
		fmt.Fprintln(m.out, "1 Insert | 2 Remove | 3 List | 4 Linear search | 5 Sort | 6 Binary search | 0 Back")
		choice, err := m.readChoice()
		if err != nil {
			return err
		}

		switch choice {
		case 0:
			return nil
		case 1:
			err = m.arrayInsert(arr)
		case 2:
			err = m.arrayRemove(arr)
		case 3:
			m.printArray(arr)
		case 4:
			err = m.arraySearch(arr, false)
		case 5:
			m.arraySort(arr)
		case 6:
			err = m.arraySearch(arr, true)
		default:
			fmt.Fprintln(m.out, "Invalid option.")
		}
		if err != nil {
			return err
		}
	}
}

func (m *menu) printArray(arr *session.ArrayView) {
	fmt.Fprintf(m.out, "\n--- Backpack (ARRAY) [%d/%d] ---\n", arr.Len(), arr.Cap())
	if arr.Len() == 0 {
		fmt.Fprintln(m.out, "Backpack is empty.")
		return
	}
	printItems(m.out, arr.All())
}

func (m *menu) arrayInsert(arr *session.ArrayView) error {
	if arr.Full() {
		fmt.Fprintln(m.out, "Backpack (array) is full. Remove an item before inserting.")
		return nil
	}
	item, ok, err := m.readItem()
	if err != nil || !ok {
		return err
	}
	if err := arr.Insert(item); err != nil {
		if errors.Is(err, types.ErrCapacityExceeded) {
			fmt.Fprintln(m.out, "Backpack (array) is full. Remove an item before inserting.")
			return nil
		}
		return err
	}
	fmt.Fprintf(m.out, "Item '%s' added to the array.\n", item.Name)
	m.printArray(arr)
	return nil
}

func (m *menu) arrayRemove(arr *session.ArrayView) error {
	if arr.Len() == 0 {
		fmt.Fprintln(m.out, "Backpack (array) is empty.")
		return nil
	}
	name, ok, err := m.readName("Name of the item to remove: ")
	if err != nil || !ok {
		return err
	}
	if _, err := arr.Remove(name); err != nil {
		n, _ := types.Comparisons(err)
		fmt.Fprintf(m.out, "Item '%s' not found in the array. (comparisons=%d)\n", name, n)
		return nil
	}
	fmt.Fprintf(m.out, "Item '%s' removed from the array.\n", name)
	m.printArray(arr)
	return nil
}

// arraySearch runs a linear or, when binary is set, a binary search.
func (m *menu) arraySearch(arr *session.ArrayView, binary bool) error {
	prompt, search := "Name for linear search (array): ", arr.Search
	if binary {
		prompt, search = "Name for binary search (array): ", arr.BinarySearch
	}
	name, ok, err := m.readName(prompt)
	if err != nil || !ok {
		return err
	}
	match, err := search(name)
	if err != nil {
		m.reportNotFound(err)
		return nil
	}
	kind := "linear"
	if binary {
		kind = "binary"
	}
	fmt.Fprintf(m.out, "Found at position %d (%s, comparisons=%d)\n", match.Position, kind, match.Comparisons)
	printMatch(m.out, match)
	return nil
}

func (m *menu) arraySort(arr *session.ArrayView) {
	if !arr.Sort() {
		fmt.Fprintln(m.out, "Nothing to sort.")
		return
	}
	fmt.Fprintln(m.out, "Array sorted by name.")
	m.printArray(arr)
}
