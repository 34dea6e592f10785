package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/mesh-intelligence/backpack/internal/session"
	"github.com/mesh-intelligence/backpack/pkg/types"
)

// listMode runs the linked list submenu until the operator goes back.
func (m *menu) listMode(ctx context.Context) error {
	lst, err := m.sess.List()
	if err != nil {
		return err
	}
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		fmt.Fprintln(m.out, "\n-- LIST mode --")
		fmt.Fprintln(m.out, "1 Insert | 2 Remove | 3 List | 4 Linear search | 0 Back")
		choice, err := m.readChoice()
		if err != nil {
			return err
		}

		switch choice {
		case 0:
			return nil
		case 1:
			err = m.listInsert(lst)
		case 2:
			err = m.listRemove(lst)
		case 3:
			m.printList(lst)
		case 4:
			err = m.listSearch(lst)
		default:
			fmt.Fprintln(m.out, "Invalid option.")
		}
		if err != nil {
			return err
		}
	}
}

func (m *menu) printList(lst *session.ListView) {
	fmt.Fprintln(m.out, "\n--- Backpack (LIST) ---")
	if lst.Empty() {
		fmt.Fprintln(m.out, "Backpack is empty.")
		return
	}
	printItems(m.out, lst.All())
}

func (m *menu) listInsert(lst *session.ListView) error {
	item, ok, err := m.readItem()
	if err != nil || !ok {
		return err
	}
	if err := lst.Insert(item); err != nil {
		if errors.Is(err, types.ErrAllocationFailure) {
			fmt.Fprintln(m.out, "Allocation error.")
			return nil
		}
		return err
	}
	fmt.Fprintf(m.out, "Item '%s' inserted into the linked list.\n", item.Name)
	return nil
}

func (m *menu) listRemove(lst *session.ListView) error {
	if lst.Empty() {
		fmt.Fprintln(m.out, "Backpack (list) is empty.")
		return nil
	}
	name, ok, err := m.readName("Name of the item to remove (list): ")
	if err != nil || !ok {
		return err
	}
	if _, err := lst.Remove(name); err != nil {
		n, _ := types.Comparisons(err)
		fmt.Fprintf(m.out, "Item '%s' not found in the list. (comparisons=%d)\n", name, n)
		return nil
	}
	fmt.Fprintf(m.out, "Item '%s' removed from the list.\n", name)
	return nil
}

func (m *menu) listSearch(lst *session.ListView) error {
	name, ok, err := m.readName("Name for linear search (list): ")
	if err != nil || !ok {
		return err
	}
	match, err := lst.Search(name)
	if err != nil {
		m.reportNotFound(err)
		return nil
	}
	fmt.Fprintf(m.out, "Found (list, comparisons=%d):\n", match.Comparisons)
	printMatch(m.out, match)
	return nil
}
