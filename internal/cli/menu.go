package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/mesh-intelligence/backpack/internal/session"
	"github.com/mesh-intelligence/backpack/pkg/types"
)

// menu is the line-oriented console. It parses operator input, calls the
// session and prints the results. End of input ends the session.
type menu struct {
	in   *bufio.Scanner
	out  io.Writer
	sess *session.Session
}

func newMenu(in io.Reader, out io.Writer, sess *session.Session) *menu {
	return &menu{in: bufio.NewScanner(in), out: out, sess: sess}
}

// run shows the top-level menu until the operator exits or input ends.
func (m *menu) run(ctx context.Context) error {
	err := m.loop(ctx)
	if errors.Is(err, io.EOF) {
		err = nil
	}
	fmt.Fprintln(m.out, "Exiting...")
	return err
}

func (m *menu) loop(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		fmt.Fprintln(m.out, "\n=== Backpack: Array vs Linked List ===")
		fmt.Fprintln(m.out, "1 - Work with the ARRAY")
		fmt.Fprintln(m.out, "2 - Work with the LINKED LIST")
		fmt.Fprintln(m.out, "3 - Show comparisons")
		fmt.Fprintln(m.out, "0 - Exit")
		choice, err := m.readChoice()
		if err != nil {
			return err
		}

		switch choice {
		case 0:
			return nil
		case 1:
			err = m.arrayMode(ctx)
		case 2:
			err = m.listMode(ctx)
		case 3:
			printCounters(m.out, m.sess.Counters())
		default:
			fmt.Fprintln(m.out, "Invalid option.")
		}
		if err != nil {
			return err
		}
	}
}

// readLine prints prompt and returns the next input line.
// Returns io.EOF when input is exhausted.
func (m *menu) readLine(prompt string) (string, error) {
	fmt.Fprint(m.out, prompt)
	if !m.in.Scan() {
		if err := m.in.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return strings.TrimRight(m.in.Text(), "\r"), nil
}

// readChoice reads a menu choice. Anything that is not a number is -1.
func (m *menu) readChoice() (int, error) {
	line, err := m.readLine("Choice: ")
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil {
		return -1, nil
	}
	return n, nil
}

// readName reads an item name. The second result is false (after telling
// the operator) when the name is empty.
func (m *menu) readName(prompt string) (string, bool, error) {
	name, err := m.readLine(prompt)
	if err != nil {
		return "", false, err
	}
	name = types.NormalizeName(name)
	if name == "" {
		fmt.Fprintln(m.out, "Invalid name.")
		return "", false, nil
	}
	return name, true, nil
}

// readItem prompts for the three item fields. The second result is false
// when the item was rejected.
func (m *menu) readItem() (types.Item, bool, error) {
	name, ok, err := m.readName("Name: ")
	if err != nil || !ok {
		return types.Item{}, false, err
	}
	category, err := m.readLine(fmt.Sprintf("Category (%s/%s/%s): ", types.CategoryWeapon, types.CategoryAmmo, types.CategoryHeal))
	if err != nil {
		return types.Item{}, false, err
	}
	qty, err := m.readLine("Quantity: ")
	if err != nil {
		return types.Item{}, false, err
	}

	item, err := types.NewItem(name, category, parseQuantity(qty))
	if err != nil {
		fmt.Fprintln(m.out, "Invalid name.")
		return types.Item{}, false, nil
	}
	return item, true, nil
}

// parseQuantity converts operator input to a quantity. Anything that is
// not a positive integer becomes 1.
func parseQuantity(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n <= 0 {
		return 1
	}
	return n
}

// reportNotFound prints a lookup failure with its comparison count.
func (m *menu) reportNotFound(err error) {
	n, _ := types.Comparisons(err)
	fmt.Fprintf(m.out, "Not found. Comparisons=%d\n", n)
}
