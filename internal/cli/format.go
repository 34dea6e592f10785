package cli

import (
	"fmt"
	"io"
	"iter"
	"strings"
	"text/tabwriter"

	"github.com/mesh-intelligence/backpack/pkg/types"
)

// printItems prints (position, item) pairs as a table.
func printItems(out io.Writer, items iter.Seq2[int, types.Item]) {
	var sb strings.Builder
	w := tabwriter.NewWriter(&sb, 0, 0, 2, ' ', 0)

	fmt.Fprintln(w, "ID\tNAME\tCATEGORY\tQTY")
	fmt.Fprintln(w, "--\t----\t--------\t---")
	for pos, item := range items {
		fmt.Fprintf(w, "%d\t%s\t%s\t%d\n", pos, item.Name, item.Category, item.Quantity)
	}
	w.Flush()

	// Print output, trimming trailing whitespace from each line
	for _, line := range strings.Split(strings.TrimRight(sb.String(), "\n"), "\n") {
		fmt.Fprintln(out, strings.TrimRight(line, " "))
	}
}

// printMatch prints a single search hit.
func printMatch(out io.Writer, m types.Match) {
	printItems(out, func(yield func(int, types.Item) bool) {
		yield(m.Position, m.Item)
	})
}

// printCounters prints the three comparison counters.
func printCounters(out io.Writer, c types.Counters) {
	fmt.Fprintln(out, "\nComparisons made:")
	fmt.Fprintf(out, "Linear search (array): %d\n", c.ArrayLinear)
	fmt.Fprintf(out, "Binary search (array): %d\n", c.ArrayBinary)
	fmt.Fprintf(out, "Linear search (list):  %d\n", c.ListLinear)
}
