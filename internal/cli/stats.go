package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/backpack/pkg/types"
)

// lootNames seeds the stats run, in pickup order.
var lootNames = []string{
	"Sniper", "Rifle", "Mira 4x", "Municao 5.56", "Kit Medico",
	"Granada", "Colete", "Capacete", "Bandagem", "AK47",
}

var statsJSON bool

func newStatsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats [name]",
		Short: "Fill both backpacks and compare search costs",
		Long: `Stats fills the array and the linked list with the same loot (as many
items as the array holds), then searches both for name: a linear search on
each, then a binary search on the sorted array. It prints the three
comparison counters.

Name defaults to the item picked up first: the array finds it on the first
comparison while the list has to walk the whole chain.

Example:
  backpack stats
  backpack stats Rifle
  backpack stats --json Ghost`,
		Args: cobra.MaximumNArgs(1),
		RunE: runStats,
	}
	cmd.Flags().BoolVar(&statsJSON, "json", false, "output as JSON")
	return cmd
}

// loot returns n item names, numbering repeats once lootNames runs out.
func loot(n int) []string {
	out := make([]string, n)
	for i := range out {
		name := lootNames[i%len(lootNames)]
		if round := i / len(lootNames); round > 0 {
			name = fmt.Sprintf("%s %d", name, round+1)
		}
		out[i] = name
	}
	return out
}

// statsResult is the JSON shape printed by stats --json.
type statsResult struct {
	Query       string         `json:"query"`
	Items       int            `json:"items"`
	ArrayFound  bool           `json:"array_found"`
	BinaryFound bool           `json:"binary_found"`
	ListFound   bool           `json:"list_found"`
	Counters    types.Counters `json:"counters"`
}

func runStats(cmd *cobra.Command, args []string) error {
	sess, err := openSession(cmd)
	if err != nil {
		return err
	}
	defer sess.Close()

	arr, err := sess.Array()
	if err != nil {
		return err
	}
	lst, err := sess.List()
	if err != nil {
		return err
	}

	names := loot(arr.Cap())
	for _, n := range names {
		item, err := types.NewItem(n, "", 1)
		if err != nil {
			return fmt.Errorf("build item %q: %w", n, err)
		}
		for _, c := range []types.Collection{arr, lst} {
			if err := c.Insert(item); err != nil {
				return fmt.Errorf("insert %q: %w", n, err)
			}
		}
	}

	query := names[0]
	if len(args) == 1 {
		query = args[0]
	}

	res := statsResult{Query: query, Items: len(names)}
	_, err = arr.Search(query)
	res.ArrayFound = err == nil
	_, err = lst.Search(query)
	res.ListFound = err == nil
	arr.Sort()
	_, err = arr.BinarySearch(query)
	res.BinaryFound = err == nil
	res.Counters = sess.Counters()

	out := cmd.OutOrStdout()
	if statsJSON {
		data, err := json.MarshalIndent(res, "", "  ")
		if err != nil {
			return fmt.Errorf("marshal stats: %w", err)
		}
		fmt.Fprintln(out, string(data))
		return nil
	}

	fmt.Fprintf(out, "Searched %d items for %q (array: %s, binary: %s, list: %s)\n",
		res.Items, query, found(res.ArrayFound), found(res.BinaryFound), found(res.ListFound))
	printCounters(out, res.Counters)
	return nil
}

func found(ok bool) string {
	if ok {
		return "found"
	}
	return "not found"
}
