package session

import (
	"iter"
	"log/slog"

	"github.com/mesh-intelligence/backpack/internal/array"
	"github.com/mesh-intelligence/backpack/internal/linked"
	"github.com/mesh-intelligence/backpack/pkg/types"
)

// ArrayView exposes the array inventory operations and logs each one.
type ArrayView struct {
	inv *array.Inventory
	log *slog.Logger
}

func (v *ArrayView) Insert(item types.Item) error {
	if err := v.inv.Insert(item); err != nil {
		v.log.Debug("insert rejected", "name", item.Name, "err", err)
		return err
	}
	v.log.Debug("inserted", "name", item.Name, "id", item.ItemID, "count", v.inv.Len())
	return nil
}

func (v *ArrayView) Remove(name string) (types.Item, error) {
	item, err := v.inv.Remove(name)
	v.log.Debug("remove", "name", name, "comparisons", v.inv.LinearComparisons(), "err", err)
	return item, err
}

func (v *ArrayView) Search(name string) (types.Match, error) {
	m, err := v.inv.Search(name)
	v.log.Debug("linear search", "name", name, "comparisons", v.inv.LinearComparisons(), "err", err)
	return m, err
}

// Sort reports false when there was nothing to sort.
func (v *ArrayView) Sort() bool {
	sorted := v.inv.Sort()
	v.log.Debug("sort", "count", v.inv.Len(), "sorted", sorted)
	return sorted
}

// BinarySearch requires the inventory to be sorted first; see array.Inventory.BinarySearch.
func (v *ArrayView) BinarySearch(name string) (types.Match, error) {
	m, err := v.inv.BinarySearch(name)
	v.log.Debug("binary search", "name", name, "comparisons", v.inv.BinaryComparisons(), "err", err)
	return m, err
}

func (v *ArrayView) All() iter.Seq2[int, types.Item] { return v.inv.All() }
func (v *ArrayView) Len() int { return v.inv.Len() }
func (v *ArrayView) Cap() int { return v.inv.Cap() }
func (v *ArrayView) Full() bool { return v.inv.Full() }

// ListView exposes the linked inventory operations and logs each one.
type ListView struct {
	inv *linked.Inventory
	log *slog.Logger
}

func (v *ListView) Insert(item types.Item) error {
	if err := v.inv.Insert(item); err != nil {
		v.log.Warn("insert failed", "name", item.Name, "err", err)
		return err
	}
	v.log.Debug("inserted", "name", item.Name, "id", item.ItemID)
	return nil
}

func (v *ListView) Remove(name string) (types.Item, error) {
	item, err := v.inv.Remove(name)
	v.log.Debug("remove", "name", name, "comparisons", v.inv.Comparisons(), "err", err)
	return item, err
}

func (v *ListView) Search(name string) (types.Match, error) {
	m, err := v.inv.Search(name)
	v.log.Debug("linear search", "name", name, "comparisons", v.inv.Comparisons(), "err", err)
	return m, err
}

func (v *ListView) All() iter.Seq2[int, types.Item] { return v.inv.All() }
func (v *ListView) Len() int { return v.inv.Len() }
func (v *ListView) Empty() bool { return v.inv.Empty() }

var (
	_ types.Collection = (*ArrayView)(nil)
	_ types.Collection = (*ListView)(nil)
)
