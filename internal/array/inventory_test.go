package array

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/backpack/pkg/types"
)

// mustItem builds an item or fails the test.
func mustItem(t *testing.T, name, category string, qty int) types.Item {
	t.Helper()
	item, err := types.NewItem(name, category, qty)
	require.NoError(t, err)
	return item
}

// fill inserts one item per name.
func fill(t *testing.T, inv *Inventory, names ...string) {
	t.Helper()
	for _, n := range names {
		require.NoError(t, inv.Insert(mustItem(t, n, types.CategoryWeapon, 1)))
	}
}

// names collects item names in storage order.
func names(inv *Inventory) []string {
	var out []string
	for _, item := range inv.All() {
		out = append(out, item.Name)
	}
	return out
}

func TestNewDefaultsCapacity(t *testing.T) {
	assert.Equal(t, types.DefaultCapacity, New(0).Cap())
	assert.Equal(t, types.DefaultCapacity, New(-1).Cap())
	assert.Equal(t, 3, New(3).Cap())
	assert.Equal(t, types.MaxCapacity, New(types.MaxCapacity+1).Cap())
}

func TestInsertAndList(t *testing.T) {
	inv := New(types.DefaultCapacity)
	require.NoError(t, inv.Insert(mustItem(t, "Rifle", "arma", 2)))
	require.NoError(t, inv.Insert(mustItem(t, "Bandagem", "cura", 5)))

	type row struct {
		pos      int
		name     string
		category string
		qty      int
	}
	var got []row
	for pos, item := range inv.All() {
		got = append(got, row{pos, item.Name, item.Category, item.Quantity})
	}
	assert.Equal(t, []row{
		{1, "Rifle", "arma", 2},
		{2, "Bandagem", "cura", 5},
	}, got)
	assert.Equal(t, 2, inv.Len())
}

func TestAllIsRestartableAndStoppable(t *testing.T) {
	inv := New(5)
	fill(t, inv, "a", "b", "c")

	assert.Equal(t, names(inv), names(inv), "iterating twice yields the same sequence")

	seen := 0
	for range inv.All() {
		seen++
		if seen == 2 {
			break
		}
	}
	assert.Equal(t, 2, seen)
}

func TestInsertRejectsWhenFull(t *testing.T) {
	inv := New(types.DefaultCapacity)
	for i := range types.DefaultCapacity {
		require.NoError(t, inv.Insert(mustItem(t, fmt.Sprintf("item-%02d", i), "", 1)))
	}
	before := names(inv)

	err := inv.Insert(mustItem(t, "overflow", "", 1))

	assert.ErrorIs(t, err, types.ErrCapacityExceeded)
	assert.Equal(t, types.DefaultCapacity, inv.Len())
	assert.True(t, inv.Full())
	assert.Equal(t, before, names(inv), "collection unchanged on rejection")
}

func TestCountTracksInsertsAndRemovals(t *testing.T) {
	inv := New(4)
	ops := []struct {
		insert string
		remove string
	}{
		{insert: "a"}, {insert: "b"}, {remove: "a"}, {insert: "c"},
		{remove: "missing"}, {insert: "d"}, {insert: "e"}, {insert: "f"},
		{remove: "c"}, {insert: "g"},
	}

	want := 0
	for _, op := range ops {
		if op.insert != "" {
			if inv.Insert(mustItem(t, op.insert, "", 1)) == nil {
				want++
			}
		} else if _, err := inv.Remove(op.remove); err == nil {
			want--
		}
		assert.Equal(t, want, inv.Len())
		assert.LessOrEqual(t, inv.Len(), inv.Cap())
	}
}

func TestRemove(t *testing.T) {
	tests := []struct {
		name      string
		initial   []string
		target    string
		wantNames []string
		wantErr   error
		wantComps int
	}{
		{
			name:      "remove head preserves order",
			initial:   []string{"a", "b", "c", "d"},
			target:    "a",
			wantNames: []string{"b", "c", "d"},
			wantComps: 1,
		},
		{
			name:      "remove middle preserves order",
			initial:   []string{"a", "b", "c", "d"},
			target:    "c",
			wantNames: []string{"a", "b", "d"},
			wantComps: 3,
		},
		{
			name:      "remove last",
			initial:   []string{"a", "b", "c"},
			target:    "c",
			wantNames: []string{"a", "b"},
			wantComps: 3,
		},
		{
			name:      "first duplicate removed",
			initial:   []string{"x", "dup", "y", "dup"},
			target:    "dup",
			wantNames: []string{"x", "y", "dup"},
			wantComps: 2,
		},
		{
			name:      "missing item leaves collection unchanged",
			initial:   []string{"a", "b", "c"},
			target:    "z",
			wantNames: []string{"a", "b", "c"},
			wantErr:   types.ErrNotFound,
			wantComps: 3,
		},
		{
			name:      "empty collection",
			target:    "a",
			wantErr:   types.ErrNotFound,
			wantComps: 0,
		},
		{
			name:      "match is case sensitive",
			initial:   []string{"Rifle"},
			target:    "rifle",
			wantNames: []string{"Rifle"},
			wantErr:   types.ErrNotFound,
			wantComps: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inv := New(types.DefaultCapacity)
			fill(t, inv, tt.initial...)

			removed, err := inv.Remove(tt.target)

			assert.Equal(t, tt.wantComps, inv.LinearComparisons())
			assert.Equal(t, tt.wantNames, names(inv))
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				n, ok := types.Comparisons(err)
				assert.True(t, ok)
				assert.Equal(t, tt.wantComps, n)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.target, removed.Name)
		})
	}
}

func TestSearchComparisonsEqualPosition(t *testing.T) {
	inv := New(types.DefaultCapacity)
	all := []string{"e", "d", "c", "b", "a"}
	fill(t, inv, all...)

	for i, n := range all {
		m, err := inv.Search(n)
		require.NoError(t, err)
		assert.Equal(t, i+1, m.Position)
		assert.Equal(t, i+1, m.Comparisons)
		assert.Equal(t, i+1, inv.LinearComparisons())
		assert.Equal(t, n, m.Item.Name)
	}

	_, err := inv.Search("zz")
	assert.ErrorIs(t, err, types.ErrNotFound)
	assert.Equal(t, len(all), inv.LinearComparisons(), "absent name scans everything")
}

func TestSearchResetsCounter(t *testing.T) {
	inv := New(types.DefaultCapacity)
	fill(t, inv, "a", "b", "c")

	_, _ = inv.Search("c")
	require.Equal(t, 3, inv.LinearComparisons())
	_, _ = inv.Search("a")
	assert.Equal(t, 1, inv.LinearComparisons())
}

func TestSort(t *testing.T) {
	tests := []struct {
		name     string
		initial  []string
		want     []string
		wantDone bool
	}{
		{
			name:    "empty is nothing to sort",
			initial: nil,
		},
		{
			name:    "single is nothing to sort",
			initial: []string{"a"},
			want:    []string{"a"},
		},
		{
			name:     "reverse order",
			initial:  []string{"e", "d", "c", "b", "a"},
			want:     []string{"a", "b", "c", "d", "e"},
			wantDone: true,
		},
		{
			name:     "byte order puts upper case first",
			initial:  []string{"banana", "Banana", "apple", "Zeta"},
			want:     []string{"Banana", "Zeta", "apple", "banana"},
			wantDone: true,
		},
		{
			name:     "duplicates kept",
			initial:  []string{"m", "a", "m", "a"},
			want:     []string{"a", "a", "m", "m"},
			wantDone: true,
		},
		{
			name:     "already sorted",
			initial:  []string{"a", "b"},
			want:     []string{"a", "b"},
			wantDone: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inv := New(types.DefaultCapacity)
			fill(t, inv, tt.initial...)

			assert.Equal(t, tt.wantDone, inv.Sort())
			got := names(inv)
			assert.Equal(t, tt.want, got)
			for i := 0; i+1 < len(got); i++ {
				assert.LessOrEqual(t, got[i], got[i+1])
			}
		})
	}
}

func TestBinarySearchAgreesWithLinearSearch(t *testing.T) {
	inv := New(types.DefaultCapacity)
	fill(t, inv, "Rifle", "Bandagem", "Municao", "Kit", "Granada", "Colete", "Capacete")
	require.True(t, inv.Sort())

	queries := []string{"Rifle", "Bandagem", "Municao", "Kit", "Granada", "Colete", "Capacete",
		"Absent", "Zzz", "Kiu", "", "rifle"}
	for _, q := range queries {
		t.Run(q, func(t *testing.T) {
			_, linErr := inv.Search(q)
			m, binErr := inv.BinarySearch(q)

			assert.GreaterOrEqual(t, inv.BinaryComparisons(), 0)
			if linErr != nil {
				assert.ErrorIs(t, binErr, types.ErrNotFound)
				return
			}
			require.NoError(t, binErr)
			assert.Equal(t, q, m.Item.Name)
			assert.GreaterOrEqual(t, m.Comparisons, 1)
			assert.LessOrEqual(t, m.Comparisons, 3, "seven items need at most three halvings")
		})
	}
}

func TestBinarySearchExample(t *testing.T) {
	inv := New(types.DefaultCapacity)
	require.NoError(t, inv.Insert(mustItem(t, "Rifle", "arma", 2)))
	require.NoError(t, inv.Insert(mustItem(t, "Bandagem", "cura", 5)))
	require.True(t, inv.Sort())

	assert.Equal(t, []string{"Bandagem", "Rifle"}, names(inv))

	m, err := inv.BinarySearch("Rifle")
	require.NoError(t, err)
	assert.Equal(t, 2, m.Position)
	assert.GreaterOrEqual(t, m.Comparisons, 1)
	assert.Equal(t, m.Comparisons, inv.BinaryComparisons())
}

func TestBinarySearchEmpty(t *testing.T) {
	inv := New(types.DefaultCapacity)
	_, err := inv.BinarySearch("a")
	assert.ErrorIs(t, err, types.ErrNotFound)
	assert.Zero(t, inv.BinaryComparisons())
}

func TestBinarySearchDuplicateReturnsConvergedMatch(t *testing.T) {
	inv := New(types.DefaultCapacity)
	fill(t, inv, "a", "b", "b", "b", "c")

	m, err := inv.BinarySearch("b")
	require.NoError(t, err)
	// mid of [0,4] is 2, the middle duplicate, not the first one.
	assert.Equal(t, 3, m.Position)
	assert.Equal(t, 1, m.Comparisons)
}

func TestCountersAreIndependent(t *testing.T) {
	inv := New(types.DefaultCapacity)
	fill(t, inv, "a", "b", "c", "d")

	_, _ = inv.Search("d")
	_, _ = inv.BinarySearch("a")

	assert.Equal(t, 4, inv.LinearComparisons(), "binary search must not touch the linear counter")
	assert.Equal(t, 2, inv.BinaryComparisons())
}
