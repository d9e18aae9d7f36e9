package apriori

import (
	"sort"
	"strings"

	"github.com/RiceaRaul/apriori/internal/fingerprint"
)

// ItemSet is a totally ordered, duplicate-free set of Items carrying a
// support value. Its iteration order is always the fixed total order of its
// Items (Item.Less); this is what makes Fingerprint order-independent of how
// the set was built.
type ItemSet struct {
	items   []Item
	support float64
}

// NewItemSet builds an ItemSet from a slice of items, sorting by the items'
// total order and discarding duplicates (by Equal). The support of the
// returned set is zero; call WithSupport to attach one.
func NewItemSet(items []Item) ItemSet {
	cp := make([]Item, len(items))
	copy(cp, items)
	sort.Slice(cp, func(i, j int) bool { return cp[i].Less(cp[j]) })

	deduped := cp[:0]
	for i, it := range cp {
		if i > 0 && deduped[len(deduped)-1].Equal(it) {
			continue
		}
		deduped = append(deduped, it)
	}
	return ItemSet{items: deduped}
}

// WithSupport returns a copy of the ItemSet with the given support value.
// ItemSets are otherwise immutable once a level completes, per the data
// model's lifecycle note.
func (s ItemSet) WithSupport(support float64) ItemSet {
	s.support = support
	return s
}

// Items returns the set's elements in their fixed total order. The caller
// must not mutate the returned slice.
func (s ItemSet) Items() []Item { return s.items }

// Len is the number of items in the set.
func (s ItemSet) Len() int { return len(s.items) }

// Support is the fraction of transactions containing this item set.
func (s ItemSet) Support() float64 { return s.support }

// Contains reports whether item is a member of the set (by Equal).
func (s ItemSet) Contains(item Item) bool {
	for _, it := range s.items {
		if it.Equal(item) {
			return true
		}
	}
	return false
}

// ContainsAll reports whether every item of other is a member of s.
func (s ItemSet) ContainsAll(other ItemSet) bool {
	for _, it := range other.items {
		if !s.Contains(it) {
			return false
		}
	}
	return true
}

// Equal reports whether two item sets contain exactly the same items,
// ignoring support.
func (s ItemSet) Equal(other ItemSet) bool {
	if len(s.items) != len(other.items) {
		return false
	}
	for i := range s.items {
		if !s.items[i].Equal(other.items[i]) {
			return false
		}
	}
	return true
}

// Union returns a new ItemSet containing the elements of both sets.
func (s ItemSet) Union(other ItemSet) ItemSet {
	merged := make([]Item, 0, len(s.items)+len(other.items))
	merged = append(merged, s.items...)
	merged = append(merged, other.items...)
	return NewItemSet(merged)
}

// Without returns a new ItemSet with the elements of other removed.
func (s ItemSet) Without(other ItemSet) ItemSet {
	result := make([]Item, 0, len(s.items))
	for _, it := range s.items {
		if !other.Contains(it) {
			result = append(result, it)
		}
	}
	return NewItemSet(result)
}

// Fingerprint is a stable, order-independent hash of the set's members. It
// is a lookup key only: ItemSetMap always confirms with Equal on a bucket
// hit.
func (s ItemSet) Fingerprint() uint64 {
	hashes := make([]uint64, len(s.items))
	for i, it := range s.items {
		hashes[i] = it.Hash()
	}
	return fingerprint.Of(hashes)
}

// Subsets enumerates every non-empty proper subset of the set, each
// returned as an ItemSet with no support set. For an n-item set this yields
// 2^n - 2 subsets; callers mining rules from very large item sets should be
// mindful of this.
func (s ItemSet) Subsets() []ItemSet {
	n := len(s.items)
	if n == 0 {
		return nil
	}
	total := 1 << uint(n)
	result := make([]ItemSet, 0, total-2)
	for mask := 1; mask < total-1; mask++ {
		subset := make([]Item, 0, n)
		for bit := 0; bit < n; bit++ {
			if mask&(1<<uint(bit)) != 0 {
				subset = append(subset, s.items[bit])
			}
		}
		result = append(result, NewItemSet(subset))
	}
	return result
}

// String renders the set as "{a,b,c}" using each item's String method.
func (s ItemSet) String() string {
	parts := make([]string, len(s.items))
	for i, it := range s.items {
		parts[i] = it.String()
	}
	return "{" + strings.Join(parts, ",") + "}"
}
