package apriori

import "sort"

// ItemSetMap is the frequent-set map: a mapping from fingerprint to
// ItemSet. Lookups bucket by fingerprint and then confirm with value
// equality, since the fingerprint is advisory only (spec data model note).
type ItemSetMap struct {
	buckets map[uint64][]ItemSet
	count   int
}

// NewItemSetMap returns an empty frequent-set map.
func NewItemSetMap() *ItemSetMap {
	return &ItemSetMap{buckets: make(map[uint64][]ItemSet)}
}

// Put inserts or replaces the item set keyed by its own contents.
func (m *ItemSetMap) Put(set ItemSet) {
	key := set.Fingerprint()
	bucket := m.buckets[key]
	for i, existing := range bucket {
		if existing.Equal(set) {
			bucket[i] = set
			return
		}
	}
	m.buckets[key] = append(bucket, set)
	m.count++
}

// Get looks up the item set with exactly these items, returning ok=false if
// absent.
func (m *ItemSetMap) Get(set ItemSet) (ItemSet, bool) {
	for _, existing := range m.buckets[set.Fingerprint()] {
		if existing.Equal(set) {
			return existing, true
		}
	}
	return ItemSet{}, false
}

// SupportOf is a convenience for Get followed by reading Support; it
// returns ok=false if the set is not present.
func (m *ItemSetMap) SupportOf(set ItemSet) (float64, bool) {
	found, ok := m.Get(set)
	if !ok {
		return 0, false
	}
	return found.Support(), true
}

// Len is the number of distinct item sets stored.
func (m *ItemSetMap) Len() int { return m.count }

// All returns every item set in the map, ordered by Fingerprint (ties
// broken by the canonical item string) rather than by map iteration, which
// Go randomizes per run. Callers that derive order-sensitive output from
// this slice — rule generation, CSV export — need that order to be a
// function of the item sets themselves, not of map bucket layout, so that
// two Mine calls on the same input produce identical output (spec.md §8
// Property 7).
func (m *ItemSetMap) All() []ItemSet {
	result := make([]ItemSet, 0, m.count)
	for _, bucket := range m.buckets {
		result = append(result, bucket...)
	}
	sortItemSets(result)
	return result
}

// ByLength returns every item set of exactly the given length, in the same
// deterministic order as All.
func (m *ItemSetMap) ByLength(length int) []ItemSet {
	result := make([]ItemSet, 0)
	for _, bucket := range m.buckets {
		for _, set := range bucket {
			if set.Len() == length {
				result = append(result, set)
			}
		}
	}
	sortItemSets(result)
	return result
}

// sortItemSets orders sets by Fingerprint, breaking the (astronomically
// unlikely) collision with a comparison of their canonical item strings, so
// the result is a total order independent of map iteration.
func sortItemSets(sets []ItemSet) {
	sort.Slice(sets, func(i, j int) bool {
		fi, fj := sets[i].Fingerprint(), sets[j].Fingerprint()
		if fi != fj {
			return fi < fj
		}
		return sets[i].String() < sets[j].String()
	})
}

// MaxLength returns the length of the longest item set stored, or 0 if the
// map is empty.
func (m *ItemSetMap) MaxLength() int {
	max := 0
	for _, bucket := range m.buckets {
		for _, set := range bucket {
			if set.Len() > max {
				max = set.Len()
			}
		}
	}
	return max
}
