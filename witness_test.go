package apriori

import "testing"

// TestWitnessMapIntersectsObservedIntervals is scenario D: transactions
// ({A,B}, [10,20]) and ({A,B}, [15,25]) should witness {A,B} with the
// intersection [15,20].
func TestWitnessMapIntersectsObservedIntervals(t *testing.T) {
	w := newWitnessMap()
	set := NewItemSet([]Item{testItem("A"), testItem("B")})

	w.observe(set, NewTimeInterval(10, 20))
	w.observe(set, NewTimeInterval(15, 25))

	iv, ok := w.IntervalOf(set)
	if !ok {
		t.Fatal("expected a witnessed interval")
	}
	if iv.Start != 15 || iv.End != 20 {
		t.Fatalf("expected [15,20], got [%d,%d]", iv.Start, iv.End)
	}
}

func TestWitnessMapInvalidatesOnDisjointObservations(t *testing.T) {
	w := newWitnessMap()
	set := NewItemSet([]Item{testItem("A")})

	w.observe(set, NewTimeInterval(0, 5))
	w.observe(set, NewTimeInterval(10, 15))

	_, ok := w.IntervalOf(set)
	if ok {
		t.Fatal("disjoint observations must invalidate the witnessed interval")
	}
}

func TestNilWitnessMapIntervalOfIsFalse(t *testing.T) {
	var w *witnessMap
	_, ok := w.IntervalOf(NewItemSet([]Item{testItem("A")}))
	if ok {
		t.Fatal("a nil witness map must report no witnessed interval")
	}
}

// testItem is a minimal Item for in-package tests that cannot import
// datasource (it would create an import cycle: datasource imports apriori).
type testItem string

func (i testItem) Equal(other Item) bool { return string(i) == other.String() }
func (i testItem) Less(other Item) bool  { return string(i) < other.String() }
func (i testItem) Hash() uint64 {
	var h uint64 = 14695981039346656037
	for _, b := range []byte(i) {
		h ^= uint64(b)
		h *= 1099511628211
	}
	return h
}
func (i testItem) String() string { return string(i) }
