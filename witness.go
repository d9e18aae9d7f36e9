package apriori

// witnessMap tracks, per item set, the intersection of the TimeIntervals of
// every transaction observed to contain it. It backs temporal rule
// propagation (spec §4.3): a rule's interval is the intersection of the
// intervals of the transactions that witnessed its underlying item set.
//
// Not safe for concurrent use; the Finder only builds one when counting is
// single-threaded (see countSupport).
type witnessMap struct {
	buckets map[uint64][]witnessEntry
}

type witnessEntry struct {
	set      ItemSet
	interval TimeInterval
	valid    bool
}

func newWitnessMap() *witnessMap {
	return &witnessMap{buckets: make(map[uint64][]witnessEntry)}
}

// observe records that a transaction with the given interval contained set.
func (w *witnessMap) observe(set ItemSet, interval TimeInterval) {
	key := set.Fingerprint()
	bucket := w.buckets[key]
	for i, e := range bucket {
		if !e.set.Equal(set) {
			continue
		}
		if !e.valid {
			return
		}
		merged, ok := Intersect(e.interval, interval)
		if !ok {
			bucket[i].valid = false
			return
		}
		bucket[i].interval = merged
		return
	}
	w.buckets[key] = append(bucket, witnessEntry{set: set, interval: interval, valid: true})
}

// IntervalOf returns the witnessed interval for set, if every witnessing
// transaction's interval intersects non-emptily.
func (w *witnessMap) IntervalOf(set ItemSet) (TimeInterval, bool) {
	if w == nil {
		return TimeInterval{}, false
	}
	for _, e := range w.buckets[set.Fingerprint()] {
		if e.set.Equal(set) {
			if !e.valid {
				return TimeInterval{}, false
			}
			return e.interval, true
		}
	}
	return TimeInterval{}, false
}
