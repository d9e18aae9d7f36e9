package apriori

import (
	"context"
	"fmt"
	"time"

	"github.com/RiceaRaul/apriori/internal/parallel"
	"github.com/RiceaRaul/apriori/internal/telemetry"
)

// FindFrequentItemSets runs the level-wise Apriori search (spec §4.1):
// scan, join, downward-closure prune, count, filter, repeated per level
// until no candidate survives, followed by a single max-support filter over
// the accumulated result. It returns the frequent-set map and, when
// cfg.TrackWitnesses is set, the per-item-set witness intervals used for
// temporal rule propagation.
func FindFrequentItemSets(ctx context.Context, source TransactionSource, minSupport, maxSupport float64, cfg Config, tel *telemetry.Telemetry) (*ItemSetMap, *witnessMap, error) {
	if minSupport < 0 || minSupport > 1 {
		return nil, nil, invalidArgument("minSupport", "must be within [0,1]")
	}
	if maxSupport < minSupport || maxSupport > 1 {
		return nil, nil, invalidArgument("maxSupport", "must be within [minSupport,1]")
	}

	n := source.Len()
	result := NewItemSetMap()
	var witnesses *witnessMap
	if cfg.TrackWitnesses {
		witnesses = newWitnessMap()
	}
	if n == 0 {
		return result, witnesses, nil
	}

	transactions := make([]Transaction, 0, n)
	for t := range source.Transactions() {
		transactions = append(transactions, t)
	}

	start := time.Now()
	itemCounts := make(map[uint64]int)
	itemByHash := make(map[uint64]Item)
	for _, t := range transactions {
		seenHashes := make(map[uint64]bool)
		for _, it := range t.Items() {
			h := it.Hash()
			if seenHashes[h] {
				continue
			}
			seenHashes[h] = true
			itemCounts[h]++
			itemByHash[h] = it
		}
	}

	level := make([]ItemSet, 0, len(itemCounts))
	for h, c := range itemCounts {
		support := float64(c) / float64(n)
		if support >= minSupport {
			set := NewItemSet([]Item{itemByHash[h]}).WithSupport(support)
			level = append(level, set)
		}
	}
	tel.LevelComplete("itemset", 1, len(itemCounts), len(level), time.Since(start))
	for _, s := range level {
		result.Put(s)
	}

	for levelNum := 2; len(level) > 0; levelNum++ {
		if err := ctx.Err(); err != nil {
			return nil, nil, err
		}

		levelStart := time.Now()
		candidates := generateCandidates(level, levelNum)
		if len(candidates) == 0 {
			break
		}
		if cfg.MaxCandidates > 0 && len(candidates) > cfg.MaxCandidates {
			return nil, nil, fmt.Errorf("%w: level %d produced %d candidates, exceeding the configured ceiling of %d",
				ErrUnsupported, levelNum, len(candidates), cfg.MaxCandidates)
		}

		prevMap := NewItemSetMap()
		for _, s := range level {
			prevMap.Put(s)
		}
		candidates = pruneCandidates(candidates, prevMap, levelNum)
		if len(candidates) == 0 {
			break
		}

		counts, err := countSupport(ctx, transactions, candidates, cfg.Workers, witnesses)
		if err != nil {
			return nil, nil, err
		}

		next := make([]ItemSet, 0, len(candidates))
		for i, c := range candidates {
			support := float64(counts[i]) / float64(n)
			if support >= minSupport {
				next = append(next, c.WithSupport(support))
			}
		}
		tel.LevelComplete("itemset", levelNum, len(candidates), len(next), time.Since(levelStart))
		if len(next) == 0 {
			break
		}
		for _, s := range next {
			result.Put(s)
		}
		level = next
	}

	if maxSupport < 1.0 {
		filtered := NewItemSetMap()
		for _, s := range result.All() {
			if s.Support() <= maxSupport {
				filtered.Put(s)
			}
		}
		result = filtered
	}

	return result, witnesses, nil
}

// generateCandidates joins pairs of (newLen-1)-item frequent sets that
// share their first newLen-2 elements, producing newLen-item candidates,
// deduplicated by fingerprint.
func generateCandidates(prevLevel []ItemSet, newLen int) []ItemSet {
	seen := NewItemSetMap()
	candidates := make([]ItemSet, 0)

	for i := 0; i < len(prevLevel); i++ {
		a := prevLevel[i].Items()
		for j := i + 1; j < len(prevLevel); j++ {
			b := prevLevel[j].Items()

			if newLen > 2 {
				prefixMatches := true
				for l := 0; l < newLen-2; l++ {
					if !a[l].Equal(b[l]) {
						prefixMatches = false
						break
					}
				}
				if !prefixMatches || a[newLen-2].Equal(b[newLen-2]) {
					continue
				}
			}

			merged := make([]Item, 0, newLen)
			merged = append(merged, a...)
			merged = append(merged, b[len(b)-1])
			candidate := NewItemSet(merged)
			if candidate.Len() != newLen {
				continue // collapsed via dedup: not a genuine new candidate
			}
			if _, exists := seen.Get(candidate); exists {
				continue
			}
			seen.Put(candidate)
			candidates = append(candidates, candidate)
		}
	}
	return candidates
}

// pruneCandidates discards any candidate with a (newLen-1)-sized subset
// absent from prevMap (downward closure, spec §4.1 step 3). Candidates of
// length 2 need no pruning: their singleton subsets were exactly the
// frequent sets they were joined from.
func pruneCandidates(candidates []ItemSet, prevMap *ItemSetMap, newLen int) []ItemSet {
	if newLen <= 2 {
		return candidates
	}
	survivors := make([]ItemSet, 0, len(candidates))
	for _, c := range candidates {
		items := c.Items()
		allSubsetsFrequent := true
		for skip := 0; skip < len(items); skip++ {
			subset := make([]Item, 0, len(items)-1)
			subset = append(subset, items[:skip]...)
			subset = append(subset, items[skip+1:]...)
			if _, exists := prevMap.Get(NewItemSet(subset)); !exists {
				allSubsetsFrequent = false
				break
			}
		}
		if allSubsetsFrequent {
			survivors = append(survivors, c)
		}
	}
	return survivors
}

// countSupport scans transactions once, counting occurrences of every
// candidate. When workers > 1 the scan is sharded across goroutines (spec
// §5); witness tracking forces a single shard since witnessMap is not
// safe for concurrent writes.
func countSupport(ctx context.Context, transactions []Transaction, candidates []ItemSet, workers int, witnesses *witnessMap) ([]int, error) {
	effectiveWorkers := workers
	if witnesses != nil {
		effectiveWorkers = 1
	}

	raw, err := parallel.CountShards(ctx, len(transactions), effectiveWorkers, func(ctx context.Context, lo, hi int) (map[uint64]int, error) {
		local := make(map[uint64]int, len(candidates))
		for ti := lo; ti < hi; ti++ {
			if ti%4096 == 0 {
				if err := ctx.Err(); err != nil {
					return nil, err
				}
			}
			t := transactions[ti]
			for ci, cand := range candidates {
				if !transactionContains(t, cand) {
					continue
				}
				local[uint64(ci)]++
				if witnesses != nil {
					if iv, ok := t.TimeInterval(); ok {
						witnesses.observe(cand, iv)
					}
				}
			}
		}
		return local, nil
	})
	if err != nil {
		return nil, err
	}

	counts := make([]int, len(candidates))
	for idx, c := range raw {
		counts[idx] = c
	}
	return counts, nil
}

// transactionContains reports whether every item of set appears in t.
func transactionContains(t Transaction, set ItemSet) bool {
	items := t.Items()
	for _, want := range set.Items() {
		found := false
		for _, have := range items {
			if have.Equal(want) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}
