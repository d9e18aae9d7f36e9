package apriori

import (
	"context"
	"math"

	"github.com/RiceaRaul/apriori/internal/telemetry"
)

// FindWithSupportLoop wraps FindFrequentItemSets with the Support Loop
// Controller (spec §4.2): starting at cfg.MaxSupport and decrementing by
// cfg.SupportDelta, it returns the first/best result whose cardinality
// meets cfg.FrequentItemSetCount, or the best one observed before the
// threshold drops below cfg.MinSupport.
//
// Support is monotone non-decreasing as the threshold falls, so the first
// result meeting the target is provably optimal; this implementation still
// tracks the best-so-far (greatest cardinality, ties broken by larger
// threshold) so that a target that is never met returns a well-defined
// answer, per spec.md §9's tightened "maximum-cardinality" rule.
func FindWithSupportLoop(ctx context.Context, source TransactionSource, cfg Config, tel *telemetry.Telemetry) (*ItemSetMap, *witnessMap, float64, error) {
	if cfg.FrequentItemSetCount <= 0 {
		result, witnesses, err := FindFrequentItemSets(ctx, source, cfg.MinSupport, cfg.MaxSupport, cfg, tel)
		return result, witnesses, cfg.MinSupport, err
	}

	var bestResult *ItemSetMap
	var bestWitnesses *witnessMap
	bestThreshold := cfg.MinSupport
	bestSize := -1

	// Each step is rounded so that repeated subtraction of a decimal delta
	// lands on the decimal threshold: 1.0 minus 0.1 four times would
	// otherwise be 0.6000000000000001, just above a support of 3/5.
	for s := cfg.MaxSupport; s >= cfg.MinSupport; s = math.Round((s-cfg.SupportDelta)*1e9) / 1e9 {
		if err := ctx.Err(); err != nil {
			return nil, nil, 0, err
		}

		result, witnesses, err := FindFrequentItemSets(ctx, source, s, cfg.MaxSupport, cfg, tel)
		if err != nil {
			return nil, nil, 0, err
		}
		tel.LoopIteration("support", s, result.Len())

		if result.Len() > bestSize || (result.Len() == bestSize && s > bestThreshold) {
			bestResult = result
			bestWitnesses = witnesses
			bestThreshold = s
			bestSize = result.Len()
		}
		if result.Len() >= cfg.FrequentItemSetCount {
			return result, witnesses, s, nil
		}
	}

	if bestResult == nil {
		bestResult = NewItemSetMap()
	}
	return bestResult, bestWitnesses, bestThreshold, nil
}
