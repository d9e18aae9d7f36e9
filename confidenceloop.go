package apriori

import "github.com/RiceaRaul/apriori/internal/telemetry"

// GenerateRulesWithConfidenceLoop wraps GenerateAssociationRules with the
// Confidence Loop Controller (spec §4.4): starting at cfg.MaxConfidence and
// decrementing by cfg.ConfidenceDelta, it returns the result with the
// greatest cardinality among those observed, ties broken by the larger
// confidence threshold — spec.md §9's tightened rule, adopted in place of
// the source's "latest result with cardinality >= previous best" to remove
// the ambiguity.
func GenerateRulesWithConfidenceLoop(frequent *ItemSetMap, cfg Config, witnesses *witnessMap, tel *telemetry.Telemetry) (*RuleSet, float64, error) {
	if cfg.RuleCount <= 0 {
		rs, err := GenerateAssociationRules(frequent, cfg.MinConfidence, witnesses)
		return rs, cfg.MinConfidence, err
	}

	var best *RuleSet
	bestThreshold := cfg.MinConfidence
	bestSize := -1

	for c := cfg.MaxConfidence; c >= cfg.MinConfidence; c -= cfg.ConfidenceDelta {
		rs, err := GenerateAssociationRules(frequent, c, witnesses)
		if err != nil {
			return nil, 0, err
		}
		tel.LoopIteration("confidence", c, rs.Len())

		if rs.Len() > bestSize || (rs.Len() == bestSize && c > bestThreshold) {
			best = rs
			bestThreshold = c
			bestSize = rs.Len()
		}
		if rs.Len() >= cfg.RuleCount {
			return rs, c, nil
		}
	}

	if best == nil {
		best = NewRuleSet()
	}
	return best, bestThreshold, nil
}
