package apriori

import (
	"context"
	"time"

	"github.com/RiceaRaul/apriori/internal/telemetry"
	"github.com/google/uuid"
)

// Output is the result of a Mine call: the final frequent-set map, the rule
// set (empty when Config.GenerateRules is false), and the effective
// thresholds the loop controllers settled on.
type Output struct {
	runID string

	frequentItemSets *ItemSetMap
	rules            *RuleSet

	elapsed time.Duration

	effectiveMinSupport    float64
	effectiveMinConfidence float64
}

// RunID uniquely identifies this mining run, for correlating log lines and
// metrics across a call to Mine.
func (o *Output) RunID() string { return o.runID }

// FrequentItemSets returns the mapping from fingerprint to ItemSet found by
// the Finder/Support Loop Controller.
func (o *Output) FrequentItemSets() *ItemSetMap { return o.frequentItemSets }

// Rules returns the derived rule set. It is empty (not nil) when rule
// generation was not requested.
func (o *Output) Rules() *RuleSet { return o.rules }

// Elapsed is the wall-clock duration of the entire Mine call.
func (o *Output) Elapsed() time.Duration { return o.elapsed }

// EffectiveMinSupport is the support threshold the Support Loop Controller
// settled on (equal to Config.MinSupport when the loop was not engaged).
func (o *Output) EffectiveMinSupport() float64 { return o.effectiveMinSupport }

// EffectiveMinConfidence is the confidence threshold the Confidence Loop
// Controller settled on (equal to Config.MinConfidence when the loop was
// not engaged, or when rule generation was not requested).
func (o *Output) EffectiveMinConfidence() float64 { return o.effectiveMinConfidence }

// Mine is the library's single entry point (spec §6): it threads cfg
// through the Finder/Support Loop Controller and, if cfg.GenerateRules is
// set, the Rule Generator/Confidence Loop Controller, and returns the
// combined Output. tel may be nil to disable logging/metrics.
func Mine(ctx context.Context, cfg Config, source TransactionSource, tel *telemetry.Telemetry) (*Output, error) {
	start := time.Now()

	frequent, witnesses, effectiveSupport, err := FindWithSupportLoop(ctx, source, cfg, tel)
	if err != nil {
		return nil, err
	}

	out := &Output{
		runID:                  uuid.NewString(),
		frequentItemSets:       frequent,
		effectiveMinSupport:    effectiveSupport,
		effectiveMinConfidence: cfg.MinConfidence,
		rules:                  NewRuleSet(),
	}

	if cfg.GenerateRules {
		rules, effectiveConfidence, err := GenerateRulesWithConfidenceLoop(frequent, cfg, witnesses, tel)
		if err != nil {
			return nil, err
		}
		rules.SortInPlace(BySupport(true))
		out.rules = rules
		out.effectiveMinConfidence = effectiveConfidence
		tel.RulesGenerated(rules.Len())
	}

	out.elapsed = time.Since(start)
	return out, nil
}
