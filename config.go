package apriori

// Config holds every tunable for a single Mine call. Zero-value fields
// match the documented defaults (see ConfigBuilder); the zero Config is not
// directly usable because MaxSupport/MaxConfidence default to 1, not 0, so
// callers should always go through NewConfigBuilder.
type Config struct {
	MinSupport    float64
	MaxSupport    float64
	SupportDelta  float64

	// FrequentItemSetCount, when > 0, enables the Support Loop Controller:
	// Mine searches for the largest support threshold yielding at least
	// this many frequent item sets. 0 means a single Finder run at
	// MinSupport.
	FrequentItemSetCount int

	GenerateRules bool

	MinConfidence   float64
	MaxConfidence   float64
	ConfidenceDelta float64

	// RuleCount, when > 0 and GenerateRules is set, enables the Confidence
	// Loop Controller analogously to FrequentItemSetCount. 0 means a
	// single rule-generation pass at MinConfidence.
	RuleCount int

	// TrackWitnesses enables per-item-set transaction witness tracking
	// during support counting, which is required for temporal rule
	// propagation (§4.3). Disabled by default: it costs an extra interval
	// intersection per (candidate, transaction) hit.
	TrackWitnesses bool

	// Workers, when > 1, shards support counting across this many
	// goroutines per level (§5 parallelism opportunity). 0 or 1 means
	// single-threaded counting.
	Workers int

	// MaxCandidates is a ceiling on the number of candidates generated at
	// any level, guarding against the combinatorial blow-up a MinSupport
	// of 0 invites (§4.1 edge cases). A level that generates more fails
	// the Finder with ErrUnsupported; candidates are not truncated. 0
	// means no ceiling.
	MaxCandidates int
}

// ConfigBuilder constructs a Config, validating every mutation so errors
// surface at the point of configuration, per spec.md §7's fail-fast policy.
type ConfigBuilder struct {
	cfg Config
	err error
}

// NewConfigBuilder returns a builder seeded with the documented defaults:
// MinSupport 0, MaxSupport 1, SupportDelta 0.1, MinConfidence 0,
// MaxConfidence 1, ConfidenceDelta 0.1, counts 0, GenerateRules false.
func NewConfigBuilder() *ConfigBuilder {
	return &ConfigBuilder{cfg: Config{
		MinSupport:      0.0,
		MaxSupport:      1.0,
		SupportDelta:    0.1,
		MinConfidence:   0.0,
		MaxConfidence:   1.0,
		ConfidenceDelta: 0.1,
	}}
}

func (b *ConfigBuilder) fail(err error) *ConfigBuilder {
	if b.err == nil {
		b.err = err
	}
	return b
}

// MinSupport sets the support-loop floor.
func (b *ConfigBuilder) MinSupport(v float64) *ConfigBuilder {
	if v < 0 || v > 1 {
		return b.fail(invalidArgument("minSupport", "must be within [0,1]"))
	}
	b.cfg.MinSupport = v
	return b
}

// MaxSupport sets the initial/ceiling support threshold.
func (b *ConfigBuilder) MaxSupport(v float64) *ConfigBuilder {
	if v < 0 || v > 1 {
		return b.fail(invalidArgument("maxSupport", "must be within [0,1]"))
	}
	b.cfg.MaxSupport = v
	return b
}

// SupportDelta sets the per-iteration support step of the loop controller.
func (b *ConfigBuilder) SupportDelta(v float64) *ConfigBuilder {
	if v <= 0 {
		return b.fail(invalidArgument("supportDelta", "must be > 0"))
	}
	b.cfg.SupportDelta = v
	return b
}

// FrequentItemSetCount sets the target cardinality for the support loop.
func (b *ConfigBuilder) FrequentItemSetCount(v int) *ConfigBuilder {
	if v < 0 {
		return b.fail(invalidArgument("frequentItemSetCount", "must be >= 0"))
	}
	b.cfg.FrequentItemSetCount = v
	return b
}

// GenerateRules enables association-rule derivation after item-set mining.
func (b *ConfigBuilder) GenerateRules(v bool) *ConfigBuilder {
	b.cfg.GenerateRules = v
	return b
}

// MinConfidence sets the confidence-loop floor.
func (b *ConfigBuilder) MinConfidence(v float64) *ConfigBuilder {
	if v < 0 || v > 1 {
		return b.fail(invalidArgument("minConfidence", "must be within [0,1]"))
	}
	b.cfg.MinConfidence = v
	return b
}

// MaxConfidence sets the initial/ceiling confidence threshold.
func (b *ConfigBuilder) MaxConfidence(v float64) *ConfigBuilder {
	if v < 0 || v > 1 {
		return b.fail(invalidArgument("maxConfidence", "must be within [0,1]"))
	}
	b.cfg.MaxConfidence = v
	return b
}

// ConfidenceDelta sets the per-iteration confidence step of the loop
// controller.
func (b *ConfigBuilder) ConfidenceDelta(v float64) *ConfigBuilder {
	if v <= 0 {
		return b.fail(invalidArgument("confidenceDelta", "must be > 0"))
	}
	b.cfg.ConfidenceDelta = v
	return b
}

// RuleCount sets the target cardinality for the confidence loop.
func (b *ConfigBuilder) RuleCount(v int) *ConfigBuilder {
	if v < 0 {
		return b.fail(invalidArgument("ruleCount", "must be >= 0"))
	}
	b.cfg.RuleCount = v
	return b
}

// TrackWitnesses toggles temporal witness tracking during support counting.
func (b *ConfigBuilder) TrackWitnesses(v bool) *ConfigBuilder {
	b.cfg.TrackWitnesses = v
	return b
}

// Workers sets the number of shards used for parallel support counting.
func (b *ConfigBuilder) Workers(v int) *ConfigBuilder {
	if v < 0 {
		return b.fail(invalidArgument("workers", "must be >= 0"))
	}
	b.cfg.Workers = v
	return b
}

// MaxCandidates sets the per-level candidate ceiling.
func (b *ConfigBuilder) MaxCandidates(v int) *ConfigBuilder {
	if v < 0 {
		return b.fail(invalidArgument("maxCandidates", "must be >= 0"))
	}
	b.cfg.MaxCandidates = v
	return b
}

// Build validates the cross-field constraints (min <= max) and returns the
// finished Config. Per-field constraints were already checked as each
// setter was called; the first error encountered anywhere in the chain is
// returned here.
func (b *ConfigBuilder) Build() (Config, error) {
	if b.err != nil {
		return Config{}, b.err
	}
	if b.cfg.MinSupport > b.cfg.MaxSupport {
		return Config{}, invalidArgument("minSupport", "must be <= maxSupport")
	}
	if b.cfg.MinConfidence > b.cfg.MaxConfidence {
		return Config{}, invalidArgument("minConfidence", "must be <= maxConfidence")
	}
	return b.cfg, nil
}
