// Package config is the peripheral configuration builder spec.md §1 treats
// as an external collaborator: it loads a Configuration from a YAML file,
// environment variables, and CLI flags via viper/pflag, and hands the core
// library nothing but an apriori.Config built through apriori.ConfigBuilder.
package config

import (
	"fmt"

	"github.com/RiceaRaul/apriori"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Keys used both as YAML/env keys and as pflag long names, so a single
// BindPFlags call wires both sources through the same viper instance.
const (
	KeyMinSupport            = "min-support"
	KeyMaxSupport            = "max-support"
	KeySupportDelta          = "support-delta"
	KeyFrequentItemSetCount  = "itemset-count"
	KeyGenerateRules         = "rules"
	KeyMinConfidence         = "min-confidence"
	KeyMaxConfidence         = "max-confidence"
	KeyConfidenceDelta       = "confidence-delta"
	KeyRuleCount             = "rule-count"
	KeyTrackWitnesses        = "temporal"
	KeyWorkers               = "workers"
	KeyMaxCandidates         = "max-candidates"
)

// RegisterFlags defines the CLI surface's mining flags on fs and returns a
// *viper.Viper with the documented defaults from spec.md §6 pre-populated,
// its environment variable prefix set to APRIORI, and fs bound so that
// flags override env vars, which override the YAML/defaults layer.
func RegisterFlags(fs *pflag.FlagSet) *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix("APRIORI")
	v.AutomaticEnv()

	fs.Float64(KeyMinSupport, 0.0, "support-loop floor")
	fs.Float64(KeyMaxSupport, 1.0, "initial/ceiling support threshold")
	fs.Float64(KeySupportDelta, 0.1, "support-loop step size")
	fs.Int(KeyFrequentItemSetCount, 0, "target item-set count (0 disables the support loop)")
	fs.Bool(KeyGenerateRules, false, "generate association rules")
	fs.Float64(KeyMinConfidence, 0.0, "confidence-loop floor")
	fs.Float64(KeyMaxConfidence, 1.0, "initial/ceiling confidence threshold")
	fs.Float64(KeyConfidenceDelta, 0.1, "confidence-loop step size")
	fs.Int(KeyRuleCount, 0, "target rule count (0 disables the confidence loop)")
	fs.Bool(KeyTrackWitnesses, false, "track transaction witnesses for temporal rule propagation")
	fs.Int(KeyWorkers, 1, "support-counting worker shards")
	fs.Int(KeyMaxCandidates, 0, "per-level candidate ceiling (0 disables the ceiling)")

	_ = v.BindPFlags(fs)
	return v
}

// Load reads a YAML config file (if path is non-empty) into v, then builds
// an apriori.Config from whatever combination of file, environment, and
// flag values v resolves to. Flags bound via RegisterFlags take precedence
// over environment variables, which take precedence over the file.
func Load(v *viper.Viper, path string) (apriori.Config, error) {
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return apriori.Config{}, fmt.Errorf("reading config file %s: %w", path, err)
		}
	}

	b := apriori.NewConfigBuilder().
		MinSupport(v.GetFloat64(KeyMinSupport)).
		MaxSupport(v.GetFloat64(KeyMaxSupport)).
		SupportDelta(v.GetFloat64(KeySupportDelta)).
		FrequentItemSetCount(v.GetInt(KeyFrequentItemSetCount)).
		GenerateRules(v.GetBool(KeyGenerateRules)).
		MinConfidence(v.GetFloat64(KeyMinConfidence)).
		MaxConfidence(v.GetFloat64(KeyMaxConfidence)).
		ConfidenceDelta(v.GetFloat64(KeyConfidenceDelta)).
		RuleCount(v.GetInt(KeyRuleCount)).
		TrackWitnesses(v.GetBool(KeyTrackWitnesses)).
		Workers(v.GetInt(KeyWorkers)).
		MaxCandidates(v.GetInt(KeyMaxCandidates))

	return b.Build()
}
