package apriori

import (
	"fmt"
	"sort"
)

// RuleSet is an ordered, duplicate-free container of AssociationRules.
// Ranking and filtering operations (Sort, TopK, Filter) return new ordered
// views; the underlying collection is mutated only by Append and
// SortInPlace.
type RuleSet struct {
	rules []AssociationRule
	seen  map[string]bool
}

// NewRuleSet returns an empty rule set.
func NewRuleSet() *RuleSet {
	return &RuleSet{seen: make(map[string]bool)}
}

func dedupeKey(r AssociationRule) string {
	key := fmt.Sprintf("%d|%d", r.Body.Fingerprint(), r.Head.Fingerprint())
	if r.Interval != nil {
		key += fmt.Sprintf("|%d-%d", r.Interval.Start, r.Interval.End)
	}
	return key
}

// Append adds a rule unless a duplicate by (body, head, interval) is
// already present, in which case it reports false and leaves the set
// unchanged.
func (rs *RuleSet) Append(r AssociationRule) bool {
	key := dedupeKey(r)
	if rs.seen[key] {
		return false
	}
	rs.seen[key] = true
	rs.rules = append(rs.rules, r)
	return true
}

// Len is the number of rules in the set.
func (rs *RuleSet) Len() int { return len(rs.rules) }

// Rules returns the set's rules in their current order. Callers must not
// mutate the returned slice.
func (rs *RuleSet) Rules() []AssociationRule { return rs.rules }

// Sort returns a new RuleSet with the same rules ordered by cmp, leaving
// the receiver unchanged.
func (rs *RuleSet) Sort(cmp Comparator) *RuleSet {
	cp := make([]AssociationRule, len(rs.rules))
	copy(cp, rs.rules)
	sort.SliceStable(cp, func(i, j int) bool { return cmp(cp[i], cp[j]) < 0 })
	return &RuleSet{rules: cp, seen: rs.seen}
}

// SortInPlace reorders the receiver's rules by cmp.
func (rs *RuleSet) SortInPlace(cmp Comparator) {
	sort.SliceStable(rs.rules, func(i, j int) bool { return cmp(rs.rules[i], rs.rules[j]) < 0 })
}

// TopK returns a new RuleSet holding the first k rules of rs sorted by cmp.
// TopK(k, c) is equivalent to Sort(c) followed by taking the first k
// rules.
func (rs *RuleSet) TopK(k int, cmp Comparator) *RuleSet {
	sorted := rs.Sort(cmp)
	if k > len(sorted.rules) {
		k = len(sorted.rules)
	}
	if k < 0 {
		k = 0
	}
	return &RuleSet{rules: append([]AssociationRule(nil), sorted.rules[:k]...), seen: sorted.seen}
}

// Filter returns a new RuleSet holding only the rules for which pred
// returns true, preserving order.
func (rs *RuleSet) Filter(pred func(AssociationRule) bool) *RuleSet {
	filtered := make([]AssociationRule, 0, len(rs.rules))
	seen := make(map[string]bool, len(rs.rules))
	for _, r := range rs.rules {
		if pred(r) {
			filtered = append(filtered, r)
			seen[dedupeKey(r)] = true
		}
	}
	return &RuleSet{rules: filtered, seen: seen}
}
