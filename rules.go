package apriori

import "math"

// AssociationRule is an implication body -> head between disjoint
// non-empty item sets, both subsets of a common frequent item set. Rules
// deep-copy the item-set contents that produced them (ItemSet is a value
// type), so a rule remains valid after the frequent-set map that derived it
// is discarded.
type AssociationRule struct {
	Body ItemSet
	Head ItemSet

	Support    float64
	Confidence float64
	Lift       float64
	Leverage   float64
	Conviction float64

	// Interval is the rule's validity window, set only when the Finder
	// tracked witnesses and every timed transaction witnessing Body∪Head
	// shared a common interval; transactions without an interval are
	// ignored. Nil otherwise (spec §4.3 temporal propagation).
	Interval *TimeInterval
}

// IsValidAt reports whether the rule's interval, if any, includes ts. A
// rule with no interval is always considered valid.
func (r AssociationRule) IsValidAt(ts int64) bool {
	if r.Interval == nil {
		return true
	}
	return r.Interval.Includes(ts)
}

// String renders "body -> head".
func (r AssociationRule) String() string {
	return r.Body.String() + " -> " + r.Head.String()
}

// GenerateAssociationRules derives every rule body -> head from frequent
// item sets of length >= 2, filtering by minConfidence (spec §4.3). For
// each frequent X, every non-empty proper subset H is a candidate head;
// body = X \ H. A candidate whose body or head is not itself present in
// frequent is skipped defensively (it should not occur under downward
// closure).
func GenerateAssociationRules(frequent *ItemSetMap, minConfidence float64, witnesses *witnessMap) (*RuleSet, error) {
	if minConfidence < 0 || minConfidence > 1 {
		return nil, invalidArgument("minConfidence", "must be within [0,1]")
	}

	ruleSet := NewRuleSet()
	for _, x := range frequent.All() {
		if x.Len() < 2 {
			continue
		}
		for _, head := range x.Subsets() {
			if head.Len() == 0 || head.Len() == x.Len() {
				continue
			}
			body := x.Without(head)

			bodySupport, ok := frequent.SupportOf(body)
			if !ok {
				continue
			}
			confidence := x.Support() / bodySupport
			if confidence < minConfidence {
				continue
			}

			headSupport, ok := frequent.SupportOf(head)
			if !ok {
				continue
			}

			lift := confidence / headSupport
			leverage := x.Support() - bodySupport*headSupport

			var conviction float64
			if headSupport == 1.0 || confidence == 1.0 {
				conviction = math.Inf(1)
			} else {
				conviction = (1.0 - headSupport) / (1.0 - confidence)
			}

			var interval *TimeInterval
			if iv, ok := witnesses.IntervalOf(x); ok {
				ivCopy := iv
				interval = &ivCopy
			}

			ruleSet.Append(AssociationRule{
				Body:       body,
				Head:       head,
				Support:    x.Support(),
				Confidence: confidence,
				Lift:       lift,
				Leverage:   leverage,
				Conviction: conviction,
				Interval:   interval,
			})
		}
	}
	return ruleSet, nil
}
