package apriori

import "math"

// Metric is a pure, named function of an AssociationRule together with the
// range it is documented to return (spec §4.5). The mining pipeline never
// switches on a metric's identity beyond Name. Its fields are unexported and
// the package has no constructor, so the five values below are the only
// Metrics; a Comparator, being a plain function type, can order rules by
// any other quantity.
type Metric struct {
	name string
	eval func(AssociationRule) float64
	min  float64
	max  float64
}

// Name is the metric's identifier, e.g. "support".
func (m Metric) Name() string { return m.name }

// Evaluate computes the metric for a rule.
func (m Metric) Evaluate(r AssociationRule) float64 { return m.eval(r) }

// MinValue is the documented lower bound of the metric's range.
func (m Metric) MinValue() float64 { return m.min }

// MaxValue is the documented upper bound of the metric's range.
func (m Metric) MaxValue() float64 { return m.max }

var (
	// SupportMetric reports the frequency of co-occurrence, support(b ∪ h).
	SupportMetric = Metric{
		name: "support",
		eval: func(r AssociationRule) float64 { return r.Support },
		min:  0, max: 1,
	}
	// ConfidenceMetric reports the conditional probability support(b ∪ h)/support(b).
	ConfidenceMetric = Metric{
		name: "confidence",
		eval: func(r AssociationRule) float64 { return r.Confidence },
		min:  0, max: 1,
	}
	// LiftMetric reports the independence ratio confidence/support(h); 1 means independent.
	LiftMetric = Metric{
		name: "lift",
		eval: func(r AssociationRule) float64 { return r.Lift },
		min:  0, max: math.Inf(1),
	}
	// LeverageMetric reports the signed covariance-like quantity
	// support(b ∪ h) − support(b)·support(h). Its range is the signed
	// [-0.25, 0.25]; spec.md §9 flags the source implementation's reported
	// [0,1] bound as a likely bug and this metric preserves the signed
	// value instead.
	LeverageMetric = Metric{
		name: "leverage",
		eval: func(r AssociationRule) float64 { return r.Leverage },
		min:  -0.25, max: 0.25,
	}
	// ConvictionMetric reports the failure-rate ratio (1 − support(h))/(1 − confidence),
	// +Inf when confidence is 1.
	ConvictionMetric = Metric{
		name: "conviction",
		eval: func(r AssociationRule) float64 { return r.Conviction },
		min:  0, max: math.Inf(1),
	}
)

// Comparator is a total order over rules: negative when a sorts before b,
// positive when b sorts before a, zero on a tie. ThenBy composes
// comparators: the receiver is tried first, falling through to next only
// on a tie.
type Comparator func(a, b AssociationRule) int

// ThenBy returns a comparator that breaks ties in c using next.
func (c Comparator) ThenBy(next Comparator) Comparator {
	return func(a, b AssociationRule) int {
		if result := c(a, b); result != 0 {
			return result
		}
		return next(a, b)
	}
}

// ByMetric orders rules by a metric's value, descending when desc is true.
func ByMetric(m Metric, desc bool) Comparator {
	return func(a, b AssociationRule) int {
		va, vb := m.Evaluate(a), m.Evaluate(b)
		switch {
		case va < vb:
			if desc {
				return 1
			}
			return -1
		case va > vb:
			if desc {
				return -1
			}
			return 1
		default:
			return 0
		}
	}
}

// BySupport is the default rule ordering (spec §4.3): descending support
// when desc is true.
func BySupport(desc bool) Comparator { return ByMetric(SupportMetric, desc) }
