package report

import (
	"fmt"
	"io"

	"github.com/RiceaRaul/apriori"
)

// WriteSummary writes a short human-readable report of a mining Output to
// w: run id, elapsed time, effective thresholds, item-set and rule counts,
// and the top-n rules by support.
func WriteSummary(w io.Writer, out *apriori.Output, topN int) error {
	fmt.Fprintf(w, "run %s finished in %s\n", out.RunID(), out.Elapsed())
	fmt.Fprintf(w, "effective min support:    %.4f\n", out.EffectiveMinSupport())
	fmt.Fprintf(w, "frequent item sets found: %d (%s)\n",
		out.FrequentItemSets().Len(), ItemsetsSummary(out.FrequentItemSets()))

	rules := out.Rules()
	if rules.Len() == 0 {
		fmt.Fprintln(w, "no rules generated")
		return nil
	}
	fmt.Fprintf(w, "effective min confidence: %.4f\n", out.EffectiveMinConfidence())
	fmt.Fprintf(w, "association rules found:  %d\n", rules.Len())

	top := rules.TopK(topN, apriori.BySupport(true))
	for i, r := range top.Rules() {
		fmt.Fprintf(w, "  %2d. %-40s support=%.4f confidence=%.4f lift=%.4f leverage=%+.4f conviction=%.4f\n",
			i+1, r.String(), r.Support, r.Confidence, r.Lift, r.Leverage, r.Conviction)
	}
	return nil
}
