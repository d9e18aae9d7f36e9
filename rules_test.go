package apriori_test

import (
	"context"
	"testing"

	"github.com/RiceaRaul/apriori"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ruleFor(t *testing.T, rules *apriori.RuleSet, body, head string) (apriori.AssociationRule, bool) {
	t.Helper()
	for _, r := range rules.Rules() {
		if r.Body.Equal(apriori.NewItemSet(items(body))) && r.Head.Equal(apriori.NewItemSet(items(head))) {
			return r, true
		}
	}
	return apriori.AssociationRule{}, false
}

// TestGenerateAssociationRulesTextbook is scenario A's rule half: with
// minConfidence 0.6, A->B and A->C (confidence 0.5 each) are rejected while
// B->A, C->A, B->C, C->B (confidence 0.667 each) survive.
func TestGenerateAssociationRulesTextbook(t *testing.T) {
	cfg, err := apriori.NewConfigBuilder().Build()
	require.NoError(t, err)

	frequent, _, err := apriori.FindFrequentItemSets(context.Background(), textbookSource(), 0.4, 1.0, cfg, nil)
	require.NoError(t, err)

	rules, err := apriori.GenerateAssociationRules(frequent, 0.6, nil)
	require.NoError(t, err)

	_, ok := ruleFor(t, rules, "A", "B")
	assert.False(t, ok, "A->B has confidence 0.5 and must be rejected at minConfidence 0.6")
	_, ok = ruleFor(t, rules, "A", "C")
	assert.False(t, ok, "A->C has confidence 0.5 and must be rejected at minConfidence 0.6")

	for _, pair := range [][2]string{{"B", "A"}, {"C", "A"}, {"B", "C"}, {"C", "B"}} {
		r, ok := ruleFor(t, rules, pair[0], pair[1])
		require.True(t, ok, "%s->%s should survive", pair[0], pair[1])
		assert.InDelta(t, 2.0/3.0, r.Confidence, 1e-9)
	}
}

func TestGenerateAssociationRulesSkipsSingletons(t *testing.T) {
	frequent := apriori.NewItemSetMap()
	frequent.Put(apriori.NewItemSet(items("A")).WithSupport(0.5))

	rules, err := apriori.GenerateAssociationRules(frequent, 0.0, nil)
	require.NoError(t, err)
	assert.Equal(t, 0, rules.Len())
}

func TestGenerateAssociationRulesRejectsInvalidConfidence(t *testing.T) {
	_, err := apriori.GenerateAssociationRules(apriori.NewItemSetMap(), 1.5, nil)
	assert.ErrorIs(t, err, apriori.ErrInvalidArgument)
}

func TestAssociationRuleIsValidAt(t *testing.T) {
	r := ruleWith(0.5, 0.5)
	assert.True(t, r.IsValidAt(0), "a rule with no interval is always valid")

	iv := apriori.NewTimeInterval(10, 20)
	r.Interval = &iv
	assert.True(t, r.IsValidAt(15))
	assert.False(t, r.IsValidAt(25))
}

func TestAssociationRuleString(t *testing.T) {
	r := ruleWith(0.5, 0.5)
	assert.Equal(t, "{A} -> {B}", r.String())
}
