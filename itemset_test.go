package apriori_test

import (
	"testing"

	"github.com/RiceaRaul/apriori"
	"github.com/RiceaRaul/apriori/datasource"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func items(ss ...string) []apriori.Item {
	out := make([]apriori.Item, len(ss))
	for i, s := range ss {
		out[i] = datasource.StringItem(s)
	}
	return out
}

func TestNewItemSetSortsAndDedupes(t *testing.T) {
	set := apriori.NewItemSet(items("C", "A", "B", "A"))

	require.Equal(t, 3, set.Len())
	assert.Equal(t, "{A,B,C}", set.String())
}

func TestItemSetContains(t *testing.T) {
	set := apriori.NewItemSet(items("A", "B"))

	assert.True(t, set.Contains(datasource.StringItem("A")))
	assert.False(t, set.Contains(datasource.StringItem("C")))
	assert.True(t, set.ContainsAll(apriori.NewItemSet(items("A"))))
	assert.False(t, set.ContainsAll(apriori.NewItemSet(items("A", "C"))))
}

func TestItemSetEqualIgnoresSupportAndOrder(t *testing.T) {
	a := apriori.NewItemSet(items("A", "B")).WithSupport(0.5)
	b := apriori.NewItemSet(items("B", "A")).WithSupport(0.9)

	assert.True(t, a.Equal(b))
}

func TestItemSetUnionAndWithout(t *testing.T) {
	a := apriori.NewItemSet(items("A", "B"))
	b := apriori.NewItemSet(items("B", "C"))

	union := a.Union(b)
	assert.Equal(t, "{A,B,C}", union.String())

	without := union.Without(apriori.NewItemSet(items("B")))
	assert.Equal(t, "{A,C}", without.String())
}

func TestItemSetFingerprintIsOrderIndependent(t *testing.T) {
	a := apriori.NewItemSet(items("A", "B", "C"))
	b := apriori.NewItemSet(items("C", "B", "A"))

	assert.Equal(t, a.Fingerprint(), b.Fingerprint())
}

func TestItemSetSubsetsExcludesEmptyAndFull(t *testing.T) {
	set := apriori.NewItemSet(items("A", "B", "C"))

	subsets := set.Subsets()

	require.Len(t, subsets, 6) // 2^3 - 2
	for _, s := range subsets {
		assert.NotEqual(t, 0, s.Len())
		assert.NotEqual(t, 3, s.Len())
	}
}

func TestItemSetSubsetsOfPair(t *testing.T) {
	set := apriori.NewItemSet(items("A", "B"))
	subsets := set.Subsets()

	require.Len(t, subsets, 2)
	assert.True(t, subsets[0].Len() == 1 && subsets[1].Len() == 1)
}
