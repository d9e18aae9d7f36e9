package apriori_test

import (
	"testing"

	"github.com/RiceaRaul/apriori"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeTransaction struct {
	its []apriori.Item
}

func (f fakeTransaction) Items() []apriori.Item                     { return f.its }
func (f fakeTransaction) TimeInterval() (apriori.TimeInterval, bool) { return apriori.TimeInterval{}, false }

func TestSliceSourceReplayable(t *testing.T) {
	source := apriori.NewSliceSource([]apriori.Transaction{
		fakeTransaction{its: items("A")},
		fakeTransaction{its: items("B")},
	})

	require.Equal(t, 2, source.Len())

	var firstPass, secondPass int
	for range source.Transactions() {
		firstPass++
	}
	for range source.Transactions() {
		secondPass++
	}
	assert.Equal(t, firstPass, secondPass)
	assert.Equal(t, 2, firstPass)
}

func TestMaterializeCachesSinglePassSequence(t *testing.T) {
	calls := 0
	seq := func(yield func(apriori.Transaction) bool) {
		calls++
		yield(fakeTransaction{its: items("A")})
	}

	source := apriori.Materialize(seq)

	assert.Equal(t, 1, source.Len()) // first call drains seq once
	var secondPassCount int
	for range source.Transactions() {
		secondPassCount++
	}
	assert.Equal(t, 1, secondPassCount)
	assert.Equal(t, 1, calls, "underlying sequence must be drained exactly once regardless of replay count")
}
