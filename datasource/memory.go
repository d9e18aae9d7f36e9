package datasource

import "github.com/RiceaRaul/apriori"

// memoryTransaction is an in-memory apriori.Transaction built from a plain
// slice of strings, optionally stamped with a validity interval.
type memoryTransaction struct {
	items    []apriori.Item
	interval apriori.TimeInterval
	hasTime  bool
}

func (t memoryTransaction) Items() []apriori.Item { return t.items }

func (t memoryTransaction) TimeInterval() (apriori.TimeInterval, bool) {
	return t.interval, t.hasTime
}

// NewBasket builds a Transaction from a basket of plain-string items with
// no time interval.
func NewBasket(items ...string) apriori.Transaction {
	return memoryTransaction{items: stringsToItems(items)}
}

// NewTimedBasket builds a Transaction from a basket of plain-string items
// stamped with the given validity interval.
func NewTimedBasket(interval apriori.TimeInterval, items ...string) apriori.Transaction {
	return memoryTransaction{items: stringsToItems(items), interval: interval, hasTime: true}
}

func stringsToItems(items []string) []apriori.Item {
	result := make([]apriori.Item, len(items))
	for i, s := range items {
		result[i] = StringItem(s)
	}
	return result
}

// NewMemorySource wraps a slice of baskets of plain-string items as a
// replayable apriori.TransactionSource, e.g. for tests or small embedded
// datasets.
func NewMemorySource(baskets [][]string) apriori.TransactionSource {
	transactions := make([]apriori.Transaction, len(baskets))
	for i, basket := range baskets {
		transactions[i] = NewBasket(basket...)
	}
	return apriori.NewSliceSource(transactions)
}
