package apriori

import "iter"

// Transaction is one observation: a set of Items, optionally stamped with a
// validity TimeInterval. Implementations may yield duplicate items from
// Items(); the mining pipeline treats a transaction as a set.
type Transaction interface {
	Items() []Item
	// TimeInterval returns the transaction's validity interval, if any.
	TimeInterval() (TimeInterval, bool)
}

// TransactionSource is a caller-supplied, replayable iterable of
// transactions. The Finder performs at most one pass per mining level over
// the source, so a source backed by a single-pass stream must be wrapped in
// Materialize before being handed to Mine or Find.
type TransactionSource interface {
	// Transactions returns a fresh sequence over the source's transactions.
	// Implementations MUST support being called more than once.
	Transactions() iter.Seq[Transaction]
	// Len is the number of transactions in the source, used as the
	// denominator of support. Implementations that cannot know this without
	// a full scan should materialize once and cache it.
	Len() int
}

// sliceSource is a TransactionSource backed by an in-memory slice; it is
// trivially replayable.
type sliceSource struct {
	transactions []Transaction
}

// NewSliceSource wraps an in-memory slice of transactions as a
// TransactionSource.
func NewSliceSource(transactions []Transaction) TransactionSource {
	return &sliceSource{transactions: transactions}
}

func (s *sliceSource) Transactions() iter.Seq[Transaction] {
	return func(yield func(Transaction) bool) {
		for _, t := range s.transactions {
			if !yield(t) {
				return
			}
		}
	}
}

func (s *sliceSource) Len() int { return len(s.transactions) }

// materializedSource caches a single-pass iter.Seq[Transaction] into a slice
// on its first iteration, making every subsequent call replayable.
type materializedSource struct {
	once     func() []Transaction
	cache    []Transaction
	resolved bool
}

// Materialize wraps a (possibly single-pass) sequence of transactions so
// that it can be iterated multiple times: the first call to Transactions or
// Len drains seq into a cache, and every call (including the first) replays
// from that cache.
func Materialize(seq iter.Seq[Transaction]) TransactionSource {
	m := &materializedSource{}
	m.once = func() []Transaction {
		if !m.resolved {
			for t := range seq {
				m.cache = append(m.cache, t)
			}
			m.resolved = true
		}
		return m.cache
	}
	return m
}

func (m *materializedSource) Transactions() iter.Seq[Transaction] {
	cache := m.once()
	return func(yield func(Transaction) bool) {
		for _, t := range cache {
			if !yield(t) {
				return
			}
		}
	}
}

func (m *materializedSource) Len() int {
	return len(m.once())
}
