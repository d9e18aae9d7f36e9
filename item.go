package apriori

// Item is an opaque domain value supplied by the caller. Equality, hashing,
// and a total order are the caller's responsibility; the core mining
// pipeline never compares items by any means other than these three
// methods.
//
// Equal must agree with Hash: a.Equal(b) implies a.Hash() == b.Hash(). Less
// must be a strict weak order consistent with Equal (neither a.Less(b) nor
// b.Less(a) when a.Equal(b)).
type Item interface {
	// Equal reports whether two items represent the same domain value.
	Equal(other Item) bool
	// Less defines the total order items are sorted and joined by.
	Less(other Item) bool
	// Hash is a stable hash of the item's identity, used to key fingerprint
	// buckets. It is advisory: lookups always confirm with Equal.
	Hash() uint64
	// String renders the item for logs, CSV output, and error messages.
	String() string
}
