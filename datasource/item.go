// Package datasource adapts transactional data from plain-string baskets
// (CSV files, in-memory slices) into the apriori.Transaction/apriori.Item
// interfaces.
package datasource

import (
	"github.com/RiceaRaul/apriori"
	"github.com/cespare/xxhash/v2"
)

// StringItem is the library's built-in apriori.Item implementation for the
// common case of plain-string items (SKUs, product names, ticket labels).
type StringItem string

var _ apriori.Item = StringItem("")

// Equal reports string equality.
func (s StringItem) Equal(other apriori.Item) bool {
	return string(s) == other.String()
}

// Less orders items lexicographically.
func (s StringItem) Less(other apriori.Item) bool {
	return string(s) < other.String()
}

// Hash is the xxhash digest of the string value.
func (s StringItem) Hash() uint64 {
	return xxhash.Sum64String(string(s))
}

// String returns the underlying string.
func (s StringItem) String() string { return string(s) }
