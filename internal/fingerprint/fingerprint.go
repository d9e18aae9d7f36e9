// Package fingerprint computes stable hashes over a canonically sorted
// sequence of item hashes. The hash itself depends on order; ItemSet keeps
// its items sorted, which is what makes ItemSet.Fingerprint independent of
// insertion order. It is advisory only: callers must still confirm value
// equality on a fingerprint collision.
package fingerprint

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
)

// Of hashes a canonically ordered sequence of per-item hashes into a single
// uint64. Two sequences with the same elements in the same order always
// fingerprint identically; the caller is responsible for sorting items into
// a fixed total order before calling Of, so set membership (not insertion
// order) determines the result.
func Of(itemHashes []uint64) uint64 {
	d := xxhash.New()
	var buf [8]byte
	for _, h := range itemHashes {
		binary.LittleEndian.PutUint64(buf[:], h)
		_, _ = d.Write(buf[:])
	}
	return d.Sum64()
}
