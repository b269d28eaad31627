// engine/similarity.go
package engine

import (
	"github.com/edgescope/edgescope/market"
)

// Similarity scores two market fingerprints as the fraction of the eleven
// categorical fields that are exactly equal. An absent value is its own
// category: absent matches absent, never a present value. There is no
// partial credit for "close" categories.
//
// The score is symmetric and lands in [0, 1].
func Similarity(a, b market.Fingerprint) float64 {
	af, bf := a.Fields(), b.Fields()

	matches := 0
	for i := range af {
		if af[i] == bf[i] {
			matches++
		}
	}
	return float64(matches) / float64(market.FingerprintFields)
}
