package shipment

import (
	"fmt"
	"math/rand/v2"
	"time"
)

const numberAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// NewNumber generates a human-typeable shipment number of the form
// SH-<unix millis>-<6 random base36 chars>, e.g. SH-1735689600123-4K7QZP.
// The millisecond timestamp plus the random suffix makes collisions
// practically impossible without coordinating through storage.
func NewNumber(now time.Time) string {
	suffix := make([]byte, 6)
	for i := range suffix {
		suffix[i] = numberAlphabet[rand.IntN(len(numberAlphabet))]
	}
	return fmt.Sprintf("SH-%d-%s", now.UnixMilli(), suffix)
}
