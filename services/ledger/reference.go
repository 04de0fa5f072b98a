package ledger

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/google/uuid"
)

// NewID produces a collision-resistant opaque identifier for entity
// identity, e.g. "review_6f1c...".
func NewID(prefix string) string {
	return prefix + uuid.New().String()
}

// NewBookingReference produces the short human-facing code: a fixed domain
// prefix, the date with separators stripped, and a random 3-digit suffix.
// Collisions are possible and not checked; the opaque id stays globally
// unique.
func NewBookingReference(domainPrefix, date string) string {
	compact := strings.ReplaceAll(date, "-", "")
	return fmt.Sprintf("%s-%s-%03d", domainPrefix, compact, rand.Intn(1000))
}
