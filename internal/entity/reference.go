package entity

import (
	"encoding/hex"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	RequestReferencePrefix  = "BR"
	EarningsReferencePrefix = "ERN"
	PayoutReferencePrefix   = "PO"
)

// NewReference builds a human-readable reference like ERN-20261014-9F3AC1.
// Uniqueness is enforced by the database; six random hex digits keep collisions rare.
func NewReference(prefix string, now time.Time) string {
	id := uuid.New()
	suffix := strings.ToUpper(hex.EncodeToString(id[:3]))

	return prefix + "-" + now.UTC().Format("20060102") + "-" + suffix
}
