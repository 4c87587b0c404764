package domain

import (
	crand "crypto/rand"
	"encoding/binary"
	mrand "math/rand"
	"strconv"
	"strings"
)

// ConfirmationPrefix starts every booking reference.
const ConfirmationPrefix = "HB"

// NewConfirmationNumber produces a short human-facing booking reference:
// the HB prefix plus up to 9 uppercase base-36 characters. The crypto
// source is preferred, with a math/rand fallback normalized to the same
// shape. Codes are distinguishable within a session, not globally unique.
func NewConfirmationNumber() string {
	var b [8]byte
	if _, err := crand.Read(b[:]); err == nil {
		hi := binary.BigEndian.Uint32(b[0:4])
		lo := binary.BigEndian.Uint32(b[4:8])
		return ConfirmationPrefix + clip(clip(base36(uint64(hi)), 5)+clip(base36(uint64(lo)), 5), 9)
	}
	return ConfirmationPrefix + clip(base36(mrand.Uint64()), 9)
}

func base36(n uint64) string {
	return strings.ToUpper(strconv.FormatUint(n, 36))
}

func clip(s string, n int) string {
	if len(s) > n {
		return s[:n]
	}
	return s
}
