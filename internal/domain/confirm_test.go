package domain_test

import (
	"regexp"
	"testing"

	"github.com/nickalexanderalicea-source/hotel-booker/internal/domain"
)

var codeRe = regexp.MustCompile(`^HB[0-9A-Z]{1,9}$`)

func TestNewConfirmationNumber_Format(t *testing.T) {
	for i := 0; i < 200; i++ {
		code := domain.NewConfirmationNumber()
		if !codeRe.MatchString(code) {
			t.Fatalf("code %q does not match documented format", code)
		}
	}
}

func TestNewConfirmationNumber_DistinguishableInSession(t *testing.T) {
	seen := map[string]bool{}
	dupes := 0
	for i := 0; i < 100; i++ {
		c := domain.NewConfirmationNumber()
		if seen[c] {
			dupes++
		}
		seen[c] = true
	}
	// Not a uniqueness guarantee, but within one session codes should
	// essentially never collide.
	if dupes > 1 {
		t.Fatalf("%d duplicate codes in 100 draws", dupes)
	}
}
