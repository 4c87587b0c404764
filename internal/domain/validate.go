package domain

import (
	"regexp"
	"strings"
)

var (
	emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phoneRe = regexp.MustCompile(`^[0-9\-\s()+]{7,}$`)
	cardRe  = regexp.MustCompile(`^[0-9]{12,19}$`)
	expRe   = regexp.MustCompile(`^(0[1-9]|1[0-2])/\d{2}$`)
	cvvRe   = regexp.MustCompile(`^\d{3,4}$`)
)

// Validate re-checks the whole draft and returns one keyed message per
// failing field. An empty result means the draft can be confirmed.
func (d BookingDraft) Validate() ValidationErrors {
	errs := ValidationErrors{}
	if strings.TrimSpace(d.Name) == "" {
		errs["name"] = "Requerido"
	}
	if !emailRe.MatchString(d.Email) {
		errs["email"] = "Email inválido"
	}
	if !phoneRe.MatchString(d.Phone) {
		errs["phone"] = "Teléfono inválido"
	}
	if !cardRe.MatchString(strings.ReplaceAll(d.CardNumber, " ", "")) {
		errs["cardNumber"] = "Tarjeta inválida"
	}
	if !expRe.MatchString(d.ExpDate) {
		errs["expDate"] = "Formato MM/AA"
	}
	if !cvvRe.MatchString(d.CVV) {
		errs["cvv"] = "CVV inválido"
	}
	return errs
}
