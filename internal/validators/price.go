package validators

import (
	"errors"
	"regexp"
	"strings"
)

var ErrPriceInvalid = errors.New("price must be a decimal with at most two fraction digits")

// priceRe matches up to three integer digits and an optional one- or
// two-digit fraction.
var priceRe = regexp.MustCompile(`^\d{1,3}(\.\d{1,2})?$`)

func ValidatePrice(p string) error {
	if !priceRe.MatchString(p) {
		return ErrPriceInvalid
	}
	return nil
}

// NormalizePrice validates a price and pads the fraction to exactly two
// digits, so "5.5" and "12" store as "5.50" and "12.00". The column is plain
// text; normalizing on write keeps the representation stable across drivers.
func NormalizePrice(p string) (string, error) {
	if err := ValidatePrice(p); err != nil {
		return "", err
	}

	intPart, frac, _ := strings.Cut(p, ".")
	for len(frac) < 2 {
		frac += "0"
	}
	return intPart + "." + frac, nil
}
