package cli

import (
	"errors"
	"strconv"
	"strings"
)

// ErrInvalidAmount is returned for amount strings that are not a
// non-negative whole number.
var ErrInvalidAmount = errors.New("invalid amount")

// ParseAmount parses a whole-currency amount entered by the user.
// Comma separators and surrounding spaces are tolerated; signs and
// decimals are not, since amounts are non-negative whole units.
func ParseAmount(s string) (int64, error) {
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, ",", "")
	if s == "" {
		return 0, ErrInvalidAmount
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, ErrInvalidAmount
		}
	}
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, ErrInvalidAmount
	}
	return v, nil
}

// ValidateAmount is a huh-compatible validator over ParseAmount.
func ValidateAmount(s string) error {
	if _, err := ParseAmount(s); err != nil {
		return errors.New("0 이상의 정수를 입력하세요")
	}
	return nil
}
