package domain

import (
	"fmt"
	"strings"
)

// Symbol is a ticker identifier, always stored upper-cased.
type Symbol string

// NormalizeSymbol trims and upper-cases raw. Blank input is rejected so
// that "aapl", " AAPL " and "AAPL" all resolve to the same slot.
func NormalizeSymbol(raw string) (Symbol, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return "", fmt.Errorf("%w: symbol is required", ErrInvalidInput)
	}
	return Symbol(strings.ToUpper(s)), nil
}

func (s Symbol) String() string { return string(s) }
