package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// QuoteRecord is one captured quote. Prices the upstream omits are zero.
type QuoteRecord struct {
	Symbol        Symbol
	Open          decimal.Decimal
	High          decimal.Decimal
	Low           decimal.Decimal
	Close         decimal.Decimal
	PreviousClose decimal.Decimal
	FetchedAt     time.Time
}
