package provider

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"stockmonitor-service/internal/application"
	"stockmonitor-service/internal/domain"
)

// Ensure Fake implements application.QuoteSource.
var _ application.QuoteSource = (*Fake)(nil)

// Fake quotes every symbol at a fixed price.
type Fake struct {
	price decimal.Decimal
}

func NewFake(price decimal.Decimal) *Fake { return &Fake{price: price} }

func (f *Fake) Fetch(_ context.Context, symbol domain.Symbol) (domain.QuoteRecord, error) {
	return domain.QuoteRecord{
		Symbol:        symbol,
		Open:          f.price,
		High:          f.price,
		Low:           f.price,
		Close:         f.price,
		PreviousClose: f.price,
		FetchedAt:     time.Now().UTC(),
	}, nil
}
