package provider

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/shopspring/decimal"

	"stockmonitor-service/internal/application"
	"stockmonitor-service/internal/domain"
	"stockmonitor-service/internal/infrastructure/httpx"
)

const finnhubQuotePath = "/api/v1/quote"

type FinnhubProvider struct {
	BaseURL string
	APIKey  string
	Client  *httpx.Client

	now func() time.Time
}

var _ application.QuoteSource = (*FinnhubProvider)(nil)

func NewFinnhub(baseURL, apiKey string, client *httpx.Client) *FinnhubProvider {
	return &FinnhubProvider{BaseURL: baseURL, APIKey: apiKey, Client: client}
}

// finnhubQuote mirrors /api/v1/quote. T is the exchange timestamp and is
// zero when Finnhub has no data for the symbol.
type finnhubQuote struct {
	C  decimal.Decimal `json:"c"`
	H  decimal.Decimal `json:"h"`
	L  decimal.Decimal `json:"l"`
	O  decimal.Decimal `json:"o"`
	PC decimal.Decimal `json:"pc"`
	T  int64           `json:"t"`
}

func (p *FinnhubProvider) Fetch(ctx context.Context, symbol domain.Symbol) (domain.QuoteRecord, error) {
	if p.APIKey == "" {
		return domain.QuoteRecord{}, fmt.Errorf("finnhub: %w: missing api key", domain.ErrConfiguration)
	}
	u, err := url.Parse(p.BaseURL)
	if err != nil || u.Host == "" {
		return domain.QuoteRecord{}, fmt.Errorf("finnhub: %w: invalid base url %q", domain.ErrConfiguration, p.BaseURL)
	}
	u.Path = finnhubQuotePath
	q := u.Query()
	q.Set("symbol", symbol.String())
	q.Set("token", p.APIKey)
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return domain.QuoteRecord{}, fmt.Errorf("finnhub: %w: %w", domain.ErrTransport, err)
	}

	client := p.Client
	if client == nil {
		client = &httpx.Client{}
	}
	var body finnhubQuote
	if err := client.DoJSON(ctx, req, &body); err != nil {
		if errors.Is(err, httpx.ErrDecode) {
			return domain.QuoteRecord{}, fmt.Errorf("finnhub: %w: %w", domain.ErrUpstreamParse, err)
		}
		return domain.QuoteRecord{}, fmt.Errorf("finnhub: %w: %w", domain.ErrTransport, err)
	}
	if body.T == 0 {
		return domain.QuoteRecord{}, fmt.Errorf("finnhub: %w %s", domain.ErrUnknownSymbol, symbol)
	}

	return domain.QuoteRecord{
		Symbol:        symbol,
		Open:          body.O,
		High:          body.H,
		Low:           body.L,
		Close:         body.C,
		PreviousClose: body.PC,
		FetchedAt:     p.clock().UTC(),
	}, nil
}

func (p *FinnhubProvider) clock() time.Time {
	if p.now != nil {
		return p.now()
	}
	return time.Now()
}
