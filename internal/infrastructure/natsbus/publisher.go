package natsbus

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"stockmonitor-service/internal/application"
	"stockmonitor-service/internal/domain"

	"github.com/nats-io/nats.go"
)

// Conn is the subset of *nats.Conn the publisher needs.
type Conn interface {
	Publish(subj string, data []byte) error
}

var (
	_ application.QuotePublisher = (*Publisher)(nil)
	_ Conn                       = (*nats.Conn)(nil)
)

// Publisher emits every captured quote on <prefix>.<SYMBOL>.
type Publisher struct {
	conn   Conn
	prefix string
}

func NewPublisher(conn Conn, prefix string) *Publisher {
	return &Publisher{conn: conn, prefix: prefix}
}

// Connect dials url with reconnects enabled.
func Connect(url string) (*nats.Conn, error) {
	return nats.Connect(url,
		nats.Name("stockmonitor-service"),
		nats.MaxReconnects(-1),
		nats.ReconnectWait(2*time.Second),
	)
}

type quoteEvent struct {
	Symbol        string    `json:"symbol"`
	Open          string    `json:"o"`
	High          string    `json:"h"`
	Low           string    `json:"l"`
	Close         string    `json:"c"`
	PreviousClose string    `json:"pc"`
	FetchedAt     time.Time `json:"fetchedAt"`
}

func (p *Publisher) Subject(sym domain.Symbol) string {
	if p.prefix == "" {
		return sym.String()
	}
	return p.prefix + "." + sym.String()
}

func (p *Publisher) Publish(ctx context.Context, rec domain.QuoteRecord) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	data, err := json.Marshal(quoteEvent{
		Symbol:        rec.Symbol.String(),
		Open:          rec.Open.String(),
		High:          rec.High.String(),
		Low:           rec.Low.String(),
		Close:         rec.Close.String(),
		PreviousClose: rec.PreviousClose.String(),
		FetchedAt:     rec.FetchedAt.UTC(),
	})
	if err != nil {
		return fmt.Errorf("encode quote event: %w", err)
	}
	subj := p.Subject(rec.Symbol)
	if err := p.conn.Publish(subj, data); err != nil {
		return fmt.Errorf("publish %s: %w", subj, err)
	}
	return nil
}
