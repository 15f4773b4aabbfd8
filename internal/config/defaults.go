package config

import "time"

const (
	DefaultHTTPPort         = "3000"
	DefaultShutdownTimeout  = 10 * time.Second
	DefaultRequestTimeout   = 5 * time.Second
	DefaultIdempotencyTTL   = 24 * time.Hour
	DefaultFinnhubBaseURL   = "https://finnhub.io"
	DefaultNATSSubjectRoot  = "quotes"
	DefaultFakeQuotePrice   = "100"
	DefaultIdempotencyStore = "none"
)
