package domain

import "errors"

var (
	ErrInvalidInput    = errors.New("invalid input")
	ErrInvalidInterval = errors.New("interval must be > 0")
	ErrConfiguration   = errors.New("configuration error")
	ErrTransport       = errors.New("transport error")
	ErrUnknownSymbol   = errors.New("no data for symbol")
	ErrUpstreamParse   = errors.New("malformed upstream response")
	ErrNotFound        = errors.New("not found")
)
