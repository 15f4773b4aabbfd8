package domain

import (
	"fmt"
	"math"
	"time"
)

const maxIntervalSeconds = math.MaxInt64 / int64(time.Second)

// IntervalFrom converts a minutes/seconds pair into a polling interval.
func IntervalFrom(minutes, seconds int64) (time.Duration, error) {
	if minutes < 0 || seconds < 0 {
		return 0, fmt.Errorf("%w: minutes and seconds must be non-negative", ErrInvalidInput)
	}
	if minutes > maxIntervalSeconds/60 || seconds > maxIntervalSeconds-minutes*60 {
		return 0, fmt.Errorf("%w: interval too large", ErrInvalidInput)
	}
	total := minutes*60 + seconds
	if total <= 0 {
		return 0, ErrInvalidInterval
	}
	return time.Duration(total) * time.Second, nil
}
