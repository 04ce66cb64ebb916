package config

import (
	"fmt"
	"time"
)

// DurationBounds is the accepted range for a configured duration. A zero Max
// means unbounded above.
type DurationBounds struct {
	Min time.Duration
	Max time.Duration
}

var (
	// Positive accepts any duration above zero.
	Positive = DurationBounds{Min: time.Nanosecond}
	// NonNegative accepts zero, which callers use to switch a delay or timeout off.
	NonNegative = DurationBounds{}
)

// Check returns an error if d falls outside b.
//
//	if err := DurationBounds{Max: 10 * time.Second}.Check(delay); err != nil {
//	    return fmt.Errorf("DEMO_LATENCY_PROGRAMS: %w", err)
//	}
func (b DurationBounds) Check(d time.Duration) error {
	if b.Max != 0 && b.Min > b.Max {
		return fmt.Errorf("invalid bounds [%v, %v]", b.Min, b.Max)
	}
	switch {
	case d < b.Min && b.Min == time.Nanosecond:
		return fmt.Errorf("must be positive, got %v", d)
	case d < b.Min:
		return fmt.Errorf("%v is below minimum %v", d, b.Min)
	case b.Max != 0 && d > b.Max:
		return fmt.Errorf("%v exceeds maximum %v", d, b.Max)
	}
	return nil
}
