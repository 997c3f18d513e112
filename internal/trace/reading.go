package trace

import (
	"fmt"
	"time"
)

// Kind is an integer enum for the reading kinds the aligner understands.
type Kind int

const (
	KindUnknown Kind = iota
	KindTemperature
	KindValvePercent
)

func (k Kind) Valid() bool {
	return k == KindTemperature || k == KindValvePercent
}

func (k Kind) String() string {
	switch k {
	case KindTemperature:
		return "temperature"
	case KindValvePercent:
		return "valve_pct"
	default:
		return "unknown"
	}
}

func ParseKind(s string) (Kind, error) {
	switch s {
	case "temperature":
		return KindTemperature, nil
	case "valve_pct":
		return KindValvePercent, nil
	default:
		return KindUnknown, fmt.Errorf("invalid reading kind: %q", s)
	}
}

// Reading is one timestamped sensor observation extracted from a log.
type Reading struct {
	Timestamp time.Time
	SensorID  string
	Kind      Kind
	Value     float64
}
