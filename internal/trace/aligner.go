package trace

import (
	"fmt"
	"time"
)

// Series is one aligned per-second sequence over the horizon. Cells
// before the first reading are undefined; the series refuses to hand out
// an undefined value rather than let it leak into the recurrence.
type Series struct {
	values  []float64
	leadGap int // number of undefined cells at the start
}

func (s *Series) Len() int { return len(s.values) }

// LeadingGap is the number of seconds at the start of the horizon with no
// reading to carry forward.
func (s *Series) LeadingGap() int { return s.leadGap }

// At returns the value at second i. Undefined cells fail with
// ErrGapAtOrigin.
func (s *Series) At(i int) (float64, error) {
	if i < 0 || i >= len(s.values) {
		return 0, fmt.Errorf("second %d outside horizon of %d", i, len(s.values))
	}
	if i < s.leadGap {
		return 0, fmt.Errorf("%w: second %d precedes the first reading", ErrGapAtOrigin, i)
	}
	return s.values[i], nil
}

// Dense materializes the whole series. It fails with ErrGapAtOrigin if
// any leading cell is undefined; a partially defined series must never
// reach the stepper.
func (s *Series) Dense() ([]float64, error) {
	if s.leadGap > 0 {
		return nil, fmt.Errorf("%w: first %d second(s) undefined", ErrGapAtOrigin, s.leadGap)
	}
	out := make([]float64, len(s.values))
	copy(out, s.values)
	return out, nil
}

// Aligned is the pair of per-second series produced from one sensor's
// readings, sharing a common time origin.
type Aligned struct {
	Origin       time.Time
	Temperature  *Series
	ValvePercent *Series
}

// Align resamples an irregular reading log onto a uniform one-sample-per-
// second grid of length horizon. Only readings for sensorID are kept. The
// origin is the earlier of the first temperature and first valve reading;
// offsets are whole seconds from it, and readings at or past the horizon
// are dropped. Gaps are forward-filled from the last known value; within
// one cell the last reading in log order wins.
func Align(readings []Reading, sensorID string, horizon int) (*Aligned, error) {
	if horizon <= 0 {
		return nil, ErrNonPositiveHorizon
	}
	if len(readings) == 0 {
		return nil, ErrEmptyTrace
	}

	var temps, valves []Reading
	for _, r := range readings {
		if r.SensorID != sensorID {
			continue
		}
		switch r.Kind {
		case KindTemperature:
			temps = append(temps, r)
		case KindValvePercent:
			valves = append(valves, r)
		}
	}
	if len(temps) == 0 || len(valves) == 0 {
		return nil, fmt.Errorf("%w: sensor %q (%d temperature, %d valve)",
			ErrNoSensorRecords, sensorID, len(temps), len(valves))
	}

	origin := earliest(temps)
	if v := earliest(valves); v.Before(origin) {
		origin = v
	}

	return &Aligned{
		Origin:       origin,
		Temperature:  resample(temps, origin, horizon),
		ValvePercent: resample(valves, origin, horizon),
	}, nil
}

func earliest(readings []Reading) time.Time {
	min := readings[0].Timestamp
	for _, r := range readings[1:] {
		if r.Timestamp.Before(min) {
			min = r.Timestamp
		}
	}
	return min
}

func resample(readings []Reading, origin time.Time, horizon int) *Series {
	values := make([]float64, horizon)
	seen := make([]bool, horizon)

	for _, r := range readings {
		off := int(r.Timestamp.Sub(origin) / time.Second)
		if off < 0 || off >= horizon {
			continue
		}
		values[off] = r.Value
		seen[off] = true
	}

	gap := 0
	for gap < horizon && !seen[gap] {
		gap++
	}
	for i := gap + 1; i < horizon; i++ {
		if !seen[i] {
			values[i] = values[i-1]
		}
	}
	return &Series{values: values, leadGap: gap}
}
