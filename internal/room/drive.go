package room

import "math"

// Off is the sentinel marking a second during which the radiator is off.
var Off = math.NaN()

// Drive supplies the radiator's effective temperature for each simulated
// second. The second return is false when the radiator is off at that
// instant.
type Drive interface {
	EffectiveTemperature(second int) (float64, bool)
	Len() int
}

// TemperatureDrive drives the radiator with a per-second temperature
// series. Entries equal to Off mean the radiator is off.
type TemperatureDrive struct {
	Series []float64 // [C]
}

func (d TemperatureDrive) EffectiveTemperature(second int) (float64, bool) {
	if second < 0 || second >= len(d.Series) || math.IsNaN(d.Series[second]) {
		return 0, false
	}
	return d.Series[second], true
}

func (d TemperatureDrive) Len() int { return len(d.Series) }

// ValveDrive drives the radiator with a per-second valve-open percentage
// series, mapped onto an effective radiator temperature through an assumed
// operating curve: 2*pct - 80. The curve is empirical, not derived.
type ValveDrive struct {
	Series []float64 // [%]
}

func (d ValveDrive) EffectiveTemperature(second int) (float64, bool) {
	if second < 0 || second >= len(d.Series) || math.IsNaN(d.Series[second]) {
		return 0, false
	}
	return 2.0*d.Series[second] - 80.0, true
}

func (d ValveDrive) Len() int { return len(d.Series) }

// Schedule builds a constant-then-off temperature drive: the radiator
// holds temp for the first onSeconds of the horizon and is off for the
// rest. onSeconds past the horizon simply means always on.
func Schedule(horizon int, temp float64, onSeconds int) TemperatureDrive {
	series := make([]float64, horizon)
	for i := range series {
		if i < onSeconds {
			series[i] = temp
		} else {
			series[i] = Off
		}
	}
	return TemperatureDrive{Series: series}
}
