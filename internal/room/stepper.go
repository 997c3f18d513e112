package room

import "math"

// Secondary thermal mass constants. The mass stands in for furniture and
// structure that heats and cools more slowly than the room air. The
// coupling gain is empirical; the whole term is provisional and is kept
// as-is rather than replaced with a stricter physical derivation.
const (
	MassConductance  = 1.0      // [W/K]
	MassCapacitance  = 600000.0 // [J/K]
	MassCouplingGain = 400000.0
)

// StepperParams fix a run before it starts. None of the fields are
// mutated while stepping.
type StepperParams struct {
	Params Params

	StartTemp   float64 // initial room air temperature [C]
	OutsideTemp float64 // fixed for the whole run, no weather model [C]
	Horizon     int     // number of one-second iterations

	// SecondaryMass enables the lumped furniture/structure exchange term.
	SecondaryMass bool

	// CheckFinite aborts the run with ErrNumericInstability if a step
	// produces a non-finite room temperature. Off by default: it is a
	// debugging aid, not part of the model.
	CheckFinite bool
}

func (p *StepperParams) Validate() error {
	if p.Horizon <= 0 {
		return ErrNonPositiveHorizon
	}
	return nil
}

// Result holds the full state history of a completed run. The three
// history slices have identical length equal to the horizon; index i in
// each refers to the same simulated second.
type Result struct {
	RoomTemps []float64 // [C]
	HeatIn    []float64 // radiator heat flow [W]
	HeatOut   []float64 // envelope heat flow, negative when losing heat [W]

	FinalTemp float64 // [C]
	EnergyIn  float64 // cumulative radiator energy over the run [J]
	EnergyOut float64 // cumulative envelope energy over the run [J]
}

// Stepper advances the room state one simulated second at a time.
type Stepper struct {
	params StepperParams
	drive  Drive
}

// NewStepper validates the run parameters. drive may be nil, meaning the
// radiator stays off for the whole horizon.
func NewStepper(params StepperParams, drive Drive) (*Stepper, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	if drive != nil && drive.Len() != params.Horizon {
		return nil, ErrDriveLength
	}
	return &Stepper{params: params, drive: drive}, nil
}

// radiatorFlow is the instantaneous heat flow from the radiator into the
// room, positive when the radiator is hotter than the room. The radiator
// temperature is assumed independent of the transfer. [W]
func radiatorFlow(roomTemp, radiatorTemp float64) float64 {
	return (radiatorTemp - roomTemp) * RadiatorConductance
}

// wallFlow is the instantaneous heat flow through walls, floor and
// ceiling, negative when the room is warmer than outside. Outside is the
// same temperature on every face. [W]
func wallFlow(roomTemp, outsideTemp, conductance float64) float64 {
	return (outsideTemp - roomTemp) * conductance
}

// massStep relaxes the secondary-mass temperature one step toward the
// room temperature. [C]
func massStep(roomTemp, massTemp float64) float64 {
	return massTemp + ((roomTemp-massTemp)*MassConductance)/MassCapacitance
}

// Run performs exactly Horizon iterations and returns the full history.
// The recurrence is strictly sequential: each step reads the previous
// step's room and mass temperatures. At t=0 the previous state is the
// declared start temperature with zero heat flows; there is no wraparound
// onto the end of the history.
func (s *Stepper) Run() (*Result, error) {
	n := s.params.Horizon
	res := &Result{
		RoomTemps: make([]float64, n),
		HeatIn:    make([]float64, n),
		HeatOut:   make([]float64, n),
	}

	prev := s.params.StartTemp
	massTemp := s.params.StartTemp

	for t := 0; t < n; t++ {
		qIn := 0.0
		if s.drive != nil {
			if radTemp, on := s.drive.EffectiveTemperature(t); on {
				qIn = radiatorFlow(prev, radTemp)
			}
		}
		qOut := wallFlow(prev, s.params.OutsideTemp, s.params.Params.WallConductance)

		storage := 0.0
		if s.params.SecondaryMass {
			next := massStep(prev, massTemp)
			// The mass's rate of change, scaled by the coupling gain,
			// feeds back as an extra heat term on the room.
			storage = (massTemp - next) * MassCouplingGain
			massTemp = next
		}

		prev += (qIn + qOut + storage) / s.params.Params.CAir
		if s.params.CheckFinite && (math.IsNaN(prev) || math.IsInf(prev, 0)) {
			return nil, ErrNumericInstability
		}

		res.HeatIn[t] = qIn
		res.HeatOut[t] = qOut
		res.RoomTemps[t] = prev
	}

	// Flows are per-second, so summing over one-second steps converts
	// directly to energy.
	for t := 0; t < n; t++ {
		res.EnergyIn += res.HeatIn[t]
		res.EnergyOut += res.HeatOut[t]
	}
	res.FinalTemp = res.RoomTemps[n-1]
	return res, nil
}
