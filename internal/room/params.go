package room

// Physical constants. Air properties at 20 C, 1 atm.
const (
	DensityAir = 1.205  // [kg/m^3]
	CpAir      = 1005.0 // constant-pressure specific heat capacity [J/(kg K)]

	// RadiatorConductance assumes roughly 1 kW of input with the room at
	// 20 C and the radiator at 60 C [1000 / (60 - 20)].
	RadiatorConductance = 25.0 // [W/K]
)

// Geometry is the modeled room's bounding cuboid, in metres.
type Geometry struct {
	Width  float64
	Length float64
	Height float64
}

func (g Geometry) Validate() error {
	if g.Width <= 0 || g.Length <= 0 || g.Height <= 0 {
		return ErrNonPositiveDimension
	}
	return nil
}

// Insulation selects how the envelope conductance is derived. Exactly one
// of the two fields must be positive.
type Insulation struct {
	// RValue is the R(SI) value of the envelope, the reciprocal of the
	// U-value. 1.25 corresponds to a poorly insulated house. [K m^2/W]
	RValue float64

	// HeatLossParameter is an aggregate loss figure per square metre of
	// floor area. [W/(K m^2)]
	HeatLossParameter float64
}

func (ins Insulation) Validate() error {
	if (ins.RValue > 0) == (ins.HeatLossParameter > 0) {
		return ErrInvalidInsulation
	}
	return nil
}

// Params are the derived physical constants of a run. Computed once by
// DeriveParams and never mutated afterwards.
type Params struct {
	SurfaceArea     float64 // envelope area enclosing the room [m^2]
	Volume          float64 // [m^3]
	CAir            float64 // heat capacity of the room air [J/K]
	WallConductance float64 // aggregate envelope conductance [W/K]
}

// DeriveParams computes the run constants from geometry and insulation.
// It is a pure function: the same inputs always give identical outputs.
func DeriveParams(geom Geometry, ins Insulation) (Params, error) {
	if err := geom.Validate(); err != nil {
		return Params{}, err
	}
	if err := ins.Validate(); err != nil {
		return Params{}, err
	}

	area := (geom.Width*geom.Length +
		geom.Width*geom.Height +
		geom.Length*geom.Height) * 2.0
	volume := geom.Width * geom.Length * geom.Height

	var conductance float64
	if ins.RValue > 0 {
		conductance = 1.0 / (ins.RValue * area)
	} else {
		conductance = ins.HeatLossParameter * geom.Width * geom.Length
	}

	return Params{
		SurfaceArea:     area,
		Volume:          volume,
		CAir:            DensityAir * volume * CpAir,
		WallConductance: conductance,
	}, nil
}
