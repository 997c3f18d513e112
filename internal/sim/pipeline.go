// Package sim composes the simulator's pieces into one configurable
// pipeline: derive physical parameters, build the radiator drive (a
// synthetic schedule or an aligned sensor trace), then step the room
// over the horizon. One pipeline is one run.
package sim

import (
	"errors"
	"fmt"

	"github.com/hearthlab/roomsim/internal/report"
	"github.com/hearthlab/roomsim/internal/room"
	"github.com/hearthlab/roomsim/internal/trace"
)

var ErrUnknownDriveMode = errors.New("unknown drive mode")

// ScheduleParams describe a constant-then-off synthetic drive.
type ScheduleParams struct {
	RadiatorTemp float64 // [C]
	OnSeconds    int
}

// TraceParams locate the recorded sensor trace for the trace-driven
// modes. Readings, when set, short-circuits the log file; otherwise
// LogPath is parsed.
type TraceParams struct {
	LogPath  string
	SensorID string
	Readings []trace.Reading
}

type Params struct {
	Geometry   room.Geometry
	Insulation room.Insulation

	StartTemp   float64
	OutsideTemp float64
	Horizon     int

	SecondaryMass bool
	CheckFinite   bool

	Mode     DriveMode
	Schedule ScheduleParams
	Trace    TraceParams
}

type Pipeline struct {
	params Params
	phys   room.Params
	res    *room.Result
}

// New derives the physical constants and validates everything that can
// be validated before touching the trace. A pipeline that constructs
// will either run to the full horizon or fail before stepping begins.
func New(params Params) (*Pipeline, error) {
	phys, err := room.DeriveParams(params.Geometry, params.Insulation)
	if err != nil {
		return nil, err
	}
	if params.Horizon <= 0 {
		return nil, room.ErrNonPositiveHorizon
	}
	if !params.Mode.Valid() {
		return nil, ErrUnknownDriveMode
	}
	return &Pipeline{params: params, phys: phys}, nil
}

// Physical exposes the derived run constants, for reporting.
func (p *Pipeline) Physical() room.Params { return p.phys }

func (p *Pipeline) buildDrive() (room.Drive, error) {
	switch p.params.Mode {
	case DriveModeOff:
		return nil, nil

	case DriveModeSchedule:
		return room.Schedule(p.params.Horizon, p.params.Schedule.RadiatorTemp, p.params.Schedule.OnSeconds), nil

	case DriveModeTraceTemperature, DriveModeTraceValve:
		readings := p.params.Trace.Readings
		if readings == nil {
			var err error
			readings, err = trace.ParseLogFile(p.params.Trace.LogPath)
			if err != nil {
				return nil, err
			}
		}
		al, err := trace.Align(readings, p.params.Trace.SensorID, p.params.Horizon)
		if err != nil {
			return nil, err
		}
		if p.params.Mode == DriveModeTraceTemperature {
			series, err := al.Temperature.Dense()
			if err != nil {
				return nil, err
			}
			return room.TemperatureDrive{Series: series}, nil
		}
		series, err := al.ValvePercent.Dense()
		if err != nil {
			return nil, err
		}
		return room.ValveDrive{Series: series}, nil

	default:
		return nil, ErrUnknownDriveMode
	}
}

// Run executes the pipeline once and retains the result for the read
// side. On any error no partial history is kept.
func (p *Pipeline) Run() (*room.Result, error) {
	drive, err := p.buildDrive()
	if err != nil {
		return nil, fmt.Errorf("build drive: %w", err)
	}

	stepper, err := room.NewStepper(room.StepperParams{
		Params:        p.phys,
		StartTemp:     p.params.StartTemp,
		OutsideTemp:   p.params.OutsideTemp,
		Horizon:       p.params.Horizon,
		SecondaryMass: p.params.SecondaryMass,
		CheckFinite:   p.params.CheckFinite,
	}, drive)
	if err != nil {
		return nil, err
	}

	res, err := stepper.Run()
	if err != nil {
		return nil, err
	}
	p.res = res
	return res, nil
}

// Result returns the completed run, or nil before Run has succeeded.
func (p *Pipeline) Result() *room.Result { return p.res }

func (p *Pipeline) Summary() report.Summary {
	if p.res == nil {
		return report.Summary{}
	}
	return report.Summarize(p.res)
}
