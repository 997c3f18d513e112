package testutil

import (
	"github.com/hearthlab/roomsim/internal/report"
	"github.com/hearthlab/roomsim/internal/room"
)

// FakeSimulationService is a reusable fake implementing
// ports.SimulationService. Put ONLY what multiple test packages need here.
type FakeSimulationService struct {
	Res *room.Result
}

// NewFakeSimulationService returns a fake holding a small completed run.
func NewFakeSimulationService() *FakeSimulationService {
	return &FakeSimulationService{
		Res: &room.Result{
			RoomTemps: []float64{20.0, 20.5, 21.0, 21.4},
			HeatIn:    []float64{1000, 990, 980, 970},
			HeatOut:   []float64{-12, -12.5, -13, -13.5},
			FinalTemp: 21.4,
			EnergyIn:  3940,
			EnergyOut: -51,
		},
	}
}

func (f *FakeSimulationService) Result() *room.Result { return f.Res }

func (f *FakeSimulationService) Summary() report.Summary {
	if f.Res == nil {
		return report.Summary{}
	}
	return report.Summarize(f.Res)
}
