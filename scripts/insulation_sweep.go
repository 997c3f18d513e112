package main

import (
	"encoding/csv"
	"fmt"
	"os"

	"github.com/hearthlab/roomsim/internal/room"
	"github.com/hearthlab/roomsim/internal/sim"
)

// Sweeps the envelope R-value over the reference scenario and records how
// insulation moves the final temperature and the energy balance.
func SweepInsulation(rValues []float64, filename string) error {
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create CSV file: %v", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	if err := writer.Write([]string{"RValue", "WallConductance", "FinalTemp", "EnergyInKJ", "EnergyOutKJ"}); err != nil {
		return fmt.Errorf("failed to write CSV header: %v", err)
	}

	for _, r := range rValues {
		p, err := sim.New(sim.Params{
			Geometry:    room.Geometry{Width: 3.0, Length: 5.0, Height: 2.3},
			Insulation:  room.Insulation{RValue: r},
			StartTemp:   20.0,
			OutsideTemp: 0.0,
			Horizon:     4 * 60 * 60,
			Mode:        sim.DriveModeSchedule,
			Schedule:    sim.ScheduleParams{RadiatorTemp: 60.0, OnSeconds: 20 * 60},
		})
		if err != nil {
			return fmt.Errorf("failed to build pipeline for R=%v: %v", r, err)
		}
		if _, err := p.Run(); err != nil {
			return fmt.Errorf("run failed for R=%v: %v", r, err)
		}

		sum := p.Summary()
		if err := writer.Write([]string{
			fmt.Sprintf("%.2f", r),
			fmt.Sprintf("%.4f", p.Physical().WallConductance),
			fmt.Sprintf("%.2f", sum.FinalTemp),
			fmt.Sprintf("%.2f", sum.EnergyInKJ),
			fmt.Sprintf("%.2f", sum.EnergyOutKJ),
		}); err != nil {
			return fmt.Errorf("failed to write CSV record: %v", err)
		}
	}
	return nil
}

func main() {
	rValues := []float64{0.5, 1.25, 2.5, 5.0, 10.0}
	if err := SweepInsulation(rValues, "insulation_sweep.csv"); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
