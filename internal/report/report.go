// Package report renders a completed run: the closing summary, a
// per-minute table of the history arrays, a terminal plot and a CSV
// export. Nothing here feeds back into the simulation.
package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"github.com/guptarohit/asciigraph"

	"github.com/hearthlab/roomsim/internal/room"
)

// Summary are the run's closing scalars.
type Summary struct {
	FinalTemp   float64 `json:"final_temperature"` // [C]
	EnergyInKJ  float64 `json:"energy_in_kj"`
	EnergyOutKJ float64 `json:"energy_out_kj"`
}

func Summarize(res *room.Result) Summary {
	return Summary{
		FinalTemp:   res.FinalTemp,
		EnergyInKJ:  res.EnergyIn / 1000.0,
		EnergyOutKJ: res.EnergyOut / 1000.0,
	}
}

func (s Summary) String() string {
	return fmt.Sprintf("Final Temp: %.2f C\nEnergy Use: %.2f kJ\nEnergy Loss: %.2f kJ",
		s.FinalTemp, s.EnergyInKJ, s.EnergyOutKJ)
}

// WriteTable writes one row per `every` seconds of history: elapsed
// minutes, room temperature and the two heat flows at that second.
func WriteTable(w io.Writer, res *room.Result, every int) error {
	if every <= 0 {
		every = 60
	}
	tw := tabwriter.NewWriter(w, 0, 8, 2, ' ', 0)
	fmt.Fprintln(tw, "min\tT [C]\tQin [W]\tQout [W]")
	for i := 0; i < len(res.RoomTemps); i += every {
		fmt.Fprintf(tw, "%d\t%.2f\t%.2f\t%.2f\n",
			i/60, res.RoomTemps[i], res.HeatIn[i], res.HeatOut[i])
	}
	return tw.Flush()
}

// TemperaturePlot renders the room temperature history as an ASCII graph
// sized for a terminal.
func TemperaturePlot(res *room.Result, width, height int) string {
	if width <= 0 {
		width = 80
	}
	if height <= 0 {
		height = 10
	}
	return asciigraph.Plot(res.RoomTemps,
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.Caption("room temperature [C]"),
	)
}

// WriteCSV exports the full per-second history.
func WriteCSV(w io.Writer, res *room.Result) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write([]string{"second", "room_temp", "heat_in", "heat_out"}); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for i := range res.RoomTemps {
		rec := []string{
			strconv.Itoa(i),
			strconv.FormatFloat(res.RoomTemps[i], 'f', 4, 64),
			strconv.FormatFloat(res.HeatIn[i], 'f', 4, 64),
			strconv.FormatFloat(res.HeatOut[i], 'f', 4, 64),
		}
		if err := cw.Write(rec); err != nil {
			return fmt.Errorf("write csv record: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}
