package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/hearthlab/roomsim/internal/room"
)

func sampleResult() *room.Result {
	return &room.Result{
		RoomTemps: []float64{20, 20.5, 21, 21.4, 21.7, 21.9},
		HeatIn:    []float64{1000, 990, 980, 970, 960, 950},
		HeatOut:   []float64{-10, -11, -12, -13, -14, -15},
		FinalTemp: 21.9,
		EnergyIn:  5850,
		EnergyOut: -75,
	}
}

func TestSummarize(t *testing.T) {
	s := Summarize(sampleResult())
	if s.FinalTemp != 21.9 {
		t.Errorf("FinalTemp = %v, want 21.9", s.FinalTemp)
	}
	if s.EnergyInKJ != 5.85 {
		t.Errorf("EnergyInKJ = %v, want 5.85", s.EnergyInKJ)
	}
	if s.EnergyOutKJ != -0.075 {
		t.Errorf("EnergyOutKJ = %v, want -0.075", s.EnergyOutKJ)
	}

	out := s.String()
	for _, want := range []string{"Final Temp: 21.90 C", "Energy Use: 5.85 kJ", "Energy Loss: -0.07 kJ"} {
		if !strings.Contains(out, want) {
			t.Errorf("summary %q missing %q", out, want)
		}
	}
}

func TestWriteTable(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteTable(&buf, sampleResult(), 2); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	// Header plus seconds 0, 2 and 4.
	if len(lines) != 4 {
		t.Fatalf("got %d lines, want 4:\n%s", len(lines), buf.String())
	}
	if !strings.Contains(lines[1], "20.00") || !strings.Contains(lines[1], "1000.00") {
		t.Errorf("first row %q missing second-0 values", lines[1])
	}
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteCSV(&buf, sampleResult()); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 7 {
		t.Fatalf("got %d lines, want header plus 6 rows", len(lines))
	}
	if lines[0] != "second,room_temp,heat_in,heat_out" {
		t.Errorf("unexpected header %q", lines[0])
	}
	if !strings.HasPrefix(lines[1], "0,20.0000,1000.0000,") {
		t.Errorf("unexpected first row %q", lines[1])
	}
}

func TestTemperaturePlot(t *testing.T) {
	out := TemperaturePlot(sampleResult(), 40, 5)
	if !strings.Contains(out, "room temperature [C]") {
		t.Errorf("plot missing caption:\n%s", out)
	}
}
