package sim

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hearthlab/roomsim/internal/room"
	"github.com/hearthlab/roomsim/internal/trace"
)

func baseParams() Params {
	return Params{
		Geometry:    room.Geometry{Width: 3.0, Length: 5.0, Height: 2.3},
		Insulation:  room.Insulation{RValue: 1.25},
		StartTemp:   20,
		OutsideTemp: 0,
		Horizon:     600,
		Mode:        DriveModeOff,
	}
}

func TestNewValidation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Params)
		want   error
	}{
		{
			name:   "Valid",
			mutate: func(*Params) {},
			want:   nil,
		},
		{
			name:   "Bad geometry",
			mutate: func(p *Params) { p.Geometry.Width = 0 },
			want:   room.ErrNonPositiveDimension,
		},
		{
			name:   "Bad insulation",
			mutate: func(p *Params) { p.Insulation = room.Insulation{} },
			want:   room.ErrInvalidInsulation,
		},
		{
			name:   "Bad horizon",
			mutate: func(p *Params) { p.Horizon = -1 },
			want:   room.ErrNonPositiveHorizon,
		},
		{
			name:   "Unknown drive mode",
			mutate: func(p *Params) { p.Mode = DriveModeUnknown },
			want:   ErrUnknownDriveMode,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			params := baseParams()
			tt.mutate(&params)
			_, err := New(params)
			if tt.want == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.want)
			}
		})
	}
}

func TestRunSchedule(t *testing.T) {
	params := baseParams()
	params.Mode = DriveModeSchedule
	params.Schedule = ScheduleParams{RadiatorTemp: 60, OnSeconds: 600}

	p, err := New(params)
	require.NoError(t, err)

	res, err := p.Run()
	require.NoError(t, err)
	require.Len(t, res.RoomTemps, 600)
	assert.Greater(t, res.FinalTemp, params.StartTemp)
	assert.Positive(t, res.EnergyIn)
	assert.Negative(t, res.EnergyOut)

	assert.Same(t, res, p.Result())
	assert.Equal(t, res.FinalTemp, p.Summary().FinalTemp)
}

func tracedReadings(horizon int) []trace.Reading {
	t0 := time.Date(2016, 2, 3, 12, 0, 0, 0, time.UTC)
	// Sparse readings every 30 s: valve fully open, temperature rising.
	var readings []trace.Reading
	for off := 0; off < horizon; off += 30 {
		ts := t0.Add(time.Duration(off) * time.Second)
		readings = append(readings,
			trace.Reading{Timestamp: ts, SensorID: "rad-living", Kind: trace.KindValvePercent, Value: 100},
			trace.Reading{Timestamp: ts, SensorID: "rad-living", Kind: trace.KindTemperature, Value: 20},
		)
	}
	return readings
}

func TestRunTraceValve(t *testing.T) {
	params := baseParams()
	params.Mode = DriveModeTraceValve
	params.Trace = TraceParams{SensorID: "rad-living", Readings: tracedReadings(600)}

	p, err := New(params)
	require.NoError(t, err)

	res, err := p.Run()
	require.NoError(t, err)
	// A fully open valve reads as a 120 C radiator, so the room warms.
	assert.Greater(t, res.FinalTemp, params.StartTemp)
}

func TestRunTraceTemperature(t *testing.T) {
	params := baseParams()
	params.Mode = DriveModeTraceTemperature
	params.Trace = TraceParams{SensorID: "rad-living", Readings: tracedReadings(600)}

	p, err := New(params)
	require.NoError(t, err)

	res, err := p.Run()
	require.NoError(t, err)
	// The trace holds the radiator at the room's start temperature, so
	// only the envelope loss acts.
	assert.Less(t, res.FinalTemp, params.StartTemp)
}

func TestRunTraceGapAtOrigin(t *testing.T) {
	t0 := time.Date(2016, 2, 3, 12, 0, 0, 0, time.UTC)
	readings := []trace.Reading{
		{Timestamp: t0, SensorID: "rad-living", Kind: trace.KindValvePercent, Value: 50},
		{Timestamp: t0.Add(5 * time.Second), SensorID: "rad-living", Kind: trace.KindTemperature, Value: 21},
	}

	params := baseParams()
	params.Horizon = 60
	params.Mode = DriveModeTraceTemperature
	params.Trace = TraceParams{SensorID: "rad-living", Readings: readings}

	p, err := New(params)
	require.NoError(t, err)

	_, err = p.Run()
	assert.ErrorIs(t, err, trace.ErrGapAtOrigin)
	// A failed run keeps no partial history.
	assert.Nil(t, p.Result())
	assert.Zero(t, p.Summary())
}

func TestRunTraceMissingSensor(t *testing.T) {
	params := baseParams()
	params.Mode = DriveModeTraceValve
	params.Trace = TraceParams{SensorID: "rad-kitchen", Readings: tracedReadings(600)}

	p, err := New(params)
	require.NoError(t, err)

	_, err = p.Run()
	assert.ErrorIs(t, err, trace.ErrNoSensorRecords)
}

func TestParseDriveMode(t *testing.T) {
	for _, mode := range []DriveMode{DriveModeOff, DriveModeSchedule, DriveModeTraceTemperature, DriveModeTraceValve} {
		got, err := ParseDriveMode(mode.String())
		require.NoError(t, err)
		assert.Equal(t, mode, got)
	}
	_, err := ParseDriveMode("pid")
	assert.Error(t, err)
}
