package trace

import "errors"

var (
	ErrEmptyTrace         = errors.New("sensor trace contains no readings")
	ErrNoSensorRecords    = errors.New("no readings of a required kind for the selected sensor")
	ErrGapAtOrigin        = errors.New("aligned series has no reading to carry forward at its start")
	ErrNonPositiveHorizon = errors.New("horizon must be a positive number of seconds")
)
