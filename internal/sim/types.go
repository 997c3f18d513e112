package sim

import "fmt"

// DriveMode is an integer enum selecting the radiator's driving signal.
type DriveMode int

const (
	DriveModeUnknown DriveMode = iota
	DriveModeOff
	DriveModeSchedule
	DriveModeTraceTemperature
	DriveModeTraceValve
)

func (m DriveMode) Valid() bool {
	return m == DriveModeOff || m == DriveModeSchedule ||
		m == DriveModeTraceTemperature || m == DriveModeTraceValve
}

func (m DriveMode) String() string {
	switch m {
	case DriveModeOff:
		return "off"
	case DriveModeSchedule:
		return "schedule"
	case DriveModeTraceTemperature:
		return "trace_temperature"
	case DriveModeTraceValve:
		return "trace_valve"
	default:
		return "unknown"
	}
}

// ParseDriveMode is handy for config files / env vars.
func ParseDriveMode(s string) (DriveMode, error) {
	switch s {
	case "off":
		return DriveModeOff, nil
	case "schedule":
		return DriveModeSchedule, nil
	case "trace_temperature":
		return DriveModeTraceTemperature, nil
	case "trace_valve":
		return DriveModeTraceValve, nil
	default:
		return DriveModeUnknown, fmt.Errorf("invalid drive mode: %q", s)
	}
}
