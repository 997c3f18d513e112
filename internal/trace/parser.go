package trace

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"time"
)

// TemperatureScale is the fixed integer factor sensor logs apply to
// temperatures: a logged 2150 is 21.50 C.
const TemperatureScale = 100

// logRecord is one line of a sensor log. A record carries one or both
// readings; unknown fields are ignored so richer logs still parse.
type logRecord struct {
	Time     string   `json:"time"`
	SensorID string   `json:"id"`
	Temp     *int64   `json:"temp"`      // scaled by TemperatureScale
	ValvePos *float64 `json:"valve_pos"` // raw percentage
}

// ParseLog reads a JSON-lines sensor log and extracts the readings the
// aligner consumes, in log order. Blank lines are skipped; a malformed
// line or timestamp fails with the offending line number.
func ParseLog(r io.Reader) ([]Reading, error) {
	var readings []Reading

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	line := 0
	for sc.Scan() {
		line++
		raw := strings.TrimSpace(sc.Text())
		if raw == "" {
			continue
		}

		var rec logRecord
		if err := json.Unmarshal([]byte(raw), &rec); err != nil {
			return nil, fmt.Errorf("log line %d: %w", line, err)
		}
		ts, err := parseTimestamp(rec.Time)
		if err != nil {
			return nil, fmt.Errorf("log line %d: %w", line, err)
		}

		if rec.Temp != nil {
			readings = append(readings, Reading{
				Timestamp: ts,
				SensorID:  rec.SensorID,
				Kind:      KindTemperature,
				Value:     float64(*rec.Temp) / TemperatureScale,
			})
		}
		if rec.ValvePos != nil {
			readings = append(readings, Reading{
				Timestamp: ts,
				SensorID:  rec.SensorID,
				Kind:      KindValvePercent,
				Value:     *rec.ValvePos,
			})
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read log: %w", err)
	}
	return readings, nil
}

func ParseLogFile(path string) ([]Reading, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open log: %w", err)
	}
	defer f.Close()
	return ParseLog(f)
}

func parseTimestamp(s string) (time.Time, error) {
	if ts, err := time.Parse(time.RFC3339, s); err == nil {
		return ts, nil
	}
	// Some exporters drop the zone; read those as UTC.
	ts, err := time.Parse("2006-01-02T15:04:05", s)
	if err != nil {
		return time.Time{}, fmt.Errorf("timestamp %q: %w", s, err)
	}
	return ts.UTC(), nil
}
