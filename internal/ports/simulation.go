package ports

import (
	"github.com/hearthlab/roomsim/internal/report"
	"github.com/hearthlab/roomsim/internal/room"
)

// SimulationService is the read-side port publishers (MQTT/CSV/etc) use
// to reach a completed run.
type SimulationService interface {
	Result() *room.Result
	Summary() report.Summary
}
