package mqttpub

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"

	"github.com/hearthlab/roomsim/internal/ports"
)

type Config struct {
	// Identity
	DeviceID string

	// MQTT connection
	BrokerURL string
	ClientID  string

	// Topics
	BaseTopic string

	// Behavior
	QoS           byte
	RetainSummary bool
	TraceStride   int // seconds between published trace points

	Username string
	Password string
}

// Publisher pushes a completed run to an MQTT broker: the summary on
// <base>/summary and a down-sampled temperature trace on <base>/trace.
type Publisher struct {
	svc ports.SimulationService
	cfg Config

	client mqtt.Client
}

func New(svc ports.SimulationService, cfg Config) (*Publisher, error) {
	// ---- defaults ----

	if cfg.BrokerURL == "" {
		cfg.BrokerURL = "tcp://localhost:1883"
	}

	if cfg.DeviceID == "" {
		return nil, errors.New("mqtt: DeviceID is required")
	}
	if cfg.BaseTopic == "" {
		cfg.BaseTopic = "roomsim/" + cfg.DeviceID
	}
	if cfg.ClientID == "" {
		cfg.ClientID = "roomsim-" + cfg.DeviceID
	}
	if cfg.TraceStride <= 0 {
		cfg.TraceStride = 60
	}
	if cfg.QoS > 1 {
		return nil, errors.New("mqtt: QoS must be 0 or 1")
	}
	return &Publisher{
		svc: svc,
		cfg: cfg,
	}, nil
}

// Run connects, publishes the run once and disconnects. It fails before
// connecting when there is no completed run to publish.
func (p *Publisher) Run(ctx context.Context) error {
	res := p.svc.Result()
	if res == nil {
		return errors.New("mqtt: no completed run to publish")
	}

	if p.client == nil {
		opts := mqtt.NewClientOptions().
			AddBroker(p.cfg.BrokerURL).
			SetClientID(p.cfg.ClientID).
			SetConnectRetry(true).
			SetConnectRetryInterval(2 * time.Second)

		if p.cfg.Username != "" {
			opts.SetUsername(p.cfg.Username)
			opts.SetPassword(p.cfg.Password)
		}

		p.client = mqtt.NewClient(opts)
		tok := p.client.Connect()
		tok.Wait()
		if err := tok.Error(); err != nil {
			return fmt.Errorf("mqtt connect: %w", err)
		}
	}
	defer p.client.Disconnect(250)

	if err := ctx.Err(); err != nil {
		return err
	}

	p.publishSummary()
	p.publishTrace()
	return nil
}

func (p *Publisher) publishSummary() {
	res := p.svc.Result()
	sum := p.svc.Summary()
	dto := summaryDTO{
		FinalTemperature: sum.FinalTemp,
		EnergyInKJ:       sum.EnergyInKJ,
		EnergyOutKJ:      sum.EnergyOutKJ,
		HorizonSeconds:   len(res.RoomTemps),
	}
	b, _ := json.Marshal(dto)
	p.client.Publish(p.topic("summary"), p.cfg.QoS, p.cfg.RetainSummary, b)
}

func (p *Publisher) publishTrace() {
	res := p.svc.Result()
	points := make([]tracePointDTO, 0, len(res.RoomTemps)/p.cfg.TraceStride+1)
	for i := 0; i < len(res.RoomTemps); i += p.cfg.TraceStride {
		points = append(points, tracePointDTO{
			Second:      i,
			Temperature: res.RoomTemps[i],
		})
	}
	b, _ := json.Marshal(points)
	p.client.Publish(p.topic("trace"), p.cfg.QoS, false, b)
}

type summaryDTO struct {
	FinalTemperature float64 `json:"final_temperature"`
	EnergyInKJ       float64 `json:"energy_in_kj"`
	EnergyOutKJ      float64 `json:"energy_out_kj"`
	HorizonSeconds   int     `json:"horizon_seconds"`
}

type tracePointDTO struct {
	Second      int     `json:"second"`
	Temperature float64 `json:"temperature"`
}

func (p *Publisher) topic(suffix string) string {
	return strings.TrimRight(p.cfg.BaseTopic, "/") + "/" + suffix
}
