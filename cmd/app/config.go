package app

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	kjson "github.com/knadh/koanf/parsers/json"
	kyaml "github.com/knadh/koanf/parsers/yaml"
	env "github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"

	"github.com/hearthlab/roomsim/internal/publish/mqttpub"
	"github.com/hearthlab/roomsim/internal/room"
	"github.com/hearthlab/roomsim/internal/sim"
)

const envPrefix = "ROOMSIM_"

type Config struct {
	Room       RoomConfig       `koanf:"room"`
	Simulation SimulationConfig `koanf:"simulation"`
	Radiator   RadiatorConfig   `koanf:"radiator"`
	Trace      TraceConfig      `koanf:"trace"`
	Report     ReportConfig     `koanf:"report"`
	Publish    PublishConfig    `koanf:"publish"`
}

type RoomConfig struct {
	Width  float64 `koanf:"width"`
	Length float64 `koanf:"length"`
	Height float64 `koanf:"height"`

	// Exactly one of the two must be positive.
	RValue            float64 `koanf:"r_value"`
	HeatLossParameter float64 `koanf:"heat_loss_parameter"`
}

type SimulationConfig struct {
	StartTemperature   float64 `koanf:"start_temperature"`
	OutsideTemperature float64 `koanf:"outside_temperature"`
	HorizonSeconds     int     `koanf:"horizon_seconds"`
	SecondaryMass      bool    `koanf:"secondary_mass"`
	CheckFinite        bool    `koanf:"check_finite"`
}

type RadiatorConfig struct {
	Drive string `koanf:"drive"` // "off" | "schedule" | "trace_temperature" | "trace_valve"

	// Schedule drive
	Temperature float64 `koanf:"temperature"`
	OnSeconds   int     `koanf:"on_seconds"`
}

type TraceConfig struct {
	LogPath  string `koanf:"log_path"`
	SensorID string `koanf:"sensor_id"`
}

type ReportConfig struct {
	Plot              bool   `koanf:"plot"`
	TableEverySeconds int    `koanf:"table_every_seconds"`
	CSVPath           string `koanf:"csv_path"`
}

type PublishConfig struct {
	Enabled       bool   `koanf:"enabled"`
	BrokerURL     string `koanf:"broker_url"`
	ClientID      string `koanf:"client_id"`
	DeviceID      string `koanf:"device_id"`
	BaseTopic     string `koanf:"base_topic"`
	QoS           int    `koanf:"qos"`
	RetainSummary bool   `koanf:"retain_summary"`
	TraceStride   int    `koanf:"trace_stride"`
	Username      string `koanf:"username"`
	Password      string `koanf:"password"`
}

// Defaults is the reference scenario: a poorly insulated 3x5 m room, the
// radiator at 60 C for the first 20 minutes of a four-hour horizon.
func Defaults() Config {
	return Config{
		Room: RoomConfig{
			Width:  3.0,
			Length: 5.0,
			Height: 2.3,
			RValue: 1.25,
		},
		Simulation: SimulationConfig{
			StartTemperature:   20.0,
			OutsideTemperature: 0.0,
			HorizonSeconds:     4 * 60 * 60,
		},
		Radiator: RadiatorConfig{
			Drive:       "schedule",
			Temperature: 60.0,
			OnSeconds:   20 * 60,
		},
		Report: ReportConfig{
			Plot:              true,
			TableEverySeconds: 900,
		},
		Publish: PublishConfig{
			DeviceID:    "default",
			TraceStride: 60,
		},
	}
}

// LoadConfig layers defaults, an optional config file and ROOMSIM_*
// environment overrides. A missing config file is not an error.
func LoadConfig(path string) (Config, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(Defaults(), "koanf"), nil); err != nil {
		return Config{}, fmt.Errorf("load defaults: %w", err)
	}

	if path != "" {
		parser, err := parserFor(path)
		if err != nil {
			return Config{}, err
		}
		if err := k.Load(file.Provider(path), parser); err != nil && !errors.Is(err, os.ErrNotExist) {
			return Config{}, fmt.Errorf("load config: %w", err)
		}
	}

	if err := k.Load(env.Provider(".", env.Opt{
		Prefix: envPrefix,
		TransformFunc: func(key, value string) (string, any) {
			return envKeyTransform(strings.TrimPrefix(key, envPrefix)), value
		},
	}), nil); err != nil {
		return Config{}, fmt.Errorf("load env: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return cfg, nil
}

func parserFor(path string) (koanf.Parser, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return kyaml.Parser(), nil
	case ".json":
		return kjson.Parser(), nil
	default:
		return nil, fmt.Errorf("unsupported config extension %q", filepath.Ext(path))
	}
}

var envSections = []string{"room", "simulation", "radiator", "trace", "report", "publish"}

// envKeyTransform maps ROOMSIM_ROOM_R_VALUE style keys onto the config
// tree ("room.r_value"). Keys outside the known sections pass through
// lowercased.
func envKeyTransform(key string) string {
	key = strings.ToLower(strings.TrimSpace(key))
	for _, sec := range envSections {
		if strings.HasPrefix(key, sec+"_") && len(key) > len(sec)+1 {
			return sec + "." + key[len(sec)+1:]
		}
	}
	return key
}

// PipelineParams turns the loaded config into a validated run request.
func (c Config) PipelineParams() (sim.Params, error) {
	mode, err := sim.ParseDriveMode(c.Radiator.Drive)
	if err != nil {
		return sim.Params{}, err
	}

	return sim.Params{
		Geometry: room.Geometry{
			Width:  c.Room.Width,
			Length: c.Room.Length,
			Height: c.Room.Height,
		},
		Insulation: room.Insulation{
			RValue:            c.Room.RValue,
			HeatLossParameter: c.Room.HeatLossParameter,
		},
		StartTemp:     c.Simulation.StartTemperature,
		OutsideTemp:   c.Simulation.OutsideTemperature,
		Horizon:       c.Simulation.HorizonSeconds,
		SecondaryMass: c.Simulation.SecondaryMass,
		CheckFinite:   c.Simulation.CheckFinite,
		Mode:          mode,
		Schedule: sim.ScheduleParams{
			RadiatorTemp: c.Radiator.Temperature,
			OnSeconds:    c.Radiator.OnSeconds,
		},
		Trace: sim.TraceParams{
			LogPath:  c.Trace.LogPath,
			SensorID: c.Trace.SensorID,
		},
	}, nil
}

func (c Config) PublisherConfig() mqttpub.Config {
	return mqttpub.Config{
		DeviceID:      c.Publish.DeviceID,
		BrokerURL:     c.Publish.BrokerURL,
		ClientID:      c.Publish.ClientID,
		BaseTopic:     c.Publish.BaseTopic,
		QoS:           byte(c.Publish.QoS),
		RetainSummary: c.Publish.RetainSummary,
		TraceStride:   c.Publish.TraceStride,
		Username:      c.Publish.Username,
		Password:      c.Publish.Password,
	}
}
