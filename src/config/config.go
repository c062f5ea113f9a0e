package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	DefaultMinFloor     = 0
	DefaultMaxFloor     = 20
	DefaultNumElevators = 2
	DefaultCapacity     = 10
	DefaultStepDuration = 500 * time.Millisecond
	DefaultLogLevel     = "info"
)

// Scoring weights used by the scheduler.
const (
	ProximityWeight = 0.5
	DirectionWeight = 0.3
	LoadWeight      = 0.2
	MaxTermScore    = 10.0
)

// FullFleetPolicy decides what the scheduler does when every car is at capacity.
type FullFleetPolicy string

const (
	LeastPending FullFleetPolicy = "least-pending"
	Reject       FullFleetPolicy = "reject"
)

type Config struct {
	MinFloor        int             `yaml:"MinFloor"`
	MaxFloor        int             `yaml:"MaxFloor"`
	StartFloor      int             `yaml:"StartFloor"`
	NumElevators    int             `yaml:"NumElevators"`
	Capacity        int             `yaml:"Capacity"`
	StepDuration    time.Duration   `yaml:"StepDuration"`
	FullFleetPolicy FullFleetPolicy `yaml:"FullFleetPolicy"`
	LogLevel        string          `yaml:"LogLevel"`
}

func Default() Config {
	return Config{
		MinFloor:        DefaultMinFloor,
		MaxFloor:        DefaultMaxFloor,
		StartFloor:      DefaultMinFloor,
		NumElevators:    DefaultNumElevators,
		Capacity:        DefaultCapacity,
		StepDuration:    DefaultStepDuration,
		FullFleetPolicy: LeastPending,
		LogLevel:        DefaultLogLevel,
	}
}

// Load decodes a yaml file on top of the defaults. Keys missing from the file keep their default.
func Load(path string) (Config, error) {
	c := Default()
	file, err := os.Open(path)
	if err != nil {
		return c, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	if err := yaml.NewDecoder(file).Decode(&c); err != nil {
		return c, fmt.Errorf("decode config %s: %w", path, err)
	}
	return c, nil
}

// Span is the largest distance a car can be from a request.
func (c Config) Span() int {
	return c.MaxFloor - c.MinFloor
}

func (c Config) InRange(floor int) bool {
	return floor >= c.MinFloor && floor <= c.MaxFloor
}

func (c Config) Validate() error {
	var errs []error
	if c.MinFloor >= c.MaxFloor {
		errs = append(errs, fmt.Errorf("MinFloor (%d) must be below MaxFloor (%d)", c.MinFloor, c.MaxFloor))
	}
	if !c.InRange(c.StartFloor) {
		errs = append(errs, fmt.Errorf("StartFloor %d outside [%d, %d]", c.StartFloor, c.MinFloor, c.MaxFloor))
	}
	if c.NumElevators < 0 {
		errs = append(errs, fmt.Errorf("NumElevators must not be negative, got %d", c.NumElevators))
	}
	if c.Capacity <= 0 {
		errs = append(errs, fmt.Errorf("Capacity must be positive, got %d", c.Capacity))
	}
	if c.StepDuration < 0 {
		errs = append(errs, fmt.Errorf("StepDuration must not be negative, got %s", c.StepDuration))
	}
	switch c.FullFleetPolicy {
	case LeastPending, Reject:
	default:
		errs = append(errs, fmt.Errorf("unknown FullFleetPolicy %q", c.FullFleetPolicy))
	}
	if len(errs) > 0 {
		return fmt.Errorf("invalid config: %w", errors.Join(errs...))
	}
	return nil
}
