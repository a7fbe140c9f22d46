package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/urbansim/transitflow/capacity"
	"github.com/urbansim/transitflow/sim"
)

// EnvConfigPath names the environment variable that overrides the config
// file location. A .env file in the working directory is honored.
const EnvConfigPath = "TRANSITFLOW_CONFIG"

// ErrNotFound indicates no configuration file exists at any candidate path.
var ErrNotFound = errors.New("config: no configuration file found")

// defaultPaths are probed in order when neither an explicit path nor the
// environment variable is set.
var defaultPaths = []string{"transitflow.yml", "config.yml"}

// Load reads, defaults and validates the configuration. Candidate locations,
// in order: explicit paths passed by the caller, the EnvConfigPath variable
// (after an optional .env overlay), then defaultPaths.
func Load(paths ...string) (*Config, error) {
	// Missing .env is fine; it is an overlay, not a requirement.
	_ = godotenv.Load()

	if env := os.Getenv(EnvConfigPath); env != "" {
		paths = append(paths, env)
	}
	paths = append(paths, defaultPaths...)

	var (
		data []byte
		err  error
	)
	found := false
	for _, p := range paths {
		if p == "" {
			continue
		}
		if data, err = os.ReadFile(p); err == nil {
			found = true

			break
		}
	}
	if !found {
		return nil, fmt.Errorf("%w: tried %v", ErrNotFound, paths)
	}

	var cfg Config
	if err = yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("config: parse: %w", err)
	}
	cfg.applyDefaults()

	v := validator.New()
	if err = v.Struct(cfg.Simulation); err != nil {
		return nil, fmt.Errorf("config: validate simulation: %w", err)
	}
	if err = v.Struct(cfg.Capacity); err != nil {
		return nil, fmt.Errorf("config: validate capacity: %w", err)
	}
	for i, row := range cfg.Demand {
		if err = v.Struct(row); err != nil {
			return nil, fmt.Errorf("config: validate demand[%d]: %w", i, err)
		}
	}

	return &cfg, nil
}

// applyDefaults fills zero values before validation so a minimal file works.
func (c *Config) applyDefaults() {
	if c.Simulation.WindowMinutes == 0 {
		c.Simulation.WindowMinutes = sim.DefaultWindowMinutes
	}
	if c.Capacity.BasePerMinute == 0 {
		c.Capacity.BasePerMinute = capacity.DefaultBasePerMinute
	}
	if c.Capacity.VehicleCapacity == 0 {
		c.Capacity.VehicleCapacity = capacity.DefaultVehicleCapacity
	}
}

// CapacityModel builds the capacity model this configuration describes.
func (c *Config) CapacityModel() *capacity.Model {
	return capacity.NewModel(
		capacity.WithBasePerMinute(c.Capacity.BasePerMinute),
		capacity.WithVehicleCapacity(c.Capacity.VehicleCapacity),
	)
}

// SimOptions translates the simulation section into simulator options.
func (c *Config) SimOptions() []sim.Option {
	opts := []sim.Option{sim.WithWindowMinutes(c.Simulation.WindowMinutes)}
	if c.Simulation.Seed != 0 {
		opts = append(opts, sim.WithSeed(c.Simulation.Seed))
	}

	return opts
}

// DemandRows converts the demand section into simulator input.
func (c *Config) DemandRows() []sim.Demand {
	out := make([]sim.Demand, len(c.Demand))
	for i, row := range c.Demand {
		out[i] = sim.Demand{Origin: row.Origin, Dest: row.Dest, RatePerHour: row.RatePerHour}
	}

	return out
}
