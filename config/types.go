// Package config loads and validates the runtime configuration for capacity
// derivation and simulation runs from a YAML file, with an optional .env
// overlay for the config path.
package config

// SimulationConfig tunes the passenger simulator.
type SimulationConfig struct {
	// WindowMinutes is the simulation window length.
	WindowMinutes int `yaml:"windowMinutes" validate:"gte=1"`

	// Seed fixes the demand generator; 0 means time-seeded.
	Seed int64 `yaml:"seed"`

	// SpeedKmh is the assumed cruising speed for the A* geographic
	// heuristic; 0 keeps the engine default.
	SpeedKmh float64 `yaml:"speedKmh" validate:"gte=0"`
}

// CapacityConfig tunes the capacity model.
type CapacityConfig struct {
	BasePerMinute   int `yaml:"basePerMinute" validate:"gt=0"`
	VehicleCapacity int `yaml:"vehicleCapacity" validate:"gt=0"`
}

// DemandRow is one demand tuple in the configuration file.
type DemandRow struct {
	Origin      string  `yaml:"origin" validate:"required"`
	Dest        string  `yaml:"dest" validate:"required"`
	RatePerHour float64 `yaml:"ratePerHour" validate:"gte=0"`
}

// Config is the root configuration structure.
type Config struct {
	Simulation SimulationConfig `yaml:"simulation"`
	Capacity   CapacityConfig   `yaml:"capacity"`
	Demand     []DemandRow      `yaml:"demand"`
}
