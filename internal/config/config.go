package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	"github.com/san-kum/beerslab/internal/concentration"
	"github.com/san-kum/beerslab/internal/reactive"
)

const (
	DefaultDt        = 0.04
	DefaultFrameRate = 25
	DefaultLogLevel  = "info"
	DefaultDataDir   = ".beerslab"
)

var ErrInvalid = errors.New("config: invalid config")

var logLevels = []string{"info", "debug", "trace"}

type Config struct {
	DataDir   string      `yaml:"data_dir" env:"BEERSLAB_DATA_DIR"`
	LogLevel  string      `yaml:"log_level" env:"BEERSLAB_LOG_LEVEL"`
	Seed      int64       `yaml:"seed" env:"BEERSLAB_SEED"`
	Dt        float64     `yaml:"dt" env:"BEERSLAB_DT"`
	FrameRate int         `yaml:"frame_rate"`
	Model     ModelConfig `yaml:"model"`
}

// ModelConfig carries the tunable constants of the concentration model.
type ModelConfig struct {
	VolumeMax               float64 `yaml:"volume_max"`
	VolumeDefault           float64 `yaml:"volume_default"`
	SoluteAmountMax         float64 `yaml:"solute_amount_max"`
	FaucetMaxFlowRate       float64 `yaml:"faucet_max_flow_rate"`
	DropperFlowRate         float64 `yaml:"dropper_flow_rate"`
	MaxEvaporationRate      float64 `yaml:"max_evaporation_rate"`
	ShakerMaxDispensingRate float64 `yaml:"shaker_max_dispensing_rate"`
	MaxShakerParticles      int     `yaml:"max_shaker_particles"`
}

func DefaultConfig() *Config {
	return &Config{
		DataDir:   DefaultDataDir,
		LogLevel:  DefaultLogLevel,
		Dt:        DefaultDt,
		FrameRate: DefaultFrameRate,
		Model:     DefaultModelConfig(),
	}
}

func DefaultModelConfig() ModelConfig {
	return ModelConfig{
		VolumeMax:               concentration.VolumeRange.Max,
		VolumeDefault:           concentration.VolumeRange.Default,
		SoluteAmountMax:         concentration.SoluteAmountRange.Max,
		FaucetMaxFlowRate:       concentration.MaxFaucetFlowRate,
		DropperFlowRate:         concentration.DropperFlowRate,
		MaxEvaporationRate:      concentration.MaxEvaporationRate,
		ShakerMaxDispensingRate: concentration.ShakerMaxDispensingRate,
		MaxShakerParticles:      concentration.DefaultMaxParticles,
	}
}

// Load reads a yaml file over the defaults. Fields absent from the file keep
// their default values.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}
	return os.WriteFile(path, data, 0644)
}

// ApplyEnv overrides fields from BEERSLAB_* environment variables. Unset
// variables leave the current value alone.
func (c *Config) ApplyEnv() error {
	if err := env.Parse(c); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

func (c *Config) Validate() error {
	if c.Dt <= 0 {
		return fmt.Errorf("%w: dt must be positive, got %g", ErrInvalid, c.Dt)
	}
	if c.FrameRate <= 0 {
		return fmt.Errorf("%w: frame rate must be positive, got %d", ErrInvalid, c.FrameRate)
	}
	if !validLevel(c.LogLevel) {
		return fmt.Errorf("%w: log level %q (want one of %s)", ErrInvalid, c.LogLevel, strings.Join(logLevels, ", "))
	}
	if err := c.Model.Options().Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	return nil
}

func validLevel(level string) bool {
	level = strings.ToLower(strings.TrimSpace(level))
	for _, l := range logLevels {
		if l == level {
			return true
		}
	}
	return false
}

// Options converts the model section into concentration model options.
// The random source is left unset.
func (m ModelConfig) Options() concentration.Options {
	opts := concentration.DefaultOptions()
	opts.VolumeRange = reactive.Range{Min: 0, Max: m.VolumeMax, Default: m.VolumeDefault}
	opts.SoluteAmountRange = reactive.Range{Min: 0, Max: m.SoluteAmountMax, Default: 0}
	opts.FaucetMaxFlowRate = m.FaucetMaxFlowRate
	opts.DropperFlowRate = m.DropperFlowRate
	opts.MaxEvaporationRate = m.MaxEvaporationRate
	opts.ShakerMaxDispensingRate = m.ShakerMaxDispensingRate
	opts.MaxShakerParticles = m.MaxShakerParticles
	return opts
}
