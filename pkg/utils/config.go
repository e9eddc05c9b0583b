package utils

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	geomath "github.com/oxygene76/boundedplane/pkg/geometry/math"
	"github.com/oxygene76/boundedplane/pkg/geometry/plane"
)

// EnvPrefix is prepended to environment overrides, e.g. PLANECTL_PLANE_WIDTH
const EnvPrefix = "PLANECTL"

// Config represents the planectl configuration
type Config struct {
	Plane PlaneConfig `yaml:"plane" mapstructure:"plane"`
	Log   LogConfig   `yaml:"log" mapstructure:"log"`
}

// PlaneConfig describes a bounded plane by center, in-plane axes and extent
type PlaneConfig struct {
	Center    []float64 `yaml:"center" mapstructure:"center"`
	AxisU     []float64 `yaml:"axis_u" mapstructure:"axis_u"`
	AxisV     []float64 `yaml:"axis_v" mapstructure:"axis_v"`
	Width     float64   `yaml:"width" mapstructure:"width"`
	Height    float64   `yaml:"height" mapstructure:"height"`
	Tolerance float64   `yaml:"tolerance" mapstructure:"tolerance"`
}

// LogConfig contains logging configuration
type LogConfig struct {
	Level    string `yaml:"level" mapstructure:"level"`
	Encoding string `yaml:"encoding" mapstructure:"encoding"`
}

// DefaultConfig returns the demonstration plane: centred at (0,0,1),
// spanned by the global X and Y axes, 5 x 5 units.
func DefaultConfig() *Config {
	return &Config{
		Plane: PlaneConfig{
			Center:    []float64{0, 0, 1},
			AxisU:     []float64{1, 0, 0},
			AxisV:     []float64{0, 1, 0},
			Width:     5,
			Height:    5,
			Tolerance: plane.DefaultTolerance,
		},
		Log: LogConfig{
			Level:    "info",
			Encoding: "console",
		},
	}
}

// DefaultConfigPath returns $HOME/.planectl/config.yaml
func DefaultConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(homeDir, ".planectl", "config.yaml"), nil
}

// LoadConfig reads configuration from path, or from the default search
// paths when path is empty. A missing config file is not an error: the
// defaults (plus environment overrides) are used instead.
func LoadConfig(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v, DefaultConfig())

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		if homeDir, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(homeDir, ".planectl"))
		}
		v.AddConfigPath(".")
		v.AddConfigPath("./configs")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok || path != "" {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &config, nil
}

// SaveConfig writes configuration as YAML, creating parent directories
func SaveConfig(path string, config *Config) error {
	if err := validateConfig(config); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

func setDefaults(v *viper.Viper, config *Config) {
	v.SetDefault("plane.center", config.Plane.Center)
	v.SetDefault("plane.axis_u", config.Plane.AxisU)
	v.SetDefault("plane.axis_v", config.Plane.AxisV)
	v.SetDefault("plane.width", config.Plane.Width)
	v.SetDefault("plane.height", config.Plane.Height)
	v.SetDefault("plane.tolerance", config.Plane.Tolerance)
	v.SetDefault("log.level", config.Log.Level)
	v.SetDefault("log.encoding", config.Log.Encoding)
}

// validateConfig checks the shape of the configuration. Geometric validity
// (parallel axes, bounds) is left to the plane constructor.
func validateConfig(config *Config) error {
	vectors := map[string][]float64{
		"plane.center": config.Plane.Center,
		"plane.axis_u": config.Plane.AxisU,
		"plane.axis_v": config.Plane.AxisV,
	}
	for key, value := range vectors {
		if len(value) != 3 {
			return fmt.Errorf("%s must have 3 components, got %d", key, len(value))
		}
	}

	if _, err := ParseLevel(config.Log.Level); err != nil {
		return err
	}

	switch config.Log.Encoding {
	case "", "console", "json":
	default:
		return fmt.Errorf("invalid log encoding: %s", config.Log.Encoding)
	}

	return nil
}

// Build constructs the configured plane
func (c PlaneConfig) Build() (*plane.Plane, error) {
	if len(c.Center) != 3 || len(c.AxisU) != 3 || len(c.AxisV) != 3 {
		return nil, fmt.Errorf("plane vectors must have 3 components")
	}

	bounds, err := plane.NewRectangularBounds(c.Width, c.Height)
	if err != nil {
		return nil, err
	}

	return plane.New(
		geomath.Point3{X: c.Center[0], Y: c.Center[1], Z: c.Center[2]},
		geomath.Vector3{X: c.AxisU[0], Y: c.AxisU[1], Z: c.AxisU[2]},
		geomath.Vector3{X: c.AxisV[0], Y: c.AxisV[1], Z: c.AxisV[2]},
		bounds,
		plane.WithTolerance(c.Tolerance),
	)
}
