package config

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"
)

// Load sets default values and, when configDir is non-empty, merges
// citydrive.cfg.json from that directory. A missing file is fine; defaults
// carry the demo.
func Load(configDir string) error {
	viper.SetDefault("logLevel", "info")

	viper.SetDefault("window.width", 1024)
	viper.SetDefault("window.height", 640)
	viper.SetDefault("window.title", "citydrive")
	viper.SetDefault("window.vsync", true)

	// 0 seeds from the clock at startup.
	viper.SetDefault("seed", 0)

	viper.SetDefault("camera.fov", 60.0)
	viper.SetDefault("camera.near", 0.5)
	viper.SetDefault("camera.far", 1200.0)

	viper.SetDefault("physics.maxSpeed", 80.0)
	viper.SetDefault("physics.acceleration", 30.0)
	viper.SetDefault("physics.braking", 40.0)
	viper.SetDefault("physics.friction", 15.0)
	viper.SetDefault("physics.turnSpeed", 2.0)

	viper.SetDefault("city.gridRadius", 3)
	viper.SetDefault("city.blockSize", 80.0)
	viper.SetDefault("city.roadWidth", 15.0)
	viper.SetDefault("city.roadLength", 600.0)
	viper.SetDefault("city.windowSpacing", 4.0)

	if configDir == "" {
		return nil
	}

	viper.SetConfigName("citydrive.cfg.json")
	viper.AddConfigPath(configDir)
	viper.SetConfigType("json")

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("read config: %w", err)
	}
	return nil
}

// GetString returns a string config value.
func GetString(key string) string {
	return viper.GetString(key)
}

// GetInt returns an int config value.
func GetInt(key string) int {
	return viper.GetInt(key)
}

// GetFloat returns a float64 config value.
func GetFloat(key string) float64 {
	return viper.GetFloat64(key)
}

// GetBool returns a bool config value.
func GetBool(key string) bool {
	return viper.GetBool(key)
}

// GetUint64 returns a uint64 config value.
func GetUint64(key string) uint64 {
	return viper.GetUint64(key)
}
