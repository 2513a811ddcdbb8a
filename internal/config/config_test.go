package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_DefaultValues(t *testing.T) {
	t.Cleanup(viper.Reset)

	require.NoError(t, Load(""))

	assert.Equal(t, "info", GetString("logLevel"))
	assert.Equal(t, 1024, GetInt("window.width"))
	assert.Equal(t, 640, GetInt("window.height"))
	assert.Equal(t, "citydrive", GetString("window.title"))
	assert.True(t, GetBool("window.vsync"))

	assert.Equal(t, uint64(0), GetUint64("seed"))

	assert.Equal(t, 60.0, GetFloat("camera.fov"))
	assert.Equal(t, 0.5, GetFloat("camera.near"))
	assert.Equal(t, 1200.0, GetFloat("camera.far"))

	assert.Equal(t, 80.0, GetFloat("physics.maxSpeed"))
	assert.Equal(t, 30.0, GetFloat("physics.acceleration"))
	assert.Equal(t, 40.0, GetFloat("physics.braking"))
	assert.Equal(t, 15.0, GetFloat("physics.friction"))
	assert.Equal(t, 2.0, GetFloat("physics.turnSpeed"))

	assert.Equal(t, 3, GetInt("city.gridRadius"))
	assert.Equal(t, 80.0, GetFloat("city.blockSize"))
	assert.Equal(t, 15.0, GetFloat("city.roadWidth"))
	assert.Equal(t, 600.0, GetFloat("city.roadLength"))
	assert.Equal(t, 4.0, GetFloat("city.windowSpacing"))
}

func TestLoad_WithConfigFile(t *testing.T) {
	t.Cleanup(viper.Reset)

	dir := t.TempDir()
	cfg := `{
		"logLevel": "debug",
		"seed": 42,
		"window": { "width": 1920, "vsync": false },
		"physics": { "maxSpeed": 120 }
	}`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "citydrive.cfg.json"), []byte(cfg), 0644))

	require.NoError(t, Load(dir))

	assert.Equal(t, "debug", GetString("logLevel"))
	assert.Equal(t, uint64(42), GetUint64("seed"))
	assert.Equal(t, 1920, GetInt("window.width"))
	assert.False(t, GetBool("window.vsync"))
	assert.Equal(t, 120.0, GetFloat("physics.maxSpeed"))

	// Untouched keys keep their defaults.
	assert.Equal(t, 640, GetInt("window.height"))
	assert.Equal(t, 30.0, GetFloat("physics.acceleration"))
}

func TestLoad_MissingFileFallsBackToDefaults(t *testing.T) {
	t.Cleanup(viper.Reset)

	require.NoError(t, Load(t.TempDir()))
	assert.Equal(t, 1024, GetInt("window.width"))
}
