package config

import (
	_ "embed"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

type Config struct {
	Database DatabaseConfig
	Detector DetectorConfig
	Tracking TrackingConfig
}

type DatabaseConfig struct {
	Path string // SQLite database file (e.g., faces.db)
}

// DetectorConfig holds the pigo cascade parameters. Defaults come from the
// embedded defaults.yaml; the cascade file itself always comes from the
// environment since it ships outside the binary.
type DetectorConfig struct {
	CascadeFile      string  `yaml:"-"`
	MinSize          int     `yaml:"min_size"`
	MaxSize          int     `yaml:"max_size"`
	ShiftFactor      float64 `yaml:"shift_factor"`
	ScaleFactor      float64 `yaml:"scale_factor"`
	QualityThreshold float32 `yaml:"quality_threshold"`
}

type TrackingConfig struct {
	CameraID        int    // Capture device ID (default 0)
	MovementLogPath string // Append-only sighting log (default movement_log.txt)
	WindowTitle     string
}

type defaults struct {
	Detector DetectorConfig `yaml:"detector"`
}

// envInt reads an environment variable and parses it as a positive integer.
// Returns the default value if the env var is unset, empty, or invalid.
func envInt(key string, defaultVal int) int {
	s := os.Getenv(key)
	if s == "" {
		return defaultVal
	}
	if n, err := strconv.Atoi(s); err == nil && n > 0 {
		return n
	}
	return defaultVal
}

// envStr reads an environment variable, falling back to a default when unset.
func envStr(key, defaultVal string) string {
	if s := os.Getenv(key); s != "" {
		return s
	}
	return defaultVal
}

func Load() *Config {
	var def defaults
	if err := yaml.Unmarshal(defaultsYAML, &def); err != nil {
		// This is an embedded file so this error should never happen in practice
		panic("failed to unmarshal embedded defaults.yaml: " + err.Error())
	}

	detector := def.Detector
	detector.CascadeFile = envStr("FACETRACK_CASCADE_FILE", "cascade/facefinder")
	detector.MinSize = envInt("FACETRACK_DETECTOR_MIN_SIZE", detector.MinSize)
	detector.MaxSize = envInt("FACETRACK_DETECTOR_MAX_SIZE", detector.MaxSize)

	return &Config{
		Database: DatabaseConfig{
			Path: envStr("FACETRACK_DB_PATH", "faces.db"),
		},
		Detector: detector,
		Tracking: TrackingConfig{
			CameraID:        envInt("FACETRACK_CAMERA_ID", 0),
			MovementLogPath: envStr("FACETRACK_MOVEMENT_LOG", "movement_log.txt"),
			WindowTitle:     envStr("FACETRACK_WINDOW_TITLE", "Face Tracking"),
		},
	}
}
