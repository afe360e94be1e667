package config

import (
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	cfg := Load()

	if cfg.Database.Path != "faces.db" {
		t.Errorf("expected default database path 'faces.db', got '%s'", cfg.Database.Path)
	}

	if cfg.Detector.MinSize != 60 {
		t.Errorf("expected detector min size 60, got %d", cfg.Detector.MinSize)
	}

	if cfg.Detector.MaxSize != 1000 {
		t.Errorf("expected detector max size 1000, got %d", cfg.Detector.MaxSize)
	}

	if cfg.Detector.ShiftFactor != 0.1 {
		t.Errorf("expected shift factor 0.1, got %f", cfg.Detector.ShiftFactor)
	}

	if cfg.Detector.ScaleFactor != 1.1 {
		t.Errorf("expected scale factor 1.1, got %f", cfg.Detector.ScaleFactor)
	}

	if cfg.Detector.QualityThreshold != 5.0 {
		t.Errorf("expected quality threshold 5.0, got %f", cfg.Detector.QualityThreshold)
	}

	if cfg.Tracking.CameraID != 0 {
		t.Errorf("expected default camera ID 0, got %d", cfg.Tracking.CameraID)
	}

	if cfg.Tracking.MovementLogPath != "movement_log.txt" {
		t.Errorf("expected default movement log 'movement_log.txt', got '%s'", cfg.Tracking.MovementLogPath)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("FACETRACK_DB_PATH", "/tmp/test.db")
	t.Setenv("FACETRACK_CASCADE_FILE", "/opt/models/facefinder")
	t.Setenv("FACETRACK_DETECTOR_MIN_SIZE", "100")
	t.Setenv("FACETRACK_CAMERA_ID", "2")

	cfg := Load()

	if cfg.Database.Path != "/tmp/test.db" {
		t.Errorf("expected database path '/tmp/test.db', got '%s'", cfg.Database.Path)
	}

	if cfg.Detector.CascadeFile != "/opt/models/facefinder" {
		t.Errorf("expected cascade file '/opt/models/facefinder', got '%s'", cfg.Detector.CascadeFile)
	}

	if cfg.Detector.MinSize != 100 {
		t.Errorf("expected detector min size 100, got %d", cfg.Detector.MinSize)
	}

	if cfg.Tracking.CameraID != 2 {
		t.Errorf("expected camera ID 2, got %d", cfg.Tracking.CameraID)
	}
}

func TestLoad_InvalidEnvInt(t *testing.T) {
	t.Setenv("FACETRACK_DETECTOR_MIN_SIZE", "not-a-number")

	cfg := Load()

	if cfg.Detector.MinSize != 60 {
		t.Errorf("expected fallback to default 60, got %d", cfg.Detector.MinSize)
	}
}
