package config

import (
	"os"
	"sync"
	"time"
)

// CompassConfig points at the remote Career Compass API. The gateway never
// computes scores itself; everything behind BaseURL is the collaborator.
type CompassConfig struct {
	BaseURL string
	Timeout time.Duration
}

var (
	compassConfig *CompassConfig
	compassOnce   sync.Once
)

func LoadCompassConfig() *CompassConfig {
	compassOnce.Do(func() {
		baseURL := os.Getenv("COMPASS_API_URL")
		if baseURL == "" {
			baseURL = "http://127.0.0.1:8000"
		}
		timeout := 2 * time.Minute
		if raw := os.Getenv("COMPASS_API_TIMEOUT"); raw != "" {
			if d, err := time.ParseDuration(raw); err == nil {
				timeout = d
			}
		}
		compassConfig = &CompassConfig{
			BaseURL: baseURL,
			Timeout: timeout,
		}
	})
	return compassConfig
}
