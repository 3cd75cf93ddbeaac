package config

import (
	"os"
	"path/filepath"
	"sync"
)

type SessionConfig struct {
	FilePath string
}

var (
	sessionConfig *SessionConfig
	sessionOnce   sync.Once
)

// LoadSessionConfig resolves where the session token file lives. Defaults to
// the user config dir so the session survives gateway restarts, the same way
// the browser client kept its token in localStorage.
func LoadSessionConfig() *SessionConfig {
	sessionOnce.Do(func() {
		path := os.Getenv("CC_SESSION_FILE")
		if path == "" {
			dir, err := os.UserConfigDir()
			if err != nil {
				dir = "."
			}
			path = filepath.Join(dir, "career-compass", "session")
		}
		sessionConfig = &SessionConfig{FilePath: path}
	})
	return sessionConfig
}
