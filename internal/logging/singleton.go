package logging

import (
	"fmt"
	"os"
	"sync"
)

var (
	mu       sync.Mutex
	pending  *Config
	instance *Logger
)

// Configure sets the configuration used by the next GetLogger call.
// A logger already built is closed and replaced.
func Configure(config *Config) {
	mu.Lock()
	defer mu.Unlock()

	pending = config
	if instance != nil {
		instance.Close()
		instance = nil
	}
}

// GetLogger returns the process-wide logger, building it on first use.
// Without a prior Configure, or when the configuration is rejected, it
// falls back to DefaultConfig on stdout.
func GetLogger() *Logger {
	mu.Lock()
	defer mu.Unlock()

	if instance != nil {
		return instance
	}

	config := pending
	if config == nil {
		config = DefaultConfig()
	}
	l, err := NewLogger(config)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logging: %v, using defaults\n", err)
		l, _ = NewLogger(DefaultConfig())
	}
	instance = l
	return instance
}
