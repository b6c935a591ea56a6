// Package config provides environment lookups and the tuning file that
// holds every gameplay constant.
package config

import (
	"os"
	"strings"
)

// Environment variables read by the binaries.
const (
	EnvConfigPath = "ROADRUSH_CONFIG"
	EnvLogPath    = "ROADRUSH_LOG"
	EnvLogLevel   = "ROADRUSH_LOG_LEVEL"
	EnvAudio      = "ROADRUSH_AUDIO"
)

// GetEnv returns the value of the environment variable named by the key,
// or fallback if the variable is not set.
func GetEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

// GetEnvBool interprets the variable as a switch. "0", "false", "off" and
// "no" (any case) are false, any other set value is true.
func GetEnvBool(key string, fallback bool) bool {
	value, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "0", "false", "off", "no":
		return false
	default:
		return true
	}
}
