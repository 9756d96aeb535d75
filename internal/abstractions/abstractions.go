// Package abstractions wraps the configuration store so callers do not
// depend on Viper directly.
package abstractions

import "github.com/spf13/viper"

// IsSet reports whether the key has been set by flag, config file, or program.
func IsSet(key string) bool { return viper.IsSet(key) }

// Set stores a value for the key.
func Set(key string, value any) { viper.Set(key, value) }

// Get returns the raw value for the key.
func Get(key string) any { return viper.Get(key) }

// GetString returns the value for the key as a string.
func GetString(key string) string { return viper.GetString(key) }

// GetBool returns the value for the key as a bool.
func GetBool(key string) bool { return viper.GetBool(key) }

// GetInt returns the value for the key as an int.
func GetInt(key string) int { return viper.GetInt(key) }

// GetFloat64 returns the value for the key as a float64.
func GetFloat64(key string) float64 { return viper.GetFloat64(key) }

// GetUint64 returns the value for the key as a uint64.
func GetUint64(key string) uint64 { return viper.GetUint64(key) }

// GetStringSlice returns the value for the key as a string slice.
func GetStringSlice(key string) []string { return viper.GetStringSlice(key) }
