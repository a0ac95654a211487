package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment override, e.g. RESIZE_FILTER.
const EnvPrefix = "RESIZE"

// ConfigFileEnv names the environment variable holding an optional
// JSON settings file.
const ConfigFileEnv = EnvPrefix + "_CONFIG"

// Filter names accepted in Settings.Filter.
var Filters = []string{
	"nearest",
	"bilinear",
	"approx-bilinear",
	"catmullrom",
	"lanczos3",
	"mitchell",
	"box",
	"cubic",
	"lanczos",
}

// PNG compression levels accepted in Settings.PNGCompression.
var PNGCompressions = []string{"default", "none", "speed", "best"}

// Settings holds all configuration options.
type Settings struct {
	// Filter selects the resampling filter used for the square resize.
	Filter string `json:"filter"`

	// JPEGQuality is the quality (1-100) used when the output is JPEG.
	JPEGQuality int `json:"jpeg_quality"`

	// PNGCompression is the zlib level used when the output is PNG.
	PNGCompression string `json:"png_compression"`

	// LogLevel is the zap level for diagnostics written to stderr.
	LogLevel string `json:"log_level"`

	// Verbose enables verbose progress messages on stdout.
	Verbose bool `json:"verbose"`
}

// DefaultSettings returns settings with default values.
func DefaultSettings() *Settings {
	return &Settings{
		Filter:         "catmullrom",
		JPEGQuality:    75,
		PNGCompression: "default",
		LogLevel:       "warn",
		Verbose:        false,
	}
}

// Load reads settings from defaults, the optional file named by
// RESIZE_CONFIG, and RESIZE_* environment variables, in increasing
// order of precedence.
//
// Load never fails: an unreadable file is skipped and an invalid value is
// replaced by its default. Each such fallback is described in the returned
// warnings so the caller can report it.
func Load() (*Settings, []string) {
	v := viper.New()

	defaults := DefaultSettings()
	v.SetDefault("filter", defaults.Filter)
	v.SetDefault("jpeg_quality", defaults.JPEGQuality)
	v.SetDefault("png_compression", defaults.PNGCompression)
	v.SetDefault("log_level", defaults.LogLevel)
	v.SetDefault("verbose", defaults.Verbose)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	var warnings []string
	if path := v.GetString("config"); path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("json")
		if err := v.ReadInConfig(); err != nil {
			warnings = append(warnings, fmt.Sprintf("ignoring config %s: %v", path, err))
		}
	}

	settings := &Settings{
		Filter:         strings.ToLower(v.GetString("filter")),
		JPEGQuality:    v.GetInt("jpeg_quality"),
		PNGCompression: strings.ToLower(v.GetString("png_compression")),
		LogLevel:       strings.ToLower(v.GetString("log_level")),
		Verbose:        v.GetBool("verbose"),
	}

	return settings, append(warnings, settings.applyDefaults()...)
}

// applyDefaults replaces every option outside its accepted values with the
// default and returns one warning per replacement.
func (s *Settings) applyDefaults() []string {
	defaults := DefaultSettings()

	var warnings []string
	if !contains(Filters, s.Filter) {
		warnings = append(warnings, fmt.Sprintf("unknown filter %q (want one of %s), using %q",
			s.Filter, strings.Join(Filters, ", "), defaults.Filter))
		s.Filter = defaults.Filter
	}
	if s.JPEGQuality < 1 || s.JPEGQuality > 100 {
		warnings = append(warnings, fmt.Sprintf("jpeg quality %d out of range 1-100, using %d",
			s.JPEGQuality, defaults.JPEGQuality))
		s.JPEGQuality = defaults.JPEGQuality
	}
	if !contains(PNGCompressions, s.PNGCompression) {
		warnings = append(warnings, fmt.Sprintf("unknown png compression %q (want one of %s), using %q",
			s.PNGCompression, strings.Join(PNGCompressions, ", "), defaults.PNGCompression))
		s.PNGCompression = defaults.PNGCompression
	}
	switch s.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		warnings = append(warnings, fmt.Sprintf("unknown log level %q, using %q", s.LogLevel, defaults.LogLevel))
		s.LogLevel = defaults.LogLevel
	}
	return warnings
}

func contains(list []string, s string) bool {
	for _, item := range list {
		if item == s {
			return true
		}
	}
	return false
}
