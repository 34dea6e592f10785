package types

import "errors"

// Config holds the session parameters loaded from config.yaml.
type Config struct {
	Capacity int    `json:"capacity" yaml:"capacity"`
	LogLevel string `json:"log_level" yaml:"log_level"`
}

// Defaults applied when config.yaml is missing or silent.
const (
	DefaultCapacity = 10
	MaxCapacity     = 1 << 16
	DefaultLogLevel = LogLevelWarn
)

// Supported log levels.
const (
	LogLevelDebug = "debug"
	LogLevelInfo  = "info"
	LogLevelWarn  = "warn"
	LogLevelError = "error"
)

// Config validation errors.
var (
	ErrCapacityInvalid = errors.New("capacity must be between 1 and 65536")
	ErrLogLevelUnknown = errors.New("unknown log level")
)

// knownLogLevels lists the levels that Validate accepts.
var knownLogLevels = map[string]bool{
	LogLevelDebug: true,
	LogLevelInfo:  true,
	LogLevelWarn:  true,
	LogLevelError: true,
}

// DefaultConfig returns the configuration used when nothing is configured.
func DefaultConfig() Config {
	return Config{
		Capacity: DefaultCapacity,
		LogLevel: DefaultLogLevel,
	}
}

// Validate checks that the Config is well-formed. An empty LogLevel is
// accepted and means DefaultLogLevel.
func (c Config) Validate() error {
	if c.Capacity <= 0 || c.Capacity > MaxCapacity {
		return ErrCapacityInvalid
	}
	if c.LogLevel != "" && !knownLogLevels[c.LogLevel] {
		return ErrLogLevelUnknown
	}
	return nil
}
