package goprops

import "fmt"

// LogLevel controls what happens to a validation diagnostic.
type LogLevel int

const (
	LogNone  LogLevel = iota // Suppress diagnostics.
	LogWarn                  // Send diagnostics to the Sink at warn level.
	LogError                 // Send diagnostics to the Sink at error level.
	LogThrow                 // Panic with *ValidationError instead of logging.
)

var logLevelNames = [...]string{
	LogNone:  "none",
	LogWarn:  "warn",
	LogError: "error",
	LogThrow: "throw",
}

// LogLevels lists the recognized log level names in severity order.
func LogLevels() []string { return append([]string(nil), logLevelNames[:]...) }

func (l LogLevel) String() string {
	if l < 0 || int(l) >= len(logLevelNames) {
		return fmt.Sprintf("LogLevel(%d)", int(l))
	}
	return logLevelNames[l]
}

// ParseLogLevel maps a level name to its LogLevel. Unknown names yield a
// *ConfigError.
func ParseLogLevel(s string) (LogLevel, error) {
	for i, n := range logLevelNames {
		if n == s {
			return LogLevel(i), nil
		}
	}
	return LogNone, &ConfigError{Value: s, Allowed: LogLevels()}
}

// Config is the validation policy shared by validators bound to a Store.
type Config struct {
	Enabled  bool
	LogLevel LogLevel
}

// DefaultConfig returns the policy a new Store starts with.
func DefaultConfig() Config { return Config{Enabled: true, LogLevel: LogError} }

// ConfigOptions is a partial Config update. Nil fields keep their current
// value.
type ConfigOptions struct {
	Enabled  *bool
	LogLevel *string
}

// Diagnostic is one validation failure as delivered to a Sink.
type Diagnostic struct {
	Level   LogLevel
	Message string // Tagged message, e.g. `[GoProps] Missing required prop: "name"`.
	Issue   Issue
}
