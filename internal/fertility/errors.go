package fertility

import "fmt"

// InvalidInputError reports a sample field that failed validation. assessment
// stops before any scoring begins; no partial result is produced.
type InvalidInputError struct {
	Field  string
	Reason string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid input: %s: %s", e.Field, e.Reason)
}

// ConfigError reports a threshold table that failed to validate. It is fatal
// at engine construction; an engine is never built on partial tables.
type ConfigError struct {
	Section string
	Reason  string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("fertility config: %s: %s", e.Section, e.Reason)
}
