package config

import (
	"errors"
	"fmt"
)

// ErrConfiguration matches every *ConfigurationError via errors.Is.
var ErrConfiguration = errors.New("invalid configuration")

// ConfigurationError reports a required key that is missing or does not
// parse to its declared type. The bot cannot start with one.
type ConfigurationError struct {
	Key string
	Err error
}

func (e *ConfigurationError) Error() string {
	if e.Key == "" {
		return fmt.Sprintf("config: %v", e.Err)
	}
	return fmt.Sprintf("config: %s: %v", e.Key, e.Err)
}

func (e *ConfigurationError) Unwrap() error {
	return e.Err
}

// Is lets errors.Is(err, ErrConfiguration) match regardless of the cause.
func (e *ConfigurationError) Is(target error) bool {
	return target == ErrConfiguration
}
