package nrpa

import "fmt"

// ConfigError reports an invalid Config, checked once up front by Validate. It is
// fatal: the caller should report it and exit non-zero, never attempt to recover
// and search anyway.
type ConfigError struct {
	msg string
}

func (e *ConfigError) Error() string { return e.msg }

func configErrorf(format string, args ...any) *ConfigError {
	return &ConfigError{msg: fmt.Sprintf(format, args...)}
}
