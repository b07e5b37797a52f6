package sorting

import "fmt"

// ConfigurationError reports a column key that the registry cannot resolve,
// or a registry built from invalid column definitions. It is a caller bug
// and is never swallowed.
type ConfigurationError struct {
	Key    string
	Reason string
}

func (e *ConfigurationError) Error() string {
	if e.Reason == "" {
		return fmt.Sprintf("sorting: unknown column %q", e.Key)
	}
	return fmt.Sprintf("sorting: column %q: %s", e.Key, e.Reason)
}

func unknownColumn(key string) error {
	return &ConfigurationError{Key: key}
}
