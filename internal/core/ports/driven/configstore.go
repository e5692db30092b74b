package driven

// ConfigStore provides access to application configuration.
// Keys use dot notation ("output.precision").
// Typed getters return the zero value when a key is missing or has another type.
type ConfigStore interface {
	// Get retrieves a configuration value by key.
	// Returns the value and a boolean indicating if the key exists.
	Get(key string) (any, bool)

	GetString(key string) string
	GetInt(key string) int
	GetBool(key string) bool

	// Keys returns every stored key in sorted order.
	Keys() []string

	// Set stores a configuration value.
	// File-backed implementations persist it immediately.
	Set(key string, value any) error
}
