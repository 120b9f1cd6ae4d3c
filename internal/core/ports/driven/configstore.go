package driven

// ConfigStore provides read access to application configuration.
// Implementations handle persistence (e.g., TOML files) and type conversion.
type ConfigStore interface {
	// GetInt retrieves an integer configuration value.
	// Returns fallback if key doesn't exist or isn't an integer.
	GetInt(key string, fallback int) int

	// GetBool retrieves a boolean configuration value.
	// Returns false if key doesn't exist or isn't a boolean.
	GetBool(key string) bool

	// Path returns the configuration file path, or "" when nothing is persisted.
	Path() string
}
