package registry

// FaultPolicy controls how the registry responds to a preset that fails while
// registering.
type FaultPolicy string

const (
	// PolicyStrict fails fast on the first faulting preset.
	PolicyStrict FaultPolicy = "strict"
	// PolicyGraceful rolls back the faulting preset, logs, and continues.
	PolicyGraceful FaultPolicy = "graceful"
)

// Config configures preset loading.
type Config struct {
	Policy FaultPolicy
}

// DefaultConfig isolates faulting presets so one broken preset cannot
// disable the others.
func DefaultConfig() *Config {
	return &Config{Policy: PolicyGraceful}
}
