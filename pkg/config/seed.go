package config

// SeedConfig controls loading of the sample data set on startup.
// Seeding is idempotent and intended for dev/test profiles only.
type SeedConfig struct {
	Enabled bool `koanf:"enabled"`
}

func (c *SeedConfig) Validate() error {
	return nil
}
