package cli

import "github.com/kelseyhightower/envconfig"

// envConfig holds settings read from SANTA_* environment variables.
// Flags take precedence over these.
type envConfig struct {
	Seed    uint64 `envconfig:"SANTA_SEED"`
	Format  string `envconfig:"SANTA_FORMAT"`
	NoColor bool   `envconfig:"SANTA_NO_COLOR" default:"false"`
}

// loadEnv reads the SANTA_* environment variables.
func loadEnv() (envConfig, error) {
	var cfg envConfig
	err := envconfig.Process("", &cfg)
	return cfg, err
}
