package config

import "fmt"

// validOutputs are the accepted output format values.
var validOutputs = map[string]bool{
	"auto":     true,
	"text":     true,
	"markdown": true,
	"json":     true,
}

// Validate checks a loaded configuration for invalid values.
func Validate(cfg *Config) error {
	if cfg.DockerBin == "" {
		return fmt.Errorf("docker_bin must not be empty")
	}
	if cfg.OutputFormat != "" && !validOutputs[cfg.OutputFormat] {
		return fmt.Errorf("invalid output format %q (valid: auto, text, markdown, json)", cfg.OutputFormat)
	}
	for i := range cfg.Tasks {
		if err := cfg.Tasks[i].Validate(); err != nil {
			return fmt.Errorf("invalid task in config: %w", err)
		}
	}
	return nil
}
