package app

import "errors"

// Config holds all the necessary configuration for an App instance to
// run.
type Config struct {
	GraphPath string // .hcl file or directory of .hcl files
	NodeName  string // node whose value is requested

	LogFormat string
	LogLevel  string
}

// NewConfig validates a Config and returns it.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.GraphPath == "" {
		return nil, errors.New("GraphPath is a required configuration field and cannot be empty")
	}
	if cfg.NodeName == "" {
		return nil, errors.New("NodeName is a required configuration field and cannot be empty")
	}
	return &cfg, nil
}
