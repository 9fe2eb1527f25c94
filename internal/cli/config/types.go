// Package config provides configuration management for the proftree
// CLI: defaults, the proftree.yaml file, PROFTREE_ environment
// variables, and command-line flags, in increasing priority.
package config

import "time"

// Config holds all CLI configuration options.
type Config struct {
	Verbose         bool          `koanf:"verbose"`
	OutputFormat    string        `koanf:"output"`
	DetailThreshold time.Duration `koanf:"detail_threshold"`
}

// Default configuration values.
const (
	// DefaultOutput auto-detects: TTY gets text, pipes get markdown.
	DefaultOutput = "auto"
	// DefaultDetailThreshold is how long a step must run before its
	// detail text is shown in reports.
	DefaultDetailThreshold = 100 * time.Millisecond
)

// Config file names, searched in order.
const (
	ConfigFileName    = "proftree.yaml"
	ConfigFileNameAlt = "proftree.yml"
)
