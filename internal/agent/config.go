// Package agent wires the metrics manager into a runnable daemon: config
// parsing, identity construction, startup link tracking, and the HTTP
// endpoint the collection system pulls from.
package agent

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/plexsphere/linkmond/internal/identity"
	"github.com/plexsphere/linkmond/internal/metrics"
)

const (
	// DefaultLogLevel is the default log level.
	DefaultLogLevel = "info"

	// DefaultListen is the default address of the metrics endpoint.
	DefaultListen = "0.0.0.0:9478"
)

// BaseboardConfig describes the node hardware in the config file.
type BaseboardConfig struct {
	// Kind is "board", "pc" or "unknown". Default: "unknown".
	Kind string `yaml:"kind"`

	// Identifier is the hardware serial identifier. Required for board
	// and pc kinds.
	Identifier string `yaml:"identifier"`

	// Model is the hardware model name.
	Model string `yaml:"model"`

	// Revision is the board revision. Only meaningful for kind "board".
	Revision uint32 `yaml:"revision"`
}

// IdentityConfig carries the node and cluster identity.
type IdentityConfig struct {
	// NodeID is the unique ID of this node. Required.
	NodeID string `yaml:"node_id"`

	// ClusterID is the unique ID of the owning cluster. Required.
	ClusterID string `yaml:"cluster_id"`

	Baseboard BaseboardConfig `yaml:"baseboard"`
}

// Config is the top-level configuration for the linkmond daemon,
// populated from a YAML file via ParseConfig.
type Config struct {
	// LogLevel is the log level: "debug", "info", "warn", "error".
	// Default: "info"
	LogLevel string `yaml:"log_level"`

	// Listen is the address the metrics endpoint binds to.
	// Default: 0.0.0.0:9478
	Listen string `yaml:"listen"`

	Identity IdentityConfig `yaml:"identity"`
	Metrics  metrics.Config `yaml:"metrics"`
}

// ApplyDefaults sets default values for zero-valued fields.
func (c *Config) ApplyDefaults() {
	if c.LogLevel == "" {
		c.LogLevel = DefaultLogLevel
	}
	if c.Listen == "" {
		c.Listen = DefaultListen
	}
	if c.Identity.Baseboard.Kind == "" {
		c.Identity.Baseboard.Kind = "unknown"
	}
	c.Metrics.ApplyDefaults()
}

// Validate checks that required fields are set and values are acceptable.
func (c *Config) Validate() error {
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("agent: config: invalid log_level %q", c.LogLevel)
	}
	if _, err := uuid.Parse(c.Identity.NodeID); err != nil {
		return fmt.Errorf("agent: config: invalid identity.node_id %q: %w", c.Identity.NodeID, err)
	}
	if _, err := uuid.Parse(c.Identity.ClusterID); err != nil {
		return fmt.Errorf("agent: config: invalid identity.cluster_id %q: %w", c.Identity.ClusterID, err)
	}
	switch c.Identity.Baseboard.Kind {
	case "unknown":
	case "board", "pc":
		if c.Identity.Baseboard.Identifier == "" {
			return fmt.Errorf("agent: config: baseboard kind %q requires an identifier", c.Identity.Baseboard.Kind)
		}
	default:
		return fmt.Errorf("agent: config: invalid baseboard kind %q", c.Identity.Baseboard.Kind)
	}
	return c.Metrics.Validate()
}

// NodeIdentity builds the node identity from the validated config.
func (c *Config) NodeIdentity() (identity.Identity, error) {
	nodeID, err := uuid.Parse(c.Identity.NodeID)
	if err != nil {
		return identity.Identity{}, fmt.Errorf("agent: config: parse node_id: %w", err)
	}
	clusterID, err := uuid.Parse(c.Identity.ClusterID)
	if err != nil {
		return identity.Identity{}, fmt.Errorf("agent: config: parse cluster_id: %w", err)
	}

	var baseboard identity.Baseboard
	switch c.Identity.Baseboard.Kind {
	case "board":
		baseboard = identity.NewBoard(c.Identity.Baseboard.Identifier, c.Identity.Baseboard.Model, c.Identity.Baseboard.Revision)
	case "pc":
		baseboard = identity.NewPC(c.Identity.Baseboard.Identifier, c.Identity.Baseboard.Model)
	default:
		baseboard = identity.UnknownBaseboard()
	}

	return identity.Identity{
		NodeID:    nodeID,
		ClusterID: clusterID,
		Baseboard: baseboard,
	}, nil
}

// ParseConfig reads a YAML configuration file, applies defaults and
// validates the result.
func ParseConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("agent: config: read %s: %w", path, err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("agent: config: parse %s: %w", path, err)
	}
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}
