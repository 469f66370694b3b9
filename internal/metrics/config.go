package metrics

import (
	"fmt"
	"time"

	"gopkg.in/yaml.v3"
)

// VirtualLink names a virtual datalink to track, together with the
// hostname it is reported under.
type VirtualLink struct {
	// Name is the datalink name.
	Name string `yaml:"name"`

	// Hostname is reported in place of the node's own hostname.
	Hostname string `yaml:"hostname"`
}

// Config holds the link telemetry configuration.
type Config struct {
	// SampleInterval is the interval between link statistic samples.
	// Must be at least 1s. Default: 10s.
	SampleInterval time.Duration `yaml:"sample_interval"`

	// PhysicalLinks are the physical datalinks tracked at startup.
	PhysicalLinks []string `yaml:"physical_links"`

	// VirtualLinks are the virtual datalinks tracked at startup.
	VirtualLinks []VirtualLink `yaml:"virtual_links"`
}

// UnmarshalYAML decodes the config, parsing sample_interval from duration
// notation ("10s", "1m30s").
func (c *Config) UnmarshalYAML(value *yaml.Node) error {
	var raw struct {
		SampleInterval string        `yaml:"sample_interval"`
		PhysicalLinks  []string      `yaml:"physical_links"`
		VirtualLinks   []VirtualLink `yaml:"virtual_links"`
	}
	if err := value.Decode(&raw); err != nil {
		return err
	}
	if raw.SampleInterval != "" {
		d, err := time.ParseDuration(raw.SampleInterval)
		if err != nil {
			return fmt.Errorf("metrics: config: parse sample_interval %q: %w", raw.SampleInterval, err)
		}
		c.SampleInterval = d
	}
	c.PhysicalLinks = raw.PhysicalLinks
	c.VirtualLinks = raw.VirtualLinks
	return nil
}

// ApplyDefaults sets default values for zero-valued fields.
func (c *Config) ApplyDefaults() {
	if c.SampleInterval == 0 {
		c.SampleInterval = DefaultLinkSampleInterval
	}
}

// Validate checks that configuration values are within acceptable ranges.
func (c *Config) Validate() error {
	if c.SampleInterval < time.Second {
		return fmt.Errorf("metrics: config: SampleInterval must be at least 1s, got %s", c.SampleInterval)
	}
	for _, name := range c.PhysicalLinks {
		if name == "" {
			return fmt.Errorf("metrics: config: physical link name must not be empty")
		}
	}
	for _, vl := range c.VirtualLinks {
		if vl.Name == "" {
			return fmt.Errorf("metrics: config: virtual link name must not be empty")
		}
		if vl.Hostname == "" {
			return fmt.Errorf("metrics: config: virtual link %q requires a hostname", vl.Name)
		}
	}
	return nil
}
