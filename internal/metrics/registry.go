package metrics

import (
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
)

// ProducerRegistry is the process-wide collection point the metrics system
// polls. Producers register into it exactly once; the pull path reads
// through the underlying prometheus registry.
type ProducerRegistry struct {
	id       uuid.UUID
	registry *prometheus.Registry
}

// NewProducerRegistry creates a registry keyed by the node's producer ID.
func NewProducerRegistry(id uuid.UUID) *ProducerRegistry {
	return &ProducerRegistry{
		id:       id,
		registry: prometheus.NewRegistry(),
	}
}

// ID returns the producer identity the registry was created with.
func (r *ProducerRegistry) ID() uuid.UUID {
	return r.id
}

// RegisterProducer adds a producer to the registry. Registering the same
// producer twice is rejected.
func (r *ProducerRegistry) RegisterProducer(producer prometheus.Collector) error {
	if err := r.registry.Register(producer); err != nil {
		return registryError("failed to insert metric producer into registry", err)
	}
	return nil
}

// Prometheus exposes the underlying registry for the pull path, e.g. as a
// promhttp gatherer.
func (r *ProducerRegistry) Prometheus() *prometheus.Registry {
	return r.registry
}
