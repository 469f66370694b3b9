package metrics

import (
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
)

func TestProducerRegistryID(t *testing.T) {
	id := uuid.New()
	r := NewProducerRegistry(id)
	if r.ID() != id {
		t.Errorf("ID() = %v, want %v", r.ID(), id)
	}
	if r.Prometheus() == nil {
		t.Error("Prometheus() returned nil")
	}
}

func TestRegisterProducer(t *testing.T) {
	r := NewProducerRegistry(uuid.New())
	c := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "test_producer_total",
		Help: "test",
	})

	if err := r.RegisterProducer(c); err != nil {
		t.Fatalf("RegisterProducer() error = %v", err)
	}

	// The same producer cannot register twice.
	err := r.RegisterProducer(c)
	if err == nil {
		t.Fatal("RegisterProducer() second call error = nil, want error")
	}
	if !errors.Is(err, ErrRegistry) {
		t.Errorf("RegisterProducer() error = %v, want registry kind", err)
	}
}
