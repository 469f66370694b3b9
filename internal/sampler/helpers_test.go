package sampler

import (
	"log/slog"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

type nopWriter struct{}

func (nopWriter) Write(p []byte) (int, error) { return len(p), nil }

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(nopWriter{}, nil))
}

// collectAll drains one Collect pass into dto form.
func collectAll(t *testing.T, s *Sampler) []*dto.Metric {
	t.Helper()
	ch := make(chan prometheus.Metric, 256)
	s.Collect(ch)
	close(ch)

	var out []*dto.Metric
	for m := range ch {
		var pb dto.Metric
		if err := m.Write(&pb); err != nil {
			t.Fatalf("metric Write() error = %v", err)
		}
		out = append(out, &pb)
	}
	return out
}

// labelValue returns the value of the named label, or "" if absent.
func labelValue(m *dto.Metric, name string) string {
	for _, lp := range m.GetLabel() {
		if lp.GetName() == name {
			return lp.GetValue()
		}
	}
	return ""
}
