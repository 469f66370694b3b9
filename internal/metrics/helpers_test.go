package metrics

import (
	"log/slog"

	"github.com/google/uuid"

	"github.com/plexsphere/linkmond/internal/identity"
)

type nopWriter struct{}

func (nopWriter) Write(p []byte) (int, error) { return len(p), nil }

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(nopWriter{}, nil))
}

func testIdentity() identity.Identity {
	return identity.Identity{
		NodeID:    uuid.New(),
		ClusterID: uuid.New(),
		Baseboard: identity.UnknownBaseboard(),
	}
}
