// Package identity holds the node identity metadata attached to every
// telemetry target produced by this process.
package identity

import (
	"fmt"

	"github.com/google/uuid"
)

// UnknownSerial is the serial number reported for hardware that could not
// be identified.
const UnknownSerial = "unknown"

// Identity identifies the local node within its cluster. It is created once
// at startup and never mutated.
type Identity struct {
	// NodeID is the unique ID of the local node.
	NodeID uuid.UUID

	// ClusterID is the unique ID of the cluster that owns the node.
	ClusterID uuid.UUID

	// Baseboard describes the hardware the node runs on.
	Baseboard Baseboard
}

type boardKind int

const (
	kindUnknown boardKind = iota
	kindBoard
	kindPC
)

// Baseboard is a tagged descriptor of the node's hardware. The zero value
// is the unknown variant.
type Baseboard struct {
	kind       boardKind
	identifier string
	model      string
	revision   uint32
}

// NewBoard returns a Baseboard for identified server-class hardware.
func NewBoard(identifier, model string, revision uint32) Baseboard {
	return Baseboard{
		kind:       kindBoard,
		identifier: identifier,
		model:      model,
		revision:   revision,
	}
}

// NewPC returns a Baseboard for commodity PC hardware.
func NewPC(identifier, model string) Baseboard {
	return Baseboard{
		kind:       kindPC,
		identifier: identifier,
		model:      model,
	}
}

// UnknownBaseboard returns the unknown hardware variant.
func UnknownBaseboard() Baseboard {
	return Baseboard{kind: kindUnknown}
}

// SerialNumber returns the hardware identifier carried by the baseboard,
// or UnknownSerial for the unknown variant. It never fails.
func (b Baseboard) SerialNumber() string {
	switch b.kind {
	case kindBoard, kindPC:
		return b.identifier
	default:
		return UnknownSerial
	}
}

// Model returns the hardware model name, or an empty string for the
// unknown variant.
func (b Baseboard) Model() string {
	return b.model
}

// String returns a human-readable description of the baseboard.
func (b Baseboard) String() string {
	switch b.kind {
	case kindBoard:
		return fmt.Sprintf("board %s (model %s rev %d)", b.identifier, b.model, b.revision)
	case kindPC:
		return fmt.Sprintf("pc %s (model %s)", b.identifier, b.model)
	default:
		return "unknown"
	}
}
