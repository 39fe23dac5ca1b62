package feature

import (
	"github.com/solidcore/kernel/history"
	"github.com/solidcore/kernel/topo"
)

// Extent names how far an extrude travels.
type Extent uint8

const (
	ExtentBlind Extent = iota
	ExtentThroughAll
	ExtentToFace
	ExtentToVertex
)

func (e Extent) String() string {
	switch e {
	case ExtentBlind:
		return "blind"
	case ExtentThroughAll:
		return "throughAll"
	case ExtentToFace:
		return "toFace"
	case ExtentToVertex:
		return "toVertex"
	default:
		return "unknown"
	}
}

// throughAllMagnitude is the distance substituted for ExtentThroughAll.
// Resolving it exactly requires intersecting the sweep against every
// other body in the document; that is a document-level concern the
// rebuild engine is better placed to own, so this package accepts a
// generous fixed magnitude instead. Callers that need the true extent
// should resolve Distance themselves and pass ExtentBlind.
const throughAllMagnitude = 1e4

// ExtrudeParams configures Extrude.
type ExtrudeParams struct {
	Extent Extent

	// Distance is the signed travel distance for ExtentBlind, and is
	// used verbatim (already resolved by the caller) for ExtentToFace
	// and ExtentToVertex. Ignored for ExtentThroughAll.
	Distance float64

	// DirectionSign is +1 to extrude along the profile plane's normal,
	// -1 against it. Zero is treated as +1.
	DirectionSign float64

	SourceFeatureID string
}

func (p ExtrudeParams) resolvedDistance() float64 {
	switch p.Extent {
	case ExtentThroughAll:
		return throughAllMagnitude
	default:
		return p.Distance
	}
}

// RevolveParams configures Revolve.
type RevolveParams struct {
	// AxisEntityID names a line entity in the sketch that the profile
	// was built from; its two endpoints (in the profile's plane) give
	// the revolve axis.
	AxisEntityID string

	// SweepAngle is in radians. 2*math.Pi (or more) produces a closed
	// solid with no end caps; anything less produces flat end caps at
	// the start and end of the sweep.
	SweepAngle float64

	SourceFeatureID string
}

// Result is the body a feature operation produced, together with the
// operation history recorded while building it.
type Result struct {
	Body    topo.BodyID
	Shell   topo.ShellID
	History *history.Record
}
