package profile

import (
	"errors"

	"github.com/solidcore/kernel/geom"
)

// ErrOpenProfile is returned when no closed cycle could be traced and
// the caller required a closed profile.
var ErrOpenProfile = errors.New("profile: OPEN_PROFILE")

// Edge is one profile-loop edge, grounded on a single sketch entity.
type Edge struct {
	EntityID       string
	Curve          geom.Curve
	IsConstruction bool
}

// Loop is one closed profile loop: an ordered, stably identified cycle
// of profile edges lying on Profile.Plane.
type Loop struct {
	ID    string // loopid.Compute of the loop's entity IDs
	Edges []Edge
}

// VertexPoints returns the ordered polygon corner points of l: the
// start point of each edge's curve (edge i's start == edge i-1's end
// by construction, except for a single-edge circle loop, which
// returns its one nominal seam vertex).
func (l Loop) VertexPoints(plane geom.Plane) []geom.Vec3 {
	out := make([]geom.Vec3, len(l.Edges))
	for i, e := range l.Edges {
		out[i] = e.Curve.StartPoint(plane)
	}
	return out
}

// EntityIDs returns the ordered entity identifiers of l's edges.
func (l Loop) EntityIDs() []string {
	out := make([]string, len(l.Edges))
	for i, e := range l.Edges {
		out[i] = e.EntityID
	}
	return out
}

// Profile is the output of the profile builder: zero or more closed
// loops lying on a single datum plane.
type Profile struct {
	Plane geom.Plane
	Loops []Loop
}
