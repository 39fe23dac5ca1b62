package rebuild

import (
	"github.com/solidcore/kernel/boolean"
	"github.com/solidcore/kernel/feature"
	"github.com/solidcore/kernel/geom"
	"github.com/solidcore/kernel/history"
	"github.com/solidcore/kernel/refindex"
	"github.com/solidcore/kernel/sketch"
	"github.com/solidcore/kernel/tessellate"
	"github.com/solidcore/kernel/topo"
)

// Kind tags the variant of a Feature.
type Kind string

const (
	KindOrigin   Kind = "origin"
	KindPlane    Kind = "plane"
	KindSketch   Kind = "sketch"
	KindExtrude  Kind = "extrude"
	KindRevolve  Kind = "revolve"
	KindBoolean  Kind = "boolean"
)

// Op selects whether an extrude/revolve adds or removes material.
type Op string

const (
	OpAdd Op = "add"
	OpCut Op = "cut"
)

// MergeScope selects how an extrude/revolve's new body joins the
// existing body map.
type MergeScope string

const (
	MergeAuto     MergeScope = "auto"
	MergeNew      MergeScope = "new"
	MergeSpecific MergeScope = "specific"
)

// SketchPlaneRefKind tags the variant of a SketchPlaneRef.
type SketchPlaneRefKind string

const (
	SketchPlaneFeatureID SketchPlaneRefKind = "planeFeatureId"
	SketchPlaneFaceRef   SketchPlaneRefKind = "faceRef"
	SketchPlaneDatumRole SketchPlaneRefKind = "datumRole"
)

// SketchPlaneRef names the plane a sketch feature lies on.
type SketchPlaneRef struct {
	Kind SketchPlaneRefKind
	Ref  string
}

// PlaneParams is the type-specific payload of a KindPlane feature.
type PlaneParams struct {
	// Role, when non-empty, registers this plane as the datum for
	// "xy"/"xz"/"yz" sketch plane references. A custom plane feature
	// with no role is only reachable via SketchPlaneFeatureID.
	Role   string
	Normal geom.Vec3
	Origin geom.Vec3
	XDir   geom.Vec3
}

// SketchParams is the type-specific payload of a KindSketch feature.
type SketchParams struct {
	Plane SketchPlaneRef
	Data  sketch.Data
}

// ExtrudeParams is the type-specific payload of a KindExtrude feature.
type ExtrudeParams struct {
	Sketch          string
	Op              Op
	DirectionSign   float64
	Extent          feature.Extent
	Distance        float64
	MergeScope      MergeScope
	TargetBodies    []string
	ResultBodyName  string
	ResultBodyColor string
}

// RevolveParams is the type-specific payload of a KindRevolve feature.
type RevolveParams struct {
	Sketch          string
	Axis            string
	Angle           float64
	Op              Op
	MergeScope      MergeScope
	TargetBodies    []string
	ResultBodyName  string
	ResultBodyColor string
}

// BooleanParams is the type-specific payload of a KindBoolean feature.
type BooleanParams struct {
	Operation boolean.Operation
	Target    string
	Tool      string
}

// Feature is one entry of the read-only feature document.
// Exactly one of the type-specific fields is populated, chosen by Type
// — a tagged union rather than an inheritance hierarchy, the way this
// module's geom package tags Surface/Curve variants.
type Feature struct {
	ID         string
	Type       Kind
	Suppressed bool
	Name       string

	Plane   *PlaneParams
	Sketch  *SketchParams
	Extrude *ExtrudeParams
	Revolve *RevolveParams
	Boolean *BooleanParams
}

// FeatureStatus is the per-feature classification emitted in a
// RebuildResult.
type FeatureStatus string

const (
	StatusComputed   FeatureStatus = "computed"
	StatusSuppressed FeatureStatus = "suppressed"
	StatusGated      FeatureStatus = "gated"
	StatusError      FeatureStatus = "error"
)

// BuildError is the wire shape of a rebuild error.
type BuildError struct {
	FeatureID string
	Code      string
	Message   string
}

func (e BuildError) Error() string {
	return e.Code + " (" + e.FeatureID + "): " + e.Message
}

// BodyEntry is one live entry of the rebuild's body map.
type BodyEntry struct {
	Body    topo.BodyID
	Name    string
	Color   string
	History *history.Record
}

// RebuildResult is the output of SolidSession.Rebuild. Bodies and
// the other per-body maps are keyed by the body map key: the id of the feature that currently owns the body, which is
// not necessarily the feature that originally created it once
// booleans have merged bodies together.
type RebuildResult struct {
	Bodies             map[string]BodyEntry
	Meshes             map[string]tessellate.Mesh
	ReferenceIndex     refindex.Snapshot
	FeatureStatus      map[string]FeatureStatus
	Errors             []BuildError
	SketchSolveResults map[string]sketch.Result
}
