package history

// FaceType classifies the role a face played when it was generated by
// extrude or revolve. The string form doubles as a localSelector.kind
// value for persistent references.
type FaceType uint8

const (
	FaceUnknown FaceType = iota
	FaceTopCap
	FaceBottomCap
	FaceExtrudeSide
	FaceRevolveStartCap
	FaceRevolveEndCap
	FaceRevolveSide
)

func (f FaceType) String() string {
	switch f {
	case FaceTopCap:
		return "extrude.topCap"
	case FaceBottomCap:
		return "extrude.bottomCap"
	case FaceExtrudeSide:
		return "extrude.side"
	case FaceRevolveStartCap:
		return "revolve.startCap"
	case FaceRevolveEndCap:
		return "revolve.endCap"
	case FaceRevolveSide:
		return "revolve.side"
	default:
		return "face.unknown"
	}
}

// Origin names the feature (and, for side faces, the sketch entity)
// that originally produced a face, independent of which body currently
// owns it.
type Origin struct {
	SourceFeatureID string
	EntityID        string // non-empty only for a side face with a known profile entity
	FaceType        FaceType
}

// SideFaceMapping records the topology hash generated for one side
// face, in profile-edge order.
type SideFaceMapping struct {
	ProfileEdgeIndex  int
	GeneratedFaceHash uint64
}

// Record is the per-body operation history.
type Record struct {
	// FeatureKind names the operation that originally built the body
	// ("extrude" or "revolve"); booleans carry the base body's kind
	// forward. Empty when unknown.
	FeatureKind string

	// ProfileLoopID is the stable loop identifier of the profile the
	// body was built from, recorded only when the profile had exactly
	// one loop. Empty when unknown.
	ProfileLoopID string

	BottomCapHash *uint64
	TopCapHash    *uint64

	SideFaceMappings []SideFaceMapping

	// ProfileEdgeToEntityID maps profile edge index to the sketch
	// entity identifier that generated it. Axis entities of a revolve
	// are never present here.
	ProfileEdgeToEntityID map[int]string

	// FaceHashToOrigin maps a current face topology hash to its
	// origin. Updated through every boolean.
	FaceHashToOrigin map[uint64]Origin
}

// New returns an empty, ready-to-populate Record.
func New() *Record {
	return &Record{
		ProfileEdgeToEntityID: make(map[int]string),
		FaceHashToOrigin:      make(map[uint64]Origin),
	}
}

// SetCap records a cap face's hash and seeds its origin in
// FaceHashToOrigin. kind must be FaceTopCap, FaceBottomCap,
// FaceRevolveStartCap, or FaceRevolveEndCap.
func (r *Record) SetCap(kind FaceType, hash uint64, sourceFeatureID string) {
	h := hash
	switch kind {
	case FaceTopCap, FaceRevolveEndCap:
		r.TopCapHash = &h
	case FaceBottomCap, FaceRevolveStartCap:
		r.BottomCapHash = &h
	}
	r.FaceHashToOrigin[hash] = Origin{SourceFeatureID: sourceFeatureID, FaceType: kind}
}

// AddSide records one side face's generated hash, the profile edge
// index it came from, and (if known) the sketch entity that generated
// that profile edge, seeding the face's origin in FaceHashToOrigin.
// sideKind must be FaceExtrudeSide or FaceRevolveSide — the two
// feature kinds that produce lateral faces tag their own kind so a
// later reference-index lookup can tell "extrude.side" from
// "revolve.side" without re-deriving it from the rest of the record.
func (r *Record) AddSide(profileEdgeIndex int, hash uint64, entityID, sourceFeatureID string, sideKind FaceType) {
	r.SideFaceMappings = append(r.SideFaceMappings, SideFaceMapping{ProfileEdgeIndex: profileEdgeIndex, GeneratedFaceHash: hash})
	if entityID != "" {
		r.ProfileEdgeToEntityID[profileEdgeIndex] = entityID
	}
	r.FaceHashToOrigin[hash] = Origin{SourceFeatureID: sourceFeatureID, EntityID: entityID, FaceType: sideKind}
}

// Lookup returns the origin recorded for hash, if any.
func (r *Record) Lookup(hash uint64) (Origin, bool) {
	if r == nil {
		return Origin{}, false
	}
	o, ok := r.FaceHashToOrigin[hash]
	return o, ok
}
