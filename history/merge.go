package history

// Provenance names, for one output face of a boolean, the hash it had
// in its source body before the boolean ran. Deleted marks a piece
// that was classified away during selection/dedup and carries no
// origin forward.
type Provenance struct {
	OutputHash uint64
	SourceHash uint64
	Deleted    bool
}

// Merge populates output's FaceHashToOrigin from baseProv (resolved
// against base's history) first, then toolProv (resolved against
// tool's history) — base takes precedence, so a tool entry only fills
// a slot base left empty.
func Merge(output, base, tool *Record, baseProv, toolProv []Provenance) {
	apply := func(prov []Provenance, src *Record) {
		for _, p := range prov {
			if p.Deleted {
				continue
			}
			if _, exists := output.FaceHashToOrigin[p.OutputHash]; exists {
				continue
			}
			origin, ok := src.Lookup(p.SourceHash)
			if !ok {
				continue
			}
			output.FaceHashToOrigin[p.OutputHash] = origin
		}
	}
	apply(baseProv, base)
	apply(toolProv, tool)

	if base != nil {
		if output.FeatureKind == "" {
			output.FeatureKind = base.FeatureKind
		}
		if output.ProfileLoopID == "" {
			output.ProfileLoopID = base.ProfileLoopID
		}
	}
	if output.BottomCapHash == nil && base != nil {
		output.BottomCapHash = base.BottomCapHash
	}
	if output.TopCapHash == nil && base != nil {
		output.TopCapHash = base.TopCapHash
	}
	if output.ProfileEdgeToEntityID == nil {
		output.ProfileEdgeToEntityID = make(map[int]string)
	}
	if base != nil {
		for k, v := range base.ProfileEdgeToEntityID {
			if _, exists := output.ProfileEdgeToEntityID[k]; !exists {
				output.ProfileEdgeToEntityID[k] = v
			}
		}
	}
}
