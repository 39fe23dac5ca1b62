package rebuild

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/solidcore/kernel/boolean"
	"github.com/solidcore/kernel/feature"
	"github.com/solidcore/kernel/geom"
	"github.com/solidcore/kernel/profile"
	"github.com/solidcore/kernel/refindex"
	"github.com/solidcore/kernel/sketch"
	"github.com/solidcore/kernel/tessellate"
	"github.com/solidcore/kernel/tol"
	"github.com/solidcore/kernel/topo"
)

// sketchCache holds the per-sketch-feature state a rebuild needs when
// a later extrude/revolve references it.
type sketchCache struct {
	data  sketch.Data
	plane geom.Plane
	solve sketch.Result
}

// Rebuild drives the feature document (featuresByID, featureOrder)
// through the kernel one feature at a time. rebuildGate, when
// non-empty, names the last feature to actually run; every
// feature after it is marked gated rather than computed. ctx is
// checked between features only.
func (s *SolidSession) Rebuild(ctx context.Context, featuresByID map[string]Feature, featureOrder []string, rebuildGate string) RebuildResult {
	s.mu.Lock()
	defer s.mu.Unlock()

	result := RebuildResult{
		Bodies:             map[string]BodyEntry{},
		Meshes:             map[string]tessellate.Mesh{},
		ReferenceIndex:     refindex.Snapshot{},
		FeatureStatus:      map[string]FeatureStatus{},
		Errors:             nil,
		SketchSolveResults: map[string]sketch.Result{},
	}
	if s.disposed {
		result.Errors = append(result.Errors, BuildError{Code: CodeBuildError, Message: "session is disposed"})
		return result
	}

	s.arena.Reset()
	a := s.arena
	tc := s.tc

	planeByRole := map[string]geom.Plane{}
	for _, fid := range featureOrder {
		f, ok := featuresByID[fid]
		if !ok || f.Type != KindPlane || f.Plane == nil || f.Plane.Role == "" {
			continue
		}
		if _, exists := planeByRole[f.Plane.Role]; exists {
			continue
		}
		planeByRole[f.Plane.Role] = geom.NewPlane(f.Plane.Origin, f.Plane.Normal, f.Plane.XDir)
	}

	sketches := map[string]sketchCache{}
	bodyMap := map[string]BodyEntry{}
	var bodyOrder []string
	gated := false

	for _, fid := range featureOrder {
		if ctx != nil && ctx.Err() != nil {
			result.Errors = append(result.Errors, BuildError{FeatureID: fid, Code: CodeCancelled, Message: "rebuild cancelled before this feature ran"})
			break
		}

		f, ok := featuresByID[fid]
		if !ok {
			result.FeatureStatus[fid] = StatusError
			result.Errors = append(result.Errors, BuildError{FeatureID: fid, Code: CodeBuildError, Message: "feature id not present in feature map"})
			continue
		}

		if gated {
			result.FeatureStatus[fid] = StatusGated
			continue
		}
		if f.Suppressed {
			result.FeatureStatus[fid] = StatusSuppressed
			continue
		}

		var buildErr *BuildError
		switch f.Type {
		case KindOrigin, KindPlane:
			result.FeatureStatus[fid] = StatusComputed

		case KindSketch:
			buildErr = s.runSketch(f, fid, planeByRole, featuresByID, bodyMap, sketches, result.SketchSolveResults)

		case KindExtrude:
			buildErr = s.runExtrude(a, tc, f, fid, sketches, bodyMap, &bodyOrder)

		case KindRevolve:
			buildErr = s.runRevolve(a, tc, f, fid, sketches, bodyMap, &bodyOrder)

		case KindBoolean:
			buildErr = s.runBoolean(a, tc, f, fid, bodyMap, &bodyOrder)

		default:
			result.FeatureStatus[fid] = StatusComputed
		}

		if buildErr != nil {
			result.FeatureStatus[fid] = StatusError
			result.Errors = append(result.Errors, *buildErr)
		} else if _, already := result.FeatureStatus[fid]; !already {
			result.FeatureStatus[fid] = StatusComputed
		}

		if fid == rebuildGate {
			gated = true
		}
	}

	for _, key := range bodyOrder {
		entry := bodyMap[key]
		result.Bodies[key] = entry
		if s.meshEnabled {
			result.Meshes[key] = tessellate.Tessellate(a, tc, entry.Body)
		}
		idx, err := refindex.Build(a, tc, entry.Body, entry.History, key)
		if err != nil {
			s.log.Info("reference index build failed", "body", key, "error", err.Error())
			continue
		}
		result.ReferenceIndex[key] = idx
	}

	return result
}

func (s *SolidSession) runSketch(f Feature, fid string, planeByRole map[string]geom.Plane, featuresByID map[string]Feature, bodyMap map[string]BodyEntry, sketches map[string]sketchCache, sketchResults map[string]sketch.Result) *BuildError {
	if f.Sketch == nil {
		return &BuildError{FeatureID: fid, Code: CodeBuildError, Message: "sketch feature is missing its parameters"}
	}
	plane, err := s.resolvePlane(f.Sketch.Plane, planeByRole, featuresByID, bodyMap)
	if err != nil {
		return &BuildError{FeatureID: fid, Code: CodeBuildError, Message: err.Error()}
	}
	if s.solver == nil {
		return &BuildError{FeatureID: fid, Code: CodeBuildError, Message: "no sketch solver configured"}
	}
	res, err := s.solver.Solve(f.Sketch.Data)
	if err != nil {
		return &BuildError{FeatureID: fid, Code: CodeBuildError, Message: err.Error()}
	}
	sketchResults[fid] = res
	sketches[fid] = sketchCache{data: f.Sketch.Data, plane: plane, solve: res}
	return nil
}

func (s *SolidSession) runExtrude(a *topo.Arena, tc *tol.Context, f Feature, fid string, sketches map[string]sketchCache, bodyMap map[string]BodyEntry, bodyOrder *[]string) *BuildError {
	p := f.Extrude
	if p == nil {
		return &BuildError{FeatureID: fid, Code: CodeBuildError, Message: "extrude feature is missing its parameters"}
	}
	sk, ok := sketches[p.Sketch]
	if !ok {
		return &BuildError{FeatureID: fid, Code: CodeSketchNotFound, Message: fmt.Sprintf("sketch %q was not solved", p.Sketch)}
	}
	prof, err := profile.Build(sk.data, sk.solve.SolvedPoints, sk.plane, true)
	if err != nil {
		return &BuildError{FeatureID: fid, Code: featureErrorCode(err), Message: err.Error()}
	}
	res, err := feature.Extrude(a, tc, prof, feature.ExtrudeParams{
		Extent:          p.Extent,
		Distance:        p.Distance,
		DirectionSign:   p.DirectionSign,
		SourceFeatureID: fid,
	})
	if err != nil {
		return &BuildError{FeatureID: fid, Code: featureErrorCode(err), Message: err.Error()}
	}
	op := p.Op
	if op == "" {
		op = OpAdd
	}
	return s.applyBodyPolicy(a, tc, bodyMap, bodyOrder, fid, op, p.MergeScope, p.TargetBodies, p.ResultBodyName, p.ResultBodyColor, res)
}

func (s *SolidSession) runRevolve(a *topo.Arena, tc *tol.Context, f Feature, fid string, sketches map[string]sketchCache, bodyMap map[string]BodyEntry, bodyOrder *[]string) *BuildError {
	p := f.Revolve
	if p == nil {
		return &BuildError{FeatureID: fid, Code: CodeBuildError, Message: "revolve feature is missing its parameters"}
	}
	sk, ok := sketches[p.Sketch]
	if !ok {
		return &BuildError{FeatureID: fid, Code: CodeSketchNotFound, Message: fmt.Sprintf("sketch %q was not solved", p.Sketch)}
	}
	prof, err := profile.Build(sk.data, sk.solve.SolvedPoints, sk.plane, true)
	if err != nil {
		return &BuildError{FeatureID: fid, Code: featureErrorCode(err), Message: err.Error()}
	}
	res, err := feature.Revolve(a, tc, prof, sk.data, sk.solve, feature.RevolveParams{
		AxisEntityID:    p.Axis,
		SweepAngle:      p.Angle,
		SourceFeatureID: fid,
	})
	if err != nil {
		return &BuildError{FeatureID: fid, Code: featureErrorCode(err), Message: err.Error()}
	}
	op := p.Op
	if op == "" {
		op = OpAdd
	}
	return s.applyBodyPolicy(a, tc, bodyMap, bodyOrder, fid, op, p.MergeScope, p.TargetBodies, p.ResultBodyName, p.ResultBodyColor, res)
}

func (s *SolidSession) runBoolean(a *topo.Arena, tc *tol.Context, f Feature, fid string, bodyMap map[string]BodyEntry, bodyOrder *[]string) *BuildError {
	p := f.Boolean
	if p == nil {
		return &BuildError{FeatureID: fid, Code: CodeBuildError, Message: "boolean feature is missing its parameters"}
	}
	targetEntry, ok1 := bodyMap[p.Target]
	toolEntry, ok2 := bodyMap[p.Tool]
	if !ok1 || !ok2 {
		return &BuildError{FeatureID: fid, Code: CodeBuildError, Message: fmt.Sprintf("target %q or tool %q body not found", p.Target, p.Tool)}
	}
	out, err := boolean.Run(a, tc, p.Operation, targetEntry.Body, toolEntry.Body, targetEntry.History, toolEntry.History)
	if err != nil {
		return &BuildError{FeatureID: fid, Code: booleanErrorCode(err), Message: err.Error()}
	}
	for _, w := range out.Warnings {
		s.log.Info(w, "feature", fid)
	}
	targetEntry.Body = out.Body
	targetEntry.History = out.History
	bodyMap[p.Target] = targetEntry
	delete(bodyMap, p.Tool)
	*bodyOrder = removeKey(*bodyOrder, p.Tool)
	return nil
}

// applyBodyPolicy implements the body-merge policy for an
// extrude/revolve result: add-vs-cut first, then the merge scope.
func (s *SolidSession) applyBodyPolicy(a *topo.Arena, tc *tol.Context, bodyMap map[string]BodyEntry, bodyOrder *[]string, fid string, op Op, scope MergeScope, targets []string, name, color string, res feature.Result) *BuildError {
	newBody := res.Body
	newHist := res.History

	if op == OpCut {
		accepted := false
		for _, key := range append([]string(nil), *bodyOrder...) {
			entry := bodyMap[key]
			if !boolean.Overlaps(a, entry.Body, newBody) {
				continue
			}
			out, err := boolean.Run(a, tc, boolean.Subtract, entry.Body, newBody, entry.History, newHist)
			if errors.Is(err, boolean.ErrEmptyResult) {
				// Cut-to-empty: the cutter consumed the whole body.
				a.DeleteBody(entry.Body)
				delete(bodyMap, key)
				*bodyOrder = removeKey(*bodyOrder, key)
				accepted = true
				continue
			}
			if err != nil {
				s.log.Info("cut skipped against one body", "feature", fid, "target", key, "error", err.Error())
				continue
			}
			entry.Body = out.Body
			entry.History = out.History
			bodyMap[key] = entry
			accepted = true
		}
		a.DeleteBody(newBody)
		if !accepted {
			return &BuildError{FeatureID: fid, Code: CodeCutFailed, Message: "no existing body intersects the cut"}
		}
		return nil
	}

	if scope == "" {
		scope = MergeAuto
	}

	switch scope {
	case MergeNew:
		bodyMap[fid] = BodyEntry{Body: newBody, Name: name, Color: color, History: newHist}
		*bodyOrder = append(*bodyOrder, fid)
		return nil

	case MergeSpecific:
		if len(targets) == 0 {
			return &BuildError{FeatureID: fid, Code: CodeBuildError, Message: "mergeScope specific requires targetBodies"}
		}
		accepted := false
		for _, key := range targets {
			entry, ok := bodyMap[key]
			if !ok {
				continue
			}
			out, err := boolean.Run(a, tc, boolean.Union, entry.Body, newBody, entry.History, newHist)
			if err != nil {
				s.log.Info("specific merge skipped against one target", "feature", fid, "target", key, "error", err.Error())
				continue
			}
			entry.Body = out.Body
			entry.History = out.History
			bodyMap[key] = entry
			accepted = true
		}
		if !accepted {
			return &BuildError{FeatureID: fid, Code: CodeBooleanFailed, Message: "no named target body accepted the merge"}
		}
		return nil

	default: // MergeAuto
		if len(*bodyOrder) == 0 {
			bodyMap[fid] = BodyEntry{Body: newBody, Name: name, Color: color, History: newHist}
			*bodyOrder = append(*bodyOrder, fid)
			return nil
		}
		for _, key := range *bodyOrder {
			entry := bodyMap[key]
			out, err := boolean.Run(a, tc, boolean.Union, entry.Body, newBody, entry.History, newHist)
			if err != nil {
				continue
			}
			entry.Body = out.Body
			entry.History = out.History
			bodyMap[key] = entry
			return nil
		}
		return &BuildError{FeatureID: fid, Code: CodeBooleanFailed, Message: "no existing body accepted the union"}
	}
}

func removeKey(keys []string, key string) []string {
	out := keys[:0]
	for _, k := range keys {
		if k != key {
			out = append(out, k)
		}
	}
	return out
}

// resolvePlane resolves a SketchPlaneRef to a concrete plane. A
// datumRole ref prefers a pre-scanned custom plane feature
// registered under the same role, falling back to the canonical
// standard plane.
func (s *SolidSession) resolvePlane(ref SketchPlaneRef, planeByRole map[string]geom.Plane, featuresByID map[string]Feature, bodyMap map[string]BodyEntry) (geom.Plane, error) {
	switch ref.Kind {
	case SketchPlaneDatumRole:
		if p, ok := planeByRole[ref.Ref]; ok {
			return p, nil
		}
		return geom.StandardPlane(ref.Ref), nil

	case SketchPlaneFeatureID:
		pf, ok := featuresByID[ref.Ref]
		if !ok || pf.Type != KindPlane || pf.Plane == nil {
			return geom.Plane{}, fmt.Errorf("plane feature %q not found", ref.Ref)
		}
		return geom.NewPlane(pf.Plane.Origin, pf.Plane.Normal, pf.Plane.XDir), nil

	case SketchPlaneFaceRef:
		ownerID, faceIndex, err := parseFaceRef(ref.Ref)
		if err != nil {
			return geom.Plane{}, err
		}
		entry, ok := bodyMap[ownerID]
		if !ok {
			return geom.Plane{}, fmt.Errorf("faceRef %q names an unknown body", ref.Ref)
		}
		faces := s.arena.AllFacesOfBody(entry.Body)
		if faceIndex < 0 || faceIndex >= len(faces) {
			return geom.Plane{}, fmt.Errorf("faceRef %q index out of range", ref.Ref)
		}
		surf := s.arena.Surface(s.arena.FaceSurface(faces[faceIndex]))
		if !surf.IsPlanar() {
			return geom.Plane{}, fmt.Errorf("faceRef %q names a non-planar face", ref.Ref)
		}
		return surf.Plane, nil

	default:
		return geom.Plane{}, fmt.Errorf("unknown sketch plane ref kind %q", ref.Kind)
	}
}

// parseFaceRef splits a "face:<featureId>:<faceIndex>" string.
func parseFaceRef(ref string) (string, int, error) {
	parts := strings.Split(ref, ":")
	if len(parts) != 3 || parts[0] != "face" {
		return "", 0, fmt.Errorf("malformed faceRef %q", ref)
	}
	idx, err := strconv.Atoi(parts[2])
	if err != nil {
		return "", 0, fmt.Errorf("malformed faceRef %q: %w", ref, err)
	}
	return parts[1], idx, nil
}
