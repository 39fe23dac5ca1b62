package profile

import (
	"math"
	"sort"

	"github.com/solidcore/kernel/geom"
	"github.com/solidcore/kernel/loopid"
	"github.com/solidcore/kernel/sketch"
)

// endpoints returns the two sketch point identifiers an entity
// connects, or ok=false for a circle (which has no endpoints — it is
// always its own closed loop).
func endpoints(e sketch.Entity) (start, end string, ok bool) {
	switch e.Kind {
	case sketch.EntityLine, sketch.EntityArc:
		return e.Start, e.End, true
	default:
		return "", "", false
	}
}

// Build extracts closed profile loops from solved sketch data on the
// given plane. requireClosed controls whether an open
// chain returns ErrOpenProfile (extrude/revolve always require
// closed profiles) or is silently dropped (reserved for callers that
// only want fully-closed loops and tolerate partial sketches).
func Build(data sketch.Data, solved map[string]geom.Vec2, plane geom.Plane, requireClosed bool) (Profile, error) {
	prof := Profile{Plane: plane}

	// Deterministic entity iteration order for reproducible traces.
	var ids []string
	for id := range data.EntitiesByID {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	// incident[pointID] = entity IDs touching that point, in
	// deterministic order.
	incident := make(map[string][]string)
	for _, id := range ids {
		e := data.EntitiesByID[id]
		start, end, ok := endpoints(e)
		if !ok {
			continue
		}
		incident[start] = append(incident[start], id)
		incident[end] = append(incident[end], id)
	}

	visited := make(map[string]bool)
	maxSteps := len(ids) + 1

	for _, id := range ids {
		if visited[id] {
			continue
		}
		e := data.EntitiesByID[id]

		if e.Kind == sketch.EntityCircle {
			visited[id] = true
			loop, err := buildCircleLoop(e, solved, plane)
			if err != nil {
				continue
			}
			prof.Loops = append(prof.Loops, loop)
			continue
		}

		start, end, ok := endpoints(e)
		if !ok {
			continue
		}

		var loopEntities []string
		curStart := start
		curEnd := end
		curID := id
		closed := false

		for step := 0; step < maxSteps; step++ {
			visited[curID] = true
			loopEntities = append(loopEntities, curID)

			if curEnd == start {
				closed = true
				break
			}

			next := firstUnvisitedAt(incident[curEnd], curID, visited)
			if next == "" {
				break
			}
			ne := data.EntitiesByID[next]
			ns, nend, _ := endpoints(ne)
			if ns == curEnd {
				curStart, curEnd = ns, nend
			} else {
				curStart, curEnd = nend, ns
			}
			_ = curStart
			curID = next
		}

		if !closed {
			if requireClosed {
				return Profile{}, ErrOpenProfile
			}
			continue
		}

		loop, err := buildLoop(loopEntities, data, solved, plane)
		if err != nil {
			continue
		}
		prof.Loops = append(prof.Loops, loop)
	}

	return prof, nil
}

// firstUnvisitedAt returns the first entity ID in candidates other
// than exclude that has not yet been visited, or "" if none.
func firstUnvisitedAt(candidates []string, exclude string, visited map[string]bool) string {
	for _, c := range candidates {
		if c == exclude || visited[c] {
			continue
		}
		return c
	}
	return ""
}

func buildLoop(entityIDs []string, data sketch.Data, solved map[string]geom.Vec2, plane geom.Plane) (Loop, error) {
	edges := make([]Edge, 0, len(entityIDs))
	for _, id := range entityIDs {
		e := data.EntitiesByID[id]
		curve, err := entityCurve(e, solved, plane)
		if err != nil {
			return Loop{}, err
		}
		edges = append(edges, Edge{EntityID: id, Curve: curve, IsConstruction: e.IsConstruction})
	}
	return Loop{ID: loopid.Compute(entityIDs), Edges: edges}, nil
}

func buildCircleLoop(e sketch.Entity, solved map[string]geom.Vec2, plane geom.Plane) (Loop, error) {
	curve, err := entityCurve(e, solved, plane)
	if err != nil {
		return Loop{}, err
	}
	return Loop{
		ID:    loopid.Compute([]string{e.ID}),
		Edges: []Edge{{EntityID: e.ID, Curve: curve, IsConstruction: e.IsConstruction}},
	}, nil
}

func entityCurve(e sketch.Entity, solved map[string]geom.Vec2, plane geom.Plane) (geom.Curve, error) {
	switch e.Kind {
	case sketch.EntityLine:
		start, ok1 := solved[e.Start]
		end, ok2 := solved[e.End]
		if !ok1 || !ok2 {
			return geom.Curve{}, ErrOpenProfile
		}
		return geom.NewLineCurve(plane.From2D(start), plane.From2D(end)), nil
	case sketch.EntityArc:
		center, ok1 := solved[e.Center]
		start, ok2 := solved[e.Start]
		end, ok3 := solved[e.End]
		if !ok1 || !ok2 || !ok3 {
			return geom.Curve{}, ErrOpenProfile
		}
		radius := start.Sub(center).Length()
		startAng := math.Atan2(start.Y-center.Y, start.X-center.X)
		endAng := math.Atan2(end.Y-center.Y, end.X-center.X)
		return geom.NewArcCurve(plane.From2D(center), radius, startAng, endAng, e.CCW), nil
	case sketch.EntityCircle:
		center, ok := solved[e.Center]
		if !ok {
			return geom.Curve{}, ErrOpenProfile
		}
		return geom.NewCircleCurve(plane.From2D(center), e.Radius), nil
	default:
		return geom.Curve{}, ErrOpenProfile
	}
}
