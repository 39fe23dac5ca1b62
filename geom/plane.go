package geom

import "math"

// Plane is a datum/surface plane: an origin and an orthonormal
// (xDir, yDir, normal) frame with normal = xDir x yDir.
type Plane struct {
	Origin Vec3
	Normal Vec3
	XDir   Vec3
	YDir   Vec3
}

// NewPlane builds a Plane from an origin, a normal, and a candidate
// x-direction. normal and xDir are normalized; yDir is derived as
// normal x xDir so the frame is right-handed, then xDir is
// re-derived as yDir x normal to guarantee orthogonality even when
// the caller's xDir was not exactly perpendicular to normal.
func NewPlane(origin, normal, xDirHint Vec3) Plane {
	n := normal.Normalized()
	x := xDirHint.Sub(n.Scale(xDirHint.Dot(n))).Normalized()
	y := n.Cross(x).Normalized()
	x = y.Cross(n).Normalized()
	return Plane{Origin: origin, Normal: n, XDir: x, YDir: y}
}

// StandardPlane builds one of the three canonical datum planes.
func StandardPlane(role string) Plane {
	switch role {
	case "xy":
		return NewPlane(Vec3{}, Vec3{Z: 1}, Vec3{X: 1})
	case "xz":
		return NewPlane(Vec3{}, Vec3{Y: -1}, Vec3{X: 1})
	case "yz":
		return NewPlane(Vec3{}, Vec3{X: 1}, Vec3{Y: 1})
	default:
		return NewPlane(Vec3{}, Vec3{Z: 1}, Vec3{X: 1})
	}
}

// To2D projects a 3D point onto this plane's (xDir, yDir) coordinates,
// measured from Origin. It does not check that p actually lies on the
// plane; callers that need that guarantee should check DistanceTo first.
func (p Plane) To2D(point Vec3) Vec2 {
	rel := point.Sub(p.Origin)
	return Vec2{X: rel.Dot(p.XDir), Y: rel.Dot(p.YDir)}
}

// From2D maps in-plane coordinates back to a 3D point.
func (p Plane) From2D(uv Vec2) Vec3 {
	return p.Origin.Add(p.XDir.Scale(uv.X)).Add(p.YDir.Scale(uv.Y))
}

// DistanceTo returns the signed distance from point to the plane along
// Normal (positive on the side Normal points toward).
func (p Plane) DistanceTo(point Vec3) float64 {
	return point.Sub(p.Origin).Dot(p.Normal)
}

// Offset returns a copy of p translated along Normal by dist.
func (p Plane) Offset(dist float64) Plane {
	p.Origin = p.Origin.Add(p.Normal.Scale(dist))
	return p
}

// Reversed returns a copy of p with Normal (and YDir, to keep the
// frame right-handed) flipped.
func (p Plane) Reversed() Plane {
	p.Normal = p.Normal.Neg()
	p.YDir = p.YDir.Neg()
	return p
}

// PlaneIntersection computes the 3D line along which two planes
// intersect, returned as a point on the line and a unit direction.
// ok is false when the planes are parallel (within angleTol of the
// normals being collinear).
func PlaneIntersection(a, b Plane, angleTol float64) (point, direction Vec3, ok bool) {
	dir := a.Normal.Cross(b.Normal)
	if dir.Length() <= angleTol {
		return Vec3{}, Vec3{}, false
	}
	dir = dir.Normalized()

	// Solve for a point on both planes using the standard two-plane
	// intersection formula: pick the axis where dir has the largest
	// component to avoid near-singular systems.
	n1, n2 := a.Normal, b.Normal
	d1 := n1.Dot(a.Origin)
	d2 := n2.Dot(b.Origin)

	absX, absY, absZ := math.Abs(dir.X), math.Abs(dir.Y), math.Abs(dir.Z)
	var px, py, pz float64
	switch {
	case absZ >= absX && absZ >= absY:
		// Solve in XY for z=0.
		det := n1.X*n2.Y - n2.X*n1.Y
		px = (d1*n2.Y - d2*n1.Y) / det
		py = (n1.X*d2 - n2.X*d1) / det
		pz = 0
	case absY >= absX:
		det := n1.X*n2.Z - n2.X*n1.Z
		px = (d1*n2.Z - d2*n1.Z) / det
		pz = (n1.X*d2 - n2.X*d1) / det
		py = 0
	default:
		det := n1.Y*n2.Z - n2.Y*n1.Z
		py = (d1*n2.Z - d2*n1.Z) / det
		pz = (n1.Y*d2 - n2.Y*d1) / det
		px = 0
	}
	return Vec3{X: px, Y: py, Z: pz}, dir, true
}
