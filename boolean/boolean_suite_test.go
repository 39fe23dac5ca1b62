package boolean_test

import (
	"math"
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/solidcore/kernel/boolean"
	"github.com/solidcore/kernel/feature"
	"github.com/solidcore/kernel/geom"
	"github.com/solidcore/kernel/history"
	"github.com/solidcore/kernel/profile"
	"github.com/solidcore/kernel/sketch"
	"github.com/solidcore/kernel/tol"
	"github.com/solidcore/kernel/topo"
	"github.com/solidcore/kernel/validate"
)

func TestBoolean(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Boolean Suite")
}

// newBox extrudes the standard 10x10 square on the xy plane, offset
// along Z by originZ, into a box of the given distance.
func newBox(a *topo.Arena, tc *tol.Context, originZ, distance float64, sourceID string) (topo.BodyID, *history.Record) {
	data, solved := squareSketchData()
	plane := geom.StandardPlane("xy").Offset(originZ)
	prof, err := profile.Build(data, solved, plane, true)
	Expect(err).NotTo(HaveOccurred())

	res, err := feature.Extrude(a, tc, prof, feature.ExtrudeParams{
		Extent: feature.ExtentBlind, Distance: distance, DirectionSign: 1, SourceFeatureID: sourceID,
	})
	Expect(err).NotTo(HaveOccurred())
	return res.Body, res.History
}

// newThroughPost extrudes a narrow square, centered on the origin, on
// the xy plane offset along Z by originZ, tall enough to pass all the
// way through a newBox body spanning the same Z range.
func newThroughPost(a *topo.Arena, tc *tol.Context, half, originZ, distance float64, sourceID string) (topo.BodyID, *history.Record) {
	data, solved := squareSketchDataHalf(half)
	plane := geom.StandardPlane("xy").Offset(originZ)
	prof, err := profile.Build(data, solved, plane, true)
	Expect(err).NotTo(HaveOccurred())

	res, err := feature.Extrude(a, tc, prof, feature.ExtrudeParams{
		Extent: feature.ExtentBlind, Distance: distance, DirectionSign: 1, SourceFeatureID: sourceID,
	})
	Expect(err).NotTo(HaveOccurred())
	return res.Body, res.History
}

// newTiltedBox extrudes the standard square on a plane tilted about
// the global Y axis by angle radians: a cutter whose faces line up
// with none of a newBox body's own face planes.
func newTiltedBox(a *topo.Arena, tc *tol.Context, origin geom.Vec3, angle, distance float64, sourceID string) (topo.BodyID, *history.Record) {
	data, solved := squareSketchData()
	normal := geom.RotateAboutAxis(geom.Vec3{Z: 1}, geom.Vec3{}, geom.Vec3{Y: 1}, angle)
	xDir := geom.RotateAboutAxis(geom.Vec3{X: 1}, geom.Vec3{}, geom.Vec3{Y: 1}, angle)
	plane := geom.NewPlane(origin, normal, xDir)
	prof, err := profile.Build(data, solved, plane, true)
	Expect(err).NotTo(HaveOccurred())

	res, err := feature.Extrude(a, tc, prof, feature.ExtrudeParams{
		Extent: feature.ExtentBlind, Distance: distance, DirectionSign: 1, SourceFeatureID: sourceID,
	})
	Expect(err).NotTo(HaveOccurred())
	return res.Body, res.History
}

// revolvedCylinder revolves a square offset from a construction axis
// line by a partial turn, producing a body whose lateral faces are
// cone surfaces rather than planes (boolean.Run rejects non-planar
// input; curved surfaces are out of scope).
func revolvedCylinder(a *topo.Arena, tc *tol.Context) (topo.BodyID, *history.Record) {
	data := sketch.Data{
		PointsByID: map[string]sketch.Point{
			"a1": {ID: "a1", X: 0, Y: -10},
			"a2": {ID: "a2", X: 0, Y: 10},
			"p1": {ID: "p1", X: 3, Y: -5},
			"p2": {ID: "p2", X: 8, Y: -5},
			"p3": {ID: "p3", X: 8, Y: 5},
			"p4": {ID: "p4", X: 3, Y: 5},
		},
		EntitiesByID: map[string]sketch.Entity{
			"axis": {ID: "axis", Kind: sketch.EntityLine, Start: "a1", End: "a2", IsConstruction: true},
			"l1":   {ID: "l1", Kind: sketch.EntityLine, Start: "p1", End: "p2"},
			"l2":   {ID: "l2", Kind: sketch.EntityLine, Start: "p2", End: "p3"},
			"l3":   {ID: "l3", Kind: sketch.EntityLine, Start: "p3", End: "p4"},
			"l4":   {ID: "l4", Kind: sketch.EntityLine, Start: "p4", End: "p1"},
		},
	}
	solved := sketch.Result{
		Status: sketch.StatusSuccess,
		SolvedPoints: map[string]geom.Vec2{
			"a1": {X: 0, Y: -10}, "a2": {X: 0, Y: 10},
			"p1": {X: 3, Y: -5}, "p2": {X: 8, Y: -5}, "p3": {X: 8, Y: 5}, "p4": {X: 3, Y: 5},
		},
		DOF: sketch.DOFReport{IsFullyConstrained: true},
	}
	plane := geom.StandardPlane("xy")
	prof, err := profile.Build(data, solved.SolvedPoints, plane, false)
	Expect(err).NotTo(HaveOccurred())
	Expect(prof.Loops).To(HaveLen(1))

	res, err := feature.Revolve(a, tc, prof, data, solved, feature.RevolveParams{
		AxisEntityID: "axis", SweepAngle: math.Pi, SourceFeatureID: "CYL",
	})
	Expect(err).NotTo(HaveOccurred())
	return res.Body, res.History
}

var _ = Describe("Run", func() {
	var (
		a   *topo.Arena
		tc  *tol.Context
		box topo.BodyID
		hst *history.Record
	)

	BeforeEach(func() {
		a = topo.New()
		tc = tol.New()
		box, hst = newBox(a, tc, 0, 10, "A")
	})

	// union(B, B) is equivalent to B
	// (same volume, same number of outward faces), since every face of
	// one operand coincides exactly with a face of the other and no
	// clipping can change the outer shell.
	Context("when unioning a body with itself", func() {
		It("keeps the same face count and volume as the original body", func() {
			before := len(a.AllFacesOfBody(box))
			beforeVol := solidVolume(a, tc, box)

			res, err := boolean.Run(a, tc, boolean.Union, box, box, hst, hst)

			Expect(err).NotTo(HaveOccurred())
			Expect(a.AllFacesOfBody(res.Body)).To(HaveLen(before))
			Expect(solidVolume(a, tc, res.Body)).To(BeNumerically("~", beforeVol, volumeTol))

			report := validate.Validate(a, tc, res.Body)
			Expect(report.CountBySeverity(validate.SeverityError)).To(BeZero())
		})
	})

	// intersect(B, B) is equivalent to B.
	Context("when intersecting a body with itself", func() {
		It("keeps the same face count and volume as the original body", func() {
			before := len(a.AllFacesOfBody(box))
			beforeVol := solidVolume(a, tc, box)

			res, err := boolean.Run(a, tc, boolean.Intersect, box, box, hst, hst)

			Expect(err).NotTo(HaveOccurred())
			Expect(a.AllFacesOfBody(res.Body)).To(HaveLen(before))
			Expect(solidVolume(a, tc, res.Body)).To(BeNumerically("~", beforeVol, volumeTol))

			report := validate.Validate(a, tc, res.Body)
			Expect(report.CountBySeverity(validate.SeverityError)).To(BeZero())
		})
	})

	// Subtracting a body from itself leaves no volume.
	Context("when subtracting a body from itself", func() {
		It("reports an empty result", func() {
			_, err := boolean.Run(a, tc, boolean.Subtract, box, box, hst, hst)

			Expect(err).To(MatchError(boolean.ErrEmptyResult))
		})
	})

	Context("when one operand is non-planar", func() {
		It("rejects the operation", func() {
			cyl, cylHist := revolvedCylinder(a, tc)

			_, err := boolean.Run(a, tc, boolean.Union, box, cyl, hst, cylHist)

			Expect(err).To(MatchError(boolean.ErrNonPlanarInput))
		})
	})
})

var _ = Describe("Overlaps", func() {
	It("agrees with Run's own disjoint-bodies shortcut", func() {
		a := topo.New()
		tc := tol.New()
		bodyA, histA := newBox(a, tc, 0, 10, "A")
		bodyB, histB := newBox(a, tc, 1000, 10, "B")

		Expect(boolean.Overlaps(a, bodyA, bodyB)).To(BeFalse())

		_, err := boolean.Run(a, tc, boolean.Intersect, bodyA, bodyB, histA, histB)
		Expect(err).To(MatchError(boolean.ErrEmptyResult))
	})
})

var _ = Describe("non-convex seed scenarios", func() {
	var (
		a  *topo.Arena
		tc *tol.Context
	)

	BeforeEach(func() {
		a = topo.New()
		tc = tol.New()
	})

	// a post passing clean through a box leaves the box's own top and
	// bottom caps holed rather than removed, and four reversed tunnel
	// walls sourced from the post's own sides.
	Context("when a through-post is subtracted from a box", func() {
		It("holes both caps and keeps the rest of the box intact", func() {
			bodyA, histA := newBox(a, tc, 0, 10, "A")
			bodyB, histB := newThroughPost(a, tc, 1, -1, 12, "B")

			res, err := boolean.Run(a, tc, boolean.Subtract, bodyA, bodyB, histA, histB)
			Expect(err).NotTo(HaveOccurred())

			Expect(solidVolume(a, tc, res.Body)).To(BeNumerically("~", 1000.0-40.0, volumeTol))
			Expect(capsWithOneHole(a, res.Body)).To(Equal(2))

			report := validate.Validate(a, tc, res.Body)
			Expect(report.CountBySeverity(validate.SeverityError)).To(BeZero())
		})
	})

	// a cutter tilted away from every one of the target's own face
	// planes still derives a correct shared cut line and stitches into
	// a valid, strictly smaller manifold.
	Context("when a tilted box is subtracted from a box", func() {
		It("produces a valid manifold with reduced volume", func() {
			bodyA, histA := newBox(a, tc, 0, 10, "A")
			bodyB, histB := newTiltedBox(a, tc, geom.Vec3{Z: -10}, 20*math.Pi/180, 30, "B")

			res, err := boolean.Run(a, tc, boolean.Subtract, bodyA, bodyB, histA, histB)
			Expect(err).NotTo(HaveOccurred())

			vol := solidVolume(a, tc, res.Body)
			Expect(vol).To(BeNumerically(">", 0.0))
			Expect(vol).To(BeNumerically("<", 1000.0-volumeTol))

			report := validate.Validate(a, tc, res.Body)
			Expect(report.CountBySeverity(validate.SeverityError)).To(BeZero())
		})
	})
})
