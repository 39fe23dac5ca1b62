package refindex

import "github.com/solidcore/kernel/topo"

// Index is the reference index for one body: faces and edges in the
// same order the tessellator (package tessellate) visits
// them, so a caller holding a triangle's FaceID or a segment's EdgeID
// can look up the matching stref string by position.
type Index struct {
	FaceIDs  []topo.FaceID
	FaceRefs []string

	EdgeIDs  []topo.EdgeID
	EdgeRefs []string
}

// FaceIndex returns the position of face within FaceIDs, or -1 if
// face is not present.
func (idx Index) FaceIndex(face topo.FaceID) int {
	for i, f := range idx.FaceIDs {
		if f == face {
			return i
		}
	}
	return -1
}

// EdgeIndex returns the position of edge within EdgeIDs, or -1 if
// edge is not present.
func (idx Index) EdgeIndex(edge topo.EdgeID) int {
	for i, e := range idx.EdgeIDs {
		if e == edge {
			return i
		}
	}
	return -1
}

// Snapshot is a whole rebuild's reference index, keyed by the body
// map key (the feature id that currently owns each body). Package resolve scans
// every entry of a Snapshot when resolving a persistent reference,
// since the feature that produced a face is not necessarily the
// feature that currently owns its body after a merge.
type Snapshot map[string]Index
