package topo

// AddFace creates a face with the given outer loop and surface,
// attaching the loop to the face. Inner (hole) loops are attached
// afterward with AddInnerLoop.
func (a *Arena) AddFace(outer LoopID, surface SurfaceID) FaceID {
	a.faces = append(a.faces, faceRow{outer: outer, surface: surface, shell: NullID})
	id := FaceID(len(a.faces) - 1)
	a.liveFaces++
	if !outer.IsNull() {
		a.loops[outer].face = id
	}
	return id
}

// AddInnerLoop attaches loop as a hole of face.
func (a *Arena) AddInnerLoop(face FaceID, loop LoopID) {
	a.faces[face].inner = append(a.faces[face].inner, loop)
	a.loops[loop].face = face
}

// FaceOuterLoop returns face's outer loop.
func (a *Arena) FaceOuterLoop(face FaceID) LoopID { return a.faces[face].outer }

// FaceInnerLoops returns face's hole loops.
func (a *Arena) FaceInnerLoops(face FaceID) []LoopID { return a.faces[face].inner }

// FaceSurface returns the surface referenced by face.
func (a *Arena) FaceSurface(face FaceID) SurfaceID { return a.faces[face].surface }

// FaceShell returns the shell face belongs to.
func (a *Arena) FaceShell(face FaceID) ShellID { return a.faces[face].shell }

// FaceReversed reports whether face's outward normal is flipped
// relative to its surface's natural normal.
func (a *Arena) FaceReversed(face FaceID) bool { return a.faces[face].reversed }

// SetFaceReversed sets face's reversed flag.
func (a *Arena) SetFaceReversed(face FaceID, reversed bool) { a.faces[face].reversed = reversed }

// FaceCount returns the number of live faces.
func (a *Arena) FaceCount() int { return a.liveFaces }

// Faces returns every live face handle, in handle order.
func (a *Arena) Faces() []FaceID {
	out := make([]FaceID, 0, a.liveFaces)
	for i, row := range a.faces {
		if !row.deleted {
			out = append(out, FaceID(i))
		}
	}
	return out
}

// ---- shells ----

// AddShell creates an empty shell.
func (a *Arena) AddShell() ShellID {
	a.shells = append(a.shells, shellRow{body: NullID})
	id := ShellID(len(a.shells) - 1)
	a.liveShells++
	return id
}

// AddFaceToShell attaches face to shell (face ∈ shell, shell owns
// face).
func (a *Arena) AddFaceToShell(shell ShellID, face FaceID) {
	a.shells[shell].faces = append(a.shells[shell].faces, face)
	a.faces[face].shell = shell
}

// ShellFaces returns shell's faces.
func (a *Arena) ShellFaces(shell ShellID) []FaceID { return a.shells[shell].faces }

// ShellBody returns the body shell belongs to.
func (a *Arena) ShellBody(shell ShellID) BodyID { return a.shells[shell].body }

// SetShellClosed marks shell's closed flag.
func (a *Arena) SetShellClosed(shell ShellID, closed bool) { a.shells[shell].closed = closed }

// ShellClosed reports shell's closed flag.
func (a *Arena) ShellClosed(shell ShellID) bool { return a.shells[shell].closed }

// ShellCount returns the number of live shells.
func (a *Arena) ShellCount() int { return a.liveShells }

// ---- bodies ----

// AddBody creates an empty body.
func (a *Arena) AddBody() BodyID {
	a.bodies = append(a.bodies, bodyRow{})
	id := BodyID(len(a.bodies) - 1)
	a.liveBodies++
	return id
}

// AddShellToBody attaches shell to body.
func (a *Arena) AddShellToBody(body BodyID, shell ShellID) {
	a.bodies[body].shells = append(a.bodies[body].shells, shell)
	a.shells[shell].body = body
}

// BodyShells returns body's shells.
func (a *Arena) BodyShells(body BodyID) []ShellID { return a.bodies[body].shells }

// DeleteBody logically removes body and every shell/face/loop it
// contains (half-edges, edges, and vertices are left in place: they
// may still be referenced by operation history lookups keyed on
// topology hash, and compaction is optional).
func (a *Arena) DeleteBody(body BodyID) {
	if a.bodies[body].deleted {
		return
	}
	a.bodies[body].deleted = true
	a.liveBodies--
	for _, shell := range a.bodies[body].shells {
		if a.shells[shell].deleted {
			continue
		}
		a.shells[shell].deleted = true
		a.liveShells--
		for _, face := range a.shells[shell].faces {
			if a.faces[face].deleted {
				continue
			}
			a.faces[face].deleted = true
			a.liveFaces--
			for _, loop := range append([]LoopID{a.faces[face].outer}, a.faces[face].inner...) {
				if !loop.IsNull() && !a.loops[loop].deleted {
					a.loops[loop].deleted = true
					a.liveLoops--
				}
			}
		}
	}
}

// BodyCount returns the number of live bodies.
func (a *Arena) BodyCount() int { return a.liveBodies }

// Bodies returns every live body handle, in handle order.
func (a *Arena) Bodies() []BodyID {
	out := make([]BodyID, 0, a.liveBodies)
	for i, row := range a.bodies {
		if !row.deleted {
			out = append(out, BodyID(i))
		}
	}
	return out
}

// AllFacesOfBody returns every live face across every shell of body.
func (a *Arena) AllFacesOfBody(body BodyID) []FaceID {
	var out []FaceID
	for _, shell := range a.bodies[body].shells {
		if a.shells[shell].deleted {
			continue
		}
		for _, f := range a.shells[shell].faces {
			if !a.faces[f].deleted {
				out = append(out, f)
			}
		}
	}
	return out
}

// AllEdgesOfBody returns the set of distinct edges referenced by any
// half-edge of any face of body.
func (a *Arena) AllEdgesOfBody(body BodyID) []EdgeID {
	seen := make(map[EdgeID]bool)
	var out []EdgeID
	for _, f := range a.AllFacesOfBody(body) {
		loops := append([]LoopID{a.faces[f].outer}, a.faces[f].inner...)
		for _, loop := range loops {
			if loop.IsNull() {
				continue
			}
			for _, h := range a.LoopHalfEdges(loop) {
				e := a.halfEdges[h].edge
				if !seen[e] {
					seen[e] = true
					out = append(out, e)
				}
			}
		}
	}
	return out
}
