// Package history implements the per-body operation history: the
// record of which input face produced which output face, threaded
// through every extrude/revolve and merged through every boolean. The
// profileEdgeToEntityId chain — sketch entity to profile edge to
// generated face hash to post-boolean output face hash — is what
// makes persistent references (package stref, via package refindex)
// survive booleans, and this package is where that chain is built and
// merged.
package history
