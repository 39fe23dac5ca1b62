// Package refindex builds the per-rebuild reference index: for every
// face and edge of a body, a geometric fingerprint
// plus a feature-local selector, combined into a stref string that
// survives future rebuilds as long as the face/edge's producing
// feature and role do not change. The index is never persisted; the
// rebuild engine (package rebuild) recomputes it every time and hands
// it to package resolve on demand.
package refindex
