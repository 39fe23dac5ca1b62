// Package rebuild implements the top-level rebuild engine: given a
// feature document (a feature map plus an ordered feature
// id list) it drives the topology arena (package topo) through the
// sketch solver (package sketch), profile builder (package profile),
// extrude/revolve (package feature), planar boolean evaluator (package
// boolean), tessellator (package tessellate), and reference index
// builder (package refindex) one feature at a time, and assembles the
// resulting RebuildResult.
//
// A SolidSession owns exactly one arena and is not safe for concurrent
// use. Independent rebuilds must use independent sessions.
package rebuild
