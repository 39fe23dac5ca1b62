// Package loopid computes the stable, rotation-invariant sketch loop
// identifier: given an ordered cyclic list of sketch
// entity identifiers, rotate so the lexicographically smallest
// identifier comes first, join, hash with a deterministic
// non-cryptographic hash, and emit as "loop:<base36>". The sentinel
// "loop:unknown" is used when no stable cycle could be determined; a
// sentinel always forces "ambiguous" resolution downstream (package
// resolve).
package loopid
