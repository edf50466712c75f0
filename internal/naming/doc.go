// Package naming holds the pure name transformation (stem/extension split and
// character replacement) and the collision-safe renamer built on top of it.
//
// Name rule: a name is split at its last period. Characters from the active
// [ReplacementSet] are replaced with '_' in the stem only; the extension is
// kept as-is. A name without a period is all stem and gets no period appended.
//
// Collision rule: when a target already exists, "_2" is appended to the stem
// of the target and the check repeats, so repeated collisions produce
// "name_2", "name_2_2", and so on.
package naming
