// Package pipeline walks a directory tree and renames its entries.
//
// The walk is depth-first and post-order: every child of a directory is
// handled, directories recursively, before the directory's own rename is
// attempted, so paths built from a directory stay valid until its subtree is
// done. Counts are returned up the recursion rather than kept in shared state,
// which lets any subtree be walked on its own.
//
// Per entry: hidden names (leading ".") and excluded paths are skipped, names
// the transformation leaves unchanged are skipped, everything else goes through
// the collision-safe renamer. A failure on one entry is logged and counted; the
// walk continues with its siblings.
package pipeline
