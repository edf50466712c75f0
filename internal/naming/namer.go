package naming

import "strings"

// SplitName splits name at its last period. ok is false when name has no
// period, in which case stem is the whole name and ext is empty.
func SplitName(name string) (stem, ext string, ok bool) {
	i := strings.LastIndexByte(name, '.')
	if i < 0 {
		return name, "", false
	}
	return name[:i], name[i+1:], true
}

// JoinName is the inverse of [SplitName].
func JoinName(stem, ext string, ok bool) string {
	if !ok {
		return stem
	}
	return stem + "." + ext
}

// ComputeName returns the sanitized form of name: members of set are replaced
// in the stem, the extension is left alone.
//
//	ComputeName("b file.TXT", {' '}) == "b_file.TXT"
//	ComputeName("x y", {' '})        == "x_y"
//	ComputeName("a.b-c.tar", {'.', '-'}) == "a_b_c.tar"
func ComputeName(name string, set ReplacementSet) string {
	stem, ext, ok := SplitName(name)
	return JoinName(set.Apply(stem), ext, ok)
}

// ComputeWholeName replaces members of set across the entire name, periods in
// the extension position included. Used for directory names when they are not
// treated as having an extension.
func ComputeWholeName(name string, set ReplacementSet) string {
	return set.Apply(name)
}
