//go:build !linux

package fsys

func renameNoReplace(oldPath, newPath string) error {
	return errNoReplaceUnsupported
}
