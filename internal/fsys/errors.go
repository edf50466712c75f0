package fsys

import "errors"

// errNoReplaceUnsupported is returned by renameNoReplace when the platform or
// the filesystem cannot rename without replacing.
var errNoReplaceUnsupported = errors.New("no-replace rename not supported")
