package sbw

import "errors"

// Decode failures wrap one of these three sentinels; callers dispatch with
// errors.Is. A decode either succeeds with a complete document or fails
// with one of these. No partial documents.
var (
	// ErrCannotOpen indicates the source file does not exist or could not
	// be opened for reading.
	ErrCannotOpen = errors.New("cannot open SBW file")

	// ErrBadMagic indicates neither format probe matched.
	ErrBadMagic = errors.New("unrecognized SBW format")

	// ErrParse indicates the format was recognized but the content is
	// malformed: a non-integer record count, an unparseable numeric field,
	// or a short read anywhere a step requires more bytes than remain.
	ErrParse = errors.New("malformed SBW content")
)
