package sbw

import (
	"bytes"
	"fmt"
	"io"
)

// Format identifies one of the two supported on-disk encodings.
type Format int

const (
	FormatUnknown Format = iota
	FormatV2
	FormatV4
)

func (f Format) String() string {
	switch f {
	case FormatV2:
		return "SBW v2"
	case FormatV4:
		return "SBW v4"
	default:
		return "unknown"
	}
}

const (
	// The v4 magic marker sits after the 12-byte numeric header rather
	// than at offset 0, so detection needs a positioned probe.
	v4MarkerOffset = 12
	v4Marker       = "CBond"

	// Covers both probes: the short quoted v2 magic line and the five
	// marker bytes at offset 12.
	sniffLen = 32
)

// DetectFormat classifies the encoding of rs by inspecting its first bytes.
// The source is repositioned to its start before returning, so a subsequent
// decode sees it from offset 0. Calling it twice yields the same
// classification and the same final position.
func DetectFormat(rs io.ReadSeeker) (Format, error) {
	if _, err := rs.Seek(0, io.SeekStart); err != nil {
		return FormatUnknown, fmt.Errorf("failed to seek to start of source: %w", err)
	}
	prefix := make([]byte, sniffLen)
	n, err := io.ReadFull(rs, prefix)
	if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
		return FormatUnknown, fmt.Errorf("failed to read format probe: %w", err)
	}
	if _, err := rs.Seek(0, io.SeekStart); err != nil {
		return FormatUnknown, fmt.Errorf("failed to rewind source: %w", err)
	}
	return classify(prefix[:n]), nil
}

func classify(prefix []byte) Format {
	line := prefix
	if i := bytes.IndexByte(prefix, '\n'); i >= 0 {
		line = prefix[:i]
	}
	switch string(bytes.TrimSpace(line)) {
	case `"SBW 2"`, `"SBW 3"`:
		return FormatV2
	}
	if len(prefix) >= v4MarkerOffset+len(v4Marker) &&
		string(prefix[v4MarkerOffset:v4MarkerOffset+len(v4Marker)]) == v4Marker {
		return FormatV4
	}
	return FormatUnknown
}
