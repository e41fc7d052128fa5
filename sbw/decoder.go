// Package sbw decodes the two legacy on-disk encodings of paper savings
// bond inventories (the line-oriented "SBW 2"/"SBW 3" text format and the
// binary CBond v4 format) into an inventory.Document. Format detection and
// decoding are separate steps: DetectFormat classifies a source without
// consuming it, DetectAndDecode does both.
package sbw

import (
	"fmt"
	"io"
	"os"

	"github.com/bondkeeper/sbw-convert/inventory"
)

// DetectAndDecode sniffs the encoding of rs and runs the matching decoder
// over the whole source. On any failure no document is returned; the error
// wraps ErrBadMagic or ErrParse. The returned document is exclusively the
// caller's.
func DetectAndDecode(rs io.ReadSeeker) (*inventory.Document, error) {
	format, err := DetectFormat(rs)
	if err != nil {
		return nil, err
	}
	if format == FormatUnknown {
		return nil, fmt.Errorf("%w: no SBW version marker found", ErrBadMagic)
	}

	data, err := io.ReadAll(rs)
	if err != nil {
		return nil, fmt.Errorf("%w: reading source: %v", ErrParse, err)
	}

	switch format {
	case FormatV2:
		return decodeV2(data)
	case FormatV4:
		return decodeV4(data)
	default:
		return nil, fmt.Errorf("%w: no decoder for %s", ErrBadMagic, format)
	}
}

// DecodeFile opens the file at path and decodes it. A file that does not
// exist or cannot be opened yields an error wrapping ErrCannotOpen.
func DecodeFile(path string) (*inventory.Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCannotOpen, err)
	}
	defer f.Close()
	return DetectAndDecode(f)
}
