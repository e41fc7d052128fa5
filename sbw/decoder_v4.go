package sbw

import (
	"encoding/binary"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/bondkeeper/sbw-convert/inventory"
)

const (
	v4HeaderLen = 12     // six little-endian uint16s
	v4BlockLen  = 21 * 4 // twenty-one little-endian uint32s

	// 0-based word offsets into a record block. The remaining words are
	// reserved and not modeled.
	v4DenomWord = 6
	v4IssueWord = 10

	// The binary encoding carries no title field.
	v4Title = "Imported SBW4 Inventory"
)

// Series codes retained by the import; records with any other code
// (including empty) are dropped without error.
var v4SeriesCodes = map[string]struct{}{
	"E": {}, "S": {}, "EE": {}, "I": {},
}

// decodeV4 parses the binary encoding: a 12-byte numeric header, the
// 5-byte CBond marker, then count records. Each record is an 84-byte fixed
// block followed by three length-prefixed fields (notes, serial number,
// series code) and a 2-byte separator between records but not after the
// last. Any short read aborts the decode; there is no resync.
func decodeV4(data []byte) (*inventory.Document, error) {
	cur := &cursor{buf: data}

	hdr, err := cur.take(v4HeaderLen, "file header")
	if err != nil {
		return nil, err
	}
	// Of the six header words only the third, the record count, is
	// modeled. The first is the redemption date, the rest are reserved.
	count := int(binary.LittleEndian.Uint16(hdr[4:6]))

	if err := cur.skip(len(v4Marker), "format marker"); err != nil {
		return nil, err
	}

	doc := inventory.NewDocument(v4Title)
	for i := 0; i < count; i++ {
		block, err := cur.take(v4BlockLen, "record block")
		if err != nil {
			return nil, err
		}
		denomRaw := binary.LittleEndian.Uint32(block[4*v4DenomWord:])
		issueRaw := binary.LittleEndian.Uint32(block[4*v4IssueWord:])

		// Free-text notes: content discarded, but the bytes must be
		// consumed to keep the cursor aligned.
		if _, err := cur.lengthPrefixed("notes"); err != nil {
			return nil, err
		}
		serial, err := cur.lengthPrefixed("serial number")
		if err != nil {
			return nil, err
		}
		series, err := cur.lengthPrefixed("series code")
		if err != nil {
			return nil, err
		}

		if i < count-1 {
			if err := cur.skip(2, "record separator"); err != nil {
				return nil, err
			}
		}

		if _, ok := v4SeriesCodes[strings.ToUpper(string(series))]; !ok {
			continue
		}

		// The raw denomination word is kept as-is; the format gives no
		// evidence of a scale factor.
		bond, err := inventory.NewBond(
			string(series),
			formatIssueMonths(int(issueRaw)),
			decimal.NewFromInt(int64(denomRaw)),
			string(serial),
		)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrParse, err)
		}
		doc.AddBond(bond)
	}
	return doc, nil
}
