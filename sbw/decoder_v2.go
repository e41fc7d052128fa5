package sbw

import (
	"bufio"
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/bondkeeper/sbw-convert/inventory"
)

// decodeV2 parses the line-oriented text encoding: a quoted version line
// ("SBW 2" or "SBW 3"), a quoted title line, a redemption date line (not
// modeled), an integer record count, then count comma-separated record
// lines in the order serial number, denomination, series, issue date.
// Record lines may carry an arbitrarily long ignored tail after the fourth
// comma, well past bufio's default 64KiB token cap.
const maxV2LineLen = 16 << 20

func decodeV2(data []byte) (*inventory.Document, error) {
	sc := bufio.NewScanner(bytes.NewReader(data))
	sc.Buffer(make([]byte, 0, bufio.MaxScanTokenSize), maxV2LineLen)

	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return nil, fmt.Errorf("%w: reading lines: %v", ErrParse, err)
		}
		return nil, fmt.Errorf("%w: empty source", ErrBadMagic)
	}
	switch strings.TrimSpace(sc.Text()) {
	case `"SBW 2"`, `"SBW 3"`:
	default:
		return nil, fmt.Errorf("%w: first line is not an SBW version marker", ErrBadMagic)
	}

	title := ""
	if sc.Scan() {
		title = trimField(sc.Text())
	}

	sc.Scan() // redemption date, not modeled

	countLine := ""
	if sc.Scan() {
		countLine = strings.TrimSpace(sc.Text())
	} else if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("%w: reading lines: %v", ErrParse, err)
	}
	count, err := strconv.Atoi(countLine)
	if err != nil {
		return nil, fmt.Errorf("%w: record count %q is not an integer", ErrParse, countLine)
	}

	doc := inventory.NewDocument(title)
	for i := 0; i < count && sc.Scan(); i++ {
		// Only the first four commas delimit; anything after the fifth
		// field is ignored.
		fields := strings.SplitN(sc.Text(), ",", 5)
		if len(fields) < 4 {
			// Short lines are skipped, not errors. Accepted quirk of the
			// legacy format.
			continue
		}
		serial := trimField(fields[0])
		denomText := trimField(fields[1])
		series := trimField(fields[2])
		issueDate := trimField(fields[3])

		denom, err := decimal.NewFromString(denomText)
		if err != nil {
			return nil, fmt.Errorf("%w: denomination %q for serial %q is not numeric", ErrParse, denomText, serial)
		}
		bond, err := inventory.NewBond(series, issueDate, denom, serial)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrParse, err)
		}
		doc.AddBond(bond)
	}
	// A scanner failure mid-loop would otherwise look like EOF and yield a
	// silently partial document.
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("%w: reading lines: %v", ErrParse, err)
	}
	return doc, nil
}

// trimField strips surrounding whitespace, then surrounding double quotes.
func trimField(s string) string {
	return strings.Trim(strings.TrimSpace(s), `"`)
}
