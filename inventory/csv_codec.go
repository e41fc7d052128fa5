package inventory

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"
)

// Column order is fixed and intentionally differs from the on-disk record
// order of either source encoding.
var csvHeader = []string{"Series", "Denomination", "Serial Number", "Issue Date"}

// CSVCodec renders a Document as CSV rows. Fields containing the delimiter,
// quote character or a line break are quoted per RFC 4180 by encoding/csv.
type CSVCodec struct {
	IncludeHeader bool
}

// NewCSVCodec returns a codec with the header row enabled.
func NewCSVCodec() CSVCodec {
	return CSVCodec{IncludeHeader: true}
}

// Write renders doc to w.
func (cdc CSVCodec) Write(doc *Document, w io.Writer) error {
	cw := csv.NewWriter(w)
	if cdc.IncludeHeader {
		if err := cw.Write(csvHeader); err != nil {
			return fmt.Errorf("failed to write CSV header: %w", err)
		}
	}
	for _, b := range doc.Bonds {
		row := []string{b.Series, b.Denomination.String(), b.SerialNumber, b.IssueDate}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write CSV row for serial %q: %w", b.SerialNumber, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// Render renders doc to an in-memory string.
func (cdc CSVCodec) Render(doc *Document) (string, error) {
	var sb strings.Builder
	if err := cdc.Write(doc, &sb); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// WriteFile renders doc to the file at path, truncating any existing file.
func (cdc CSVCodec) WriteFile(doc *Document, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create CSV file: %w", err)
	}
	if err := cdc.Write(doc, f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
