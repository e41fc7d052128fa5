package inventory

import (
	"fmt"

	"github.com/goccy/go-json"
)

// JSONCodec renders a Document as a JSON object with a "title" string and a
// "bonds" array. Denominations are emitted as bare JSON numbers, not quoted
// strings. Compact and indented output carry identical content.
type JSONCodec struct{}

type jsonBond struct {
	Series       string          `json:"series"`
	IssueDate    string          `json:"issue_date"`
	Denomination json.RawMessage `json:"denomination"`
	SerialNumber string          `json:"serial_number"`
}

type jsonDocument struct {
	Title string     `json:"title"`
	Bonds []jsonBond `json:"bonds"`
}

func (cdc JSONCodec) wire(doc *Document) jsonDocument {
	bonds := make([]jsonBond, len(doc.Bonds))
	for i, b := range doc.Bonds {
		bonds[i] = jsonBond{
			Series:       b.Series,
			IssueDate:    b.IssueDate,
			Denomination: json.RawMessage(b.Denomination.String()),
			SerialNumber: b.SerialNumber,
		}
	}
	return jsonDocument{Title: doc.Title, Bonds: bonds}
}

// Encode returns the compact form.
func (cdc JSONCodec) Encode(doc *Document) ([]byte, error) {
	b, err := json.Marshal(cdc.wire(doc))
	if err != nil {
		return nil, fmt.Errorf("failed to encode document: %w", err)
	}
	return b, nil
}

// EncodeIndent returns the pretty form with 2-space indentation.
func (cdc JSONCodec) EncodeIndent(doc *Document) ([]byte, error) {
	b, err := json.MarshalIndent(cdc.wire(doc), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode document: %w", err)
	}
	return b, nil
}
