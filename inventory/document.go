// Package inventory holds the in-memory representation of a savings bond
// inventory and the codecs that render it to JSON and CSV.
package inventory

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Bond is a single paper savings bond entry. IssueDate is kept as a display
// string because the two source encodings disagree on representation: the
// text format carries an opaque date string that is passed through verbatim,
// while the binary format encodes months-since-epoch which the decoder
// renders to MM/YYYY before constructing the Bond.
type Bond struct {
	Series       string
	IssueDate    string
	Denomination decimal.Decimal
	SerialNumber string
}

// NewBond constructs a Bond. A negative denomination is rejected; a Bond
// with an unrepresentable face value is never constructed.
func NewBond(series, issueDate string, denom decimal.Decimal, serial string) (Bond, error) {
	if denom.IsNegative() {
		return Bond{}, fmt.Errorf("negative denomination %s for serial %q", denom, serial)
	}
	return Bond{
		Series:       series,
		IssueDate:    issueDate,
		Denomination: denom,
		SerialNumber: serial,
	}, nil
}

// Document is one decoded inventory: a title and the bonds in on-disk order.
// Decoders populate it via AddBond and hand it to the caller; it is not
// mutated afterwards. Bond order is significant and preserved by both
// codecs.
type Document struct {
	Title string
	Bonds []Bond
}

func NewDocument(title string) *Document {
	return &Document{Title: title}
}

func (d *Document) AddBond(b Bond) {
	d.Bonds = append(d.Bonds, b)
}
