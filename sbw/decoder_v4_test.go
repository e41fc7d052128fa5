package sbw

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bondkeeper/sbw-convert/inventory"
)

type v4Record struct {
	denom  uint32
	issue  uint32
	notes  string
	serial string
	series string
}

// buildV4 assembles a well-formed v4 byte image: 12-byte header, CBond
// marker, then each record as an 84-byte block, three length-prefixed
// fields and a 2-byte separator between records.
func buildV4(records []v4Record) []byte {
	var buf bytes.Buffer
	hdr := make([]byte, v4HeaderLen)
	binary.LittleEndian.PutUint16(hdr[0:], 997) // redemption date, not modeled
	binary.LittleEndian.PutUint16(hdr[4:], uint16(len(records)))
	buf.Write(hdr)
	buf.WriteString(v4Marker)
	for i, r := range records {
		block := make([]byte, v4BlockLen)
		binary.LittleEndian.PutUint32(block[4*v4DenomWord:], r.denom)
		binary.LittleEndian.PutUint32(block[4*v4IssueWord:], r.issue)
		buf.Write(block)
		for _, s := range []string{r.notes, r.serial, r.series} {
			buf.WriteByte(byte(len(s)))
			buf.WriteString(s)
		}
		if i < len(records)-1 {
			buf.Write([]byte{0xAB, 0xCD})
		}
	}
	return buf.Bytes()
}

func Test_DecodeV4(t *testing.T) {
	t.Run("well-formed inventory", func(t *testing.T) {
		data := buildV4([]v4Record{
			{denom: 50, issue: 0, notes: "gift from grandma", serial: "A123", series: "E"},
			{denom: 100, issue: 712, serial: "B456", series: "EE"},
		})

		doc, err := DetectAndDecode(bytes.NewReader(data))
		require.NoError(t, err)

		assert.Equal(t, "Imported SBW4 Inventory", doc.Title)
		require.Len(t, doc.Bonds, 2)

		assert.Equal(t, "E", doc.Bonds[0].Series)
		assert.Equal(t, "04/1941", doc.Bonds[0].IssueDate)
		assert.Equal(t, "50", doc.Bonds[0].Denomination.String())
		assert.Equal(t, "A123", doc.Bonds[0].SerialNumber)

		assert.Equal(t, "EE", doc.Bonds[1].Series)
		assert.Equal(t, "08/2000", doc.Bonds[1].IssueDate)
		assert.Equal(t, "100", doc.Bonds[1].Denomination.String())
		assert.Equal(t, "B456", doc.Bonds[1].SerialNumber)
	})

	t.Run("unknown series codes are dropped, not errors", func(t *testing.T) {
		data := buildV4([]v4Record{
			{denom: 50, serial: "A1", series: "E"},
			{denom: 100, serial: "B2", series: "H"},
			{denom: 200, serial: "C3", series: ""},
			{denom: 500, serial: "D4", series: "I"},
		})

		doc, err := DetectAndDecode(bytes.NewReader(data))
		require.NoError(t, err)
		require.Len(t, doc.Bonds, 2)
		assert.Equal(t, "A1", doc.Bonds[0].SerialNumber)
		assert.Equal(t, "D4", doc.Bonds[1].SerialNumber)
	})

	t.Run("series filter is case-insensitive, original case kept", func(t *testing.T) {
		data := buildV4([]v4Record{
			{denom: 75, serial: "A1", series: "ee"},
		})

		doc, err := DetectAndDecode(bytes.NewReader(data))
		require.NoError(t, err)
		require.Len(t, doc.Bonds, 1)
		assert.Equal(t, "ee", doc.Bonds[0].Series)
	})

	t.Run("zero records", func(t *testing.T) {
		data := buildV4(nil)
		doc, err := DetectAndDecode(bytes.NewReader(data))
		require.NoError(t, err)
		assert.Empty(t, doc.Bonds)
	})

	t.Run("truncated header", func(t *testing.T) {
		_, err := decodeV4(make([]byte, v4HeaderLen-1))
		require.ErrorIs(t, err, ErrParse)
	})

	t.Run("one byte short of the final field", func(t *testing.T) {
		data := buildV4([]v4Record{{denom: 50, serial: "A1", series: "EE"}})
		_, err := decodeV4(data[:len(data)-1])
		require.ErrorIs(t, err, ErrParse)
	})
}

func Test_DecodeV4_TruncationProperty(t *testing.T) {
	data := buildV4([]v4Record{
		{denom: 50, issue: 3, notes: "note", serial: "A123", series: "E"},
		{denom: 100, issue: 60, serial: "B456", series: "S"},
		{denom: 5000, issue: 720, serial: "C789", series: "I"},
	})

	properties := gopter.NewProperties(nil)

	// Every strict prefix of a valid image is missing mandatory bytes, so
	// every one must fail with the parse error and never a partial
	// document.
	properties.Property("any strict prefix fails with ErrParse", prop.ForAll(
		func(cut int) bool {
			doc, err := decodeV4(data[:cut])
			return assert.ErrorIs(t, err, ErrParse) && assert.Nil(t, doc)
		},
		gen.IntRange(0, len(data)-1),
	))

	properties.TestingRun(t)
}

func Test_DecodeV4_EndToEndCSV(t *testing.T) {
	// Header n=1, one record: series E, denomination 50, issue-date 0,
	// serial A1.
	data := buildV4([]v4Record{{denom: 50, issue: 0, serial: "A1", series: "E"}})

	doc, err := DetectAndDecode(bytes.NewReader(data))
	require.NoError(t, err)

	out, err := inventory.NewCSVCodec().Render(doc)
	require.NoError(t, err)
	assert.Equal(t, "Series,Denomination,Serial Number,Issue Date\nE,50,A1,04/1941\n", out)
}
