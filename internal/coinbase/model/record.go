package model

import "strconv"

// Column is the header name of a tabular input or output column.
type Column string

var (
	ColumnInputScript Column = "Input script"
	ColumnTxHash      Column = "TX hash"
	ColumnTimestamp   Column = "Timestamp"
	ColumnDate        Column = "Date"

	ColumnPoolName Column = "Mining Pool Name"
	ColumnPoolLink Column = "Mining Pool Link"

	ColumnUTF8   Column = "UTF-8"
	ColumnASCII  Column = "ASCII"
	ColumnHex    Column = "Hex"
	ColumnHeight Column = "Coinbase Height"
	ColumnASM    Column = "Script ASM"
)

// OutputColumns is the fixed export projection.
var OutputColumns = []Column{ColumnPoolName, ColumnPoolLink, ColumnTxHash, ColumnTimestamp, ColumnDate}

// DecodedColumns are appended to the projection when decoded views are exported.
var DecodedColumns = []Column{ColumnUTF8, ColumnASCII, ColumnHex, ColumnHeight, ColumnASM}

// TransactionRecord is one input row augmented with its decoded views and attribution.
type TransactionRecord struct {
	InputScript string
	TxHash      string
	Timestamp   string
	Date        string

	Decoded     DecodedScript
	Attribution Attribution
}

// Value returns the string value of a column and whether the record type knows it.
func (r TransactionRecord) Value(c Column) (string, bool) {
	switch c {
	case ColumnInputScript:
		return r.InputScript, true
	case ColumnTxHash:
		return r.TxHash, true
	case ColumnTimestamp:
		return r.Timestamp, true
	case ColumnDate:
		return r.Date, true
	case ColumnPoolName:
		return r.Attribution.PoolName, true
	case ColumnPoolLink:
		return r.Attribution.PoolLink, true
	case ColumnUTF8:
		return r.Decoded.UTF8, true
	case ColumnASCII:
		return r.Decoded.ASCII, true
	case ColumnHex:
		return r.Decoded.Hex, true
	case ColumnHeight:
		if !r.Decoded.HasHeight {
			return "", true
		}
		return strconv.FormatUint(uint64(r.Decoded.Height), 10), true
	case ColumnASM:
		return r.Decoded.ASM, true
	default:
		return "", false
	}
}

// RecordSet is the concatenated input of a run.
// Columns lists the input columns carried by at least one source.
type RecordSet struct {
	Columns map[Column]bool
	Records []TransactionRecord
}

// Has reports whether the input carried column c.
func (s RecordSet) Has(c Column) bool {
	return s.Columns[c]
}

// Table is the projected, sanitized export handed to sinks.
type Table struct {
	Header []Column
	Rows   [][]string
}
