// Package model holds the types shared by the coinbase attribution pipeline.
package model

// DecodeErrorMarker is the ASCII and hex view value of a script that failed to decode.
const DecodeErrorMarker = "Error"

// DecodedScript is the set of views derived from one hex-encoded coinbase input script.
// All views come from the same byte sequence.
type DecodedScript struct {
	UTF8  string
	ASCII string
	Hex   string
	ASM   string

	// Height is the BIP34 height candidate read from the first push, valid when HasHeight is set.
	Height    uint32
	HasHeight bool

	// Err is set when the input was not valid hex; the views then carry error markers.
	Err error
}

// Failed reports whether the script could not be decoded.
func (d DecodedScript) Failed() bool {
	return d.Err != nil
}
