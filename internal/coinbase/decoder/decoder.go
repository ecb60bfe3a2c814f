// Package decoder turns hex-encoded coinbase input scripts into readable views.
package decoder

import (
	"encoding/hex"
	"errors"
	"strings"

	"github.com/btcsuite/btcd/txscript"
	"github.com/goodnatureofminers/coinbase-pool-attributor/internal/coinbase/model"
	"github.com/goodnatureofminers/coinbase-pool-attributor/pkg/printable"
	"github.com/goodnatureofminers/coinbase-pool-attributor/pkg/safe"
)

// ErrEmptyScript is reported for an empty input script cell.
var ErrEmptyScript = errors.New("empty input script")

const (
	asciiPlaceholder = '.'

	// BIP34 heights are minimally encoded script numbers of at most five bytes.
	maxHeightPushLen = 5
)

// Decode converts a hex-encoded script into its UTF-8, ASCII, hex and disassembly views.
// It never fails: malformed input yields a DecodedScript carrying error markers and Err.
func Decode(script string) model.DecodedScript {
	if script == "" {
		return failed(ErrEmptyScript)
	}

	raw, err := hex.DecodeString(script)
	if err != nil {
		return failed(err)
	}

	decoded := model.DecodedScript{
		UTF8:  strings.ToValidUTF8(string(raw), ""),
		ASCII: asciiView(raw),
		Hex:   hex.EncodeToString(raw),
		ASM:   disasm(raw),
	}
	decoded.Height, decoded.HasHeight = height(raw)
	return decoded
}

func failed(err error) model.DecodedScript {
	return model.DecodedScript{
		UTF8:  "Error: " + err.Error(),
		ASCII: model.DecodeErrorMarker,
		Hex:   model.DecodeErrorMarker,
		ASM:   model.DecodeErrorMarker,
		Err:   err,
	}
}

func asciiView(raw []byte) string {
	out := make([]byte, len(raw))
	for i, b := range raw {
		if printable.IsPrintable(b) {
			out[i] = b
		} else {
			out[i] = asciiPlaceholder
		}
	}
	return string(out)
}

// disasm keeps the partial rendering btcd produces for truncated pushes.
func disasm(raw []byte) string {
	asm, _ := txscript.DisasmString(raw)
	return asm
}

// height reads the first push of the script as a BIP34 block height.
func height(raw []byte) (uint32, bool) {
	tokenizer := txscript.MakeScriptTokenizer(0, raw)
	if !tokenizer.Next() {
		return 0, false
	}

	op := tokenizer.Opcode()
	switch {
	case op == txscript.OP_0:
		return 0, true
	case op >= txscript.OP_1 && op <= txscript.OP_16:
		return uint32(op - (txscript.OP_1 - 1)), true
	case op > txscript.OP_0 && op <= txscript.OP_PUSHDATA4:
		num, ok := scriptNum(tokenizer.Data())
		if !ok {
			return 0, false
		}
		h, err := safe.Uint32(num)
		if err != nil {
			return 0, false
		}
		return h, true
	default:
		return 0, false
	}
}

// scriptNum decodes a little-endian sign-magnitude script number.
func scriptNum(data []byte) (int64, bool) {
	if len(data) == 0 || len(data) > maxHeightPushLen {
		return 0, false
	}

	var v int64
	for i, b := range data {
		v |= int64(b) << uint(8*i)
	}
	if data[len(data)-1]&0x80 != 0 {
		v &^= int64(0x80) << uint(8*(len(data)-1))
		v = -v
	}
	return v, true
}
