package safe

import (
	"math"
	"testing"
)

func TestUint32(t *testing.T) {
	tests := []struct {
		name    string
		convert func() (uint32, error)
		want    uint32
		wantErr bool
	}{
		{name: "int within range", convert: func() (uint32, error) { return Uint32(42) }, want: 42},
		{name: "int negative", convert: func() (uint32, error) { return Uint32(-1) }, wantErr: true},
		{name: "int64 overflow", convert: func() (uint32, error) { return Uint32(int64(math.MaxUint32) + 1) }, wantErr: true},
		{name: "int64 boundary ok", convert: func() (uint32, error) { return Uint32(int64(math.MaxUint32)) }, want: math.MaxUint32},
		{name: "int64 five byte script number", convert: func() (uint32, error) { return Uint32(int64(549755813887)) }, wantErr: true},
		{name: "uint64 overflow", convert: func() (uint32, error) { return Uint32(uint64(math.MaxUint32) + 1) }, wantErr: true},
		{name: "uint32 max", convert: func() (uint32, error) { return Uint32(uint32(math.MaxUint32)) }, want: math.MaxUint32},
		{name: "int32 negative", convert: func() (uint32, error) { return Uint32(int32(-5)) }, wantErr: true},
		{name: "zero", convert: func() (uint32, error) { return Uint32(int64(0)) }, want: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.convert()
			if (err != nil) != tt.wantErr {
				t.Errorf("Uint32() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if got != tt.want {
				t.Errorf("Uint32() got = %v, want %v", got, tt.want)
			}
		})
	}
}
