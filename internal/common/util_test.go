package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWipeByteArray_ZerosBuffer(t *testing.T) {
	buf := []byte{1, 2, 3, 4, 5}
	WipeByteArray(buf)
	for i, v := range buf {
		if v != 0 {
			t.Fatalf("expected buf[%d]==0, got %d", i, v)
		}
	}
}

func TestWipeByteArray_NilSafe(t *testing.T) {
	WipeByteArray(nil)
}

func TestStripBearer(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "raw token", in: "abc.def.ghi", want: "abc.def.ghi"},
		{name: "bearer prefix", in: "Bearer abc.def.ghi", want: "abc.def.ghi"},
		{name: "lowercase prefix", in: "bearer abc", want: "abc"},
		{name: "surrounding spaces", in: "  Bearer   abc  ", want: "abc"},
		{name: "empty", in: "", want: ""},
		{name: "prefix only is kept as a token", in: "Bearer ", want: "Bearer"},
		{name: "spaces only", in: "   ", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StripBearer(tt.in))
		})
	}
}
