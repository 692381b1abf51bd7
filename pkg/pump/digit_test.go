package pump

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSpinDigit(t *testing.T) {
	cases := []struct {
		v     uint32
		pos   uint
		up    bool
		want  uint32
		digit byte
	}{
		{500, 0, true, 501, 1},
		{500, 0, false, 509, 9}, // 0 wraps to 9, no borrow
		{509, 0, true, 500, 0},  // 9 wraps to 0, no carry
		{500, 2, true, 600, 6},
		{500, 2, false, 400, 4},
		{999, 1, true, 909, 0},
		{0, 4, true, 10000, 1},
		{10000, 4, false, 0, 0},
		{16777215, 6, true, 17777215, 7},
	}
	for _, c := range cases {
		got, digit := SpinDigit(c.v, c.pos, c.up)
		require.Equal(t, c.want, got, "spin %d pos %d up=%v", c.v, c.pos, c.up)
		require.Equal(t, c.digit, digit, "digit of %d pos %d up=%v", c.v, c.pos, c.up)
	}
}

func TestSpinDigitInverse(t *testing.T) {
	for _, v := range []uint32{0, 1, 42, 500, 999, 65535, 16777215} {
		for pos := uint(0); pos < 7; pos++ {
			up, _ := SpinDigit(v, pos, true)
			down, _ := SpinDigit(up, pos, false)
			require.Equal(t, v, down, "value %d pos %d", v, pos)
		}
	}
}
