package pump

// SpinDigit steps the decimal digit of v at position pos (0 is the
// least significant) up or down by one, wrapping within 0..9 without
// carrying into neighboring digits. The panel offers no read-back, so
// the new digit is recomputed from v alone. Returns the new value and
// the new digit.
func SpinDigit(v uint32, pos uint, up bool) (uint32, byte) {
	p := pow10(pos)
	digit := byte(v / p % 10)
	if up {
		digit = (digit + 1) % 10
	} else if digit == 0 {
		digit = 9
	} else {
		digit--
	}
	v -= v / p % 10 * p
	v += uint32(digit) * p
	return v, digit
}

func pow10(n uint) uint32 {
	p := uint32(1)
	for ; n > 0; n-- {
		p *= 10
	}
	return p
}
