package ordering

type xorShift32 struct {
	state uint32
}

// A zero seed would stay zero forever, so it is replaced with 1.
func newXorShift32(seed uint32) *xorShift32 {
	if seed == 0 {
		seed = 1
	}
	return &xorShift32{state: seed}
}

func (r *xorShift32) next() uint32 {
	x := r.state
	x ^= x << 13
	x ^= x >> 17
	x ^= x << 5
	r.state = x
	return x
}
