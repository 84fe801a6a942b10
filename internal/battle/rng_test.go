package battle

// scriptRNG replays a fixed sequence of draws. Exhausted float draws fall
// back to 0.99 (hits only sure-hit moves, never crits, never procs) and int
// draws to 0, so tests only script the rolls they care about.
type scriptRNG struct {
	floats []float64
	ints   []int
	fi, ii int
}

func (r *scriptRNG) Float64() float64 {
	if r.fi >= len(r.floats) {
		return 0.99
	}
	v := r.floats[r.fi]
	r.fi++
	return v
}

func (r *scriptRNG) Intn(n int) int {
	if r.ii >= len(r.ints) {
		return 0
	}
	v := r.ints[r.ii]
	r.ii++
	if v >= n {
		v = n - 1
	}
	return v
}
