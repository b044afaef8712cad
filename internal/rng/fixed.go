package rng

// Fixed replays a scripted sequence of numbers
// Each value is reduced modulo n. Once the script runs out, Intn returns n-1,
// which turns a Fisher-Yates pass into a no-op.
type Fixed struct {
	values []int
	pos    int
}

// NewFixed returns a generator that replays values
func NewFixed(values ...int) *Fixed {
	return &Fixed{values: values}
}

// Intn returns the next scripted value
func (f *Fixed) Intn(n int) int {
	if f.pos >= len(f.values) {
		return n - 1
	}

	v := f.values[f.pos] % n
	f.pos++
	if v < 0 {
		v += n
	}

	return v
}
