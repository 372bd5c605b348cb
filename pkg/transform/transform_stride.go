package transform

import "fmt"

// strideStep shifts bytes by ±1 on a fixed positional rhythm: within
// each window of p+q positions, the first p bytes are incremented and
// the remaining q bytes are decremented. Arithmetic wraps at the byte
// boundary, matching the original tool's unchecked char math.
type strideStep struct {
	p, q int
}

func NewStrideStep(p, q int) (Transform, error) {
	if p < 1 {
		return nil, fmt.Errorf("%w: p=%d", ErrBadPeriod, p)
	}
	if q < 1 {
		return nil, fmt.Errorf("%w: q=%d", ErrBadPeriod, q)
	}
	return &strideStep{p: p, q: q}, nil
}

func (t *strideStep) Apply(data []byte) ([]byte, error) {
	out := make([]byte, len(data))
	period := t.p + t.q
	for i, c := range data {
		if i%period >= t.p {
			out[i] = c - 1
		} else {
			out[i] = c + 1
		}
	}
	return out, nil
}

// Reverse applies the mirrored shift at each position, recovering the
// input exactly.
func (t *strideStep) Reverse(data []byte) ([]byte, error) {
	out := make([]byte, len(data))
	period := t.p + t.q
	for i, c := range data {
		if i%period >= t.p {
			out[i] = c + 1
		} else {
			out[i] = c - 1
		}
	}
	return out, nil
}
