// Package transform implements keyed byte-stream transforms: each
// Transform maps a byte buffer to a fresh output buffer, with Apply
// running the forward direction and Reverse undoing it. The cipher
// stages (bitmask XOR, stride step, flip-skip) are length-preserving
// and deterministic; compression stages are not length-preserving and
// belong at the edge of a pipeline.
package transform

import "errors"

type Transform interface {
	Apply(data []byte) ([]byte, error)
	Reverse(data []byte) ([]byte, error)
}

// Invalid-argument sentinels. Construction fails fast; Apply/Reverse on
// a constructed transform never fail for cipher stages.
var (
	ErrEmptyKey     = errors.New("transform: empty key")
	ErrKeyNotDigits = errors.New("transform: key byte is not an ASCII decimal digit")
	ErrBadPeriod    = errors.New("transform: period must be at least 1")
)

type noOpTransform struct{}

func NewNoOpTransform() Transform                            { return &noOpTransform{} }
func (n *noOpTransform) Apply(data []byte) ([]byte, error)   { return data, nil }
func (n *noOpTransform) Reverse(data []byte) ([]byte, error) { return data, nil }
