package transform

import (
	"errors"
	"fmt"
)

// Pipeline chains transforms: stages are applied 0..N on Encode and
// reversed N..0 on Decode.
type Pipeline struct {
	stages []Transform
}

// NewPipeline creates a pipeline over the given stages. Requires at
// least one stage; use NewNoOpTransform() for an explicitly empty
// pipeline.
func NewPipeline(stages ...Transform) (*Pipeline, error) {
	if len(stages) == 0 {
		return nil, errors.New("pipeline requires at least one stage; use NewNoOpTransform() for an empty pipeline")
	}

	s := make([]Transform, len(stages))
	copy(s, stages)

	return &Pipeline{stages: s}, nil
}

// Encode applies the stages in forward order (0..N).
func (p *Pipeline) Encode(payload []byte) ([]byte, error) {
	var err error
	current := payload
	for i, stage := range p.stages {
		current, err = stage.Apply(current)
		if err != nil {
			return nil, fmt.Errorf("pipeline encode: stage %d (%T) Apply failed: %w", i, stage, err)
		}
	}
	return current, nil
}

// Decode applies the stages in reverse order (N..0).
func (p *Pipeline) Decode(payload []byte) ([]byte, error) {
	var err error
	current := payload
	for i := len(p.stages) - 1; i >= 0; i-- {
		stage := p.stages[i]
		current, err = stage.Reverse(current)
		if err != nil {
			return nil, fmt.Errorf("pipeline decode: stage %d (%T) Reverse failed: %w", i, stage, err)
		}
	}
	return current, nil
}
