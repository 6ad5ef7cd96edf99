package provider

import (
	"context"
)

type Synthesizer interface {
	Synthesize(ctx context.Context, input string, options *SynthesizeOptions) (*Synthesis, error)
}

type SynthesizeOptions struct {
	Language string
	Speed    float64

	// Reference is a path to a speaker sample conditioning the voice timbre.
	// Empty means the engine's built-in default voice.
	Reference string
}

type Synthesis struct {
	ID    string
	Model string

	Samples    []float32
	SampleRate int
}
