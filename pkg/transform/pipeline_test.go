package transform

import (
	"bytes"
	"testing"

	"github.com/klauspost/compress/zstd"
)

func TestPipelineRequiresStage(t *testing.T) {
	if _, err := NewPipeline(); err == nil {
		t.Error("expected error for empty pipeline, got nil")
	}
}

func TestNoOpTransform(t *testing.T) {
	n := NewNoOpTransform()
	in := []byte("payload")
	out, err := n.Apply(in)
	if err != nil {
		t.Fatalf("Apply failed: %v", err)
	}
	if !bytes.Equal(out, in) {
		t.Errorf("noop changed the payload: %q", out)
	}
}

func TestPipelineEncodeDecode(t *testing.T) {
	mask, err := NewBitmaskXOR([]byte("Thisismysecretkey"))
	if err != nil {
		t.Fatalf("NewBitmaskXOR failed: %v", err)
	}
	stride, err := NewStrideStep(2, 1)
	if err != nil {
		t.Fatalf("NewStrideStep failed: %v", err)
	}

	p, err := NewPipeline(mask, stride)
	if err != nil {
		t.Fatalf("NewPipeline failed: %v", err)
	}

	in := []byte("Hello! Here is a secret message :)")
	enc, err := p.Encode(in)
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	if bytes.Equal(enc, in) {
		t.Error("pipeline output should differ from input")
	}
	if len(enc) != len(in) {
		t.Errorf("cipher pipeline must preserve length: got %d, want %d", len(enc), len(in))
	}

	dec, err := p.Decode(enc)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if !bytes.Equal(dec, in) {
		t.Errorf("roundtrip mismatch: got %q, want %q", dec, in)
	}
}

func TestPipelineWithCompression(t *testing.T) {
	z, err := NewZstdTransform(zstd.SpeedDefault)
	if err != nil {
		t.Fatalf("NewZstdTransform failed: %v", err)
	}
	flip, err := NewFlipSkip([]byte("314159"), 2)
	if err != nil {
		t.Fatalf("NewFlipSkip failed: %v", err)
	}

	p, err := NewPipeline(z, flip)
	if err != nil {
		t.Fatalf("NewPipeline failed: %v", err)
	}

	in := bytes.Repeat([]byte("compressible payload "), 100)
	enc, err := p.Encode(in)
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	if len(enc) >= len(in) {
		t.Errorf("repetitive payload should compress: %d >= %d", len(enc), len(in))
	}

	dec, err := p.Decode(enc)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if !bytes.Equal(dec, in) {
		t.Error("compressed roundtrip did not recover the input")
	}
}

func TestZstdRejectsGarbageOnReverse(t *testing.T) {
	z, err := NewZstdTransform(zstd.SpeedFastest)
	if err != nil {
		t.Fatalf("NewZstdTransform failed: %v", err)
	}
	if _, err := z.Reverse([]byte("definitely not a zstd frame")); err == nil {
		t.Error("expected error decompressing garbage, got nil")
	}
}
