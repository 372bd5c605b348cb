package transform

import (
	"bytes"
	"fmt"
	"io"

	"github.com/klauspost/compress/zstd"
)

// zstdTransform compresses on Apply and decompresses on Reverse. It is
// not length-preserving, so it only belongs at the outermost position
// of a pipeline, around the cipher stages.
type zstdTransform struct {
	encoder *zstd.Encoder
	decoder *zstd.Decoder
}

// NewZstdTransform creates a Zstandard compression transform. Provide a
// level such as zstd.SpeedFastest or zstd.SpeedDefault.
func NewZstdTransform(level zstd.EncoderLevel) (Transform, error) {
	enc, err := zstd.NewWriter(nil, zstd.WithEncoderLevel(level))
	if err != nil {
		return nil, fmt.Errorf("zstd: failed to initialize encoder: %w", err)
	}
	dec, err := zstd.NewReader(nil)
	if err != nil {
		return nil, fmt.Errorf("zstd: failed to initialize decoder: %w", err)
	}
	return &zstdTransform{encoder: enc, decoder: dec}, nil
}

func (t *zstdTransform) Apply(data []byte) ([]byte, error) {
	var buf bytes.Buffer
	t.encoder.Reset(&buf)

	if _, err := t.encoder.Write(data); err != nil {
		_ = t.encoder.Close()
		return nil, fmt.Errorf("zstd apply (compress): failed to write data: %w", err)
	}
	// Close flushes the final block; without it the stream is truncated.
	if err := t.encoder.Close(); err != nil {
		return nil, fmt.Errorf("zstd apply (compress): failed to close writer: %w", err)
	}
	return buf.Bytes(), nil
}

func (t *zstdTransform) Reverse(data []byte) ([]byte, error) {
	if err := t.decoder.Reset(bytes.NewReader(data)); err != nil {
		return nil, fmt.Errorf("zstd reverse (decompress): failed to reset decoder: %w", err)
	}
	decompressed, err := io.ReadAll(t.decoder)
	if err != nil {
		return nil, fmt.Errorf("zstd reverse (decompress): failed to read data: %w", err)
	}
	return decompressed, nil
}
