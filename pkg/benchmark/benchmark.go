// Package benchmark measures single-pass throughput of the cipherkit
// transforms over synthetic payloads.
package benchmark

import (
	"fmt"
	"io"
	"time"

	"cipherkit/pkg/transform"
)

// Result holds the outcome of one transform benchmark.
type Result struct {
	Name        string
	Iterations  int
	PayloadSize int
	Total       time.Duration
	PerOp       time.Duration
	Throughput  float64 // MB/s over the forward direction
}

func (r Result) String() string {
	return fmt.Sprintf("%s: %d iterations x %d bytes in %v (%v/op, %.2f MB/s)",
		r.Name, r.Iterations, r.PayloadSize, r.Total, r.PerOp, r.Throughput)
}

// payload builds a deterministic pseudo-random buffer so runs are
// comparable across invocations.
func payload(size int) []byte {
	buf := make([]byte, size)
	state := uint32(0x2545F491)
	for i := range buf {
		state ^= state << 13
		state ^= state >> 17
		state ^= state << 5
		buf[i] = byte(state)
	}
	return buf
}

// Run drives the forward direction of t over a fresh payload.
func Run(name string, t transform.Transform, iterations, payloadSize int) (Result, error) {
	if iterations < 1 || payloadSize < 1 {
		return Result{}, fmt.Errorf("benchmark: iterations and payload size must be positive")
	}
	buf := payload(payloadSize)

	start := time.Now()
	for i := 0; i < iterations; i++ {
		if _, err := t.Apply(buf); err != nil {
			return Result{}, fmt.Errorf("benchmark %s: iteration %d: %w", name, i, err)
		}
	}
	total := time.Since(start)

	perOp := total / time.Duration(iterations)
	bytes := float64(iterations) * float64(payloadSize)
	throughput := bytes / total.Seconds() / (1024 * 1024)

	return Result{
		Name:        name,
		Iterations:  iterations,
		PayloadSize: payloadSize,
		Total:       total,
		PerOp:       perOp,
		Throughput:  throughput,
	}, nil
}

// WriteCSV emits results with a header row.
func WriteCSV(w io.Writer, results []Result) error {
	if _, err := fmt.Fprintln(w, "name,iterations,payload_size,total_ns,per_op_ns,throughput_mb_s"); err != nil {
		return err
	}
	for _, r := range results {
		_, err := fmt.Fprintf(w, "%s,%d,%d,%d,%d,%.2f\n",
			r.Name, r.Iterations, r.PayloadSize, r.Total.Nanoseconds(), r.PerOp.Nanoseconds(), r.Throughput)
		if err != nil {
			return err
		}
	}
	return nil
}
