// Package meter measures the peak, peak-to-peak, and RMS levels of
// sampled waveforms. It exists so captured or generated signals can be
// fed to the conversion engine the same way a hand-entered voltage
// would: measure the waveform, then convert the resulting Vrms.
package meter

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/tphakala/go-level-converter/internal/simdops"
)

// ErrNoSamples indicates Metrics was requested before any samples were
// processed.
var ErrNoSamples = errors.New("no samples measured")

// Metrics holds the measured levels of a waveform, in the same units as
// the samples (volts when samples are calibrated voltages).
type Metrics struct {
	// Peak is the largest absolute excursion from zero (Vp).
	Peak float64

	// PeakToPeak is the span between the most positive and most
	// negative sample (Vpp).
	PeakToPeak float64

	// RMS is the root-mean-square level (Vrms).
	RMS float64

	// Mean is the average sample value, i.e. the DC offset. A symmetric
	// AC waveform measures near zero.
	Mean float64

	// Samples is the number of samples accumulated.
	Samples int64
}

// Meter is a streaming level accumulator. Feed it chunks with Process
// and read the totals with Metrics; state persists across chunks until
// Reset. The zero value is not ready for use; call New.
type Meter[F simdops.Float] struct {
	ops        *simdops.Ops[F]
	sumSquares float64
	sum        float64
	min        float64
	max        float64
	samples    int64
}

// New creates an empty meter for sample type F.
func New[F simdops.Float]() *Meter[F] {
	m := &Meter[F]{ops: simdops.For[F]()}
	m.Reset()
	return m
}

// Reset clears all accumulated state, allowing the meter to be reused.
func (m *Meter[F]) Reset() {
	m.sumSquares = 0
	m.sum = 0
	m.min = math.Inf(1)
	m.max = math.Inf(-1)
	m.samples = 0
}

// Process accumulates one chunk of samples. Empty chunks are a no-op.
func (m *Meter[F]) Process(chunk []F) {
	if len(chunk) == 0 {
		return
	}

	m.sumSquares += float64(simdops.SumSquares(chunk))
	m.sum += float64(m.ops.Sum(chunk))

	lo, hi := minMax(chunk)
	if lo < m.min {
		m.min = lo
	}
	if hi > m.max {
		m.max = hi
	}

	m.samples += int64(len(chunk))
}

// Metrics returns the levels accumulated so far.
func (m *Meter[F]) Metrics() (Metrics, error) {
	if m.samples == 0 {
		return Metrics{}, ErrNoSamples
	}

	n := float64(m.samples)
	return Metrics{
		Peak:       math.Max(math.Abs(m.min), math.Abs(m.max)),
		PeakToPeak: m.max - m.min,
		RMS:        math.Sqrt(m.sumSquares / n),
		Mean:       m.sum / n,
		Samples:    m.samples,
	}, nil
}

// Measure is a convenience function for one-shot measurement of a
// complete buffer.
func Measure[F simdops.Float](samples []F) (Metrics, error) {
	m := New[F]()
	m.Process(samples)
	return m.Metrics()
}

// minMax returns the smallest and largest sample in the chunk. The
// float64 path delegates to gonum; float32 walks the chunk directly
// rather than paying for a widening copy.
func minMax[F simdops.Float](chunk []F) (lo, hi float64) {
	if s, ok := any(chunk).([]float64); ok {
		return floats.Min(s), floats.Max(s)
	}

	lo = math.Inf(1)
	hi = math.Inf(-1)
	for _, v := range chunk {
		f := float64(v)
		if f < lo {
			lo = f
		}
		if f > hi {
			hi = f
		}
	}
	return lo, hi
}
