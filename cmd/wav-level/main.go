// Command wav-level measures the signal level of a WAV file and reports
// it as Vp, Vpp, Vrms, dBu, dBV, and dBm.
//
// Usage:
//
//	wav-level input.wav
//	wav-level -fullscale 1.736 input.wav       # full scale = +7 dBu interface
//	wav-level -impedance 50 -digits 6 input.wav
//
// Integer PCM samples are scaled so digital full scale corresponds to
// the -fullscale voltage (peak volts), each channel is metered
// independently, and the measured Vrms of each channel is run through
// the conversion engine.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/go-audio/audio"

	levels "github.com/tphakala/go-level-converter"
	"github.com/tphakala/go-level-converter/internal/meter"
)

const (
	// Buffer size for processing (number of interleaved samples per chunk)
	bufferSize = 65536

	// Full-scale integer sample values per PCM bit depth
	bitsPerSample8  = 8
	bitsPerSample16 = 16
	bitsPerSample24 = 24
	bitsPerSample32 = 32
	maxInt8         = 127.0
	maxInt16        = 32767.0
	maxInt24        = 8388607.0
	maxInt32        = 2147483647.0

	// CLI defaults
	defaultFullScale = 1.0
)

func main() {
	var (
		fullScale = flag.Float64("fullscale", defaultFullScale, "Peak voltage at digital full scale")
		impedance = flag.Float64("impedance", levels.DefaultImpedance, "Load impedance in ohms for dBm")
		digits    = flag.Int("digits", levels.DefaultDigits, "Fractional digits for formatted output, 1-10")
		verbose   = flag.Bool("verbose", false, "Print input format details")
	)
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: wav-level [flags] <input.wav>")
		flag.PrintDefaults()
		os.Exit(2)
	}

	if *fullScale <= 0 {
		log.Fatalf("Full-scale voltage must be positive, got %g", *fullScale)
	}

	conv, err := levels.New(&levels.Config{Impedance: *impedance, Digits: *digits})
	if err != nil {
		log.Fatalf("Invalid conversion context: %v", err)
	}

	input, err := openWAVInput(flag.Arg(0), *verbose)
	if err != nil {
		log.Fatalf("Failed to open input: %v", err)
	}
	defer input.Close()

	meters, err := meterWAV(input, *fullScale)
	if err != nil {
		log.Fatalf("Failed to measure %s: %v", flag.Arg(0), err)
	}

	for ch, m := range meters {
		metrics, err := m.Metrics()
		if err != nil {
			log.Fatalf("Channel %d: %v", ch, err)
		}
		printChannel(ch, metrics, conv)
	}
}

// meterWAV streams the file's PCM data through one meter per channel.
func meterWAV(input *wavInputInfo, fullScaleVolts float64) ([]*meter.Meter[float64], error) {
	fsInt, err := fullScaleForBitDepth(input.bitDepth)
	if err != nil {
		return nil, err
	}
	scale := fullScaleVolts / fsInt

	meters := make([]*meter.Meter[float64], input.channels)
	scratch := make([][]float64, input.channels)
	for ch := range meters {
		meters[ch] = meter.New[float64]()
		scratch[ch] = make([]float64, 0, bufferSize/input.channels+1)
	}

	buf := &audio.IntBuffer{
		Format: input.format,
		Data:   make([]int, bufferSize),
	}

	for {
		n, err := input.decoder.PCMBuffer(buf)
		if err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("failed to read PCM data: %w", err)
		}
		if n == 0 {
			break
		}
		accumulateBuffer(buf, n, scale, meters, scratch)
	}

	return meters, nil
}

// printChannel reports one channel's measured metrics plus the full
// conversion of its RMS level.
func printChannel(ch int, metrics meter.Metrics, conv *levels.Converter) {
	fmt.Printf("channel %d: %d samples, DC offset %.6f V\n", ch, metrics.Samples, metrics.Mean)
	fmt.Printf("  measured: Vp=%.6f Vpp=%.6f Vrms=%.6f\n", metrics.Peak, metrics.PeakToPeak, metrics.RMS)

	result, err := conv.FromVrms(metrics.RMS)
	if err != nil {
		// Digital silence has no RMS level to convert.
		fmt.Printf("  levels: n/a (%v)\n", err)
		return
	}

	fmt.Printf("  levels: Vp=%s Vpp=%s Vrms=%s dBu=%s dBV=%s dBm=%s (into %g ohm)\n",
		result.Display.Vp, result.Display.Vpp, result.Display.Vrms,
		result.Display.Dbu, result.Display.Dbv, result.Display.Dbm,
		conv.Impedance())
}
