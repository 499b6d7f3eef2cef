package main

import (
	"fmt"
	"log"
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"

	"github.com/tphakala/go-level-converter/internal/meter"
)

// wavInputInfo holds validated input file information.
type wavInputInfo struct {
	file     *os.File
	decoder  *wav.Decoder
	rate     int
	channels int
	bitDepth int
	format   *audio.Format
}

// openWAVInput opens and validates a WAV file, returning format information.
func openWAVInput(path string, verbose bool) (*wavInputInfo, error) {
	inputFile, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open input file: %w", err)
	}

	decoder := wav.NewDecoder(inputFile)
	if !decoder.IsValidFile() {
		_ = inputFile.Close()
		return nil, fmt.Errorf("invalid WAV file: %s", path)
	}

	format := decoder.Format()
	if verbose {
		log.Printf("Input format: %d Hz, %d channels, %d-bit",
			format.SampleRate, format.NumChannels, decoder.BitDepth)
	}

	return &wavInputInfo{
		file:     inputFile,
		decoder:  decoder,
		rate:     format.SampleRate,
		channels: format.NumChannels,
		bitDepth: int(decoder.BitDepth),
		format:   format,
	}, nil
}

// Close closes the input file.
func (w *wavInputInfo) Close() error {
	return w.file.Close()
}

// fullScaleForBitDepth returns the positive full-scale integer sample
// value for a PCM bit depth.
func fullScaleForBitDepth(bitDepth int) (float64, error) {
	switch bitDepth {
	case bitsPerSample8:
		return maxInt8, nil
	case bitsPerSample16:
		return maxInt16, nil
	case bitsPerSample24:
		return maxInt24, nil
	case bitsPerSample32:
		return maxInt32, nil
	default:
		return 0, fmt.Errorf("unsupported bit depth: %d", bitDepth)
	}
}

// accumulateBuffer deinterleaves one PCM buffer into per-channel meters,
// scaling integer samples so digital full scale maps to fullScaleVolts.
func accumulateBuffer(buf *audio.IntBuffer, n int, scale float64, meters []*meter.Meter[float64], scratch [][]float64) {
	channels := len(meters)
	frames := n / channels

	for ch := range channels {
		samples := scratch[ch][:0]
		for i := range frames {
			samples = append(samples, float64(buf.Data[i*channels+ch])*scale)
		}
		meters[ch].Process(samples)
		scratch[ch] = samples
	}
}
