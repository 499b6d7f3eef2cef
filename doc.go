// Package levels converts among six representations of an electrical
// signal amplitude: peak voltage (Vp), peak-to-peak voltage (Vpp),
// RMS voltage (Vrms), and three logarithmic ratios — dBu (referenced to
// 0.7745966692 V), dBV (referenced to 1 V), and dBm (referenced to 1 mW
// into a configurable load impedance).
//
// The conversion engine is a set of pure functions: supply any one
// measurement plus context (impedance, rounding precision) and receive
// the other five, both as raw float64 values and as display-ready
// strings. There is no shared mutable state; every conversion request is
// stateless given its inputs.
//
// # Quick Start
//
// For one-shot conversions:
//
//	result, err := levels.ConvertFromVrms(1.0, levels.DefaultImpedance, levels.DefaultDigits)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(result.Display.Dbu) // "2.2185"
//
// For repeated conversions with the same impedance and precision,
// construct a [Converter] once:
//
//	conv, err := levels.New(&levels.Config{
//	    Impedance: 50,
//	    Digits:    6,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	result, err := conv.FromDbm(0)
//
// # Propagation
//
// Vrms is the hub value. Every source representation is first reduced to
// a full-precision Vrms, and the remaining fields derive from that raw
// intermediate:
//
//	Vp, Vpp ----\
//	             Vrms ----> dBu, dBV, dBm
//	dBu, dBV ---/
//	dBm (needs Z)
//
// Formatting happens once, at the end, on each output independently.
// No rounded intermediate is ever fed back into a formula, so derived
// values never compound rounding error.
//
// # Formatting
//
// Each output value is rendered independently: results that are whole
// numbers at the configured display precision drop the fractional part
// ("0" rather than "0.0000"), everything else is fixed-point with
// exactly [Config.Digits] digits after the decimal point.
//
// # Text Entry
//
// GUI entry boxes hand over raw text; [Converter.FromText] parses it and
// maps failures onto the validation taxonomy ([ErrInvalidMagnitude] for
// linear voltages, [ErrInvalidNumber] for dB values), so a presentation
// layer only needs to report which field and which kind of failure.
//
// # Level Metering
//
// The companion internal meter package measures Vp, Vpp, and Vrms of
// sampled waveforms; the wav-level command uses it to report the level
// of a WAV file in all six representations.
//
// # Thread Safety
//
// A [Converter] is immutable after construction and safe for concurrent
// use. Hosts embedding the engine concurrently should treat each call as
// an independent pure computation over their own Config snapshot.
package levels
