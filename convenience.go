package levels

import (
	"fmt"
	"strconv"
	"strings"
)

// One-shot converters for callers that don't want to hold a Converter.
// Each creates a converter for the given context, performs a single
// conversion, and returns the result bundle.

// ConvertFromVp is a convenience function for a one-shot peak voltage
// conversion.
func ConvertFromVp(vp, impedance float64, digits int) (*Result, error) {
	c, err := New(&Config{Impedance: impedance, Digits: digits})
	if err != nil {
		return nil, err
	}
	return c.FromVp(vp)
}

// ConvertFromVpp is a convenience function for a one-shot peak-to-peak
// voltage conversion.
func ConvertFromVpp(vpp, impedance float64, digits int) (*Result, error) {
	c, err := New(&Config{Impedance: impedance, Digits: digits})
	if err != nil {
		return nil, err
	}
	return c.FromVpp(vpp)
}

// ConvertFromVrms is a convenience function for a one-shot RMS voltage
// conversion.
func ConvertFromVrms(vrms, impedance float64, digits int) (*Result, error) {
	c, err := New(&Config{Impedance: impedance, Digits: digits})
	if err != nil {
		return nil, err
	}
	return c.FromVrms(vrms)
}

// ConvertFromDbu is a convenience function for a one-shot dBu conversion.
// The impedance is only exercised by the derived dBm output.
func ConvertFromDbu(dbu, impedance float64, digits int) (*Result, error) {
	c, err := New(&Config{Impedance: impedance, Digits: digits})
	if err != nil {
		return nil, err
	}
	return c.FromDbu(dbu)
}

// ConvertFromDbv is a convenience function for a one-shot dBV conversion.
func ConvertFromDbv(dbv, impedance float64, digits int) (*Result, error) {
	c, err := New(&Config{Impedance: impedance, Digits: digits})
	if err != nil {
		return nil, err
	}
	return c.FromDbv(dbv)
}

// ConvertFromDbm is a convenience function for a one-shot dBm conversion
// against the given load impedance.
func ConvertFromDbm(dbm, impedance float64, digits int) (*Result, error) {
	c, err := New(&Config{Impedance: impedance, Digits: digits})
	if err != nil {
		return nil, err
	}
	return c.FromDbm(dbm)
}

// FromText converts raw entry-box text. Parsing failures map onto the
// validation taxonomy: linear voltage fields report ErrInvalidMagnitude,
// dB fields report ErrInvalidNumber. Leading and trailing whitespace is
// tolerated.
func (c *Converter) FromText(src Source, text string) (*Result, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
	if err != nil {
		switch src {
		case SourceVp, SourceVpp, SourceVrms:
			return nil, fmt.Errorf("%w: %s entry %q is not a number", ErrInvalidMagnitude, src, text)
		default:
			return nil, fmt.Errorf("%w: %s entry %q is not a number", ErrInvalidNumber, src, text)
		}
	}

	return c.From(src, v)
}

// ParseSource maps a unit name to its Source tag. Matching is
// case-insensitive and accepts the conventional spellings (vp, vpp,
// vrms, dbu, dbv, dbm).
func ParseSource(name string) (Source, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "vp":
		return SourceVp, nil
	case "vpp":
		return SourceVpp, nil
	case "vrms":
		return SourceVrms, nil
	case "dbu":
		return SourceDbu, nil
	case "dbv":
		return SourceDbv, nil
	case "dbm":
		return SourceDbm, nil
	default:
		return 0, fmt.Errorf("levels: unknown unit %q", name)
	}
}
