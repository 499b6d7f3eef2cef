package levels

import (
	"errors"
	"fmt"
	"math"
)

// Source identifies which of the six level representations a caller
// supplied. The remaining five fields of a Result are derived from it.
type Source int

const (
	// SourceVp is peak voltage, the maximum instantaneous deviation from zero.
	SourceVp Source = iota

	// SourceVpp is peak-to-peak voltage, twice Vp for a symmetric waveform.
	SourceVpp

	// SourceVrms is root-mean-square voltage, the equivalent DC voltage.
	SourceVrms

	// SourceDbu is decibels relative to 0.7745966692 V.
	SourceDbu

	// SourceDbv is decibels relative to 1 V.
	SourceDbv

	// SourceDbm is decibels relative to 1 mW into the configured impedance.
	SourceDbm
)

// String returns the conventional unit name for the source.
func (s Source) String() string {
	switch s {
	case SourceVp:
		return "Vp"
	case SourceVpp:
		return "Vpp"
	case SourceVrms:
		return "Vrms"
	case SourceDbu:
		return "dBu"
	case SourceDbv:
		return "dBV"
	case SourceDbm:
		return "dBm"
	default:
		return fmt.Sprintf("Source(%d)", int(s))
	}
}

// Levels holds the six raw values of one signal amplitude.
type Levels struct {
	Vp   float64
	Vpp  float64
	Vrms float64
	Dbu  float64
	Dbv  float64
	Dbm  float64
}

// Formatted holds the six display strings of one signal amplitude,
// rendered per the whole-number / fixed-point display contract.
type Formatted struct {
	Vp   string
	Vpp  string
	Vrms string
	Dbu  string
	Dbv  string
	Dbm  string
}

// Result is the complete outcome of one conversion request. All six
// fields are populated; Source marks which one was the input (its raw
// value is echoed unchanged, its display string is re-rendered).
type Result struct {
	// Source is the representation the caller supplied.
	Source Source

	// Values are the raw full-precision results.
	Values Levels

	// Display are the formatted results.
	Display Formatted
}

// Config holds conversion context.
type Config struct {
	// Impedance is the dBm load impedance in ohms. Must be a finite
	// number greater than zero; DefaultImpedance is the conventional
	// choice.
	Impedance float64

	// Digits is the fractional digit count for formatted output,
	// MinDigits to MaxDigits inclusive. Out-of-range values, including
	// zero, are rejected rather than clamped.
	Digits int
}

// Validation errors returned by the engine. Wrapped messages name the
// offending field; test with errors.Is.
var (
	// ErrInvalidMagnitude indicates a linear voltage (Vp, Vpp, Vrms)
	// that is not a finite number greater than zero.
	ErrInvalidMagnitude = errors.New("invalid magnitude")

	// ErrInvalidNumber indicates a dB value that is not a finite number.
	ErrInvalidNumber = errors.New("invalid number")

	// ErrInvalidImpedance indicates an impedance that is not a finite
	// number of ohms greater than zero.
	ErrInvalidImpedance = errors.New("invalid impedance")

	// ErrInvalidRounding indicates a fractional digit count outside
	// MinDigits..MaxDigits. The request is rejected, never clamped.
	ErrInvalidRounding = errors.New("invalid rounding digits")

	// ErrOutOfRange indicates a valid input whose converted levels
	// cannot be represented: the Vrms hub underflowed to zero or a
	// linear shape overflowed to infinity. The dB scales are
	// open-ended, float64 is not.
	ErrOutOfRange = errors.New("result out of range")
)

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if !isPositiveFinite(c.Impedance) {
		return fmt.Errorf("%w: impedance must be a finite number of ohms greater than zero, got %v", ErrInvalidImpedance, c.Impedance)
	}

	if c.Digits < MinDigits || c.Digits > MaxDigits {
		return fmt.Errorf("%w: digits must be %d-%d, got %d", ErrInvalidRounding, MinDigits, MaxDigits, c.Digits)
	}

	return nil
}

// Converter performs conversions with a fixed impedance and display
// precision. It is immutable after construction and safe for concurrent
// use.
type Converter struct {
	impedance float64
	digits    int
}

// New creates a converter with the specified configuration. A nil
// config selects the defaults (600 ohms, 4 digits). A non-nil config is
// validated as supplied: invalid impedance or digit counts are rejected
// with ErrInvalidImpedance or ErrInvalidRounding, never adjusted.
func New(config *Config) (*Converter, error) {
	if config == nil {
		return &Converter{impedance: DefaultImpedance, digits: DefaultDigits}, nil
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &Converter{impedance: config.Impedance, digits: config.Digits}, nil
}

// Impedance returns the dBm load impedance in ohms.
func (c *Converter) Impedance() float64 {
	return c.impedance
}

// Digits returns the fractional digit count for formatted output.
func (c *Converter) Digits() int {
	return c.digits
}

// isPositiveFinite reports whether v is a finite number greater than zero.
func isPositiveFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0) && v > 0
}

// checkMagnitude validates a linear voltage input.
func checkMagnitude(field string, v float64) error {
	if !isPositiveFinite(v) {
		return fmt.Errorf("%w: %s must be a finite voltage greater than zero, got %v", ErrInvalidMagnitude, field, v)
	}
	return nil
}

// checkNumber validates a dB input.
func checkNumber(field string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Errorf("%w: %s must be a finite number, got %v", ErrInvalidNumber, field, v)
	}
	return nil
}
