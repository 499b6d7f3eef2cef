package levels

// Reference levels for the logarithmic representations.
const (
	// RefDbu is the dBu reference voltage in volts. It is the RMS
	// voltage that dissipates 1 mW into a 600 ohm load (sqrt(0.6)),
	// carried at the ten-digit precision conventional in audio practice.
	RefDbu = 0.7745966692

	// RefDbv is the dBV reference voltage in volts.
	RefDbv = 1.0

	// refWatts is the dBm power reference (1 mW) expressed in watts.
	refWatts = 0.001
)

// Impedance defaults
const (
	// DefaultImpedance is the classic audio line termination in ohms,
	// used for dBm conversions when the caller has no other preference.
	DefaultImpedance = 600.0
)

// Display precision limits
const (
	// MinDigits is the minimum accepted fractional digit count.
	MinDigits = 1

	// MaxDigits is the maximum accepted fractional digit count.
	MaxDigits = 10

	// DefaultDigits is the fractional digit count used when a Config
	// leaves Digits unset.
	DefaultDigits = 4
)
