package levels

import (
	"fmt"
	"math"
)

// The formula set. Vrms is the hub: the linear shapes relate to it by
// factors of sqrt(2), the dB scales by their reference levels. All
// formulas operate on raw float64 values; formatting is applied only to
// the final outputs.

func dbuFromVrms(vrms float64) float64 {
	return 20 * math.Log10(vrms/RefDbu)
}

func dbvFromVrms(vrms float64) float64 {
	return 20 * math.Log10(vrms)
}

func dbmFromVrms(vrms, impedance float64) float64 {
	return 10 * math.Log10(vrms*vrms/(refWatts*impedance))
}

func vrmsFromDbu(dbu float64) float64 {
	return RefDbu * math.Pow(10, dbu/20)
}

func vrmsFromDbv(dbv float64) float64 {
	return math.Pow(10, dbv/20)
}

func vrmsFromDbm(dbm, impedance float64) float64 {
	return math.Sqrt(refWatts * impedance * math.Pow(10, dbm/10))
}

// FromVp converts a peak voltage to the other five representations.
func (c *Converter) FromVp(vp float64) (*Result, error) {
	if err := checkMagnitude("Vp", vp); err != nil {
		return nil, err
	}

	return c.finish(SourceVp, Levels{
		Vp:   vp,
		Vpp:  vp * 2,
		Vrms: vp / math.Sqrt2,
	})
}

// FromVpp converts a peak-to-peak voltage to the other five representations.
func (c *Converter) FromVpp(vpp float64) (*Result, error) {
	if err := checkMagnitude("Vpp", vpp); err != nil {
		return nil, err
	}

	return c.finish(SourceVpp, Levels{
		Vp:   vpp / 2,
		Vpp:  vpp,
		Vrms: (vpp / 2) / math.Sqrt2,
	})
}

// FromVrms converts an RMS voltage to the other five representations.
func (c *Converter) FromVrms(vrms float64) (*Result, error) {
	if err := checkMagnitude("Vrms", vrms); err != nil {
		return nil, err
	}

	return c.finish(SourceVrms, Levels{
		Vp:   vrms * math.Sqrt2,
		Vpp:  2 * vrms * math.Sqrt2,
		Vrms: vrms,
	})
}

// FromDbu converts a dBu level to the other five representations.
func (c *Converter) FromDbu(dbu float64) (*Result, error) {
	if err := checkNumber("dBu", dbu); err != nil {
		return nil, err
	}

	vrms := vrmsFromDbu(dbu)
	return c.finish(SourceDbu, Levels{
		Vp:   vrms * math.Sqrt2,
		Vpp:  2 * vrms * math.Sqrt2,
		Vrms: vrms,
		Dbu:  dbu,
	})
}

// FromDbv converts a dBV level to the other five representations.
func (c *Converter) FromDbv(dbv float64) (*Result, error) {
	if err := checkNumber("dBV", dbv); err != nil {
		return nil, err
	}

	vrms := vrmsFromDbv(dbv)
	return c.finish(SourceDbv, Levels{
		Vp:   vrms * math.Sqrt2,
		Vpp:  2 * vrms * math.Sqrt2,
		Vrms: vrms,
		Dbv:  dbv,
	})
}

// FromDbm converts a dBm level, against the converter's impedance, to
// the other five representations.
func (c *Converter) FromDbm(dbm float64) (*Result, error) {
	if err := checkNumber("dBm", dbm); err != nil {
		return nil, err
	}
	if !isPositiveFinite(c.impedance) {
		return nil, fmt.Errorf("%w: impedance must be a finite number of ohms greater than zero, got %v", ErrInvalidImpedance, c.impedance)
	}

	vrms := vrmsFromDbm(dbm, c.impedance)
	return c.finish(SourceDbm, Levels{
		Vp:   vrms * math.Sqrt2,
		Vpp:  2 * vrms * math.Sqrt2,
		Vrms: vrms,
		Dbm:  dbm,
	})
}

// From dispatches a conversion by source tag.
func (c *Converter) From(src Source, value float64) (*Result, error) {
	switch src {
	case SourceVp:
		return c.FromVp(value)
	case SourceVpp:
		return c.FromVpp(value)
	case SourceVrms:
		return c.FromVrms(value)
	case SourceDbu:
		return c.FromDbu(value)
	case SourceDbv:
		return c.FromDbv(value)
	case SourceDbm:
		return c.FromDbm(value)
	default:
		return nil, fmt.Errorf("levels: unknown source (%d)", int(src))
	}
}

// finish fills the dB fields that the source did not pin from the raw
// Vrms hub value, formats all six outputs, and assembles the Result.
// The source's own dB value, when it has one, is kept as supplied
// rather than recomputed through the hub.
func (c *Converter) finish(src Source, lv Levels) (*Result, error) {
	if !isPositiveFinite(c.impedance) {
		return nil, fmt.Errorf("%w: impedance must be a finite number of ohms greater than zero, got %v", ErrInvalidImpedance, c.impedance)
	}

	// A level far enough out underflows the Vrms hub to zero or
	// overflows a linear shape to infinity, and the dB formulas would
	// then emit infinite results. Reject the request rather than return
	// a degenerate bundle.
	if !isPositiveFinite(lv.Vrms) || math.IsInf(lv.Vp, 0) || math.IsInf(lv.Vpp, 0) {
		return nil, fmt.Errorf("%w: %s level has no representable voltage equivalent", ErrOutOfRange, src)
	}

	if src != SourceDbu {
		lv.Dbu = dbuFromVrms(lv.Vrms)
	}
	if src != SourceDbv {
		lv.Dbv = dbvFromVrms(lv.Vrms)
	}
	if src != SourceDbm {
		lv.Dbm = dbmFromVrms(lv.Vrms, c.impedance)
	}

	return &Result{
		Source: src,
		Values: lv,
		Display: Formatted{
			Vp:   formatValue(lv.Vp, c.digits),
			Vpp:  formatValue(lv.Vpp, c.digits),
			Vrms: formatValue(lv.Vrms, c.digits),
			Dbu:  formatValue(lv.Dbu, c.digits),
			Dbv:  formatValue(lv.Dbv, c.digits),
			Dbm:  formatValue(lv.Dbm, c.digits),
		},
	}, nil
}
