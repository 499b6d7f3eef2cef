package levels

import (
	"errors"
	"testing"
)

// TestOneShotConverters verifies the package-level one-shot functions
// agree with the Converter methods.
func TestOneShotConverters(t *testing.T) {
	c, err := New(&Config{Impedance: 600, Digits: 4})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	tests := []struct {
		name    string
		oneShot func() (*Result, error)
		method  func() (*Result, error)
	}{
		{"vp", func() (*Result, error) { return ConvertFromVp(0.5, 600, 4) }, func() (*Result, error) { return c.FromVp(0.5) }},
		{"vpp", func() (*Result, error) { return ConvertFromVpp(3, 600, 4) }, func() (*Result, error) { return c.FromVpp(3) }},
		{"vrms", func() (*Result, error) { return ConvertFromVrms(1, 600, 4) }, func() (*Result, error) { return c.FromVrms(1) }},
		{"dbu", func() (*Result, error) { return ConvertFromDbu(-60, 600, 4) }, func() (*Result, error) { return c.FromDbu(-60) }},
		{"dbv", func() (*Result, error) { return ConvertFromDbv(6, 600, 4) }, func() (*Result, error) { return c.FromDbv(6) }},
		{"dbm", func() (*Result, error) { return ConvertFromDbm(4, 600, 4) }, func() (*Result, error) { return c.FromDbm(4) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.oneShot()
			if err != nil {
				t.Fatalf("one-shot failed: %v", err)
			}
			want, err := tt.method()
			if err != nil {
				t.Fatalf("method failed: %v", err)
			}
			if *got != *want {
				t.Errorf("one-shot = %+v, want %+v", got, want)
			}
		})
	}
}

// TestOneShotValidatesContext verifies a bad context is rejected before
// any computation.
func TestOneShotValidatesContext(t *testing.T) {
	if _, err := ConvertFromVrms(1, 600, 0); !errors.Is(err, ErrInvalidRounding) {
		t.Errorf("digits=0 error = %v, want ErrInvalidRounding", err)
	}
	if _, err := ConvertFromVrms(1, 600, 11); !errors.Is(err, ErrInvalidRounding) {
		t.Errorf("digits=11 error = %v, want ErrInvalidRounding", err)
	}
	if _, err := ConvertFromDbm(0, -8, 4); !errors.Is(err, ErrInvalidImpedance) {
		t.Errorf("impedance=-8 error = %v, want ErrInvalidImpedance", err)
	}
}

// TestFromText verifies the text-entry boundary maps parse failures to
// the right error kinds.
func TestFromText(t *testing.T) {
	c, err := New(nil)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	r, err := c.FromText(SourceVrms, " 1.0 ")
	if err != nil {
		t.Fatalf("FromText failed: %v", err)
	}
	if r.Display.Dbv != "0" {
		t.Errorf("Dbv = %q, want \"0\"", r.Display.Dbv)
	}

	if _, err := c.FromText(SourceVp, "garbage"); !errors.Is(err, ErrInvalidMagnitude) {
		t.Errorf("linear parse failure error = %v, want ErrInvalidMagnitude", err)
	}
	if _, err := c.FromText(SourceDbu, "garbage"); !errors.Is(err, ErrInvalidNumber) {
		t.Errorf("dB parse failure error = %v, want ErrInvalidNumber", err)
	}
	if _, err := c.FromText(SourceDbm, ""); !errors.Is(err, ErrInvalidNumber) {
		t.Errorf("empty dB entry error = %v, want ErrInvalidNumber", err)
	}

	// Parseable but non-finite text still lands in the taxonomy.
	if _, err := c.FromText(SourceDbv, "NaN"); !errors.Is(err, ErrInvalidNumber) {
		t.Errorf("NaN entry error = %v, want ErrInvalidNumber", err)
	}
	if _, err := c.FromText(SourceVrms, "-2"); !errors.Is(err, ErrInvalidMagnitude) {
		t.Errorf("negative voltage entry error = %v, want ErrInvalidMagnitude", err)
	}
}

// TestParseSource verifies unit-name parsing.
func TestParseSource(t *testing.T) {
	tests := []struct {
		in   string
		want Source
	}{
		{"vp", SourceVp},
		{"Vpp", SourceVpp},
		{"VRMS", SourceVrms},
		{"dBu", SourceDbu},
		{"dbv", SourceDbv},
		{" dbm ", SourceDbm},
	}
	for _, tt := range tests {
		got, err := ParseSource(tt.in)
		if err != nil {
			t.Errorf("ParseSource(%q) failed: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseSource(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}

	if _, err := ParseSource("volts"); err == nil {
		t.Error("ParseSource(\"volts\") succeeded, want error")
	}
}
