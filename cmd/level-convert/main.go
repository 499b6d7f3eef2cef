// Command level-convert converts a signal level between Vp, Vpp, Vrms,
// dBu, dBV, and dBm representations.
//
// Usage:
//
//	level-convert -from vrms 1.0
//	level-convert -from dbm -impedance 50 0
//	level-convert -from vp -digits 6 0.5
//	level-convert -from dbu -config ~/.level-convert.toml -- -60
//
// Defaults for impedance and rounding digits can be kept in a TOML file
// (written with built-in defaults on first use); command-line flags
// override the file.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	levels "github.com/tphakala/go-level-converter"
)

func main() {
	var (
		from       = flag.String("from", "vrms", "Source unit: vp, vpp, vrms, dbu, dbv, dbm")
		impedance  = flag.Float64("impedance", 0, "Load impedance in ohms for dBm (overrides config file)")
		digits     = flag.Int("digits", 0, "Fractional digits for formatted output, 1-10 (overrides config file)")
		configPath = flag.String("config", "", "Optional TOML defaults file (created if missing)")
	)
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: level-convert [flags] <value>")
		flag.PrintDefaults()
		os.Exit(2)
	}

	src, err := levels.ParseSource(*from)
	if err != nil {
		log.Fatalf("Invalid -from flag: %v", err)
	}

	cfg, err := loadDefaults(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	set := map[string]bool{}
	flag.Visit(func(f *flag.Flag) { set[f.Name] = true })
	applyFlagOverrides(cfg, set, *impedance, *digits)

	conv, err := levels.New(cfg)
	if err != nil {
		log.Fatalf("Invalid conversion context: %v", err)
	}

	result, err := conv.FromText(src, flag.Arg(0))
	if err != nil {
		log.Fatalf("Conversion failed: %v", err)
	}

	fmt.Print(renderResult(result, conv.Impedance()))
}

// applyFlagOverrides replaces config-file defaults with flags the user
// set explicitly. Explicit values always win, even invalid ones like
// -impedance 0, so they reach engine validation instead of being masked
// by the defaults.
func applyFlagOverrides(cfg *levels.Config, set map[string]bool, impedance float64, digits int) {
	if set["impedance"] {
		cfg.Impedance = impedance
	}
	if set["digits"] {
		cfg.Digits = digits
	}
}

// renderResult builds the output table, marking the source row.
func renderResult(r *levels.Result, impedance float64) string {
	rows := []struct {
		src   levels.Source
		value string
	}{
		{levels.SourceVp, r.Display.Vp},
		{levels.SourceVpp, r.Display.Vpp},
		{levels.SourceVrms, r.Display.Vrms},
		{levels.SourceDbu, r.Display.Dbu},
		{levels.SourceDbv, r.Display.Dbv},
		{levels.SourceDbm, r.Display.Dbm},
	}

	out := ""
	for _, row := range rows {
		marker := " "
		if row.src == r.Source {
			marker = "*"
		}
		out += fmt.Sprintf("%s %-5s %s\n", marker, row.src, row.value)
	}
	out += fmt.Sprintf("  (dBm into %g ohm)\n", impedance)
	return out
}
