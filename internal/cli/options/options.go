// Package options resolves raw CLI arguments into a validated flight
// search configuration.
package options

import (
	"flag"
	"fmt"
	"io"
	"time"
)

// dateLayout is the dd/mm/yyyy departure date format.
const dateLayout = "02/01/2006"

// nightsUnset marks the --returning flag as not provided.
const nightsUnset = -1

// Criterion is the optimization key used to pick one flight.
type Criterion int

// Selection criteria. Cheapest is the default when fastest is not
// explicitly requested.
const (
	Cheapest Criterion = iota
	Fastest
)

// String returns the human-readable name of the criterion.
func (c Criterion) String() string {
	if c == Fastest {
		return "fastest"
	}
	return "cheapest"
}

// SearchConfig holds the resolved, validated trip criteria. It is
// created once at startup and immutable thereafter.
type SearchConfig struct {
	FlyFrom      string // departure airport IATA code
	FlyTo        string // destination airport IATA code
	Date         string // departure date, dd/mm/yyyy
	OneWay       bool
	ReturnNights int // nights in destination, meaningful only when !OneWay
	Criterion    Criterion
	Direct       bool
	Bags         int
	TravelerPath string // optional traveler profile YAML file
	Output       string // optional machine-readable flight dump: "json" or "yaml"
	AssumeYes    bool
}

// Parse resolves args into a SearchConfig. Usage messages and flag
// errors are written to errOut. A non-nil error means the arguments
// were invalid and the process should exit with a usage error.
func Parse(args []string, errOut io.Writer) (*SearchConfig, error) {
	fs := flag.NewFlagSet("kiwibook", flag.ContinueOnError)
	fs.SetOutput(errOut)

	date := fs.String("date", "", `departure date in "dd/mm/yyyy" format (required)`)
	flyFrom := fs.String("flight_from", "", "departure airport IATA code (required)")
	flyTo := fs.String("to", "", "destination airport IATA code (required)")
	oneWay := fs.Bool("one_way", false, "search only for a one-way ticket (default)")
	returning := fs.Int("returning", nightsUnset, "number of nights to stay in destination")
	cheapest := fs.Bool("cheapest", false, "search for the cheapest flight (default)")
	fastest := fs.Bool("fastest", false, "search for the fastest flight")
	direct := fs.Bool("direct", false, "search only for direct flights")
	bags := fs.Int("bags", 0, "number of checked bags")
	traveler := fs.String("traveler", "", "path to a traveler profile YAML file")
	outputFmt := fs.String("output", "", "print the selected flight as 'json' or 'yaml'")
	assumeYes := fs.Bool("assumeyes", false, "book without asking for confirmation")
	fs.BoolVar(assumeYes, "y", false, "shorthand for --assumeyes")

	fs.Usage = func() {
		fmt.Fprintf(errOut, `Usage: kiwibook [flags]

Search for a flight matching the given criteria and book it upon
confirmation.

Flags:
`)
		fs.PrintDefaults()
		fmt.Fprintf(errOut, `
Examples:
  # Cheapest one-way flight, no checked bags
  kiwibook --date 01/04/2026 --flight_from LHR --to PRG

  # Fastest direct round trip, staying 7 nights, two bags
  kiwibook --date 01/04/2026 --flight_from LHR --to PRG --returning 7 --fastest --direct --bags 2
`)
	}

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	cfg := &SearchConfig{
		FlyFrom:      *flyFrom,
		FlyTo:        *flyTo,
		Date:         *date,
		ReturnNights: *returning,
		Direct:       *direct,
		Bags:         *bags,
		TravelerPath: *traveler,
		Output:       *outputFmt,
		AssumeYes:    *assumeYes,
	}

	if err := cfg.resolve(*oneWay, *cheapest, *fastest); err != nil {
		fmt.Fprintf(errOut, "Error: %v\n\n", err)
		fs.Usage()
		return nil, err
	}

	return cfg, nil
}

// resolve validates the raw flag values and applies the defaulting
// rules: cheapest unless fastest was requested, one-way unless a
// returning-nights value was given.
func (c *SearchConfig) resolve(oneWay, cheapest, fastest bool) error {
	if c.Date == "" {
		return fmt.Errorf("--date is required")
	}
	if _, err := time.Parse(dateLayout, c.Date); err != nil {
		return fmt.Errorf("invalid --date %q: expected dd/mm/yyyy", c.Date)
	}
	if c.FlyFrom == "" {
		return fmt.Errorf("--flight_from is required")
	}
	if c.FlyTo == "" {
		return fmt.Errorf("--to is required")
	}

	if cheapest && fastest {
		return fmt.Errorf("--cheapest and --fastest are mutually exclusive")
	}
	if oneWay && c.ReturnNights != nightsUnset {
		return fmt.Errorf("--one_way and --returning are mutually exclusive")
	}

	if c.ReturnNights != nightsUnset && c.ReturnNights < 0 {
		return fmt.Errorf("--returning must be >= 0, got %d", c.ReturnNights)
	}
	if c.Bags < 0 {
		return fmt.Errorf("--bags must be >= 0, got %d", c.Bags)
	}

	if c.Output != "" && c.Output != "json" && c.Output != "yaml" {
		return fmt.Errorf("invalid --output %q: must be 'json' or 'yaml'", c.Output)
	}

	// Cheapest is the default criterion; an explicit --cheapest flag is
	// redundant but allowed.
	if fastest {
		c.Criterion = Fastest
	} else {
		c.Criterion = Cheapest
	}

	// One-way is the default trip type.
	if c.ReturnNights == nightsUnset {
		c.OneWay = true
		c.ReturnNights = 0
	}

	return nil
}
