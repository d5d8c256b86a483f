// Package output provides the human-readable and machine-readable
// rendering of search status and flight details.
package output

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/mzielin/kiwibook/internal/cli/options"
	"github.com/mzielin/kiwibook/pkg/protocol"
)

// Format represents a machine-readable output format.
type Format string

const (
	// FormatYAML represents YAML output format.
	FormatYAML Format = "yaml"
	// FormatJSON represents JSON output format.
	FormatJSON Format = "json"
)

// SearchMessage prints the status line shown before the search call.
func SearchMessage(w io.Writer, criterion options.Criterion, filter *protocol.SearchFilter) {
	fmt.Fprintf(w, "Searching for %s, %s flight, from %s to %s\n",
		criterion, filter.TypeFlight, filter.FlyFrom, filter.FlyTo)
}

// NoneFound prints the message shown when the search returned no
// candidates.
func NoneFound(w io.Writer) {
	fmt.Fprintln(w, "No suitable flights were found based on your criteria")
}

// FlightDetails prints the details block for the selected flight.
// The return duration line only appears for round trips.
func FlightDetails(w io.Writer, flight *protocol.Flight, roundTrip bool) {
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Flight from: %s\n", flight.FlyFrom)
	fmt.Fprintf(w, "To: %s\n", flight.FlyTo)
	fmt.Fprintf(w, "Price: %v EUR\n", flight.Price)
	fmt.Fprintf(w, "Flight duration: %s\n", flight.FlyDuration)
	if roundTrip {
		fmt.Fprintf(w, "Return duration: %s\n", flight.ReturnDuration)
	}
}

// FormatData formats data according to the specified format and
// returns the result as a string.
func FormatData(data any, format Format) (string, error) {
	switch format {
	case FormatYAML:
		return formatYAML(data)
	case FormatJSON:
		return formatJSON(data)
	default:
		return "", fmt.Errorf("unsupported output format: %s", format)
	}
}

func formatYAML(data any) (string, error) {
	b, err := yaml.Marshal(data)
	if err != nil {
		return "", fmt.Errorf("failed to format as YAML: %w", err)
	}
	return string(b), nil
}

func formatJSON(data any) (string, error) {
	b, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to format as JSON: %w", err)
	}
	return string(b), nil
}

// ParseFormat parses a format string into a Format value.
func ParseFormat(s string) (Format, error) {
	switch s {
	case "yaml", "yml":
		return FormatYAML, nil
	case "json":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("invalid output format '%s': must be 'yaml' or 'json'", s)
	}
}
