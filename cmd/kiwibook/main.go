// Package main provides the kiwibook CLI: it searches for a flight
// matching the given trip criteria, picks the cheapest or fastest
// offer, and books it upon confirmation.
package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/mzielin/kiwibook/internal/booking"
	"github.com/mzielin/kiwibook/internal/cli/client"
	"github.com/mzielin/kiwibook/internal/cli/clicontext"
	"github.com/mzielin/kiwibook/internal/cli/options"
	"github.com/mzielin/kiwibook/internal/cli/output"
	"github.com/mzielin/kiwibook/internal/flights"
	"github.com/mzielin/kiwibook/internal/traveler"
	"github.com/mzielin/kiwibook/pkg/protocol"
)

const (
	// searchURL is the production flight search endpoint.
	searchURL = "https://api.skypicker.com/flights"
	// bookingURL is the mock booking endpoint. Before switching to the
	// production endpoint a check-flights step verifying actual price
	// and availability has to be implemented prior to booking.
	bookingURL = "https://private-anon-7a22d853a6-skypickerbookingapi1.apiary-mock.com/api/v0.1/save_booking?v=2"
)

func main() {
	cfg, err := options.Parse(os.Args[1:], os.Stderr)
	if err != nil {
		os.Exit(2)
	}

	clicontext.SetAssumeYes(cfg.AssumeYes)

	apiClient := client.New(searchURL, bookingURL)
	if err := run(cfg, apiClient, os.Stdin, os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(protocol.ExitCode(err))
	}
}

// run drives the whole workflow: search, select, show, confirm, book.
// It never exits the process; every failure flows back here and is
// translated into an exit code by main.
func run(cfg *options.SearchConfig, apiClient *client.Client, in io.Reader, out io.Writer) error {
	profile, err := traveler.Resolve(cfg.TravelerPath)
	if err != nil {
		return err
	}

	filter := flights.BuildFilter(cfg)
	output.SearchMessage(out, cfg.Criterion, filter)

	candidates, err := apiClient.SearchFlights(context.Background(), filter)
	if err != nil {
		return err
	}

	flight, ok := flights.SelectBest(candidates, cfg.Criterion)
	if !ok {
		output.NoneFound(out)
		return nil
	}

	output.FlightDetails(out, flight, !cfg.OneWay)

	if cfg.Output != "" {
		format, err := output.ParseFormat(cfg.Output)
		if err != nil {
			return err
		}
		formatted, err := output.FormatData(flight, format)
		if err != nil {
			return err
		}
		fmt.Fprint(out, formatted)
	}

	submitter := booking.NewSubmitter(apiClient, in, out)
	return submitter.Run(context.Background(), flight, cfg.Bags, profile)
}
