// Package booking confirms and submits the booking for a selected
// flight.
package booking

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/mzielin/kiwibook/internal/cli/clicontext"
	"github.com/mzielin/kiwibook/pkg/protocol"
)

// maxPromptAttempts bounds the confirmation loop: after this many
// unrecognized answers the booking is treated as declined.
const maxPromptAttempts = 5

// BookingClient issues the booking call. Satisfied by *client.Client.
type BookingClient interface {
	CreateBooking(ctx context.Context, booking *protocol.BookingRequest) (*protocol.BookingResponse, error)
}

// Submitter confirms a booking with the user and submits it. The
// prompt input is injected so the confirmation flow is testable.
type Submitter struct {
	client BookingClient
	in     *bufio.Reader
	out    io.Writer
}

// NewSubmitter creates a Submitter reading confirmation answers from
// in and writing status lines to out.
func NewSubmitter(c BookingClient, in io.Reader, out io.Writer) *Submitter {
	return &Submitter{
		client: c,
		in:     bufio.NewReader(in),
		out:    out,
	}
}

// Run asks the user to confirm the booking and, on an affirmative
// answer, submits it. Declining is not an error; the caller exits
// cleanly.
func (s *Submitter) Run(ctx context.Context, flight *protocol.Flight, bags int, traveler *protocol.TravelerProfile) error {
	if !s.confirm() {
		fmt.Fprintln(s.out, "Flight wasn't booked")
		return nil
	}
	return s.submit(ctx, flight, bags, traveler)
}

// confirm prompts until the answer is y or n (case-insensitive).
// With --assumeyes set the prompt is skipped entirely.
func (s *Submitter) confirm() bool {
	if clicontext.AssumeYes() {
		fmt.Fprintln(s.out, "Booking without confirmation (--assumeyes flag is set)")
		return true
	}

	fmt.Fprintln(s.out)
	for attempt := 0; attempt < maxPromptAttempts; attempt++ {
		fmt.Fprint(s.out, "Do you wish to book the flight? y/n: ")

		answer, err := s.in.ReadString('\n')
		if err != nil && answer == "" {
			return false
		}

		switch strings.ToLower(strings.TrimSpace(answer)) {
		case "y":
			return true
		case "n":
			return false
		}
	}

	fmt.Fprintln(s.out, "No valid answer given, not booking")
	return false
}

// submit builds the booking payload and performs the booking call.
func (s *Submitter) submit(ctx context.Context, flight *protocol.Flight, bags int, traveler *protocol.TravelerProfile) error {
	req := protocol.NewBookingRequest(flight, bags, traveler)

	fmt.Fprintln(s.out)
	fmt.Fprintf(s.out, "Booking flight with %d bags\n", req.Bags)

	resp, err := s.client.CreateBooking(ctx, req)
	if err != nil {
		return err
	}

	if resp.BookingID == "" {
		return fmt.Errorf("booking response did not contain a booking id")
	}

	fmt.Fprintf(s.out, "Your flight was booked, booking id: %s\n", resp.BookingID)
	return nil
}
