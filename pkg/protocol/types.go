// Package protocol defines the wire types and error taxonomy for the
// flight search and booking APIs used by kiwibook.
package protocol

import (
	"net/url"
	"strconv"
)

// Trip type strings accepted by the search endpoint.
const (
	TripOneWay = "oneway"
	TripRound  = "round"
)

// PartnerTag is sent with every search request.
const PartnerTag = "picky"

// SearchFilter represents the query sent to the flight search endpoint.
// It is derived once from the resolved CLI options and never mutated.
type SearchFilter struct {
	FlyFrom       string
	FlyTo         string
	DateFrom      string // dd/mm/yyyy, passed through as given
	DateTo        string
	Partner       string
	DirectFlights bool
	OneForCity    bool // narrow results to one (cheapest) flight per city
	TypeFlight    string
	NightsFrom    int // nights in destination, round trips only
	NightsTo      int
}

// Values renders the filter as URL query parameters in the form the
// search endpoint expects. Boolean flags are encoded as 0/1; the
// nights-in-destination range is only present for round trips.
func (f *SearchFilter) Values() url.Values {
	v := url.Values{}
	v.Set("flyFrom", f.FlyFrom)
	v.Set("to", f.FlyTo)
	v.Set("dateFrom", f.DateFrom)
	v.Set("dateTo", f.DateTo)
	v.Set("partner", f.Partner)
	v.Set("directFlights", boolFlag(f.DirectFlights))
	v.Set("oneforcity", boolFlag(f.OneForCity))
	v.Set("typeFlight", f.TypeFlight)
	if f.TypeFlight == TripRound {
		v.Set("daysInDestinationFrom", strconv.Itoa(f.NightsFrom))
		v.Set("daysInDestinationTo", strconv.Itoa(f.NightsTo))
	}
	return v
}

func boolFlag(b bool) string {
	if b {
		return "1"
	}
	return "0"
}

// SearchResponse represents the body returned by the search endpoint.
type SearchResponse struct {
	Data []Flight `json:"data"`
}

// Flight represents one flight offer returned by the search endpoint.
type Flight struct {
	FlyFrom        string         `json:"flyFrom"`
	FlyTo          string         `json:"flyTo"`
	Price          float64        `json:"price"`
	Duration       FlightDuration `json:"duration"`
	FlyDuration    string         `json:"fly_duration"`
	ReturnDuration string         `json:"return_duration,omitempty"`
	BookingToken   string         `json:"booking_token"`
}

// FlightDuration represents the duration block of a flight offer.
// All values are in seconds; Return is zero for one-way offers.
type FlightDuration struct {
	Departure int `json:"departure"`
	Return    int `json:"return"`
	Total     int `json:"total"`
}

// TravelerProfile represents one passenger's identity, contact and
// payment details. It is supplied externally and passed through into
// the booking payload unchanged.
type TravelerProfile struct {
	Name        string `json:"name" yaml:"name"`
	Surname     string `json:"surname" yaml:"surname"`
	Title       string `json:"title" yaml:"title"`
	Phone       string `json:"phone" yaml:"phone"`
	Birthday    int64  `json:"birthday" yaml:"birthday"`     // Unix epoch seconds
	Expiration  int64  `json:"expiration" yaml:"expiration"` // travel document expiry, epoch seconds
	CardNo      string `json:"cardno" yaml:"cardno"`
	Nationality string `json:"nationality" yaml:"nationality"`
	Email       string `json:"email" yaml:"email"`
	Category    string `json:"category" yaml:"category"`
}

// Fixed booking payload values expected by the booking endpoint.
const (
	BookingLang      = "en"
	BookingLocale    = "en"
	BookingCurrency  = "gbp"
	BookingCustomer  = "unknown"
	BookingAffiliate = "affil_id"
)

// BookingRequest represents the payload sent to the booking endpoint.
type BookingRequest struct {
	Lang              string            `json:"lang"`
	Bags              int               `json:"bags"`
	Passengers        []TravelerProfile `json:"passengers"`
	Locale            string            `json:"locale"`
	Currency          string            `json:"currency"`
	CustomerLoginID   string            `json:"customerLoginID"`
	CustomerLoginName string            `json:"customerLoginName"`
	BookingToken      string            `json:"booking_token"`
	Affily            string            `json:"affily"`
	BookedAt          string            `json:"booked_at"`
}

// NewBookingRequest assembles a booking payload for one traveler on the
// given flight, filling in the fixed locale/currency/customer fields.
func NewBookingRequest(flight *Flight, bags int, traveler *TravelerProfile) *BookingRequest {
	return &BookingRequest{
		Lang:              BookingLang,
		Bags:              bags,
		Passengers:        []TravelerProfile{*traveler},
		Locale:            BookingLocale,
		Currency:          BookingCurrency,
		CustomerLoginID:   BookingCustomer,
		CustomerLoginName: BookingCustomer,
		BookingToken:      flight.BookingToken,
		Affily:            BookingAffiliate,
		BookedAt:          BookingAffiliate,
	}
}

// BookingResponse represents the body returned by the booking endpoint.
type BookingResponse struct {
	BookingID string `json:"booking_id"`
}
