package client_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mzielin/kiwibook/internal/cli/client"
	"github.com/mzielin/kiwibook/pkg/protocol"
)

func testFilter() *protocol.SearchFilter {
	return &protocol.SearchFilter{
		FlyFrom:    "LHR",
		FlyTo:      "PRG",
		DateFrom:   "01/04/2026",
		DateTo:     "01/04/2026",
		Partner:    protocol.PartnerTag,
		OneForCity: true,
		TypeFlight: protocol.TripOneWay,
	}
}

func TestSearchFlights_Success(t *testing.T) {
	var gotQuery map[string][]string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		gotQuery = r.URL.Query()

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data": [
			{"flyFrom": "LHR", "flyTo": "PRG", "price": 80, "duration": {"total": 7200}, "booking_token": "t1"},
			{"flyFrom": "LHR", "flyTo": "PRG", "price": 100, "duration": {"total": 5400}, "booking_token": "t2"}
		]}`))
	}))
	defer server.Close()

	c := client.New(server.URL, server.URL)
	candidates, err := c.SearchFlights(context.Background(), testFilter())
	require.NoError(t, err)

	require.Len(t, candidates, 2)
	assert.Equal(t, 80.0, candidates[0].Price)
	assert.Equal(t, "t2", candidates[1].BookingToken)

	assert.Equal(t, []string{"LHR"}, gotQuery["flyFrom"])
	assert.Equal(t, []string{"PRG"}, gotQuery["to"])
	assert.Equal(t, []string{"picky"}, gotQuery["partner"])
	assert.Equal(t, []string{"1"}, gotQuery["oneforcity"])
	assert.Equal(t, []string{"oneway"}, gotQuery["typeFlight"])
}

func TestSearchFlights_EmptyResults(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "empty data array", body: `{"data": []}`},
		{name: "absent data field", body: `{}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				_, _ = w.Write([]byte(tt.body))
			}))
			defer server.Close()

			c := client.New(server.URL, server.URL)
			candidates, err := c.SearchFlights(context.Background(), testFilter())

			require.NoError(t, err, "an empty candidate list is not an error")
			assert.Empty(t, candidates)
		})
	}
}

func TestSearchFlights_HTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "upstream down", http.StatusBadGateway)
	}))
	defer server.Close()

	c := client.New(server.URL, server.URL)
	_, err := c.SearchFlights(context.Background(), testFilter())

	require.Error(t, err)
	var te *protocol.TransportError
	require.ErrorAs(t, err, &te)
	assert.Equal(t, protocol.ErrCodeHTTP, te.Code)
	assert.Equal(t, http.StatusBadGateway, te.StatusCode)
}

func TestSearchFlights_ConnectionFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	server.Close() // nothing listens on the URL anymore

	c := client.New(server.URL, server.URL)
	_, err := c.SearchFlights(context.Background(), testFilter())

	require.Error(t, err)
	var te *protocol.TransportError
	require.ErrorAs(t, err, &te)
	assert.Equal(t, protocol.ErrCodeNetwork, te.Code)
	assert.Equal(t, "Failed to establish connection, check your internet settings and try again", te.Error())
}

func TestSearchFlights_Timeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		time.Sleep(200 * time.Millisecond)
		_, _ = w.Write([]byte(`{"data": []}`))
	}))
	defer server.Close()

	c := client.New(server.URL, server.URL,
		client.WithHTTPClient(&http.Client{Timeout: 20 * time.Millisecond}))

	_, err := c.SearchFlights(context.Background(), testFilter())

	require.Error(t, err)
	var te *protocol.TransportError
	require.ErrorAs(t, err, &te)
	assert.Equal(t, protocol.ErrCodeTimeout, te.Code)
	assert.Equal(t, "Connection timed out", te.Error())
}

func TestSearchFlights_InvalidJSON(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`not json`))
	}))
	defer server.Close()

	c := client.New(server.URL, server.URL)
	_, err := c.SearchFlights(context.Background(), testFilter())

	require.Error(t, err)
	assert.False(t, protocol.IsTransportError(err), "a malformed body on a 2xx is not a transport failure")
}

func TestCreateBooking_Success(t *testing.T) {
	var gotBody protocol.BookingRequest

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))

		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"booking_id": "abc123"}`))
	}))
	defer server.Close()

	c := client.New(server.URL, server.URL)

	req := protocol.NewBookingRequest(
		&protocol.Flight{BookingToken: "token-abc"},
		2,
		&protocol.TravelerProfile{Name: "test", Surname: "test"},
	)

	resp, err := c.CreateBooking(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "abc123", resp.BookingID)

	assert.Equal(t, "token-abc", gotBody.BookingToken)
	assert.Equal(t, 2, gotBody.Bags)
	assert.Equal(t, "gbp", gotBody.Currency)
	require.Len(t, gotBody.Passengers, 1)
	assert.Equal(t, "test", gotBody.Passengers[0].Name)
}

func TestCreateBooking_HTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "bad token", http.StatusUnprocessableEntity)
	}))
	defer server.Close()

	c := client.New(server.URL, server.URL)
	_, err := c.CreateBooking(context.Background(),
		protocol.NewBookingRequest(&protocol.Flight{}, 0, &protocol.TravelerProfile{}))

	require.Error(t, err)
	var te *protocol.TransportError
	require.ErrorAs(t, err, &te)
	assert.Equal(t, protocol.ErrCodeHTTP, te.Code)
	assert.Equal(t, http.StatusUnprocessableEntity, te.StatusCode)
}
