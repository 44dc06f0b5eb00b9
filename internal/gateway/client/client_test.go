//go:build unit

package client_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"avia-booking/internal/gateway/client"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTicketClient_ForwardsIdentityHeader(t *testing.T) {
	var gotUser string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUser = r.Header.Get("X-User-Name")
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode([]client.Ticket{})
	}))
	defer srv.Close()

	c := client.NewTicketClient(client.Config{BaseURL: srv.URL, Timeout: time.Second})

	_, err := c.GetTickets(context.Background(), "Test Max")
	require.NoError(t, err)
	assert.Equal(t, "Test Max", gotUser)
}

func TestTicketClient_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	c := client.NewTicketClient(client.Config{BaseURL: srv.URL, Timeout: time.Second})

	_, err := c.GetTicket(context.Background(), "Test Max", uuid.New())
	assert.ErrorIs(t, err, client.ErrNotFound)
}

func TestTicketClient_ServerErrorIsUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := client.NewTicketClient(client.Config{BaseURL: srv.URL, Timeout: time.Second})

	err := c.CancelTicket(context.Background(), "Test Max", uuid.New())
	assert.ErrorIs(t, err, client.ErrUnavailable)
}

func TestTicketClient_TimeoutIsUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-time.After(2 * time.Second):
		case <-r.Context().Done():
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	c := client.NewTicketClient(client.Config{BaseURL: srv.URL, Timeout: 50 * time.Millisecond})

	_, err := c.GetTickets(context.Background(), "Test Max")
	assert.ErrorIs(t, err, client.ErrUnavailable)
}

func TestTicketClient_TransportFailureIsUnavailable(t *testing.T) {
	c := client.NewTicketClient(client.Config{BaseURL: "http://127.0.0.1:1", Timeout: time.Second})

	_, err := c.GetTickets(context.Background(), "Test Max")
	assert.ErrorIs(t, err, client.ErrUnavailable)
}

func TestBonusClient_CalculateSendsCamelCaseBody(t *testing.T) {
	ticketUID := uuid.New()
	var got map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(client.OperationResult{
			PaidByBonuses: 100,
			BalanceDiff:   -100,
			Privilege:     client.PrivilegeShort{Balance: 0, Status: "BRONZE"},
		})
	}))
	defer srv.Close()

	c := client.NewBonusClient(client.Config{BaseURL: srv.URL, Timeout: time.Second})

	result, err := c.Calculate(context.Background(), "Test Max", ticketUID, 1500, true)
	require.NoError(t, err)

	assert.Equal(t, 100, result.PaidByBonuses)
	assert.Equal(t, ticketUID.String(), got["ticketUid"])
	assert.Equal(t, float64(1500), got["price"])
	assert.Equal(t, true, got["paidFromBalance"])
}

func TestFlightClient_GetFlightsPagination(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "2", r.URL.Query().Get("page"))
		assert.Equal(t, "5", r.URL.Query().Get("size"))
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(client.FlightPage{Page: 2, PageSize: 5, TotalElements: 11})
	}))
	defer srv.Close()

	c := client.NewFlightClient(client.Config{BaseURL: srv.URL, Timeout: time.Second})

	page, err := c.GetFlights(context.Background(), 2, 5)
	require.NoError(t, err)
	assert.Equal(t, int64(11), page.TotalElements)
}
