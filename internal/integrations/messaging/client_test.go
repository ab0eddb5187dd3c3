package messaging

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jtmanningm/ezbiz-booking/internal/domain"
)

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func testBooking() *domain.Booking {
	customerID := int64(5)
	return &domain.Booking{
		ID:              42,
		CustomerID:      &customerID,
		CustomerName:    "John Smith",
		ServiceNames:    []string{"Carpet Cleaning"},
		ServiceDate:     time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC),
		StartTime:       "10:00",
		DurationMinutes: 90,
		TotalCost:       149.99,
	}
}

func TestSendBookingConfirmation(t *testing.T) {
	var got ConfirmationRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/internal/notifications/booking-confirmation", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusAccepted)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, 2*time.Second, noopLogger{})

	err := c.SendBookingConfirmation(context.Background(), testBooking())

	require.NoError(t, err)
	assert.Equal(t, int64(42), got.BookingID)
	assert.Equal(t, "John Smith", got.CustomerName)
	assert.Equal(t, "2026-03-10", got.ServiceDate)
	assert.Equal(t, "10:00", got.StartTime)
	assert.Equal(t, 90, got.Duration)
}

func TestSendBookingConfirmation_GatewayErrorDegrades(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, 2*time.Second, noopLogger{})

	err := c.SendBookingConfirmation(context.Background(), testBooking())

	assert.ErrorIs(t, err, ErrServiceDegraded)
}

func TestSendBookingConfirmation_UnreachableGatewayDegrades(t *testing.T) {
	c := NewClient("http://127.0.0.1:1", 200*time.Millisecond, noopLogger{})

	err := c.SendBookingConfirmation(context.Background(), testBooking())

	assert.ErrorIs(t, err, ErrServiceDegraded)
}
