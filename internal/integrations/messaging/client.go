package messaging

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/jtmanningm/ezbiz-booking/internal/domain"
)

// Logger is the logging surface the client needs.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client talks to the messaging gateway that delivers booking confirmations
// to customers.
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient creates a messaging gateway client.
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// SendBookingConfirmation posts a confirmation for the booking. Gateway
// failures degrade gracefully: the error is reported but the caller treats
// the booking as created either way.
func (c *Client) SendBookingConfirmation(ctx context.Context, b *domain.Booking) error {
	c.log.Info("Sending confirmation for booking %d to %q", b.ID, b.CustomerName)

	if err := c.postConfirmation(ctx, b); err != nil {
		c.log.Error("Messaging gateway unavailable for booking %d: %v", b.ID, err)
		return fmt.Errorf("%w: booking_id=%d, error=%v", ErrServiceDegraded, b.ID, err)
	}

	c.log.Info("Confirmation sent for booking %d", b.ID)
	return nil
}

func (c *Client) postConfirmation(ctx context.Context, b *domain.Booking) error {
	payload := ConfirmationRequest{
		BookingID:    b.ID,
		CustomerID:   b.CustomerID,
		CustomerName: b.CustomerName,
		ServiceNames: b.ServiceNames,
		ServiceDate:  b.ServiceDate.Format(domain.DateFormat),
		StartTime:    string(b.StartTime),
		Duration:     b.DurationMinutes,
		TotalCost:    b.TotalCost,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("%w: failed to encode payload: %v", ErrInternal, err)
	}

	url := fmt.Sprintf("%s/internal/notifications/booking-confirmation", c.baseURL)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK, http.StatusAccepted, http.StatusCreated:
		return nil
	default:
		respBody, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(respBody))
	}
}
