package advisor

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

var ErrBackend = errors.New("advisor backend error")

// Profile is the financial profile sent to the advisor backend.
type Profile struct {
	Income        decimal.Decimal
	Expenses      decimal.Decimal
	Goals         string
	Experience    string
	RiskTolerance string
}

// Backend is the external service that answers chat messages.
type Backend interface {
	SetProfile(ctx context.Context, userID string, p Profile) error
	Chat(ctx context.Context, userID, message string) (string, error)
}

// Client talks to the advisor backend over HTTP. Requests are sent once,
// there are no retries.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient returns a client for the backend at baseURL. Every request is
// aborted after timeout.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

type profileRequest struct {
	UserID        string  `json:"user_id"`
	Income        float64 `json:"income"`
	Expenses      float64 `json:"expenses"`
	Goals         string  `json:"goals"`
	Experience    string  `json:"experience"`
	RiskTolerance string  `json:"risk_tolerance"`
}

type chatRequest struct {
	UserID  string `json:"user_id"`
	Message string `json:"message"`
}

type response struct {
	Status   string `json:"status,omitempty"`
	Response string `json:"response,omitempty"`
	Error    string `json:"error,omitempty"`
}

// SetProfile sends the profile of a user to the backend.
func (c *Client) SetProfile(ctx context.Context, userID string, p Profile) error {
	_, err := c.post(ctx, "/set_profile", profileRequest{
		UserID:        userID,
		Income:        p.Income.InexactFloat64(),
		Expenses:      p.Expenses.InexactFloat64(),
		Goals:         p.Goals,
		Experience:    p.Experience,
		RiskTolerance: p.RiskTolerance,
	})
	return err
}

// Chat sends a message and returns the answer of the backend.
func (c *Client) Chat(ctx context.Context, userID, message string) (string, error) {
	r, err := c.post(ctx, "/chat", chatRequest{
		UserID:  userID,
		Message: message,
	})
	if err != nil {
		return "", err
	}

	return r.Response, nil
}

func (c *Client) post(ctx context.Context, path string, body any) (response, error) {
	var r response

	payload, err := json.Marshal(body)
	if err != nil {
		return r, fmt.Errorf("could not encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return r, fmt.Errorf("could not create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := c.http.Do(req)
	if err != nil {
		return r, fmt.Errorf("%w: %w", ErrBackend, err)
	}
	defer res.Body.Close()

	data, err := io.ReadAll(res.Body)
	if err != nil {
		return r, fmt.Errorf("%w: reading response: %w", ErrBackend, err)
	}

	if err := json.Unmarshal(data, &r); err != nil {
		log.Debug().Str("path", path).Int("status", res.StatusCode).Bytes("body", data).Msg("advisor backend")
		return r, fmt.Errorf("%w: response is not valid JSON: %w", ErrBackend, err)
	}

	if r.Error != "" {
		return r, fmt.Errorf("%w: %s", ErrBackend, r.Error)
	}

	if res.StatusCode < 200 || res.StatusCode > 299 {
		return r, fmt.Errorf("%w: unexpected status %d", ErrBackend, res.StatusCode)
	}

	return r, nil
}
