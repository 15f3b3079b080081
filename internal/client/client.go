// Package client is the typed HTTP client for the reservation API,
// used by the terminal front end.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/zonebook/zonebook/internal/models"
)

type Client struct {
	baseURL string
	http    *http.Client
}

func New(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 15 * time.Second},
	}
}

// List fetches the full reservation set, ordered by date and start time.
func (c *Client) List(ctx context.Context) ([]models.Reservation, error) {
	var reservations []models.Reservation
	if err := c.do(ctx, http.MethodGet, "/reservations", nil, http.StatusOK, &reservations); err != nil {
		return nil, err
	}
	return reservations, nil
}

func (c *Client) Create(ctx context.Context, in models.Input) (*models.Reservation, error) {
	var reservation models.Reservation
	if err := c.do(ctx, http.MethodPost, "/reservations", &in, http.StatusCreated, &reservation); err != nil {
		return nil, err
	}
	return &reservation, nil
}

func (c *Client) Update(ctx context.Context, id uint, in models.Input) (*models.Reservation, error) {
	var reservation models.Reservation
	path := fmt.Sprintf("/reservations/%d", id)
	if err := c.do(ctx, http.MethodPut, path, &in, http.StatusOK, &reservation); err != nil {
		return nil, err
	}
	return &reservation, nil
}

func (c *Client) Delete(ctx context.Context, id uint) error {
	path := fmt.Sprintf("/reservations/%d", id)
	return c.do(ctx, http.MethodDelete, path, nil, http.StatusNoContent, nil)
}

func (c *Client) do(ctx context.Context, method, path string, body any, wantStatus int, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return &NetworkError{Err: err}
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return &NetworkError{Err: err}
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return &NetworkError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != wantStatus {
		return decodeError(resp)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return &NetworkError{Err: err}
		}
	}
	return nil
}

// decodeError maps a non-2xx response onto the error taxonomy. A body
// that is not the expected {"error": ...} shape degrades to a
// NetworkError carrying the status code.
func decodeError(resp *http.Response) error {
	var body struct {
		Error string `json:"error"`
	}
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	if err := json.Unmarshal(raw, &body); err != nil || body.Error == "" {
		return &NetworkError{Err: fmt.Errorf("unexpected response status %d", resp.StatusCode)}
	}

	switch {
	case resp.StatusCode == http.StatusBadRequest || resp.StatusCode == http.StatusUnprocessableEntity:
		return &ValidationError{Message: body.Error}
	case resp.StatusCode == http.StatusNotFound:
		return &NotFoundError{Message: body.Error}
	case resp.StatusCode >= 500:
		return &ServerError{Message: body.Error}
	}
	return &NetworkError{Err: fmt.Errorf("unexpected response status %d: %s", resp.StatusCode, body.Error)}
}
