package adapters

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"shipment-validator/internal/features/validation/domain"
)

// APIClient talks to a running validator service over HTTP.
type APIClient struct {
	baseURL string
	client  *http.Client
}

// NewAPIClient creates a new APIClient for the service at baseURL.
func NewAPIClient(baseURL string, client *http.Client) *APIClient {
	return &APIClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  client,
	}
}

// StatusError is returned when the service answers with an unexpected status.
type StatusError struct {
	Code    int    `json:"-"`
	Message string `json:"message"`
	RayID   string `json:"ray_id"`
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("service returned %d: %s (ray_id=%s)", e.Code, e.Message, e.RayID)
}

type submission struct {
	ID     string         `json:"id"`
	Report *domain.Report `json:"report"`
}

// Submit posts shipments for validation and returns the stored report ID.
func (c *APIClient) Submit(ctx context.Context, shipments []domain.Shipment) (string, *domain.Report, error) {
	body, err := json.Marshal(shipments)
	if err != nil {
		return "", nil, fmt.Errorf("failed to marshal shipments: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/validations", bytes.NewReader(body))
	if err != nil {
		return "", nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	var out submission
	if err := c.do(req, http.StatusCreated, &out); err != nil {
		return "", nil, err
	}
	return out.ID, out.Report, nil
}

// GetReport fetches a stored report, keeping only results matching filter.
func (c *APIClient) GetReport(ctx context.Context, id string, filter domain.StatusFilter) (*domain.Report, error) {
	u := c.baseURL + "/validations/" + url.PathEscape(id)
	if filter != "" && filter != domain.FilterAll {
		u += "?status=" + url.QueryEscape(string(filter))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	var report domain.Report
	if err := c.do(req, http.StatusOK, &report); err != nil {
		var statusErr *StatusError
		if errors.As(err, &statusErr) && statusErr.Code == http.StatusNotFound {
			return nil, fmt.Errorf("%w: %s", domain.ErrReportNotFound, id)
		}
		return nil, err
	}
	return &report, nil
}

func (c *APIClient) do(req *http.Request, want int, out any) error {
	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("request to %s failed: %w", req.URL.Path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != want {
		statusErr := &StatusError{Code: resp.StatusCode}
		_ = json.NewDecoder(resp.Body).Decode(statusErr)
		return statusErr
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
