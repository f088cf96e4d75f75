package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"consignment-tracker/internal/core/httpclient"
	"consignment-tracker/internal/features/tracking/domain"
)

// CustomerAPIAdapter fetches customer booking records from the booking
// backend's REST API.
type CustomerAPIAdapter struct {
	baseURL string
	client  *http.Client
}

// NewCustomerAPIAdapter creates a new CustomerAPIAdapter for the given base URL.
func NewCustomerAPIAdapter(baseURL string) *CustomerAPIAdapter {
	return &CustomerAPIAdapter{
		baseURL: baseURL,
		client:  httpclient.NewClient(10 * time.Second),
	}
}

// FetchBooking retrieves the raw booking record for a reference.
func (a *CustomerAPIAdapter) FetchBooking(ctx context.Context, reference string) (*domain.BookingRecord, error) {
	url := fmt.Sprintf("%s/api/v1/bookings/%s/tracking", a.baseURL, reference)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := a.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, nil
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("booking API returned status: %d", resp.StatusCode)
	}

	var record domain.BookingRecord
	if err := json.NewDecoder(resp.Body).Decode(&record); err != nil {
		return nil, fmt.Errorf("failed to decode booking response: %w", err)
	}

	return &record, nil
}

// HealthCheck verifies that the booking API is reachable.
func (a *CustomerAPIAdapter) HealthCheck() error {
	url := fmt.Sprintf("%s/api/v1/health", a.baseURL)

	resp, err := a.client.Get(url)
	if err != nil {
		return fmt.Errorf("health check request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("health check failed with status: %d", resp.StatusCode)
	}

	return nil
}

// SupportsKind returns true for customer bookings.
func (a *CustomerAPIAdapter) SupportsKind(kind string) bool {
	return kind == domain.KindCustomer
}
