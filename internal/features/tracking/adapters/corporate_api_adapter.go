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

// CorporateAPIAdapter fetches corporate consignment records. The corporate
// endpoint wraps the record in a response envelope, unlike the customer one.
type CorporateAPIAdapter struct {
	baseURL string
	client  *http.Client
}

// NewCorporateAPIAdapter creates a new CorporateAPIAdapter for the given base URL.
func NewCorporateAPIAdapter(baseURL string) *CorporateAPIAdapter {
	return &CorporateAPIAdapter{
		baseURL: baseURL,
		client:  httpclient.NewClient(10 * time.Second),
	}
}

// corporateTrackingResponse is the corporate endpoint's response envelope.
type corporateTrackingResponse struct {
	Success bool                  `json:"success"`
	Message string                `json:"message"`
	Booking *domain.BookingRecord `json:"booking"`
}

// FetchBooking retrieves the raw consignment record for a reference.
func (a *CorporateAPIAdapter) FetchBooking(ctx context.Context, reference string) (*domain.BookingRecord, error) {
	url := fmt.Sprintf("%s/api/v1/corporate/consignments/%s", a.baseURL, reference)

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
		return nil, fmt.Errorf("corporate API returned status: %d", resp.StatusCode)
	}

	var envelope corporateTrackingResponse
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return nil, fmt.Errorf("failed to decode consignment response: %w", err)
	}

	if !envelope.Success || envelope.Booking == nil {
		if envelope.Message != "" {
			return nil, fmt.Errorf("corporate API error: %s", envelope.Message)
		}
		return nil, nil
	}

	return envelope.Booking, nil
}

// SupportsKind returns true for corporate consignments.
func (a *CorporateAPIAdapter) SupportsKind(kind string) bool {
	return kind == domain.KindCorporate
}
