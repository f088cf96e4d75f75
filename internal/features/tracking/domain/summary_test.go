package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestBuildSummary verifies the full pipeline over one record.
func TestBuildSummary(t *testing.T) {
	record := &BookingRecord{
		BookingReference:  "BK-2001",
		ConsignmentNumber: 900123,
		Origin:            Party{City: "Chattogram"},
		Destination:       Party{City: "Khulna"},
		Status:            "in_transit",
		InTransit: []PhaseEvent{
			{Timestamp: FlexTime(time.Date(2024, 3, 3, 6, 0, 0, 0, time.UTC))},
		},
	}

	summary := BuildSummary(record, StandardFlow)

	assert.Equal(t, "BK-2001", summary.Reference)
	assert.Equal(t, int64(900123), summary.ConsignmentNumber)
	assert.Equal(t, "Chattogram", summary.Origin)
	assert.Equal(t, "Khulna", summary.Destination)
	assert.Equal(t, StepInTransit, summary.CurrentStep)
	assert.Equal(t, StandardFlow.IndexFor(StepInTransit), summary.CurrentIndex)
	assert.Equal(t, "In Transit", summary.StatusLabel)
	assert.False(t, summary.Cancelled)
	assert.Len(t, summary.Steps, len(StandardFlow))
}

// TestBuildSummary_Cancelled verifies the side-state: first step, distinct label.
func TestBuildSummary_Cancelled(t *testing.T) {
	cancelled := BuildSummary(&BookingRecord{Status: "cancelled"}, StandardFlow)
	assert.Equal(t, 0, cancelled.CurrentIndex)
	assert.Equal(t, "Cancelled", cancelled.StatusLabel)
	assert.True(t, cancelled.Cancelled)

	fresh := BuildSummary(&BookingRecord{Status: "pending"}, StandardFlow)
	assert.Equal(t, 0, fresh.CurrentIndex)
	assert.Equal(t, "Booked", fresh.StatusLabel)
	assert.False(t, fresh.Cancelled)
}

// TestBuildSummary_RebuildsFresh verifies a rebuild reflects new data and
// never reuses the previous projection.
func TestBuildSummary_RebuildsFresh(t *testing.T) {
	record := &BookingRecord{BookingReference: "BK-2002", Status: "pending"}
	before := BuildSummary(record, StandardFlow)

	record.Status = "delivered"
	after := BuildSummary(record, StandardFlow)

	assert.Equal(t, 0, before.CurrentIndex)
	assert.Equal(t, len(StandardFlow)-1, after.CurrentIndex)
}

// TestFormatTimestamp verifies display formatting and the pending contract.
func TestFormatTimestamp(t *testing.T) {
	assert.Equal(t, "Pending update", FormatTimestamp(nil))

	zero := time.Time{}
	assert.Equal(t, "Pending update", FormatTimestamp(&zero))

	when := time.Date(2024, 3, 5, 8, 0, 0, 0, time.UTC)
	assert.Equal(t, "Mar 5, 2024 8:00 AM", FormatTimestamp(&when))
}

// TestSelection verifies drill-down semantics: backwards is fine, beyond
// the current step is a no-op, and the summary itself never changes.
func TestSelection(t *testing.T) {
	record := &BookingRecord{
		Status: "in_transit",
	}
	summary := BuildSummary(record, StandardFlow)
	require.Equal(t, StandardFlow.IndexFor(StepInTransit), summary.CurrentIndex)

	sel := NewSelection(summary)
	assert.Equal(t, summary.CurrentIndex, sel.Selected())

	assert.True(t, sel.Select(1))
	assert.Equal(t, 1, sel.Selected())

	assert.False(t, sel.Select(summary.CurrentIndex+1))
	assert.Equal(t, 1, sel.Selected())

	assert.False(t, sel.Select(-1))
	assert.Equal(t, 1, sel.Selected())

	assert.True(t, sel.Select(summary.CurrentIndex))
	assert.Equal(t, summary.CurrentIndex, sel.Selected())

	// Selection is UI state only, the projection is untouched.
	assert.Equal(t, StandardFlow.IndexFor(StepInTransit), summary.CurrentIndex)
}
