package domain

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestBuildTimeline_ReachedHubEvidence covers a record whose free-text
// status and hub-scan array both point at the origin hub: the timeline must
// carry the scan's timestamp and the current step must not run ahead of it.
func TestBuildTimeline_ReachedHubEvidence(t *testing.T) {
	raw := `{
		"bookingReference": "BK-1001",
		"status": "in_transit",
		"currentStatus": "reached-hub",
		"intransit": [],
		"reachedHub": [{"timestamp": "2024-03-01T10:00:00Z"}]
	}`

	var record BookingRecord
	require.NoError(t, json.Unmarshal([]byte(raw), &record))

	timeline := BuildTimeline(&record, StandardFlow)
	require.Len(t, timeline, len(StandardFlow))

	hubIdx := StandardFlow.IndexFor(StepOriginHub)
	hub := timeline[hubIdx]
	require.NotNil(t, hub.Timestamp)
	assert.Equal(t, time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC), *hub.Timestamp)
	assert.True(t, hub.Completed)

	current := CurrentStepIndex(timeline, MapStatus(record.Status, record.CurrentStatus).Step, StandardFlow)
	assert.Equal(t, hubIdx, current)
	assert.False(t, timeline[current+1].Completed)
}

// TestBuildTimeline_OutForDeliveryWrappedDate covers an out-for-delivery
// assignment with a wrapped $date and no delivery record yet: delivered is
// present in the list but pending.
func TestBuildTimeline_OutForDeliveryWrappedDate(t *testing.T) {
	raw := `{
		"bookingReference": "BK-1002",
		"status": "in_transit",
		"outForDelivery": [{"assignedAt": {"$date": "2024-03-05T08:00:00Z"}}]
	}`

	var record BookingRecord
	require.NoError(t, json.Unmarshal([]byte(raw), &record))

	timeline := BuildTimeline(&record, StandardFlow)
	require.Len(t, timeline, len(StandardFlow))

	ofdIdx := StandardFlow.IndexFor(StepOutForDelivery)
	ofd := timeline[ofdIdx]
	require.NotNil(t, ofd.Timestamp)
	assert.Equal(t, time.Date(2024, 3, 5, 8, 0, 0, 0, time.UTC), *ofd.Timestamp)
	assert.True(t, ofd.Completed)

	current := CurrentStepIndex(timeline, MapStatus(record.Status, record.CurrentStatus).Step, StandardFlow)
	assert.Equal(t, ofdIdx, current)

	delivered := timeline[len(timeline)-1]
	assert.Equal(t, StepDelivered, delivered.Step)
	assert.False(t, delivered.Completed)
	assert.Nil(t, delivered.Timestamp)
	assert.Equal(t, PendingPlaceholder, FormatTimestamp(delivered.Timestamp))
}

// TestBuildTimeline_Idempotent verifies two builds of the same record agree.
func TestBuildTimeline_Idempotent(t *testing.T) {
	record := &BookingRecord{
		BookingReference: "BK-1003",
		Status:           "in_transit",
		CreatedAt:        FlexTime(time.Date(2024, 2, 28, 9, 0, 0, 0, time.UTC)),
		ReachedHub: []PhaseEvent{
			{Timestamp: FlexTime(time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC))},
		},
	}

	first := BuildTimeline(record, StandardFlow)
	second := BuildTimeline(record, StandardFlow)
	assert.Equal(t, first, second)
}

// TestBuildTimeline_StatusAloneMatchesReconciled verifies the monotonicity
// property: with no phase evidence, the reconciled index equals the index
// implied by status alone.
func TestBuildTimeline_StatusAloneMatchesReconciled(t *testing.T) {
	for coarse, step := range coarseStatus {
		record := &BookingRecord{Status: coarse}
		timeline := BuildTimeline(record, StandardFlow)

		want := StandardFlow.IndexFor(step)
		got := CurrentStepIndex(timeline, MapStatus(record.Status, record.CurrentStatus).Step, StandardFlow)
		assert.Equal(t, want, got, "status %q", coarse)

		for i, entry := range timeline {
			assert.Equal(t, i <= want, entry.Completed, "status %q step %d", coarse, i)
		}
	}
}

// TestBuildTimeline_LatePhaseCompletesEarlierSteps verifies reconciliation:
// delivery evidence marks every earlier step completed even when the coarse
// status lags behind.
func TestBuildTimeline_LatePhaseCompletesEarlierSteps(t *testing.T) {
	record := &BookingRecord{
		Status: "pending",
		Delivered: &DeliveryRecord{
			DeliveredAt: FlexTime(time.Date(2024, 3, 7, 16, 30, 0, 0, time.UTC)),
		},
	}

	timeline := BuildTimeline(record, StandardFlow)
	for _, entry := range timeline {
		assert.True(t, entry.Completed, "step %s", entry.Step)
	}

	current := CurrentStepIndex(timeline, MapStatus(record.Status, record.CurrentStatus).Step, StandardFlow)
	assert.Equal(t, len(StandardFlow)-1, current)
}

// TestBuildTimeline_CorporateFlow verifies the coarser enumeration.
func TestBuildTimeline_CorporateFlow(t *testing.T) {
	record := &BookingRecord{
		BookingReference: "CORP-77",
		Status:           "confirmed",
		CurrentStatus:    "received at OCL",
		ReceivedAtOCL: []PhaseEvent{
			{Timestamp: FlexTime(time.Date(2024, 4, 2, 9, 0, 0, 0, time.UTC))},
		},
	}

	timeline := BuildTimeline(record, CorporateFlow)
	require.Len(t, timeline, len(CorporateFlow))
	assert.Equal(t, StepReceivedAtOCL, timeline[1].Step)
	require.NotNil(t, timeline[1].Timestamp)
	assert.True(t, timeline[1].Completed)
	assert.False(t, timeline[2].Completed)
}

// TestBuildTimeline_Locations verifies origin/transit/destination labels.
func TestBuildTimeline_Locations(t *testing.T) {
	record := &BookingRecord{
		Status:      "pending",
		Origin:      Party{City: "Sylhet", State: "Sylhet Division"},
		Destination: Party{City: "Dhaka", State: "Dhaka Division"},
	}

	timeline := BuildTimeline(record, StandardFlow)
	assert.Equal(t, "Sylhet, Sylhet Division", timeline[0].Location)
	assert.Equal(t, "In Transit", timeline[StandardFlow.IndexFor(StepInTransit)].Location)
	assert.Equal(t, "Dhaka, Dhaka Division", timeline[len(timeline)-1].Location)
}
