package domain

import "time"

// TimelineEntry is one renderable row of a shipment's progress timeline.
type TimelineEntry struct {
	// Step is the canonical step this entry represents.
	Step Step `json:"step"`
	// Label is the display label for the step.
	Label string `json:"label"`
	// Location is the place associated with the step.
	Location string `json:"location"`
	// Timestamp is the evidence time for the step, nil when none was found.
	Timestamp *time.Time `json:"timestamp"`
	// Completed reports whether the shipment has passed this step.
	Completed bool `json:"completed"`
}

// BuildTimeline converts a raw booking record into the ordered step list
// for the given flow. Every flow step is emitted, in flow order; steps the
// shipment has not reached come back pending. Deterministic: no wall-clock
// or randomness, only the record's own data.
func BuildTimeline(r *BookingRecord, flow Flow) []TimelineEntry {
	mapped := MapStatus(r.Status, r.CurrentStatus)
	timestamps := make([]time.Time, len(flow))
	for i, step := range flow {
		timestamps[i] = PhaseTimestamp(r, step)
	}

	current := reconcileIndex(mapped, timestamps, flow)

	entries := make([]TimelineEntry, 0, len(flow))
	for i, step := range flow {
		entry := TimelineEntry{
			Step:      step,
			Label:     step.Label(),
			Location:  stepLocation(r, step),
			Completed: !timestamps[i].IsZero() || i <= current,
		}
		if !timestamps[i].IsZero() {
			ts := timestamps[i]
			entry.Timestamp = &ts
		}
		entries = append(entries, entry)
	}
	return entries
}

// reconcileIndex combines the status-derived step with the phase-array
// evidence: the current index is the maximum step index reachable from
// either, so data in a late phase never leaves the shipment displayed
// earlier, and a bare status never regresses below recorded evidence.
// A cancelled shipment always displays at the first step.
func reconcileIndex(mapped MappedStatus, timestamps []time.Time, flow Flow) int {
	if mapped.Cancelled {
		return 0
	}

	idx := flow.IndexFor(mapped.Step)
	for i, ts := range timestamps {
		if !ts.IsZero() && i > idx {
			idx = i
		}
	}
	return idx
}

// CurrentStepIndex derives the current step index from a built timeline:
// the maximum index among completed entries carrying a timestamp, raised to
// the fallback status's index when the record's phase data is silent.
func CurrentStepIndex(entries []TimelineEntry, fallback Step, flow Flow) int {
	idx := flow.IndexFor(fallback)
	for i, entry := range entries {
		if entry.Completed && entry.Timestamp != nil && i > idx {
			idx = i
		}
	}
	return idx
}

// stepLocation picks the display location for a step: the origin side for
// early steps, a literal placeholder while moving, the destination side
// once the parcel is past the line-haul.
func stepLocation(r *BookingRecord, step Step) string {
	rank := stepRank[step]
	switch {
	case rank < stepRank[StepInTransit]:
		return r.Origin.Display()
	case rank == stepRank[StepInTransit]:
		return "In Transit"
	default:
		return r.Destination.Display()
	}
}
