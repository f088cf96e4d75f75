package domain

import "time"

// LatestTimestamp returns the maximum effective timestamp across the
// entries, or the zero time when the slice is empty or nothing parses.
// Entries without a primary timestamp fall back to their assignment time.
func LatestTimestamp(entries []PhaseEvent) time.Time {
	var latest time.Time
	for _, e := range entries {
		if when := e.When(); when.After(latest) {
			latest = when
		}
	}
	return latest
}

// latestCompletedAt returns the maximum completion time across entries.
func latestCompletedAt(entries []PhaseEvent) time.Time {
	var latest time.Time
	for _, e := range entries {
		if when := e.CompletedAt.Time(); when.After(latest) {
			latest = when
		}
	}
	return latest
}

// timestampSource extracts one candidate timestamp for a phase from a
// record. Sources for a phase are tried in a fixed priority order, stopping
// at the first non-zero result.
type timestampSource func(r *BookingRecord) time.Time

// firstNonZero applies the sources in order.
func firstNonZero(r *BookingRecord, sources []timestampSource) time.Time {
	for _, src := range sources {
		if ts := src(r); !ts.IsZero() {
			return ts
		}
	}
	return time.Time{}
}

// Per-phase source chains. Each is a named, ordered priority list rather
// than nested conditionals so the fallback order is an auditable artifact.
var (
	bookedSources = []timestampSource{
		func(r *BookingRecord) time.Time { return r.CreatedAt.Time() },
	}

	pickupAssignedSources = []timestampSource{
		func(r *BookingRecord) time.Time { return LatestTimestamp(r.PickupAssignments) },
	}

	pickedUpSources = []timestampSource{
		func(r *BookingRecord) time.Time { return latestCompletedAt(r.PickupAssignments) },
		func(r *BookingRecord) time.Time { return LatestTimestamp(completedOnly(r.PickupAssignments)) },
	}

	// Origin hub arrival: a hub scan, else the record-level receipt field,
	// else the assignment time of a transit leg already marked completed
	// (the leg could not have started before the parcel reached the hub).
	originHubSources = []timestampSource{
		func(r *BookingRecord) time.Time { return LatestTimestamp(r.ReachedHub) },
		func(r *BookingRecord) time.Time { return r.ReceivedAt.Time() },
		func(r *BookingRecord) time.Time { return LatestTimestamp(completedOnly(r.InTransit)) },
	}

	receivedAtOCLSources = []timestampSource{
		func(r *BookingRecord) time.Time { return LatestTimestamp(r.ReceivedAtOCL) },
		func(r *BookingRecord) time.Time { return r.ReceivedAt.Time() },
		func(r *BookingRecord) time.Time { return LatestTimestamp(r.ReachedHub) },
	}

	inTransitSources = []timestampSource{
		func(r *BookingRecord) time.Time { return LatestTimestamp(r.InTransit) },
	}

	// Destination hub arrival: the completion time of a transit leg, else a
	// later hub scan when more than one scan exists (a single scan is the
	// origin hub's evidence, not the destination's).
	destinationHubSources = []timestampSource{
		func(r *BookingRecord) time.Time { return latestCompletedAt(r.InTransit) },
		func(r *BookingRecord) time.Time {
			if len(r.ReachedHub) > 1 {
				return LatestTimestamp(r.ReachedHub)
			}
			return time.Time{}
		},
	}

	outForDeliverySources = []timestampSource{
		func(r *BookingRecord) time.Time { return LatestTimestamp(r.OutForDelivery) },
	}

	deliveredSources = []timestampSource{
		func(r *BookingRecord) time.Time {
			if r.Delivered == nil {
				return time.Time{}
			}
			return r.Delivered.When()
		},
	}
)

// phaseSources binds each canonical step to its source chain.
var phaseSources = map[Step][]timestampSource{
	StepBooked:         bookedSources,
	StepPickupAssigned: pickupAssignedSources,
	StepPickedUp:       pickedUpSources,
	StepOriginHub:      originHubSources,
	StepReceivedAtOCL:  receivedAtOCLSources,
	StepInTransit:      inTransitSources,
	StepDestinationHub: destinationHubSources,
	StepOutForDelivery: outForDeliverySources,
	StepDelivered:      deliveredSources,
}

// PhaseTimestamp resolves the evidence timestamp for a step, or the zero
// time when the record carries none.
func PhaseTimestamp(r *BookingRecord, step Step) time.Time {
	return firstNonZero(r, phaseSources[step])
}

// completedOnly filters entries down to those marked completed.
func completedOnly(entries []PhaseEvent) []PhaseEvent {
	var out []PhaseEvent
	for _, e := range entries {
		if e.Completed {
			out = append(out, e)
		}
	}
	return out
}
