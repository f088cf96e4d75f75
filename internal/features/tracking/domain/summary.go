package domain

import "time"

// PendingPlaceholder is the literal rendered for a step with no recorded
// timestamp. The tracking pages match on this exact text to distinguish
// "not yet reached" from "reached but undocumented".
const PendingPlaceholder = "Pending update"

// Summary is the derived, render-ready projection of a booking record's
// progress. It is built fresh on every lookup and never mutated in place:
// a refetch discards and rebuilds it wholesale.
type Summary struct {
	// Reference is the booking reference the summary was built for.
	Reference string `json:"reference"`
	// ConsignmentNumber is carried over from the record when allocated.
	ConsignmentNumber int64 `json:"consignment_number,omitempty"`
	// Origin is the origin-side display label.
	Origin string `json:"origin"`
	// Destination is the destination-side display label.
	Destination string `json:"destination"`
	// CurrentStep is the canonical step the shipment is at.
	CurrentStep Step `json:"current_step"`
	// CurrentIndex is CurrentStep's position in Steps.
	CurrentIndex int `json:"current_index"`
	// StatusLabel is the display label; "Cancelled" for the side-state.
	StatusLabel string `json:"status_label"`
	// Cancelled marks the terminal side-state.
	Cancelled bool `json:"cancelled"`
	// Steps is the ordered timeline.
	Steps []TimelineEntry `json:"steps"`
}

// BuildSummary runs the full normalization pipeline over one raw record.
func BuildSummary(r *BookingRecord, flow Flow) *Summary {
	mapped := MapStatus(r.Status, r.CurrentStatus)
	steps := BuildTimeline(r, flow)

	current := 0
	if !mapped.Cancelled {
		current = CurrentStepIndex(steps, mapped.Step, flow)
	}

	label := mapped.Label
	if !mapped.Cancelled {
		label = flow[current].Label()
	}

	return &Summary{
		Reference:         r.BookingReference,
		ConsignmentNumber: r.ConsignmentNumber,
		Origin:            r.Origin.Display(),
		Destination:       r.Destination.Display(),
		CurrentStep:       flow[current],
		CurrentIndex:      current,
		StatusLabel:       label,
		Cancelled:         mapped.Cancelled,
		Steps:             steps,
	}
}

// FormatTimestamp renders a step timestamp for display, or the pending
// placeholder when the step has no evidence yet.
func FormatTimestamp(t *time.Time) string {
	if t == nil || t.IsZero() {
		return PendingPlaceholder
	}
	return t.Format("Jan 2, 2006 3:04 PM")
}

// Selection is the transient "selected step" a tracking page holds next to
// a summary. It is an index into the immutable step list, kept entirely
// outside the normalizer so the summary itself never changes.
type Selection struct {
	current  int
	selected int
}

// NewSelection starts with the summary's current step selected.
func NewSelection(s *Summary) Selection {
	return Selection{current: s.CurrentIndex, selected: s.CurrentIndex}
}

// Select moves the selection to the given step. Selecting past the current
// step, or out of range, is a no-op and reports false.
func (sel *Selection) Select(i int) bool {
	if i < 0 || i > sel.current {
		return false
	}
	sel.selected = i
	return true
}

// Selected returns the selected step index.
func (sel *Selection) Selected() int {
	return sel.selected
}
