package domain

import "strings"

// keywordRule binds a status substring to the canonical step it implies.
type keywordRule struct {
	keyword string
	step    Step
}

// keywordRules is the ordered vocabulary table for free-text status strings,
// evaluated top to bottom with first match winning. The order is the
// contract: late-stage rules come first so a string containing several
// plausible keywords resolves to the latest stage, and compound keywords
// come before the shorter keywords they contain ("out for delivery" would
// otherwise be shadowed by "deliver").
var keywordRules = []keywordRule{
	{"out for delivery", StepOutForDelivery},
	{"out_for_delivery", StepOutForDelivery},
	{"out-for-delivery", StepOutForDelivery},
	{"deliver", StepDelivered},
	{"destination hub", StepDestinationHub},
	{"destination_hub", StepDestinationHub},
	{"reached destination", StepDestinationHub},
	{"transit", StepInTransit},
	{"shipped", StepInTransit},
	{"dispatch", StepInTransit},
	{"ocl", StepReceivedAtOCL},
	{"reached", StepOriginHub},
	{"hub", StepOriginHub},
	{"received", StepOriginHub},
	{"picked", StepPickedUp},
	{"collect", StepPickedUp},
	{"pickup", StepPickupAssigned},
	{"assign", StepPickupAssigned},
	{"confirm", StepBooked},
	{"book", StepBooked},
	{"pending", StepBooked},
}

// cancelKeywords mark the terminal side-state. Checked before the forward
// rules so "delivery cancelled" never reads as delivered.
var cancelKeywords = []string{"cancel", "rto", "return", "refus"}

// coarseStatus maps the backend's closed status enum to canonical steps.
var coarseStatus = map[string]Step{
	"pending":          StepBooked,
	"confirmed":        StepBooked,
	"booked":           StepBooked,
	"pickup_assigned":  StepPickupAssigned,
	"picked_up":        StepPickedUp,
	"received_at_ocl":  StepReceivedAtOCL,
	"in_transit":       StepInTransit,
	"out_for_delivery": StepOutForDelivery,
	"delivered":        StepDelivered,
}

// MappedStatus is the outcome of normalizing a record's status vocabulary.
type MappedStatus struct {
	// Step is the canonical step for progress purposes. For a cancelled or
	// returned shipment this is the first step.
	Step Step
	// Cancelled marks the terminal side-state.
	Cancelled bool
	// Label is the display label. Cancelled shipments keep a distinct label
	// so callers never conflate them with a fresh booking.
	Label string
}

// MapStatus normalizes the record's two status fields into one canonical
// step. The free-text currentStatus wins when it matches a keyword rule;
// otherwise the coarse status enum decides. Unknown input resolves to the
// first step. Total function, never errors.
func MapStatus(status, currentStatus string) MappedStatus {
	coarse := strings.ToLower(strings.TrimSpace(status))
	free := strings.ToLower(strings.TrimSpace(currentStatus))

	if label, ok := cancelledLabel(coarse, free); ok {
		return MappedStatus{Step: StepBooked, Cancelled: true, Label: label}
	}

	if free != "" {
		for _, rule := range keywordRules {
			if strings.Contains(free, rule.keyword) {
				return MappedStatus{Step: rule.step, Label: rule.step.Label()}
			}
		}
	}

	if step, ok := coarseStatus[coarse]; ok {
		return MappedStatus{Step: step, Label: step.Label()}
	}

	return MappedStatus{Step: StepBooked, Label: StepBooked.Label()}
}

// cancelledLabel reports whether either status field marks the shipment as
// cancelled or returned, and with which label.
func cancelledLabel(coarse, free string) (string, bool) {
	for _, field := range []string{coarse, free} {
		for _, kw := range cancelKeywords {
			if strings.Contains(field, kw) {
				if kw == "cancel" {
					return "Cancelled", true
				}
				return "Returned", true
			}
		}
	}
	return "", false
}
