package domain

import (
	"encoding/json"
	"strings"
	"time"
)

// FlexTime is a custom helper type to handle the backend's two date shapes:
// a plain ISO string or a wrapped {"$date": "..."} object. Unparseable input
// decodes to the zero time instead of failing, so record decoding is total.
type FlexTime time.Time

// flexLayouts are the layouts tried in order when parsing a date string.
var flexLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// UnmarshalJSON parses either date shape. It never returns an error.
func (t *FlexTime) UnmarshalJSON(b []byte) error {
	s := strings.TrimSpace(string(b))
	if s == "null" || s == `""` {
		*t = FlexTime(time.Time{})
		return nil
	}

	if strings.HasPrefix(s, "{") {
		var wrapped struct {
			Date string `json:"$date"`
		}
		if err := json.Unmarshal(b, &wrapped); err != nil {
			*t = FlexTime(time.Time{})
			return nil
		}
		s = wrapped.Date
	} else {
		s = strings.Trim(s, `"`)
	}

	*t = FlexTime(parseFlexString(s))
	return nil
}

// MarshalJSON renders the time as RFC3339 UTC, or null when zero.
func (t FlexTime) MarshalJSON() ([]byte, error) {
	if time.Time(t).IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(time.Time(t).UTC().Format(time.RFC3339))
}

// Time returns the underlying time value.
func (t FlexTime) Time() time.Time {
	return time.Time(t)
}

// IsZero reports whether no valid date was decoded.
func (t FlexTime) IsZero() bool {
	return time.Time(t).IsZero()
}

// parseFlexString tries the known layouts and returns the zero time on failure.
func parseFlexString(s string) time.Time {
	for _, layout := range flexLayouts {
		if parsed, err := time.Parse(layout, s); err == nil {
			return parsed
		}
	}
	return time.Time{}
}

// ParseFlexValue extracts a timestamp from a loosely-typed value: a string,
// a map carrying a "$date" key, a time.Time or a FlexTime. The boolean is
// false when no valid timestamp could be extracted.
func ParseFlexValue(v interface{}) (time.Time, bool) {
	switch val := v.(type) {
	case nil:
		return time.Time{}, false
	case string:
		parsed := parseFlexString(val)
		return parsed, !parsed.IsZero()
	case map[string]interface{}:
		inner, ok := val["$date"].(string)
		if !ok {
			return time.Time{}, false
		}
		parsed := parseFlexString(inner)
		return parsed, !parsed.IsZero()
	case time.Time:
		return val, !val.IsZero()
	case FlexTime:
		return val.Time(), !val.IsZero()
	default:
		return time.Time{}, false
	}
}

// Party identifies one side of a shipment.
type Party struct {
	// Name is the contact or office name.
	Name string `json:"name"`
	// City is the city of the party's address.
	City string `json:"city"`
	// State is the state or province of the party's address.
	State string `json:"state"`
}

// Display renders the party as a location label, preferring city/state.
func (p Party) Display() string {
	switch {
	case p.City != "" && p.State != "":
		return p.City + ", " + p.State
	case p.City != "":
		return p.City
	case p.Name != "":
		return p.Name
	default:
		return p.State
	}
}

// PhaseEvent is one entry in a per-lifecycle-stage sub-array (pickup
// assignments, hub scans, transit legs, out-for-delivery assignments).
type PhaseEvent struct {
	// Timestamp is the primary event time.
	Timestamp FlexTime `json:"timestamp"`
	// AssignedAt is the fallback time used when Timestamp is absent.
	AssignedAt FlexTime `json:"assignedAt"`
	// CompletedAt is the time the phase entry finished, if recorded.
	CompletedAt FlexTime `json:"completedAt"`
	// Completed marks a finished entry (e.g. a transit leg that arrived).
	Completed bool `json:"completed"`
	// Location is where the event happened.
	Location string `json:"location"`
	// Actor is the courier boy or staff member attached to the entry.
	Actor string `json:"courierBoy"`
	// Note is free-text detail carried by some entries.
	Note string `json:"note"`
}

// When returns the entry's effective timestamp: Timestamp when present,
// otherwise AssignedAt.
func (e PhaseEvent) When() time.Time {
	if !e.Timestamp.IsZero() {
		return e.Timestamp.Time()
	}
	return e.AssignedAt.Time()
}

// DeliveryRecord is the single terminal delivery entry of a booking.
type DeliveryRecord struct {
	// DeliveredAt is the recorded delivery time.
	DeliveredAt FlexTime `json:"deliveredAt"`
	// Timestamp is an alternate field name some records use instead.
	Timestamp FlexTime `json:"timestamp"`
	// ReceivedBy names who accepted the parcel.
	ReceivedBy string `json:"receivedBy"`
}

// When returns the delivery timestamp, preferring DeliveredAt.
func (d DeliveryRecord) When() time.Time {
	if !d.DeliveredAt.IsZero() {
		return d.DeliveredAt.Time()
	}
	return d.Timestamp.Time()
}

// BookingRecord is a raw booking/consignment document as stored by the
// backend. It is consumed as-is: inconsistent status vocabularies and all.
type BookingRecord struct {
	// ID is the backend document identifier.
	ID string `json:"id"`
	// BookingReference is the user-facing tracking reference.
	BookingReference string `json:"bookingReference"`
	// ConsignmentNumber is the numeric consignment identifier, if allocated.
	ConsignmentNumber int64 `json:"consignmentNumber,omitempty"`

	// Origin is the sender side of the shipment.
	Origin Party `json:"origin"`
	// Destination is the receiver side of the shipment.
	Destination Party `json:"destination"`

	// Status is the coarse backend status enum.
	Status string `json:"status"`
	// CurrentStatus is a richer free-text status, preferred when present.
	CurrentStatus string `json:"currentStatus"`

	// PickupAssignments lists courier-boy pickup assignments.
	PickupAssignments []PhaseEvent `json:"pickupAssigned"`
	// ReachedHub lists hub-arrival scans.
	ReachedHub []PhaseEvent `json:"reachedHub"`
	// InTransit lists inter-hub transit legs.
	InTransit []PhaseEvent `json:"intransit"`
	// ReceivedAtOCL lists office-receipt entries for corporate consignments.
	ReceivedAtOCL []PhaseEvent `json:"receivedAtOcl"`
	// OutForDelivery lists delivery assignments.
	OutForDelivery []PhaseEvent `json:"outForDelivery"`
	// Delivered is the terminal delivery record, at most one.
	Delivered *DeliveryRecord `json:"delivered"`

	// ReceivedAt is a record-level receipt time some documents carry
	// instead of a hub-scan entry.
	ReceivedAt FlexTime `json:"receivedAt"`
	// CreatedAt is when the booking was registered.
	CreatedAt FlexTime `json:"createdAt"`
	// UpdatedAt is when the record last changed.
	UpdatedAt FlexTime `json:"updatedAt"`
}
