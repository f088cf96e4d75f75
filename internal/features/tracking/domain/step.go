package domain

// Step represents one canonical stage in a consignment's journey.
type Step string

const (
	// StepBooked indicates the booking has been registered.
	StepBooked Step = "booked"
	// StepPickupAssigned indicates a courier boy has been assigned for pickup.
	StepPickupAssigned Step = "pickup_assigned"
	// StepPickedUp indicates the parcel has been collected from the sender.
	StepPickedUp Step = "picked_up"
	// StepOriginHub indicates the parcel was scanned at the origin hub.
	StepOriginHub Step = "origin_hub"
	// StepReceivedAtOCL indicates a corporate consignment was received at the OCL office.
	StepReceivedAtOCL Step = "received_at_ocl"
	// StepInTransit indicates the parcel is moving between hubs.
	StepInTransit Step = "in_transit"
	// StepDestinationHub indicates the parcel was scanned at the destination hub.
	StepDestinationHub Step = "destination_hub"
	// StepOutForDelivery indicates a courier boy is delivering the parcel.
	StepOutForDelivery Step = "out_for_delivery"
	// StepDelivered indicates the parcel reached the receiver.
	StepDelivered Step = "delivered"
)

// stepLabels maps each step to its display label.
var stepLabels = map[Step]string{
	StepBooked:         "Booked",
	StepPickupAssigned: "Pickup Assigned",
	StepPickedUp:       "Picked Up",
	StepOriginHub:      "At Origin Hub",
	StepReceivedAtOCL:  "Received at OCL",
	StepInTransit:      "In Transit",
	StepDestinationHub: "At Destination Hub",
	StepOutForDelivery: "Out for Delivery",
	StepDelivered:      "Delivered",
}

// Label returns the display label for the step.
func (s Step) Label() string {
	if label, ok := stepLabels[s]; ok {
		return label
	}
	return stepLabels[StepBooked]
}

// stepRank positions every step along the full journey so that steps from
// one flow can be projected onto another. StepOriginHub and StepReceivedAtOCL
// share a rank: they are the same stage seen by different booking kinds.
var stepRank = map[Step]int{
	StepBooked:         0,
	StepPickupAssigned: 1,
	StepPickedUp:       2,
	StepOriginHub:      3,
	StepReceivedAtOCL:  3,
	StepInTransit:      4,
	StepDestinationHub: 5,
	StepOutForDelivery: 6,
	StepDelivered:      7,
}

// Flow is an ordered step enumeration with no branches.
type Flow []Step

// StandardFlow is the full journey for customer bookings.
var StandardFlow = Flow{
	StepBooked,
	StepPickupAssigned,
	StepPickedUp,
	StepOriginHub,
	StepInTransit,
	StepDestinationHub,
	StepOutForDelivery,
	StepDelivered,
}

// CorporateFlow is the coarser journey for corporate consignments.
var CorporateFlow = Flow{
	StepBooked,
	StepReceivedAtOCL,
	StepInTransit,
	StepOutForDelivery,
	StepDelivered,
}

// IndexFor projects a step onto this flow: the position of the latest flow
// step whose journey rank does not exceed the given step's rank. A step from
// the richer vocabulary therefore never regresses a coarser flow, and an
// unknown step resolves to the first position.
func (f Flow) IndexFor(s Step) int {
	rank, ok := stepRank[s]
	if !ok {
		return 0
	}

	idx := 0
	for i, step := range f {
		if stepRank[step] <= rank {
			idx = i
		}
	}
	return idx
}

// Kind identifies which booking flavour a record belongs to.
const (
	KindCustomer  = "customer"
	KindCorporate = "corporate"
)

// FlowForKind returns the step enumeration used by the given booking kind.
func FlowForKind(kind string) Flow {
	if kind == KindCorporate {
		return CorporateFlow
	}
	return StandardFlow
}
