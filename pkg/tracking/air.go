package tracking

import (
	"time"
)

// Airport represents an airport referenced by an air shipment or movement.
type Airport struct {
	Code     string  `json:"code"     yaml:"code"`
	Name     string  `json:"name"     yaml:"name"`
	Timezone string  `json:"timezone" yaml:"timezone"`
	Country  Country `json:"country"  yaml:"country"`
}

// Flight represents one flight leg of an air shipment.
type Flight struct {
	Number      string     `json:"number"       yaml:"number"`
	Origin      Airport    `json:"origin"       yaml:"origin"`
	Destination Airport    `json:"destination"  yaml:"destination"`
	DepartureAt *time.Time `json:"departure_at" yaml:"departure_at"`
	ArrivalAt   *time.Time `json:"arrival_at"   yaml:"arrival_at"`
}

// Air movement event codes (CIMP status codes).
const (
	AirMovementEventReceived    = "RCS"
	AirMovementEventManifested  = "MAN"
	AirMovementEventDeparted    = "DEP"
	AirMovementEventArrived     = "ARR"
	AirMovementEventTransferred = "RCF"
	AirMovementEventNotified    = "NFD"
	AirMovementEventDelivered   = "DLV"
)

// AirMovement represents one event in an air shipment's movement history.
type AirMovement struct {
	Event        string    `json:"event"         yaml:"event"`
	Status       string    `json:"status"        yaml:"status"`
	Airport      Airport   `json:"airport"       yaml:"airport"`
	FlightNumber *string   `json:"flight_number" yaml:"flight_number"`
	Timestamp    time.Time `json:"timestamp"     yaml:"timestamp"`
}

// Air shipment status values.
const (
	AirShipmentStatusNew        = "NEW"
	AirShipmentStatusInProgress = "INPROGRESS"
	AirShipmentStatusBooked     = "BOOKED"
	AirShipmentStatusDeparted   = "DEPARTED"
	AirShipmentStatusArrived    = "ARRIVED"
	AirShipmentStatusDelivered  = "DELIVERED"
	AirShipmentStatusUntracked  = "UNTRACKED"
)

// AirShipmentRef is the base identity projection of an air shipment: the
// server-assigned id plus the air-waybill number it was registered under.
type AirShipmentRef struct {
	ID        int64  `json:"id"         yaml:"id"`
	AWBNumber string `json:"awb_number" yaml:"awb_number"`
}

// AirShipment represents a tracked air shipment.
type AirShipment struct {
	AirShipmentRef `yaml:",inline"`

	Carrier     *AirCarrier   `json:"carrier"      yaml:"carrier"`
	Status      string        `json:"status"       yaml:"status"`
	Origin      *Airport      `json:"origin"       yaml:"origin"`
	Destination *Airport      `json:"destination"  yaml:"destination"`
	Pieces      *int          `json:"pieces"       yaml:"pieces"`
	WeightKG    *float64      `json:"weight_kg"    yaml:"weight_kg"`
	Flights     []Flight      `json:"flights"      yaml:"flights"`
	Movements   []AirMovement `json:"movements"    yaml:"movements"`
	CheckedAt   *time.Time    `json:"checked_at"   yaml:"checked_at"`
	DiscardedAt *time.Time    `json:"discarded_at" yaml:"discarded_at"`
	ChangedAt   *time.Time    `json:"changed_at"   yaml:"changed_at"`
	CreatedAt   time.Time     `json:"created_at"   yaml:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"   yaml:"updated_at"`
}

// AirShipmentCreateRequest registers an air shipment for tracking. The
// carrier code is an optional discriminator for waybill ranges shared by
// multiple airlines.
type AirShipmentCreateRequest struct {
	AWBNumber   string `json:"awb_number"             yaml:"awb_number"`
	CarrierCode string `json:"carrier_code,omitempty" yaml:"carrier_code,omitempty"`

	// FailOnConflict disables 409 reconciliation, as on
	// ShipmentCreateRequest.
	FailOnConflict bool `json:"-" yaml:"-"`
}
