package tracking

import (
	"time"
)

// Page represents the envelope the API wraps paginated collection responses
// in. Total counts every matching item server-side, independent of the
// current page.
type Page[T any] struct {
	Total  int `json:"total"  yaml:"total"`
	Limit  int `json:"limit"  yaml:"limit"`
	Offset int `json:"offset" yaml:"offset"`
	Items  []T `json:"items"  yaml:"items"`
}

// Carrier represents an ocean carrier from the carrier reference list.
type Carrier struct {
	SCAC string `json:"scac" yaml:"scac"`
	Name string `json:"name" yaml:"name"`
}

// AirCarrier represents an airline from the air carrier reference list.
type AirCarrier struct {
	IATA string `json:"iata" yaml:"iata"`
	Name string `json:"name" yaml:"name"`
}

// Country represents a country referenced by a location.
type Country struct {
	Code string `json:"code" yaml:"code"`
	Name string `json:"name" yaml:"name"`
}

// Vessel represents the vessel a movement happened on. Both fields can be
// null when the carrier has not assigned a vessel yet.
type Vessel struct {
	IMO  *int64  `json:"imo"  yaml:"imo"`
	Name *string `json:"name" yaml:"name"`
}

// Location represents a port or terminal.
type Location struct {
	Code     string  `json:"code"     yaml:"code"`
	Name     string  `json:"name"     yaml:"name"`
	Timezone string  `json:"timezone" yaml:"timezone"`
	Country  Country `json:"country"  yaml:"country"`
}

// PortOfLoading is the load port leg of a route. The initial date keeps the
// first estimate the carrier published; the plain date tracks revisions.
type PortOfLoading struct {
	Location             Location   `json:"location"                yaml:"location"`
	DateOfLoading        *time.Time `json:"date_of_loading"         yaml:"date_of_loading"`
	DateOfLoadingInitial *time.Time `json:"date_of_loading_initial" yaml:"date_of_loading_initial"`
}

// PortOfDischarge is the discharge port leg of a route.
type PortOfDischarge struct {
	Location               Location   `json:"location"                  yaml:"location"`
	DateOfDischarge        *time.Time `json:"date_of_discharge"         yaml:"date_of_discharge"`
	DateOfDischargeInitial *time.Time `json:"date_of_discharge_initial" yaml:"date_of_discharge_initial"`
}

// Route represents the ocean route of a shipment.
type Route struct {
	PortOfLoading     PortOfLoading   `json:"port_of_loading"    yaml:"port_of_loading"`
	PortOfDischarge   PortOfDischarge `json:"port_of_discharge"  yaml:"port_of_discharge"`
	TransitTime       *int            `json:"transit_time"       yaml:"transit_time"`
	TransitPercentage *int            `json:"transit_percentage" yaml:"transit_percentage"`
	CO2Emission       *float64        `json:"co2_emission"       yaml:"co2_emission"`
}

// Container movement event codes.
const (
	MovementEventEmptyToShipper = "EMSH"
	MovementEventGateIn         = "GTIN"
	MovementEventLoaded         = "LOAD"
	MovementEventDeparted       = "DEPA"
	MovementEventArrived        = "ARRV"
	MovementEventDischarged     = "DISC"
	MovementEventGateOut        = "GTOT"
	MovementEventEmptyReturned  = "EMRT"
)

// Movement status values.
const (
	MovementStatusEstimated = "EST"
	MovementStatusActual    = "ACT"
)

// Movement represents one event in a container's movement history.
type Movement struct {
	Event     string    `json:"event"     yaml:"event"`
	Status    string    `json:"status"    yaml:"status"`
	Location  Location  `json:"location"  yaml:"location"`
	Vessel    *Vessel   `json:"vessel"    yaml:"vessel"`
	Voyage    *string   `json:"voyage"    yaml:"voyage"`
	Timestamp time.Time `json:"timestamp" yaml:"timestamp"`
}

// Container status values.
const (
	ContainerStatusEmptyShipper = "EMPTY_SHIPPER"
	ContainerStatusGateIn       = "GATE_IN"
	ContainerStatusLoaded       = "LOADED"
	ContainerStatusSailing      = "SAILING"
	ContainerStatusArrived      = "ARRIVED"
	ContainerStatusDischarged   = "DISCHARGED"
	ContainerStatusGateOut      = "GATE_OUT"
	ContainerStatusEmptyReturn  = "EMPTY_RETURN"
	ContainerStatusUnknown      = "UNKNOWN"
)

// Container represents a container attached to a shipment, with its ordered
// movement history.
type Container struct {
	Number    string     `json:"number"    yaml:"number"`
	Status    string     `json:"status"    yaml:"status"`
	Size      *int       `json:"size"      yaml:"size"`
	Type      *string    `json:"type"      yaml:"type"`
	Movements []Movement `json:"movements" yaml:"movements"`
}

// Shipment status values.
const (
	ShipmentStatusNew        = "NEW"
	ShipmentStatusInProgress = "INPROGRESS"
	ShipmentStatusBooked     = "BOOKED"
	ShipmentStatusLoaded     = "LOADED"
	ShipmentStatusSailing    = "SAILING"
	ShipmentStatusArrived    = "ARRIVED"
	ShipmentStatusDischarged = "DISCHARGED"
	ShipmentStatusUntracked  = "UNTRACKED"
)

// ShipmentRef is the base identity projection of an ocean shipment: the
// server-assigned id plus the carrier booking number it was registered under.
// Create operations return it; the full Shipment embeds it.
type ShipmentRef struct {
	ID            int64  `json:"id"             yaml:"id"`
	BookingNumber string `json:"booking_number" yaml:"booking_number"`
}

// Shipment represents a tracked ocean shipment.
type Shipment struct {
	ShipmentRef `yaml:",inline"`

	Carrier     *Carrier    `json:"carrier"      yaml:"carrier"`
	Status      string      `json:"status"       yaml:"status"`
	Route       *Route      `json:"route"        yaml:"route"`
	Containers  []Container `json:"containers"   yaml:"containers"`
	CheckedAt   *time.Time  `json:"checked_at"   yaml:"checked_at"`
	DiscardedAt *time.Time  `json:"discarded_at" yaml:"discarded_at"`
	ChangedAt   *time.Time  `json:"changed_at"   yaml:"changed_at"`
	CreatedAt   time.Time   `json:"created_at"   yaml:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"   yaml:"updated_at"`
}

// ShipmentCreateRequest registers an ocean shipment for tracking.
type ShipmentCreateRequest struct {
	BookingNumber string `json:"booking_number" yaml:"booking_number"`

	// FailOnConflict disables 409 reconciliation: the conflict propagates as
	// an *APIError instead of being resolved against the existing shipment.
	FailOnConflict bool `json:"-" yaml:"-"`
}
