package domain

import "time"

type BookingStatus string

const (
	BookingStatusConfirmed BookingStatus = "Confirmed"
)

const (
	PaymentStatusPaid       = "PAID"
	PaymentCurrency         = "INR"
	DefaultPaymentReference = "MOCK-PAYMENT"
	DefaultBerthPreference  = "No Preference"
	DefaultClass            = "GN"
)

type Passenger struct {
	Name   string `json:"name"`
	Age    string `json:"age"`
	Gender string `json:"gender"`
}

type BerthAllocation struct {
	Coach string `json:"coach"`
	Berth string `json:"berth"`
	Type  string `json:"type"`
}

type Payment struct {
	Method    string `json:"method"`
	Reference string `json:"reference"`
	Amount    int64  `json:"amount"`
	Currency  string `json:"currency"`
	Status    string `json:"status"`
}

// PendingBooking is the ephemeral per-session draft consumed exactly
// once on payment confirmation. Losing it before confirmation only
// means the caller restarts the flow.
type PendingBooking struct {
	TrainID         string      `json:"train_id"`
	Route           string      `json:"route"`
	Time            string      `json:"time"`
	TrainName       string      `json:"train_name"`
	Seats           int         `json:"seats"`
	PassengerName   string      `json:"passenger_name"`
	ClassName       string      `json:"class_name"`
	JourneyDate     string      `json:"journey_date"`
	Passengers      []Passenger `json:"passengers"`
	BerthPreference string      `json:"berth_preference"`
	UserID          string      `json:"user_id"`
}

// Booking is the durable record once confirmed. Immutable after
// creation; there is no update or cancel operation.
type Booking struct {
	BookingID        string            `json:"booking_id"`
	PNR              string            `json:"pnr"`
	TrainID          string            `json:"train_id"`
	TrainName        string            `json:"train_name,omitempty"`
	Route            string            `json:"route"`
	Time             string            `json:"time"`
	Seats            int               `json:"seats"`
	Class            string            `json:"class"`
	FarePerSeat      int64             `json:"fare_per_seat"`
	TotalFare        int64             `json:"total_fare"`
	JourneyDate      string            `json:"journey_date"`
	PassengerName    string            `json:"passenger_name"`
	Passengers       []Passenger       `json:"passengers"`
	BerthAllocations []BerthAllocation `json:"berth_allocations"`
	BerthPreference  string            `json:"berth_preference"`
	BookingDate      time.Time         `json:"booking_date"`
	Status           BookingStatus     `json:"status"`
	UserID           string            `json:"user_id"`
	Payment          *Payment          `json:"payment,omitempty"`
	ReceiptLocator   string            `json:"receipt_locator,omitempty"`
}
