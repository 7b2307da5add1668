package receipt

import (
	"testing"
	"time"

	"github.com/Domenick1991/railbooking/internal/domain"
	"github.com/stretchr/testify/assert"
)

func fullBooking() *domain.Booking {
	return &domain.Booking{
		BookingID:     "10001",
		PNR:           "8000000001",
		TrainID:       "12301",
		TrainName:     "Rajdhani Express",
		Route:         "New Delhi - Howrah",
		Time:          "16:55",
		Seats:         2,
		Class:         "AC2",
		FarePerSeat:   450,
		TotalFare:     900,
		JourneyDate:   "2025-04-01",
		PassengerName: "Asha Rao",
		Passengers: []domain.Passenger{
			{Name: "Asha Rao", Age: "34", Gender: "Female"},
			{Name: "Vikram Rao", Age: "36", Gender: "Male"},
		},
		BerthAllocations: []domain.BerthAllocation{
			{Coach: "B3", Berth: "21", Type: "Lower"},
			{Coach: "B3", Berth: "22", Type: "Upper"},
		},
		BookingDate: time.Date(2025, 3, 15, 9, 30, 0, 0, time.UTC),
		Status:      domain.BookingStatusConfirmed,
	}
}

func TestRender_AllFields(t *testing.T) {
	text := Render(fullBooking())

	assert.Contains(t, text, "INDIAN RAILWAYS BOOKING RECEIPT")
	assert.Contains(t, text, "PNR Number:        8000000001")
	assert.Contains(t, text, "Booking ID:        10001")
	assert.Contains(t, text, "Train Number:      12301")
	assert.Contains(t, text, "Train Name:        Rajdhani Express")
	assert.Contains(t, text, "Route:             New Delhi - Howrah")
	assert.Contains(t, text, "Journey Date:      2025-04-01")
	assert.Contains(t, text, "Class:             AC2")
	assert.Contains(t, text, "Number of Seats:   2")
	assert.Contains(t, text, "Total Fare:        ₹900")
	assert.Contains(t, text, "Passenger Details:")
	assert.Contains(t, text, "  1. Asha Rao (Age: 34, Gender: Female)")
	assert.Contains(t, text, "  2. Vikram Rao (Age: 36, Gender: Male)")
	assert.Contains(t, text, "Seat/Berth Allocations:")
	assert.Contains(t, text, "  1. Coach: B3, Berth: 21, Type: Lower")
	assert.Contains(t, text, "Booking Date:      2025-03-15T09:30:00Z")
	assert.Contains(t, text, "Status:            Confirmed")
	assert.Contains(t, text, "Thank you for choosing Indian Railways!")
}

func TestRender_OmitsAbsentFields(t *testing.T) {
	b := fullBooking()
	b.PNR = ""
	b.TrainName = ""
	b.JourneyDate = ""
	b.Class = ""
	b.TotalFare = 0
	b.Passengers = nil
	b.BerthAllocations = nil

	text := Render(b)

	assert.NotContains(t, text, "PNR Number:")
	assert.NotContains(t, text, "Train Name:")
	assert.NotContains(t, text, "Journey Date:")
	assert.NotContains(t, text, "Class:")
	assert.NotContains(t, text, "Total Fare:")
	assert.NotContains(t, text, "Passenger Details:")
	assert.NotContains(t, text, "Seat/Berth Allocations:")

	// обязательные поля остаются
	assert.Contains(t, text, "Booking ID:        10001")
	assert.Contains(t, text, "Train Number:      12301")
	assert.Contains(t, text, "Status:            Confirmed")
}

func TestArtifactName(t *testing.T) {
	now := time.Date(2025, 3, 15, 9, 30, 45, 0, time.UTC)
	assert.Equal(t, "receipt_10001_20250315_093045.txt", artifactName("10001", now))
	assert.Equal(t, "receipt_10001_", artifactPrefix("10001"))
}
