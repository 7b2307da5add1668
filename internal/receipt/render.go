package receipt

import (
	"fmt"
	"strings"
	"time"

	"github.com/Domenick1991/railbooking/internal/domain"
)

const (
	header = `╔═══════════════════════════════════════════════════════════╗
║         INDIAN RAILWAYS BOOKING RECEIPT                   ║
╚═══════════════════════════════════════════════════════════╝`
	footer = `╔═══════════════════════════════════════════════════════════╗
║  Thank you for choosing Indian Railways!                  ║
║  Please arrive at least 30 minutes before departure.     ║
║  Keep your PNR number safe for future reference.        ║
╚═══════════════════════════════════════════════════════════╝`
)

// Render produces the receipt text. The banner, field order and
// spacing are a compatibility contract: downstream tooling parses
// these files. Absent fields omit their whole line.
func Render(b *domain.Booking) string {
	var sb strings.Builder
	sb.WriteString(header)
	sb.WriteString("\n\n")

	if b.PNR != "" {
		fmt.Fprintf(&sb, "PNR Number:        %s\n", b.PNR)
	}
	fmt.Fprintf(&sb, "Booking ID:        %s\n", b.BookingID)
	fmt.Fprintf(&sb, "Train Number:      %s\n", b.TrainID)
	if b.TrainName != "" {
		fmt.Fprintf(&sb, "Train Name:        %s\n", b.TrainName)
	}
	fmt.Fprintf(&sb, "Route:             %s\n", b.Route)
	if b.JourneyDate != "" {
		fmt.Fprintf(&sb, "Journey Date:      %s\n", b.JourneyDate)
	}
	fmt.Fprintf(&sb, "Departure Time:    %s\n", b.Time)
	if b.Class != "" {
		fmt.Fprintf(&sb, "Class:             %s\n", b.Class)
	}
	fmt.Fprintf(&sb, "Number of Seats:   %d\n", b.Seats)
	if b.TotalFare > 0 {
		fmt.Fprintf(&sb, "Total Fare:        ₹%d\n", b.TotalFare)
	}

	if len(b.Passengers) > 0 {
		sb.WriteString("\nPassenger Details:\n")
		for i, p := range b.Passengers {
			fmt.Fprintf(&sb, "  %d. %s (Age: %s, Gender: %s)\n", i+1, p.Name, p.Age, p.Gender)
		}
	}

	if len(b.BerthAllocations) > 0 {
		sb.WriteString("\nSeat/Berth Allocations:\n")
		for i, a := range b.BerthAllocations {
			fmt.Fprintf(&sb, "  %d. Coach: %s, Berth: %s, Type: %s\n", i+1, a.Coach, a.Berth, a.Type)
		}
	}

	sb.WriteString("\n")
	fmt.Fprintf(&sb, "Booking Date:      %s\n", b.BookingDate.Format(time.RFC3339))
	fmt.Fprintf(&sb, "Status:            %s\n", b.Status)
	sb.WriteString("\n")
	sb.WriteString(footer)
	return sb.String()
}

// artifactName is receipt_<bookingID>_<timestamp>.txt; the timestamp
// keeps repeated persists for one booking distinct, and its format
// sorts lexicographically so the newest artifact is the largest name.
func artifactName(bookingID string, now time.Time) string {
	return fmt.Sprintf("receipt_%s_%s.txt", bookingID, now.Format("20060102_150405"))
}

func artifactPrefix(bookingID string) string {
	return fmt.Sprintf("receipt_%s_", bookingID)
}
