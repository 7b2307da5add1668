package email

import (
	"context"
	"fmt"

	"github.com/Domenick1991/railbooking/internal/notify"
)

type Sender struct{}

func NewSender() *Sender {
	return &Sender{}
}

func (s *Sender) Send(ctx context.Context, event notify.Event) error {
	fmt.Printf("send confirmation mail to %s: booking %s on train %s (%s), %d seat(s)\n",
		event.PassengerName, event.BookingID, event.TrainID, event.Route, event.Seats)
	return nil
}
