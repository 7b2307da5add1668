package notify

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/Domenick1991/railbooking/internal/domain"
	"github.com/Domenick1991/railbooking/internal/kafka"
)

// Event is the confirmation payload sent to the notification channel.
type Event struct {
	Event         string `json:"event"`
	BookingID     string `json:"booking_id"`
	TrainID       string `json:"train_id"`
	Route         string `json:"route"`
	PassengerName string `json:"passenger_name"`
	Seats         int    `json:"seats"`
	Timestamp     string `json:"timestamp"`
}

func NewEvent(b *domain.Booking) Event {
	return Event{
		Event:         "booking_confirmed",
		BookingID:     b.BookingID,
		TrainID:       b.TrainID,
		Route:         b.Route,
		PassengerName: b.PassengerName,
		Seats:         b.Seats,
		Timestamp:     b.BookingDate.Format(time.RFC3339),
	}
}

// Notifier emits a confirmation event. Failures never roll back the
// booking; the caller logs and moves on.
type Notifier interface {
	Notify(ctx context.Context, booking *domain.Booking) error
}

// LogNotifier is the mock driver: the payload goes to the process log
// instead of an external channel.
type LogNotifier struct{}

func NewLogNotifier() *LogNotifier {
	return &LogNotifier{}
}

func (n *LogNotifier) Notify(_ context.Context, booking *domain.Booking) error {
	payload, err := json.Marshal(NewEvent(booking))
	if err != nil {
		return err
	}
	log.Printf("[notify] booking %s confirmed: %s", booking.BookingID, payload)
	return nil
}

// KafkaNotifier publishes the event keyed by booking id.
type KafkaNotifier struct {
	producer *kafka.Producer
	topic    string
}

func NewKafkaNotifier(producer *kafka.Producer, topic string) *KafkaNotifier {
	return &KafkaNotifier{producer: producer, topic: topic}
}

func (n *KafkaNotifier) Notify(ctx context.Context, booking *domain.Booking) error {
	return n.producer.Publish(ctx, n.topic, booking.BookingID, NewEvent(booking))
}

var (
	_ Notifier = (*LogNotifier)(nil)
	_ Notifier = (*KafkaNotifier)(nil)
)
