package booking

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/Domenick1991/railbooking/internal/berth"
	"github.com/Domenick1991/railbooking/internal/domain"
	"github.com/Domenick1991/railbooking/internal/ident"
	"github.com/Domenick1991/railbooking/internal/receipt"
	"github.com/Domenick1991/railbooking/internal/repository"
)

type BookingUseCase interface {
	CreateDraft(ctx context.Context, input DraftInput) (*domain.PendingBooking, error)
	ConfirmPayment(ctx context.Context, userID, paymentMethod, paymentReference string) (*domain.Booking, error)
	ConfirmBooking(ctx context.Context, pending *domain.PendingBooking, paymentMethod, paymentReference string) (*domain.Booking, error)
	GetBooking(ctx context.Context, userID, bookingID string) (*domain.Booking, error)
	History(ctx context.Context, userID string) ([]domain.Booking, error)
}

// Drafts holds one in-flight PendingBooking per user. Drafts are not
// durable; losing one before confirmation just restarts the flow.
type Drafts interface {
	PutDraft(ctx context.Context, userID string, draft *domain.PendingBooking) error
	GetDraft(ctx context.Context, userID string) (*domain.PendingBooking, error)
	DeleteDraft(ctx context.Context, userID string) error
}

// Notifier matches notify.Notifier; declared here so the service
// depends only on what it calls.
type Notifier interface {
	Notify(ctx context.Context, booking *domain.Booking) error
}

// CatalogCache is the slice of the cache the orchestrator touches:
// a successful reservation invalidates the cached listing.
type CatalogCache interface {
	InvalidateTrains(ctx context.Context) error
}

type BookingService struct {
	trains            repository.TrainRepository
	bookings          repository.BookingRepository
	users             repository.UserRepository
	drafts            Drafts
	receipts          receipt.Store
	notifier          Notifier
	cache             CatalogCache
	ident             ident.Generator
	sideEffectTimeout time.Duration
}

type DraftInput struct {
	TrainID         string             `json:"train_id"`
	Seats           int                `json:"seats"`
	PassengerName   string             `json:"passenger_name"`
	ClassName       string             `json:"class_name"`
	JourneyDate     string             `json:"journey_date"`
	Passengers      []domain.Passenger `json:"passengers"`
	BerthPreference string             `json:"berth_preference"`
	UserID          string             `json:"-"`
}

type BookingServiceOption func(*BookingService)

func WithCatalogCache(cache CatalogCache) BookingServiceOption {
	return func(s *BookingService) {
		s.cache = cache
	}
}

func WithSideEffectTimeout(d time.Duration) BookingServiceOption {
	return func(s *BookingService) {
		s.sideEffectTimeout = d
	}
}

func NewBookingService(
	trains repository.TrainRepository,
	bookings repository.BookingRepository,
	users repository.UserRepository,
	drafts Drafts,
	receipts receipt.Store,
	notifier Notifier,
	gen ident.Generator,
	opts ...BookingServiceOption,
) *BookingService {
	service := &BookingService{
		trains:            trains,
		bookings:          bookings,
		users:             users,
		drafts:            drafts,
		receipts:          receipts,
		notifier:          notifier,
		ident:             gen,
		sideEffectTimeout: 5 * time.Second,
	}
	for _, opt := range opts {
		opt(service)
	}
	return service
}

// CreateDraft validates passenger input against current availability
// and stores the pending booking for the payment step. Availability is
// only pre-checked here; the binding check happens on confirmation.
func (s *BookingService) CreateDraft(ctx context.Context, input DraftInput) (*domain.PendingBooking, error) {
	if input.Seats <= 0 {
		return nil, fmt.Errorf("%w: seats must be positive", domain.ErrInvalidInput)
	}
	if input.PassengerName == "" {
		return nil, fmt.Errorf("%w: passenger name is required", domain.ErrInvalidInput)
	}
	if input.ClassName == "" {
		return nil, fmt.Errorf("%w: class is required", domain.ErrInvalidInput)
	}
	if input.JourneyDate == "" {
		return nil, fmt.Errorf("%w: journey date is required", domain.ErrInvalidInput)
	}
	if _, err := time.Parse("2006-01-02", input.JourneyDate); err != nil {
		return nil, fmt.Errorf("%w: journey date must be YYYY-MM-DD", domain.ErrInvalidInput)
	}

	train, err := s.trains.GetByID(ctx, input.TrainID)
	if err != nil {
		return nil, err
	}
	class, ok := train.Classes[input.ClassName]
	if !ok {
		return nil, domain.ErrClassNotFound
	}
	if class.Availability < input.Seats {
		return nil, domain.ErrInsufficientAvailability
	}

	draft := &domain.PendingBooking{
		TrainID:         train.TrainID,
		Route:           train.Route,
		Time:            train.Time,
		TrainName:       train.Name,
		Seats:           input.Seats,
		PassengerName:   input.PassengerName,
		ClassName:       input.ClassName,
		JourneyDate:     input.JourneyDate,
		Passengers:      normalizePassengers(input.Passengers, input.PassengerName, input.Seats),
		BerthPreference: input.BerthPreference,
		UserID:          input.UserID,
	}
	if draft.BerthPreference == "" {
		draft.BerthPreference = domain.DefaultBerthPreference
	}

	if err := s.drafts.PutDraft(ctx, input.UserID, draft); err != nil {
		return nil, fmt.Errorf("store draft: %w", err)
	}
	return draft, nil
}

// ConfirmPayment loads the caller's draft and runs the confirmation
// flow. The draft is consumed on success and kept on a rejection so
// the caller can retry with a different class or count.
func (s *BookingService) ConfirmPayment(ctx context.Context, userID, paymentMethod, paymentReference string) (*domain.Booking, error) {
	draft, err := s.drafts.GetDraft(ctx, userID)
	if err != nil {
		return nil, err
	}

	booking, err := s.ConfirmBooking(ctx, draft, paymentMethod, paymentReference)
	if err != nil {
		return nil, err
	}

	if err := s.drafts.DeleteDraft(ctx, userID); err != nil {
		log.Printf("delete draft for user %s: %v", userID, err)
	}
	return booking, nil
}

// ConfirmBooking drives the confirmation state machine:
// Draft -> Validated -> Reserved -> Persisted -> Notified.
// Nothing is mutated before the reservation; everything after the
// booking insert is best-effort.
func (s *BookingService) ConfirmBooking(ctx context.Context, pending *domain.PendingBooking, paymentMethod, paymentReference string) (*domain.Booking, error) {
	if pending == nil {
		return nil, domain.ErrDraftNotFound
	}
	if paymentMethod == "" {
		return nil, fmt.Errorf("%w: payment method is required", domain.ErrInvalidInput)
	}
	if pending.Seats <= 0 {
		return nil, fmt.Errorf("%w: seats must be positive", domain.ErrInvalidInput)
	}

	// Re-validate against the live catalog; the draft's cached fare is
	// never trusted.
	train, err := s.trains.GetByID(ctx, pending.TrainID)
	if err != nil {
		return nil, err
	}
	className := pending.ClassName
	if className == "" {
		className = domain.DefaultClass
	}
	class, ok := train.Classes[className]
	if !ok {
		return nil, domain.ErrClassNotFound
	}
	farePerSeat := class.Fare

	if err := s.trains.Reserve(ctx, pending.TrainID, className, pending.Seats); err != nil {
		return nil, err
	}

	journeyDate := pending.JourneyDate
	if journeyDate == "" {
		journeyDate = time.Now().Format("2006-01-02")
	}
	berthPreference := pending.BerthPreference
	if berthPreference == "" {
		berthPreference = domain.DefaultBerthPreference
	}
	reference := paymentReference
	if reference == "" {
		reference = domain.DefaultPaymentReference
	}
	totalFare := farePerSeat * int64(pending.Seats)

	booking := &domain.Booking{
		BookingID:        s.ident.NextBookingID(),
		PNR:              s.ident.NextPNR(),
		TrainID:          pending.TrainID,
		TrainName:        pending.TrainName,
		Route:            pending.Route,
		Time:             pending.Time,
		Seats:            pending.Seats,
		Class:            className,
		FarePerSeat:      farePerSeat,
		TotalFare:        totalFare,
		JourneyDate:      journeyDate,
		PassengerName:    pending.PassengerName,
		Passengers:       normalizePassengers(pending.Passengers, pending.PassengerName, pending.Seats),
		BerthAllocations: berth.Allocate(className, pending.Seats),
		BerthPreference:  berthPreference,
		BookingDate:      time.Now(),
		Status:           domain.BookingStatusConfirmed,
		UserID:           pending.UserID,
		Payment: &domain.Payment{
			Method:    paymentMethod,
			Reference: reference,
			Amount:    totalFare,
			Currency:  domain.PaymentCurrency,
			Status:    domain.PaymentStatusPaid,
		},
	}

	if err := s.bookings.Create(ctx, booking); err != nil {
		// Seats were decremented but no booking exists. Compensate with
		// a release; if that also fails the decrement is orphaned and
		// needs operator attention.
		log.Printf("CRITICAL: booking persist failed after reservation train=%s class=%s seats=%d: %v",
			pending.TrainID, className, pending.Seats, err)
		if relErr := s.trains.Release(ctx, pending.TrainID, className, pending.Seats); relErr != nil {
			log.Printf("CRITICAL: compensating release failed, %d seat(s) orphaned train=%s class=%s: %v",
				pending.Seats, pending.TrainID, className, relErr)
		}
		return nil, fmt.Errorf("persist booking: %w", err)
	}

	s.runSideEffects(ctx, booking)
	return booking, nil
}

// runSideEffects covers Persisted -> Notified: the user's booking
// list, the receipt and the notification. All best-effort under a
// timeout; a slow or failing dependency degrades to "confirmed,
// receipt pending" and never reverses the booking.
func (s *BookingService) runSideEffects(ctx context.Context, booking *domain.Booking) {
	sideCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.sideEffectTimeout)
	defer cancel()

	if err := s.users.AppendBooking(sideCtx, booking.UserID, booking.BookingID); err != nil {
		log.Printf("append booking %s to user %s: %v", booking.BookingID, booking.UserID, err)
	}
	if locator, err := s.receipts.Persist(sideCtx, booking); err != nil {
		log.Printf("persist receipt for booking %s: %v", booking.BookingID, err)
	} else {
		booking.ReceiptLocator = locator
	}
	if err := s.notifier.Notify(sideCtx, booking); err != nil {
		log.Printf("notify booking %s: %v", booking.BookingID, err)
	}
	if s.cache != nil {
		_ = s.cache.InvalidateTrains(sideCtx)
	}
}

// GetBooking returns a booking owned by the caller, with the freshest
// receipt locator when one exists.
func (s *BookingService) GetBooking(ctx context.Context, userID, bookingID string) (*domain.Booking, error) {
	booking, err := s.bookings.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if booking.UserID != userID {
		return nil, domain.ErrBookingNotFound
	}
	if locator, err := s.receipts.Locate(ctx, bookingID); err == nil {
		booking.ReceiptLocator = locator
	}
	return booking, nil
}

// History derives the listing from the booking store by owner id; the
// denormalized list on the user record is never read.
func (s *BookingService) History(ctx context.Context, userID string) ([]domain.Booking, error) {
	return s.bookings.ListByUser(ctx, userID)
}

// normalizePassengers pads the list to one entry per seat, defaulting
// missing entries the way the booking form does.
func normalizePassengers(passengers []domain.Passenger, primaryName string, seats int) []domain.Passenger {
	if len(passengers) == 0 {
		return []domain.Passenger{{Name: primaryName, Age: "N/A", Gender: "N/A"}}
	}

	out := make([]domain.Passenger, 0, seats)
	for i := 0; i < seats && i < len(passengers); i++ {
		p := passengers[i]
		if p.Name == "" {
			if i == 0 {
				p.Name = primaryName
			} else {
				p.Name = fmt.Sprintf("Passenger %d", i+1)
			}
		}
		if p.Age == "" {
			p.Age = "N/A"
		}
		if p.Gender == "" {
			p.Gender = "N/A"
		}
		out = append(out, p)
	}
	for i := len(out); i < seats; i++ {
		out = append(out, domain.Passenger{Name: fmt.Sprintf("Passenger %d", i+1), Age: "N/A", Gender: "N/A"})
	}
	return out
}

var _ BookingUseCase = (*BookingService)(nil)
