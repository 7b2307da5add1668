package api

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Domenick1991/railbooking/internal/domain"
	"github.com/Domenick1991/railbooking/internal/middleware"
	"github.com/Domenick1991/railbooking/internal/service/booking"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockBookingUseCase is a mock implementation of booking.BookingUseCase
type MockBookingUseCase struct {
	mock.Mock
}

func (m *MockBookingUseCase) CreateDraft(ctx context.Context, input booking.DraftInput) (*domain.PendingBooking, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PendingBooking), args.Error(1)
}

func (m *MockBookingUseCase) ConfirmPayment(ctx context.Context, userID, paymentMethod, paymentReference string) (*domain.Booking, error) {
	args := m.Called(ctx, userID, paymentMethod, paymentReference)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *MockBookingUseCase) ConfirmBooking(ctx context.Context, pending *domain.PendingBooking, paymentMethod, paymentReference string) (*domain.Booking, error) {
	args := m.Called(ctx, pending, paymentMethod, paymentReference)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *MockBookingUseCase) GetBooking(ctx context.Context, userID, bookingID string) (*domain.Booking, error) {
	args := m.Called(ctx, userID, bookingID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *MockBookingUseCase) History(ctx context.Context, userID string) ([]domain.Booking, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]domain.Booking), args.Error(1)
}

func authedContext(t *testing.T, w *httptest.ResponseRecorder, method, target string, body []byte) *gin.Context {
	t.Helper()
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(w)
	var reader *bytes.Reader
	if body == nil {
		reader = bytes.NewReader([]byte{})
	} else {
		reader = bytes.NewReader(body)
	}
	c.Request = httptest.NewRequest(method, target, reader)
	c.Request.Header.Set("Content-Type", "application/json")
	c.Set(middleware.ContextUserID, "user-1")
	return c
}

func TestBookingHandler_createDraft(t *testing.T) {
	mockService := &MockBookingUseCase{}
	handler := NewBookingHandler(mockService)

	body := []byte(`{"train_id":"12301","seats":2,"passenger_name":"Asha Rao","class_name":"AC2","journey_date":"2025-04-01"}`)
	w := httptest.NewRecorder()
	c := authedContext(t, w, "POST", "/api/bookings/draft", body)

	draft := &domain.PendingBooking{TrainID: "12301", Seats: 2, UserID: "user-1"}
	mockService.On("CreateDraft", c.Request.Context(), mock.MatchedBy(func(input booking.DraftInput) bool {
		return input.TrainID == "12301" && input.Seats == 2 && input.UserID == "user-1"
	})).Return(draft, nil)

	handler.createDraft(c)

	assert.Equal(t, http.StatusCreated, w.Code)

	mockService.AssertExpectations(t)
}

func TestBookingHandler_createDraft_Unavailable(t *testing.T) {
	mockService := &MockBookingUseCase{}
	handler := NewBookingHandler(mockService)

	body := []byte(`{"train_id":"12301","seats":30,"passenger_name":"Asha Rao","class_name":"AC2","journey_date":"2025-04-01"}`)
	w := httptest.NewRecorder()
	c := authedContext(t, w, "POST", "/api/bookings/draft", body)

	mockService.On("CreateDraft", c.Request.Context(), mock.Anything).Return(nil, domain.ErrInsufficientAvailability)

	handler.createDraft(c)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestBookingHandler_confirm(t *testing.T) {
	mockService := &MockBookingUseCase{}
	handler := NewBookingHandler(mockService)

	body := []byte(`{"payment_method":"card","payment_reference":"PAY-42"}`)
	w := httptest.NewRecorder()
	c := authedContext(t, w, "POST", "/api/bookings/confirm", body)

	confirmed := &domain.Booking{BookingID: "10001", PNR: "8000000001", Status: domain.BookingStatusConfirmed, UserID: "user-1"}
	mockService.On("ConfirmPayment", c.Request.Context(), "user-1", "card", "PAY-42").Return(confirmed, nil)

	handler.confirm(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), "8000000001")

	mockService.AssertExpectations(t)
}

func TestBookingHandler_confirm_NoDraft(t *testing.T) {
	mockService := &MockBookingUseCase{}
	handler := NewBookingHandler(mockService)

	body := []byte(`{"payment_method":"card"}`)
	w := httptest.NewRecorder()
	c := authedContext(t, w, "POST", "/api/bookings/confirm", body)

	mockService.On("ConfirmPayment", c.Request.Context(), "user-1", "card", "").Return(nil, domain.ErrDraftNotFound)

	handler.confirm(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestBookingHandler_get(t *testing.T) {
	mockService := &MockBookingUseCase{}
	handler := NewBookingHandler(mockService)

	w := httptest.NewRecorder()
	c := authedContext(t, w, "GET", "/api/bookings/10001", nil)
	c.Params = gin.Params{{Key: "id", Value: "10001"}}

	stored := &domain.Booking{BookingID: "10001", UserID: "user-1"}
	mockService.On("GetBooking", c.Request.Context(), "user-1", "10001").Return(stored, nil)

	handler.get(c)

	assert.Equal(t, http.StatusOK, w.Code)

	mockService.AssertExpectations(t)
}

func TestBookingHandler_get_ForeignBookingHidden(t *testing.T) {
	mockService := &MockBookingUseCase{}
	handler := NewBookingHandler(mockService)

	w := httptest.NewRecorder()
	c := authedContext(t, w, "GET", "/api/bookings/10002", nil)
	c.Params = gin.Params{{Key: "id", Value: "10002"}}

	mockService.On("GetBooking", c.Request.Context(), "user-1", "10002").Return(nil, domain.ErrBookingNotFound)

	handler.get(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestBookingHandler_history(t *testing.T) {
	mockService := &MockBookingUseCase{}
	handler := NewBookingHandler(mockService)

	w := httptest.NewRecorder()
	c := authedContext(t, w, "GET", "/api/bookings/history", nil)

	bookings := []domain.Booking{{BookingID: "10002", UserID: "user-1"}, {BookingID: "10001", UserID: "user-1"}}
	mockService.On("History", c.Request.Context(), "user-1").Return(bookings, nil)

	handler.history(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "10002")

	mockService.AssertExpectations(t)
}
