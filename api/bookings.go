package api

import (
	"net/http"

	"github.com/Domenick1991/railbooking/internal/middleware"
	"github.com/Domenick1991/railbooking/internal/service/booking"
	"github.com/gin-gonic/gin"
)

type BookingHandler struct {
	service booking.BookingUseCase
}

type confirmRequest struct {
	PaymentMethod    string `json:"payment_method"`
	PaymentReference string `json:"payment_reference"`
}

func NewBookingHandler(service booking.BookingUseCase) *BookingHandler {
	return &BookingHandler{service: service}
}

func (h *BookingHandler) Register(router *gin.RouterGroup) {
	router.POST("/draft", h.createDraft)
	router.POST("/confirm", h.confirm)
	router.GET("/history", h.history)
	router.GET("/:id", h.get)
}

// createDraft stores the passenger-details step; payment confirmation
// finalizes it.
func (h *BookingHandler) createDraft(c *gin.Context) {
	var input booking.DraftInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	input.UserID = c.GetString(middleware.ContextUserID)

	draft, err := h.service.CreateDraft(c.Request.Context(), input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, draft)
}

func (h *BookingHandler) confirm(c *gin.Context) {
	var req confirmRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID := c.GetString(middleware.ContextUserID)
	booking, err := h.service.ConfirmPayment(c.Request.Context(), userID, req.PaymentMethod, req.PaymentReference)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, booking)
}

func (h *BookingHandler) get(c *gin.Context) {
	userID := c.GetString(middleware.ContextUserID)
	booking, err := h.service.GetBooking(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, booking)
}

func (h *BookingHandler) history(c *gin.Context) {
	userID := c.GetString(middleware.ContextUserID)
	bookings, err := h.service.History(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, bookings)
}
