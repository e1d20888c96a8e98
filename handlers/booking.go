package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"quickscan/models"
	"quickscan/services/booking"
	"quickscan/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler exposes the booking lifecycle endpoints.
type BookingHandler struct {
	Svc    booking.BookingService
	Logger *zap.Logger
}

func NewBookingHandler(svc booking.BookingService, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{Svc: svc, Logger: logger}
}

// callerID returns the authenticated user's id from the request context.
func callerID(c *gin.Context) (string, bool) {
	v, exists := c.Get("userID")
	if !exists {
		return "", false
	}
	id, ok := v.(string)
	return id, ok && id != ""
}

// CreateBooking handles POST /api/bookings.
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var input models.BookingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONFailure(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	receipt, err := h.Svc.CreateBooking(userID, input)
	if err != nil {
		var verr *booking.ValidationError
		if errors.As(err, &verr) {
			c.JSON(http.StatusBadRequest, gin.H{
				"success": false,
				"message": "Missing required fields: " + strings.Join(verr.Fields, ", "),
			})
			return
		}
		h.Logger.Error("booking creation failed", zap.Error(err))
		utils.JSONFailure(c, http.StatusInternalServerError, "Booking creation failed", err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success":   true,
		"bookingId": receipt.BookingID,
		"message":   "Booking created successfully",
		"data":      receipt,
	})
}

// ListBookings handles GET /api/bookings.
func (h *BookingHandler) ListBookings(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	limit, _ := strconv.ParseInt(c.DefaultQuery("limit", "10"), 10, 64)

	bookings, err := h.Svc.ListUserBookings(userID, limit)
	if err != nil {
		h.Logger.Error("failed to list bookings", zap.Error(err))
		utils.JSONFailure(c, http.StatusInternalServerError, "Failed to fetch bookings", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    bookings,
		"count":   len(bookings),
	})
}

// GetBooking handles GET /api/bookings/:bookingId.
func (h *BookingHandler) GetBooking(c *gin.Context) {
	bookingID := c.Param("bookingId")

	b, err := h.Svc.GetBooking(bookingID)
	if err != nil {
		if errors.Is(err, booking.ErrBookingNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Booking not found"})
			return
		}
		h.Logger.Error("failed to fetch booking", zap.Error(err))
		utils.JSONFailure(c, http.StatusInternalServerError, "Failed to fetch booking", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": b})
}

// CancelBooking handles DELETE /api/bookings/:bookingId. Absent and
// not-cancellable bookings are reported identically.
func (h *BookingHandler) CancelBooking(c *gin.Context) {
	bookingID := c.Param("bookingId")

	updated, err := h.Svc.CancelBooking(bookingID)
	if err != nil {
		if errors.Is(err, booking.ErrBookingNotCancellable) {
			c.JSON(http.StatusNotFound, gin.H{
				"success": false,
				"message": "Booking not found or cannot be cancelled",
			})
			return
		}
		h.Logger.Error("failed to cancel booking", zap.Error(err))
		utils.JSONFailure(c, http.StatusInternalServerError, "Failed to cancel booking", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Booking cancelled successfully",
		"data":    updated,
	})
}
