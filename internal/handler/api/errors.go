package api

import (
	"net/http"

	"turf-booking/internal/handler/httperr"
	"turf-booking/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

type errorMapping struct {
	target  error
	status  int
	code    string
	message string
}

// ordered: the first matching sentinel wins
var lifecycleErrorMappings = []errorMapping{
	{errs.ErrNotFound, http.StatusNotFound, "NOT_FOUND", "Booking not found"},
	{errs.ErrUnauthorized, http.StatusForbidden, "UNAUTHORIZED", "You are not allowed to perform this action"},
	{errs.ErrSlotTaken, http.StatusConflict, "SLOT_TAKEN", "This time slot is already booked"},
	{errs.ErrInvalidState, http.StatusConflict, "INVALID_STATE", "Booking is not in a state that allows this action"},
	{errs.ErrTooLate, http.StatusUnprocessableEntity, "TOO_LATE", "The match has already started"},
	{errs.ErrTooEarly, http.StatusUnprocessableEntity, "TOO_EARLY", "Cash can only be collected once the match has started"},
	{errs.ErrAlreadyPaid, http.StatusConflict, "ALREADY_PAID", "Payment has already been recorded"},
	{errs.ErrInvalidPaymentState, http.StatusConflict, "INVALID_PAYMENT_STATE", "Payment is not in a state that allows this action"},
	{errs.ErrInvalidTimeSlot, http.StatusBadRequest, "INVALID_TIME_SLOT", "Invalid time slot"},
	{errs.ErrInvalidBooking, http.StatusBadRequest, "INVALID_BOOKING", "Invalid booking request"},
	{errs.ErrPersistence, http.StatusInternalServerError, "PERSISTENCE", "Could not save changes, please retry"},
}

func abortWithLifecycleError(c *gin.Context, err error) {
	for _, m := range lifecycleErrorMappings {
		if errs.Is(err, m.target) {
			httperr.AbortWithError(c, m.status, err, m.message, gin.H{"code": m.code})
			return
		}
	}
	httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
}
