package api

import (
	"net/http"

	"turf-booking/internal/domain/booking"
	"turf-booking/internal/domain/user"
	reqdto "turf-booking/internal/handler/dto/request"
	resdto "turf-booking/internal/handler/dto/response"
	"turf-booking/internal/handler/httperr"
	"turf-booking/internal/handler/middleware"
	"turf-booking/internal/pkg/errs"
	"turf-booking/internal/usecase/commands"
	"turf-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

var errMissingActor = errs.New("authenticated actor missing from context")

type BookingHandler struct {
	cmds commands.BookingCommands
	q    queries.BookingQueries
}

func NewBookingHandler(cmds commands.BookingCommands, q queries.BookingQueries) *BookingHandler {
	return &BookingHandler{cmds: cmds, q: q}
}

// @Summary Create booking
// @Description Request a time slot on a turf. The booking starts pending until the owner decides.
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateBookingRequest true "Booking request"
// @Success 201 {object} resdto.CreateBookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/bookings [post]
func (h *BookingHandler) Create(c *gin.Context) {
	userID, _, ok := actor(c)
	if !ok {
		return
	}
	var req reqdto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	input, err := req.ToInput()
	if err != nil {
		abortWithLifecycleError(c, err)
		return
	}
	result, err := h.cmds.CreateBooking(c.Request.Context(), userID, input)
	if err != nil {
		abortWithLifecycleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromCreateBookingResult(result))
}

// @Summary Get booking
// @Description Booking details with payment history and derived payment state
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.BookingResponse
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/bookings/{id} [get]
func (h *BookingHandler) Get(c *gin.Context) {
	userID, role, ok := actor(c)
	if !ok {
		return
	}
	id, ok := bookingIDParam(c)
	if !ok {
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), userID, role, id)
	if err != nil {
		abortWithLifecycleError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookingView(view))
}

// @Summary List turf bookings for a day
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Turf ID"
// @Param date query string true "Calendar day (YYYY-MM-DD)"
// @Success 200 {array} resdto.BookingListResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /api/turfs/{id}/bookings [get]
func (h *BookingHandler) ListTurfDay(c *gin.Context) {
	userID, role, ok := actor(c)
	if !ok {
		return
	}
	turfID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid turf id", nil)
		return
	}
	date, err := booking.ParseDate(c.Query("date"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid date", nil)
		return
	}
	items, err := h.q.ListTurfDay(c.Request.Context(), userID, role, turfID, date)
	if err != nil {
		abortWithLifecycleError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookingListItems(items))
}

// @Summary Approve booking
// @Description Approve a pending booking; overlapping pending requests are rejected
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.ApprovalResponse
// @Failure 403 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /api/bookings/{id}/approve [post]
func (h *BookingHandler) Approve(c *gin.Context) {
	userID, role, ok := actor(c)
	if !ok {
		return
	}
	id, ok := bookingIDParam(c)
	if !ok {
		return
	}
	result, err := h.cmds.Approve(c.Request.Context(), id, userID, role)
	if err != nil {
		abortWithLifecycleError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromApprovalResult(result))
}

// @Summary Reject booking
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Param request body reqdto.ReasonRequest false "Rejection reason"
// @Success 200 {object} resdto.OutcomeResponse
// @Router /api/bookings/{id}/reject [post]
func (h *BookingHandler) Reject(c *gin.Context) {
	userID, role, ok := actor(c)
	if !ok {
		return
	}
	id, ok := bookingIDParam(c)
	if !ok {
		return
	}
	req, ok := bindReason(c)
	if !ok {
		return
	}
	result, err := h.cmds.Reject(c.Request.Context(), id, userID, role, req.Reason)
	if err != nil {
		abortWithLifecycleError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromOutcome(*result))
}

// @Summary Cancel booking
// @Description Cancel an approved or confirmed booking. Online payments are refunded up to 24h before start.
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Param request body reqdto.ReasonRequest false "Cancellation reason"
// @Success 200 {object} resdto.CancellationResponse
// @Router /api/bookings/{id}/cancel [post]
func (h *BookingHandler) Cancel(c *gin.Context) {
	userID, _, ok := actor(c)
	if !ok {
		return
	}
	id, ok := bookingIDParam(c)
	if !ok {
		return
	}
	req, ok := bindReason(c)
	if !ok {
		return
	}
	result, err := h.cmds.Cancel(c.Request.Context(), id, userID, req.Reason)
	if err != nil {
		abortWithLifecycleError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCancellationResult(result))
}

// @Summary Confirm cash collected
// @Tags payments
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.PaymentResponse
// @Router /api/bookings/{id}/cash-collected [post]
func (h *BookingHandler) ConfirmCashCollected(c *gin.Context) {
	userID, role, ok := actor(c)
	if !ok {
		return
	}
	id, ok := bookingIDParam(c)
	if !ok {
		return
	}
	result, err := h.cmds.ConfirmCashCollected(c.Request.Context(), id, userID, role)
	if err != nil {
		abortWithLifecycleError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromPaymentResult(result))
}

// @Summary Pay in cash at the venue
// @Tags payments
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.PaymentResponse
// @Router /api/bookings/{id}/pay/cash [post]
func (h *BookingHandler) PayCash(c *gin.Context) {
	userID, _, ok := actor(c)
	if !ok {
		return
	}
	id, ok := bookingIDParam(c)
	if !ok {
		return
	}
	result, err := h.cmds.ChooseCashPayment(c.Request.Context(), id, userID)
	if err != nil {
		abortWithLifecycleError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromPaymentResult(result))
}

// @Summary Pay online
// @Tags payments
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 202 {object} resdto.PaymentResponse
// @Router /api/bookings/{id}/pay/online [post]
func (h *BookingHandler) PayOnline(c *gin.Context) {
	userID, _, ok := actor(c)
	if !ok {
		return
	}
	id, ok := bookingIDParam(c)
	if !ok {
		return
	}
	result, err := h.cmds.StartOnlinePayment(c.Request.Context(), id, userID)
	if err != nil {
		abortWithLifecycleError(c, err)
		return
	}
	c.JSON(http.StatusAccepted, resdto.FromPaymentResult(result))
}

// @Summary Billing gateway callback
// @Tags payments
// @Accept json
// @Produce json
// @Param X-Billing-Secret header string true "Shared callback secret"
// @Param request body reqdto.BillingCallbackRequest true "Gateway verdict"
// @Success 200 {object} resdto.PaymentResponse
// @Router /api/billing/callback [post]
func (h *BookingHandler) BillingCallback(c *gin.Context) {
	var req reqdto.BillingCallbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	result, err := h.cmds.RecordOnlinePayment(c.Request.Context(), req.BookingID, req.TransactionRef, req.Succeeded())
	if err != nil {
		abortWithLifecycleError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromPaymentResult(result))
}

func actor(c *gin.Context) (uuid.UUID, user.Role, bool) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errMissingActor, "Unauthorized", nil)
		return uuid.Nil, "", false
	}
	role, ok := middleware.GetUserRole(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errMissingActor, "Unauthorized", nil)
		return uuid.Nil, "", false
	}
	return userID, role, true
}

func bookingIDParam(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid booking id", nil)
		return uuid.Nil, false
	}
	return id, true
}

// bindReason accepts an empty body.
func bindReason(c *gin.Context) (reqdto.ReasonRequest, bool) {
	var req reqdto.ReasonRequest
	if c.Request.ContentLength == 0 {
		return req, true
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return req, false
	}
	return req, true
}
