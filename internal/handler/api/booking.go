package api

import (
	"net/http"

	reqdto "hotel-backoffice/internal/handler/dto/request"
	resdto "hotel-backoffice/internal/handler/dto/response"
	"hotel-backoffice/internal/handler/httperr"
	"hotel-backoffice/internal/pkg/ptr"
	"hotel-backoffice/internal/usecase/commands"
	"hotel-backoffice/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type BookingHandler struct {
	bookingCommands commands.BookingCommands
	bookingQueries  queries.BookingQueries
}

func NewBookingHandler(bookingCommands commands.BookingCommands, bookingQueries queries.BookingQueries) *BookingHandler {
	return &BookingHandler{
		bookingCommands: bookingCommands,
		bookingQueries:  bookingQueries,
	}
}

// @Summary Create booking
// @Description Holds the room for [start_date, end_date). The nightly price is copied from the room.
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateBookingRequest true "Booking"
// @Success 201 {object} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/bookings [post]
func (h *BookingHandler) Create(c *gin.Context) {
	var req reqdto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BindError(c, err)
		return
	}

	id, err := h.bookingCommands.Create(c.Request.Context(), req)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.Header("Location", "/api/bookings/"+id.String())
	h.respondBooking(c, http.StatusCreated, id)
}

// @Summary List bookings
// @Description With from and to, returns bookings whose stay overlaps [from, to).
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param room_id query string false "Room ID"
// @Param from query string false "YYYY-MM-DD"
// @Param to query string false "YYYY-MM-DD"
// @Param status query string false "Status"
// @Param limit query int false "Max rows"
// @Success 200 {array} resdto.BookingResponse
// @Router /api/bookings [get]
func (h *BookingHandler) List(c *gin.Context) {
	var q reqdto.ListBookingsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.BindError(c, err)
		return
	}

	roomID, err := optionalUUID(q.RoomID)
	if err != nil {
		httperr.BindError(c, err)
		return
	}
	from, err := optionalDate(q.From)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	to, err := optionalDate(q.To)
	if err != nil {
		httperr.Abort(c, err)
		return
	}

	views, err := h.bookingQueries.List(c.Request.Context(), queries.BookingFilter{
		RoomID: roomID,
		From:   from,
		To:     to,
		Status: ptr.NonEmpty(q.Status),
		Limit:  q.Limit,
	})
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	out, err := resdto.FromBookingViews(views)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

// @Summary Get booking
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.BookingResponse
// @Failure 404 {object} httperr.Response
// @Router /api/bookings/{id} [get]
func (h *BookingHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	h.respondBooking(c, http.StatusOK, id)
}

// @Summary Update booking
// @Description Changes dates or details. New dates are checked against the room's other bookings.
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Param request body reqdto.UpdateBookingRequest true "Changes"
// @Success 200 {object} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/bookings/{id} [put]
func (h *BookingHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req reqdto.UpdateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BindError(c, err)
		return
	}
	if err := h.bookingCommands.Update(c.Request.Context(), id, req); err != nil {
		httperr.Abort(c, err)
		return
	}
	h.respondBooking(c, http.StatusOK, id)
}

// @Summary Change booking status
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Param request body reqdto.ChangeBookingStatusRequest true "Status"
// @Success 200 {object} resdto.BookingResponse
// @Failure 409 {object} httperr.Response
// @Router /api/bookings/{id}/status [put]
func (h *BookingHandler) ChangeStatus(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req reqdto.ChangeBookingStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BindError(c, err)
		return
	}
	if err := h.bookingCommands.ChangeStatus(c.Request.Context(), id, req); err != nil {
		httperr.Abort(c, err)
		return
	}
	h.respondBooking(c, http.StatusOK, id)
}

// @Summary Delete booking
// @Description Only reserved or liberated bookings can be deleted.
// @Tags bookings
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 204 "No Content"
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/bookings/{id} [delete]
func (h *BookingHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.bookingCommands.Delete(c.Request.Context(), id); err != nil {
		httperr.Abort(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Quote booking
// @Description Previews the invoice totals with the configured tax rate.
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.QuoteResponse
// @Failure 404 {object} httperr.Response
// @Router /api/bookings/{id}/quote [get]
func (h *BookingHandler) Quote(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	view, err := h.bookingQueries.Quote(c.Request.Context(), id)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromQuoteView(view))
}

func (h *BookingHandler) respondBooking(c *gin.Context, status int, id uuid.UUID) {
	view, err := h.bookingQueries.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	out, err := resdto.FromBookingView(view)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(status, out)
}
