package api

import (
	"net/http"

	"hotel-backoffice/internal/domain/stay"
	reqdto "hotel-backoffice/internal/handler/dto/request"
	resdto "hotel-backoffice/internal/handler/dto/response"
	"hotel-backoffice/internal/handler/httperr"
	"hotel-backoffice/internal/pkg/ptr"
	"hotel-backoffice/internal/usecase/commands"
	"hotel-backoffice/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type RoomHandler struct {
	roomCommands commands.RoomCommands
	roomQueries  queries.RoomQueries
}

func NewRoomHandler(roomCommands commands.RoomCommands, roomQueries queries.RoomQueries) *RoomHandler {
	return &RoomHandler{
		roomCommands: roomCommands,
		roomQueries:  roomQueries,
	}
}

// @Summary Create room
// @Tags rooms
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateRoomRequest true "Room"
// @Success 201 {object} resdto.RoomResponse
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/rooms [post]
func (h *RoomHandler) Create(c *gin.Context) {
	var req reqdto.CreateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BindError(c, err)
		return
	}

	id, err := h.roomCommands.Create(c.Request.Context(), req)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	h.respondRoom(c, http.StatusCreated, id)
}

// @Summary List rooms
// @Tags rooms
// @Produce json
// @Security BearerAuth
// @Param category query string false "Category"
// @Param cleaning_status query string false "clean, dirty or servicing"
// @Success 200 {array} resdto.RoomResponse
// @Router /api/rooms [get]
func (h *RoomHandler) List(c *gin.Context) {
	var q reqdto.ListRoomsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.BindError(c, err)
		return
	}

	views, err := h.roomQueries.List(c.Request.Context(), queries.RoomFilter{
		Category:       ptr.NonEmpty(q.Category),
		CleaningStatus: ptr.NonEmpty(q.CleaningStatus),
	})
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	out, err := resdto.FromRoomViews(views)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

// @Summary Get room
// @Tags rooms
// @Produce json
// @Security BearerAuth
// @Param id path string true "Room ID"
// @Success 200 {object} resdto.RoomResponse
// @Failure 404 {object} httperr.Response
// @Router /api/rooms/{id} [get]
func (h *RoomHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	h.respondRoom(c, http.StatusOK, id)
}

// @Summary Change nightly price
// @Description Existing bookings keep the price they were made at.
// @Tags rooms
// @Accept json
// @Security BearerAuth
// @Param id path string true "Room ID"
// @Param request body reqdto.UpdateRoomPriceRequest true "Price"
// @Success 200 {object} resdto.RoomResponse
// @Router /api/rooms/{id}/price [put]
func (h *RoomHandler) UpdatePrice(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req reqdto.UpdateRoomPriceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BindError(c, err)
		return
	}
	if err := h.roomCommands.ChangePrice(c.Request.Context(), id, req); err != nil {
		httperr.Abort(c, err)
		return
	}
	h.respondRoom(c, http.StatusOK, id)
}

// @Summary Set cleaning status
// @Tags rooms
// @Accept json
// @Security BearerAuth
// @Param id path string true "Room ID"
// @Param request body reqdto.UpdateCleaningStatusRequest true "Cleaning status"
// @Success 200 {object} resdto.RoomResponse
// @Router /api/rooms/{id}/cleaning [put]
func (h *RoomHandler) UpdateCleaningStatus(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req reqdto.UpdateCleaningStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BindError(c, err)
		return
	}
	if err := h.roomCommands.SetCleaningStatus(c.Request.Context(), id, req); err != nil {
		httperr.Abort(c, err)
		return
	}
	h.respondRoom(c, http.StatusOK, id)
}

// @Summary Check availability
// @Description Read-only preview; a later booking attempt may still conflict.
// @Tags rooms
// @Produce json
// @Security BearerAuth
// @Param id path string true "Room ID"
// @Param start query string true "YYYY-MM-DD"
// @Param end query string true "YYYY-MM-DD, exclusive"
// @Success 200 {object} resdto.AvailabilityResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/rooms/{id}/availability [get]
func (h *RoomHandler) Availability(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var q reqdto.AvailabilityQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.BindError(c, err)
		return
	}
	dates, err := stay.ParseDateRange(q.Start, q.End)
	if err != nil {
		httperr.Abort(c, err)
		return
	}

	view, err := h.roomQueries.Availability(c.Request.Context(), id, dates)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	out, err := resdto.FromAvailabilityView(view)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

func (h *RoomHandler) respondRoom(c *gin.Context, status int, id uuid.UUID) {
	view, err := h.roomQueries.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	out, err := resdto.FromRoomView(view)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	if status == http.StatusCreated {
		c.Header("Location", "/api/rooms/"+view.ID.String())
	}
	c.JSON(status, out)
}
