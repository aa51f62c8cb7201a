package api

import (
	"net/http"

	reqdto "hotel-backoffice/internal/handler/dto/request"
	resdto "hotel-backoffice/internal/handler/dto/response"
	"hotel-backoffice/internal/handler/httperr"
	"hotel-backoffice/internal/usecase/commands"
	"hotel-backoffice/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type BillingHandler struct {
	billingCommands commands.BillingCommands
	bookingQueries  queries.BookingQueries
	invoiceQueries  queries.InvoiceQueries
}

func NewBillingHandler(
	billingCommands commands.BillingCommands,
	bookingQueries queries.BookingQueries,
	invoiceQueries queries.InvoiceQueries,
) *BillingHandler {
	return &BillingHandler{
		billingCommands: billingCommands,
		bookingQueries:  bookingQueries,
		invoiceQueries:  invoiceQueries,
	}
}

// @Summary Add consumption
// @Tags billing
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Param request body reqdto.AddConsumptionRequest true "Consumption"
// @Success 201 {object} resdto.CreatedResponse
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/bookings/{id}/consumptions [post]
func (h *BillingHandler) AddConsumption(c *gin.Context) {
	bookingID, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req reqdto.AddConsumptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BindError(c, err)
		return
	}

	id, err := h.billingCommands.AddConsumption(c.Request.Context(), bookingID, req)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.CreatedResponse{ID: id.String()})
}

// @Summary List consumptions
// @Tags billing
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {array} resdto.ConsumptionResponse
// @Router /api/bookings/{id}/consumptions [get]
func (h *BillingHandler) ListConsumptions(c *gin.Context) {
	bookingID, ok := pathID(c, "id")
	if !ok {
		return
	}
	views, err := h.bookingQueries.Consumptions(c.Request.Context(), bookingID)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	out, err := resdto.FromConsumptionViews(views)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

// @Summary Issue invoice
// @Description Freezes the totals of a checked-out booking. One invoice per booking.
// @Tags billing
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Param request body reqdto.IssueInvoiceRequest true "Payment"
// @Success 201 {object} resdto.InvoiceResponse
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/bookings/{id}/invoice [post]
func (h *BillingHandler) IssueInvoice(c *gin.Context) {
	bookingID, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req reqdto.IssueInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BindError(c, err)
		return
	}

	id, err := h.billingCommands.IssueInvoice(c.Request.Context(), bookingID, req)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	view, err := h.invoiceQueries.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.Header("Location", "/api/invoices/"+id.String())
	c.JSON(http.StatusCreated, resdto.FromInvoiceView(view))
}

// @Summary Get invoice
// @Tags billing
// @Produce json
// @Security BearerAuth
// @Param id path string true "Invoice ID"
// @Success 200 {object} resdto.InvoiceResponse
// @Failure 404 {object} httperr.Response
// @Router /api/invoices/{id} [get]
func (h *BillingHandler) GetInvoice(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	view, err := h.invoiceQueries.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromInvoiceView(view))
}

// @Summary List invoices
// @Description Invoices issued within the inclusive [from, to] window.
// @Tags billing
// @Produce json
// @Security BearerAuth
// @Param from query string false "YYYY-MM-DD"
// @Param to query string false "YYYY-MM-DD"
// @Param limit query int false "Max rows"
// @Success 200 {array} resdto.InvoiceResponse
// @Router /api/invoices [get]
func (h *BillingHandler) ListInvoices(c *gin.Context) {
	var q reqdto.DateWindowQuery
	if err := c.ShouldBindQuery(&q); err != nil {
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

	views, err := h.invoiceQueries.List(c.Request.Context(), queries.DateWindow{From: from, To: to, Limit: q.Limit})
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromInvoiceViews(views))
}
