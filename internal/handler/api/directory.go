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
)

// DirectoryHandler serves clients, staff and expenses.
type DirectoryHandler struct {
	directoryCommands commands.DirectoryCommands
	clientQueries     queries.ClientQueries
	staffQueries      queries.StaffQueries
	expenseQueries    queries.ExpenseQueries
}

func NewDirectoryHandler(
	directoryCommands commands.DirectoryCommands,
	clientQueries queries.ClientQueries,
	staffQueries queries.StaffQueries,
	expenseQueries queries.ExpenseQueries,
) *DirectoryHandler {
	return &DirectoryHandler{
		directoryCommands: directoryCommands,
		clientQueries:     clientQueries,
		staffQueries:      staffQueries,
		expenseQueries:    expenseQueries,
	}
}

// @Summary Create client
// @Tags clients
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateClientRequest true "Client"
// @Success 201 {object} resdto.ClientResponse
// @Router /api/clients [post]
func (h *DirectoryHandler) CreateClient(c *gin.Context) {
	var req reqdto.CreateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BindError(c, err)
		return
	}
	id, err := h.directoryCommands.CreateClient(c.Request.Context(), req)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	view, err := h.clientQueries.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	out, err := resdto.FromClientView(view)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusCreated, out)
}

// @Summary Get client
// @Tags clients
// @Produce json
// @Security BearerAuth
// @Param id path string true "Client ID"
// @Success 200 {object} resdto.ClientResponse
// @Failure 404 {object} httperr.Response
// @Router /api/clients/{id} [get]
func (h *DirectoryHandler) GetClient(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	view, err := h.clientQueries.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	out, err := resdto.FromClientView(view)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

// @Summary List clients
// @Tags clients
// @Produce json
// @Security BearerAuth
// @Param search query string false "Name, email or document"
// @Param limit query int false "Max rows"
// @Success 200 {array} resdto.ClientResponse
// @Router /api/clients [get]
func (h *DirectoryHandler) ListClients(c *gin.Context) {
	var q reqdto.ListClientsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.BindError(c, err)
		return
	}
	views, err := h.clientQueries.List(c.Request.Context(), q.Search, q.Limit)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	out, err := resdto.FromClientViews(views)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

// @Summary Create employee
// @Tags staff
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateEmployeeRequest true "Employee"
// @Success 201 {object} resdto.CreatedResponse
// @Router /api/employees [post]
func (h *DirectoryHandler) CreateEmployee(c *gin.Context) {
	var req reqdto.CreateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BindError(c, err)
		return
	}
	id, err := h.directoryCommands.CreateEmployee(c.Request.Context(), req)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.CreatedResponse{ID: id.String()})
}

// @Summary List employees
// @Tags staff
// @Produce json
// @Security BearerAuth
// @Param active query bool false "Only active employees"
// @Success 200 {array} resdto.EmployeeResponse
// @Router /api/employees [get]
func (h *DirectoryHandler) ListEmployees(c *gin.Context) {
	activeOnly := c.Query("active") == "true"
	views, err := h.staffQueries.ListEmployees(c.Request.Context(), activeOnly)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	out, err := resdto.FromEmployeeViews(views)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

// @Summary Create shift
// @Tags staff
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateShiftRequest true "Shift"
// @Success 201 {object} resdto.CreatedResponse
// @Failure 404 {object} httperr.Response
// @Router /api/shifts [post]
func (h *DirectoryHandler) CreateShift(c *gin.Context) {
	var req reqdto.CreateShiftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BindError(c, err)
		return
	}
	id, err := h.directoryCommands.CreateShift(c.Request.Context(), req)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.CreatedResponse{ID: id.String()})
}

// @Summary List shifts
// @Tags staff
// @Produce json
// @Security BearerAuth
// @Param employee_id query string false "Employee ID"
// @Param from query string false "YYYY-MM-DD"
// @Param to query string false "YYYY-MM-DD"
// @Success 200 {array} resdto.ShiftResponse
// @Router /api/shifts [get]
func (h *DirectoryHandler) ListShifts(c *gin.Context) {
	var q reqdto.ListShiftsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.BindError(c, err)
		return
	}
	employeeID, err := optionalUUID(q.EmployeeID)
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

	views, err := h.staffQueries.ListShifts(c.Request.Context(), queries.ShiftFilter{EmployeeID: employeeID, From: from, To: to})
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	out, err := resdto.FromShiftViews(views)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

// @Summary Record expense
// @Tags expenses
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateExpenseRequest true "Expense"
// @Success 201 {object} resdto.CreatedResponse
// @Router /api/expenses [post]
func (h *DirectoryHandler) CreateExpense(c *gin.Context) {
	var req reqdto.CreateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BindError(c, err)
		return
	}
	id, err := h.directoryCommands.CreateExpense(c.Request.Context(), req)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.CreatedResponse{ID: id.String()})
}

// @Summary Expense report
// @Description Expenses within the inclusive [from, to] window and their total.
// @Tags expenses
// @Produce json
// @Security BearerAuth
// @Param from query string false "YYYY-MM-DD"
// @Param to query string false "YYYY-MM-DD"
// @Param category query string false "Category"
// @Success 200 {object} resdto.ExpenseReportResponse
// @Router /api/expenses [get]
func (h *DirectoryHandler) ExpenseReport(c *gin.Context) {
	var q reqdto.ListExpensesQuery
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

	report, err := h.expenseQueries.Report(c.Request.Context(), queries.ExpenseFilter{
		From:     from,
		To:       to,
		Category: ptr.NonEmpty(q.Category),
	})
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	out, err := resdto.FromExpenseReport(report)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}
