package httperr

import (
	"errors"
	"net/http"

	"hotel-backoffice/internal/infra"
	"hotel-backoffice/internal/pkg/errs"
	"hotel-backoffice/internal/usecase/commands"
	"hotel-backoffice/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

// AbortWithError keeps err on the gin context for the logging middleware
// and writes the public response.
func AbortWithError(c *gin.Context, status int, err error, code, msg string, detail any) {
	if err == nil {
		err = errs.New(msg)
	}

	resp := Response{Status: status}
	resp.Error.Code = code
	resp.Error.Message = msg
	resp.Detail = detail

	_ = c.Error(err).SetType(gin.ErrorTypePublic).SetMeta(resp)
	c.AbortWithStatusJSON(status, resp)
}

type mapping struct {
	sentinel error
	status   int
	code     string
	message  string
}

// mappings is checked in order; the first sentinel err carries wins.
var mappings = []mapping{
	{errs.ErrInvalidRange, http.StatusBadRequest, "invalid_range", "Invalid date range"},
	{errs.ErrDomainValidation, http.StatusBadRequest, "validation_failed", "Validation failed"},
	{errs.ErrBookingNotFound, http.StatusNotFound, "booking_not_found", "Booking not found"},
	{errs.ErrInvoiceNotFound, http.StatusNotFound, "invoice_not_found", "Invoice not found"},
	{errs.ErrRoomNotFound, http.StatusNotFound, "room_not_found", "Room not found"},
	{errs.ErrClientNotFound, http.StatusNotFound, "client_not_found", "Client not found"},
	{errs.ErrEmployeeNotFound, http.StatusNotFound, "employee_not_found", "Employee not found"},
	{queries.ErrUserNotFound, http.StatusNotFound, "user_not_found", "User not found"},
	{errs.ErrBookingConflict, http.StatusConflict, "booking_conflict", "Room is already booked for these dates"},
	{errs.ErrInvalidStatusTransition, http.StatusConflict, "invalid_status_transition", "Status change not allowed"},
	{errs.ErrBookingNotDeletable, http.StatusConflict, "booking_not_deletable", "Booking cannot be deleted in its current status"},
	{errs.ErrBookingAlreadyCheckedOut, http.StatusConflict, "booking_checked_out", "Booking is already checked out"},
	{errs.ErrDuplicateInvoice, http.StatusConflict, "duplicate_invoice", "Booking is already invoiced"},
	{errs.ErrPreconditionFailed, http.StatusConflict, "precondition_failed", "Booking must be checked out before invoicing"},
	{commands.ErrRoomNameTaken, http.StatusConflict, "room_name_taken", "Room name already in use"},
	{commands.ErrEmailTaken, http.StatusConflict, "email_taken", "Email already registered"},
	{commands.ErrInvalidCredentials, http.StatusUnauthorized, "invalid_credentials", "Invalid email or password"},
	{commands.ErrAuthenticationFailed, http.StatusUnauthorized, "invalid_credentials", "Invalid email or password"},
	{commands.ErrUserInactive, http.StatusForbidden, "user_inactive", "Account is inactive"},
	{queries.ErrUserInactive, http.StatusForbidden, "user_inactive", "Account is inactive"},
}

// Abort maps a usecase error to its HTTP status and aborts the request.
// Unknown errors become 500 without leaking their text.
func Abort(c *gin.Context, err error) {
	for _, m := range mappings {
		if errs.Is(err, m.sentinel) {
			AbortWithError(c, m.status, err, m.code, m.message, nil)
			return
		}
	}
	// Constraint violations that slipped past the usecase checks.
	switch infra.KindOf(err) {
	case infra.KindExclusionViolated:
		AbortWithError(c, http.StatusConflict, err, "booking_conflict", "Room is already booked for these dates", nil)
		return
	case infra.KindDuplicateKey:
		AbortWithError(c, http.StatusConflict, err, "duplicate", "Resource already exists", nil)
		return
	case infra.KindForeignKeyViolated:
		AbortWithError(c, http.StatusConflict, err, "reference_violated", "Referenced resource does not exist", nil)
		return
	}
	AbortWithError(c, http.StatusInternalServerError, err, "internal_error", "Internal server error", nil)
}

// Internal is the body sent for failures whose cause must stay private.
func Internal() Response {
	resp := Response{Status: http.StatusInternalServerError}
	resp.Error.Code = "internal_error"
	resp.Error.Message = "Internal server error"
	return resp
}

func BadRequest(c *gin.Context, err error, msg string) {
	AbortWithError(c, http.StatusBadRequest, err, "bad_request", msg, nil)
}

type FieldError struct {
	Field string `json:"field"`
	Rule  string `json:"rule"`
}

// BindError reports a request that failed binding or tag validation.
func BindError(c *gin.Context, err error) {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		fields := make([]FieldError, 0, len(verrs))
		for _, fe := range verrs {
			fields = append(fields, FieldError{Field: fe.Field(), Rule: fe.Tag()})
		}
		AbortWithError(c, http.StatusBadRequest, err, "validation_failed", "Invalid request", fields)
		return
	}
	AbortWithError(c, http.StatusBadRequest, err, "bad_request", "Invalid request format", nil)
}
