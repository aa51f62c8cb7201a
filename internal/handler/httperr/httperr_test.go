//go:build unit

package httperr_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"hotel-backoffice/internal/handler/httperr"
	"hotel-backoffice/internal/infra"
	"hotel-backoffice/internal/pkg/errs"
	"hotel-backoffice/internal/usecase/commands"

	"github.com/cockroachdb/errors"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func abort(t *testing.T, err error) (*httptest.ResponseRecorder, httperr.Response) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

	httperr.Abort(c, err)

	var body httperr.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return rec, body
}

func TestAbort(t *testing.T) {
	testCases := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"invalid range", errs.Mark(errs.New("reversed"), errs.ErrInvalidRange), http.StatusBadRequest, "invalid_range"},
		{"domain validation", errs.Mark(errs.New("blank"), errs.ErrDomainValidation), http.StatusBadRequest, "validation_failed"},
		{"booking conflict", errs.Mark(errs.New("overlap"), errs.ErrBookingConflict), http.StatusConflict, "booking_conflict"},
		{"wrapped conflict", errs.Wrap(errs.Mark(errs.New("overlap"), errs.ErrBookingConflict), "create booking"), http.StatusConflict, "booking_conflict"},
		{"precondition", errs.Mark(errs.New("occupied"), errs.ErrPreconditionFailed), http.StatusConflict, "precondition_failed"},
		{"duplicate invoice", errs.Mark(errs.New("again"), errs.ErrDuplicateInvoice), http.StatusConflict, "duplicate_invoice"},
		{"invoice not found", errs.Mark(errs.New("gone"), errs.ErrInvoiceNotFound), http.StatusNotFound, "invoice_not_found"},
		{"email taken", errs.Mark(errs.New("dup"), commands.ErrEmailTaken), http.StatusConflict, "email_taken"},
		{"raw exclusion violation", infra.RepositoryError{Kind: infra.KindExclusionViolated}, http.StatusConflict, "booking_conflict"},
		{"raw duplicate key", infra.RepositoryError{Kind: infra.KindDuplicateKey}, http.StatusConflict, "duplicate"},
		{"raw foreign key", infra.RepositoryError{Kind: infra.KindForeignKeyViolated}, http.StatusConflict, "reference_violated"},
		{"anything else", errors.New("connection reset"), http.StatusInternalServerError, "internal_error"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rec, body := abort(t, tc.err)
			assert.Equal(t, tc.status, rec.Code)
			assert.Equal(t, tc.code, body.Error.Code)
		})
	}

	t.Run("internal errors do not leak", func(t *testing.T) {
		_, body := abort(t, errors.New("pq: password authentication failed for user app"))
		assert.Equal(t, "Internal server error", body.Error.Message)
	})
}

func TestAbortKeepsPublicErrorOnContext(t *testing.T) {
	gin.SetMode(gin.TestMode)
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

	cause := errs.Mark(errs.New("overlap"), errs.ErrBookingConflict)
	httperr.Abort(c, cause)

	require.Len(t, c.Errors, 1)
	last := c.Errors.Last()
	assert.True(t, last.IsType(gin.ErrorTypePublic))
	assert.True(t, errs.Is(last.Err, errs.ErrBookingConflict))

	resp, ok := last.Meta.(httperr.Response)
	require.True(t, ok)
	assert.Equal(t, http.StatusConflict, resp.Status)
	assert.Equal(t, "booking_conflict", resp.Error.Code)
}
