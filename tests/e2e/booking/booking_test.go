//go:build e2e

package booking_test

import (
	"fmt"
	"net/http"
	"sync"
	"testing"

	"hotel-backoffice/internal/domain/user"
	"hotel-backoffice/internal/handler/dto/response"
	"hotel-backoffice/tests/common/authtest"
	"hotel-backoffice/tests/common/dbtest"
	"hotel-backoffice/tests/common/httptest"
	"hotel-backoffice/tests/e2e"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const bookingsURL = "/api/bookings"

type bookingSuite struct {
	e2e.SharedSuite
	jwt *authtest.JWTHelper

	operatorToken string
	viewerToken   string
	roomID        uuid.UUID
}

func TestBookingSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(bookingSuite))
}

func (s *bookingSuite) SetupSuite() {
	s.SharedSuite.SetupSuite()
	s.jwt = authtest.NewJWTHelper(s.Config.JWT)
}

func (s *bookingSuite) SetupTest() {
	s.SharedSuite.SetupTest()
	s.seed()
}

func (s *bookingSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()
	s.seed()
}

func (s *bookingSuite) seed() {
	t := s.T()
	operatorID := dbtest.CreateTestUser(t, s.DB, "operator@example.com", string(user.RoleOperator))
	viewerID := dbtest.CreateTestUser(t, s.DB, "viewer@example.com", string(user.RoleViewer))
	s.operatorToken = s.jwt.GenerateToken(t, operatorID, user.RoleOperator)
	s.viewerToken = s.jwt.GenerateToken(t, viewerID, user.RoleViewer)
	s.roomID = dbtest.CreateTestRoom(t, s.DB, "101", "100.00")
}

func (s *bookingSuite) bookingBody(start, end string, extra ...func(map[string]any)) map[string]any {
	body := map[string]any{
		"room_id":     s.roomID,
		"client_name": "Jane Doe",
		"start_date":  start,
		"end_date":    end,
	}
	for _, f := range extra {
		f(body)
	}
	return body
}

func (s *bookingSuite) createBooking(t *testing.T, start, end string, extra ...func(map[string]any)) response.BookingResponse {
	t.Helper()
	w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, s.bookingBody(start, end, extra...), s.operatorToken)
	var resp response.BookingResponse
	httptest.AssertSuccessResponse(t, w, http.StatusCreated, &resp)
	return resp
}

func (s *bookingSuite) changeStatus(t *testing.T, id uuid.UUID, status string) int {
	t.Helper()
	w := httptest.PerformRequest(t, s.Router, http.MethodPut, fmt.Sprintf("%s/%s/status", bookingsURL, id),
		map[string]any{"status": status}, s.operatorToken)
	return w.Code
}

func (s *bookingSuite) TestCreate() {
	s.Run("stores the booking at the room price", func() {
		t := s.T()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, s.bookingBody("2024-03-01", "2024-03-04"), s.operatorToken)

		var resp response.BookingResponse
		httptest.AssertSuccessResponse(t, w, http.StatusCreated, &resp)
		httptest.AssertHeaders(t, w, map[string]string{"Location": "/api/bookings/" + resp.ID.String()})
		assert.Equal(t, "reserved", resp.Status)
		assert.Equal(t, 3, resp.Nights)
		assert.Equal(t, "100.00", resp.PricePerNight)
		assert.Equal(t, "101", resp.RoomName)
	})

	s.Run("overlapping dates are rejected", func() {
		t := s.T()
		s.createBooking(t, "2024-03-01", "2024-03-04")

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, s.bookingBody("2024-03-03", "2024-03-05"), s.operatorToken)
		httptest.AssertErrorResponse(t, w, http.StatusConflict, "Room is already booked for these dates")
	})

	s.Run("back-to-back stays share the boundary day", func() {
		t := s.T()
		s.createBooking(t, "2024-03-01", "2024-03-04")
		s.createBooking(t, "2024-03-04", "2024-03-06")
		s.createBooking(t, "2024-02-27", "2024-03-01")
	})

	s.Run("liberated bookings do not hold the room", func() {
		t := s.T()
		first := s.createBooking(t, "2024-03-01", "2024-03-04")
		require.Equal(t, http.StatusOK, s.changeStatus(t, first.ID, "liberated"))

		s.createBooking(t, "2024-03-02", "2024-03-03")

		assert.Equal(t, http.StatusConflict, s.changeStatus(t, first.ID, "reserved"))
	})

	s.Run("zero-night range is rejected", func() {
		t := s.T()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, s.bookingBody("2024-03-01", "2024-03-01"), s.operatorToken)
		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "Invalid date range")
	})

	s.Run("unknown room", func() {
		t := s.T()
		body := s.bookingBody("2024-03-01", "2024-03-02", func(m map[string]any) { m["room_id"] = uuid.New() })
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, body, s.operatorToken)
		httptest.AssertErrorResponse(t, w, http.StatusNotFound, "Room not found")
	})

	s.Run("viewers cannot book", func() {
		t := s.T()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, s.bookingBody("2024-03-01", "2024-03-02"), s.viewerToken)
		httptest.AssertErrorResponse(t, w, http.StatusForbidden, "Insufficient permissions")
	})
}

func (s *bookingSuite) TestConcurrentCreateOnlyOneWins() {
	t := s.T()
	const workers = 8

	codes := make([]int, workers)
	var wg sync.WaitGroup
	for i := range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, s.bookingBody("2024-05-01", "2024-05-03"), s.operatorToken)
			codes[i] = w.Code
		}()
	}
	wg.Wait()

	created := 0
	for _, code := range codes {
		switch code {
		case http.StatusCreated:
			created++
		case http.StatusConflict:
		default:
			t.Errorf("unexpected status %d", code)
		}
	}
	assert.Equal(t, 1, created)
}

func (s *bookingSuite) TestUpdateDates() {
	s.Run("moving within its own dates is allowed", func() {
		t := s.T()
		b := s.createBooking(t, "2024-03-01", "2024-03-04")

		w := httptest.PerformRequest(t, s.Router, http.MethodPut, bookingsURL+"/"+b.ID.String(),
			map[string]any{"end_date": "2024-03-05"}, s.operatorToken)

		var resp response.BookingResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &resp)
		assert.Equal(t, 4, resp.Nights)
		assert.Equal(t, "2024-03-05", resp.EndDate)
	})

	s.Run("moving onto another booking is rejected", func() {
		t := s.T()
		b := s.createBooking(t, "2024-03-01", "2024-03-04")
		s.createBooking(t, "2024-03-04", "2024-03-06")

		w := httptest.PerformRequest(t, s.Router, http.MethodPut, bookingsURL+"/"+b.ID.String(),
			map[string]any{"end_date": "2024-03-05"}, s.operatorToken)
		httptest.AssertErrorResponse(t, w, http.StatusConflict, "Room is already booked for these dates")
	})
}

func (s *bookingSuite) TestStayLifecycle() {
	t := s.T()
	b := s.createBooking(t, "2024-03-01", "2024-03-04", func(m map[string]any) { m["email"] = "guest@example.com" })
	bookingPath := bookingsURL + "/" + b.ID.String()

	require.Equal(t, http.StatusOK, s.changeStatus(t, b.ID, "occupied"))
	assert.Equal(t, http.StatusConflict, s.changeStatus(t, b.ID, "occupied"), "same-status move")

	w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingPath+"/invoice",
		map[string]any{"payment_method": "card"}, s.operatorToken)
	httptest.AssertErrorResponse(t, w, http.StatusConflict, "checked out")

	w = httptest.PerformRequest(t, s.Router, http.MethodPost, bookingPath+"/consumptions",
		map[string]any{"description": "Minibar", "amount": "30.00"}, s.operatorToken)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = httptest.PerformRequest(t, s.Router, http.MethodGet, bookingPath+"/quote", nil, s.viewerToken)
	var quote response.QuoteResponse
	httptest.AssertSuccessResponse(t, w, http.StatusOK, &quote)
	assert.Equal(t, "330.00", quote.Subtotal)
	assert.Equal(t, "69.30", quote.Tax)
	assert.Equal(t, "399.30", quote.Total)

	require.Equal(t, http.StatusOK, s.changeStatus(t, b.ID, "checked-out"))

	var cleaning string
	require.NoError(t, s.DB.QueryRow(t.Context(), "SELECT cleaning_status FROM rooms WHERE id = $1", s.roomID).Scan(&cleaning))
	assert.Equal(t, "dirty", cleaning)

	w = httptest.PerformRequest(t, s.Router, http.MethodPost, bookingPath+"/invoice",
		map[string]any{"payment_method": "card"}, s.operatorToken)
	var inv response.InvoiceResponse
	httptest.AssertSuccessResponse(t, w, http.StatusCreated, &inv)
	assert.Regexp(t, `^INV-\d{4}-\d{6}$`, inv.Number)
	assert.Equal(t, "330.00", inv.Subtotal)
	assert.Equal(t, "69.30", inv.Tax)
	assert.Equal(t, "399.30", inv.Total)
	assert.Equal(t, "card", inv.PaymentMethod)
	require.Len(t, inv.LineItems, 2)
	assert.Equal(t, "stay", inv.LineItems[0].Kind)
	assert.Equal(t, "300.00", inv.LineItems[0].Amount)

	w = httptest.PerformRequest(t, s.Router, http.MethodPost, bookingPath+"/invoice",
		map[string]any{"payment_method": "cash"}, s.operatorToken)
	httptest.AssertErrorResponse(t, w, http.StatusConflict, "already invoiced")

	w = httptest.PerformRequest(t, s.Router, http.MethodPost, bookingPath+"/consumptions",
		map[string]any{"description": "Late snack", "amount": "5.00"}, s.operatorToken)
	assert.Equal(t, http.StatusConflict, w.Code, w.Body.String())

	var queued int
	require.NoError(t, s.DB.QueryRow(t.Context(),
		"SELECT COUNT(*) FROM notification_jobs WHERE kind = 'invoice_issued' AND topic = 'guest@example.com' AND status = 'queued'").Scan(&queued))
	assert.Equal(t, 1, queued)

	w = httptest.PerformRequest(t, s.Router, http.MethodGet, bookingPath, nil, s.viewerToken)
	var stored response.BookingResponse
	httptest.AssertSuccessResponse(t, w, http.StatusOK, &stored)
	require.NotNil(t, stored.InvoiceID)
	assert.Equal(t, inv.ID, *stored.InvoiceID)

	w = httptest.PerformRequest(t, s.Router, http.MethodDelete, bookingPath, nil, s.operatorToken)
	assert.Equal(t, http.StatusConflict, w.Code, w.Body.String())
}

func (s *bookingSuite) TestDelete() {
	s.Run("reserved booking is removed", func() {
		t := s.T()
		b := s.createBooking(t, "2024-03-01", "2024-03-04")

		w := httptest.PerformRequest(t, s.Router, http.MethodDelete, bookingsURL+"/"+b.ID.String(), nil, s.operatorToken)
		require.Equal(t, http.StatusNoContent, w.Code, w.Body.String())

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, bookingsURL+"/"+b.ID.String(), nil, s.operatorToken)
		httptest.AssertErrorResponse(t, w, http.StatusNotFound, "Booking not found")
	})

	s.Run("occupied booking stays", func() {
		t := s.T()
		id := dbtest.CreateTestBooking(t, s.DB, s.roomID, "2024-03-01", "2024-03-04", "occupied")

		w := httptest.PerformRequest(t, s.Router, http.MethodDelete, bookingsURL+"/"+id.String(), nil, s.operatorToken)
		httptest.AssertErrorResponse(t, w, http.StatusConflict, "cannot be deleted")
	})
}

func (s *bookingSuite) TestAvailability() {
	t := s.T()
	held := dbtest.CreateTestBooking(t, s.DB, s.roomID, "2024-03-01", "2024-03-04", "reserved")
	dbtest.CreateTestBooking(t, s.DB, s.roomID, "2024-03-10", "2024-03-12", "liberated")

	tests := []struct {
		name      string
		start     string
		end       string
		available bool
	}{
		{name: "overlapping a reservation", start: "2024-03-03", end: "2024-03-05", available: false},
		{name: "starting on the checkout day", start: "2024-03-04", end: "2024-03-06", available: true},
		{name: "overlapping a liberated booking", start: "2024-03-10", end: "2024-03-11", available: true},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			url := fmt.Sprintf("/api/rooms/%s/availability?start=%s&end=%s", s.roomID, tt.start, tt.end)
			w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, url, nil, s.viewerToken)

			var resp response.AvailabilityResponse
			httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &resp)
			assert.Equal(s.T(), tt.available, resp.Available)
			if !tt.available {
				assert.Equal(s.T(), []uuid.UUID{held}, resp.ConflictIDs)
			}
		})
	}
}
