//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"hotel-backoffice/internal/domain/stay"
	"hotel-backoffice/internal/handler/api"
	reqdto "hotel-backoffice/internal/handler/dto/request"
	resdto "hotel-backoffice/internal/handler/dto/response"
	"hotel-backoffice/internal/handler/validation"
	"hotel-backoffice/internal/pkg/errs"
	"hotel-backoffice/internal/usecase/commands"
	"hotel-backoffice/internal/usecase/queries"
	"hotel-backoffice/tests/common/builder"
	"hotel-backoffice/tests/common/httptest"
	"hotel-backoffice/tests/common/testutil"
	commandsmock "hotel-backoffice/tests/mock/commands"
	queriesmock "hotel-backoffice/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type RoomHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockRoomCommands
	mockQueries  *queriesmock.MockRoomQueries
}

func (s *RoomHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	validation.Register()
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockRoomCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockRoomQueries(s.mockCtrl)
	h := api.NewRoomHandler(s.mockCommands, s.mockQueries)

	s.router.POST("/rooms", h.Create)
	s.router.PUT("/rooms/:id/price", h.UpdatePrice)
	s.router.PUT("/rooms/:id/cleaning", h.UpdateCleaningStatus)
	s.router.GET("/rooms/:id/availability", h.Availability)
}

func (s *RoomHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestRoomHandlerSuite(t *testing.T) {
	suite.Run(t, new(RoomHandlerTestSuite))
}

func (s *RoomHandlerTestSuite) TestCreate() {
	rb := builder.NewRoomBuilder()
	reqBody := rb.BuildCreateRequestDTO()
	view := rb.BuildView()

	s.Run("success: returns 201", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, req reqdto.CreateRoomRequest) (uuid.UUID, error) {
				s.Equal("101", req.Name)
				s.True(req.PricePerNight.Equal(decimal.RequireFromString("100")))
				return view.ID, nil
			})
		s.mockQueries.EXPECT().GetByID(gomock.Any(), view.ID).Return(view, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/rooms", reqBody, "")

		var response resdto.RoomResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal("100.00", response.PricePerNight)
		s.Equal("clean", response.CleaningStatus)
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		testCases := []struct {
			name   string
			mutate func(m map[string]any)
		}{
			{name: "missing name", mutate: testutil.Field("name", nil)},
			{name: "missing category", mutate: testutil.Field("category", nil)},
			{name: "negative price", mutate: testutil.Field("price_per_night", "-0.01")},
			{name: "price not a number", mutate: testutil.Field("price_per_night", "cheap")},
		}
		for _, tc := range testCases {
			s.Run(tc.name, func() {
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/rooms", testutil.DtoMap(s.T(), reqBody, tc.mutate), "")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
			})
		}
	})

	s.Run("boundary: free room is allowed", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any()).Return(view.ID, nil)
		s.mockQueries.EXPECT().GetByID(gomock.Any(), view.ID).Return(view, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/rooms",
			testutil.DtoMap(s.T(), reqBody, testutil.Field("price_per_night", "0")), "")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, nil)
	})

	s.Run("error: name taken", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any()).
			Return(uuid.Nil, errs.Mark(errs.New("dup"), commands.ErrRoomNameTaken))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/rooms", reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "Room name already in use")
	})
}

func (s *RoomHandlerTestSuite) TestUpdateCleaningStatus() {
	view := builder.NewRoomBuilder().AsDirty().BuildView()
	url := "/rooms/" + view.ID.String() + "/cleaning"

	s.Run("success", func() {
		req := reqdto.UpdateCleaningStatusRequest{CleaningStatus: "dirty"}
		s.mockCommands.EXPECT().SetCleaningStatus(gomock.Any(), view.ID, req).Return(nil)
		s.mockQueries.EXPECT().GetByID(gomock.Any(), view.ID).Return(view, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, req, "")

		var response resdto.RoomResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("dirty", response.CleaningStatus)
	})

	s.Run("error: unknown status", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url,
			reqdto.UpdateCleaningStatusRequest{CleaningStatus: "sparkling"}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})

	s.Run("error: unknown room", func() {
		req := reqdto.UpdateCleaningStatusRequest{CleaningStatus: "clean"}
		s.mockCommands.EXPECT().SetCleaningStatus(gomock.Any(), view.ID, req).
			Return(errs.Mark(errs.New("missing"), errs.ErrRoomNotFound))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, req, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Room not found")
	})
}

func (s *RoomHandlerTestSuite) TestAvailability() {
	roomID := uuid.New()
	base := "/rooms/" + roomID.String() + "/availability"

	s.Run("success: free room has no conflicts", func() {
		dates, err := stay.ParseDateRange("2024-03-04", "2024-03-08")
		s.Require().NoError(err)
		s.mockQueries.EXPECT().Availability(gomock.Any(), roomID, dates).Return(&queries.AvailabilityView{
			RoomID:    roomID,
			Start:     dates.Start(),
			End:       dates.End(),
			Available: true,
			Nights:    4,
		}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, base+"?start=2024-03-04&end=2024-03-08", nil, "")

		var response resdto.AvailabilityResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.True(response.Available)
		s.Equal("2024-03-04", response.Start)
		s.Equal("2024-03-08", response.End)
		s.Equal(4, response.Nights)
		s.NotNil(response.ConflictIDs)
		s.Empty(response.ConflictIDs)
	})

	s.Run("error: empty or reversed range", func() {
		for _, q := range []string{"?start=2024-03-04&end=2024-03-04", "?start=2024-03-08&end=2024-03-04"} {
			rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, base+q, nil, "")
			httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid date range")
		}
	})

	s.Run("error: missing end", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, base+"?start=2024-03-04", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})
}
