//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"deskbooker/internal/domain/booking"
	"deskbooker/internal/domain/desk"
	"deskbooker/internal/domain/layout"
	"deskbooker/internal/handler/api"
	"deskbooker/internal/handler/middleware"
	"deskbooker/internal/usecase/mapsession"
	"deskbooker/internal/usecase/queries"
	"deskbooker/tests/common/httptest"
	queriesmock "deskbooker/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type MapHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockFetcher *queriesmock.MockAvailabilityQueries
	handler     *api.MapHandler
}

func (s *MapHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockFetcher = queriesmock.NewMockAvailabilityQueries(s.mockCtrl)
	s.handler = api.NewMapHandler(mapsession.NewFactory(s.mockFetcher, time.Second, nil))

	identity := middleware.NewIdentityMiddleware()
	group := s.router.Group("/api/rooms")
	group.Use(identity.RequireIdentity())
	group.GET("/:id/map", s.handler.GetRoomMap)
}

func (s *MapHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestMapHandlerSuite(t *testing.T) {
	suite.Run(t, new(MapHandlerTestSuite))
}

func deskMapLayout() *layout.Layout {
	deskID := int64(1)
	num := 1
	return &layout.Layout{
		RoomID:  2,
		Objects: []layout.Object{{Type: "desk", DeskID: &deskID, DeskNumber: &num}},
	}
}

func (s *MapHandlerTestSuite) TestGetRoomMap() {
	s.Run("room without date lands on dateNotSelected", func() {
		s.mockFetcher.EXPECT().RoomLayout(gomock.Any(), int64(2)).
			Return(deskMapLayout(), nil).Times(1)
		s.mockFetcher.EXPECT().RoomDesks(gomock.Any(), int64(2)).
			Return([]*queries.DeskView{{ID: 1, RoomID: 2, DeskNumber: 1, IsActive: true}}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/rooms/2/map", nil, "42", "dana")

		s.Equal(http.StatusOK, rec.Code)
		s.Contains(rec.Body.String(), `"state":"dateNotSelected"`)
		s.Contains(rec.Body.String(), `"interactive":false`)
	})

	s.Run("full inputs produce an interactive map", func() {
		s.mockFetcher.EXPECT().RoomLayout(gomock.Any(), int64(2)).
			Return(deskMapLayout(), nil).Times(1)
		s.mockFetcher.EXPECT().RoomDesks(gomock.Any(), int64(2)).
			Return([]*queries.DeskView{{ID: 1, RoomID: 2, DeskNumber: 1, IsActive: true}}, nil).Times(1)
		// Setting the date queries with the default full-day period first,
		// then the explicit period parameter narrows it to AM.
		s.mockFetcher.EXPECT().RoomAvailability(gomock.Any(), gomock.Any(), int64(2), gomock.Any(), booking.PeriodFull).
			Return(&queries.AvailabilityView{
				RoomID:        2,
				Statuses:      map[int64]desk.Status{1: desk.StatusUnavailable},
				StatusesByNum: map[int]desk.Status{1: desk.StatusUnavailable},
				Details:       map[int64]*booking.DeskBookingDetail{},
			}, nil).Times(1)
		s.mockFetcher.EXPECT().RoomAvailability(gomock.Any(), gomock.Any(), int64(2), gomock.Any(), booking.PeriodAM).
			Return(&queries.AvailabilityView{
				RoomID:        2,
				Statuses:      map[int64]desk.Status{1: desk.StatusAvailable},
				StatusesByNum: map[int]desk.Status{1: desk.StatusAvailable},
				Details:       map[int64]*booking.DeskBookingDetail{},
			}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet,
			"/api/rooms/2/map?date=2026-03-15&period=am&desk=1", nil, "42", "dana")

		s.Equal(http.StatusOK, rec.Code)
		s.Contains(rec.Body.String(), `"state":"availabilityReady"`)
		s.Contains(rec.Body.String(), `"interactive":true`)
		s.Contains(rec.Body.String(), `"selected_desk":1`)
	})

	s.Run("selecting an unavailable desk returns 409 with the snapshot", func() {
		s.mockFetcher.EXPECT().RoomLayout(gomock.Any(), int64(2)).
			Return(deskMapLayout(), nil).Times(1)
		s.mockFetcher.EXPECT().RoomDesks(gomock.Any(), int64(2)).
			Return([]*queries.DeskView{{ID: 1, RoomID: 2, DeskNumber: 1, IsActive: true}}, nil).Times(1)
		s.mockFetcher.EXPECT().RoomAvailability(gomock.Any(), gomock.Any(), int64(2), gomock.Any(), gomock.Any()).
			Return(&queries.AvailabilityView{
				RoomID:        2,
				Statuses:      map[int64]desk.Status{1: desk.StatusUnavailable},
				StatusesByNum: map[int]desk.Status{1: desk.StatusUnavailable},
				Details:       map[int64]*booking.DeskBookingDetail{},
			}, nil).Times(2)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet,
			"/api/rooms/2/map?date=2026-03-15&period=am&desk=1", nil, "42", "dana")

		s.Equal(http.StatusConflict, rec.Code)
		s.Contains(rec.Body.String(), `"snapshot"`)
	})

	s.Run("missing layout falls back to the desk dropdown", func() {
		s.mockFetcher.EXPECT().RoomLayout(gomock.Any(), int64(2)).
			Return(nil, queries.ErrLayoutNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/rooms/2/map", nil, "42", "dana")

		s.Equal(http.StatusOK, rec.Code)
		s.Contains(rec.Body.String(), `"state":"layoutMissing"`)
		s.Contains(rec.Body.String(), "No room map available yet. Use desk dropdown for now.")
	})

	s.Run("bad date: returns 400", func() {
		s.mockFetcher.EXPECT().RoomLayout(gomock.Any(), int64(2)).
			Return(deskMapLayout(), nil).Times(1)
		s.mockFetcher.EXPECT().RoomDesks(gomock.Any(), int64(2)).
			Return([]*queries.DeskView{{ID: 1, RoomID: 2, DeskNumber: 1, IsActive: true}}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet,
			"/api/rooms/2/map?date=15-03-2026", nil, "42", "dana")
		s.Equal(http.StatusBadRequest, rec.Code)
	})
}
