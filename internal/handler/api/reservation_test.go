//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"stayline/internal/domain/user"
	"stayline/internal/handler/api"
	resdto "stayline/internal/handler/dto/response"
	"stayline/internal/usecase/commands"
	"stayline/internal/usecase/queries"
	"stayline/tests/common/httptest"
	commandsmock "stayline/tests/mock/commands"
	queriesmock "stayline/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ReservationHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockReservationCommands
	mockQueries  *queriesmock.MockReservationQueries
	handler      *api.ReservationHandler

	guestID uuid.UUID
}

func (s *ReservationHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockReservationCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockReservationQueries(s.mockCtrl)
	s.handler = api.NewReservationHandler(s.mockCommands, s.mockQueries)
	s.guestID = uuid.New()

	// Mock middleware behavior: an auth token means an authenticated guest.
	authed := func(next gin.HandlerFunc) gin.HandlerFunc {
		return func(c *gin.Context) {
			if c.GetHeader("Authorization") != "" {
				c.Set("user_id", s.guestID)
				c.Set("user_role", user.RoleGuest)
			}
			next(c)
		}
	}

	s.router.POST("/reservations", authed(s.handler.Book))
	s.router.GET("/reservations", authed(s.handler.GetMyReservations))
	s.router.GET("/reservations/:id", authed(s.handler.GetReservation))
	s.router.DELETE("/reservations/:id", authed(s.handler.Cancel))
}

func (s *ReservationHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestReservationHandlerSuite(t *testing.T) {
	suite.Run(t, new(ReservationHandlerTestSuite))
}

func (s *ReservationHandlerTestSuite) sampleView() *queries.ReservationView {
	return &queries.ReservationView{
		ID:            uuid.New(),
		GuestID:       s.guestID,
		HotelID:       uuid.New(),
		RoomTypeID:    uuid.New(),
		Unit:          101,
		CheckIn:       time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC),
		CheckOut:      time.Date(2026, 10, 5, 0, 0, 0, 0, time.UTC),
		Nights:        4,
		Adults:        2,
		TotalCents:    60000,
		PaymentStatus: "unpaid",
		Status:        "confirmed",
		CreatedAt:     time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC),
	}
}

func (s *ReservationHandlerTestSuite) bookBody() map[string]any {
	return map[string]any{
		"roomTypeId": uuid.New().String(),
		"checkIn":    "2026-10-01",
		"checkOut":   "2026-10-05",
		"adults":     2,
	}
}

func (s *ReservationHandlerTestSuite) TestBook() {
	url := "/reservations"

	s.Run("success: returns 201 Created with allocated unit", func() {
		view := s.sampleView()
		s.mockCommands.EXPECT().Book(gomock.Any(), gomock.Any()).Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, s.bookBody(), "token")

		var response resdto.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(view.ID, response.ID)
		s.Equal(101, response.Unit)
		s.Equal("2026-10-01", response.CheckIn)
		s.Equal("2026-10-05", response.CheckOut)
	})

	s.Run("error: 400 Bad Request on malformed body", func() {
		body := s.bookBody()
		body["adults"] = 0

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "unknown room type",
				commandsError:  commands.ErrRoomTypeNotFound,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Room type not found",
			},
			{
				name:           "invalid stay range",
				commandsError:  commands.ErrInvalidStay,
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "",
			},
			{
				name:           "no free unit",
				commandsError:  commands.ErrNoAvailability,
				expectedStatus: http.StatusConflict,
				expectedMsg:    "No unit available",
			},
			{
				name:           "empty unit pool",
				commandsError:  commands.ErrUnitPoolEmpty,
				expectedStatus: http.StatusConflict,
				expectedMsg:    "No unit available",
			},
			{
				name:           "admission gate busy",
				commandsError:  commands.ErrAdmissionBusy,
				expectedStatus: http.StatusServiceUnavailable,
				expectedMsg:    "busy",
			},
			{
				name:           "persist failure",
				commandsError:  commands.ErrPersistenceFailure,
				expectedStatus: http.StatusServiceUnavailable,
				expectedMsg:    "retry",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Book(gomock.Any(), gomock.Any()).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, s.bookBody(), "token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

func (s *ReservationHandlerTestSuite) TestCancel() {
	reservationID := uuid.New()
	url := "/reservations/" + reservationID.String()

	s.Run("success: returns 204 No Content", func() {
		s.mockCommands.EXPECT().
			Cancel(gomock.Any(), reservationID, s.guestID, user.RoleGuest).
			Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "token")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 400 Bad Request on malformed ID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/reservations/not-a-uuid", nil, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid reservation ID")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
		}{
			{"unknown reservation", commands.ErrReservationNotFound, http.StatusNotFound},
			{"not the owner", commands.ErrNotReservationOwner, http.StatusForbidden},
			{"already cancelled", commands.ErrAlreadyCancelled, http.StatusConflict},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().
					Cancel(gomock.Any(), reservationID, s.guestID, user.RoleGuest).
					Return(tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, "")
			})
		}
	})
}

func (s *ReservationHandlerTestSuite) TestGetReservation() {
	s.Run("success: returns 200 OK", func() {
		view := s.sampleView()
		s.mockQueries.EXPECT().GetByID(gomock.Any(), view.ID).Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reservations/"+view.ID.String(), nil, "token")

		var response resdto.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(view.ID, response.ID)
		s.Equal("confirmed", response.Status)
	})

	s.Run("error: 404 Not Found for unknown reservation", func() {
		id := uuid.New()
		s.mockQueries.EXPECT().GetByID(gomock.Any(), id).
			Return(nil, queries.ErrReservationNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reservations/"+id.String(), nil, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Reservation not found")
	})
}

func (s *ReservationHandlerTestSuite) TestGetMyReservations() {
	s.Run("success: returns the guest's reservations", func() {
		view := s.sampleView()
		s.mockQueries.EXPECT().ListByGuest(gomock.Any(), s.guestID).
			Return([]*queries.ReservationView{view}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reservations", nil, "token")

		var response []resdto.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response, 1)
		s.Equal(view.ID, response[0].ID)
	})

	s.Run("success: empty list when guest has none", func() {
		s.mockQueries.EXPECT().ListByGuest(gomock.Any(), s.guestID).
			Return(nil, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reservations", nil, "token")
		s.Equal(http.StatusOK, rec.Code)
	})
}
