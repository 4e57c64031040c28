//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"stayline/internal/domain/user"
	"stayline/internal/handler/api"
	resdto "stayline/internal/handler/dto/response"
	"stayline/internal/usecase/commands"
	"stayline/tests/common/httptest"
	commandsmock "stayline/tests/mock/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AuthHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockAuthCommands
	handler      *api.AuthHandler

	userID uuid.UUID
}

func (s *AuthHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockAuthCommands(s.mockCtrl)
	s.handler = api.NewAuthHandler(s.mockCommands)
	s.userID = uuid.New()

	s.router.POST("/auth/register", s.handler.Register)
	s.router.POST("/auth/login", s.handler.Login)
	s.router.GET("/auth/me", func(c *gin.Context) {
		// Mock middleware behavior for /auth/me
		if c.GetHeader("Authorization") != "" {
			c.Set("user_id", s.userID)
		}
		s.handler.Me(c)
	})
}

func (s *AuthHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAuthHandlerSuite(t *testing.T) {
	suite.Run(t, new(AuthHandlerTestSuite))
}

func (s *AuthHandlerTestSuite) sampleUser() *user.User {
	email, err := user.NewEmail("guest@example.com")
	s.Require().NoError(err)
	return user.ReconstructUser(s.userID, email, "hash", user.RoleGuest)
}

func (s *AuthHandlerTestSuite) TestRegister() {
	url := "/auth/register"
	body := map[string]any{
		"email":    "guest@example.com",
		"password": "password123",
		"role":     "guest",
	}

	s.Run("success: returns 201 Created with token", func() {
		u := s.sampleUser()
		s.mockCommands.EXPECT().Register(gomock.Any(), commands.RegisterRequest{
			Email: "guest@example.com", Password: "password123", Role: "guest",
		}).Return(&commands.AuthResult{Token: "issued-token", User: u}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")

		var response resdto.AuthResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal("issued-token", response.Token)
		s.Equal("guest@example.com", response.User.Email)
	})

	s.Run("error: 409 Conflict for duplicate email", func() {
		s.mockCommands.EXPECT().Register(gomock.Any(), gomock.Any()).
			Return(nil, commands.ErrEmailAlreadyUsed).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "already registered")
	})

	s.Run("error: 400 Bad Request on validation failures", func() {
		cases := []struct {
			name   string
			mutate func(m map[string]any)
		}{
			{"invalid email", func(m map[string]any) { m["email"] = "not-an-email" }},
			{"short password", func(m map[string]any) { m["password"] = "short" }},
			{"unknown role", func(m map[string]any) { m["role"] = "manager" }},
			{"missing role", func(m map[string]any) { delete(m, "role") }},
		}

		for _, tc := range cases {
			s.Run(tc.name, func() {
				bad := map[string]any{}
				for k, v := range body {
					bad[k] = v
				}
				tc.mutate(bad)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, bad, "")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
			})
		}
	})
}

func (s *AuthHandlerTestSuite) TestLogin() {
	url := "/auth/login"
	body := map[string]any{"email": "guest@example.com", "password": "password123"}

	s.Run("success: returns 200 OK with token", func() {
		u := s.sampleUser()
		s.mockCommands.EXPECT().Login(gomock.Any(), "guest@example.com", "password123").
			Return(&commands.AuthResult{Token: "issued-token", User: u}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")

		var response resdto.AuthResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("issued-token", response.Token)
	})

	s.Run("error: 401 Unauthorized for bad credentials", func() {
		s.mockCommands.EXPECT().Login(gomock.Any(), "guest@example.com", "password123").
			Return(nil, commands.ErrInvalidCredentials).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Invalid email or password")
	})
}

func (s *AuthHandlerTestSuite) TestMe() {
	url := "/auth/me"

	s.Run("success: returns the authenticated user", func() {
		u := s.sampleUser()
		s.mockCommands.EXPECT().CurrentUser(gomock.Any(), s.userID).Return(u, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "token")

		var response resdto.UserResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(s.userID, response.ID)
		s.Equal("guest", response.Role)
	})

	s.Run("error: 401 Unauthorized without principal", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Authentication required")
	})

	s.Run("error: 401 Unauthorized when account is gone", func() {
		s.mockCommands.EXPECT().CurrentUser(gomock.Any(), s.userID).
			Return(nil, commands.ErrUserNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Account no longer exists")
	})
}
