package api

import (
	"net/http"
	"os"
	"testing"
	"time"

	"github.com/fsdevblog/groph-points/internal/domain"
	"github.com/fsdevblog/groph-points/internal/logger"
	"github.com/fsdevblog/groph-points/internal/service"
	"github.com/fsdevblog/groph-points/internal/transport/api/mocks"
	"github.com/fsdevblog/groph-points/internal/transport/api/testutils"
	"github.com/fsdevblog/groph-points/internal/transport/api/tokens"
	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/suite"
)

type AuthHandlerTestSuite struct {
	suite.Suite
	router          *gin.Engine
	mockUserService *mocks.MockUserServicer
	jwtSecret       []byte
}

func TestAuthHandlerSuite(t *testing.T) {
	suite.Run(t, new(AuthHandlerTestSuite))
}

func (s *AuthHandlerTestSuite) SetupTest() {
	mockCtrl := gomock.NewController(s.T())
	defer mockCtrl.Finish()

	s.mockUserService = mocks.NewMockUserServicer(mockCtrl)
	s.jwtSecret = []byte("super secret key")

	s.router = New(RouterArgs{
		Logger:       logger.New(os.Stdout),
		UserService:  s.mockUserService,
		JWTSecretKey: s.jwtSecret,
	})
}

func (s *AuthHandlerTestSuite) TestRegister() {
	validArgs := service.RegisterUserArgs{Username: "newuser", Password: "password1"}
	takenArgs := service.RegisterUserArgs{Username: "taken", Password: "password1"}

	s.mockUserService.EXPECT().
		Register(gomock.Any(), validArgs).
		Return(&domain.User{ID: 1, Username: validArgs.Username, Role: domain.RoleRegular}, "jwt-token", nil).
		Times(1)
	s.mockUserService.EXPECT().
		Register(gomock.Any(), takenArgs).
		Return(nil, "", domain.ErrDuplicateKey).
		Times(1)

	authToken, tokenErr := tokens.GenerateUserJWT(1, string(domain.RoleRegular), time.Hour, s.jwtSecret)
	s.Require().NoError(tokenErr)

	cases := []struct {
		name       string
		payload    any
		jwtToken   string
		wantStatus int
	}{
		{
			name:       "all ok",
			payload:    gin.H{"username": validArgs.Username, "password": validArgs.Password},
			wantStatus: http.StatusCreated,
		}, {
			name:       "username taken",
			payload:    gin.H{"username": takenArgs.Username, "password": takenArgs.Password},
			wantStatus: http.StatusConflict,
		}, {
			name:       "password too short",
			payload:    gin.H{"username": "short", "password": "123"},
			wantStatus: http.StatusBadRequest,
		}, {
			// авторизованному юзеру регистрация недоступна
			name:       "already authorized",
			payload:    gin.H{"username": validArgs.Username, "password": validArgs.Password},
			jwtToken:   authToken,
			wantStatus: http.StatusUnauthorized,
		},
	}
	for _, t := range cases {
		s.Run(t.name, func() {
			var reqOpts []func(*testutils.RequestOptions)
			if t.jwtToken != "" {
				reqOpts = append(reqOpts, testutils.WithAuth(t.jwtToken))
			}
			res, err := testutils.MakeJSONRequest(testutils.RequestArgs{
				Router: s.router,
				Method: http.MethodPost,
				URL:    RouteGroup + RegisterRoute,
			}, t.payload, reqOpts...)
			s.Require().NoError(err)

			defer func() {
				closeErr := res.Body.Close()
				s.Require().NoError(closeErr)
			}()

			s.Equal(t.wantStatus, res.StatusCode)
		})
	}
}

func (s *AuthHandlerTestSuite) TestLogin() {
	okArgs := service.LoginUserArgs{Username: "someuser", Password: "password1"}
	wrongArgs := service.LoginUserArgs{Username: "someuser", Password: "wrongpass"}

	s.mockUserService.EXPECT().
		Login(gomock.Any(), okArgs).
		Return(&domain.User{ID: 1, Username: okArgs.Username, Role: domain.RoleRegular}, "jwt-token", nil).
		Times(1)
	s.mockUserService.EXPECT().
		Login(gomock.Any(), wrongArgs).
		Return(nil, "", domain.ErrPasswordMissMatch).
		Times(1)

	cases := []struct {
		name       string
		payload    any
		wantStatus int
	}{
		{
			name:       "all ok",
			payload:    gin.H{"username": okArgs.Username, "password": okArgs.Password},
			wantStatus: http.StatusOK,
		}, {
			name:       "wrong password",
			payload:    gin.H{"username": wrongArgs.Username, "password": wrongArgs.Password},
			wantStatus: http.StatusUnauthorized,
		}, {
			name:       "empty body",
			payload:    gin.H{},
			wantStatus: http.StatusBadRequest,
		},
	}
	for _, t := range cases {
		s.Run(t.name, func() {
			res, err := testutils.MakeJSONRequest(testutils.RequestArgs{
				Router: s.router,
				Method: http.MethodPost,
				URL:    RouteGroup + LoginRoute,
			}, t.payload)
			s.Require().NoError(err)

			defer func() {
				closeErr := res.Body.Close()
				s.Require().NoError(closeErr)
			}()

			s.Equal(t.wantStatus, res.StatusCode)
		})
	}
}
