package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"mindwell/config"
	"mindwell/infras/jwt"
	jwtMocks "mindwell/infras/jwt/mocks"
	"mindwell/infras/otel/mocks"
	"mindwell/internal/domains/auth/model/dto"
	"mindwell/internal/domains/auth/service"
	userMocks "mindwell/internal/domains/user/mocks"
	userModel "mindwell/internal/domains/user/model"
	"mindwell/shared/failure"
	"mindwell/shared/password"
)

func newAuthService(t *testing.T) (service.Auth, *userMocks.MockUser, *jwtMocks.MockJWT) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockUserRepo := userMocks.NewMockUser(ctrl)
	mockJWT := jwtMocks.NewMockJWT(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}

	svc := service.New(mockUserRepo, cfg, mockOtel, mockJWT)

	return svc, mockUserRepo, mockJWT
}

func hashedPassword(t *testing.T, plain string) string {
	t.Helper()

	hashed, err := password.Hash(plain)
	assert.NoError(t, err)

	return hashed
}

func TestAuthService_Register(t *testing.T) {
	tests := []struct {
		name      string
		req       dto.RegisterRequest
		setupMock func(repo *userMocks.MockUser)
		wantErr   bool
		wantCode  int
	}{
		{
			name: "successful registration normalizes timezone",
			req: dto.RegisterRequest{
				Email:    "patient@example.com",
				Password: "secret-password",
				Timezone: "Pacific Time (US & Canada)",
			},
			setupMock: func(repo *userMocks.MockUser) {
				repo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)

				repo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, u userModel.User) error {
						assert.Equal(t, "patient@example.com", u.Email)
						assert.Equal(t, "America/Los_Angeles", u.Timezone)
						assert.NotEqual(t, "secret-password", u.Password)

						return nil
					})
			},
			wantErr: false,
		},
		{
			name: "email already registered",
			req: dto.RegisterRequest{
				Email:    "patient@example.com",
				Password: "secret-password",
			},
			setupMock: func(repo *userMocks.MockUser) {
				repo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)
			},
			wantErr:  true,
			wantCode: http.StatusBadRequest,
		},
		{
			name: "repository error",
			req: dto.RegisterRequest{
				Email:    "patient@example.com",
				Password: "secret-password",
			},
			setupMock: func(repo *userMocks.MockUser) {
				repo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, mockUserRepo, _ := newAuthService(t)
			tt.setupMock(mockUserRepo)

			err := svc.Register(context.Background(), tt.req)

			if tt.wantErr {
				assert.Error(t, err)

				if tt.wantCode != 0 {
					assert.Equal(t, tt.wantCode, failure.GetCode(err))
				}
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestAuthService_Login(t *testing.T) {
	validUser := userModel.User{
		ID:       "user-id-123",
		Email:    "patient@example.com",
		Level:    "patient",
		Timezone: "Mountain Time (US & Canada)",
		Active:   true,
	}

	tokenPair := &jwt.TokenPair{
		AccessToken:  "access-token",
		RefreshToken: "refresh-token",
		TokenType:    "Bearer",
		ExpiresIn:    900,
	}

	tests := []struct {
		name      string
		req       dto.LoginRequest
		setupMock func(repo *userMocks.MockUser, jwtSvc *jwtMocks.MockJWT)
		wantErr   bool
		check     func(t *testing.T, res dto.LoginResponse)
	}{
		{
			name: "successful login returns normalized timezone",
			req: dto.LoginRequest{
				Email:    "patient@example.com",
				Password: "correct-password",
			},
			setupMock: func(repo *userMocks.MockUser, jwtSvc *jwtMocks.MockJWT) {
				user := validUser
				user.Password = hashedPassword(t, "correct-password")

				repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(user, nil)

				jwtSvc.EXPECT().
					GenerateTokenPair(user.ID, user.Email, user.Level).
					Return(tokenPair, nil)

				repo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr: false,
			check: func(t *testing.T, res dto.LoginResponse) {
				assert.Equal(t, "access-token", res.AccessToken)
				assert.Equal(t, "America/Denver", res.Timezone)
			},
		},
		{
			name: "wrong password",
			req: dto.LoginRequest{
				Email:    "patient@example.com",
				Password: "wrong-password",
			},
			setupMock: func(repo *userMocks.MockUser, jwtSvc *jwtMocks.MockJWT) {
				user := validUser
				user.Password = hashedPassword(t, "correct-password")

				repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(user, nil)
			},
			wantErr: true,
		},
		{
			name: "unknown email",
			req: dto.LoginRequest{
				Email:    "nobody@example.com",
				Password: "correct-password",
			},
			setupMock: func(repo *userMocks.MockUser, jwtSvc *jwtMocks.MockJWT) {
				repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(userModel.User{}, errors.New("sql: no rows in result set"))
			},
			wantErr: true,
		},
		{
			name: "deactivated account",
			req: dto.LoginRequest{
				Email:    "patient@example.com",
				Password: "correct-password",
			},
			setupMock: func(repo *userMocks.MockUser, jwtSvc *jwtMocks.MockJWT) {
				user := validUser
				user.Password = hashedPassword(t, "correct-password")
				user.Active = false

				repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(user, nil)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, mockUserRepo, mockJWT := newAuthService(t)
			tt.setupMock(mockUserRepo, mockJWT)

			res, err := svc.Login(context.Background(), tt.req)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)

				if tt.check != nil {
					tt.check(t, res)
				}
			}
		})
	}
}

func TestAuthService_RefreshToken(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(jwtSvc *jwtMocks.MockJWT)
		wantErr   bool
		wantCode  int
	}{
		{
			name: "successful refresh",
			setupMock: func(jwtSvc *jwtMocks.MockJWT) {
				jwtSvc.EXPECT().
					RefreshTokens("refresh-token").
					Return(&jwt.TokenPair{
						AccessToken:  "new-access-token",
						RefreshToken: "new-refresh-token",
						TokenType:    "Bearer",
						ExpiresIn:    900,
					}, nil)
			},
			wantErr: false,
		},
		{
			name: "invalid refresh token",
			setupMock: func(jwtSvc *jwtMocks.MockJWT) {
				jwtSvc.EXPECT().
					RefreshTokens("refresh-token").
					Return(nil, jwt.ErrInvalidToken)
			},
			wantErr:  true,
			wantCode: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _, mockJWT := newAuthService(t)
			tt.setupMock(mockJWT)

			res, err := svc.RefreshToken(context.Background(), dto.RefreshTokenRequest{RefreshToken: "refresh-token"})

			if tt.wantErr {
				assert.Error(t, err)

				if tt.wantCode != 0 {
					assert.Equal(t, tt.wantCode, failure.GetCode(err))
				}
			} else {
				assert.NoError(t, err)
				assert.Equal(t, "new-access-token", res.AccessToken)
			}
		})
	}
}

func TestAuthService_ChangePassword(t *testing.T) {
	tests := []struct {
		name      string
		req       dto.ChangePasswordRequest
		setupMock func(repo *userMocks.MockUser)
		wantErr   bool
		wantCode  int
	}{
		{
			name: "successful change",
			req: dto.ChangePasswordRequest{
				CurrentPassword: "old-password",
				NewPassword:     "new-password",
			},
			setupMock: func(repo *userMocks.MockUser) {
				repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(userModel.User{
						ID:       "user-id-123",
						Password: hashedPassword(t, "old-password"),
					}, nil)

				repo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name: "wrong current password",
			req: dto.ChangePasswordRequest{
				CurrentPassword: "wrong-password",
				NewPassword:     "new-password",
			},
			setupMock: func(repo *userMocks.MockUser) {
				repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(userModel.User{
						ID:       "user-id-123",
						Password: hashedPassword(t, "old-password"),
					}, nil)
			},
			wantErr:  true,
			wantCode: http.StatusBadRequest,
		},
		{
			name: "user not found",
			req: dto.ChangePasswordRequest{
				CurrentPassword: "old-password",
				NewPassword:     "new-password",
			},
			setupMock: func(repo *userMocks.MockUser) {
				repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(userModel.User{}, nil)
			},
			wantErr:  true,
			wantCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, mockUserRepo, _ := newAuthService(t)
			tt.setupMock(mockUserRepo)

			err := svc.ChangePassword(context.Background(), tt.req, "user-id-123")

			if tt.wantErr {
				assert.Error(t, err)

				if tt.wantCode != 0 {
					assert.Equal(t, tt.wantCode, failure.GetCode(err))
				}
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
