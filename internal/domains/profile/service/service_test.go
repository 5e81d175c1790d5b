package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"mindwell/config"
	"mindwell/infras/otel/mocks"
	"mindwell/internal/domains/profile/model/dto"
	"mindwell/internal/domains/profile/service"
	userMocks "mindwell/internal/domains/user/mocks"
	userModel "mindwell/internal/domains/user/model"
	"mindwell/shared/failure"
)

func newProfileService(t *testing.T) (service.Profile, *userMocks.MockUser) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockUserRepo := userMocks.NewMockUser(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}

	svc := service.New(mockUserRepo, cfg, mockOtel)

	return svc, mockUserRepo
}

func TestProfileService_Get(t *testing.T) {
	fullName := "Test Patient"

	tests := []struct {
		name      string
		setupMock func(repo *userMocks.MockUser)
		wantErr   bool
		check     func(t *testing.T, res dto.ProfileResponse)
	}{
		{
			name: "stored legacy timezone is resolved for display",
			setupMock: func(repo *userMocks.MockUser) {
				repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(userModel.User{
						ID:       "user-id-123",
						Email:    "patient@example.com",
						FullName: &fullName,
						Timezone: "Eastern Time (US & Canada)",
					}, nil)
			},
			wantErr: false,
			check: func(t *testing.T, res dto.ProfileResponse) {
				assert.Equal(t, "America/New_York", res.Timezone)
				assert.Contains(t, res.TimezoneLabel, "New York")
				assert.NotEmpty(t, res.LocalTime)
			},
		},
		{
			name: "profile not found",
			setupMock: func(repo *userMocks.MockUser) {
				repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(userModel.User{}, nil)
			},
			wantErr: true,
		},
		{
			name: "repository error",
			setupMock: func(repo *userMocks.MockUser) {
				repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(userModel.User{}, errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, mockUserRepo := newProfileService(t)
			tt.setupMock(mockUserRepo)

			res, err := svc.Get(context.Background(), "user-id-123")

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

func TestProfileService_Update(t *testing.T) {
	phone := "+1-555-0100"

	tests := []struct {
		name      string
		req       dto.UpdateProfileRequest
		setupMock func(repo *userMocks.MockUser)
		wantErr   bool
		wantCode  int
	}{
		{
			name: "timezone is normalized before persisting",
			req: dto.UpdateProfileRequest{
				Timezone: "pacific time",
			},
			setupMock: func(repo *userMocks.MockUser) {
				repo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				repo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, fields map[string]any, _ any) error {
						assert.Equal(t, "America/Los_Angeles", fields[userModel.FieldTimezone])

						return nil
					})
			},
			wantErr: false,
		},
		{
			name: "phone only update",
			req: dto.UpdateProfileRequest{
				Phone: &phone,
			},
			setupMock: func(repo *userMocks.MockUser) {
				repo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				repo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name:      "empty request",
			req:       dto.UpdateProfileRequest{},
			setupMock: func(repo *userMocks.MockUser) {},
			wantErr:   true,
			wantCode:  http.StatusBadRequest,
		},
		{
			name: "profile not found",
			req: dto.UpdateProfileRequest{
				Phone: &phone,
			},
			setupMock: func(repo *userMocks.MockUser) {
				repo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)
			},
			wantErr:  true,
			wantCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, mockUserRepo := newProfileService(t)
			tt.setupMock(mockUserRepo)

			err := svc.Update(context.Background(), tt.req, "user-id-123")

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
