package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"mindwell/config"
	"mindwell/infras/otel/mocks"
	userMocks "mindwell/internal/domains/user/mocks"
	"mindwell/internal/domains/user/model"
	"mindwell/internal/domains/user/model/dto"
	"mindwell/internal/domains/user/service"
	cacheMocks "mindwell/shared/cache/mocks"
	"mindwell/shared/constant"
	gDto "mindwell/shared/dto"
	"mindwell/shared/failure"
)

func newUserService(t *testing.T) (service.User, *userMocks.MockUser, *cacheMocks.MockRedisCache) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockRepo := userMocks.NewMockUser(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(mockRepo, cfg, mockCache, mockOtel)

	return svc, mockRepo, mockCache
}

func adminContext() context.Context {
	return context.WithValue(context.Background(), constant.ContextKeyUserID, "admin-1")
}

func TestUserService_Create(t *testing.T) {
	tests := []struct {
		name      string
		req       dto.CreateUserRequest
		setupMock func(repo *userMocks.MockUser, cache *cacheMocks.MockRedisCache)
		wantErr   bool
		wantCode  int
	}{
		{
			name: "successful creation defaults to patient level",
			req: dto.CreateUserRequest{
				Email:    "new@example.com",
				Password: "secret-password",
				Timezone: "EST",
			},
			setupMock: func(repo *userMocks.MockUser, cache *cacheMocks.MockRedisCache) {
				repo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)

				repo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, u model.User) error {
						assert.Equal(t, constant.RolePatient, u.Level)
						assert.Equal(t, "America/New_York", u.Timezone)
						assert.Equal(t, "admin-1", u.Metadata.CreatedBy)

						return nil
					})

				cache.EXPECT().
					Clear(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr: false,
		},
		{
			name: "duplicate email",
			req: dto.CreateUserRequest{
				Email:    "taken@example.com",
				Password: "secret-password",
			},
			setupMock: func(repo *userMocks.MockUser, cache *cacheMocks.MockRedisCache) {
				repo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)
			},
			wantErr:  true,
			wantCode: http.StatusConflict,
		},
		{
			name: "repository error",
			req: dto.CreateUserRequest{
				Email:    "new@example.com",
				Password: "secret-password",
			},
			setupMock: func(repo *userMocks.MockUser, cache *cacheMocks.MockRedisCache) {
				repo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)

				repo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, mockRepo, mockCache := newUserService(t)
			tt.setupMock(mockRepo, mockCache)

			err := svc.Create(adminContext(), tt.req)

			if tt.wantErr {
				assert.Error(t, err)

				if tt.wantCode != 0 {
					assert.Equal(t, tt.wantCode, failure.GetCode(err))
				}
			} else {
				assert.NoError(t, err)
			}

			time.Sleep(10 * time.Millisecond)
		})
	}
}

func TestUserService_Get(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(repo *userMocks.MockUser, cache *cacheMocks.MockRedisCache)
		wantErr   bool
		check     func(t *testing.T, res dto.UserResponse)
	}{
		{
			name: "cache hit",
			setupMock: func(repo *userMocks.MockUser, cache *cacheMocks.MockRedisCache) {
				cache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name: "cache miss resolves stored timezone",
			setupMock: func(repo *userMocks.MockUser, cache *cacheMocks.MockRedisCache) {
				cache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.User{
						ID:       "user-id-123",
						Email:    "patient@example.com",
						Timezone: "central time",
						Active:   true,
					}, nil)

				cache.EXPECT().
					Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr: false,
			check: func(t *testing.T, res dto.UserResponse) {
				assert.Equal(t, "America/Chicago", res.Timezone)
			},
		},
		{
			name: "not found",
			setupMock: func(repo *userMocks.MockUser, cache *cacheMocks.MockRedisCache) {
				cache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.User{}, nil)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, mockRepo, mockCache := newUserService(t)
			tt.setupMock(mockRepo, mockCache)

			res, err := svc.Get(context.Background(), "user-id-123")

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)

				if tt.check != nil {
					tt.check(t, res)
				}
			}

			time.Sleep(10 * time.Millisecond)
		})
	}
}

func TestUserService_GetAll(t *testing.T) {
	svc, mockRepo, mockCache := newUserService(t)

	mockCache.EXPECT().
		Get(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(errors.New("cache miss")).
		Times(2)

	mockRepo.EXPECT().
		Count(gomock.Any(), gomock.Any()).
		Return(2, nil)

	mockRepo.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]model.User{
			{ID: "user-1", Email: "a@example.com", Timezone: "EST"},
			{ID: "user-2", Email: "b@example.com", Timezone: "America/Chicago"},
		}, nil)

	mockCache.EXPECT().
		Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil).
		AnyTimes()

	res, err := svc.GetAll(context.Background(), gDto.QueryParams{Page: 1, Limit: 10}, gDto.FilterGroup{})

	assert.NoError(t, err)
	assert.Equal(t, 2, res.TotalData)
	assert.Len(t, res.Users, 2)
	assert.Equal(t, "America/New_York", res.Users[0].Timezone)
	assert.Equal(t, "America/Chicago", res.Users[1].Timezone)

	time.Sleep(10 * time.Millisecond)
}

func TestUserService_Update(t *testing.T) {
	levelClinician := "clinician"

	tests := []struct {
		name      string
		req       dto.UpdateUserRequest
		setupMock func(repo *userMocks.MockUser, cache *cacheMocks.MockRedisCache)
		wantErr   bool
		wantCode  int
	}{
		{
			name: "successful update",
			req:  dto.UpdateUserRequest{Level: &levelClinician},
			setupMock: func(repo *userMocks.MockUser, cache *cacheMocks.MockRedisCache) {
				repo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				repo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
						assert.Equal(t, &levelClinician, fields[model.FieldLevel])

						return nil
					})

				cache.EXPECT().
					Delete(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()

				cache.EXPECT().
					Clear(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr: false,
		},
		{
			name:      "empty request",
			req:       dto.UpdateUserRequest{},
			setupMock: func(repo *userMocks.MockUser, cache *cacheMocks.MockRedisCache) {},
			wantErr:   true,
			wantCode:  http.StatusBadRequest,
		},
		{
			name: "not found",
			req:  dto.UpdateUserRequest{Level: &levelClinician},
			setupMock: func(repo *userMocks.MockUser, cache *cacheMocks.MockRedisCache) {
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
			svc, mockRepo, mockCache := newUserService(t)
			tt.setupMock(mockRepo, mockCache)

			err := svc.Update(adminContext(), tt.req, "user-id-123")

			if tt.wantErr {
				assert.Error(t, err)

				if tt.wantCode != 0 {
					assert.Equal(t, tt.wantCode, failure.GetCode(err))
				}
			} else {
				assert.NoError(t, err)
			}

			time.Sleep(10 * time.Millisecond)
		})
	}
}

func TestUserService_Delete(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(repo *userMocks.MockUser, cache *cacheMocks.MockRedisCache)
		wantErr   bool
	}{
		{
			name: "successful delete",
			setupMock: func(repo *userMocks.MockUser, cache *cacheMocks.MockRedisCache) {
				repo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				repo.EXPECT().
					Delete(gomock.Any(), gomock.Any()).
					Return(nil)

				cache.EXPECT().
					Delete(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()

				cache.EXPECT().
					Clear(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr: false,
		},
		{
			name: "not found",
			setupMock: func(repo *userMocks.MockUser, cache *cacheMocks.MockRedisCache) {
				repo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, mockRepo, mockCache := newUserService(t)
			tt.setupMock(mockRepo, mockCache)

			err := svc.Delete(context.Background(), "user-id-123")

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}

			time.Sleep(10 * time.Millisecond)
		})
	}
}
