package service_test

import (
	"context"
	"errors"
	"mime/multipart"
	"net/textproto"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"mindwell/config"
	"mindwell/infras/otel/mocks"
	s3Mocks "mindwell/infras/s3/mocks"
	clinicianMocks "mindwell/internal/domains/clinician/mocks"
	"mindwell/internal/domains/clinician/model"
	"mindwell/internal/domains/clinician/model/dto"
	"mindwell/internal/domains/clinician/service"
	cacheMocks "mindwell/shared/cache/mocks"
	"mindwell/shared/constant"
	gDto "mindwell/shared/dto"
)

func newClinicianService(t *testing.T) (service.Clinician, *clinicianMocks.MockClinician, *cacheMocks.MockRedisCache, *s3Mocks.MockS3) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockRepo := clinicianMocks.NewMockClinician(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockS3 := s3Mocks.NewMockS3(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600
	cfg.External.S3.BucketName = "mindwell-test"

	svc := service.New(mockRepo, cfg, mockCache, mockOtel, mockS3)

	return svc, mockRepo, mockCache, mockS3
}

func photoHeader() *multipart.FileHeader {
	return &multipart.FileHeader{
		Filename: "portrait.png",
		Header:   textproto.MIMEHeader{"Content-Type": []string{"image/png"}},
		Size:     1024,
	}
}

func TestClinicianService_Create(t *testing.T) {
	tests := []struct {
		name      string
		req       dto.CreateClinicianRequest
		setupMock func(repo *clinicianMocks.MockClinician, cache *cacheMocks.MockRedisCache, s3 *s3Mocks.MockS3)
		wantErr   bool
	}{
		{
			name: "successful creation without photo",
			req: dto.CreateClinicianRequest{
				FullName:  "Dr. Jordan Avery",
				Specialty: "Cognitive Behavioral Therapy",
				Timezone:  "Eastern Time (US & Canada)",
			},
			setupMock: func(repo *clinicianMocks.MockClinician, cache *cacheMocks.MockRedisCache, s3 *s3Mocks.MockS3) {
				repo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, m model.Clinician) error {
						assert.Equal(t, "America/New_York", m.Timezone)
						assert.True(t, m.AcceptingPatients)
						assert.Empty(t, m.Photo)

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
			name: "photo uploaded to storage",
			req: dto.CreateClinicianRequest{
				FullName:  "Dr. Jordan Avery",
				Specialty: "Cognitive Behavioral Therapy",
				Photo:     photoHeader(),
			},
			setupMock: func(repo *clinicianMocks.MockClinician, cache *cacheMocks.MockRedisCache, s3 *s3Mocks.MockS3) {
				s3.EXPECT().
					UploadFile(gomock.Any(), "mindwell-test", model.EntityName, gomock.Any(), gomock.Any(), gomock.Any()).
					Return("https://cdn.example.com/clinician/photo.png", nil)

				repo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, m model.Clinician) error {
						assert.Equal(t, "https://cdn.example.com/clinician/photo.png", m.Photo)

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
			name: "uploaded photo is removed when insert fails",
			req: dto.CreateClinicianRequest{
				FullName:  "Dr. Jordan Avery",
				Specialty: "Cognitive Behavioral Therapy",
				Photo:     photoHeader(),
			},
			setupMock: func(repo *clinicianMocks.MockClinician, cache *cacheMocks.MockRedisCache, s3 *s3Mocks.MockS3) {
				s3.EXPECT().
					UploadFile(gomock.Any(), "mindwell-test", model.EntityName, gomock.Any(), gomock.Any(), gomock.Any()).
					Return("https://cdn.example.com/clinician/photo.png", nil)

				repo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(errors.New("database error"))

				s3.EXPECT().
					DeleteFile(gomock.Any(), "mindwell-test", model.EntityName, gomock.Any()).
					Return(nil)
			},
			wantErr: true,
		},
		{
			name: "upload failure aborts creation",
			req: dto.CreateClinicianRequest{
				FullName:  "Dr. Jordan Avery",
				Specialty: "Cognitive Behavioral Therapy",
				Photo:     photoHeader(),
			},
			setupMock: func(repo *clinicianMocks.MockClinician, cache *cacheMocks.MockRedisCache, s3 *s3Mocks.MockS3) {
				s3.EXPECT().
					UploadFile(gomock.Any(), "mindwell-test", model.EntityName, gomock.Any(), gomock.Any(), gomock.Any()).
					Return("", errors.New("s3 error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, mockRepo, mockCache, mockS3 := newClinicianService(t)
			tt.setupMock(mockRepo, mockCache, mockS3)

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "admin-1")
			err := svc.Create(ctx, tt.req)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}

			time.Sleep(10 * time.Millisecond)
		})
	}
}

func TestClinicianService_Get(t *testing.T) {
	stored := model.Clinician{
		ID:                "clinician-1",
		FullName:          "Dr. Jordan Avery",
		Specialty:         "Cognitive Behavioral Therapy",
		Timezone:          "America/New_York",
		AcceptingPatients: true,
		Active:            true,
	}

	tests := []struct {
		name      string
		setupMock func(repo *clinicianMocks.MockClinician, cache *cacheMocks.MockRedisCache)
		wantErr   bool
		check     func(t *testing.T, res dto.ClinicianResponse)
	}{
		{
			name: "cache hit",
			setupMock: func(repo *clinicianMocks.MockClinician, cache *cacheMocks.MockRedisCache) {
				cache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name: "cache miss",
			setupMock: func(repo *clinicianMocks.MockClinician, cache *cacheMocks.MockRedisCache) {
				cache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(stored, nil)

				cache.EXPECT().
					Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr: false,
			check: func(t *testing.T, res dto.ClinicianResponse) {
				assert.Equal(t, "America/New_York", res.Timezone)
				assert.Contains(t, res.TimezoneLabel, "New York")
			},
		},
		{
			name: "not found",
			setupMock: func(repo *clinicianMocks.MockClinician, cache *cacheMocks.MockRedisCache) {
				cache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Clinician{}, nil)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, mockRepo, mockCache, _ := newClinicianService(t)
			tt.setupMock(mockRepo, mockCache)

			res, err := svc.Get(context.Background(), "clinician-1")

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

func TestClinicianService_Update(t *testing.T) {
	stored := model.Clinician{
		ID:        "clinician-1",
		FullName:  "Dr. Jordan Avery",
		Specialty: "Cognitive Behavioral Therapy",
		Photo:     "https://cdn.example.com/clinician/old.png",
	}

	t.Run("new photo replaces old object", func(t *testing.T) {
		svc, mockRepo, mockCache, mockS3 := newClinicianService(t)

		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(stored, nil)

		mockS3.EXPECT().
			UploadFile(gomock.Any(), "mindwell-test", model.EntityName, gomock.Any(), gomock.Any(), gomock.Any()).
			Return("https://cdn.example.com/clinician/new.png", nil)

		mockRepo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
				assert.Equal(t, "https://cdn.example.com/clinician/new.png", fields[model.FieldPhoto])

				return nil
			})

		mockS3.EXPECT().
			GetObjectNameFromURL("mindwell-test", stored.Photo).
			Return("old.png")

		mockS3.EXPECT().
			DeleteFile(gomock.Any(), "mindwell-test", model.EntityName, "old.png").
			Return(nil)

		mockCache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
		mockCache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

		ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "admin-1")
		err := svc.Update(ctx, dto.UpdateClinicianRequest{Photo: photoHeader()}, "clinician-1")

		assert.NoError(t, err)

		time.Sleep(10 * time.Millisecond)
	})

	t.Run("not found", func(t *testing.T) {
		svc, mockRepo, _, _ := newClinicianService(t)

		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Clinician{}, nil)

		err := svc.Update(context.Background(), dto.UpdateClinicianRequest{FullName: "New Name"}, "clinician-1")

		assert.Error(t, err)
	})
}

func TestClinicianService_Delete(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(repo *clinicianMocks.MockClinician, cache *cacheMocks.MockRedisCache)
		wantErr   bool
	}{
		{
			name: "successful delete",
			setupMock: func(repo *clinicianMocks.MockClinician, cache *cacheMocks.MockRedisCache) {
				repo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				repo.EXPECT().
					Delete(gomock.Any(), gomock.Any()).
					Return(nil)

				cache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
				cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
			},
			wantErr: false,
		},
		{
			name: "not found",
			setupMock: func(repo *clinicianMocks.MockClinician, cache *cacheMocks.MockRedisCache) {
				repo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, mockRepo, mockCache, _ := newClinicianService(t)
			tt.setupMock(mockRepo, mockCache)

			err := svc.Delete(context.Background(), "clinician-1")

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}

			time.Sleep(10 * time.Millisecond)
		})
	}
}
