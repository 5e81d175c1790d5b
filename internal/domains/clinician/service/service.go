package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"mindwell/config"
	"mindwell/infras/otel"
	"mindwell/infras/s3"
	"mindwell/internal/domains/clinician/model"
	"mindwell/internal/domains/clinician/model/dto"
	"mindwell/internal/domains/clinician/repository"
	"mindwell/shared"
	"mindwell/shared/cache"
	"mindwell/shared/constant"
	gDto "mindwell/shared/dto"
	"mindwell/shared/failure"
)

const (
	cacheGetClinician    = "clinician:get"
	cacheGetAllClinician = "clinician:gets"
	cacheCountClinician  = "clinician:count"
)

type Clinician interface {
	Create(ctx context.Context, req dto.CreateClinicianRequest) error
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetCliniciansResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id string) (dto.ClinicianResponse, error)
	Update(ctx context.Context, req dto.UpdateClinicianRequest, id string) error
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo  repository.Clinician
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
	s3    s3.S3
}

func New(repo repository.Clinician, cfg *config.Config, cache cache.RedisCache, otel otel.Otel, s3 s3.S3) Clinician {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
		s3:    s3,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateClinicianRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	photoURL := constant.Empty
	var uploadedObjectName string
	if req.Photo != nil {
		bucketName := s.cfg.External.S3.BucketName
		filename := uuid.NewString()

		parts := strings.Split(req.Photo.Filename, ".")
		if len(parts) > 1 {
			filename = fmt.Sprintf("%s.%s", filename, parts[len(parts)-1])
		}

		url, err := s.s3.UploadFile(ctx, bucketName, model.EntityName, req.PhotoFile, req.Photo, filename)
		if err != nil {
			log.Error().Err(err).Msg("failed to upload photo to S3")

			return fmt.Errorf("failed to upload photo: %w", err)
		}
		photoURL = url
		uploadedObjectName = filename
	}

	if err = s.repo.Insert(ctx, req.ToModel(user, photoURL)); err != nil {
		if uploadedObjectName != constant.Empty {
			bucketName := s.cfg.External.S3.BucketName
			_ = s.s3.DeleteFile(ctx, bucketName, model.EntityName, uploadedObjectName)
		}

		return err
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllClinician)
		shared.InvalidateCaches(c, s.cache, cacheCountClinician)
	}()

	return nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetCliniciansResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllClinician, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for clinicians")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count clinicians")

		return res, fmt.Errorf("failed to count clinicians: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get clinicians")

		return res, fmt.Errorf("failed to get clinicians: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save clinicians to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountClinician, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for clinician count")

		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count clinicians")

		return res, fmt.Errorf("failed to count clinicians: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save clinician count to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.ClinicianResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetClinician, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for clinician")

		return res, nil
	}

	clinician, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get clinician")

		return res, fmt.Errorf("failed to get clinician: %w", err)
	}

	if clinician.ID == constant.Empty {
		return res, failure.NotFound("clinician not found") // nolint:wrapcheck
	}

	res.FromModel(clinician)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save clinician to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateClinicianRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	current, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check clinician existence")

		return err
	}

	if current.ID == constant.Empty {
		log.Error().Msg("clinician not found")

		return failure.NotFound("clinician not found") // nolint:wrapcheck
	}

	return s.updateInternal(ctx, req, current, user, filter)
}

func (s *serviceImpl) updateInternal(ctx context.Context, req dto.UpdateClinicianRequest, current model.Clinician, user string, filter gDto.FilterGroup) error {
	photoURL := constant.Empty
	var uploadedObjectName string
	bucketName := s.cfg.External.S3.BucketName

	if req.Photo != nil {
		filename := uuid.NewString()

		parts := strings.Split(req.Photo.Filename, ".")
		if len(parts) > 1 {
			filename = fmt.Sprintf("%s.%s", filename, parts[len(parts)-1])
		}

		url, err := s.s3.UploadFile(ctx, bucketName, model.EntityName, req.PhotoFile, req.Photo, filename)
		if err != nil {
			return fmt.Errorf("failed to upload photo: %w", err)
		}
		photoURL = url
		uploadedObjectName = filename
	}

	updatedFields := shared.TransformFields(req, user)
	if photoURL != constant.Empty {
		updatedFields[model.FieldPhoto] = photoURL
	}

	if err := s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update clinician")

		if uploadedObjectName != constant.Empty {
			_ = s.s3.DeleteFile(ctx, bucketName, model.EntityName, uploadedObjectName)
		}

		return fmt.Errorf("failed to update clinician: %w", err)
	}

	if photoURL != constant.Empty && current.Photo != constant.Empty {
		oldObjectName := s.s3.GetObjectNameFromURL(bucketName, current.Photo)
		if oldObjectName != constant.Empty {
			_ = s.s3.DeleteFile(ctx, bucketName, model.EntityName, oldObjectName)
		}
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetClinician, current.ID)); err != nil {
			log.Error().Err(err).Msg("failed to delete clinician cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllClinician)
		shared.InvalidateCaches(c, s.cache, cacheCountClinician)
	}()

	return nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) error {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()

	exist, err := s.repo.Exist(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if clinician exists")

		return fmt.Errorf("failed to check if clinician exists: %w", err)
	}

	if !exist {
		log.Error().Msg("clinician not found")

		return failure.NotFound("clinician not found") // nolint:wrapcheck
	}

	if err := s.repo.Delete(ctx, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to delete clinician")

		return fmt.Errorf("failed to delete clinician: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetClinician, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete clinician from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllClinician)
		shared.InvalidateCaches(c, s.cache, cacheCountClinician)
	}()

	return nil
}
