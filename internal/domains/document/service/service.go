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
	"mindwell/internal/domains/document/model"
	"mindwell/internal/domains/document/model/dto"
	"mindwell/internal/domains/document/repository"
	"mindwell/shared"
	"mindwell/shared/cache"
	"mindwell/shared/constant"
	gDto "mindwell/shared/dto"
	"mindwell/shared/failure"
	"mindwell/shared/timezone"
)

const (
	cacheGetDocument    = "document:get"
	cacheGetAllDocument = "document:gets"
	cacheCountDocument  = "document:count"
)

type Document interface {
	Upload(ctx context.Context, req dto.UploadDocumentRequest) (dto.DocumentResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup, zone string) (dto.GetDocumentsResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id, zone string) (dto.DocumentResponse, error)
	Update(ctx context.Context, req dto.UpdateDocumentRequest, id string) error
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo  repository.Document
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
	s3    s3.S3
}

func New(repo repository.Document, cfg *config.Config, cache cache.RedisCache, otel otel.Otel, s3 s3.S3) Document {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
		s3:    s3,
	}
}

func (s *serviceImpl) Upload(ctx context.Context, req dto.UploadDocumentRequest) (res dto.DocumentResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Upload")
	defer scope.End()
	defer scope.TraceIfError(err)

	patientID, _ := ctx.Value(constant.ContextKeyUserID).(string)

	bucketName := s.cfg.External.S3.BucketName
	filename := uuid.NewString()

	parts := strings.Split(req.File.Filename, ".")
	if len(parts) > 1 {
		filename = fmt.Sprintf("%s.%s", filename, parts[len(parts)-1])
	}

	url, err := s.s3.UploadFile(ctx, bucketName, model.EntityName, req.FileData, req.File, filename)
	if err != nil {
		log.Error().Err(err).Msg("failed to upload document to S3")

		return res, fmt.Errorf("failed to upload document: %w", err)
	}

	contentType := req.File.Header.Get("Content-Type")
	document := req.ToModel(patientID, url, req.File.Filename, contentType)

	if err = s.repo.Insert(ctx, document); err != nil {
		_ = s.s3.DeleteFile(ctx, bucketName, model.EntityName, filename)

		log.Error().Err(err).Msg("failed to create document")

		return res, fmt.Errorf("failed to create document: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllDocument)
		shared.InvalidateCaches(c, s.cache, cacheCountDocument)
	}()

	res.FromModel(document, timezone.DefaultZone)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup, zone string) (res dto.GetDocumentsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	zone = timezone.Normalize(zone)
	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllDocument+":"+zone, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for documents")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count documents")

		return res, fmt.Errorf("failed to count documents: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get documents")

		return res, fmt.Errorf("failed to get documents: %w", err)
	}

	res.FromModels(models, zone, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save documents to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountDocument, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count documents")

		return res, fmt.Errorf("failed to count documents: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save document count to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id, zone string) (res dto.DocumentResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	zone = timezone.Normalize(zone)
	cacheKey := shared.BuildCacheKey(cacheGetDocument, id+":"+zone)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for document")

		return res, nil
	}

	document, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get document")

		return res, fmt.Errorf("failed to get document: %w", err)
	}

	if document.ID == constant.Empty {
		return res, failure.NotFound("document not found") // nolint:wrapcheck
	}

	res.FromModel(document, zone)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save document to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateDocumentRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	if req == (dto.UpdateDocumentRequest{}) {
		return failure.BadRequestFromString("update request cannot be empty") // nolint:wrapcheck
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check document existence")

		return fmt.Errorf("failed to check document existence: %w", err)
	}

	if !exist {
		return failure.NotFound("document not found") // nolint:wrapcheck
	}

	updatedFields := shared.TransformFields(req, user)
	if err = s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update document")

		return fmt.Errorf("failed to update document: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetDocument+":"+id)
		shared.InvalidateCaches(c, s.cache, cacheGetAllDocument)
	}()

	return nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	document, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get document for deletion")

		return fmt.Errorf("failed to get document: %w", err)
	}

	if document.ID == constant.Empty {
		return failure.NotFound("document not found") // nolint:wrapcheck
	}

	if err = s.repo.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to delete document")

		return fmt.Errorf("failed to delete document: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetDocument+":"+id)
		shared.InvalidateCaches(c, s.cache, cacheGetAllDocument)
		shared.InvalidateCaches(c, s.cache, cacheCountDocument)

		bucketName := s.cfg.External.S3.BucketName
		objectName := s.s3.GetObjectNameFromURL(bucketName, document.FileURL)
		if objectName != constant.Empty {
			if err := s.s3.DeleteFile(c, bucketName, model.EntityName, objectName); err != nil {
				log.Error().Err(err).Msg("failed to delete document from S3")
			}
		}
	}()

	return nil
}
