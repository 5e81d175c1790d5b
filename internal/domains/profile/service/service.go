package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"mindwell/config"
	"mindwell/infras/otel"
	"mindwell/internal/domains/profile/model/dto"
	userModel "mindwell/internal/domains/user/model"
	userRepo "mindwell/internal/domains/user/repository"
	"mindwell/shared"
	"mindwell/shared/constant"
	"mindwell/shared/failure"
	"mindwell/shared/timezone"
)

type Profile interface {
	Get(ctx context.Context, userID string) (dto.ProfileResponse, error)
	Update(ctx context.Context, req dto.UpdateProfileRequest, userID string) error
}

type serviceImpl struct {
	userRepo userRepo.User
	cfg      *config.Config
	otel     otel.Otel
}

func New(userRepo userRepo.User, cfg *config.Config, otel otel.Otel) Profile {
	return &serviceImpl{
		userRepo: userRepo,
		cfg:      cfg,
		otel:     otel,
	}
}

func (s *serviceImpl) Get(ctx context.Context, userID string) (res dto.ProfileResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, err := s.userRepo.Get(ctx, shared.FilterByID(userID, userModel.FieldID, userModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get profile")

		return res, fmt.Errorf("failed to get profile: %w", err)
	}

	if user.ID == constant.Empty {
		return res, failure.NotFound("profile not found") // nolint:wrapcheck
	}

	res.FromModel(user)

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateProfileRequest, userID string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	if req == (dto.UpdateProfileRequest{}) {
		return failure.BadRequestFromString("update request cannot be empty") // nolint:wrapcheck
	}

	filter := shared.FilterByID(userID, userModel.FieldID, userModel.TableName)

	exist, err := s.userRepo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check profile existence")

		return fmt.Errorf("failed to check profile existence: %w", err)
	}

	if !exist {
		return failure.NotFound("profile not found") // nolint:wrapcheck
	}

	if req.Timezone != constant.Empty {
		req.Timezone = timezone.Normalize(req.Timezone)
	}

	updatedFields := shared.TransformFields(req, userID)
	if err = s.userRepo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update profile")

		return fmt.Errorf("failed to update profile: %w", err)
	}

	return nil
}
