package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"

	"mindwell/config"
	"mindwell/infras/kafka"
	"mindwell/infras/otel"
	"mindwell/internal/domains/appointment/model"
	"mindwell/internal/domains/appointment/model/dto"
	"mindwell/internal/domains/appointment/repository"
	"mindwell/shared"
	"mindwell/shared/cache"
	"mindwell/shared/constant"
	gDto "mindwell/shared/dto"
	"mindwell/shared/failure"
	"mindwell/shared/timezone"
)

const (
	cacheGetAppointment    = "appointment:get"
	cacheGetAllAppointment = "appointment:gets"
	cacheCountAppointment  = "appointment:count"
)

// statusFlow holds the legal forward status transitions. Cancellation is not
// listed: it goes through Cancel so the cancelled event is always published.
var statusFlow = map[string]string{
	model.StatusScheduled: model.StatusConfirmed,
	model.StatusConfirmed: model.StatusCompleted,
}

type Appointment interface {
	Create(ctx context.Context, req dto.CreateAppointmentRequest) error
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup, zone string) (dto.GetAppointmentsResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id, zone string) (dto.AppointmentResponse, error)
	Update(ctx context.Context, req dto.UpdateAppointmentRequest, id string) error
	Cancel(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo  repository.Appointment
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
	kafka kafka.Client
}

func New(repo repository.Appointment, cfg *config.Config, cache cache.RedisCache, otel otel.Otel, kafka kafka.Client) Appointment {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
		kafka: kafka,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateAppointmentRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	patientID, _ := ctx.Value(constant.ContextKeyUserID).(string)

	appointment, err := req.ToModel(patientID)
	if err != nil {
		if errors.Is(err, timezone.ErrInvalidDateTimeFormat) {
			return failure.BadRequest(err) // nolint:wrapcheck
		}

		log.Error().Err(err).Msg("failed to build appointment")

		return fmt.Errorf("failed to build appointment: %w", err)
	}

	if timezone.NearTransition(appointment.StartAt.In(timezone.Location(appointment.Timezone)), timezone.Location(appointment.Timezone)) {
		log.Warn().
			Str("appointment_id", appointment.ID).
			Str("timezone", appointment.Timezone).
			Time("start_at", appointment.StartAt).
			Msg("appointment scheduled near a DST transition")
	}

	conflictFilter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldClinicianID,
				Operator: gDto.FilterOperatorEq,
				Value:    appointment.ClinicianID,
				Table:    model.TableName,
			},
			gDto.Filter{
				Field:    model.FieldStartAt,
				Operator: gDto.FilterOperatorEq,
				Value:    appointment.StartAt,
				Table:    model.TableName,
			},
			gDto.Filter{
				Field:    model.FieldStatus,
				Operator: gDto.FilterOperatorNotEq,
				Value:    model.StatusCancelled,
				Table:    model.TableName,
			},
		},
	}

	conflict, err := s.repo.Exist(ctx, conflictFilter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check appointment conflicts")

		return fmt.Errorf("failed to check appointment conflicts: %w", err)
	}

	if conflict {
		return failure.Conflict("clinician already has an appointment at that time") // nolint:wrapcheck
	}

	if err = s.repo.Insert(ctx, appointment); err != nil {
		log.Error().Err(err).Msg("failed to create appointment")

		return fmt.Errorf("failed to create appointment: %w", err)
	}

	s.publishEvent(ctx, dto.EventAppointmentCreated, appointment)

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllAppointment)
		shared.InvalidateCaches(c, s.cache, cacheCountAppointment)
	}()

	return nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup, zone string) (res dto.GetAppointmentsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	// An empty zone renders each appointment in the zone it was booked in.
	if zone != constant.Empty {
		zone = timezone.Normalize(zone)
	}

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllAppointment+":"+zone, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for appointments")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count appointments")

		return res, fmt.Errorf("failed to count appointments: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get appointments")

		return res, fmt.Errorf("failed to get appointments: %w", err)
	}

	res.FromModels(models, zone, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save appointments to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountAppointment, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count appointments")

		return res, fmt.Errorf("failed to count appointments: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save appointment count to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id, zone string) (res dto.AppointmentResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	// An empty zone renders the appointment in the zone it was booked in.
	if zone != constant.Empty {
		zone = timezone.Normalize(zone)
	}

	cacheKey := shared.BuildCacheKey(cacheGetAppointment, id+":"+zone)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for appointment")

		return res, nil
	}

	appointment, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get appointment")

		return res, fmt.Errorf("failed to get appointment: %w", err)
	}

	if appointment.ID == constant.Empty {
		return res, failure.NotFound("appointment not found") // nolint:wrapcheck
	}

	res.FromModel(appointment, zone)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save appointment to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateAppointmentRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	current, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check appointment existence")

		return err
	}

	if current.ID == constant.Empty {
		return failure.NotFound("appointment not found") // nolint:wrapcheck
	}

	if current.Status == model.StatusCancelled {
		return failure.BadRequestFromString("cancelled appointments cannot be updated") // nolint:wrapcheck
	}

	if req.Status != constant.Empty && req.Status != current.Status {
		if req.Status == model.StatusCancelled {
			return failure.BadRequestFromString("use the cancel endpoint to cancel an appointment") // nolint:wrapcheck
		}

		if statusFlow[current.Status] != req.Status {
			return failure.BadRequestFromString(fmt.Sprintf("cannot change status from %s to %s", current.Status, req.Status)) // nolint:wrapcheck
		}
	}

	updatedFields := shared.TransformFields(req, user)

	// Reschedule: reinterpret the new wall-clock values in the requested
	// zone, falling back to the zone the appointment was booked in.
	if req.Date != constant.Empty || req.Time != constant.Empty {
		if req.Date == constant.Empty || req.Time == constant.Empty {
			return failure.BadRequestFromString("date and time must be provided together") // nolint:wrapcheck
		}

		zone := current.Timezone
		if req.Timezone != constant.Empty {
			zone = req.Timezone
		}
		zone = timezone.Normalize(zone)

		startLocal, err := timezone.CreateDateTime(req.Date, req.Time, zone)
		if err != nil {
			if errors.Is(err, timezone.ErrInvalidDateTimeFormat) {
				return failure.BadRequest(err) // nolint:wrapcheck
			}

			return fmt.Errorf("failed to parse new appointment time: %w", err)
		}

		if timezone.NearTransition(startLocal, timezone.Location(zone)) {
			log.Warn().
				Str("appointment_id", id).
				Str("timezone", zone).
				Msg("appointment rescheduled near a DST transition")
		}

		updatedFields[model.FieldStartAt] = startLocal.UTC()
		updatedFields[model.FieldTimezone] = zone
	} else if req.Timezone != constant.Empty {
		updatedFields[model.FieldTimezone] = timezone.Normalize(req.Timezone)
	}

	if err := s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update appointment")

		return fmt.Errorf("failed to update appointment: %w", err)
	}

	updated, err := s.repo.Get(ctx, filter)
	if err == nil && updated.ID != constant.Empty {
		s.publishEvent(ctx, dto.EventAppointmentUpdated, updated)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAppointment+":"+id)
		shared.InvalidateCaches(c, s.cache, cacheGetAllAppointment)
		shared.InvalidateCaches(c, s.cache, cacheCountAppointment)
	}()

	return nil
}

func (s *serviceImpl) Cancel(ctx context.Context, id string) error {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Cancel")
	defer scope.End()

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	current, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check appointment existence")

		return err
	}

	if current.ID == constant.Empty {
		return failure.NotFound("appointment not found") // nolint:wrapcheck
	}

	if current.Status == model.StatusCancelled {
		return failure.BadRequestFromString("appointment is already cancelled") // nolint:wrapcheck
	}

	if current.Status == model.StatusCompleted {
		return failure.BadRequestFromString("completed appointments cannot be cancelled") // nolint:wrapcheck
	}

	updatedFields := shared.TransformFields(struct {
		Status string `db:"status"`
	}{Status: model.StatusCancelled}, user)

	if err := s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to cancel appointment")

		return fmt.Errorf("failed to cancel appointment: %w", err)
	}

	current.Status = model.StatusCancelled
	s.publishEvent(ctx, dto.EventAppointmentCancelled, current)

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAppointment+":"+id)
		shared.InvalidateCaches(c, s.cache, cacheGetAllAppointment)
		shared.InvalidateCaches(c, s.cache, cacheCountAppointment)
	}()

	return nil
}

func (s *serviceImpl) publishEvent(ctx context.Context, eventType string, appointment model.Appointment) {
	go func() {
		c := context.WithoutCancel(ctx)

		event := dto.NewAppointmentEvent(eventType, appointment)
		message := kafka.Message{
			Key:   appointment.ID,
			Value: event,
		}

		if err := s.kafka.SendMessages(c, constant.TopicAppointmentEvents, message); err != nil {
			log.Error().Err(err).Str("type", eventType).Str("appointment_id", appointment.ID).Msg("failed to publish appointment event")
		}
	}()
}
