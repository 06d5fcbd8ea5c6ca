package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"beauteefool/config"
	"beauteefool/infras/kafka"
	"beauteefool/infras/otel"
	"beauteefool/internal/domains/booking/model"
	"beauteefool/internal/domains/booking/model/dto"
	"beauteefool/internal/domains/booking/repository"
	catalogModel "beauteefool/internal/domains/catalog/model"
	catalogService "beauteefool/internal/domains/catalog/service"
	draftModel "beauteefool/internal/domains/draft/model"
	draftService "beauteefool/internal/domains/draft/service"
	scheduleModel "beauteefool/internal/domains/schedule/model"
	"beauteefool/shared"
	"beauteefool/shared/cache"
	"beauteefool/shared/constant"
	gDto "beauteefool/shared/dto"
	"beauteefool/shared/failure"
	gModel "beauteefool/shared/model"
	"beauteefool/shared/timezone"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/rs/zerolog/log"
)

const (
	cacheGetBooking    = "booking:get"
	cacheGetAllBooking = "booking:get_all"
	cacheCountBooking  = "booking:count"
)

type Booking interface {
	// Confirm freezes a ready draft into a pending booking and clears the draft.
	Confirm(ctx context.Context, draftID string) (dto.BookingResponse, error)
	GetByConfirmationNumber(ctx context.Context, number string) (dto.BookingResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetBookingsResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	UpdateStatus(ctx context.Context, id string, req dto.UpdateStatusRequest) error
}

type serviceImpl struct {
	repo    repository.Booking
	drafts  draftService.Draft
	catalog catalogService.Catalog
	kafka   kafka.Client
	cfg     *config.Config
	cache   cache.RedisCache
	now     func() time.Time
	otel    otel.Otel
}

func New(
	repo repository.Booking,
	drafts draftService.Draft,
	catalog catalogService.Catalog,
	kafka kafka.Client,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
) Booking {
	return NewWithClock(repo, drafts, catalog, kafka, cfg, cache, otel, timezone.Now)
}

func NewWithClock(
	repo repository.Booking,
	drafts draftService.Draft,
	catalog catalogService.Catalog,
	kafka kafka.Client,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
	now func() time.Time,
) Booking {
	return &serviceImpl{
		repo:    repo,
		drafts:  drafts,
		catalog: catalog,
		kafka:   kafka,
		cfg:     cfg,
		cache:   cache,
		now:     now,
		otel:    otel,
	}
}

func (s *serviceImpl) freeze(draft draftModel.BookingDraft, services []catalogModel.Service, totals catalogModel.Totals) (model.Booking, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return model.Booking{}, fmt.Errorf("failed to generate booking id: %w", err)
	}

	date, err := timezone.ParseDay(draft.SelectedDate)
	if err != nil {
		return model.Booking{}, failure.BadRequestFromString("date must be formatted as YYYY-MM-DD") // nolint:wrapcheck
	}

	endTime, err := scheduleModel.EndTime(draft.SelectedTime, totals.Duration)
	if err != nil {
		return model.Booking{}, failure.BadRequestFromString("Please select a valid time slot") // nolint:wrapcheck
	}

	ids := make([]string, len(services))
	lines := make(model.ServiceLines, len(services))

	for i, service := range services {
		ids[i] = service.ID
		lines[i] = model.ServiceLine{
			ID:       service.ID,
			Name:     service.Name,
			Category: string(service.Category),
			Price:    service.Price,
			Duration: service.Duration,
		}
	}

	now := s.now()
	customer := draft.CustomerInfo

	return model.Booking{
		ID:                 id.String(),
		DraftID:            draft.ID,
		ConfirmationNumber: model.ConfirmationNumber(s.cfg.Salon.ConfirmationPrefix, id),
		ServiceIDs:         pq.StringArray(ids),
		Services:           lines,
		AppointmentDate:    date,
		StartTime:          draft.SelectedTime,
		EndTime:            endTime,
		CustomerName:       customer.FullName,
		CustomerEmail:      customer.Email,
		CustomerPhone:      customer.Phone,
		SpecialRequests:    customer.SpecialRequests,
		TotalPrice:         totals.Price,
		TotalDuration:      totals.Duration,
		Status:             model.StatusPending,
		Metadata: gModel.Metadata{
			CreatedAt:  now,
			ModifiedAt: now,
			CreatedBy:  constant.ActorGuest,
			ModifiedBy: constant.ActorGuest,
		},
	}, nil
}

func (s *serviceImpl) Confirm(ctx context.Context, draftID string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Confirm")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	draft, err := s.drafts.Ready(ctx, draftID)
	if err != nil {
		return res, err // nolint:wrapcheck
	}

	services, totals := s.catalog.Resolve(ctx, draft.SelectedServiceIDs)

	booking, err := s.freeze(draft, services, totals)
	if err != nil {
		log.Error().Err(err).Str("draft_id", draftID).Msg("failed to freeze draft")

		return res, err
	}

	if err = s.repo.Insert(ctx, booking); err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == pq.ErrorCode(constant.PqErrorCodeUniqueViolation) {
			return res, failure.Conflict("This booking has already been confirmed") // nolint:wrapcheck
		}

		log.Error().Err(err).Msg("failed to create booking")

		return res, fmt.Errorf("failed to create booking: %w", err)
	}

	if err := s.drafts.Clear(ctx, draftID); err != nil {
		log.Warn().Err(err).Str("draft_id", draftID).Msg("booking stored but draft was not cleared")
	}

	scope.SetAttributes(map[string]any{
		"booking.id":                  booking.ID,
		"booking.confirmation_number": booking.ConfirmationNumber,
	})

	res.FromModel(booking)

	go func() {
		c := context.WithoutCancel(ctx)

		s.publishCreated(c, booking)

		shared.InvalidateCaches(c, s.cache, cacheGetAllBooking)
		shared.InvalidateCaches(c, s.cache, cacheCountBooking)
	}()

	return res, nil
}

func (s *serviceImpl) publishCreated(ctx context.Context, booking model.Booking) {
	event := model.BookingCreated{
		ID:                 booking.ID,
		ConfirmationNumber: booking.ConfirmationNumber,
		ServiceIDs:         booking.ServiceIDs,
		AppointmentDate:    booking.AppointmentDate.Format(constant.DayFormat),
		StartTime:          booking.StartTime,
		EndTime:            booking.EndTime,
		CustomerEmail:      booking.CustomerEmail,
		TotalPrice:         booking.TotalPrice,
		TotalDuration:      booking.TotalDuration,
		CreatedAt:          booking.CreatedAt,
	}

	err := s.kafka.SendMessages(ctx, s.cfg.Kafka.Topics.BookingCreated, kafka.Message{
		Key:   booking.ID,
		Value: event,
	})
	if err != nil {
		log.Error().Err(err).Str("booking_id", booking.ID).Msg("failed to publish booking created event")
	}
}

func (s *serviceImpl) GetByConfirmationNumber(ctx context.Context, number string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetByConfirmationNumber")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKey(cacheGetBooking, number)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for booking")

		return res, nil
	}

	booking, err := s.repo.Get(ctx, shared.FilterByID(number, model.FieldConfirmationNumber, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return res, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return res, failure.NotFound("booking not found") // nolint:wrapcheck
	}

	res.FromModel(booking)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save booking to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllBooking, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for bookings")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count bookings")

		return res, fmt.Errorf("failed to count bookings: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings")

		return res, fmt.Errorf("failed to get bookings: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save bookings to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountBooking, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for booking count")

		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count bookings")

		return res, fmt.Errorf("failed to count bookings: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save booking count to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) UpdateStatus(ctx context.Context, id string, req dto.UpdateStatusRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdateStatus")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if uuid.Validate(id) != nil {
		return failure.NotFound("booking not found") // nolint:wrapcheck
	}

	actor, _ := ctx.Value(constant.ContextKeyActor).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	booking, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return failure.NotFound("booking not found") // nolint:wrapcheck
	}

	next := model.Status(req.Status)
	if !booking.Status.CanBecome(next) {
		return failure.Conflict(fmt.Sprintf("booking is already %s", booking.Status)) // nolint:wrapcheck
	}

	updatedFields := shared.TransformFields(req, actor)
	if err = s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update booking status")

		return fmt.Errorf("failed to update booking status: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetBooking, booking.ConfirmationNumber)); err != nil {
			log.Error().Err(err).Msg("failed to delete booking from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllBooking)
		shared.InvalidateCaches(c, s.cache, cacheCountBooking)
	}()

	return nil
}
