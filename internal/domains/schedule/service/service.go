package service

import (
	"context"
	"time"

	"beauteefool/config"
	"beauteefool/infras/otel"
	catalogModel "beauteefool/internal/domains/catalog/model"
	catalogService "beauteefool/internal/domains/catalog/service"
	"beauteefool/internal/domains/schedule/model"
	"beauteefool/internal/domains/schedule/model/dto"
	"beauteefool/shared/constant"
	"beauteefool/shared/failure"
	"beauteefool/shared/timezone"

	"github.com/rs/zerolog/log"
)

type Schedule interface {
	Availability(ctx context.Context, req dto.AvailabilityRequest) (dto.AvailabilityResponse, error)
	// CheckSlot fails unless label is an open slot on date for the given duration.
	CheckSlot(ctx context.Context, date time.Time, label string, duration int) error
	Hours() model.BusinessHours
}

type serviceImpl struct {
	hours   model.BusinessHours
	catalog catalogService.Catalog
	now     func() time.Time
	otel    otel.Otel
}

func New(hours model.BusinessHours, catalog catalogService.Catalog, otel otel.Otel) Schedule {
	return NewWithClock(hours, catalog, otel, timezone.Now)
}

func NewWithClock(hours model.BusinessHours, catalog catalogService.Catalog, otel otel.Otel, now func() time.Time) Schedule {
	return &serviceImpl{
		hours:   hours,
		catalog: catalog,
		now:     now,
		otel:    otel,
	}
}

// NewBusinessHours reads the window from config and exits when it is misconfigured.
func NewBusinessHours(cfg *config.Config) model.BusinessHours {
	conf := cfg.Salon.BusinessHours

	hours, err := model.NewBusinessHours(conf.Open, conf.Close, conf.IntervalMinutes)
	if err != nil {
		log.Fatal().
			Err(err).
			Str("open", conf.Open).
			Str("close", conf.Close).
			Int("interval", conf.IntervalMinutes).
			Msg("invalid business hours")
	}

	return hours
}

func (s *serviceImpl) Hours() model.BusinessHours {
	return s.hours
}

func (s *serviceImpl) Availability(ctx context.Context, req dto.AvailabilityRequest) (res dto.AvailabilityResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Availability")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	date, err := timezone.ParseDay(req.Date)
	if err != nil {
		return res, failure.BadRequestFromString("date must be formatted as YYYY-MM-DD") // nolint:wrapcheck
	}

	_, totals := s.catalog.Resolve(ctx, req.ServiceIDs)

	duration := totals.Duration
	if req.Duration != nil {
		duration = *req.Duration
	}

	slots, err := s.hours.Slots(date, duration, s.now())
	if err != nil {
		return res, failure.BadRequest(err) // nolint:wrapcheck
	}

	res.Date = req.Date
	res.Totals.FromModel(catalogModel.Totals{Price: totals.Price, Duration: duration})
	res.FromSlots(slots, duration)

	scope.SetAttributes(map[string]any{
		"schedule.date":       req.Date,
		"schedule.duration":   duration,
		"schedule.open_slots": res.OpenSlotCount,
	})

	return res, nil
}

func (s *serviceImpl) CheckSlot(ctx context.Context, date time.Time, label string, duration int) (err error) {
	_, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CheckSlot")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	now := s.now()

	if date.Before(timezone.StartOfDay(now)) {
		return failure.BadRequestFromString("Please select today or a future date") // nolint:wrapcheck
	}

	slot, ok := s.hours.Slot(date, label, duration, now)
	if !ok {
		return failure.BadRequestFromString("Please select a valid time slot") // nolint:wrapcheck
	}

	if !slot.Available {
		return failure.Conflict("The selected time slot is no longer available") // nolint:wrapcheck
	}

	return nil
}
