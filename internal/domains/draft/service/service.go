package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"beauteefool/config"
	"beauteefool/infras/otel"
	catalogService "beauteefool/internal/domains/catalog/service"
	customerDto "beauteefool/internal/domains/customer/model/dto"
	"beauteefool/internal/domains/draft/model"
	"beauteefool/internal/domains/draft/model/dto"
	"beauteefool/internal/domains/draft/repository"
	scheduleModel "beauteefool/internal/domains/schedule/model"
	scheduleService "beauteefool/internal/domains/schedule/service"
	"beauteefool/shared/constant"
	"beauteefool/shared/failure"
	"beauteefool/shared/timezone"
	"beauteefool/shared/validator"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

type Draft interface {
	Create(ctx context.Context) (dto.DraftResponse, error)
	Get(ctx context.Context, id string) (dto.DraftResponse, error)
	ToggleService(ctx context.Context, id, serviceID string) (dto.DraftResponse, error)
	SetSchedule(ctx context.Context, id string, req dto.ScheduleRequest) (dto.DraftResponse, error)
	SetCustomer(ctx context.Context, id string, req customerDto.CustomerRequest) (dto.DraftResponse, error)
	Next(ctx context.Context, id string) (dto.DraftResponse, error)
	Back(ctx context.Context, id string) (dto.DraftResponse, error)
	GoTo(ctx context.Context, id string, step int) (dto.DraftResponse, error)
	Clear(ctx context.Context, id string) error
	// Ready loads the draft and re-checks every step before review.
	Ready(ctx context.Context, id string) (model.BookingDraft, error)
}

type serviceImpl struct {
	repo     repository.Draft
	catalog  catalogService.Catalog
	schedule scheduleService.Schedule
	cfg      *config.Config
	now      func() time.Time
	otel     otel.Otel
}

func New(
	repo repository.Draft,
	catalog catalogService.Catalog,
	schedule scheduleService.Schedule,
	cfg *config.Config,
	otel otel.Otel,
) Draft {
	return NewWithClock(repo, catalog, schedule, cfg, otel, timezone.Now)
}

func NewWithClock(
	repo repository.Draft,
	catalog catalogService.Catalog,
	schedule scheduleService.Schedule,
	cfg *config.Config,
	otel otel.Otel,
	now func() time.Time,
) Draft {
	return &serviceImpl{
		repo:     repo,
		catalog:  catalog,
		schedule: schedule,
		cfg:      cfg,
		now:      now,
		otel:     otel,
	}
}

func (s *serviceImpl) load(ctx context.Context, id string) (model.BookingDraft, error) {
	draft, err := s.repo.Load(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return draft, failure.NotFound("draft not found") // nolint:wrapcheck
	}

	if err != nil {
		log.Error().Err(err).Str("draft_id", id).Msg("failed to load draft")

		return draft, fmt.Errorf("failed to load draft: %w", err)
	}

	return draft, nil
}

func (s *serviceImpl) save(ctx context.Context, draft *model.BookingDraft) error {
	draft.UpdatedAt = s.now()

	if err := s.repo.Save(ctx, *draft); err != nil {
		log.Error().Err(err).Str("draft_id", draft.ID).Msg("failed to save draft")

		return fmt.Errorf("failed to save draft: %w", err)
	}

	return nil
}

func (s *serviceImpl) respond(ctx context.Context, draft model.BookingDraft) (res dto.DraftResponse) {
	services, totals := s.catalog.Resolve(ctx, draft.SelectedServiceIDs)

	endTime := constant.Empty
	if draft.SelectedTime != constant.Empty {
		var err error

		endTime, err = scheduleModel.EndTime(draft.SelectedTime, totals.Duration)
		if err != nil {
			log.Warn().Err(err).Str("draft_id", draft.ID).Str("time", draft.SelectedTime).Msg("failed to calculate end time")
		}
	}

	res.FromModel(draft, services, totals, endTime)

	return res
}

// update loads the draft, applies fn and persists the result.
func (s *serviceImpl) update(ctx context.Context, id string, fn func(*model.BookingDraft) error) (res dto.DraftResponse, err error) {
	draft, err := s.load(ctx, id)
	if err != nil {
		return res, err
	}

	if err = fn(&draft); err != nil {
		return res, err
	}

	if err = s.save(ctx, &draft); err != nil {
		return res, err
	}

	return s.respond(ctx, draft), nil
}

func (s *serviceImpl) Create(ctx context.Context) (res dto.DraftResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	draft := model.New(uuid.NewString(), s.now())

	if err = s.save(ctx, &draft); err != nil {
		return res, err
	}

	scope.SetAttribute("draft.id", draft.ID)

	return s.respond(ctx, draft), nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.DraftResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	draft, err := s.load(ctx, id)
	if err != nil {
		return res, err
	}

	return s.respond(ctx, draft), nil
}

func (s *serviceImpl) ToggleService(ctx context.Context, id, serviceID string) (res dto.DraftResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ToggleService")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if !s.catalog.Exists(serviceID) {
		return res, failure.NotFound("service not found") // nolint:wrapcheck
	}

	return s.update(ctx, id, func(draft *model.BookingDraft) error {
		selected := draft.Toggle(serviceID)
		scope.SetAttributes(map[string]any{
			"draft.service_id": serviceID,
			"draft.selected":   selected,
		})

		return nil
	})
}

func (s *serviceImpl) SetSchedule(ctx context.Context, id string, req dto.ScheduleRequest) (res dto.DraftResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".SetSchedule")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = validator.ValidateStruct(&req); err != nil {
		return res, err // nolint:wrapcheck
	}

	return s.update(ctx, id, func(draft *model.BookingDraft) error {
		draft.SelectedDate = req.Date
		draft.SelectedTime = req.Time

		return nil
	})
}

func (s *serviceImpl) SetCustomer(ctx context.Context, id string, req customerDto.CustomerRequest) (res dto.DraftResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".SetCustomer")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	info, fields := req.Validate()
	if fields != nil {
		return res, failure.Unprocessable("invalid customer info", fields) // nolint:wrapcheck
	}

	return s.update(ctx, id, func(draft *model.BookingDraft) error {
		draft.CustomerInfo = &info

		return nil
	})
}

func (s *serviceImpl) Next(ctx context.Context, id string) (res dto.DraftResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Next")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	return s.update(ctx, id, func(draft *model.BookingDraft) error {
		if err := s.validateStep(ctx, *draft, draft.CurrentStep); err != nil {
			return err
		}

		draft.Advance()

		return nil
	})
}

func (s *serviceImpl) Back(ctx context.Context, id string) (res dto.DraftResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Back")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	return s.update(ctx, id, func(draft *model.BookingDraft) error {
		draft.Retreat()

		return nil
	})
}

func (s *serviceImpl) GoTo(ctx context.Context, id string, step int) (res dto.DraftResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GoTo")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	target := model.Step(step)
	if !target.Valid() {
		return res, failure.BadRequestFromString(fmt.Sprintf("step must be between %d and %d", model.StepServices, model.StepReview)) // nolint:wrapcheck
	}

	return s.update(ctx, id, func(draft *model.BookingDraft) error {
		if !draft.CanGoTo(target) {
			return failure.BadRequestFromString(fmt.Sprintf("step %d is not reachable yet", step)) // nolint:wrapcheck
		}

		draft.CurrentStep = target

		return nil
	})
}

func (s *serviceImpl) Clear(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Clear")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = s.repo.Clear(ctx, id); err != nil {
		log.Error().Err(err).Str("draft_id", id).Msg("failed to clear draft")

		return fmt.Errorf("failed to clear draft: %w", err)
	}

	return nil
}

func (s *serviceImpl) Ready(ctx context.Context, id string) (draft model.BookingDraft, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Ready")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	draft, err = s.load(ctx, id)
	if err != nil {
		return draft, err
	}

	for _, step := range []model.Step{model.StepServices, model.StepSchedule, model.StepCustomer} {
		if err = s.validateStep(ctx, draft, step); err != nil {
			return draft, err
		}
	}

	return draft, nil
}

func (s *serviceImpl) validateStep(ctx context.Context, draft model.BookingDraft, step model.Step) error {
	switch step {
	case model.StepServices:
		count := len(draft.SelectedServiceIDs)
		if count < s.cfg.Salon.MinServices || count == 0 {
			return failure.BadRequestFromString("Please select at least one service") // nolint:wrapcheck
		}

		if count > s.cfg.Salon.MaxServices {
			return failure.BadRequestFromString(fmt.Sprintf("You can select up to %d services", s.cfg.Salon.MaxServices)) // nolint:wrapcheck
		}
	case model.StepSchedule:
		if draft.SelectedDate == constant.Empty {
			return failure.BadRequestFromString("Please select a date") // nolint:wrapcheck
		}

		if draft.SelectedTime == constant.Empty {
			return failure.BadRequestFromString("Please select a time") // nolint:wrapcheck
		}

		date, err := timezone.ParseDay(draft.SelectedDate)
		if err != nil {
			return failure.BadRequestFromString("date must be formatted as YYYY-MM-DD") // nolint:wrapcheck
		}

		_, totals := s.catalog.Resolve(ctx, draft.SelectedServiceIDs)

		return s.schedule.CheckSlot(ctx, date, draft.SelectedTime, totals.Duration) // nolint:wrapcheck
	case model.StepCustomer:
		if draft.CustomerInfo == nil {
			return failure.Unprocessable("invalid customer info", map[string]string{ // nolint:wrapcheck
				"full_name": "Name must be at least 2 characters",
			})
		}

		if _, fields := customerDto.FromModel(*draft.CustomerInfo).Validate(); fields != nil {
			return failure.Unprocessable("invalid customer info", fields) // nolint:wrapcheck
		}
	case model.StepReview:
	}

	return nil
}
