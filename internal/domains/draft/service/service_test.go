package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"beauteefool/config"
	otelMocks "beauteefool/infras/otel/mocks"
	catalogService "beauteefool/internal/domains/catalog/service"
	customerDto "beauteefool/internal/domains/customer/model/dto"
	"beauteefool/internal/domains/draft/mocks"
	"beauteefool/internal/domains/draft/model"
	"beauteefool/internal/domains/draft/model/dto"
	"beauteefool/internal/domains/draft/repository"
	"beauteefool/internal/domains/draft/service"
	scheduleService "beauteefool/internal/domains/schedule/service"
	"beauteefool/shared/failure"
	"beauteefool/shared/timezone"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var fixedNow = time.Date(2025, 3, 3, 10, 15, 0, 0, timezone.GetLocation())

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Salon.BusinessHours.Open = "09:00"
	cfg.Salon.BusinessHours.Close = "19:00"
	cfg.Salon.BusinessHours.IntervalMinutes = 30
	cfg.Salon.MinServices = 1
	cfg.Salon.MaxServices = 5

	return cfg
}

// storeBacked makes the mock behave like a real store for multi-step flows.
func storeBacked(repo *mocks.MockDraft) map[string]model.BookingDraft {
	store := map[string]model.BookingDraft{}

	repo.EXPECT().Load(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, id string) (model.BookingDraft, error) {
			draft, ok := store[id]
			if !ok {
				return draft, repository.ErrNotFound
			}

			return draft, nil
		}).AnyTimes()
	repo.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, draft model.BookingDraft) error {
			store[draft.ID] = draft

			return nil
		}).AnyTimes()
	repo.EXPECT().Clear(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, id string) error {
			delete(store, id)

			return nil
		}).AnyTimes()

	return store
}

func newService(repo repository.Draft) service.Draft {
	cfg := testConfig()
	otel := otelMocks.NewOtel()
	now := func() time.Time { return fixedNow }

	catalog := catalogService.New(catalogService.NewSalonCatalog(), otel)
	schedule := scheduleService.NewWithClock(scheduleService.NewBusinessHours(cfg), catalog, otel, now)

	return service.NewWithClock(repo, catalog, schedule, cfg, otel, now)
}

func validCustomer() customerDto.CustomerRequest {
	return customerDto.CustomerRequest{
		FullName: "  Jane Doe ",
		Email:    "jane@example.com",
		Phone:    "(555) 123-4567",
	}
}

func TestDraftService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockDraft(ctrl)
	svc := newService(mockRepo)

	mockRepo.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, draft model.BookingDraft) error {
			assert.NotEmpty(t, draft.ID)
			assert.Equal(t, model.StepServices, draft.CurrentStep)
			assert.Equal(t, fixedNow, draft.CreatedAt)

			return nil
		})

	res, err := svc.Create(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 1, res.CurrentStep)
	assert.Empty(t, res.SelectedServiceIDs)
	assert.Empty(t, res.CompletedSteps)
	assert.True(t, res.Totals.Price.IsZero())
}

func TestDraftService_Create_SaveError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockDraft(ctrl)
	svc := newService(mockRepo)

	mockRepo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(errors.New("redis down"))

	_, err := svc.Create(context.Background())

	assert.ErrorContains(t, err, "failed to save draft")
	assert.Equal(t, http.StatusInternalServerError, failure.GetCode(err))
}

func TestDraftService_Get_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockDraft(ctrl)
	svc := newService(mockRepo)

	mockRepo.EXPECT().Load(gomock.Any(), "missing").Return(model.BookingDraft{}, repository.ErrNotFound)

	_, err := svc.Get(context.Background(), "missing")

	assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
}

func TestDraftService_ToggleService(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockDraft(ctrl)
	storeBacked(mockRepo)
	svc := newService(mockRepo)
	ctx := context.Background()

	created, err := svc.Create(ctx)
	require.NoError(t, err)

	res, err := svc.ToggleService(ctx, created.ID, "hair-1")
	require.NoError(t, err)
	assert.Equal(t, []string{"hair-1"}, res.SelectedServiceIDs)
	assert.True(t, decimal.NewFromInt(65).Equal(res.Totals.Price))
	assert.Equal(t, 60, res.Totals.Duration)

	res, err = svc.ToggleService(ctx, created.ID, "nails-1")
	require.NoError(t, err)
	assert.Equal(t, []string{"hair-1", "nails-1"}, res.SelectedServiceIDs)
	assert.True(t, decimal.NewFromInt(100).Equal(res.Totals.Price))
	assert.Equal(t, "1 hr 45 min", res.Totals.DurationLabel)

	res, err = svc.ToggleService(ctx, created.ID, "hair-1")
	require.NoError(t, err)
	assert.Equal(t, []string{"nails-1"}, res.SelectedServiceIDs)

	_, err = svc.ToggleService(ctx, created.ID, "barber-1")
	assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
}

func TestDraftService_Next_ServiceCount(t *testing.T) {
	tests := []struct {
		name     string
		services []string
		wantMsg  string
	}{
		{
			name:    "nothing selected",
			wantMsg: "Please select at least one service",
		},
		{
			name:     "too many",
			services: []string{"hair-1", "hair-2", "hair-3", "nails-1", "nails-2", "spa-1"},
			wantMsg:  "You can select up to 5 services",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockRepo := mocks.NewMockDraft(ctrl)
			storeBacked(mockRepo)
			svc := newService(mockRepo)
			ctx := context.Background()

			created, err := svc.Create(ctx)
			require.NoError(t, err)

			for _, id := range tt.services {
				_, err = svc.ToggleService(ctx, created.ID, id)
				require.NoError(t, err)
			}

			_, err = svc.Next(ctx, created.ID)

			assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
			assert.EqualError(t, err, tt.wantMsg)
		})
	}
}

func TestDraftService_Flow(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockDraft(ctrl)
	store := storeBacked(mockRepo)
	svc := newService(mockRepo)
	ctx := context.Background()

	created, err := svc.Create(ctx)
	require.NoError(t, err)
	id := created.ID

	_, err = svc.ToggleService(ctx, id, "hair-1")
	require.NoError(t, err)

	res, err := svc.Next(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, 2, res.CurrentStep)
	assert.Equal(t, []int{1}, res.CompletedSteps)

	_, err = svc.Next(ctx, id)
	assert.EqualError(t, err, "Please select a date")

	res, err = svc.SetSchedule(ctx, id, dto.ScheduleRequest{Date: "2025-03-04", Time: "10:00 AM"})
	require.NoError(t, err)
	assert.Equal(t, "11:00 AM", res.EndTime)

	res, err = svc.Next(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, 3, res.CurrentStep)

	_, err = svc.Next(ctx, id)
	assert.Equal(t, http.StatusUnprocessableEntity, failure.GetCode(err))

	res, err = svc.SetCustomer(ctx, id, validCustomer())
	require.NoError(t, err)
	require.NotNil(t, res.CustomerInfo)
	assert.Equal(t, "Jane Doe", res.CustomerInfo.FullName)
	assert.Equal(t, "5551234567", res.CustomerInfo.Phone)
	assert.Equal(t, "(555) 123-4567", res.CustomerInfo.PhoneDisplay)

	res, err = svc.Next(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, 4, res.CurrentStep)
	assert.Equal(t, []int{1, 2, 3}, res.CompletedSteps)

	res, err = svc.GoTo(ctx, id, 1)
	require.NoError(t, err)
	assert.Equal(t, 1, res.CurrentStep)

	_, err = svc.GoTo(ctx, id, 4)
	assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))

	res, err = svc.GoTo(ctx, id, 3)
	require.NoError(t, err)
	assert.Equal(t, 3, res.CurrentStep)

	res, err = svc.Next(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, 4, res.CurrentStep)

	res, err = svc.Back(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, 3, res.CurrentStep)

	draft, err := svc.Ready(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "10:00 AM", draft.SelectedTime)

	require.NoError(t, svc.Clear(ctx, id))
	assert.NotContains(t, store, id)

	_, err = svc.Ready(ctx, id)
	assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
}

func TestDraftService_SetSchedule(t *testing.T) {
	tests := []struct {
		name     string
		req      dto.ScheduleRequest
		wantCode int
	}{
		{
			name: "valid",
			req:  dto.ScheduleRequest{Date: "2025-03-04", Time: "2:30 PM"},
		},
		{
			name:     "malformed date",
			req:      dto.ScheduleRequest{Date: "03/04/2025", Time: "2:30 PM"},
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "24 hour time",
			req:      dto.ScheduleRequest{Date: "2025-03-04", Time: "14:30"},
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "hour out of range",
			req:      dto.ScheduleRequest{Date: "2025-03-04", Time: "13:00 PM"},
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "minute out of range",
			req:      dto.ScheduleRequest{Date: "2025-03-04", Time: "9:60 AM"},
			wantCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockRepo := mocks.NewMockDraft(ctrl)
			storeBacked(mockRepo)
			svc := newService(mockRepo)
			ctx := context.Background()

			created, err := svc.Create(ctx)
			require.NoError(t, err)

			res, err := svc.SetSchedule(ctx, created.ID, tt.req)
			if tt.wantCode != 0 {
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.req.Date, res.SelectedDate)
			assert.Equal(t, tt.req.Time, res.SelectedTime)
		})
	}
}

func TestDraftService_Next_ScheduleChecks(t *testing.T) {
	tests := []struct {
		name     string
		schedule dto.ScheduleRequest
		wantCode int
		wantMsg  string
	}{
		{
			name:     "past date",
			schedule: dto.ScheduleRequest{Date: "2025-03-02", Time: "10:00 AM"},
			wantCode: http.StatusBadRequest,
			wantMsg:  "Please select today or a future date",
		},
		{
			name:     "off the grid",
			schedule: dto.ScheduleRequest{Date: "2025-03-04", Time: "10:15 AM"},
			wantCode: http.StatusBadRequest,
			wantMsg:  "Please select a valid time slot",
		},
		{
			name:     "elapsed slot today",
			schedule: dto.ScheduleRequest{Date: "2025-03-03", Time: "9:30 AM"},
			wantCode: http.StatusConflict,
			wantMsg:  "The selected time slot is no longer available",
		},
		{
			name:     "runs past closing",
			schedule: dto.ScheduleRequest{Date: "2025-03-04", Time: "6:30 PM"},
			wantCode: http.StatusConflict,
			wantMsg:  "The selected time slot is no longer available",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockRepo := mocks.NewMockDraft(ctrl)
			storeBacked(mockRepo)
			svc := newService(mockRepo)
			ctx := context.Background()

			created, err := svc.Create(ctx)
			require.NoError(t, err)

			_, err = svc.ToggleService(ctx, created.ID, "hair-1")
			require.NoError(t, err)

			_, err = svc.Next(ctx, created.ID)
			require.NoError(t, err)

			_, err = svc.SetSchedule(ctx, created.ID, tt.schedule)
			require.NoError(t, err)

			_, err = svc.Next(ctx, created.ID)

			assert.Equal(t, tt.wantCode, failure.GetCode(err))
			assert.EqualError(t, err, tt.wantMsg)
		})
	}
}

func TestDraftService_SetCustomer_Invalid(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockDraft(ctrl)
	svc := newService(mockRepo)

	_, err := svc.SetCustomer(context.Background(), "any", customerDto.CustomerRequest{
		FullName: "J",
		Email:    "nope",
		Phone:    "123",
	})

	assert.Equal(t, http.StatusUnprocessableEntity, failure.GetCode(err))

	fields := failure.GetFields(err)
	assert.Equal(t, "Name must be at least 2 characters", fields["full_name"])
	assert.Equal(t, "Please enter a valid email address", fields["email"])
	assert.Equal(t, "Phone number must have at least 10 digits", fields["phone"])
}

func TestDraftService_GoTo(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockDraft(ctrl)
	storeBacked(mockRepo)
	svc := newService(mockRepo)
	ctx := context.Background()

	created, err := svc.Create(ctx)
	require.NoError(t, err)

	_, err = svc.GoTo(ctx, created.ID, 3)
	assert.EqualError(t, err, "step 3 is not reachable yet")

	_, err = svc.GoTo(ctx, created.ID, 7)
	assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))

	res, err := svc.Back(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, res.CurrentStep)
}
