package draft

import (
	"net/http"
	"strconv"

	"beauteefool/infras/otel"
	bookingService "beauteefool/internal/domains/booking/service"
	customerDto "beauteefool/internal/domains/customer/model/dto"
	"beauteefool/internal/domains/draft/model/dto"
	"beauteefool/internal/domains/draft/service"
	"beauteefool/shared/constant"
	"beauteefool/shared/failure"
	"beauteefool/shared/validator"
	"beauteefool/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service  service.Draft
	bookings bookingService.Booking
	otel     otel.Otel
}

func New(service service.Draft, bookings bookingService.Booking, otel otel.Otel) Handler {
	return Handler{
		service:  service,
		bookings: bookings,
		otel:     otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/drafts", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateDraft)
		routerGroup.Get("/{id}", handler.GetDraft)
		routerGroup.Delete("/{id}", handler.ClearDraft)
		routerGroup.Post("/{id}/services/{serviceID}", handler.ToggleService)
		routerGroup.Put("/{id}/schedule", handler.SetSchedule)
		routerGroup.Put("/{id}/customer", handler.SetCustomer)
		routerGroup.Post("/{id}/next", handler.Next)
		routerGroup.Post("/{id}/back", handler.Back)
		routerGroup.Post("/{id}/steps/{step}", handler.GoTo)
		routerGroup.Post("/{id}/confirm", handler.Confirm)
	})
}

func (handler *Handler) fail(w http.ResponseWriter, scope otel.Scope, err error, msg, id string) {
	scope.TraceError(err)

	if failure.GetCode(err) >= http.StatusInternalServerError {
		log.Error().Err(err).Str("draft_id", id).Msg(msg)
	} else {
		log.Debug().Err(err).Str("draft_id", id).Msg(msg)
	}

	response.WithError(w, err)
}

// CreateDraft starts an empty booking draft at the service step.
// @Summary Create a booking draft
// @Tags Draft
// @Produce json
// @Success 201 {object} response.Data[dto.DraftResponse]
// @Failure 500 {object} response.Error
// @Router /v1/drafts [post]
func (handler *Handler) CreateDraft(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateDraft")
	defer scope.End()

	draft, err := handler.service.Create(ctx)
	if err != nil {
		handler.fail(w, scope, err, "failed to create draft", constant.Empty)

		return
	}

	scope.AddEvent("Draft created " + draft.ID)

	response.WithJSON(w, http.StatusCreated, draft)
}

// GetDraft restores a draft with its resolved services and totals.
// @Summary Get a booking draft
// @Tags Draft
// @Produce json
// @Param id path string true "Draft ID"
// @Success 200 {object} response.Data[dto.DraftResponse]
// @Failure 404 {object} response.Error
// @Router /v1/drafts/{id} [get]
func (handler *Handler) GetDraft(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetDraft")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	draft, err := handler.service.Get(ctx, id)
	if err != nil {
		handler.fail(w, scope, err, "failed to get draft", id)

		return
	}

	response.WithJSON(w, http.StatusOK, draft)
}

// ClearDraft throws a draft away.
// @Summary Clear a booking draft
// @Tags Draft
// @Produce json
// @Param id path string true "Draft ID"
// @Success 200 {object} response.Message
// @Failure 500 {object} response.Error
// @Router /v1/drafts/{id} [delete]
func (handler *Handler) ClearDraft(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ClearDraft")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Clear(ctx, id); err != nil {
		handler.fail(w, scope, err, "failed to clear draft", id)

		return
	}

	response.WithMessage(w, http.StatusOK, "Draft cleared successfully")
}

// ToggleService adds the service to the selection, or removes it when already selected.
// @Summary Toggle a service
// @Tags Draft
// @Produce json
// @Param id path string true "Draft ID"
// @Param serviceID path string true "Service ID"
// @Success 200 {object} response.Data[dto.DraftResponse]
// @Failure 404 {object} response.Error
// @Router /v1/drafts/{id}/services/{serviceID} [post]
func (handler *Handler) ToggleService(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ToggleService")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	draft, err := handler.service.ToggleService(ctx, id, chi.URLParam(r, constant.RequestParamServiceID))
	if err != nil {
		handler.fail(w, scope, err, "failed to toggle service", id)

		return
	}

	response.WithJSON(w, http.StatusOK, draft)
}

// SetSchedule records the chosen day and start time.
// @Summary Set the schedule
// @Tags Draft
// @Accept json
// @Produce json
// @Param id path string true "Draft ID"
// @Param request body dto.ScheduleRequest true "Schedule"
// @Success 200 {object} response.Data[dto.DraftResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/drafts/{id}/schedule [put]
func (handler *Handler) SetSchedule(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SetSchedule")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)
	req := dto.ScheduleRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		handler.fail(w, scope, err, "failed to validate request body", id)

		return
	}

	draft, err := handler.service.SetSchedule(ctx, id, req)
	if err != nil {
		handler.fail(w, scope, err, "failed to set schedule", id)

		return
	}

	response.WithJSON(w, http.StatusOK, draft)
}

// SetCustomer records the contact details. Violations come back per field.
// @Summary Set the customer info
// @Tags Draft
// @Accept json
// @Produce json
// @Param id path string true "Draft ID"
// @Param request body customerDto.CustomerRequest true "Customer info"
// @Success 200 {object} response.Data[dto.DraftResponse]
// @Failure 400 {object} response.Error
// @Failure 422 {object} response.Error
// @Router /v1/drafts/{id}/customer [put]
func (handler *Handler) SetCustomer(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SetCustomer")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)
	req := customerDto.CustomerRequest{}

	if err := validator.Decode(r.Body, &req); err != nil {
		handler.fail(w, scope, err, "failed to decode request body", id)

		return
	}

	draft, err := handler.service.SetCustomer(ctx, id, req)
	if err != nil {
		handler.fail(w, scope, err, "failed to set customer info", id)

		return
	}

	response.WithJSON(w, http.StatusOK, draft)
}

// Next validates the current step and moves forward.
// @Summary Go to the next step
// @Tags Draft
// @Produce json
// @Param id path string true "Draft ID"
// @Success 200 {object} response.Data[dto.DraftResponse]
// @Failure 400 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 422 {object} response.Error
// @Router /v1/drafts/{id}/next [post]
func (handler *Handler) Next(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Next")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	draft, err := handler.service.Next(ctx, id)
	if err != nil {
		handler.fail(w, scope, err, "failed to advance draft", id)

		return
	}

	response.WithJSON(w, http.StatusOK, draft)
}

// Back moves one step back, never before the first step.
// @Summary Go to the previous step
// @Tags Draft
// @Produce json
// @Param id path string true "Draft ID"
// @Success 200 {object} response.Data[dto.DraftResponse]
// @Failure 404 {object} response.Error
// @Router /v1/drafts/{id}/back [post]
func (handler *Handler) Back(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Back")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	draft, err := handler.service.Back(ctx, id)
	if err != nil {
		handler.fail(w, scope, err, "failed to move draft back", id)

		return
	}

	response.WithJSON(w, http.StatusOK, draft)
}

// GoTo jumps to a completed step or the one right after the furthest completed step.
// @Summary Go to a step
// @Tags Draft
// @Produce json
// @Param id path string true "Draft ID"
// @Param step path int true "Step (1-4)"
// @Success 200 {object} response.Data[dto.DraftResponse]
// @Failure 400 {object} response.Error
// @Router /v1/drafts/{id}/steps/{step} [post]
func (handler *Handler) GoTo(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GoTo")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	step, err := strconv.Atoi(chi.URLParam(r, constant.RequestParamStep))
	if err != nil {
		handler.fail(w, scope, failure.BadRequestFromString("step must be a number"), "invalid step", id)

		return
	}

	draft, err := handler.service.GoTo(ctx, id, step)
	if err != nil {
		handler.fail(w, scope, err, "failed to jump to step", id)

		return
	}

	response.WithJSON(w, http.StatusOK, draft)
}

// Confirm turns a reviewed draft into a booking.
// @Summary Confirm a booking
// @Description Re-checks every step, stores the booking with its confirmation number and clears the draft.
// @Tags Draft
// @Produce json
// @Param id path string true "Draft ID"
// @Success 201 {object} response.Data[bookingDto.BookingResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 422 {object} response.Error
// @Router /v1/drafts/{id}/confirm [post]
func (handler *Handler) Confirm(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Confirm")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	booking, err := handler.bookings.Confirm(ctx, id)
	if err != nil {
		handler.fail(w, scope, err, "failed to confirm booking", id)

		return
	}

	scope.AddEvent("Booking confirmed " + booking.ConfirmationNumber)

	response.WithJSON(w, http.StatusCreated, booking)
}
