package availability

import (
	"net/http"
	"strconv"

	"beauteefool/infras/otel"
	"beauteefool/internal/domains/schedule/model/dto"
	"beauteefool/internal/domains/schedule/service"
	"beauteefool/shared"
	"beauteefool/shared/constant"
	"beauteefool/shared/failure"
	"beauteefool/shared/validator"
	"beauteefool/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

const queryParamDuration = "duration"

type Handler struct {
	service service.Schedule
	otel    otel.Otel
}

func New(service service.Schedule, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Get("/availability", handler.GetAvailability)
}

// GetAvailability lists the time slots of a day.
// @Summary Get availability
// @Description List the slots of a day and whether each one fits the total duration of the given services.
// @Tags Availability
// @Produce json
// @Param date query string true "Day (YYYY-MM-DD)"
// @Param services query string false "Comma separated service IDs"
// @Param duration query int false "Duration in minutes, overrides the services"
// @Success 200 {object} response.Data[dto.AvailabilityResponse]
// @Failure 400 {object} response.Error
// @Router /v1/availability [get]
func (handler *Handler) GetAvailability(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetAvailability")
	defer scope.End()

	query := r.URL.Query()

	req := dto.AvailabilityRequest{
		Date:       query.Get(constant.RequestParamDate),
		ServiceIDs: shared.SplitList(query.Get(constant.RequestParamServices)),
	}

	if raw := query.Get(queryParamDuration); raw != constant.Empty {
		duration, err := strconv.Atoi(raw)
		if err != nil {
			err = failure.BadRequestFromString("duration must be a whole number of minutes")
			scope.TraceError(err)

			response.WithError(w, err)

			return
		}

		req.Duration = &duration
	}

	if err := validator.ValidateStruct(&req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate availability request")

		response.WithError(w, err)

		return
	}

	availability, err := handler.service.Availability(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("date", req.Date).Msg("failed to get availability")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, availability)
}
