package catalog

import (
	"net/http"

	"beauteefool/infras/otel"
	"beauteefool/internal/domains/catalog/service"
	"beauteefool/shared/constant"
	"beauteefool/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Catalog
	otel    otel.Otel
}

func New(service service.Catalog, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/services", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetServices)
		routerGroup.Get("/categories", handler.GetCategories)
		routerGroup.Get("/{id}", handler.GetServiceByID)
	})
}

// GetServices lists the salon menu.
// @Summary Get services
// @Description List the salon services, optionally narrowed to one category.
// @Tags Catalog
// @Produce json
// @Param category query string false "Category (all, hair, nails, makeup, spa, facial)"
// @Success 200 {object} response.Data[dto.GetServicesResponse]
// @Failure 400 {object} response.Error
// @Router /v1/services [get]
func (handler *Handler) GetServices(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetServices")
	defer scope.End()

	services, err := handler.service.GetAll(ctx, r.URL.Query().Get(constant.RequestParamCategory))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get services")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, services)
}

// GetCategories lists the service categories with their labels.
// @Summary Get categories
// @Tags Catalog
// @Produce json
// @Success 200 {object} response.Data[[]dto.CategoryResponse]
// @Router /v1/services/categories [get]
func (handler *Handler) GetCategories(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetCategories")
	defer scope.End()

	response.WithJSON(w, http.StatusOK, handler.service.Categories(ctx))
}

// GetServiceByID retrieves one service.
// @Summary Get a service by ID
// @Tags Catalog
// @Produce json
// @Param id path string true "Service ID"
// @Success 200 {object} response.Data[dto.ServiceResponse]
// @Failure 404 {object} response.Error
// @Router /v1/services/{id} [get]
func (handler *Handler) GetServiceByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetServiceByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	service, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("id", id).Msg("failed to get service")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, service)
}
