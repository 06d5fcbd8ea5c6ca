package gallery

import (
	"net/http"

	"beauteefool/infras/otel"
	"beauteefool/internal/domains/gallery/model/dto"
	"beauteefool/internal/domains/gallery/service"
	"beauteefool/shared/constant"
	gDto "beauteefool/shared/dto"
	"beauteefool/shared/failure"
	"beauteefool/shared/validator"
	"beauteefool/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Gallery
	otel    otel.Otel
}

func New(service service.Gallery, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/gallery", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetImages)
		routerGroup.Get("/{id}", handler.GetImageByID)
	})
}

// AdminRouter registers the routes that change the gallery. The caller guards them.
func (handler *Handler) AdminRouter(router chi.Router) {
	router.Route("/gallery", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateImage)
		routerGroup.Post("/upload", handler.UploadImage)
		routerGroup.Delete("/{id}", handler.DeleteImage)
	})
}

// GetImages lists gallery images, optionally by category.
// @Summary Get gallery images
// @Tags Gallery
// @Produce json
// @Param category query string false "Category (all, hair, nails, makeup, spa, interior)"
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Success 200 {object} response.Data[dto.GetImagesResponse]
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/gallery [get]
func (handler *Handler) GetImages(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetImages")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	filterGroup, err := dto.CategoryFilter(r.URL.Query().Get(constant.RequestParamCategory))
	if err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	images, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get gallery images")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, images)
}

// GetImageByID retrieves one gallery image.
// @Summary Get a gallery image by ID
// @Tags Gallery
// @Produce json
// @Param id path string true "Image ID"
// @Success 200 {object} response.Data[dto.ImageResponse]
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/gallery/{id} [get]
func (handler *Handler) GetImageByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetImageByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	image, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("id", id).Msg("failed to get gallery image")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, image)
}

// CreateImage adds an image to the gallery.
// @Summary Create a gallery image
// @Tags Gallery
// @Accept json
// @Produce json
// @Param request body dto.CreateImageRequest true "Create Image Request"
// @Success 201 {object} response.Data[dto.ImageResponse]
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/admin/gallery [post]
// @Security APIKey
func (handler *Handler) CreateImage(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateImage")
	defer scope.End()

	req := dto.CreateImageRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	image, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create gallery image")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Gallery image created " + image.ID)

	response.WithJSON(w, http.StatusCreated, image)
}

// UploadImage stores an image file and returns its public URL.
// @Summary Upload a gallery image
// @Tags Gallery
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Image file"
// @Success 200 {object} response.Data[dto.UploadImageResponse]
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/admin/gallery/upload [post]
// @Security APIKey
func (handler *Handler) UploadImage(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UploadImage")
	defer scope.End()

	if err := r.ParseMultipartForm(constant.RequestMaxMemory); err != nil {
		err = failure.BadRequest(err)
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to parse multipart form")

		response.WithError(w, err)

		return
	}

	file, fileHeader, err := r.FormFile(constant.FormFile)
	if err != nil {
		err = failure.BadRequest(err)
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get file from form")

		response.WithError(w, err)

		return
	}
	defer file.Close()

	req := dto.UploadImageRequest{
		Image:     fileHeader,
		ImageFile: file,
	}

	if err = validator.ValidateStruct(&req); err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	res, err := handler.service.UploadImage(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to upload file")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Image uploaded " + res.FileName)

	response.WithJSON(w, http.StatusOK, res)
}

// DeleteImage removes an image from the gallery.
// @Summary Delete a gallery image
// @Tags Gallery
// @Produce json
// @Param id path string true "Image ID"
// @Success 200 {object} response.Message
// @Failure 401 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/admin/gallery/{id} [delete]
// @Security APIKey
func (handler *Handler) DeleteImage(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteImage")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("id", id).Msg("failed to delete gallery image")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Gallery image deleted successfully")
}
