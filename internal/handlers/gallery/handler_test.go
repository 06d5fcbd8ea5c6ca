package gallery_test

import (
	"bytes"
	"context"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"strings"
	"testing"

	otelMocks "beauteefool/infras/otel/mocks"
	"beauteefool/internal/domains/gallery/model/dto"
	"beauteefool/internal/handlers/gallery"
	gDto "beauteefool/shared/dto"
	"beauteefool/shared/failure"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeGallery struct {
	created  []dto.CreateImageRequest
	uploaded []string
	deleted  []string
	filters  []gDto.FilterGroup
}

func (f *fakeGallery) Create(_ context.Context, req dto.CreateImageRequest) (dto.ImageResponse, error) {
	f.created = append(f.created, req)

	return dto.ImageResponse{ID: "img-21", Src: req.Src, Category: req.Category}, nil
}

func (f *fakeGallery) GetAll(_ context.Context, _ gDto.QueryParams, filter gDto.FilterGroup) (dto.GetImagesResponse, error) {
	f.filters = append(f.filters, filter)

	return dto.GetImagesResponse{Images: []dto.ImageResponse{}, TotalPage: 1}, nil
}

func (f *fakeGallery) Count(context.Context, gDto.QueryParams, gDto.FilterGroup) (int, error) {
	return 0, nil
}

func (f *fakeGallery) Get(_ context.Context, id string) (dto.ImageResponse, error) {
	if id != "img-1" {
		return dto.ImageResponse{}, failure.NotFound("gallery image not found")
	}

	return dto.ImageResponse{ID: id}, nil
}

func (f *fakeGallery) Delete(_ context.Context, id string) error {
	f.deleted = append(f.deleted, id)

	return nil
}

func (f *fakeGallery) UploadImage(_ context.Context, req dto.UploadImageRequest) (dto.UploadImageResponse, error) {
	f.uploaded = append(f.uploaded, req.Image.Filename)

	return dto.UploadImageResponse{URL: "https://cdn.example.com/" + req.Image.Filename, FileName: req.Image.Filename}, nil
}

func newRouter(svc *fakeGallery) chi.Router {
	handler := gallery.New(svc, otelMocks.NewOtel())

	router := chi.NewRouter()
	router.Route("/v1", func(v1 chi.Router) {
		handler.Router(v1)
		v1.Route("/admin", handler.AdminRouter)
	})

	return router
}

func serve(router chi.Router, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	return rec
}

func TestGetImages(t *testing.T) {
	svc := &fakeGallery{}
	router := newRouter(svc)

	assert.Equal(t, http.StatusOK, serve(router, httptest.NewRequest(http.MethodGet, "/v1/gallery?category=hair", nil)).Code)
	assert.Equal(t, http.StatusOK, serve(router, httptest.NewRequest(http.MethodGet, "/v1/gallery", nil)).Code)
	assert.Equal(t, http.StatusBadRequest, serve(router, httptest.NewRequest(http.MethodGet, "/v1/gallery?category=barber", nil)).Code)
	assert.Len(t, svc.filters, 2)
}

func TestGetImageByID(t *testing.T) {
	router := newRouter(&fakeGallery{})

	assert.Equal(t, http.StatusOK, serve(router, httptest.NewRequest(http.MethodGet, "/v1/gallery/img-1", nil)).Code)
	assert.Equal(t, http.StatusNotFound, serve(router, httptest.NewRequest(http.MethodGet, "/v1/gallery/img-99", nil)).Code)
}

func TestCreateImage(t *testing.T) {
	svc := &fakeGallery{}
	router := newRouter(svc)

	valid := `{"src":"https://cdn.example.com/a.jpg","category":"spa","alt":"Hot stone massage","width":800,"height":600}`
	rec := serve(router, httptest.NewRequest(http.MethodPost, "/v1/admin/gallery", strings.NewReader(valid)))
	assert.Equal(t, http.StatusCreated, rec.Code)
	require.Len(t, svc.created, 1)
	assert.Equal(t, "spa", svc.created[0].Category)

	invalid := `{"src":"not a url","category":"spa","alt":"x","width":800,"height":600}`
	rec = serve(router, httptest.NewRequest(http.MethodPost, "/v1/admin/gallery", strings.NewReader(invalid)))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUploadImage(t *testing.T) {
	newUpload := func(contentType string) *http.Request {
		body := &bytes.Buffer{}
		writer := multipart.NewWriter(body)

		header := textproto.MIMEHeader{}
		header.Set("Content-Disposition", `form-data; name="file"; filename="salon.png"`)
		header.Set("Content-Type", contentType)

		part, err := writer.CreatePart(header)
		require.NoError(t, err)
		_, err = part.Write([]byte("\x89PNG\r\n\x1a\n"))
		require.NoError(t, err)
		require.NoError(t, writer.Close())

		req := httptest.NewRequest(http.MethodPost, "/v1/admin/gallery/upload", body)
		req.Header.Set("Content-Type", writer.FormDataContentType())

		return req
	}

	svc := &fakeGallery{}
	router := newRouter(svc)

	assert.Equal(t, http.StatusOK, serve(router, newUpload("image/png")).Code)
	assert.Equal(t, []string{"salon.png"}, svc.uploaded)

	assert.Equal(t, http.StatusBadRequest, serve(router, newUpload("application/pdf")).Code)
	assert.Len(t, svc.uploaded, 1)
}

func TestDeleteImage(t *testing.T) {
	svc := &fakeGallery{}

	rec := serve(newRouter(svc), httptest.NewRequest(http.MethodDelete, "/v1/admin/gallery/img-1", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []string{"img-1"}, svc.deleted)
}
