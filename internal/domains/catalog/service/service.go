package service

import (
	"context"

	"beauteefool/infras/otel"
	"beauteefool/internal/domains/catalog/model"
	"beauteefool/internal/domains/catalog/model/dto"
	"beauteefool/shared/constant"
	"beauteefool/shared/failure"

	"github.com/rs/zerolog/log"
)

type Catalog interface {
	GetAll(ctx context.Context, category string) (dto.GetServicesResponse, error)
	Get(ctx context.Context, id string) (dto.ServiceResponse, error)
	Categories(ctx context.Context) []dto.CategoryResponse
	// Resolve returns the known services for ids, in order, and their totals.
	// Unknown ids are skipped.
	Resolve(ctx context.Context, ids []string) ([]model.Service, model.Totals)
	Exists(id string) bool
}

type serviceImpl struct {
	catalog *model.Catalog
	otel    otel.Otel
}

func New(catalog *model.Catalog, otel otel.Otel) Catalog {
	return &serviceImpl{
		catalog: catalog,
		otel:    otel,
	}
}

// NewSalonCatalog builds the catalog from the published menu and exits when it is inconsistent.
func NewSalonCatalog() *model.Catalog {
	catalog, err := model.NewCatalog(model.SalonServices())
	if err != nil {
		log.Fatal().Err(err).Msg("invalid service catalog")
	}

	return catalog
}

func (s *serviceImpl) GetAll(ctx context.Context, category string) (res dto.GetServicesResponse, err error) {
	_, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if category == constant.Empty || category == constant.CategoryAll {
		res.FromModels(s.catalog.All())

		return res, nil
	}

	cat := model.Category(category)
	if !cat.Valid() {
		return res, failure.UnknownCategory
	}

	res.FromModels(s.catalog.ByCategory(cat))

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.ServiceResponse, err error) {
	_, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	service, ok := s.catalog.ByID(id)
	if !ok {
		return res, failure.NotFound("service not found") // nolint:wrapcheck
	}

	res.FromModel(service)

	return res, nil
}

func (s *serviceImpl) Categories(ctx context.Context) []dto.CategoryResponse {
	_, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Categories")
	defer scope.End()

	categories := make([]dto.CategoryResponse, len(model.Categories))
	for i, category := range model.Categories {
		categories[i] = dto.CategoryResponse{
			ID:    string(category),
			Label: category.Label(),
			Count: len(s.catalog.ByCategory(category)),
		}
	}

	return categories
}

func (s *serviceImpl) Resolve(ctx context.Context, ids []string) ([]model.Service, model.Totals) {
	_, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Resolve")
	defer scope.End()

	services, unknown := s.catalog.ByIDs(ids)
	if len(unknown) > 0 {
		scope.SetAttribute("catalog.unknown_ids", unknown)
		log.Warn().Strs("ids", unknown).Msg("skipping unknown service ids")
	}

	return services, model.Sum(services)
}

func (s *serviceImpl) Exists(id string) bool {
	_, ok := s.catalog.ByID(id)

	return ok
}
