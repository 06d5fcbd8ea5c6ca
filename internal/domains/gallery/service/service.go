package service

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"beauteefool/config"
	"beauteefool/infras/otel"
	"beauteefool/infras/s3"
	"beauteefool/internal/domains/gallery/model"
	"beauteefool/internal/domains/gallery/model/dto"
	"beauteefool/internal/domains/gallery/repository"
	"beauteefool/shared"
	"beauteefool/shared/cache"
	"beauteefool/shared/constant"
	gDto "beauteefool/shared/dto"
	"beauteefool/shared/failure"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const (
	cacheGetImage    = "gallery:get"
	cacheGetAllImage = "gallery:get_all"
	cacheCountImage  = "gallery:count"

	bytesPerMB = 1024 * 1024
)

type Gallery interface {
	Create(ctx context.Context, req dto.CreateImageRequest) (dto.ImageResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetImagesResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id string) (dto.ImageResponse, error)
	// Delete removes the image and, when it was uploaded here, its stored object.
	Delete(ctx context.Context, id string) error
	UploadImage(ctx context.Context, req dto.UploadImageRequest) (dto.UploadImageResponse, error)
}

type serviceImpl struct {
	repo  repository.Gallery
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
	s3    s3.S3
}

func New(repo repository.Gallery, cfg *config.Config, cache cache.RedisCache, otel otel.Otel, s3 s3.S3) Gallery {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
		s3:    s3,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateImageRequest) (res dto.ImageResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	actor, _ := ctx.Value(constant.ContextKeyActor).(string)
	image := req.ToModel(actor)

	if err = s.repo.Insert(ctx, image); err != nil {
		log.Error().Err(err).Msg("failed to create gallery image")

		return res, fmt.Errorf("failed to create gallery image: %w", err)
	}

	res.FromModel(image)

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllImage)
		shared.InvalidateCaches(c, s.cache, cacheCountImage)
	}()

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetImagesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllImage, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for gallery images")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count gallery images")

		return res, err
	}

	images, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get gallery images")

		return res, fmt.Errorf("failed to get gallery images: %w", err)
	}

	res.FromModels(images, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save gallery images to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (total int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountImage, req, filter)

	err = s.cache.Get(ctx, cacheKey, &total)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for gallery count")

		return total, nil
	}

	total, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count gallery images")

		return total, fmt.Errorf("failed to count gallery images: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, total, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save gallery count to cache")
		}
	}()

	return total, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.ImageResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKey(cacheGetImage, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for gallery image")

		return res, nil
	}

	image, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get gallery image")

		return res, fmt.Errorf("failed to get gallery image: %w", err)
	}

	if image.ID == constant.Empty {
		return res, failure.NotFound("gallery image not found") // nolint:wrapcheck
	}

	res.FromModel(image)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save gallery image to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	image, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get gallery image for deletion")

		return fmt.Errorf("failed to get gallery image: %w", err)
	}

	if image.ID == constant.Empty {
		return failure.NotFound("gallery image not found") // nolint:wrapcheck
	}

	if err = s.repo.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to delete gallery image")

		return fmt.Errorf("failed to delete gallery image: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetImage, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete gallery image cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllImage)
		shared.InvalidateCaches(c, s.cache, cacheCountImage)

		objectKey := s.s3.ObjectKeyFromURL(image.Src)
		if objectKey == constant.Empty {
			return
		}

		if err := s.s3.Delete(c, objectKey); err != nil {
			log.Error().Err(err).Str("objectKey", objectKey).Msg("failed to delete gallery object")
		}
	}()

	return nil
}

func (s *serviceImpl) UploadImage(ctx context.Context, req dto.UploadImageRequest) (res dto.UploadImageResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UploadImage")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	limit := int64(s.cfg.External.S3.MaxUploadMB * bytesPerMB)
	if limit > 0 && req.Image.Size > limit {
		return res, failure.BadRequestFromString(fmt.Sprintf("image must be at most %g MB", s.cfg.External.S3.MaxUploadMB)) // nolint:wrapcheck
	}

	fileName := uuid.NewString() + strings.ToLower(filepath.Ext(req.Image.Filename))
	contentType := req.Image.Header.Get(constant.RequestHeaderContentType)

	url, err := s.s3.Upload(ctx, model.Directory, fileName, contentType, req.ImageFile)
	if err != nil {
		log.Error().Err(err).Msg("failed to upload gallery image")

		return res, fmt.Errorf("failed to upload gallery image: %w", err)
	}

	res.FromModel(url, fileName)

	return res, nil
}
