package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"

	"beauteefool/config"
	"beauteefool/infras/otel"
	"beauteefool/internal/domains/draft/model"
	"beauteefool/shared"
	"beauteefool/shared/cache"
	"beauteefool/shared/constant"
)

const keyPrefix = "draft"

// ErrNotFound is returned by Load when the draft does not exist or has expired.
var ErrNotFound = errors.New("draft not found")

type Draft interface {
	Load(ctx context.Context, id string) (model.BookingDraft, error)
	Save(ctx context.Context, draft model.BookingDraft) error
	Clear(ctx context.Context, id string) error
}

type repositoryImpl struct {
	cache cache.RedisCache
	ttl   int
	otel  otel.Otel
}

// New stores drafts in Redis. Every save refreshes the draft's expiry.
func New(cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Draft {
	return &repositoryImpl{
		cache: cache,
		ttl:   cfg.Salon.DraftTTLSeconds,
		otel:  otel,
	}
}

func key(id string) string {
	return shared.BuildCacheKey(keyPrefix, id)
}

func (r *repositoryImpl) Load(ctx context.Context, id string) (draft model.BookingDraft, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".draft.Load")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	err = r.cache.Get(ctx, key(id), &draft)
	if errors.Is(err, cache.Nil) {
		return draft, ErrNotFound
	}

	if err != nil {
		return draft, fmt.Errorf("failed to load draft: %w", err)
	}

	return draft, nil
}

func (r *repositoryImpl) Save(ctx context.Context, draft model.BookingDraft) (err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".draft.Save")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = r.cache.Save(ctx, key(draft.ID), draft, r.ttl); err != nil {
		return fmt.Errorf("failed to save draft: %w", err)
	}

	return nil
}

func (r *repositoryImpl) Clear(ctx context.Context, id string) (err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".draft.Clear")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = r.cache.Delete(ctx, key(id)); err != nil {
		return fmt.Errorf("failed to clear draft: %w", err)
	}

	return nil
}
