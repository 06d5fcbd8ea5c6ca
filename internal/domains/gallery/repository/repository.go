package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"beauteefool/infras/otel"
	"beauteefool/infras/postgres"
	"beauteefool/internal/domains/gallery/model"
	gDto "beauteefool/shared/dto"
	gRepo "beauteefool/shared/repository"
)

type Gallery interface {
	Insert(ctx context.Context, model model.Image) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Image, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Image, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Delete(ctx context.Context, filter gDto.FilterGroup) error
}

// repositoryImpl gets every query from the generic table repository.
type repositoryImpl struct {
	gRepo.Repository[model.Image]
}

func New(db *postgres.Connection, ot otel.Otel) Gallery {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Image](model.EntityName, model.TableName, model.FieldID, db, ot),
	}
}
