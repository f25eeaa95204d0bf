package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"nomad/infras/otel"
	"nomad/infras/postgres"
	"nomad/internal/domains/city/model"
	gDto "nomad/shared/dto"
	gRepo "nomad/shared/repository"
)

type City interface {
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.City, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.City]
}

func New(db *postgres.Connection, otel otel.Otel) City {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.City](model.EntityName, model.TableName, model.FieldID, db, otel),
	}
}
