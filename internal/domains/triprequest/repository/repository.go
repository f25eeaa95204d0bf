package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"nomad/infras/otel"
	"nomad/infras/postgres"
	"nomad/internal/domains/triprequest/model"
	gDto "nomad/shared/dto"
	gRepo "nomad/shared/repository"
)

type TripRequest interface {
	Insert(ctx context.Context, model model.TripRequest) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.TripRequest, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	UpdateAffected(ctx context.Context, req map[string]any, filter gDto.FilterGroup) (int64, error)
	GetDetail(ctx context.Context, filter gDto.FilterGroup) (model.TripRequestDetail, error)
	GetAllDetail(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) ([]model.TripRequestDetail, error)
	CountDetail(ctx context.Context, filter gDto.FilterGroup) (int, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.TripRequest]
	detail gRepo.Repository[model.TripRequestDetail]
}

func New(db *postgres.Connection, otel otel.Otel) TripRequest {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.TripRequest](model.EntityName, model.TableName, model.FieldID, db, otel),
		detail:     gRepo.NewRepository[model.TripRequestDetail](model.EntityName, model.TableName, model.FieldID, db, otel),
	}
}

func (r *repositoryImpl) GetDetail(ctx context.Context, filter gDto.FilterGroup) (model.TripRequestDetail, error) {
	return r.detail.Get(ctx, filter) //nolint:wrapcheck
}

func (r *repositoryImpl) GetAllDetail(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) ([]model.TripRequestDetail, error) {
	return r.detail.GetAll(ctx, params, filter) //nolint:wrapcheck
}

func (r *repositoryImpl) CountDetail(ctx context.Context, filter gDto.FilterGroup) (int, error) {
	return r.detail.Count(ctx, filter) //nolint:wrapcheck
}
