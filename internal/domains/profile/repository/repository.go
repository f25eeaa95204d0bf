package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"nomad/infras/otel"
	"nomad/infras/postgres"
	"nomad/internal/domains/profile/model"
	gDto "nomad/shared/dto"
	gRepo "nomad/shared/repository"

	"github.com/jmoiron/sqlx"
)

type Profile interface {
	Insert(ctx context.Context, model model.Profile) error
	InsertTx(ctx context.Context, sqltx *sqlx.Tx, model model.Profile) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Profile, error)
	GetDetail(ctx context.Context, filter gDto.FilterGroup) (model.ProfileDetail, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Profile]
	detail gRepo.Repository[model.ProfileDetail]
}

func New(db *postgres.Connection, otel otel.Otel) Profile {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Profile](model.EntityName, model.TableName, model.FieldID, db, otel),
		detail:     gRepo.NewRepository[model.ProfileDetail](model.EntityName, model.TableName, model.FieldID, db, otel),
	}
}

func (r *repositoryImpl) GetDetail(ctx context.Context, filter gDto.FilterGroup) (model.ProfileDetail, error) {
	return r.detail.Get(ctx, filter) //nolint:wrapcheck
}
