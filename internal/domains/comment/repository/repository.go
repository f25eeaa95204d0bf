package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"nomad/infras/otel"
	"nomad/infras/postgres"
	"nomad/internal/domains/comment/model"
	gDto "nomad/shared/dto"
	gRepo "nomad/shared/repository"
)

type Comment interface {
	Insert(ctx context.Context, model model.Comment) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Comment, error)
	Delete(ctx context.Context, filter gDto.FilterGroup) error
	GetThread(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) ([]model.CommentThread, error)
	GetThreadItem(ctx context.Context, filter gDto.FilterGroup) (model.CommentThread, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Comment]
	thread gRepo.Repository[model.CommentThread]
}

func New(db *postgres.Connection, otel otel.Otel) Comment {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Comment](model.EntityName, model.TableName, model.FieldID, db, otel),
		thread:     gRepo.NewRepository[model.CommentThread](model.EntityName, model.TableName, model.FieldID, db, otel),
	}
}

func (r *repositoryImpl) GetThread(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) ([]model.CommentThread, error) {
	return r.thread.GetAll(ctx, params, filter) //nolint:wrapcheck
}

func (r *repositoryImpl) GetThreadItem(ctx context.Context, filter gDto.FilterGroup) (model.CommentThread, error) {
	return r.thread.Get(ctx, filter) //nolint:wrapcheck
}
