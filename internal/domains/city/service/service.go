package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=City=MockCityService

import (
	"context"
	"fmt"
	"nomad/config"
	"nomad/infras/otel"
	"nomad/internal/domains/city/model"
	"nomad/internal/domains/city/model/dto"
	"nomad/internal/domains/city/repository"
	"nomad/shared"
	"nomad/shared/cache"
	"nomad/shared/constant"
	gDto "nomad/shared/dto"

	"github.com/rs/zerolog/log"
)

const cacheGetAllCity = "city:gets"

type City interface {
	GetCities(ctx context.Context) (dto.GetCitiesResponse, error)
	// Exist reports whether every given city id is known.
	Exist(ctx context.Context, ids ...int) (bool, error)
}

type serviceImpl struct {
	repo  repository.City
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.City, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) City {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

// GetCities lists every city, projecting only id and name. Cities are seeded, so the list is cached.
func (s *serviceImpl) GetCities(ctx context.Context) (res dto.GetCitiesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetCities")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKey(cacheGetAllCity)

	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		return res, nil
	}

	params := gDto.QueryParams{SortBy: model.FieldID, SortDir: gDto.SortDirAsc}

	cities, err := s.repo.GetAll(ctx, params, gDto.FilterGroup{}, model.FieldID, model.FieldCity)
	if err != nil {
		log.Error().Err(err).Msg("failed to get cities")

		return res, fmt.Errorf("failed to get cities: %w", err)
	}

	res.FromModels(cities)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save cities to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Exist(ctx context.Context, ids ...int) (ok bool, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Exist")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	unique := map[int]struct{}{}
	for _, id := range ids {
		unique[id] = struct{}{}
	}

	if len(unique) == 0 {
		return true, nil
	}

	values := make([]int, 0, len(unique))
	for id := range unique {
		values = append(values, id)
	}

	total, err := s.repo.Count(ctx, gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldID,
				Operator: gDto.FilterOperatorIn,
				Value:    values,
				Table:    model.TableName,
			},
		},
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to count cities")

		return false, fmt.Errorf("failed to count cities: %w", err)
	}

	return total == len(values), nil
}
