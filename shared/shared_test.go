package shared_test

import (
	"context"
	"errors"
	"nomad/shared"
	"nomad/shared/cache/mocks"
	"nomad/shared/constant"
	"nomad/shared/dto"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestConvertStringToBool(t *testing.T) {
	assert.Nil(t, shared.ConvertStringToBool(""))
	assert.Nil(t, shared.ConvertStringToBool("maybe"))

	got := shared.ConvertStringToBool("true")
	require.NotNil(t, got)
	assert.True(t, *got)
}

func TestConvertStringToInt(t *testing.T) {
	assert.Nil(t, shared.ConvertStringToInt(""))
	assert.Nil(t, shared.ConvertStringToInt("abc"))

	got := shared.ConvertStringToInt("42")
	require.NotNil(t, got)
	assert.Equal(t, 42, *got)
}

func TestCalculateTotalPage(t *testing.T) {
	tests := []struct {
		total, limit, expected int
	}{
		{total: 0, limit: 10, expected: 1},
		{total: 10, limit: 0, expected: 1},
		{total: 10, limit: 10, expected: 1},
		{total: 11, limit: 10, expected: 2},
		{total: 95, limit: 10, expected: 10},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, shared.CalculateTotalPage(tt.total, tt.limit))
	}
}

func TestTransformFields(t *testing.T) {
	type patch struct {
		Reason     string  `db:"reason"`
		ReturnDate *string `db:"return_date"`
		Hidden     string  `db:"-"`
		NoTag      string
		Empty      string `db:"empty"`
	}

	returnDate := "2026-11-02"

	got := shared.TransformFields(patch{
		Reason:     "conference",
		ReturnDate: &returnDate,
		Hidden:     "skip",
		NoTag:      "skip",
	}, "user-1")

	assert.Equal(t, "conference", got["reason"])
	assert.Equal(t, "2026-11-02", got["return_date"])
	assert.Equal(t, "user-1", got[constant.FieldModifiedBy])
	assert.IsType(t, time.Time{}, got[constant.FieldModifiedAt])
	assert.NotContains(t, got, "-")
	assert.NotContains(t, got, "empty")
	assert.Len(t, got, 4)
}

func TestFilterByID(t *testing.T) {
	got := shared.FilterByID("123", "user_id", "users")

	require.Len(t, got.Filters, 1)
	assert.Equal(t, dto.Filter{Field: "user_id", Value: "123", Operator: dto.FilterOperatorEq, Table: "users"}, got.Filters[0])
}

func TestBuildCacheKey(t *testing.T) {
	assert.Equal(t, "city:gets", shared.BuildCacheKey("city:gets"))
	assert.Equal(t, "trip:get:abc", shared.BuildCacheKey("trip:get", "abc"))
	assert.Equal(t, "ratelimit:1.2.3.4:curl", shared.BuildCacheKey("ratelimit", "1.2.3.4", "curl"))
}

func TestBuildCacheKeyWithQuery(t *testing.T) {
	params := dto.QueryParams{Page: 1, Limit: 10, SortBy: "created_at", SortDir: dto.SortDirDesc}

	first := shared.BuildCacheKeyWithQuery("trip:gets", params, shared.FilterByID("u-1", "user_id", "trip_requests"))
	same := shared.BuildCacheKeyWithQuery("trip:gets", params, shared.FilterByID("u-1", "user_id", "trip_requests"))
	other := shared.BuildCacheKeyWithQuery("trip:gets", params, shared.FilterByID("u-2", "user_id", "trip_requests"))

	params.Page = 2
	nextPage := shared.BuildCacheKeyWithQuery("trip:gets", params, shared.FilterByID("u-1", "user_id", "trip_requests"))

	assert.Equal(t, first, same)
	assert.NotEqual(t, first, other)
	assert.NotEqual(t, first, nextPage)
	assert.Contains(t, first, "trip:gets:")
}

func TestInvalidateCaches(t *testing.T) {
	ctrl := gomock.NewController(t)
	cache := mocks.NewMockRedisCache(ctrl)

	cache.EXPECT().Clear(gomock.Any(), "trip:gets:*").Return(nil)
	cache.EXPECT().Clear(gomock.Any(), "trip:count:*").Return(errors.New("redis down"))

	shared.InvalidateCaches(context.Background(), cache, "trip:gets")
	shared.InvalidateCaches(context.Background(), cache, "trip:count")
}
