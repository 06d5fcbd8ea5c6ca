package shared_test

import (
	"context"
	"errors"
	"testing"

	"beauteefool/shared"
	"beauteefool/shared/cache/mocks"
	"beauteefool/shared/constant"
	"beauteefool/shared/dto"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestCalculateTotalPage(t *testing.T) {
	tests := []struct {
		name     string
		total    int
		limit    int
		expected int
	}{
		{name: "no bookings", total: 0, limit: 10, expected: 1},
		{name: "exact pages", total: 20, limit: 10, expected: 2},
		{name: "partial last page", total: 21, limit: 10, expected: 3},
		{name: "invalid limit", total: 21, limit: 0, expected: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, shared.CalculateTotalPage(tt.total, tt.limit))
		})
	}
}

func TestTransformFields(t *testing.T) {
	type statusChange struct {
		Status   string `db:"status"`
		Notes    string `db:"notes"`
		Internal string
	}

	fields := shared.TransformFields(statusChange{Status: "confirmed", Internal: "skip"}, "admin")

	assert.Equal(t, "confirmed", fields["status"])
	assert.Equal(t, "admin", fields[constant.FieldModifiedBy])
	assert.Contains(t, fields, constant.FieldModifiedAt)
	assert.NotContains(t, fields, "notes")
	assert.NotContains(t, fields, "Internal")
	assert.Len(t, fields, 3)
}

func TestTransformFields_Pointers(t *testing.T) {
	type galleryChange struct {
		Caption *string `db:"caption"`
		Order   *int    `db:"display_order"`
	}

	caption := "Balayage"
	fields := shared.TransformFields(galleryChange{Caption: &caption}, "system")

	assert.Equal(t, &caption, fields["caption"])
	assert.NotContains(t, fields, "display_order")
}

func TestFilterByID(t *testing.T) {
	expected := dto.FilterGroup{
		Operator: dto.FilterGroupOperatorAnd,
		Filters: []any{
			dto.Filter{Field: "id", Value: "0195a1b2", Operator: dto.FilterOperatorEq, Table: "bookings"},
		},
	}

	assert.Equal(t, expected, shared.FilterByID("0195a1b2", "id", "bookings"))

	filter := shared.FilterByID("BF-0192", "confirmation_number", "bookings")
	where, args := filter.GetWhereClause()
	assert.NotEmpty(t, where)
	assert.Len(t, args, 1)
}

func TestSplitList(t *testing.T) {
	assert.Equal(t, []string{"hair-1", "nails-2"}, shared.SplitList("hair-1, nails-2,,"))
	assert.Empty(t, shared.SplitList(""))
	assert.Empty(t, shared.SplitList(" , "))
}

func TestBuildCacheKey(t *testing.T) {
	assert.Equal(t, "booking", shared.BuildCacheKey("booking"))
	assert.Equal(t, "booking:BF-0192", shared.BuildCacheKey("booking", "BF-0192"))
}

func TestBuildCacheKeyWithQuery(t *testing.T) {
	params := dto.QueryParams{Page: 2, Limit: 10, SortBy: "created_at", SortDir: "desc"}

	first := shared.BuildCacheKeyWithQuery("bookings", params, shared.FilterByID("pending", "status", "bookings"))
	second := shared.BuildCacheKeyWithQuery("bookings", params, shared.FilterByID("pending", "status", "bookings"))
	other := shared.BuildCacheKeyWithQuery("bookings", params, shared.FilterByID("confirmed", "status", "bookings"))

	assert.Equal(t, first, second)
	assert.NotEqual(t, first, other)
	assert.Contains(t, first, "bookings:2:10:created_at:desc")
}

func TestInvalidateCaches(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	redisCache := mocks.NewMockRedisCache(ctrl)
	ctx := context.Background()

	redisCache.EXPECT().Clear(ctx, "bookings:list*").Return(nil)
	shared.InvalidateCaches(ctx, redisCache, "bookings:list")

	redisCache.EXPECT().Clear(ctx, "gallery*").Return(errors.New("redis down"))
	shared.InvalidateCaches(ctx, redisCache, "gallery")
}
