package model_test

import (
	"testing"

	"beauteefool/internal/domains/catalog/model"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCatalog(t *testing.T) {
	valid := model.Service{ID: "hair-1", Category: model.CategoryHair, Price: decimal.NewFromInt(65), Duration: 60}

	tests := []struct {
		name     string
		services []model.Service
		wantErr  bool
	}{
		{
			name:     "salon menu",
			services: model.SalonServices(),
		},
		{
			name:     "duplicate id",
			services: []model.Service{valid, valid},
			wantErr:  true,
		},
		{
			name:     "unknown category",
			services: []model.Service{{ID: "barber-1", Category: "barber", Price: decimal.Zero, Duration: 30}},
			wantErr:  true,
		},
		{
			name:     "negative price",
			services: []model.Service{{ID: "hair-9", Category: model.CategoryHair, Price: decimal.NewFromInt(-1), Duration: 30}},
			wantErr:  true,
		},
		{
			name:     "zero duration",
			services: []model.Service{{ID: "hair-9", Category: model.CategoryHair, Price: decimal.Zero}},
			wantErr:  true,
		},
		{
			name:     "missing id",
			services: []model.Service{{Category: model.CategoryHair, Price: decimal.Zero, Duration: 30}},
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			catalog, err := model.NewCatalog(tt.services)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, catalog)
			} else {
				assert.NoError(t, err)
				assert.Len(t, catalog.All(), len(tt.services))
			}
		})
	}
}

func TestCatalog_ByIDs(t *testing.T) {
	catalog, err := model.NewCatalog(model.SalonServices())
	require.NoError(t, err)

	services, unknown := catalog.ByIDs([]string{"nails-1", "ghost", "hair-1"})

	require.Len(t, services, 2)
	assert.Equal(t, "nails-1", services[0].ID)
	assert.Equal(t, "hair-1", services[1].ID)
	assert.Equal(t, []string{"ghost"}, unknown)
}

func TestCatalog_ByCategory(t *testing.T) {
	catalog, err := model.NewCatalog(model.SalonServices())
	require.NoError(t, err)

	counts := map[model.Category]int{}
	for _, category := range model.Categories {
		for _, service := range catalog.ByCategory(category) {
			assert.Equal(t, category, service.Category)
		}

		counts[category] = len(catalog.ByCategory(category))
	}

	assert.Equal(t, map[model.Category]int{
		model.CategoryHair:   5,
		model.CategoryNails:  4,
		model.CategoryMakeup: 4,
		model.CategorySpa:    3,
		model.CategoryFacial: 4,
	}, counts)
}

func TestSum(t *testing.T) {
	catalog, err := model.NewCatalog(model.SalonServices())
	require.NoError(t, err)

	first, _ := catalog.ByIDs([]string{"hair-1", "nails-1"})
	second, _ := catalog.ByIDs([]string{"spa-1", "facial-2"})

	totals := model.Sum(first)
	assert.True(t, decimal.NewFromInt(100).Equal(totals.Price))
	assert.Equal(t, 105, totals.Duration)

	union := model.Sum(append(append([]model.Service{}, first...), second...))
	sum := model.Sum(first).Add(model.Sum(second))

	assert.True(t, union.Price.Equal(sum.Price))
	assert.Equal(t, union.Duration, sum.Duration)

	empty := model.Sum(nil)
	assert.True(t, empty.Price.IsZero())
	assert.Zero(t, empty.Duration)
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		minutes  int
		expected string
	}{
		{minutes: 45, expected: "45 min"},
		{minutes: 60, expected: "1 hr"},
		{minutes: 75, expected: "1 hr 15 min"},
		{minutes: 120, expected: "2 hrs"},
		{minutes: 150, expected: "2 hrs 30 min"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, model.FormatDuration(tt.minutes))
		})
	}
}

func TestCategory_Label(t *testing.T) {
	assert.Equal(t, "Spa & Massage", model.CategorySpa.Label())
	assert.False(t, model.Category("barber").Valid())
	assert.Empty(t, model.Category("barber").Label())
}
