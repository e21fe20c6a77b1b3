package costing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mamadbah2/dairy/internal/domain/models"
)

func TestCostPerWeek(t *testing.T) {
	svc := NewService(models.DefaultWeeklyCosts(), nil)

	got, err := svc.CostPerWeek(map[string]int{"Holstein": 10, "Jersey": 5, "Guernsey": 3, "Ayrshire": 2})
	require.NoError(t, err)

	assert.Equal(t, 1955.0, got.Total)
	assert.Equal(t, []models.BreedWeeklyCost{
		{Breed: "Ayrshire", Count: 2, Cost: 192},
		{Breed: "Guernsey", Count: 3, Cost: 288},
		{Breed: "Holstein", Count: 10, Cost: 1000},
		{Breed: "Jersey", Count: 5, Cost: 475},
	}, got.Breeds)
}

func TestCostPerWeek_SumsEveryFeedType(t *testing.T) {
	table := models.WeeklyCostTable{"Angus": {models.Corn: 1, models.Grass: 2, models.Grain: 4}}

	got, err := NewService(table, nil).CostPerWeek(map[string]int{"Angus": 3})
	require.NoError(t, err)
	assert.Equal(t, 21.0, got.Total)
}

func TestCostPerWeek_UnknownBreed(t *testing.T) {
	svc := NewService(models.DefaultWeeklyCosts(), nil)

	_, err := svc.CostPerWeek(map[string]int{"Holstein": 1, "Angus": 1})
	require.Error(t, err)
	assert.ErrorIs(t, err, models.ErrUnknownBreed)
	assert.Contains(t, err.Error(), "Angus")
}

func TestCostPerWeek_Empty(t *testing.T) {
	got, err := NewService(models.DefaultWeeklyCosts(), nil).CostPerWeek(nil)
	require.NoError(t, err)
	assert.Zero(t, got.Total)
	assert.Empty(t, got.Breeds)
}

func TestCostPerWeek_ZeroCount(t *testing.T) {
	got, err := NewService(models.DefaultWeeklyCosts(), nil).CostPerWeek(map[string]int{"Jersey": 0})
	require.NoError(t, err)
	assert.Zero(t, got.Total)
	require.Len(t, got.Breeds, 1)
}
