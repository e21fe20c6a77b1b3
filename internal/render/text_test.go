package render

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mamadbah2/dairy/internal/domain/models"
)

func TestPenAllocation(t *testing.T) {
	a := models.PenAllocation{Pens: []models.Pen{
		{Breed: "Holstein", CowCount: 3},
		{Breed: "Jersey", CowCount: 2},
		{Breed: "Guernsey", CowCount: 4},
		{Breed: "Ayrshire", CowCount: 5},
	}}

	expected := "3 Holstein cows in this pen\n2 Jersey cows in this pen\n4 Guernsey cows in this pen\n5 Ayrshire cows in this pen\n"
	assert.Equal(t, expected, PenAllocation(a))
	assert.Empty(t, PenAllocation(models.PenAllocation{}))
}

func TestMilkYield(t *testing.T) {
	assert.Equal(t, "Expected milk yield: 31.0 gallons per day\n", MilkYield(models.MilkYield{Total: 31}))
	assert.Equal(t, "Expected milk yield: 0.0 gallons per day\n", MilkYield(models.MilkYield{}))
}

func TestEmissions(t *testing.T) {
	e := models.Emissions{
		Cows: []models.CowEmission{
			{Breed: "Holstein", FeedType: models.Corn, Emissions: 10},
			{Breed: "Guernsey", FeedType: models.Grain, Emissions: 10.5},
		},
		Total: 20.5,
	}

	expected := "Holstein cows fed with Corn will produce 10.0 kg of greenhouse gas emissions per day\n" +
		"Guernsey cows fed with Grain will produce 10.5 kg of greenhouse gas emissions per day\n" +
		"Total expected greenhouse gas emissions: 20.5 kg per day\n"
	assert.Equal(t, expected, Emissions(e))
}

func TestEmissions_Empty(t *testing.T) {
	assert.Equal(t, "Total expected greenhouse gas emissions: 0.0 kg per day\n", Emissions(models.Emissions{}))
}

func TestCostEstimate(t *testing.T) {
	assert.Equal(t, "Estimated cost: $12.50 per day\n", CostEstimate(models.CostEstimate{Total: 12.5}))
}

func TestYieldBreakdown(t *testing.T) {
	b := models.YieldBreakdown{
		Breeds: []string{"Holstein", "Jersey"},
		ByBreed: map[string]map[models.FeedType]float64{
			"Holstein": {models.Corn: 20, models.Grass: 0, models.Grain: 15},
			"Jersey":   {models.Corn: 5, models.Grass: 10, models.Grain: 0},
		},
		TotalsByFeedType: map[models.FeedType]float64{models.Corn: 25, models.Grass: 10, models.Grain: 15},
	}

	expected := "Holstein cows:\n" +
		"    Corn feed: 20 gallons of milk (80.00% of total)\n" +
		"    Grass feed: 0 gallons of milk (0.00% of total)\n" +
		"    Grain feed: 15 gallons of milk (100.00% of total)\n" +
		"Jersey cows:\n" +
		"    Corn feed: 5 gallons of milk (20.00% of total)\n" +
		"    Grass feed: 10 gallons of milk (100.00% of total)\n" +
		"    Grain feed: 0 gallons of milk (0.00% of total)\n"
	assert.Equal(t, expected, YieldBreakdown(b))
}

func TestFertilizerText(t *testing.T) {
	profiles := []models.FertilizerProfile{{Breed: "Jersey", Foods: []models.FoodAmount{
		{Food: models.Grain, Amount: 8},
		{Food: models.Corn, Amount: 11},
	}}}
	assert.Equal(t, "Fertilizer production for Jersey:\ngrain: 8.0 lbs\ncorn: 11.0 lbs\n\n", FertilizerProfiles(profiles))

	production := models.FoodProduction{Food: models.Grass, SoilSize: 1000, Breeds: []models.BreedProduction{
		{Breed: "Jersey", Amount: 5},
		{Breed: "Holstein", Amount: 2.5},
	}}
	assert.Equal(t, "Food production for grass:\nJersey: 5.0 lbs\nHolstein: 2.5 lbs\n\n", FoodProduction(production))
}

func TestWeeklyCost(t *testing.T) {
	assert.Equal(t, "The cost per week of feeding the cows is: $1955.00\n", WeeklyCost(models.WeeklyCost{Total: 1955}))
}

func TestFloat(t *testing.T) {
	// Operands are variables so the sum is rounded at run time.
	a, b := 0.1, 0.2

	tests := []struct {
		in   float64
		want string
	}{
		{31, "31.0"},
		{12.5, "12.5"},
		{0, "0.0"},
		{a + b, "0.30000000000000004"},
		{1e-5, "1e-05"},
		{1e16, "1e+16"},
		{123456789012345, "123456789012345.0"},
		{math.Inf(1), "inf"},
		{math.NaN(), "nan"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Float(tt.in))
	}
}

func TestNumber(t *testing.T) {
	assert.Equal(t, "20", Number(20))
	assert.Equal(t, "7.5", Number(7.5))
}
