package sample

import (
	"maps"

	"github.com/mamadbah2/dairy/internal/domain/models"
)

// Repository defines the scenarios the CLI runs its pipelines against.
type Repository interface {
	// Farm returns the cows and pens used by the pen/yield/emission/cost report.
	Farm() *models.Farm
	// Herd returns the cows used by the breed and feed-type breakdown.
	Herd() *models.Farm
	// Breeds returns the breeds used by the fertilizer estimator.
	Breeds() []models.Breed
	// HerdCounts returns cows per breed for the weekly cost calculator.
	HerdCounts() map[string]int
}

// MemoryRepository serves fixed in-memory scenarios. Every call builds fresh
// values so callers cannot affect one another.
type MemoryRepository struct{}

// NewMemoryRepository builds the in-memory scenario repository.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{}
}

// Farm returns four cows and four pens.
func (r *MemoryRepository) Farm() *models.Farm {
	farm := models.NewFarm(
		models.Cow{Breed: "Holstein", FeedType: models.Corn, MilkYield: 10.0, GHGEmission: 5.0},
		models.Cow{Breed: "Jersey", FeedType: models.Grass, MilkYield: 7.0, GHGEmission: 4.0},
		models.Cow{Breed: "Guernsey", FeedType: models.Grain, MilkYield: 8.0, GHGEmission: 4.5},
		models.Cow{Breed: "Ayrshire", FeedType: models.Grass, MilkYield: 6.0, GHGEmission: 3.5},
	)
	farm.AddPen(models.Pen{Breed: "Holstein", CowCount: 3})
	farm.AddPen(models.Pen{Breed: "Jersey", CowCount: 2})
	farm.AddPen(models.Pen{Breed: "Guernsey", CowCount: 4})
	farm.AddPen(models.Pen{Breed: "Ayrshire", CowCount: 5})
	return farm
}

// Herd returns two breeds spread over three feed types.
func (r *MemoryRepository) Herd() *models.Farm {
	return models.NewFarm(
		models.Cow{Breed: "Holstein", FeedType: models.Corn, MilkYield: 20},
		models.Cow{Breed: "Jersey", FeedType: models.Grass, MilkYield: 10},
		models.Cow{Breed: "Holstein", FeedType: models.Grain, MilkYield: 15},
		models.Cow{Breed: "Jersey", FeedType: models.Corn, MilkYield: 5},
	)
}

// Breeds returns the fertilizer coefficients of the four breeds.
func (r *MemoryRepository) Breeds() []models.Breed {
	return []models.Breed{
		breed("Jersey", 0.008, 0.011, 0.005),
		breed("Guernsey", 0.009, 0.012, 0.006),
		breed("Holstein", 0.010, 0.013, 0.007),
		breed("Ayrshire", 0.011, 0.014, 0.008),
	}
}

var herdCounts = map[string]int{"Holstein": 10, "Jersey": 5, "Guernsey": 3, "Ayrshire": 2}

// HerdCounts returns cows per breed.
func (r *MemoryRepository) HerdCounts() map[string]int {
	return maps.Clone(herdCounts)
}

func breed(name string, grain, corn, grass float64) models.Breed {
	return models.Breed{
		Name: name,
		Effects: map[models.FeedType]models.FoodEffect{
			models.Grain: {Fertilizer: grain},
			models.Corn:  {Fertilizer: corn},
			models.Grass: {Fertilizer: grass},
		},
	}
}
