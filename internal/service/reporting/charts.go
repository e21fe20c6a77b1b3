package reporting

import "github.com/mamadbah2/dairy/internal/domain/models"

// MilkYieldByBreed returns one point per cow labelled with its breed.
func MilkYieldByBreed(farm *models.Farm) []models.Point {
	cows := farm.Cows()
	out := make([]models.Point, 0, len(cows))
	for _, cow := range cows {
		out = append(out, models.Point{Label: cow.Breed, Value: cow.MilkYield})
	}
	return out
}

// EmissionsByBreed returns one point per cow with its total emissions.
func EmissionsByBreed(e models.Emissions) []models.Point {
	out := make([]models.Point, 0, len(e.Cows))
	for _, cow := range e.Cows {
		out = append(out, models.Point{Label: cow.Breed, Value: cow.Emissions})
	}
	return out
}
