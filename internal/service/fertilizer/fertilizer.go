package fertilizer

import (
	"go.uber.org/zap"

	"github.com/mamadbah2/dairy/internal/domain/models"
)

// DefaultSoilSize is the soil size used when none is configured.
const DefaultSoilSize = 1000.0

// profileSoilSize scales coefficients into the per-breed profile.
const profileSoilSize = 1000.0

// Foods lists the foods in fertilizer report order.
var Foods = []models.FeedType{models.Grain, models.Corn, models.Grass}

// Service estimates fertilizer output from breed coefficients.
type Service struct {
	logger *zap.Logger
}

// NewService wires a new fertilizer service instance.
func NewService(logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{logger: logger}
}

// CalculateFoodProduction multiplies every breed's coefficient for the food by
// the soil size. A breed without a coefficient for the food produces 0.
func (s *Service) CalculateFoodProduction(breeds []models.Breed, food models.FeedType, soilSize float64) models.FoodProduction {
	result := models.FoodProduction{
		Food:     food,
		SoilSize: soilSize,
		Breeds:   make([]models.BreedProduction, 0, len(breeds)),
	}

	for _, breed := range breeds {
		if _, ok := breed.Effects[food]; !ok {
			s.logger.Debug("no fertilizer coefficient, defaulting to 0",
				zap.String("breed", breed.Name), zap.String("food", string(food)))
		}
		result.Breeds = append(result.Breeds, models.BreedProduction{
			Breed:  breed.Name,
			Amount: soilSize * breed.FertilizerCoefficient(food),
		})
	}

	return result
}

// Profiles returns, per breed, the fertilizer output of each food for 1000
// units of soil.
func (s *Service) Profiles(breeds []models.Breed) []models.FertilizerProfile {
	out := make([]models.FertilizerProfile, 0, len(breeds))
	for _, breed := range breeds {
		profile := models.FertilizerProfile{Breed: breed.Name, Foods: make([]models.FoodAmount, 0, len(Foods))}
		for _, food := range Foods {
			profile.Foods = append(profile.Foods, models.FoodAmount{
				Food:   food,
				Amount: breed.FertilizerCoefficient(food) * profileSoilSize,
			})
		}
		out = append(out, profile)
	}
	return out
}
