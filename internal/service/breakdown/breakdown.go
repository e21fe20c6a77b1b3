package breakdown

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/mamadbah2/dairy/internal/domain/models"
)

// Service groups milk yield by breed and feed type.
type Service struct {
	logger *zap.Logger
}

// NewService wires a new breakdown service instance.
func NewService(logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{logger: logger}
}

// Calculate accumulates each cow's yield into its feed-type total and into
// its breed and feed-type bucket. Breeds keep first-seen order.
func (s *Service) Calculate(farm *models.Farm) (models.YieldBreakdown, error) {
	result := models.YieldBreakdown{
		Breeds:           []string{},
		ByBreed:          map[string]map[models.FeedType]float64{},
		TotalsByFeedType: zeroByFeedType(),
	}

	for i, cow := range farm.Cows() {
		if _, ok := result.TotalsByFeedType[cow.FeedType]; !ok {
			return models.YieldBreakdown{}, fmt.Errorf("yield of cow %d (%s): %w: %q", i, cow.Breed, models.ErrUnknownFeedType, cow.FeedType)
		}
		result.TotalsByFeedType[cow.FeedType] += cow.MilkYield

		byFeed, ok := result.ByBreed[cow.Breed]
		if !ok {
			byFeed = zeroByFeedType()
			result.ByBreed[cow.Breed] = byFeed
			result.Breeds = append(result.Breeds, cow.Breed)
		}
		byFeed[cow.FeedType] += cow.MilkYield
	}

	for _, feed := range models.FeedTypes {
		if result.TotalsByFeedType[feed] == 0 {
			s.logger.Debug("feed type has no yield, shares reported as 0", zap.String("feed_type", string(feed)))
		}
	}

	s.logger.Debug("yield breakdown computed", zap.Int("breeds", len(result.Breeds)))
	return result, nil
}

// StackedSeries returns, per feed type, the yield of every breed in breed
// order. It feeds the stacked bar chart.
func StackedSeries(b models.YieldBreakdown) map[models.FeedType][]float64 {
	out := make(map[models.FeedType][]float64, len(models.FeedTypes))
	for _, feed := range models.FeedTypes {
		values := make([]float64, 0, len(b.Breeds))
		for _, breed := range b.Breeds {
			values = append(values, b.ByBreed[breed][feed])
		}
		out[feed] = values
	}
	return out
}

// TotalsByBreed returns each breed's total yield in breed order.
func TotalsByBreed(b models.YieldBreakdown) []models.Point {
	out := make([]models.Point, 0, len(b.Breeds))
	for _, breed := range b.Breeds {
		out = append(out, models.Point{Label: breed, Value: b.BreedTotal(breed)})
	}
	return out
}

func zeroByFeedType() map[models.FeedType]float64 {
	m := make(map[models.FeedType]float64, len(models.FeedTypes))
	for _, feed := range models.FeedTypes {
		m[feed] = 0
	}
	return m
}
