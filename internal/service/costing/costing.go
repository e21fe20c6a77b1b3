package costing

import (
	"fmt"
	"maps"
	"slices"

	"go.uber.org/zap"

	"github.com/mamadbah2/dairy/internal/domain/models"
)

// Service computes the weekly feeding cost of a herd.
type Service struct {
	table  models.WeeklyCostTable
	logger *zap.Logger
}

// NewService wires a new costing service instance.
func NewService(table models.WeeklyCostTable, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{table: table, logger: logger}
}

// CostPerWeek adds, for every breed in counts, the cost of every feed type in
// the breed's table row multiplied by the breed's count. A breed's cost is not
// limited to the feed its cows actually eat. Breeds are processed in name
// order.
func (s *Service) CostPerWeek(counts map[string]int) (models.WeeklyCost, error) {
	breeds := slices.Sorted(maps.Keys(counts))
	result := models.WeeklyCost{Breeds: make([]models.BreedWeeklyCost, 0, len(breeds))}

	for _, breed := range breeds {
		costs, err := s.table.Breed(breed)
		if err != nil {
			return models.WeeklyCost{}, fmt.Errorf("weekly cost: %w", err)
		}

		count := counts[breed]
		var subtotal float64
		for _, feed := range slices.Sorted(maps.Keys(costs)) {
			subtotal += costs[feed] * float64(count)
		}

		result.Breeds = append(result.Breeds, models.BreedWeeklyCost{Breed: breed, Count: count, Cost: subtotal})
		result.Total += subtotal
	}

	s.logger.Debug("weekly cost computed", zap.Int("breeds", len(breeds)), zap.Float64("total", result.Total))
	return result, nil
}
