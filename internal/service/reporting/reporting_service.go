package reporting

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/mamadbah2/dairy/internal/domain/models"
)

// Service aggregates pen, milk yield, emission and cost figures of a farm.
type Service struct {
	emissions models.FeedTable
	feedCosts models.FeedTable
	logger    *zap.Logger
}

// NewService wires a new reporting service instance.
func NewService(tables models.Tables, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		emissions: tables.Emissions,
		feedCosts: tables.FeedCosts,
		logger:    logger,
	}
}

// PenAllocation lists the farm's pens in insertion order.
func (s *Service) PenAllocation(farm *models.Farm) models.PenAllocation {
	pens := farm.Pens()
	s.logger.Debug("pen allocation", zap.Int("pens", len(pens)))
	return models.PenAllocation{Pens: pens}
}

// MilkYield sums the daily milk yield of every cow.
func (s *Service) MilkYield(farm *models.Farm) models.MilkYield {
	var total float64
	cows := farm.Cows()
	for _, cow := range cows {
		total += cow.MilkYield
	}

	s.logger.Debug("milk yield computed", zap.Int("cows", len(cows)), zap.Float64("total", total))
	return models.MilkYield{Total: total}
}

// Emissions adds each cow's feed-related emissions to its own and totals them.
func (s *Service) Emissions(farm *models.Farm) (models.Emissions, error) {
	cows := farm.Cows()
	result := models.Emissions{Cows: make([]models.CowEmission, 0, len(cows))}

	for i, cow := range cows {
		extra, err := s.emissions.Lookup(cow.FeedType)
		if err != nil {
			return models.Emissions{}, fmt.Errorf("emissions for cow %d (%s): %w", i, cow.Breed, err)
		}

		emissions := cow.GHGEmission + extra
		result.Cows = append(result.Cows, models.CowEmission{
			Breed:     cow.Breed,
			FeedType:  cow.FeedType,
			Emissions: emissions,
		})
		result.Total += emissions
	}

	s.logger.Debug("emissions computed", zap.Int("cows", len(cows)), zap.Float64("total", result.Total))
	return result, nil
}

// CostEstimate sums the per-head daily feed cost of every cow. The cost is
// not scaled by pen size.
func (s *Service) CostEstimate(farm *models.Farm) (models.CostEstimate, error) {
	cows := farm.Cows()
	result := models.CostEstimate{Cows: make([]models.CowCost, 0, len(cows))}

	for i, cow := range cows {
		cost, err := s.feedCosts.Lookup(cow.FeedType)
		if err != nil {
			return models.CostEstimate{}, fmt.Errorf("feed cost for cow %d (%s): %w", i, cow.Breed, err)
		}

		result.Cows = append(result.Cows, models.CowCost{
			Breed:    cow.Breed,
			FeedType: cow.FeedType,
			Cost:     cost,
		})
		result.Total += cost
	}

	s.logger.Debug("cost estimated", zap.Int("cows", len(cows)), zap.Float64("total", result.Total))
	return result, nil
}

// Report runs every aggregation of the service over the farm.
func (s *Service) Report(farm *models.Farm) (models.FarmReport, error) {
	emissions, err := s.Emissions(farm)
	if err != nil {
		return models.FarmReport{}, err
	}

	cost, err := s.CostEstimate(farm)
	if err != nil {
		return models.FarmReport{}, err
	}

	return models.FarmReport{
		Pens:      s.PenAllocation(farm),
		MilkYield: s.MilkYield(farm),
		Emissions: emissions,
		Cost:      cost,
	}, nil
}
