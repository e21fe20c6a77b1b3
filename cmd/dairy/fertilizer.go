package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/mamadbah2/dairy/internal/domain/models"
	"github.com/mamadbah2/dairy/internal/render"
	"github.com/mamadbah2/dairy/internal/service/fertilizer"
)

// fertilizerResult is the YAML shape of the fertilizer command.
type fertilizerResult struct {
	Profiles   []models.FertilizerProfile `yaml:"profiles,omitempty"`
	Production []models.FoodProduction    `yaml:"production"`
}

func newFertilizerCmd(a *app) *cobra.Command {
	var food string

	cmd := &cobra.Command{
		Use:   "fertilizer",
		Short: "Fertilizer output of the sample breeds by food type",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runFertilizer(cmd.OutOrStdout(), food, a.cfg.Fertilizer.SoilSize)
		},
	}
	cmd.Flags().StringVar(&food, "food", "", "only estimate production for this food (grain, corn or grass)")
	cmd.Flags().Float64("soil-size", fertilizer.DefaultSoilSize, "soil size (overrides DAIRY_SOIL_SIZE)")
	return cmd
}

func (a *app) runFertilizer(w io.Writer, food string, soilSize float64) error {
	svc := fertilizer.NewService(a.named("svc.fertilizer"))
	breeds := a.repo.Breeds()

	foods := fertilizer.Foods
	var result fertilizerResult
	if food != "" {
		parsed, err := models.ParseFeedType(food)
		if err != nil {
			return fmt.Errorf("--food: %w", err)
		}
		foods = []models.FeedType{parsed}
	} else {
		result.Profiles = svc.Profiles(breeds)
	}

	for _, f := range foods {
		result.Production = append(result.Production, svc.CalculateFoodProduction(breeds, f, soilSize))
	}

	text := render.FertilizerProfiles(result.Profiles)
	for _, p := range result.Production {
		text += render.FoodProduction(p)
	}

	if a.chartsEnabled() {
		names := make([]string, 0, len(breeds))
		for _, b := range breeds {
			names = append(names, b.Name)
		}
		if len(result.Profiles) > 0 {
			text += render.GroupedBars("Fertilizer Production by Breed and Food Type", "lbs", names, profileSeries(result.Profiles)) + "\n"
		}
		text += render.GroupedBars("Food Production by Breed and Food Type", "lbs", names, productionSeries(result.Production))
	}

	a.logger.Info("fertilizer estimate generated",
		zap.Int("breeds", len(breeds)),
		zap.Int("foods", len(foods)),
		zap.Float64("soil_size", soilSize))
	return a.emit(w, result, text)
}

// profileSeries pivots breed profiles into one series per food.
func profileSeries(profiles []models.FertilizerProfile) []render.Series {
	series := make([]render.Series, 0, len(fertilizer.Foods))
	for i, food := range fertilizer.Foods {
		s := render.Series{Name: food.Lower()}
		for _, p := range profiles {
			s.Values = append(s.Values, p.Foods[i].Amount)
		}
		series = append(series, s)
	}
	return series
}

func productionSeries(production []models.FoodProduction) []render.Series {
	series := make([]render.Series, 0, len(production))
	for _, p := range production {
		s := render.Series{Name: p.Food.Lower()}
		for _, b := range p.Breeds {
			s.Values = append(s.Values, b.Amount)
		}
		series = append(series, s)
	}
	return series
}
