package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/mamadbah2/dairy/internal/domain/models"
	"github.com/mamadbah2/dairy/internal/render"
	"github.com/mamadbah2/dairy/internal/service/costing"
)

func newWeeklyCostCmd(a *app) *cobra.Command {
	var (
		counts   map[string]int
		fromPens bool
	)

	cmd := &cobra.Command{
		Use:   "weekly-cost",
		Short: "Weekly feeding cost of the herd",
		Long: `Weekly feeding cost of the herd.

For every breed the cost of every food type in the weekly cost table is added,
multiplied by the breed's cow count.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			herd := a.repo.HerdCounts()
			switch {
			case fromPens:
				herd = a.repo.Farm().HeadcountByBreed()
			case len(counts) > 0:
				herd = counts
			}
			return a.runWeeklyCost(cmd.OutOrStdout(), herd)
		},
	}
	cmd.Flags().StringToIntVar(&counts, "count", nil, "cows per breed, e.g. --count Holstein=10,Jersey=5")
	cmd.Flags().BoolVar(&fromPens, "from-pens", false, "derive cows per breed from the sample farm's pens")
	cmd.MarkFlagsMutuallyExclusive("count", "from-pens")
	return cmd
}

func (a *app) runWeeklyCost(w io.Writer, counts map[string]int) error {
	svc := costing.NewService(a.tables.WeeklyCosts, a.named("svc.costing"))

	result, err := svc.CostPerWeek(counts)
	if err != nil {
		return fmt.Errorf("weekly cost: %w", err)
	}

	text := render.WeeklyCost(result)
	if a.chartsEnabled() {
		points := make([]models.Point, 0, len(result.Breeds))
		for _, b := range result.Breeds {
			points = append(points, models.Point{Label: b.Breed, Value: b.Cost})
		}
		text += "\n" + render.Pie("Weekly Cost by Breed", points)
	}

	a.logger.Info("weekly cost generated", zap.Int("breeds", len(result.Breeds)), zap.Float64("total", result.Total))
	return a.emit(w, result, text)
}
