package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/mamadbah2/dairy/internal/domain/models"
	"github.com/mamadbah2/dairy/internal/render"
	"github.com/mamadbah2/dairy/internal/service/breakdown"
)

func newBreakdownCmd(a *app) *cobra.Command {
	var withTable bool

	cmd := &cobra.Command{
		Use:   "breakdown",
		Short: "Milk yield of the sample herd by breed and feed type",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runBreakdown(cmd.OutOrStdout(), withTable)
		},
	}
	cmd.Flags().BoolVar(&withTable, "table", false, "also print a breed by feed-type table with totals")
	return cmd
}

func (a *app) runBreakdown(w io.Writer, withTable bool) error {
	svc := breakdown.NewService(a.named("svc.breakdown"))

	result, err := svc.Calculate(a.repo.Herd())
	if err != nil {
		return fmt.Errorf("yield breakdown: %w", err)
	}

	text := render.YieldBreakdown(result)
	if withTable {
		text += "\n" + render.BreakdownTable(result)
	}
	if a.chartsEnabled() {
		stacked := breakdown.StackedSeries(result)
		series := make([]render.Series, 0, len(models.FeedTypes))
		for _, feed := range models.FeedTypes {
			series = append(series, render.Series{Name: string(feed), Values: stacked[feed]})
		}
		text += "\n" + render.StackedBars("Milk Yield by Breed and Feed Type", "gallons", result.Breeds, series)
		text += "\n" + render.Pie("Total Milk Yield by Breed", breakdown.TotalsByBreed(result))
	}

	a.logger.Info("yield breakdown generated", zap.Int("breeds", len(result.Breeds)))
	return a.emit(w, result, text)
}
