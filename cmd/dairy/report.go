package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/mamadbah2/dairy/internal/render"
	"github.com/mamadbah2/dairy/internal/service/reporting"
)

func newReportCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "report",
		Short: "Pen allocation, milk yield, emissions and feed cost of the sample farm",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runReport(cmd.OutOrStdout())
		},
	}
}

func (a *app) runReport(w io.Writer) error {
	svc := reporting.NewService(a.tables, a.named("svc.reporting"))
	farm := a.repo.Farm()

	report, err := svc.Report(farm)
	if err != nil {
		return fmt.Errorf("farm report: %w", err)
	}

	text := render.FarmReport(report)
	if a.chartsEnabled() {
		text += "\n" + render.Pie("Milk Yield by Breed", reporting.MilkYieldByBreed(farm))
		text += "\n" + render.Pie("Greenhouse Gas Emissions by Breed", reporting.EmissionsByBreed(report.Emissions))
	}

	a.logger.Info("farm report generated",
		zap.Int("cows", len(farm.Cows())),
		zap.Int("pens", len(farm.Pens())))
	return a.emit(w, report, text)
}
