package main

import (
	"io"

	"github.com/spf13/cobra"
)

func newDemoCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Run every report over the sample scenarios",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runDemo(cmd.OutOrStdout())
		},
	}
}

func (a *app) runDemo(w io.Writer) error {
	steps := []func(io.Writer) error{
		a.runReport,
		func(w io.Writer) error { return a.runBreakdown(w, false) },
		func(w io.Writer) error { return a.runFertilizer(w, "", a.cfg.Fertilizer.SoilSize) },
		func(w io.Writer) error { return a.runWeeklyCost(w, a.repo.HerdCounts()) },
	}

	separator := "\n"
	if a.cfg.Output.Format == "yaml" {
		separator = "---\n"
	}

	for i, step := range steps {
		if i > 0 {
			if _, err := io.WriteString(w, separator); err != nil {
				return err
			}
		}
		if err := step(w); err != nil {
			return err
		}
	}
	return nil
}
