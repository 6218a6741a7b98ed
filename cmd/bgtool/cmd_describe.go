package main

import (
	"context"
	"fmt"

	"github.com/AnatomicMaps/BG-models/service/report"
	"github.com/spf13/cobra"
)

func newDescribeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "describe <document>",
		Short: "Summarise a simulation experiment document",
		Long: `Summarise a simulation experiment document: referenced models, time
course settings, solver algorithm and parameters, tasks, data generators
and plot outputs.

Examples:
  bgtool describe simulation/cvs-model.sedml
  bgtool describe --json simulation/cvs-model.sedml`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			jsonOut, _ := cmd.Flags().GetBool("json")

			ctx := context.Background()
			srv, err := newService(ctx, cmd)
			if err != nil {
				return err
			}
			doc, err := srv.LoadExperiment(ctx, args[0])
			if err != nil {
				return err
			}
			summary := report.Summarize(doc)
			if jsonOut {
				return printJSON(summary)
			}
			fmt.Print(summary.Text())
			return nil
		},
	}
}
