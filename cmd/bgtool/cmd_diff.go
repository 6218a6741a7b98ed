package main

import (
	"context"
	"fmt"

	"github.com/AnatomicMaps/BG-models/service/report"
	"github.com/spf13/cobra"
)

func newDiffCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "diff <document> <document>",
		Short: "Diff two simulation experiment documents",
		Long: `Diff two simulation experiment documents.

Both documents are decoded and re-encoded before comparison, so formatting
differences between editors do not show up; only semantic content does.

Examples:
  bgtool diff simulation/cvs-model.sedml simulation/cvs-model-v2.sedml`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			jsonOut, _ := cmd.Flags().GetBool("json")
			contextLines, _ := cmd.Flags().GetInt("context")

			ctx := context.Background()
			srv, err := newService(ctx, cmd)
			if err != nil {
				return err
			}
			encoded := make([][]byte, 2)
			for i, URL := range args {
				doc, err := srv.LoadExperiment(ctx, URL)
				if err != nil {
					return err
				}
				if encoded[i], err = doc.Encode(); err != nil {
					return err
				}
			}
			patch, stats, err := report.Diff(args[0], args[1], encoded[0], encoded[1], contextLines)
			if err != nil {
				return err
			}
			if jsonOut {
				return printJSON(struct {
					Patch string           `json:"patch"`
					Stats report.DiffStats `json:"stats"`
				}{patch, stats})
			}
			if patch == "" {
				fmt.Println("documents are identical")
				return nil
			}
			fmt.Print(patch)
			fmt.Printf("+%d -%d\n", stats.Additions, stats.Deletions)
			return nil
		},
	}
	cmd.Flags().Int("context", 3, "Unified diff context lines")
	return cmd
}
