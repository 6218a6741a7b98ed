package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func newAnnotateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "annotate <model>",
		Short: "Generate the RDF semantic annotations for a model",
		Long: `Generate the RDF semantic annotations for a CellML model.

Every cmeta:id of the form <compartment>.blood.<quantity> is turned into a
biophysics annotation: the quantity is linked to a local blood node which is
in turn linked to the UBERON anatomical cavity of the compartment.  The
graph is written in Turtle.

Examples:
  bgtool annotate models/cvs-model.cellml
  bgtool annotate -o annotations/cvs-model.ttl models/cvs-model.cellml`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			output, _ := cmd.Flags().GetString("output")

			ctx := context.Background()
			srv, err := newService(ctx, cmd)
			if err != nil {
				return err
			}
			result, err := srv.Annotate(ctx, args[0])
			if err != nil {
				return err
			}
			w := os.Stdout
			if output != "" {
				f, err := os.Create(output)
				if err != nil {
					return err
				}
				defer f.Close()
				w = f
			}
			if err := result.WriteTurtle(w); err != nil {
				return err
			}
			for _, compartment := range result.UnknownCavities {
				fmt.Fprintf(os.Stderr, "warning: no cavity term for compartment %q, used generic anatomical entity\n", compartment)
			}
			if len(result.Skipped) > 0 {
				fmt.Fprintf(os.Stderr, "skipped %d metadata id(s): %v\n", len(result.Skipped), result.Skipped)
			}
			return nil
		},
	}
	cmd.Flags().StringP("output", "o", "", "Write Turtle output to this file instead of stdout")
	return cmd
}
