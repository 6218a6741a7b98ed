package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func newRunCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run <document>",
		Short: "Run a simulation experiment with the configured engine",
		Long: `Run a simulation experiment by handing it to the configured external
engine (OpenCOR by default).  The repository carries no solver of its own;
the engine named in the configuration must be installed on the host.

Examples:
  bgtool run simulation/cvs-model.sedml
  bgtool run --config bgtool.yaml simulation/cvs-model.sedml`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			jsonOut, _ := cmd.Flags().GetBool("json")

			ctx := context.Background()
			srv, err := newService(ctx, cmd)
			if err != nil {
				return err
			}
			output, err := srv.Run(ctx, args[0])
			if err != nil {
				if output != nil && output.Stderr != "" {
					fmt.Fprintln(cmd.ErrOrStderr(), output.Stderr)
				}
				return err
			}
			if jsonOut {
				return printJSON(output)
			}
			fmt.Printf("job %s finished in %s\n", output.JobID, output.Elapsed)
			if output.Stdout != "" {
				fmt.Println(output.Stdout)
			}
			return nil
		},
	}
}
