package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func newValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <document>",
		Short: "Validate a simulation experiment against its model",
		Long: `Validate a simulation experiment against its model.

The document is checked for reference integrity, time course sanity,
algorithm and parameter identifiers, and every data generator target is
resolved against the referenced CellML model.

Examples:
  bgtool validate simulation/cvs-model.sedml
  bgtool validate --json simulation/cvs-model.sedml`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			jsonOut, _ := cmd.Flags().GetBool("json")

			ctx := context.Background()
			srv, err := newService(ctx, cmd)
			if err != nil {
				return err
			}
			report, err := srv.Validate(ctx, args[0])
			if err != nil {
				return err
			}
			if jsonOut {
				if err := printJSON(report); err != nil {
					return err
				}
			} else {
				for _, issue := range report.Issues {
					fmt.Println(issue.String())
				}
				if report.OK() {
					fmt.Printf("%s: OK (%d warning(s))\n", args[0], len(report.Warnings()))
				}
			}
			if !report.OK() {
				return fmt.Errorf("%s: %d error(s)", args[0], len(report.Errors()))
			}
			return nil
		},
	}
}
