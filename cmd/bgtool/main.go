package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	bgmodels "github.com/AnatomicMaps/BG-models"
	"github.com/spf13/cobra"
)

var version = "0.1.0-dev"

func main() {
	rootCmd := &cobra.Command{
		Use:   "bgtool",
		Short: "Tooling for the bond-graph cardiovascular model repository",
		Long: `bgtool works with the SED-ML simulation experiments and CellML models
kept in this repository.

It validates experiments against their models, summarises and diffs
experiment documents, generates the RDF semantic annotations for a model
and hands an experiment to an external simulation engine such as OpenCOR.`,
	}

	// Global flags
	rootCmd.PersistentFlags().Bool("json", false, "Output as JSON (for tool consumption)")
	rootCmd.PersistentFlags().String("base", "", "Base URL resolving relative document locations")
	rootCmd.PersistentFlags().String("trace", "", "Write OpenTelemetry traces to this file")
	rootCmd.PersistentFlags().String("config", "", "Configuration file (YAML)")

	rootCmd.AddCommand(
		newVersionCmd(),
		newValidateCmd(),
		newDescribeCmd(),
		newDiffCmd(),
		newAnnotateCmd(),
		newRunCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			jsonOut, _ := cmd.Flags().GetBool("json")
			if jsonOut {
				json.NewEncoder(os.Stdout).Encode(map[string]string{"version": version})
			} else {
				fmt.Printf("bgtool version %s\n", version)
			}
		},
	}
}

// newService builds the façade from the persistent flags.
func newService(ctx context.Context, cmd *cobra.Command) (*bgmodels.Service, error) {
	base, _ := cmd.Flags().GetString("base")
	trace, _ := cmd.Flags().GetString("trace")
	configURL, _ := cmd.Flags().GetString("config")

	options := []bgmodels.Option{bgmodels.WithMetaBaseURL(base)}
	if trace != "" {
		options = append(options, bgmodels.WithTracing("bgtool", version, trace))
	}
	if configURL != "" {
		config, err := loadConfig(configURL)
		if err != nil {
			return nil, err
		}
		options = append(options, bgmodels.WithConfig(config))
	}
	return bgmodels.New(ctx, options...)
}

func printJSON(v interface{}) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}
