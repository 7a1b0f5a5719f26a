// Package cmd implements the commands of gcamgen.
package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/npillmayer/gcam/operation"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/logrusadapter"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	traceLevel string
	tracerName string
)

var rootCmd = &cobra.Command{
	Use:   "gcamgen",
	Short: "Compile machining jobs into G-code",
	Long: `gcamgen reads a job file in YAML, holding a list of machining operations
and the program settings, and compiles it into a G-code program.

Examples:
  gcamgen generate job.yaml               # Print the program
  gcamgen generate job.yaml -o job.nc     # Write the program to a file
  gcamgen validate job.yaml               # Check all operations
  gcamgen bounds job.yaml                 # Show the extent of every tool path`,
	SilenceUsage:      true,
	PersistentPreRunE: setupTracing,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&traceLevel, "trace", "error",
		"trace level: error, info or debug")
	rootCmd.PersistentFlags().StringVar(&tracerName, "tracer", "go",
		"tracing backend: go or logrus")
}

// setupTracing installs a global trace selector for the chosen backend.
func setupTracing(*cobra.Command, []string) error {
	var adapter tracing.Adapter
	switch strings.ToLower(tracerName) {
	case "go":
		adapter = gologadapter.GetAdapter()
	case "logrus":
		adapter = logrusadapter.GetAdapter()
	default:
		return errors.Errorf("unknown tracer %q, use go or logrus", tracerName)
	}
	tracing.SetTraceSelector(tracing.SelectorForAdapter(adapter))
	tracing.Select("gcam").SetTraceLevel(tracing.TraceLevelFromString(traceLevel))
	return nil
}

// loadOperations reads a job file and converts its operations, sorted by
// execution order.
func loadOperations(path string) (*Job, []operation.Operation, error) {
	job, err := LoadJob(path)
	if err != nil {
		return nil, nil, err
	}
	ops, err := job.Build()
	if err != nil {
		return nil, nil, errors.Wrapf(err, "job %s", path)
	}
	operation.Sort(ops)
	return job, ops, nil
}
