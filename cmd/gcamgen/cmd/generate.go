package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/npillmayer/gcam/gcode"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var outputFile string

var generateCmd = &cobra.Command{
	Use:   "generate <job.yaml>",
	Short: "Generate the G-code program for a job",
	Long: `Validate every enabled operation of a job, compile the operations into
tool paths and write the resulting G-code program. Any invalid enabled
operation blocks generation.

Examples:
  gcamgen generate job.yaml
  gcamgen generate --trace debug -o job.nc job.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: runGenerate,
}

func init() {
	rootCmd.AddCommand(generateCmd)

	generateCmd.Flags().StringVarP(&outputFile, "output", "o", "",
		"write the program to this file instead of stdout")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	job, ops, err := loadOperations(args[0])
	if err != nil {
		return err
	}
	lines, err := gcode.NewGenerator().GenerateOperations(ops, job.Settings)
	if err != nil {
		return errors.Wrap(err, "cannot generate program")
	}
	program := strings.Join(lines, "\n") + "\n"
	if outputFile == "" {
		_, err = fmt.Fprint(cmd.OutOrStdout(), program)
		return err
	}
	if err := os.WriteFile(outputFile, []byte(program), 0o644); err != nil {
		return errors.Wrapf(err, "writing %s", outputFile)
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "wrote %d lines to %s\n", len(lines), outputFile)
	return nil
}
