package cmd

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate <job.yaml>",
	Short: "Check the operations of a job",
	Long: `Validate every operation of a job and list all problems found. Disabled
operations are checked as well but never fail the job.

Examples:
  gcamgen validate job.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	_, ops, err := loadOperations(args[0])
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	invalid := 0
	for _, op := range ops {
		r := op.Validate()
		status := "ok"
		switch {
		case !op.Enabled:
			status = "disabled"
		case !r.OK():
			status = "invalid"
			invalid++
		}
		fmt.Fprintf(out, "%-8s %s %q\n", status, op.Kind(), op.Name)
		for _, msg := range r.Errors {
			fmt.Fprintf(out, "         - %s\n", msg)
		}
	}
	if invalid > 0 {
		return errors.Errorf("%d of %d operations are invalid", invalid, len(ops))
	}
	return nil
}
