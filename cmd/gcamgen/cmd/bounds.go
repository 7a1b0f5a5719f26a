package cmd

import (
	"fmt"

	"github.com/npillmayer/gcam"
	"github.com/spf13/cobra"
)

var boundsCmd = &cobra.Command{
	Use:   "bounds <job.yaml>",
	Short: "Show the extent of every tool path of a job",
	Long: `Compile every enabled and valid operation of a job and print the bounding
box of its tool path, followed by the bounding box of the whole job.

Examples:
  gcamgen bounds job.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: runBounds,
}

func init() {
	rootCmd.AddCommand(boundsCmd)
}

func runBounds(cmd *cobra.Command, args []string) error {
	_, ops, err := loadOperations(args[0])
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	total := gcam.EmptyBox3D()
	for _, op := range ops {
		if !op.Enabled {
			continue
		}
		tp, err := op.GenerateToolPath()
		if err != nil {
			fmt.Fprintf(out, "%q: %v\n", op.Name, err)
			continue
		}
		b := tp.Bounds()
		fmt.Fprintf(out, "%q: %s, length %.3f\n", op.Name, b, tp.Length())
		total = total.Union(b)
	}
	fmt.Fprintf(out, "job: %s\n", total)
	return nil
}
