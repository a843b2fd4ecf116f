package cli

import (
	"github.com/spf13/cobra"

	"github.com/lindseyguan/a3mtools/pkg/batch"
)

// run does a job the same way the batch command would, but with names
// taken as they are given.
func (a *app) run(job batch.Job) error {
	res := batch.RunOne(job, batch.Options{Gzip: a.cfg.Gzip})
	if res.Err != nil {
		return res.Err
	}
	a.verbosef("%s: wrote %d rows to %s", job.Op, res.NRow, name(res.Out))
	return nil
}

func name(fname string) string {
	if fname == "" || fname == "-" {
		return "stdout"
	}
	return fname
}

// outFlag adds -o to commands that write an alignment.
func outFlag(cmd *cobra.Command, out *string) {
	cmd.Flags().StringVarP(out, "out", "o", "-", "output file")
}

func (a *app) sliceCmd() *cobra.Command {
	var job batch.Job
	var start, end int
	cmd := &cobra.Command{
		Use:   "slice [file]",
		Short: "Cut an alignment down to a range of query columns",
		Long: `Keep query columns start up to, but not including, end.
Columns count from zero and negative values count from the end, as
in a python slice. Insertions before the first kept column are lost.
Only single chain alignments can be sliced. See the chain command for
the others.`,
		Example: "  a3m slice -s 10 -e 50 -o part.a3m whole.a3m",
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			job.Op = batch.OpSlice
			job.In = []string{firstArg(args)}
			if cmd.Flags().Changed("start") {
				job.Start = &start
			}
			if cmd.Flags().Changed("end") {
				job.End = &end
			}
			return a.run(job)
		},
	}
	cmd.Flags().IntVarP(&start, "start", "s", 0, "first query column")
	cmd.Flags().IntVarP(&end, "end", "e", 0, "column after the last one (default end of query)")
	outFlag(cmd, &job.Out)
	return cmd
}

func firstArg(args []string) string {
	if len(args) == 0 {
		return "-"
	}
	return args[0]
}

// twoIn makes the commands which combine two alignments.
func (a *app) twoIn(op, use, short, long string) *cobra.Command {
	var job batch.Job
	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Long:  long,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			job.Op = op
			job.In = args
			return a.run(job)
		},
	}
	outFlag(cmd, &job.Out)
	return cmd
}

func (a *app) concatCmd() *cobra.Command {
	return a.twoIn(batch.OpConcat, "concat left right", "Put two alignments side by side",
		`Join two alignments as chains of one complex. Rows of one side are
padded with gaps over the other. Query headers on the right are
renumbered to follow those on the left.`)
}

func (a *app) diagCmd() *cobra.Command {
	return a.twoIn(batch.OpDiag, "diag left right", "Put two alignments in diagonal blocks",
		`Like concat, but every row from either side appears once, with gaps
over the other chain. Empty rows and old chain query rows are dropped.`)
}

func (a *app) pairCmd() *cobra.Command {
	return a.twoIn(batch.OpPair, "pair left right", "Concatenate and write as a paired alignment",
		`Concatenate two alignments and write the result with the paired
query block first and one unpaired query row per chain at the end.`)
}

func (a *app) chainCmd() *cobra.Command {
	var job batch.Job
	cmd := &cobra.Command{
		Use:     "chain [file]",
		Short:   "Pull one chain out of a multi-chain alignment",
		Example: "  a3m chain -i 1 complex.a3m",
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			job.Op = batch.OpChain
			job.In = []string{firstArg(args)}
			return a.run(job)
		},
	}
	cmd.Flags().IntVarP(&job.Chain, "index", "i", 0, "chain to keep, counting from zero")
	outFlag(cmd, &job.Out)
	return cmd
}
