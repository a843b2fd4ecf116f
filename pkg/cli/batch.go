package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/lindseyguan/a3mtools/pkg/a3mio"
	"github.com/lindseyguan/a3mtools/pkg/batch"
)

func (a *app) batchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "batch manifest.yaml",
		Short: "Run a list of jobs from a yaml file",
		Long: `Run slice, chain, concat, diag and pair jobs listed in a yaml file.
Relative input names are taken from the data-dir setting and outputs
go to out-dir. Jobs run in parallel, workers at a time. A failed job
does not stop the others. Interrupting stops jobs not yet started.`,
		Example: `  jobs:
    - op: slice
      in: [a.a3m]
      out: a_10_50.a3m
      start: 10
      end: 50`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := a3mio.ReadAll(args[0])
			if err != nil {
				return err
			}
			m, err := batch.LoadBytes(text)
			if err != nil {
				return err
			}
			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
			defer stop()
			opts := batch.OptionsFrom(a.cfg)
			a.verbosef("%d jobs, %d workers", len(m.Jobs), opts.Workers)
			var nbad int
			for _, r := range batch.Run(ctx, m, opts) {
				if r.Err != nil {
					nbad++
					fmt.Fprintf(cmd.OutOrStdout(), "%d\t%s\t%v\n", r.Job+1, r.Out, r.Err)
					continue
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%d\t%s\t%d rows\n", r.Job+1, r.Out, r.NRow)
			}
			if nbad > 0 {
				return fmt.Errorf("%d of %d jobs failed", nbad, len(m.Jobs))
			}
			return nil
		},
	}
}
