package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/lindseyguan/a3mtools/pkg/a3mio"
	"github.com/lindseyguan/a3mtools/pkg/randmsa"
)

// parseLens takes "30,40" to []int{30, 40}.
func parseLens(s string) ([]int, error) {
	const emsg = "Failed converting %s to positive integer"
	var lens []int
	for _, f := range strings.Split(s, ",") {
		n, err := strconv.ParseUint(strings.TrimSpace(f), 10, 32)
		if err != nil {
			return nil, fmt.Errorf(emsg, f)
		}
		lens = append(lens, int(n))
	}
	return lens, nil
}

func (a *app) randCmd() *cobra.Command {
	const iseed int64 = 1637
	var args randmsa.RandMSAArgs
	cmd := &cobra.Command{
		Use:   "rand file nseq length[,length...]",
		Short: "Write a random alignment for testing",
		Long: `Write nseq random rows under a random query. Give one length per
chain. The content means nothing. It is for benchmarks and for
checking the other commands.`,
		Example: "  a3m rand -r 3 test.a3m 1000 120,80",
		Args:    cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, cargs []string) error {
			nseq, err := strconv.ParseUint(cargs[1], 10, 32)
			if err != nil {
				return fmt.Errorf("Failed converting %s to positive integer", cargs[1])
			}
			args.Nseq = int(nseq)
			if args.Lens, err = parseLens(cargs[2]); err != nil {
				return err
			}
			if args.FracGap < 0 || args.FracGap > 1 || args.FracIns < 0 || args.FracIns > 1 {
				return fmt.Errorf("gap and insertion fractions must be from 0 to 1")
			}
			return a.writeRand(cargs[0], &args)
		},
	}
	f := cmd.Flags()
	f.Int64VarP(&args.Iseed, "seed", "r", iseed, "random number seed")
	f.StringVarP(&args.Cmmt, "cmmt", "c", "rand", "header for the rows")
	f.Float32VarP(&args.FracGap, "gaps", "g", 0.3, "fraction of gaps in rows")
	f.Float32VarP(&args.FracIns, "ins", "i", 0.05, "chance of an insertion after a column")
	f.BoolVarP(&args.AllGapOK, "allgap", "a", false, "allow rows that are all gaps")
	return cmd
}

// writeRand sends the alignment through a3mio so .gz and stdout work.
func (a *app) writeRand(fname string, args *randmsa.RandMSAArgs) error {
	text := randmsa.String(*args)
	if err := a3mio.WriteAll(fname, []byte(text)); err != nil {
		return err
	}
	a.verbosef("rand: wrote %d rows to %s", args.Nseq, name(fname))
	return nil
}
