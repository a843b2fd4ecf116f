package cli

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/lindseyguan/a3mtools/pkg/a3m"
	"github.com/lindseyguan/a3mtools/pkg/a3mio"
)

func joinInts(a []int) string {
	s := make([]string, len(a))
	for i, n := range a {
		s[i] = strconv.Itoa(n)
	}
	return strings.Join(s, ",")
}

// wrtStats prints a summary of the alignment and, if cols, a line per
// query column.
func wrtStats(w io.Writer, m *a3m.MSA, cols bool) {
	cov := m.Coverage()
	info := m.ParsedInfo()
	fmt.Fprintf(w, "length\t%d\nchains\t%s\ncards\t%s\nrows\t%d\n",
		m.Len(), joinInts(info.Lens()), joinInts(info.Cards()), m.NRow())
	if !cols {
		return
	}
	fmt.Fprintln(w, "col\tquery\tmatch\tgap\tinsert\tcoverage")
	q := m.Query().Residues()
	for i, f := range cov.Frac() {
		fmt.Fprintf(w, "%d\t%c\t%d\t%d\t%d\t%.3f\n", i, q[i], cov.Count(a3m.CntMatch, i),
			cov.Count(a3m.CntGap, i), cov.Count(a3m.CntInsert, i), f)
	}
}

func (a *app) statsCmd() *cobra.Command {
	var cols bool
	cmd := &cobra.Command{
		Use:   "stats [file]",
		Short: "Print size and per column coverage of an alignment",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := a3mio.ReadFile(firstArg(args))
			if err != nil {
				return err
			}
			wrtStats(cmd.OutOrStdout(), m, cols)
			return nil
		},
	}
	cmd.Flags().BoolVarP(&cols, "columns", "c", false, "print counts for each column")
	return cmd
}

// errBad is returned by check when any file fails, after all have been
// looked at.
var errBad = errors.New("bad alignments found")

func (a *app) checkCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check file...",
		Short: "Check that files are well formed a3m",
		Long: `Parse each file and check every row covers as many columns as the
query. One line per file says "ok" or what is wrong.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			var nbad int
			for _, fname := range args {
				m, err := a3mio.ReadFile(fname)
				if err == nil {
					err = m.Validate()
				}
				if err != nil {
					nbad++
					fmt.Fprintf(w, "%s\t%v\n", fname, err)
					continue
				}
				fmt.Fprintf(w, "%s\tok\n", fname)
			}
			if nbad > 0 {
				return fmt.Errorf("%w: %d of %d", errBad, nbad, len(args))
			}
			return nil
		},
	}
}

func (a *app) countCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "count file...",
		Short: "Count the records in files, query included",
		Long: `Count records without parsing. Nothing is checked, so this works on
files too big or too broken to read.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, fname := range args {
				n, err := a3mio.Count(fname)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%d\n", fname, n)
			}
			return nil
		},
	}
}
