// Package cli is for command line interactions with the a3m tools.
// Every command reads and writes a3m files. "-" or no name means stdin
// or stdout and names ending in .gz are compressed.
package cli

import (
	"log"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/lindseyguan/a3mtools/pkg/config"
	. "github.com/lindseyguan/a3mtools/pkg/seq/common"
)

// app holds what the commands share once flags and config are read.
type app struct {
	v       *viper.Viper
	cfgFile string
	envFile string
	cfg     config.Config
}

// verbosef logs only if asked to.
func (a *app) verbosef(format string, args ...interface{}) {
	if a.cfg.Verbose {
		log.Printf(format, args...)
	}
}

// load reads the config, after cobra has parsed the flags.
func (a *app) load(cmd *cobra.Command, args []string) error {
	if err := config.Load(a.v, a.cfgFile, a.envFile); err != nil {
		return err
	}
	cfg, err := config.New(a.v)
	if err != nil {
		return err
	}
	a.cfg = cfg
	if cfg.Verbose {
		log.SetFlags(log.Lmsgprefix | log.Ltime)
	}
	if f := a.v.ConfigFileUsed(); f != "" {
		a.verbosef("config from %s", f)
	}
	return nil
}

// NewRootCmd builds the whole command tree. Each call gets its own
// settings, so tests can run commands one after another.
func NewRootCmd() *cobra.Command {
	a := &app{v: viper.New()}
	root := &cobra.Command{
		Use:   "a3m",
		Short: "Slice, concatenate and pair multiple sequence alignments in a3m format",
		Long: `Work on a3m alignments as made by hhblits and colabfold.
Alignments can be cut to a range of query columns, put side by side as
a paired alignment of several chains, or put in diagonal blocks.`,
		Version:           "0.1.0",
		SilenceUsage:      true,
		PersistentPreRunE: a.load,
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.cfgFile, "config", "", "config file (default a3mtools.yaml in . or ~/.config/a3mtools)")
	pf.StringVar(&a.envFile, "env", "", "file of environment variables (default .env)")
	pf.BoolP(config.KeyVerbose, "v", false, "say what is going on")
	pf.IntP(config.KeyWorkers, "w", 0, "number of batch jobs to run at once (default number of CPUs)")
	pf.BoolP(config.KeyGzip, "z", false, "compress output")
	pf.String(config.KeyDataDir, "", "directory for relative input names in batch files")
	pf.String(config.KeyOutDir, "", "directory for relative output names in batch files")
	for _, key := range []string{config.KeyVerbose, config.KeyWorkers,
		config.KeyGzip, config.KeyDataDir, config.KeyOutDir} {
		if err := a.v.BindPFlag(key, pf.Lookup(key)); err != nil {
			panic(err)
		}
	}

	root.AddCommand(
		a.sliceCmd(),
		a.concatCmd(),
		a.diagCmd(),
		a.pairCmd(),
		a.chainCmd(),
		a.statsCmd(),
		a.checkCmd(),
		a.countCmd(),
		a.batchCmd(),
		a.randCmd(),
	)
	return root
}

// Execute runs the command line. It is called by main.main().
func Execute() {
	log.SetFlags(0)
	log.SetPrefix("a3m: ")
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(ExitFailure)
	}
}
