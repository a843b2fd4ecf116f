// Package batch runs lists of alignment operations read from a yaml
// manifest, for example
//
//	jobs:
//	  - op: slice
//	    in: [a.a3m]
//	    out: a_10_50.a3m
//	    start: 10
//	    end: 50
//	  - op: pair
//	    in: [a.a3m, b.a3m]
//	    out: ab.a3m
//
// Alignments are never changed once read, so jobs run in parallel with
// no locking. One job failing does not stop the others.
package batch

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/exascience/pargo/parallel"
	"gopkg.in/yaml.v3"

	"github.com/lindseyguan/a3mtools/pkg/a3m"
	"github.com/lindseyguan/a3mtools/pkg/a3mio"
	"github.com/lindseyguan/a3mtools/pkg/config"
)

// Operations
const (
	OpSlice  = "slice"  // columns start to end of one alignment
	OpChain  = "chain"  // one chain of a multi-chain alignment
	OpConcat = "concat" // two alignments side by side
	OpDiag   = "diag"   // two alignments in diagonal blocks
	OpPair   = "pair"   // concat, written with paired and unpaired blocks
)

// nIn is how many input files each operation wants.
var nIn = map[string]int{
	OpSlice: 1, OpChain: 1, OpConcat: 2, OpDiag: 2, OpPair: 2,
}

// Job is one operation.
type Job struct {
	Op    string   `yaml:"op"`
	In    []string `yaml:"in"`
	Out   string   `yaml:"out"`
	Start *int     `yaml:"start,omitempty"`
	End   *int     `yaml:"end,omitempty"`
	Chain int      `yaml:"chain,omitempty"`
}

// Manifest is the whole yaml file.
type Manifest struct {
	Jobs []Job `yaml:"jobs"`
}

// Load reads a manifest. Unknown fields are an error, since a typo like
// "strat: 3" would otherwise silently slice from the start.
func Load(r io.Reader) (*Manifest, error) {
	var m Manifest
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&m); err != nil {
		if err == io.EOF {
			return &m, nil
		}
		return nil, fmt.Errorf("batch manifest: %w", err)
	}
	return &m, m.Validate()
}

// LoadBytes is Load on text already read in.
func LoadBytes(text []byte) (*Manifest, error) { return Load(bytes.NewReader(text)) }

// Check looks at a single job without reading any files.
func (job *Job) Check() error {
	want, ok := nIn[job.Op]
	if !ok {
		return fmt.Errorf("unknown op %q", job.Op)
	}
	if len(job.In) != want {
		return fmt.Errorf("op %s wants %d input files, got %d", job.Op, want, len(job.In))
	}
	if job.Op == OpChain && job.Chain < 0 {
		return fmt.Errorf("negative chain %d", job.Chain)
	}
	return nil
}

// Validate checks every job, reporting the first bad one.
func (m *Manifest) Validate() error {
	for i := range m.Jobs {
		if err := m.Jobs[i].Check(); err != nil {
			return fmt.Errorf("batch manifest job %d: %w", i+1, err)
		}
		if m.Jobs[i].Out == "" {
			return fmt.Errorf("batch manifest job %d: no output file", i+1)
		}
	}
	return nil
}

// Options say where files are and how to write them.
type Options struct {
	Workers int
	DataDir string // relative input names are under here
	OutDir  string // relative output names go here
	Gzip    bool   // add .gz to output names that do not have it
}

// OptionsFrom takes what we need from the app settings.
func OptionsFrom(c config.Config) Options {
	return Options{Workers: c.Workers, DataDir: c.DataDir, OutDir: c.OutDir, Gzip: c.Gzip}
}

// Result says what happened to one job.
type Result struct {
	Job  int    // index into the manifest
	Out  string // file written
	NRow int    // rows in the result, not counting the query
	Err  error
}

// Exec does the work of one job and returns the result, without
// writing it.
func Exec(job Job, opts Options) (a3m.Serializer, error) {
	if err := job.Check(); err != nil {
		return nil, err
	}
	if job.Op == OpChain {
		p, err := a3mio.ReadPaired(config.Resolve(opts.DataDir, job.In[0]), false)
		if err != nil {
			return nil, err
		}
		return p.GetChain(job.Chain)
	}
	in := make([]*a3m.MSA, len(job.In))
	for i, fname := range job.In {
		m, err := a3mio.ReadFile(config.Resolve(opts.DataDir, fname))
		if err != nil {
			return nil, err
		}
		in[i] = m
	}
	switch job.Op {
	case OpSlice:
		return in[0].Slice(a3m.Range{Start: job.Start, End: job.End})
	case OpConcat:
		return a3m.Concat(in[0], in[1])
	case OpDiag:
		return a3m.DiagonalConcat(in[0], in[1])
	case OpPair:
		m, err := a3m.Concat(in[0], in[1])
		if err != nil {
			return nil, err
		}
		return a3m.ToPaired(m, true)
	}
	panic("batch: op passed Check but is not handled: " + job.Op)
}

// outName is where a job's result goes.
func outName(job Job, opts Options) string {
	out := config.Resolve(opts.OutDir, job.Out)
	if opts.Gzip && out != "" && out != "-" && !strings.HasSuffix(out, ".gz") {
		out += ".gz"
	}
	return out
}

func nrow(s a3m.Serializer) int {
	if a, ok := s.(a3m.Alignment); ok {
		return a.Base().NRow()
	}
	return 0
}

// RunOne does a job and writes the result.
func RunOne(job Job, opts Options) Result {
	res := Result{Out: outName(job, opts)}
	s, err := Exec(job, opts)
	if err != nil {
		res.Err = err
		return res
	}
	res.NRow = nrow(s)
	res.Err = a3mio.WriteFile(res.Out, s)
	return res
}

// Run does every job in the manifest, Workers at a time. Results come
// back in manifest order. Once ctx is done, jobs not yet started report
// ctx.Err().
func Run(ctx context.Context, m *Manifest, opts Options) []Result {
	results := make([]Result, len(m.Jobs))
	if len(m.Jobs) == 0 {
		return results
	}
	n := opts.Workers
	if n < 1 {
		n = 1
	}
	if n > len(m.Jobs) {
		n = len(m.Jobs)
	}
	parallel.Range(0, len(m.Jobs), n, func(low, high int) {
		for i := low; i < high; i++ {
			if err := ctx.Err(); err != nil {
				results[i] = Result{Job: i, Out: outName(m.Jobs[i], opts), Err: err}
				continue
			}
			results[i] = RunOne(m.Jobs[i], opts)
			results[i].Job = i
		}
	})
	return results
}
