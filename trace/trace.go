// Package trace provides ready-made ldpc.Observer implementations: a
// structured-log sink for diagnostics and an in-memory recorder for tests.
//
// Observers are purely diagnostic; attaching one never changes a decode
// result. The log sink emits at Debug level, so a default-level logger
// stays silent.
package trace

import (
	"github.com/charmbracelet/log"

	"github.com/katalvlaran/lvlcode/ldpc"
)

// Logger is an Observer that writes each trace point to a structured
// logger at Debug level. Syndromes are summarized by their Hamming weight
// rather than dumped verbatim, keeping high-rate traces readable.
type Logger struct {
	l *log.Logger
}

// New wraps l as an Observer.
func New(l *log.Logger) *Logger { return &Logger{l: l} }

// IterationStart implements ldpc.Observer.
func (t *Logger) IterationStart(iter int) {
	t.l.Debug("iteration start", "iter", iter)
}

// SyndromeComputed implements ldpc.Observer.
func (t *Logger) SyndromeComputed(iter int, syndrome []int, ok bool) {
	weight := 0
	for _, s := range syndrome {
		weight += s
	}
	t.l.Debug("syndrome computed", "iter", iter, "failed_checks", weight, "codeword", ok)
}

// TablesUpdated implements ldpc.Observer.
func (t *Logger) TablesUpdated(iter int) {
	t.l.Debug("tables updated", "iter", iter)
}

// FlipSetChosen implements ldpc.Observer.
func (t *Logger) FlipSetChosen(iter int, flips []int) {
	t.l.Debug("flip set chosen", "iter", iter, "count", len(flips), "bits", flips)
}

// Recorder is an Observer capturing every event for assertions in tests.
// Slice arguments are copied, honoring the Observer no-retention rule.
// Not safe for concurrent use.
type Recorder struct {
	Iterations      []int
	SyndromeWeights []int
	Converged       []bool
	TableUpdates    []int
	FlipSets        [][]int
}

// IterationStart implements ldpc.Observer.
func (r *Recorder) IterationStart(iter int) {
	r.Iterations = append(r.Iterations, iter)
}

// SyndromeComputed implements ldpc.Observer.
func (r *Recorder) SyndromeComputed(iter int, syndrome []int, ok bool) {
	weight := 0
	for _, s := range syndrome {
		weight += s
	}
	r.SyndromeWeights = append(r.SyndromeWeights, weight)
	r.Converged = append(r.Converged, ok)
}

// TablesUpdated implements ldpc.Observer.
func (r *Recorder) TablesUpdated(iter int) {
	r.TableUpdates = append(r.TableUpdates, iter)
}

// FlipSetChosen implements ldpc.Observer.
func (r *Recorder) FlipSetChosen(iter int, flips []int) {
	r.FlipSets = append(r.FlipSets, append([]int(nil), flips...))
}

var (
	_ ldpc.Observer = (*Logger)(nil)
	_ ldpc.Observer = (*Recorder)(nil)
)
