package scenario

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/leapstack-labs/proftree/pkg/errcode"
	"github.com/leapstack-labs/proftree/pkg/profiler"
	"github.com/leapstack-labs/proftree/pkg/result"
)

// maxConcurrentReplays bounds how many scenarios replay at once.
const maxConcurrentReplays = 4

// errorLocation identifies this system in error stacks.
const errorLocation = "proftree"

// loadErrorCode marks a scenario file that could not be loaded.
var loadErrorCode = errcode.New("5", "1", "0001", "001")

// Replayer drives a fresh Profiler through a scenario's steps, one
// profiler per replay.
type Replayer struct {
	// Realtime makes the replay sleep for each step's duration. The
	// default is a simulated clock that advances instantly.
	Realtime bool

	// DetailThreshold is the duration at or above which a step's detail
	// text appears in the report.
	DetailThreshold time.Duration
}

// Report is the outcome of replaying one scenario.
type Report struct {
	RunID    string
	Label    string
	Duration int64 // total milliseconds
	Dump     string
	Rows     []Row
}

// Row is one entry of the flattened report, for tabular output.
type Row struct {
	Depth    int
	Label    string
	Start    int64
	Duration int64
	Self     int64
	OfParent float64
	OfTotal  float64
}

// Run replays the scenario and returns its report.
func (r *Replayer) Run(s *Scenario) *Report {
	var p *profiler.Profiler
	var advance func(time.Duration)

	if r.Realtime {
		p = profiler.New()
		advance = time.Sleep
	} else {
		clock := &simClock{t: time.Now()}
		p = profiler.New(profiler.WithClock(clock.Now))
		advance = clock.Advance
	}

	p.StartMessage(stepMessage{label: s.Label, threshold: r.DetailThreshold})
	for i := range s.Steps {
		r.replayStep(p, &s.Steps[i], advance)
	}
	p.Release()

	rep := &Report{
		RunID:    uuid.NewString(),
		Label:    s.Label,
		Duration: p.Duration(),
		Dump:     p.Dump(),
	}
	flatten(p.Root(), 0, &rep.Rows)
	return rep
}

func (r *Replayer) replayStep(p *profiler.Profiler, st *Step, advance func(time.Duration)) {
	p.EnterMessage(stepMessage{
		label:     st.Label,
		detail:    st.Detail,
		threshold: r.DetailThreshold,
	})
	advance(st.Duration)
	for i := range st.Steps {
		r.replayStep(p, &st.Steps[i], advance)
	}
	p.Release()
}

// ReplayAll loads and replays each scenario file, a few at a time with
// one profiler per goroutine. The returned slice matches the input
// order; failures are reported per file rather than aborting the batch.
func ReplayAll(ctx context.Context, r *Replayer, paths []string) []result.Result[*Report] {
	results := make([]result.Result[*Report], len(paths))

	g, _ := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentReplays)
	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			s, err := Load(path)
			if err != nil {
				results[i] = result.Fail[*Report](loadFailure(path, err))
				return nil
			}
			results[i] = result.OK(r.Run(s))
			return nil
		})
	}
	_ = g.Wait()

	return results
}

func loadFailure(path string, err error) *errcode.Stack {
	stack := &errcode.Stack{}
	stack.Push(errcode.NewError(loadErrorCode, fmt.Sprintf("loading %s: %v", path, err), errorLocation))
	return stack
}

// simClock is a virtual clock: replaying a step advances it by the
// declared duration instead of sleeping.
type simClock struct {
	t time.Time
}

func (c *simClock) Now() time.Time {
	return c.t
}

func (c *simClock) Advance(d time.Duration) {
	c.t = c.t.Add(d)
}

func flatten(e *profiler.Entry, depth int, rows *[]Row) {
	*rows = append(*rows, Row{
		Depth:    depth,
		Label:    e.Label(),
		Start:    e.StartTime(),
		Duration: e.Duration(),
		Self:     e.SelfDuration(),
		OfParent: e.PercentOfParent(),
		OfTotal:  e.PercentOfTotal(),
	})
	for _, c := range e.Children() {
		flatten(c, depth+1, rows)
	}
}
