// Package profiler builds per-execution-context trees of nested timing
// entries and renders them as text reports.
//
// A Profiler owns one tree per session: Start creates the root entry,
// Enter/Release descend into and close nested regions, and Dump renders
// the tree with per-node duration, self-time, and percentage figures.
// Misuse never fails; operations without an active session are no-ops
// and unknown figures surface as -1 or 0.
//
// A Profiler supports a single logical flow of control. Create one per
// request, job, or goroutine; driving the same tree from concurrent
// goroutines produces an undefined tree shape.
package profiler

import "time"

// Profiler owns at most one active timing tree.
type Profiler struct {
	root *Entry
	now  func() int64
}

// Option configures a Profiler.
type Option func(*Profiler)

// WithClock overrides the clock used for every entry in the tree.
// Timestamps are truncated to millisecond resolution. All entries of one
// tree must share a clock; the option only affects sessions started
// after it is applied.
func WithClock(now func() time.Time) Option {
	return func(p *Profiler) {
		p.now = func() int64 { return now().UnixMilli() }
	}
}

// New returns a Profiler with no active session.
func New(opts ...Option) *Profiler {
	p := &Profiler{
		now: func() int64 { return time.Now().UnixMilli() },
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Start begins a new session rooted at an entry with the given label.
// Any existing session is silently discarded.
func (p *Profiler) Start(label string) {
	p.start(messageOrNil(label))
}

// StartMessage is Start with a deferred label collaborator.
func (p *Profiler) StartMessage(msg Message) {
	p.start(msg)
}

func (p *Profiler) start(message any) {
	p.root = newEntry(message, nil, nil, p.now)
}

// Reset discards the session entirely. Dump returns "" and Duration
// returns -1 until Start is called again.
func (p *Profiler) Reset() {
	p.root = nil
}

// Enter opens a nested entry under the current one. Without an active
// session this is a no-op.
func (p *Profiler) Enter(label string) {
	p.enter(messageOrNil(label))
}

// EnterMessage is Enter with a deferred label collaborator.
func (p *Profiler) EnterMessage(msg Message) {
	p.enter(msg)
}

func (p *Profiler) enter(message any) {
	if cur := p.current(); cur != nil {
		cur.enterChild(message)
	}
}

// Release closes the current entry. Without an active session this is a
// no-op.
func (p *Profiler) Release() {
	if cur := p.current(); cur != nil {
		cur.Release()
	}
}

// Duration returns the root entry's duration in milliseconds, or -1
// when no session is active or the root is still open.
func (p *Profiler) Duration() int64 {
	if p.root == nil {
		return -1
	}
	return p.root.Duration()
}

// Root returns the session's root entry, or nil.
func (p *Profiler) Root() *Entry {
	return p.root
}

// Dump renders the whole tree, or "" when no session is active.
// Releasing the root does not end the session; the tree stays dumpable
// until Reset or the next Start.
func (p *Profiler) Dump() string {
	return p.DumpWithPrefix("", "")
}

// DumpWithPrefix renders the whole tree with first prefixing the root
// line and rest prefixing every following line.
func (p *Profiler) DumpWithPrefix(first, rest string) string {
	if p.root == nil {
		return ""
	}
	return p.root.Render(first, rest)
}

// current walks down the chain of unreleased children from the root; the
// deepest open entry is the one Enter and Release act on. O(depth) per
// call, which stays cheap because nesting depth tracks call-stack depth.
func (p *Profiler) current() *Entry {
	cur := p.root
	if cur == nil {
		return nil
	}
	for {
		next := cur.unreleasedChild()
		if next == nil {
			return cur
		}
		cur = next
	}
}

func messageOrNil(label string) any {
	if label == "" {
		return nil
	}
	return label
}
