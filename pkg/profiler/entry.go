package profiler

import (
	"math"
	"strconv"
	"strings"
)

// Entry is one node of the timing tree: a single timed region together
// with the regions nested inside it. Entries are created through
// Profiler.Start and Profiler.Enter and released in LIFO order; all
// timestamps are absolute milliseconds from the tree's clock.
type Entry struct {
	message  any // nil, string, or Message
	parent   *Entry
	root     *Entry
	baseTime int64 // root's absolute start; 0 for the root itself
	start    int64
	end      int64 // 0 until released
	children []*Entry
	now      func() int64
}

// newEntry records the start timestamp immediately. A nil root means the
// new entry anchors its own tree.
func newEntry(message any, parent, root *Entry, now func() int64) *Entry {
	e := &Entry{
		message: message,
		parent:  parent,
		start:   now(),
		now:     now,
	}
	if root == nil {
		e.root = e
	} else {
		e.root = root
		e.baseTime = root.start
	}
	return e
}

// enterChild appends a new unreleased child sharing this entry's root
// and clock.
func (e *Entry) enterChild(message any) *Entry {
	child := newEntry(message, e, e.root, e.now)
	e.children = append(e.children, child)
	return child
}

// Release marks the entry finished. Calling it again overwrites the end
// time; pairing every Enter with exactly one Release is the caller's
// responsibility.
func (e *Entry) Release() {
	e.end = e.now()
}

// Released reports whether the entry has been released.
func (e *Entry) Released() bool {
	return e.end > 0
}

// StartTime returns the entry's start relative to the root entry, in
// milliseconds. The root itself starts at 0.
func (e *Entry) StartTime() int64 {
	if e.baseTime > 0 {
		return e.start - e.baseTime
	}
	return 0
}

// EndTime returns the entry's end relative to the root entry, in
// milliseconds, or -1 if the end is not yet known.
func (e *Entry) EndTime() int64 {
	if e.end < e.baseTime {
		return -1
	}
	return e.end - e.baseTime
}

// Duration returns the entry's total elapsed milliseconds, or -1 if the
// entry has not been released. Callers must treat negative durations as
// unknown, not as zero.
func (e *Entry) Duration() int64 {
	if e.end < e.start {
		return -1
	}
	return e.end - e.start
}

// SelfDuration returns the time spent in the entry itself: its duration
// minus the durations of its direct children. Returns -1 when the entry
// is unreleased or when the children's combined time exceeds the entry's
// own, which signals inconsistent timings.
func (e *Entry) SelfDuration() int64 {
	d := e.Duration()
	if d < 0 {
		return -1
	}
	if len(e.children) == 0 {
		return d
	}
	for _, c := range e.children {
		d -= c.Duration()
	}
	if d < 0 {
		return -1
	}
	return d
}

// PercentOfParent returns the entry's share of its parent's duration as
// a fraction in [0,1]. It is 0 when the parent is absent or unreleased,
// or when either duration is not positive.
func (e *Entry) PercentOfParent() float64 {
	var parentDur float64
	dur := float64(e.Duration())
	if e.parent != nil && e.parent.Released() {
		parentDur = float64(e.parent.Duration())
	}
	if dur > 0 && parentDur > 0 {
		return dur / parentDur
	}
	return 0
}

// PercentOfTotal is PercentOfParent measured against the root entry's
// duration. The root itself always reports 0: it has no total distinct
// from its own duration.
func (e *Entry) PercentOfTotal() float64 {
	if e == e.root {
		return 0
	}
	var rootDur float64
	dur := float64(e.Duration())
	if e.root.Released() {
		rootDur = float64(e.root.Duration())
	}
	if dur > 0 && rootDur > 0 {
		return dur / rootDur
	}
	return 0
}

// unreleasedChild returns the most recently entered child if it is still
// open, or nil. Children release in LIFO order, so only the last child
// can be open.
func (e *Entry) unreleasedChild() *Entry {
	if n := len(e.children); n > 0 {
		if last := e.children[n-1]; !last.Released() {
			return last
		}
	}
	return nil
}

// Parent returns the owning entry, or nil for the root.
func (e *Entry) Parent() *Entry {
	return e.parent
}

// Children returns the direct children in the order they were entered.
func (e *Entry) Children() []*Entry {
	out := make([]*Entry, len(e.children))
	copy(out, e.children)
	return out
}

// Label resolves the entry's display label. Message collaborators are
// consulted on every call, nothing is cached; before release only the
// brief form is used.
func (e *Entry) Label() string {
	switch m := e.message.(type) {
	case string:
		return m
	case Message:
		level := BriefMessage
		if e.Released() {
			level = m.MessageLevel(e)
		}
		if level == DetailedMessage {
			return m.DetailedMessage()
		}
		return m.BriefMessage()
	default:
		return ""
	}
}

// String renders the entry and its subtree with no prefixes.
func (e *Entry) String() string {
	return e.Render("", "")
}

// Render renders the entry and its subtree as text, one line per entry.
// first prefixes the entry's own line, rest prefixes every descendant
// line.
func (e *Entry) Render(first, rest string) string {
	var b strings.Builder
	e.render(&b, first, rest)
	return b.String()
}

func (e *Entry) render(b *strings.Builder, first, rest string) {
	b.WriteString(first)
	b.WriteString(strconv.FormatInt(e.StartTime(), 10))
	b.WriteByte(' ')

	if e.Released() {
		dur := e.Duration()
		self := e.SelfDuration()

		b.WriteByte('[')
		b.WriteString(strconv.FormatInt(dur, 10))
		b.WriteString("ms")
		if self > 0 && self != dur {
			b.WriteString(" (")
			b.WriteString(strconv.FormatInt(self, 10))
			b.WriteString("ms)")
		}
		if pp := e.PercentOfParent(); pp > 0 {
			b.WriteString(", ")
			b.WriteString(formatPercent(pp))
		}
		if pt := e.PercentOfTotal(); pt > 0 {
			b.WriteString(", ")
			b.WriteString(formatPercent(pt))
		}
		b.WriteByte(']')
	} else {
		b.WriteString("[UNRELEASED]")
	}

	if label := e.Label(); label != "" {
		b.WriteString(" - ")
		b.WriteString(label)
	}

	for i, child := range e.children {
		b.WriteByte('\n')
		if i == len(e.children)-1 {
			child.render(b, rest+"`---", rest+"    ")
		} else {
			child.render(b, rest+"+---", rest+"|   ")
		}
	}
}

// formatPercent renders a fraction as whole percent, e.g. 0.333 -> "33%".
func formatPercent(f float64) string {
	return strconv.FormatInt(int64(math.Round(f*100)), 10) + "%"
}
