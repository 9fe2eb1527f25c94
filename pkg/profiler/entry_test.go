package profiler

import (
	"regexp"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEntryDurations(t *testing.T) {
	clock := newFakeClock()
	p := New(WithClock(clock.Now))

	p.Start("root")
	root := p.Root()
	require.NotNil(t, root)

	assert.False(t, root.Released())
	assert.Equal(t, int64(-1), root.Duration(), "unreleased entry has unknown duration")

	clock.Advance(10 * time.Millisecond)
	p.Enter("child")
	child := root.Children()[0]
	assert.Equal(t, int64(10), child.StartTime())
	assert.Equal(t, int64(-1), child.EndTime(), "unreleased child has unknown end")

	clock.Advance(5 * time.Millisecond)
	p.Release()
	assert.True(t, child.Released())
	assert.Equal(t, int64(5), child.Duration())
	assert.Equal(t, int64(15), child.EndTime())

	p.Release()
	assert.Equal(t, int64(15), root.Duration())
	assert.Equal(t, int64(10), root.SelfDuration())
	assert.Equal(t, int64(0), root.StartTime(), "root starts at relative 0")
}

func TestEntrySelfDuration(t *testing.T) {
	clock := newFakeClock()
	p := New(WithClock(clock.Now))

	p.Start("root")
	p.Enter("a")
	clock.Advance(3 * time.Millisecond)
	p.Release()
	p.Enter("b")
	clock.Advance(4 * time.Millisecond)
	p.Release()
	clock.Advance(2 * time.Millisecond)
	p.Release()

	root := p.Root()
	assert.Equal(t, int64(9), root.Duration())
	assert.Equal(t, int64(2), root.SelfDuration())

	// A leaf's self duration equals its duration.
	a := root.Children()[0]
	assert.Equal(t, a.Duration(), a.SelfDuration())
}

func TestEntryPercentages(t *testing.T) {
	clock := newFakeClock()
	p := New(WithClock(clock.Now))

	p.Start("root")
	p.Enter("a")
	clock.Advance(3 * time.Millisecond)
	p.Release()
	p.Enter("b")
	clock.Advance(7 * time.Millisecond)
	p.Release()
	p.Release()

	root := p.Root()
	a, b := root.Children()[0], root.Children()[1]

	assert.InDelta(t, 0.3, a.PercentOfParent(), 1e-9)
	assert.InDelta(t, 0.3, a.PercentOfTotal(), 1e-9)
	assert.InDelta(t, 0.7, b.PercentOfParent(), 1e-9)

	// The root has no total distinct from itself.
	assert.Zero(t, root.PercentOfParent())
	assert.Zero(t, root.PercentOfTotal())
}

func TestEntryPercentagesUnreleasedParent(t *testing.T) {
	clock := newFakeClock()
	p := New(WithClock(clock.Now))

	p.Start("root")
	p.Enter("a")
	clock.Advance(3 * time.Millisecond)
	p.Release()

	// Root still open: no percentages yet.
	a := p.Root().Children()[0]
	assert.Zero(t, a.PercentOfParent())
	assert.Zero(t, a.PercentOfTotal())
}

func TestEntryChildOrder(t *testing.T) {
	clock := newFakeClock()
	p := New(WithClock(clock.Now))

	p.Start("root")
	for _, label := range []string{"first", "second", "third"} {
		p.Enter(label)
		clock.Advance(time.Millisecond)
		p.Release()
	}
	p.Release()

	children := p.Root().Children()
	require.Len(t, children, 3)
	assert.Equal(t, "first", children[0].Label())
	assert.Equal(t, "second", children[1].Label())
	assert.Equal(t, "third", children[2].Label())
}

func TestEntryReleaseOverwrites(t *testing.T) {
	clock := newFakeClock()
	p := New(WithClock(clock.Now))

	p.Start("root")
	clock.Advance(5 * time.Millisecond)
	p.Release()
	assert.Equal(t, int64(5), p.Duration())

	// Releasing again overwrites the end time; misuse is not detected.
	clock.Advance(3 * time.Millisecond)
	p.Release()
	assert.Equal(t, int64(8), p.Duration())
}

func TestRenderTree(t *testing.T) {
	clock := newFakeClock()
	p := New(WithClock(clock.Now))

	p.Start("root")
	clock.Advance(2 * time.Millisecond)
	p.Enter("a")
	clock.Advance(3 * time.Millisecond)
	p.Release()
	clock.Advance(1 * time.Millisecond)
	p.Enter("b")
	clock.Advance(4 * time.Millisecond)
	p.Release()
	p.Release()

	want := strings.Join([]string{
		"0 [10ms (3ms)] - root",
		"+---2 [3ms, 30%, 30%] - a",
		"`---6 [4ms, 40%, 40%] - b",
	}, "\n")
	assert.Equal(t, want, p.Dump())
}

func TestRenderNestedConnectors(t *testing.T) {
	clock := newFakeClock()
	p := New(WithClock(clock.Now))

	p.Start("root")
	p.Enter("a")
	p.Enter("a1")
	clock.Advance(5 * time.Millisecond)
	p.Release()
	p.Release()
	p.Enter("b")
	clock.Advance(5 * time.Millisecond)
	p.Release()
	p.Release()

	want := strings.Join([]string{
		"0 [10ms] - root",
		"+---0 [5ms, 50%, 50%] - a",
		"|   `---0 [5ms, 100%, 50%] - a1",
		"`---5 [5ms, 50%, 50%] - b",
	}, "\n")
	assert.Equal(t, want, p.Dump())
}

func TestRenderUnreleased(t *testing.T) {
	p := New(WithClock(newFakeClock().Now))
	p.Start("")

	dump := p.Dump()
	assert.Equal(t, "0 [UNRELEASED]", dump)
	assert.NotContains(t, dump, "ms")
}

func TestRenderSelfEqualsDurationOmitted(t *testing.T) {
	clock := newFakeClock()
	p := New(WithClock(clock.Now))

	p.Start("leafy")
	clock.Advance(7 * time.Millisecond)
	p.Release()

	// Self time equals total time: the parenthetical is dropped.
	assert.Equal(t, "0 [7ms] - leafy", p.Dump())
}

// entryLine matches the prefix, relative start, and duration of one
// rendered line.
var entryLine = regexp.MustCompile("^[-+`| ]*(\\d+) \\[(\\d+)ms")

func TestRenderRoundTrip(t *testing.T) {
	clock := newFakeClock()
	p := New(WithClock(clock.Now))

	p.Start("root")
	clock.Advance(4 * time.Millisecond)
	p.Enter("a")
	clock.Advance(11 * time.Millisecond)
	p.Enter("a1")
	clock.Advance(6 * time.Millisecond)
	p.Release()
	p.Release()
	p.Enter("b")
	clock.Advance(9 * time.Millisecond)
	p.Release()
	p.Release()

	var entries []*Entry
	var walk func(e *Entry)
	walk = func(e *Entry) {
		entries = append(entries, e)
		for _, c := range e.Children() {
			walk(c)
		}
	}
	walk(p.Root())

	lines := strings.Split(p.Dump(), "\n")
	require.Len(t, lines, len(entries))

	// Printed figures must match the computed values exactly.
	for i, line := range lines {
		m := entryLine.FindStringSubmatch(line)
		require.NotNil(t, m, "line %d: %q", i, line)

		start, err := strconv.ParseInt(m[1], 10, 64)
		require.NoError(t, err)
		dur, err := strconv.ParseInt(m[2], 10, 64)
		require.NoError(t, err)

		assert.Equal(t, entries[i].StartTime(), start)
		assert.Equal(t, entries[i].Duration(), dur)
	}
}

// countingMessage records how the tree consults the collaborator.
type countingMessage struct {
	levelCalls int
	level      MessageLevel
}

func (m *countingMessage) MessageLevel(_ *Entry) MessageLevel {
	m.levelCalls++
	return m.level
}

func (m *countingMessage) BriefMessage() string    { return "brief" }
func (m *countingMessage) DetailedMessage() string { return "detailed" }

func TestMessageCollaborator(t *testing.T) {
	clock := newFakeClock()
	p := New(WithClock(clock.Now))

	msg := &countingMessage{level: DetailedMessage}
	p.StartMessage(msg)
	root := p.Root()

	// Open entries always use the brief form; the level is not consulted.
	assert.Equal(t, "brief", root.Label())
	assert.Zero(t, msg.levelCalls)

	clock.Advance(time.Millisecond)
	p.Release()
	assert.Equal(t, "detailed", root.Label())
	assert.Equal(t, 1, msg.levelCalls)

	// Nothing is cached: every resolution asks again.
	assert.Equal(t, "detailed", root.Label())
	assert.Equal(t, 2, msg.levelCalls)

	msg.level = BriefMessage
	assert.Equal(t, "brief", root.Label())
}

func TestMessageBriefWhenLevelUnknown(t *testing.T) {
	clock := newFakeClock()
	p := New(WithClock(clock.Now))

	msg := &countingMessage{level: NoMessage}
	p.StartMessage(msg)
	clock.Advance(time.Millisecond)
	p.Release()

	// Anything other than DetailedMessage falls back to the brief form.
	assert.Equal(t, "brief", p.Root().Label())
}
