package scenario

import (
	"time"

	"github.com/leapstack-labs/proftree/pkg/profiler"
)

// stepMessage defers a step's label: the short label by default,
// expanded with the step's detail text once the entry is released and
// ran at least as long as the detail threshold.
type stepMessage struct {
	label     string
	detail    string
	threshold time.Duration
}

func (m stepMessage) MessageLevel(e *profiler.Entry) profiler.MessageLevel {
	if m.detail != "" && e.Duration() >= m.threshold.Milliseconds() {
		return profiler.DetailedMessage
	}
	return profiler.BriefMessage
}

func (m stepMessage) BriefMessage() string {
	return m.label
}

func (m stepMessage) DetailedMessage() string {
	return m.label + " (" + m.detail + ")"
}
