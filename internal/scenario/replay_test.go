package scenario

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/proftree/pkg/errcode"
)

func checkoutScenario() *Scenario {
	return &Scenario{
		Label: "checkout",
		Steps: []Step{
			{Label: "load-cart", Duration: 15 * time.Millisecond},
			{Label: "price", Duration: 5 * time.Millisecond, Steps: []Step{
				{Label: "discounts", Duration: 10 * time.Millisecond, Detail: "3 rules evaluated"},
				{Label: "tax", Duration: 120 * time.Millisecond, Detail: "remote rate lookup"},
			}},
		},
	}
}

func TestReplaySimulated(t *testing.T) {
	r := &Replayer{DetailThreshold: 100 * time.Millisecond}

	rep := r.Run(checkoutScenario())
	require.NotNil(t, rep)
	assert.NotEmpty(t, rep.RunID)
	assert.Equal(t, "checkout", rep.Label)

	// Simulated clock: durations are exactly the declared ones.
	assert.Equal(t, int64(150), rep.Duration)

	require.Len(t, rep.Rows, 5)
	assert.Equal(t, []string{"checkout", "load-cart", "price", "discounts", "tax"},
		rowLabels(rep.Rows))

	price := rep.Rows[2]
	assert.Equal(t, 1, price.Depth)
	assert.Equal(t, int64(15), price.Start)
	assert.Equal(t, int64(135), price.Duration)
	assert.Equal(t, int64(5), price.Self)
	assert.InDelta(t, 0.9, price.OfParent, 1e-9)

	tax := rep.Rows[4]
	assert.Equal(t, 2, tax.Depth)
	assert.Equal(t, int64(30), tax.Start)
	assert.Equal(t, int64(120), tax.Duration)
}

func TestReplayDetailThreshold(t *testing.T) {
	r := &Replayer{DetailThreshold: 100 * time.Millisecond}

	rep := r.Run(checkoutScenario())

	// Slow steps expand their detail text, fast ones stay brief.
	assert.Contains(t, rep.Dump, "tax (remote rate lookup)")
	assert.Contains(t, rep.Dump, "- discounts")
	assert.NotContains(t, rep.Dump, "discounts (")
}

func TestReplayRealtime(t *testing.T) {
	r := &Replayer{Realtime: true}

	rep := r.Run(&Scenario{
		Label: "quick",
		Steps: []Step{{Label: "step", Duration: 20 * time.Millisecond}},
	})

	// Wall-clock replay: at least the declared time must have passed.
	assert.GreaterOrEqual(t, rep.Duration, int64(20))
}

func TestReplayAll(t *testing.T) {
	good := writeScenario(t, `
label: ok
steps:
  - label: step
    duration: 5ms
`)
	bad := writeScenario(t, `
steps:
  - label: step
    duration: 5ms
`)

	r := &Replayer{}
	results := ReplayAll(context.Background(), r, []string{good, bad, good})
	require.Len(t, results, 3)

	assert.True(t, results[0].Success)
	assert.Equal(t, "ok", results[0].Data.Label)
	assert.Equal(t, int64(5), results[0].Data.Duration)

	require.False(t, results[1].Success)
	require.NotNil(t, results[1].ErrorStack)
	assert.Equal(t, errcode.New("5", "1", "0001", "001").String(), results[1].ErrorStack.CurrentCode())

	assert.True(t, results[2].Success, "results keep input order")
}

func TestStepMessageForms(t *testing.T) {
	m := stepMessage{label: "tax", detail: "remote rate lookup", threshold: 100 * time.Millisecond}
	assert.Equal(t, "tax", m.BriefMessage())
	assert.Equal(t, "tax (remote rate lookup)", m.DetailedMessage())
}

func rowLabels(rows []Row) []string {
	labels := make([]string, len(rows))
	for i, r := range rows {
		labels[i] = r.Label
	}
	return labels
}
