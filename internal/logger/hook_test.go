package logger

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xtding233/ticket-odds/internal/economy"
)

func TestTraceHookLogsAtDebug(t *testing.T) {
	var buf bytes.Buffer
	l := New(&Options{Level: slog.LevelDebug, Writer: &buf, NoColor: true})

	e := economy.NewEngine(economy.DefaultConfig()).WithHook(TraceHook(l))
	e.Calculate(economy.PlayerState{CurrentLevel: 20, RemainingTickets: 10, TotalFailures: 2})

	out := buf.String()
	assert.Contains(t, out, "calculation")
	assert.Contains(t, out, "risky_trials=24")
	assert.Contains(t, out, "max_additional_failures=2")
}

func TestTraceHookSilentAtInfo(t *testing.T) {
	var buf bytes.Buffer
	l := New(&Options{Level: slog.LevelInfo, Writer: &buf, NoColor: true})

	TraceHook(l)(economy.Trace{})
	assert.Empty(t, buf.String())
}

func TestChain(t *testing.T) {
	assert.Nil(t, Chain(nil, nil))

	var order []int
	h := Chain(func(economy.Trace) { order = append(order, 1) }, nil, func(economy.Trace) { order = append(order, 2) })
	require.NotNil(t, h)
	h(economy.Trace{})
	assert.Equal(t, []int{1, 2}, order)
}
