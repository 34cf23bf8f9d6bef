package events

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xtding233/ticket-odds/internal/economy"
)

type fakePublisher struct {
	subjects []string
	payloads [][]byte
	err      error
}

func (f *fakePublisher) Publish(subject string, data []byte) error {
	if f.err != nil {
		return f.err
	}
	f.subjects = append(f.subjects, subject)
	f.payloads = append(f.payloads, data)
	return nil
}

func TestEmitterHookPublishesTrace(t *testing.T) {
	pub := &fakePublisher{}
	em := NewEmitter(pub, "", "hardcore", nil)
	em.now = func() time.Time { return time.Unix(1700000000, 0) }

	e := economy.NewEngine(economy.DefaultConfig()).WithHook(em.Hook())
	res := e.Calculate(economy.PlayerState{CurrentLevel: 20, RemainingTickets: 10, TotalFailures: 2})

	require.Len(t, pub.payloads, 1)
	assert.Equal(t, DefaultSubject, pub.subjects[0])

	var ev CalculationEvent
	require.NoError(t, json.Unmarshal(pub.payloads[0], &ev))
	assert.Equal(t, CalculationType, ev.Type)
	assert.Equal(t, "hardcore", ev.Profile)
	assert.Equal(t, int64(1700000000), ev.Timestamp)
	assert.Equal(t, res, ev.Trace.Result)
	assert.Equal(t, 24, ev.Trace.RiskyTrials)
	_, err := uuid.Parse(ev.ID)
	assert.NoError(t, err)
}

func TestEmitterHookSwallowsPublishErrors(t *testing.T) {
	pub := &fakePublisher{err: errors.New("nats: connection closed")}
	em := NewEmitter(pub, "odds.test", "", nil)

	assert.Error(t, em.EmitCalculation(economy.Trace{}))
	assert.NotPanics(t, func() { em.Hook()(economy.Trace{}) })
}
