package events

import (
	"encoding/json"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/nats-io/nats.go"

	"github.com/xtding233/ticket-odds/internal/economy"
)

const (
	DefaultSubject  = "ticketodds.calculation"
	CalculationType = "calculation"
)

// Publisher is the subset of *nats.Conn the emitter needs.
type Publisher interface {
	Publish(subject string, data []byte) error
}

// CalculationEvent is the JSON payload published per calculation.
type CalculationEvent struct {
	ID        string        `json:"id"`
	Type      string        `json:"type"`
	Profile   string        `json:"profile,omitempty"`
	Trace     economy.Trace `json:"trace"`
	Timestamp int64         `json:"timestamp"`
}

type Emitter struct {
	pub     Publisher
	subject string
	profile string
	log     *slog.Logger
	now     func() time.Time
}

func NewEmitter(pub Publisher, subject, profile string, log *slog.Logger) *Emitter {
	if subject == "" {
		subject = DefaultSubject
	}
	if log == nil {
		log = slog.Default()
	}
	return &Emitter{pub: pub, subject: subject, profile: profile, log: log, now: time.Now}
}

// Connect dials NATS and wraps the connection in an Emitter.
func Connect(url, subject, profile string, log *slog.Logger) (*Emitter, *nats.Conn, error) {
	nc, err := nats.Connect(url, nats.Name("ticket-odds"))
	if err != nil {
		return nil, nil, err
	}
	return NewEmitter(nc, subject, profile, log), nc, nil
}

// EmitCalculation publishes tr as a CalculationEvent.
func (e *Emitter) EmitCalculation(tr economy.Trace) error {
	data, err := json.Marshal(CalculationEvent{
		ID:        uuid.NewString(),
		Type:      CalculationType,
		Profile:   e.profile,
		Trace:     tr,
		Timestamp: e.now().UTC().Unix(),
	})
	if err != nil {
		return err
	}
	return e.pub.Publish(e.subject, data)
}

// Hook adapts the emitter to an economy.Hook. Publish errors are logged and dropped.
func (e *Emitter) Hook() economy.Hook {
	return func(tr economy.Trace) {
		if err := e.EmitCalculation(tr); err != nil {
			e.log.Warn("Publish calculation event failed", "subject", e.subject, "err", err)
		}
	}
}
