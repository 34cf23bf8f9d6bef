package logger

import (
	"log/slog"

	"github.com/xtding233/ticket-odds/internal/economy"
)

// TraceHook logs every calculation at debug level.
func TraceHook(l *slog.Logger) economy.Hook {
	return func(tr economy.Trace) {
		l.Debug("calculation",
			"level", tr.State.CurrentLevel,
			"tickets", tr.State.RemainingTickets,
			"failures", tr.State.TotalFailures,
			"express", tr.State.IsExpressStart,
			"risky_trials", tr.RiskyTrials,
			"max_additional_failures", tr.MaxAdditionalFailures,
			"restart_risky_trials", tr.RestartRiskyTrials,
			"restart_max_failures", tr.RestartMaxFailures,
			"current_probability", tr.Result.CurrentProbability,
			"restart_probability", tr.Result.RestartProbability,
		)
	}
}

// Chain calls each non-nil hook in order.
func Chain(hooks ...economy.Hook) economy.Hook {
	var live []economy.Hook
	for _, h := range hooks {
		if h != nil {
			live = append(live, h)
		}
	}
	switch len(live) {
	case 0:
		return nil
	case 1:
		return live[0]
	}
	return func(tr economy.Trace) {
		for _, h := range live {
			h(tr)
		}
	}
}
