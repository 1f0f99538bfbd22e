package runner

import (
	"context"

	"go.uber.org/zap"

	"servicemonitor/internal/domain"
	"servicemonitor/internal/probe"
)

// Runner executes a configured test set once. Tests run sequentially in the
// order given; the set is small enough that fan-out would buy nothing.
type Runner struct {
	Logger   *zap.Logger
	Executor probe.Executor
}

func New(logger *zap.Logger, exec probe.Executor) *Runner {
	return &Runner{Logger: logger, Executor: exec}
}

// Run probes every test and classifies each outcome. One test failing, in any
// way, never prevents the tests after it from running: every test contributes
// exactly one result, and results keep the input order.
func (r *Runner) Run(ctx context.Context, tests []domain.Test) domain.Summary {
	summary := domain.Summary{Results: make([]domain.Result, 0, len(tests))}

	for _, t := range tests {
		out := r.Executor.Execute(ctx, t)
		res := Classify(t, out)
		summary.Results = append(summary.Results, res)

		switch res.Status {
		case domain.StatusUp:
			r.Logger.Info("test_passed",
				zap.String("test", t.Name),
				zap.String("url", t.URL),
				zap.Int("status", out.StatusCode),
				zap.Float64("latency_ms", out.LatencyMS),
			)
		case domain.StatusDown:
			r.Logger.Warn("test_failed",
				zap.String("test", t.Name),
				zap.String("url", t.URL),
				zap.Int("status", out.StatusCode),
				zap.Ints("accept", t.Accept),
				zap.Float64("latency_ms", out.LatencyMS),
				zap.String("content", out.Body),
			)
		case domain.StatusError:
			r.Logger.Error("test_error",
				zap.String("test", t.Name),
				zap.String("url", t.URL),
				zap.String("failure", res.Detail),
				zap.Float64("latency_ms", out.LatencyMS),
			)
		}
	}

	return summary
}

// BuildNotifications turns a summary into the notification requests the run
// warrants: a service-down request when any test is down, a script-error
// request when any test could not be evaluated. A clean run yields none.
func BuildNotifications(s domain.Summary, recipients, scriptRecipients []string) []domain.Notification {
	var ns []domain.Notification
	if down := s.Down(); len(down) > 0 {
		ns = append(ns, domain.Notification{
			Category:   domain.CategoryServiceDown,
			Recipients: recipients,
			Entries:    down,
		})
	}
	if errs := s.Errors(); len(errs) > 0 {
		ns = append(ns, domain.Notification{
			Category:   domain.CategoryScriptError,
			Recipients: scriptRecipients,
			Entries:    errs,
		})
	}
	return ns
}
