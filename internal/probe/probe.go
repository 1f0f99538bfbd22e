package probe

import (
	"context"

	"servicemonitor/internal/domain"
)

// Outcome is the raw result of executing one test. Exactly one of StatusCode
// and Failure is set: StatusCode > 0 when the endpoint answered, Failure
// non-empty when no response was obtained. LatencyMS and Body are diagnostic
// extras and never influence classification.
type Outcome struct {
	StatusCode int
	Failure    string
	LatencyMS  float64
	Body       string
}

// Failed reports whether the probe produced no status code.
func (o Outcome) Failed() bool { return o.Failure != "" }

// StatusOutcome builds the outcome for a request that reached the endpoint.
func StatusOutcome(code int, latencyMS float64, body string) Outcome {
	return Outcome{StatusCode: code, LatencyMS: latencyMS, Body: body}
}

// FailureOutcome builds the outcome for a probe that produced no response.
func FailureOutcome(desc string, latencyMS float64) Outcome {
	return Outcome{Failure: desc, LatencyMS: latencyMS}
}

// Executor runs a single test definition.
type Executor interface {
	Execute(ctx context.Context, t domain.Test) Outcome
}
