package runner

import (
	"strconv"

	"servicemonitor/internal/domain"
	"servicemonitor/internal/probe"
)

// Classify applies the test's acceptance policy to a raw probe outcome. Pure
// function: no I/O, deterministic for a given test and outcome.
func Classify(t domain.Test, out probe.Outcome) domain.Result {
	if out.Failed() {
		return domain.Result{Test: t.Name, Status: domain.StatusError, Detail: out.Failure}
	}

	// A test with no accepted codes can never pass. The loader rejects these
	// eagerly; this guards test sets built in code.
	if len(t.Accept) == 0 {
		return domain.Result{Test: t.Name, Status: domain.StatusError, Detail: "no accepted status codes configured"}
	}

	detail := strconv.Itoa(out.StatusCode)
	for _, code := range t.Accept {
		if code == out.StatusCode {
			return domain.Result{Test: t.Name, Status: domain.StatusUp, Detail: detail}
		}
	}
	return domain.Result{Test: t.Name, Status: domain.StatusDown, Detail: detail}
}
