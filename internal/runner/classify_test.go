package runner

import (
	"testing"

	"servicemonitor/internal/domain"
	"servicemonitor/internal/probe"
)

func TestClassify(t *testing.T) {
	cases := []struct {
		name       string
		test       domain.Test
		outcome    probe.Outcome
		wantStatus domain.Status
		wantDetail string
	}{
		{
			name:       "accepted code is up",
			test:       domain.Test{Name: "api", Accept: []int{200, 201}},
			outcome:    probe.StatusOutcome(200, 12, ""),
			wantStatus: domain.StatusUp,
			wantDetail: "200",
		},
		{
			name:       "second accepted code is up",
			test:       domain.Test{Name: "api", Accept: []int{200, 201}},
			outcome:    probe.StatusOutcome(201, 12, ""),
			wantStatus: domain.StatusUp,
			wantDetail: "201",
		},
		{
			name:       "unexpected code is down",
			test:       domain.Test{Name: "api", Accept: []int{200}},
			outcome:    probe.StatusOutcome(503, 12, "maintenance"),
			wantStatus: domain.StatusDown,
			wantDetail: "503",
		},
		{
			name:       "transport failure is error",
			test:       domain.Test{Name: "api", Accept: []int{200}},
			outcome:    probe.FailureOutcome("connection refused", 5),
			wantStatus: domain.StatusError,
			wantDetail: "connection refused",
		},
		{
			name:       "empty accept set is error even on a 200",
			test:       domain.Test{Name: "api", Accept: nil},
			outcome:    probe.StatusOutcome(200, 12, ""),
			wantStatus: domain.StatusError,
			wantDetail: "no accepted status codes configured",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Classify(tc.test, tc.outcome)
			if got.Test != tc.test.Name {
				t.Fatalf("want test name %q, got %q", tc.test.Name, got.Test)
			}
			if got.Status != tc.wantStatus {
				t.Fatalf("want status %s, got %s", tc.wantStatus, got.Status)
			}
			if got.Detail != tc.wantDetail {
				t.Fatalf("want detail %q, got %q", tc.wantDetail, got.Detail)
			}
		})
	}
}

func TestClassify_IsDeterministic(t *testing.T) {
	test := domain.Test{Name: "api", Accept: []int{200}}
	out := probe.StatusOutcome(503, 9, "")

	first := Classify(test, out)
	second := Classify(test, out)
	if first != second {
		t.Fatalf("want identical results, got %+v and %+v", first, second)
	}
}
