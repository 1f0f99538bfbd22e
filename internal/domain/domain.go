package domain

// Method is the HTTP verb a test is executed with. Config values are
// normalized to lower case at load time; anything outside the known set is
// kept verbatim and rejected by the executor when the test runs.
type Method string

const (
	MethodGet  Method = "get"
	MethodPost Method = "post"
)

// Test is one named endpoint check. Payload is only meaningful for post
// tests, QueryArgs only for get tests.
type Test struct {
	Name      string         `json:"name"`
	URL       string         `json:"url"`
	Method    Method         `json:"type"`
	Payload   map[string]any `json:"payload,omitempty"`
	QueryArgs map[string]any `json:"query_args,omitempty"`
	Accept    []int          `json:"accept"`
}

// Status is the classified state of one probed endpoint.
type Status string

const (
	// StatusUp: the endpoint answered with an accepted status code.
	StatusUp Status = "up"
	// StatusDown: the endpoint answered, but outside the accepted codes.
	StatusDown Status = "down"
	// StatusError: the probe could not be evaluated (transport failure or
	// a configuration fault), distinct from a genuine down signal.
	StatusError Status = "error"
)

// Result is the classified outcome of a single test.
type Result struct {
	Test   string `json:"test"`
	Status Status `json:"status"`
	Detail string `json:"detail"`
}

// Summary collects the results of one run in configuration order. It exists
// for the duration of a single run and is never persisted.
type Summary struct {
	Results []Result `json:"results"`
}

// Down returns the down results, preserving run order.
func (s Summary) Down() []Result {
	return s.filter(StatusDown)
}

// Errors returns the error results, preserving run order.
func (s Summary) Errors() []Result {
	return s.filter(StatusError)
}

func (s Summary) filter(st Status) []Result {
	var out []Result
	for _, r := range s.Results {
		if r.Status == st {
			out = append(out, r)
		}
	}
	return out
}

// Category names the channel a notification belongs to.
type Category string

const (
	CategoryServiceDown Category = "service_down"
	CategoryScriptError Category = "script_error"
)

// Notification asks for one recipient set to be alerted about one partition
// of a run summary. It carries no opinion on how it gets delivered.
type Notification struct {
	Category   Category `json:"category"`
	Recipients []string `json:"recipients"`
	Entries    []Result `json:"entries"`
}
