package notify

import (
	"fmt"
	"strings"

	"servicemonitor/internal/domain"
)

// Composer turns a notification request into mail-ready subject and body
// text. It carries the test definitions so entries can be expanded with the
// URL and acceptance criteria the result itself does not repeat.
type Composer struct {
	Subject string
	tests   map[string]domain.Test
}

func NewComposer(subject string, tests []domain.Test) *Composer {
	idx := make(map[string]domain.Test, len(tests))
	for _, t := range tests {
		idx[t.Name] = t
	}
	return &Composer{Subject: subject, tests: idx}
}

// Compose renders one notification. Entries keep their run order. Underscores
// in test names read as spaces in the body.
func (c *Composer) Compose(n domain.Notification) (subject, body string) {
	var b strings.Builder
	for i, e := range n.Entries {
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "Test `%s`\n", strings.ReplaceAll(e.Test, "_", " "))
		t, known := c.tests[e.Test]
		if known {
			fmt.Fprintf(&b, "\tURL: %s\n", t.URL)
		}
		switch n.Category {
		case domain.CategoryServiceDown:
			if known {
				fmt.Fprintf(&b, "\tExpected status codes: %v\n", t.Accept)
			}
			fmt.Fprintf(&b, "\tGot: %s\n", e.Detail)
		default:
			fmt.Fprintf(&b, "\tFailure: %s\n", e.Detail)
		}
	}
	return c.Subject + " " + categoryLabel(n.Category), b.String()
}

func categoryLabel(cat domain.Category) string {
	switch cat {
	case domain.CategoryServiceDown:
		return "[service down]"
	case domain.CategoryScriptError:
		return "[script error]"
	default:
		return "[" + string(cat) + "]"
	}
}
